package gallery

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/webp"
)

// ThumbnailDir holds thumbnail images under the asset root.
const ThumbnailDir = "thumbnails"

// Extension probe orders.
var (
	ThumbnailExts = []string{".png", ".jpg", ".jpeg", ".webp", ".gif"}
	ImageExts     = []string{".jpg", ".jpeg", ".png", ".webp", ".gif"}
)

// ErrNotFound is returned once every candidate extension has been tried.
var ErrNotFound = errors.New("asset not found")

// Resolve returns the first existing dir/base+ext, trying exts in order. It
// gives up with ErrNotFound after the last extension.
func Resolve(dir, base string, exts []string) (string, error) {
	for _, ext := range exts {
		p := filepath.Join(dir, base+ext)
		info, err := os.Stat(p)
		if err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", fmt.Errorf("%s in %s: %w", base, dir, ErrNotFound)
}

// LookupThumbnail resolves the thumbnail image for it under root.
func LookupThumbnail(root string, it Item) (string, error) {
	base := strings.TrimSuffix(it.Name, filepath.Ext(it.Name))
	return Resolve(filepath.Join(root, ThumbnailDir), base, ThumbnailExts)
}

// ProbeThumbnails reports, by item ID, whether each item has a thumbnail file.
func ProbeThumbnails(root string, items []Item) map[int]bool {
	found := make(map[int]bool, len(items))
	for _, it := range items {
		_, err := LookupThumbnail(root, it)
		found[it.ID] = err == nil
	}
	return found
}

// Asset is a resolved full-size image.
type Asset struct {
	Path          string
	Width, Height int
}

// Lookup resolves the full-size image for it under root and reads its
// dimensions when the format is decodable.
func Lookup(root string, it Item) (Asset, error) {
	p, err := Resolve(filepath.Join(root, it.Folder), it.Stem(), ImageExts)
	if err != nil {
		return Asset{}, err
	}
	a := Asset{Path: p}
	f, err := os.Open(p)
	if err != nil {
		return a, nil
	}
	defer f.Close()
	if cfg, _, err := image.DecodeConfig(f); err == nil {
		a.Width, a.Height = cfg.Width, cfg.Height
	}
	return a, nil
}
