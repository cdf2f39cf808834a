package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// Disk is a Store that keeps one file per key under a base directory.
type Disk struct {
	d        *diskv.Diskv
	basePath string
}

// OpenDisk creates the base directory if needed and returns a Disk store
// rooted there.
func OpenDisk(basePath string) (*Disk, error) {
	basePath = strings.TrimSpace(basePath)
	if basePath == "" {
		return nil, fmt.Errorf("open store: %w", ErrUnavailable)
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &Disk{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			Transform:    flatTransform,
			CacheSizeMax: 256 * 1024,
		}),
		basePath: basePath,
	}, nil
}

// Path returns the directory backing the store.
func (s *Disk) Path() string { return s.basePath }

func (s *Disk) Get(key string) (string, bool, error) {
	val, err := s.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read %s: %w", key, err)
	}
	return string(val), true, nil
}

func (s *Disk) Set(key, value string) error {
	if err := s.d.Write(key, []byte(value)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (s *Disk) Delete(key string) error {
	if !s.d.Has(key) {
		return nil
	}
	if err := s.d.Erase(key); err != nil {
		return fmt.Errorf("erase %s: %w", key, err)
	}
	return nil
}

func (s *Disk) Keys() []string {
	done := make(chan struct{})
	defer close(done)
	var keys []string
	for k := range s.d.Keys(done) {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// flatTransform keeps every key directly under the base path.
func flatTransform(string) []string { return []string{} }
