package app

import (
	"time"

	"github.com/five82/memento/internal/calendar"
	"github.com/five82/memento/internal/config"
	"github.com/five82/memento/internal/gallery"
	"github.com/five82/memento/internal/media"
)

// Tracks converts the configured playlist.
func Tracks(cfg config.Config) []media.Track {
	out := make([]media.Track, 0, len(cfg.Tracks))
	for _, t := range cfg.Tracks {
		out = append(out, media.Track{Title: t.Title, File: t.File, Artwork: t.Artwork})
	}
	return out
}

// Catalog builds the desktop items from config, or the built-in set when
// none are listed. Item IDs follow list order, so reordering photos in the
// config moves saved thumbnail positions with them.
func Catalog(cfg config.Config) *gallery.Catalog {
	if len(cfg.Photos) == 0 {
		return gallery.DefaultCatalog()
	}
	items := make([]gallery.Item, 0, len(cfg.Photos))
	for _, p := range cfg.Photos {
		g := gallery.Photos
		if p.Group == "letters" {
			g = gallery.Letters
		}
		items = append(items, gallery.Item{
			Name:   p.Name,
			Group:  g,
			Folder: p.Folder,
			File:   p.File,
			Letter: p.Letter,
		})
	}
	return gallery.NewCatalog(items)
}

// SpecialDates converts the configured calendar notes, or returns the
// built-in ones when none are listed.
func SpecialDates(cfg config.Config) []calendar.SpecialDate {
	if len(cfg.SpecialDates) == 0 {
		return calendar.DefaultSpecialDates()
	}
	out := make([]calendar.SpecialDate, 0, len(cfg.SpecialDates))
	for _, d := range cfg.SpecialDates {
		out = append(out, calendar.SpecialDate{
			Month: time.Month(d.Month),
			Day:   d.Day,
			Year:  d.Year,
			Title: d.Title,
			Note:  d.Note,
		})
	}
	return out
}
