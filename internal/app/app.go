package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/five82/memento/internal/calendar"
	"github.com/five82/memento/internal/config"
	"github.com/five82/memento/internal/geometry"
	"github.com/five82/memento/internal/logging"
	"github.com/five82/memento/internal/media"
	"github.com/five82/memento/internal/persist"
	"github.com/five82/memento/internal/playback"
	"github.com/five82/memento/internal/prefs"
	"github.com/five82/memento/internal/secret"
	"github.com/five82/memento/internal/state"
	"github.com/five82/memento/internal/storage"
	"github.com/five82/memento/internal/ui"
)

// Options configure the memento application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/memento/prefs.toml
	// Ephemeral keeps the note and thumbnail layout in memory only.
	Ephemeral bool
	Version   string
}

// Run boots the memento TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closer, err := logging.New(logging.Options{
		Level:   cfg.Log.Level,
		File:    cfg.Log.File,
		Version: opts.Version,
	})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer closer.Close()

	pin, source, err := secret.Resolve(secret.Options{PIN: cfg.Lock.PIN, UseKeyring: cfg.Lock.Keyring})
	if err != nil {
		if pin == "" {
			return fmt.Errorf("resolve pin: %w", err)
		}
		logger.Warn("pin lookup failed, using default", "error", err)
	}
	logger.Info("pin resolved", "source", source)

	store, err := OpenStore(cfg, opts.Ephemeral)
	if err != nil {
		return err
	}

	session := state.NewSession()
	mirror := persist.NewMirror(persist.Options{
		Store:   store,
		Session: session,
		Logger:  logger,
		Thumb:   thumbSize(cfg),
		Insets:  thumbInsets(cfg),
	})
	mirror.Load()

	player := newPlayer(cfg, logger)
	defer player.Close()

	userPrefs, _ := prefs.Load(opts.PrefsPath)
	music := playback.New(player, Tracks(cfg), logger)
	volume := cfg.Media.Volume
	if prefs.Exists(opts.PrefsPath) {
		volume = userPrefs.Volume
	}
	music.SetVolume(volume)

	logger.Info("starting",
		"store", storeKind(opts.Ephemeral),
		"tracks", music.Tracks(),
		"photos", len(cfg.Photos),
	)

	return ui.Run(ui.Options{
		Context:   ctx,
		Config:    cfg,
		Session:   session,
		Mirror:    mirror,
		Music:     music,
		Player:    player,
		Catalog:   Catalog(cfg),
		Calendar:  calendar.New(time.Now(), SpecialDates(cfg)),
		Logger:    logger,
		Secret:    pin,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	})
}

// OpenStore returns the store behind the session data: a diskv directory,
// or memory when ephemeral.
func OpenStore(cfg config.Config, ephemeral bool) (storage.Store, error) {
	if ephemeral {
		return storage.NewMemory(), nil
	}
	disk, err := storage.OpenDisk(cfg.Storage.Dir)
	if err != nil {
		return nil, fmt.Errorf("open data dir: %w", err)
	}
	return disk, nil
}

func storeKind(ephemeral bool) string {
	if ephemeral {
		return "memory"
	}
	return "disk"
}

// newPlayer starts the configured external player, or a silent one when no
// command is set or it cannot be used.
func newPlayer(cfg config.Config, logger *slog.Logger) media.Player {
	if len(cfg.Media.Command) == 0 {
		return media.NewSilent()
	}
	p, err := media.NewCommand(cfg.Media.Command, logger)
	if err != nil {
		logger.Warn("media command unavailable, music is silent", "error", err)
		return media.NewSilent()
	}
	return p
}

func thumbSize(cfg config.Config) geometry.Size {
	return geometry.SizeOf(cfg.Desktop.ThumbWidth, cfg.Desktop.ThumbHeight)
}

func thumbInsets(cfg config.Config) geometry.Insets {
	in := geometry.DefaultInsets()
	if cfg.Desktop.MarginRatio > 0 {
		in.Margin = cfg.Desktop.MarginRatio
	}
	return in
}

// Reset deletes stored session data. With neither flag set it deletes both.
func Reset(store storage.Store, note, positions bool) error {
	if !note && !positions {
		note, positions = true, true
	}
	if note {
		if err := store.Delete(storage.NoteKey); err != nil {
			return fmt.Errorf("delete note: %w", err)
		}
	}
	if positions {
		if err := store.Delete(storage.PositionsKey); err != nil {
			return fmt.Errorf("delete positions: %w", err)
		}
	}
	return nil
}
