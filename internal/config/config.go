package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	toml "github.com/pelletier/go-toml/v2"
)

// Config is memento's runtime configuration.
type Config struct {
	Lock         Lock
	Desktop      Desktop
	Storage      Storage
	Media        Media
	Log          Log
	Letter       Letter
	Plans        Plans
	Tracks       []Track
	Photos       []Photo
	SpecialDates []SpecialDate
}

// Lock configures the PIN screen.
type Lock struct {
	PIN          string
	Keyring      bool
	ErrorMessage string
	Name         string
	// Hint is shown under the PIN dots while no error is displayed.
	Hint string
}

// Desktop configures layout and idle behaviour.
type Desktop struct {
	MarginRatio float64
	Inactivity  time.Duration
	ThumbWidth  int
	ThumbHeight int
	Assets      string
}

// Storage locates the durable store.
type Storage struct {
	Dir string
}

// Media configures audio output. An empty Command plays silently.
type Media struct {
	Command []string
	Volume  int
}

// Log configures the log file.
type Log struct {
	Level string
	File  string
}

// Letter is the text shown in the letter view.
type Letter struct {
	Front    string
	Text     string
	Question string
	Yes      string
	No       string
	Offers   []string
}

// Plans is the text of the plans panel.
type Plans struct {
	Text string
}

// Track is one song in the music catalog.
type Track struct {
	Title   string `toml:"title"`
	File    string `toml:"file"`
	Artwork string `toml:"artwork"`
}

// Photo is one desktop thumbnail.
type Photo struct {
	Name   string `toml:"name"`
	Group  string `toml:"group"`
	Folder string `toml:"folder"`
	File   string `toml:"file"`
	Letter bool   `toml:"letter"`
}

// SpecialDate marks a calendar day. Year 0 repeats yearly.
type SpecialDate struct {
	Month int    `toml:"month"`
	Day   int    `toml:"day"`
	Year  int    `toml:"year"`
	Title string `toml:"title"`
	Note  string `toml:"note"`
}

const (
	defaultConfigPath   = "~/.config/memento/config.toml"
	defaultDataDir      = "~/.local/share/memento"
	defaultStoreDir     = defaultDataDir + "/store"
	defaultLogFile      = defaultDataDir + "/memento.log"
	defaultAssetsDir    = defaultDataDir + "/assets"
	defaultLogLevel     = "info"
	defaultMarginRatio  = 0.05
	defaultInactivity   = 3 * time.Minute
	defaultThumbWidth   = 12
	defaultThumbHeight  = 5
	defaultVolume       = 75
	defaultLockName     = "memento"
	defaultLockHint     = "Password hint: Anniversary"
	defaultLetterFront  = "For you."
	defaultLetterText   = "I made this little desktop so you always have somewhere to find the things I want to tell you."
	defaultQuestion     = "Will you be my valentine?"
	defaultYes          = "Yes"
	defaultNo           = "No"
	defaultPlansText    = "Dinner, a long walk, and whatever you feel like after."
	maxMarginRatio      = 0.45
	minInactivityWindow = 10 * time.Second
)

var defaultOffers = []string{"flowers", "noodles", "and a long walk"}

// DefaultPath returns the config path used when none is given.
func DefaultPath() string {
	return mustExpand(defaultConfigPath)
}

// Defaults returns the configuration used when no file exists.
func Defaults() Config {
	return Config{
		Lock: Lock{Name: defaultLockName, Hint: defaultLockHint},
		Desktop: Desktop{
			MarginRatio: defaultMarginRatio,
			Inactivity:  defaultInactivity,
			ThumbWidth:  defaultThumbWidth,
			ThumbHeight: defaultThumbHeight,
			Assets:      mustExpand(defaultAssetsDir),
		},
		Storage: Storage{Dir: mustExpand(defaultStoreDir)},
		Media:   Media{Volume: defaultVolume},
		Log:     Log{Level: defaultLogLevel, File: mustExpand(defaultLogFile)},
		Letter: Letter{
			Front:    defaultLetterFront,
			Text:     defaultLetterText,
			Question: defaultQuestion,
			Yes:      defaultYes,
			No:       defaultNo,
			Offers:   append([]string(nil), defaultOffers...),
		},
		Plans: Plans{Text: defaultPlansText},
	}
}

type rawConfig struct {
	Lock struct {
		PIN          string `toml:"pin"`
		Keyring      bool   `toml:"keyring"`
		ErrorMessage string `toml:"error_message"`
		Name         string `toml:"name"`
		Hint         string `toml:"hint"`
	} `toml:"lock"`
	Desktop struct {
		MarginRatio *float64 `toml:"margin_ratio"`
		Inactivity  string   `toml:"inactivity"`
		ThumbWidth  int      `toml:"thumb_width"`
		ThumbHeight int      `toml:"thumb_height"`
		Assets      string   `toml:"assets"`
	} `toml:"desktop"`
	Storage struct {
		Dir string `toml:"dir"`
	} `toml:"storage"`
	Media struct {
		Command []string `toml:"command"`
		Volume  *int     `toml:"volume"`
	} `toml:"media"`
	Log struct {
		Level string `toml:"level"`
		File  string `toml:"file"`
	} `toml:"log"`
	Letter struct {
		Front    string   `toml:"front"`
		Text     string   `toml:"text"`
		Question string   `toml:"question"`
		Yes      string   `toml:"yes"`
		No       string   `toml:"no"`
		Offers   []string `toml:"offers"`
	} `toml:"letter"`
	Plans struct {
		Text string `toml:"text"`
	} `toml:"plans"`
	Tracks       []Track       `toml:"tracks"`
	Photos       []Photo       `toml:"photos"`
	SpecialDates []SpecialDate `toml:"special_dates"`
}

// Load reads the config at path, or the default path when empty. A missing
// file yields Defaults; empty or out of range values fall back individually.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.Lock.PIN = strings.TrimSpace(raw.Lock.PIN)
	cfg.Lock.Keyring = raw.Lock.Keyring
	cfg.Lock.ErrorMessage = strings.TrimSpace(raw.Lock.ErrorMessage)
	cfg.Lock.Name = orDefault(raw.Lock.Name, defaultLockName)
	// The default hint belongs to the built-in PIN.
	cfg.Lock.Hint = strings.TrimSpace(raw.Lock.Hint)
	if cfg.Lock.Hint == "" && cfg.Lock.PIN == "" && !cfg.Lock.Keyring {
		cfg.Lock.Hint = defaultLockHint
	}

	if r := raw.Desktop.MarginRatio; r != nil && *r >= 0 && *r <= maxMarginRatio {
		cfg.Desktop.MarginRatio = *r
	}
	if s := strings.TrimSpace(raw.Desktop.Inactivity); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return Config{}, fmt.Errorf("parse desktop.inactivity: %w", err)
		}
		if d >= minInactivityWindow {
			cfg.Desktop.Inactivity = d
		}
	}
	if raw.Desktop.ThumbWidth > 0 {
		cfg.Desktop.ThumbWidth = raw.Desktop.ThumbWidth
	}
	if raw.Desktop.ThumbHeight > 0 {
		cfg.Desktop.ThumbHeight = raw.Desktop.ThumbHeight
	}
	cfg.Desktop.Assets = mustExpand(orDefault(raw.Desktop.Assets, defaultAssetsDir))

	cfg.Storage.Dir = mustExpand(orDefault(raw.Storage.Dir, defaultStoreDir))

	for _, a := range raw.Media.Command {
		if a = strings.TrimSpace(a); a != "" {
			cfg.Media.Command = append(cfg.Media.Command, a)
		}
	}
	if v := raw.Media.Volume; v != nil {
		cfg.Media.Volume = min(max(*v, 0), 100)
	}

	cfg.Log.Level = strings.ToLower(orDefault(raw.Log.Level, defaultLogLevel))
	cfg.Log.File = mustExpand(orDefault(raw.Log.File, defaultLogFile))

	cfg.Letter.Front = orDefault(raw.Letter.Front, defaultLetterFront)
	cfg.Letter.Text = orDefault(raw.Letter.Text, defaultLetterText)
	cfg.Letter.Question = orDefault(raw.Letter.Question, defaultQuestion)
	cfg.Letter.Yes = orDefault(raw.Letter.Yes, defaultYes)
	cfg.Letter.No = orDefault(raw.Letter.No, defaultNo)
	if offers := trimAll(raw.Letter.Offers); len(offers) > 0 {
		cfg.Letter.Offers = offers
	}
	cfg.Plans.Text = orDefault(raw.Plans.Text, defaultPlansText)

	for _, t := range raw.Tracks {
		t.Title = strings.TrimSpace(t.Title)
		t.File = strings.TrimSpace(t.File)
		if t.File == "" {
			continue
		}
		t.File = mustExpand(t.File)
		if t.Title == "" {
			t.Title = strings.TrimSuffix(filepath.Base(t.File), filepath.Ext(t.File))
		}
		t.Artwork = strings.TrimSpace(t.Artwork)
		cfg.Tracks = append(cfg.Tracks, t)
	}

	for _, p := range raw.Photos {
		p.Name = strings.TrimSpace(p.Name)
		if p.Name == "" {
			continue
		}
		p.Group = strings.ToLower(orDefault(p.Group, "photos"))
		if p.Group != "photos" && p.Group != "letters" {
			return Config{}, fmt.Errorf("photo %q: unknown group %q", p.Name, p.Group)
		}
		folder := "photos"
		if p.Group == "letters" {
			folder = "images"
		}
		p.Folder = orDefault(p.Folder, folder)
		p.File = strings.TrimSpace(p.File)
		cfg.Photos = append(cfg.Photos, p)
	}

	for _, d := range raw.SpecialDates {
		if d.Month < 1 || d.Month > 12 || d.Day < 1 || d.Day > 31 {
			return Config{}, fmt.Errorf("special date %d/%d: out of range", d.Month, d.Day)
		}
		d.Title = orDefault(d.Title, "Note")
		d.Note = strings.TrimSpace(d.Note)
		cfg.SpecialDates = append(cfg.SpecialDates, d)
	}

	return cfg, nil
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v == "" {
		return def
	}
	return v
}

func trimAll(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	expanded, err := homedir.Expand(trimmed)
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Abs(expanded)
}
