// Package config loads memento's TOML configuration.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/memento/config.toml
//  3. If the file doesn't exist, use Defaults
//  4. If a field is missing, empty or out of range, use its default
//
// Missing config files are not an error. memento runs with the built-in PIN,
// a silent player and the default catalog until told otherwise.
//
// # TOML Format
//
//	[lock]
//	pin = "030324"          # wins over the keyring
//	keyring = false         # look up service "memento", user "pin"
//	error_message = "Wrong password. Try again, lovey."
//
//	[desktop]
//	margin_ratio = 0.05
//	inactivity = "3m"
//	thumb_width = 12
//	thumb_height = 5
//	assets = "~/.local/share/memento/assets"
//
//	[storage]
//	dir = "~/.local/share/memento/store"
//
//	[media]
//	command = ["mpv", "--no-video", "--really-quiet", "--volume={volume}", "{file}"]
//	volume = 75
//
//	[log]
//	level = "info"
//	file = "~/.local/share/memento/memento.log"
//
//	[[tracks]]
//	title = "Tsunami"
//	file = "~/music/tsunami.mp3"
//
//	[[photos]]
//	name = "beach"          # probed as <assets>/thumbnails/beach.png etc.
//	group = "photos"        # or "letters"
//
//	[[special_dates]]
//	month = 2
//	day = 14
//	note = "dinner"
//
// # Path Expansion
//
// Paths may start with ~ and are made absolute. Expansion applies to the config
// location, storage.dir, log.file, desktop.assets and track files.
//
// # Error Handling
//
// Load returns errors for unreadable files, TOML syntax errors, unparsable
// durations, unknown photo groups and impossible dates. Everything else
// degrades to defaults.
package config
