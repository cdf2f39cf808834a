// Package app is the composition root for memento.
//
// # Startup
//
// Run wires the packages together in this order:
//
//  1. config.Load reads ~/.config/memento/config.toml (or --config)
//  2. logging.New opens the rotating log file
//  3. secret.Resolve picks the PIN: config, then OS keyring, then the default
//  4. OpenStore opens the diskv data directory, or memory with --ephemeral
//  5. persist.NewMirror binds the store to a fresh state.Session and loads
//     the sticky note and thumbnail positions
//  6. the media command (or a silent player) backs playback.Machine, with
//     the volume from prefs when saved, else from config
//  7. ui.Run takes over the terminal until the user quits
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()
//	       ├─────> logging.New()
//	       ├─────> secret.Resolve()
//	       ├─────> OpenStore() ──> persist.Mirror.Load()
//	       ├─────> media / playback
//	       └─────> ui.Run()            (blocks)
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Configuration file unreadable or invalid
//   - Log directory or data directory cannot be created
//   - A configured PIN that is not all digits
//
// Recoverable errors (logged, startup continues):
//   - Keyring lookup failure, which falls back to the default PIN
//   - Media command not found, which falls back to silence
//   - Store read failures, which leave the defaults in place
package app
