// Package persist mirrors session data into durable storage.
//
// Two keys are kept: the sticky note text, stored verbatim, and the desktop
// thumbnail positions, stored as a JSON object. Each key is read once at
// startup by Mirror.Load and written back after every change. Reads that fail
// leave the in-memory defaults in place and disable write-back for that key
// for the rest of the run.
//
// Resizes are coalesced with a Debouncer; when the terminal settles the
// Mirror rescales every saved thumbnail position into the new bounds.
package persist
