// Package logtail reads the end of memento's log file for the logs command.
//
// Read uses a ring buffer, so it keeps O(maxLines) memory however large the
// rotated file has grown, and returns lines oldest first.
//
//	lines, err := logtail.Read("~/.local/share/memento/memento.log", 50)
//
// Parse decodes the slog JSON records written by internal/logging; Format
// turns one back into a single readable line. Lines that are not JSON pass
// through unchanged.
package logtail
