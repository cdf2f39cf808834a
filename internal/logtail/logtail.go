package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

// Read returns at most maxLines from the end of the file at path. A missing
// file has no lines.
func Read(path string, maxLines int) ([]string, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	ring := make([]string, maxLines)
	next, count := 0, 0
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		ring[next] = scanner.Text()
		next = (next + 1) % maxLines
		count = min(count+1, maxLines)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	if count < maxLines {
		return append([]string(nil), ring[:count]...), nil
	}
	lines := make([]string, 0, count)
	lines = append(lines, ring[next:]...)
	return append(lines, ring[:next]...), nil
}

// Record is one parsed slog JSON line.
type Record struct {
	Time    time.Time
	Level   string
	Message string
	Attrs   map[string]string
}

// Parse decodes a JSON log line. Lines that are not JSON objects are returned
// with the raw text as the message.
func Parse(line string) Record {
	var raw map[string]any
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return Record{Message: line}
	}
	rec := Record{Attrs: map[string]string{}}
	for k, v := range raw {
		switch k {
		case "time":
			if s, ok := v.(string); ok {
				rec.Time, _ = time.Parse(time.RFC3339Nano, s)
			}
		case "level":
			rec.Level, _ = v.(string)
		case "msg":
			rec.Message, _ = v.(string)
		case "app", "ver":
		default:
			rec.Attrs[k] = fmt.Sprint(v)
		}
	}
	return rec
}

// Format renders a record as "15:04:05 LEVEL message key=value ...", with
// attributes in key order.
func (r Record) Format() string {
	var b strings.Builder
	if !r.Time.IsZero() {
		b.WriteString(r.Time.Local().Format("15:04:05"))
		b.WriteByte(' ')
	}
	if r.Level != "" {
		fmt.Fprintf(&b, "%-5s ", r.Level)
	}
	b.WriteString(r.Message)

	keys := make([]string, 0, len(r.Attrs))
	for k := range r.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%s", k, r.Attrs[k])
	}
	return b.String()
}
