package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestRead(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "memento.log")

	var content strings.Builder
	var all []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		all = append(all, line)
	}
	if err := os.WriteFile(logPath, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{"none (0)", 0, nil},
		{"none (negative)", -1, nil},
		{"partial (5)", 5, all[5:]},
		{"exactly all (10)", 10, all},
		{"more than exists (20)", 20, all},
		{"one", 1, all[9:]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read: %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Fatalf("Read = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestReadMissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "nope.log"), 10)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != nil {
		t.Fatalf("Read = %v, want nil", got)
	}
}

func TestParseAndFormat(t *testing.T) {
	line := `{"time":"2025-03-03T15:04:05Z","level":"WARN","msg":"note write failed","app":"memento","component":"persist","error":"disk full"}`
	rec := Parse(line)

	if rec.Level != "WARN" || rec.Message != "note write failed" {
		t.Fatalf("Parse = %+v", rec)
	}
	if _, ok := rec.Attrs["app"]; ok {
		t.Fatal("app attribute should be dropped")
	}

	rec.Time = time.Time{}
	want := `WARN  note write failed component=persist error=disk full`
	if got := rec.Format(); got != want {
		t.Fatalf("Format = %q, want %q", got, want)
	}
}

func TestParsePlainText(t *testing.T) {
	rec := Parse("not json")
	if rec.Message != "not json" || rec.Level != "" {
		t.Fatalf("Parse = %+v", rec)
	}
	if got := rec.Format(); got != "not json" {
		t.Fatalf("Format = %q", got)
	}
}
