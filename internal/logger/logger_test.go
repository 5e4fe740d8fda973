package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestPrettyHandlerFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelInfo, "pretty")

	log.Debug("hidden")
	log.Info("shown", "feedback", "가")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug record leaked at info level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "가") {
		t.Fatalf("expected info record with attr, got %q", out)
	}
}

func TestPrettyHandlerWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelDebug, "pretty").With("session", 3)

	log.Debug("process")
	if !strings.Contains(buf.String(), "session") {
		t.Fatalf("expected bound attribute in output, got %q", buf.String())
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, slog.LevelInfo, "json").Info("commit", "text", "값")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
	if record["text"] != "값" {
		t.Fatalf("unexpected record %v", record)
	}
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("DEBUG")
	if err != nil || level != slog.LevelDebug {
		t.Fatalf("expected debug, got %v (err=%v)", level, err)
	}
	if _, err := ParseLevel("chatty"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestPrettyHandlerPlainWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, slog.LevelInfo, "pretty").Info("commit", "text", "가")

	if strings.Contains(buf.String(), "\033[") {
		t.Fatalf("expected no escape codes for a non-terminal writer, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "INF commit text=가") {
		t.Fatalf("unexpected line %q", buf.String())
	}
}

func TestPrettyHandlerColorsWhenForced(t *testing.T) {
	var buf bytes.Buffer
	h := NewPrettyHandler(&buf, slog.LevelInfo)
	h.color = true
	slog.New(h).Info("commit")

	if !strings.Contains(buf.String(), green+"INF"+reset) {
		t.Fatalf("expected colored level, got %q", buf.String())
	}
}
