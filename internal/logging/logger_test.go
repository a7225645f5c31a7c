package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func newBufferLogger(level string) (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	levelVar := new(slog.LevelVar)
	levelVar.Set(parseLevel(level))
	return slog.New(newConsoleHandler(buf, levelVar)), buf
}

func TestConsoleHandlerFormatsRecord(t *testing.T) {
	logger, buf := newBufferLogger("info")
	logger.Info("file placed", String("category", "Receipts"), Int("count", 3))
	line := buf.String()
	if !strings.Contains(line, "INFO file placed") {
		t.Fatalf("line = %q", line)
	}
	if !strings.Contains(line, "category=Receipts") || !strings.Contains(line, "count=3") {
		t.Fatalf("line = %q", line)
	}
}

func TestConsoleHandlerHoistsComponent(t *testing.T) {
	logger, buf := newBufferLogger("info")
	NewComponentLogger(logger, "organizer").Info("run started")
	line := buf.String()
	if !strings.Contains(line, "organizer: run started") {
		t.Fatalf("line = %q", line)
	}
	if strings.Contains(line, "component=") {
		t.Fatalf("component attr should be hoisted, line = %q", line)
	}
}

func TestConsoleHandlerQuotesValuesWithSpaces(t *testing.T) {
	logger, buf := newBufferLogger("info")
	logger.Warn("triage skipped", Error(errors.New("copy failed: disk full")))
	if !strings.Contains(buf.String(), `error="copy failed: disk full"`) {
		t.Fatalf("line = %q", buf.String())
	}
}

func TestConsoleHandlerRespectsLevel(t *testing.T) {
	logger, buf := newBufferLogger("warn")
	logger.Info("hidden")
	logger.Warn("visible")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info leaked through warn level: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Fatalf("warn missing: %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"unknown": slog.LevelInfo,
	}
	for input, want := range cases {
		if got := parseLevel(input); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
