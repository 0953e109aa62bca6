package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_WritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	l, c, err := New(Config{Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	l.Debug("hidden")
	l.Info("visible", "key", "value")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message logged at info level: %q", out)
	}
	if !strings.Contains(out, "visible") || !strings.Contains(out, "key=value") {
		t.Errorf("info message missing: %q", out)
	}
	if !strings.Contains(out, "skinmock") {
		t.Errorf("prefix missing: %q", out)
	}
}

func TestNew_DebugLevel(t *testing.T) {
	var buf bytes.Buffer
	l, c, err := New(Config{Debug: true, Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	l.Debug("shown in debug")
	if !strings.Contains(buf.String(), "shown in debug") {
		t.Errorf("debug message missing: %q", buf.String())
	}
}

func TestNew_WithFile(t *testing.T) {
	var buf bytes.Buffer
	p := filepath.Join(t.TempDir(), "logs", "skinmock.log")
	l, c, err := New(Config{File: p, Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	l.Info("to file")
	if err := c.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Errorf("file missing message: %q", data)
	}
	if !strings.Contains(buf.String(), "to file") {
		t.Errorf("output missing message: %q", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Info("dropped")
	l.Error("dropped")
}
