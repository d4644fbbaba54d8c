package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/vovakirdan/chromaball/internal/config"
)

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteConfigDefaults(t *testing.T) {
	var buf bytes.Buffer
	if err := writeConfig(&buf, false); err != nil {
		t.Fatalf("writeConfig failed: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), config.DefaultYAML()) {
		t.Error("output differs from embedded defaults")
	}
}

func TestWriteConfigReportsWriteError(t *testing.T) {
	err := writeConfig(failWriter{}, false)
	if err == nil {
		t.Fatal("expected write error")
	}
	if got := err.Error(); got != "write config: disk full" {
		t.Errorf("error = %q", got)
	}
}
