package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/kestrel/internal/app"
	"github.com/dshills/kestrel/internal/config"
	"github.com/dshills/kestrel/internal/renderer/backend"
)

func TestParseFlags(t *testing.T) {
	var stderr bytes.Buffer
	opts, err := parseFlags([]string{"-c", "my.toml", "-log-level", "debug", "notes.txt"}, &stderr)
	if err != nil {
		t.Fatalf("parseFlags failed: %v", err)
	}

	if opts.configPath != "my.toml" {
		t.Errorf("configPath = %q", opts.configPath)
	}
	if opts.file != "notes.txt" {
		t.Errorf("file = %q", opts.file)
	}
	if opts.overrides[config.PathLogLevel] != "debug" {
		t.Errorf("overrides = %v", opts.overrides)
	}
	if _, ok := opts.overrides[config.PathLogFile]; ok {
		t.Error("unset flag should not override config")
	}
}

func TestParseFlags_TooManyFiles(t *testing.T) {
	var stderr bytes.Buffer
	_, err := parseFlags([]string{"a.txt", "b.txt"}, &stderr)
	if err == nil {
		t.Fatal("expected error for two files")
	}
	if !strings.Contains(stderr.String(), "Usage: kestrel") {
		t.Errorf("expected usage on stderr, got %q", stderr.String())
	}
}

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-version"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.HasPrefix(stdout.String(), "Kestrel dev") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRun_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-help"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(stderr.String(), "-log-level") {
		t.Errorf("usage missing flags: %q", stderr.String())
	}
}

func TestRun_BadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-nope"}, &stdout, &stderr); code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
}

func TestRun_MissingConfig(t *testing.T) {
	var stdout, stderr bytes.Buffer
	path := filepath.Join(t.TempDir(), "missing.toml")
	if code := run([]string{"-config", path}, &stdout, &stderr); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.HasPrefix(stderr.String(), "Error: config:") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestOpenLogger(t *testing.T) {
	logger, closeLog, err := openLogger(config.LoggingConfig{Level: "info"})
	if err != nil || logger != nil {
		t.Fatalf("expected disabled logging, got %v, %v", logger, err)
	}
	closeLog()

	path := filepath.Join(t.TempDir(), "kestrel.log")
	logger, closeLog, err = openLogger(config.LoggingConfig{Level: "debug", File: path})
	if err != nil {
		t.Fatalf("openLogger failed: %v", err)
	}
	logger.Debug("hello %d", 1)
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[DEBUG] kestrel: hello 1") {
		t.Errorf("log = %q", data)
	}
}

func TestCursorStyles(t *testing.T) {
	styles, err := cursorStyles(config.CursorConfig{Normal: "underline", Insert: "BAR"})
	if err != nil {
		t.Fatalf("cursorStyles failed: %v", err)
	}
	want := app.CursorStyles{Normal: backend.CursorUnderline, Insert: backend.CursorBar}
	if styles != want {
		t.Errorf("styles = %+v, want %+v", styles, want)
	}

	if _, err := cursorStyles(config.CursorConfig{Normal: "beam", Insert: "bar"}); err == nil {
		t.Error("expected error for unknown style")
	}
}
