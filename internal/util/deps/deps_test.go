package deps

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindFFmpeg_CustomPath(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "ffmpeg-custom")
	if err := os.WriteFile(bin, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := FindFFmpeg(bin)
	if err != nil {
		t.Fatalf("FindFFmpeg() error = %v", err)
	}
	if got != bin {
		t.Errorf("FindFFmpeg() = %q, want %q", got, bin)
	}
}

func TestFindFFprobe_MissingCustomPath(t *testing.T) {
	if _, err := FindFFprobe(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Errorf("FindFFprobe() expected error for missing path, got nil")
	}
}

func TestFind_DirectoryIsNotBinary(t *testing.T) {
	if _, err := FindFFmpeg(t.TempDir()); err == nil {
		t.Errorf("FindFFmpeg() expected error for directory, got nil")
	}
}
