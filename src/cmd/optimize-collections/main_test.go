package main

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
)

func TestRunConvertsCollections(t *testing.T) {
	root := t.TempDir()
	t.Setenv("RBV_ROOT", root)
	src := filepath.Join(root, "assets", "collections")
	if err := os.MkdirAll(src, 0755); err != nil {
		t.Fatalf("Failed to create collections dir: %v", err)
	}
	if err := imaging.Save(imaging.New(64, 48, color.NRGBA{B: 255, A: 255}), filepath.Join(src, "shot.png")); err != nil {
		t.Fatalf("Failed to write image: %v", err)
	}
	if err := os.WriteFile(filepath.Join(src, "bad.jpg"), []byte("nope"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	var stdout, stderr bytes.Buffer
	if code := run(nil, &stdout, &stderr); code != 0 {
		t.Fatalf("Expected exit 0 despite a corrupt file, got %d (stderr: %s)", code, stderr.String())
	}
	if _, err := os.Stat(filepath.Join(src, "optimized", "shot.webp")); err != nil {
		t.Errorf("Expected shot.webp: %v", err)
	}
	if !strings.Contains(stdout.String(), "Failed for ") {
		t.Errorf("Expected failure line on stdout, got %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "1 of 2 images failed") {
		t.Errorf("Expected failure summary, got %q", stderr.String())
	}
}

func TestRunMissingCollections(t *testing.T) {
	root := t.TempDir()
	t.Setenv("RBV_ROOT", root)

	var stdout, stderr bytes.Buffer
	if code := run(nil, &stdout, &stderr); code != 1 {
		t.Errorf("Expected exit 1, got %d", code)
	}
	if !strings.Contains(stdout.String(), "No collections folder at") {
		t.Errorf("Expected missing-folder message, got %q", stdout.String())
	}
	if stderr.Len() != 0 {
		t.Errorf("Expected nothing on stderr, got %q", stderr.String())
	}
}

func TestRunRejectsArguments(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--quality", "90"}, &stdout, &stderr); code != 2 {
		t.Errorf("Expected exit 2 for unknown flag, got %d", code)
	}
}
