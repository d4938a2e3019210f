package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"go.trai.ch/moji/internal/adapters/config"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "moji.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestLoadFull(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
images: svg
flags: third_party/region-flags
tables:
  - tables/emoji-data.txt
  - tables/emoji-zwj-sequences.txt
aliases: emoji_aliases.txt
buildDir: out
resolution: 256
workers: 4
noSequences: true
separator: "-"
assembler:
  cmd: ["python3", "assemble.py"]
  output: out/emoji.ttf
`)

	loader := &config.FileConfigLoader{}
	cfg, err := loader.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ImagesDir != filepath.Join(dir, "svg") {
		t.Errorf("Expected images dir resolved against config dir, got %q", cfg.ImagesDir)
	}
	if len(cfg.Tables) != 2 || cfg.Tables[0] != filepath.Join(dir, "tables/emoji-data.txt") {
		t.Errorf("Unexpected tables: %v", cfg.Tables)
	}
	if cfg.Resolution != 256 {
		t.Errorf("Expected resolution 256, got %d", cfg.Resolution)
	}
	if cfg.Workers != 4 {
		t.Errorf("Expected 4 workers, got %d", cfg.Workers)
	}
	if !cfg.NoSequences {
		t.Error("Expected noSequences to be set")
	}
	if cfg.Separator != "-" {
		t.Errorf("Expected separator %q, got %q", "-", cfg.Separator)
	}
	if len(cfg.Assembler.Command) != 2 || cfg.Assembler.Command[0] != "python3" {
		t.Errorf("Unexpected assembler command: %v", cfg.Assembler.Command)
	}
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
images: svg
tables:
  - emoji-data.txt
`)

	loader := &config.FileConfigLoader{}
	cfg, err := loader.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Resolution != 128 {
		t.Errorf("Expected default resolution 128, got %d", cfg.Resolution)
	}
	if cfg.BuildDir != filepath.Join(dir, "build") {
		t.Errorf("Expected default build dir, got %q", cfg.BuildDir)
	}
	if cfg.Separator != "_" {
		t.Errorf("Expected default separator, got %q", cfg.Separator)
	}
	if cfg.Workers != 0 {
		t.Errorf("Expected workers to default to 0 (one per CPU), got %d", cfg.Workers)
	}
	if cfg.CachePath() != filepath.Join(cfg.BuildDir, "cache.json") {
		t.Errorf("Unexpected cache path %q", cfg.CachePath())
	}
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"no images", "tables: [emoji-data.txt]\n"},
		{"no tables", "images: svg\n"},
		{"negative workers", "images: svg\ntables: [t.txt]\nworkers: -1\n"},
		{"bad yaml", "images: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, dir, tt.content)
			loader := &config.FileConfigLoader{}
			if _, err := loader.Load(path); err == nil {
				t.Fatal("Expected error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	loader := &config.FileConfigLoader{}
	if _, err := loader.Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("Expected error for missing file")
	}
}
