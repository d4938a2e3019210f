// Package config provides the configuration loader for moji.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/moji/internal/core/domain"
	"go.trai.ch/moji/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the config file looked up when no path is given.
const DefaultFilename = "moji.yaml"

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct{}

// Mojifile represents the structure of the moji.yaml configuration file.
type Mojifile struct {
	Images      string       `yaml:"images"`
	Flags       string       `yaml:"flags"`
	Tables      []string     `yaml:"tables"`
	Aliases     string       `yaml:"aliases"`
	BuildDir    string       `yaml:"buildDir"`
	Resolution  int          `yaml:"resolution"`
	Workers     int          `yaml:"workers"`
	NoSequences bool         `yaml:"noSequences"`
	Separator   string       `yaml:"separator"`
	Assembler   AssemblerDTO `yaml:"assembler"`
}

// AssemblerDTO represents the assembly toolchain section.
type AssemblerDTO struct {
	Cmd    []string `yaml:"cmd"`
	Output string   `yaml:"output"`
}

// Load reads the configuration file at the given path, applies defaults and
// validates the result. Relative paths in the file resolve against the
// file's directory.
func (l *FileConfigLoader) Load(path string) (*domain.BuildConfig, error) {
	if path == "" {
		path = DefaultFilename
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var mojifile Mojifile
	if err := yaml.Unmarshal(data, &mojifile); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	if mojifile.BuildDir == "" {
		mojifile.BuildDir = "build"
	}

	base := filepath.Dir(path)
	cfg := &domain.BuildConfig{
		ImagesDir:   resolve(base, mojifile.Images),
		FlagsDir:    resolve(base, mojifile.Flags),
		AliasFile:   resolve(base, mojifile.Aliases),
		BuildDir:    resolve(base, mojifile.BuildDir),
		Resolution:  mojifile.Resolution,
		Workers:     mojifile.Workers,
		NoSequences: mojifile.NoSequences,
		Separator:   mojifile.Separator,
		Assembler:   domain.AssemblerConfig{Command: mojifile.Assembler.Cmd, Output: mojifile.Assembler.Output},
	}
	for _, table := range mojifile.Tables {
		cfg.Tables = append(cfg.Tables, resolve(base, table))
	}

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return cfg, nil
}

func applyDefaults(cfg *domain.BuildConfig) {
	if cfg.Resolution == 0 {
		cfg.Resolution = 128
	}
	if cfg.Separator == "" {
		cfg.Separator = "_"
	}
}

func resolve(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
