// Package assets discovers emoji source images on disk.
package assets

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/moji/internal/core/domain"
	"go.trai.ch/moji/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.AssetScanner = (*Scanner)(nil)

// Scanner indexes SVG source images by the emoji sequence encoded in their
// file names.
type Scanner struct {
	logger ports.Logger
}

// NewScanner creates a new Scanner.
func NewScanner(logger ports.Logger) *Scanner {
	return &Scanner{logger: logger}
}

// Scan walks imagesDir and flagsDir and indexes every usable SVG. Files
// whose names do not decode are skipped with a warning, so one stray file
// does not abort a build. flagsDir may be empty.
func (s *Scanner) Scan(imagesDir, flagsDir string) (*domain.Inventory, error) {
	inv := domain.NewInventory()

	if err := s.scanImages(imagesDir, inv); err != nil {
		return nil, err
	}
	if flagsDir != "" {
		if err := s.scanFlags(flagsDir, inv); err != nil {
			return nil, err
		}
	}

	return inv, nil
}

func (s *Scanner) scanImages(dir string, inv *domain.Inventory) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read images directory"), "dir", dir)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !isSVG(name) {
			continue
		}

		id, err := domain.ParseFileStem(stem(name))
		if err != nil {
			s.logger.Warn("skipping image with undecodable name", "file", name)
			continue
		}

		path := filepath.Join(dir, name)
		if prev, ok := inv.Images[id]; ok {
			s.logger.Warn("duplicate image for sequence", "sequence", id.Key(), "kept", prev, "ignored", path)
			continue
		}
		inv.Images[id] = path
	}

	return nil
}

// scanFlags indexes flag images, which are named by region code ("DE.svg",
// "GB-SCT.svg") rather than by codepoint sequence.
func (s *Scanner) scanFlags(dir string, inv *domain.Inventory) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("flags directory does not exist", "dir", dir)
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to read flags directory"), "dir", dir)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !isSVG(name) {
			continue
		}

		id, err := domain.IdentityFromRegion(stem(name))
		if err != nil {
			s.logger.Warn("skipping flag with undecodable name", "file", name)
			continue
		}
		code, _ := id.RegionCode()

		path := filepath.Join(dir, name)
		if prev, ok := inv.Flags[code]; ok {
			s.logger.Warn("duplicate flag for region", "region", code, "kept", prev, "ignored", path)
			continue
		}
		inv.Flags[code] = path
	}

	return nil
}

func isSVG(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".svg")
}

func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
