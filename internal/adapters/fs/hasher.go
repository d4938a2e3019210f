// Package fs implements filesystem-backed hashing for the build cache.
package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/moji/internal/core/domain"
	"go.trai.ch/moji/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes cache hashes with XXHash.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// FileHash computes the XXHash of a file's content.
func (h *Hasher) FileHash(path string) (string, error) {
	sum, err := h.fileSum(path)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", sum), nil
}

// ContentHash computes a single hash representing a source file and the
// rendering parameters, so a resolution or renderer change invalidates every
// cached artifact.
func (h *Hasher) ContentHash(path string, cfg domain.RenderConfig) (string, error) {
	sum, err := h.fileSum(path)
	if err != nil {
		return "", err
	}

	hasher := xxhash.New()
	if err := binary.Write(hasher, binary.LittleEndian, sum); err != nil {
		return "", zerr.Wrap(err, "failed to write hash to digest")
	}
	_, _ = hasher.Write([]byte{0}) // Separator

	_, _ = hasher.WriteString(fmt.Sprintf("%d", cfg.Resolution))
	_, _ = hasher.Write([]byte{0})

	_, _ = hasher.WriteString(cfg.RendererTag)
	_, _ = hasher.Write([]byte{0})

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

func (h *Hasher) fileSum(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}
