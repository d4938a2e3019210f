// Package pngenc writes rendered glyphs as PNG.
package pngenc

import (
	"image"
	"image/png"
	"io"

	"go.trai.ch/moji/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Encoder = (*Encoder)(nil)

// Encoder writes PNG with maximum compression. Glyph files ship inside
// fonts, so size wins over encoding speed.
type Encoder struct {
	enc png.Encoder
}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{
		enc: png.Encoder{CompressionLevel: png.BestCompression},
	}
}

// Encode writes img to w as PNG.
func (e *Encoder) Encode(w io.Writer, img image.Image) error {
	if err := e.enc.Encode(w, img); err != nil {
		return zerr.Wrap(err, "failed to encode png")
	}
	return nil
}

// Extension returns ".png".
func (e *Encoder) Extension() string {
	return ".png"
}
