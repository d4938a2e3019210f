package ports

import (
	"image"
	"io"
)

// Encoder defines the interface for writing rendered glyphs.
//
//go:generate go run go.uber.org/mock/mockgen -source=encoder.go -destination=mocks/mock_encoder.go -package=mocks
type Encoder interface {
	// Encode writes img to w in the encoder's output format.
	Encode(w io.Writer, img image.Image) error

	// Extension returns the file extension for encoded output, with the
	// leading dot.
	Extension() string
}
