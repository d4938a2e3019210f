package ports

import "image"

// Rasterizer defines the interface for turning a source image into pixels.
//
//go:generate go run go.uber.org/mock/mockgen -source=rasterizer.go -destination=mocks/mock_rasterizer.go -package=mocks
type Rasterizer interface {
	// Rasterize renders data onto a size x size canvas, preserving aspect
	// ratio and centering the result.
	Rasterize(data []byte, size int) (image.Image, error)

	// Version identifies the renderer implementation. It feeds into cache
	// input hashes so a renderer change invalidates cached artifacts.
	Version() string
}
