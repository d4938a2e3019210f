package ports

import "go.trai.ch/moji/internal/core/domain"

// Hasher defines the interface for computing hashes.
//
//go:generate go run go.uber.org/mock/mockgen -destination=mocks/hasher_mock.go -package=mocks -source=hasher.go
type Hasher interface {
	// ContentHash computes the cache input hash for a source file rendered
	// with the given parameters.
	ContentHash(path string, cfg domain.RenderConfig) (string, error)

	// FileHash computes the hash of a file's raw bytes.
	FileHash(path string) (string, error)
}
