package ports

import "go.trai.ch/moji/internal/core/domain"

// BuildCache defines the interface for the persistent build cache.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type BuildCache interface {
	// Load reads the cache index from the given path. A missing file
	// yields an empty cache.
	Load(path string) error

	// Get retrieves the record for an identity key. The second return
	// value reports whether the record exists.
	Get(key string) (*domain.CacheRecord, bool)

	// Put stores a record and persists the index.
	Put(key string, record domain.CacheRecord) error

	// IsValid reports whether the cached artifact for key is current for
	// inputHash: the record exists, the hashes match and the artifact on
	// disk is intact.
	IsValid(key, inputHash string) bool

	// Sweep drops every record whose key is not in keep, deletes the
	// orphaned artifacts and returns how many records were removed.
	Sweep(keep map[string]struct{}) (int, error)

	// Len returns the number of records.
	Len() int
}
