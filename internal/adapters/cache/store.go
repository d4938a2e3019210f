// Package cache implements the persistent build cache as a flat JSON index.
package cache

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/moji/internal/core/domain"
	"go.trai.ch/moji/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.BuildCache using a flat JSON file mapping identity
// keys to cache records.
type Store struct {
	logger ports.Logger
	hasher ports.Hasher

	mu      sync.RWMutex
	path    string
	records map[string]domain.CacheRecord
}

// NewStore creates an empty cache. Load attaches it to a file on disk. The
// hasher must be the same one used to compute artifact hashes at build time.
func NewStore(logger ports.Logger, hasher ports.Hasher) *Store {
	return &Store{
		logger:  logger,
		hasher:  hasher,
		records: make(map[string]domain.CacheRecord),
	}
}

// Load reads the index file at the given path. A missing file yields an
// empty cache. A corrupt file is discarded with a warning rather than
// aborting the build, since every record can be regenerated.
func (s *Store) Load(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.path = filepath.Clean(path)
	s.records = make(map[string]domain.CacheRecord)

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read cache index")
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.records); err != nil {
		s.logger.Warn(domain.ErrCacheCorruption.Error()+", rebuilding from scratch", "path", s.path)
		s.records = make(map[string]domain.CacheRecord)
	}

	return nil
}

func (s *Store) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return zerr.New("cache index has no path, call Load first")
	}

	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal cache index")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for cache index")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write cache index")
	}

	return nil
}

// Get retrieves the record for an identity key.
func (s *Store) Get(key string) (*domain.CacheRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[key]
	if !ok {
		return nil, false
	}
	return &record, true
}

// Put stores a record and persists the index, so an interrupted build keeps
// the work it already finished.
func (s *Store) Put(key string, record domain.CacheRecord) error {
	s.mu.Lock()
	s.records[key] = record
	s.mu.Unlock()

	return s.save()
}

// IsValid reports whether the cached artifact for key is current for
// inputHash. The artifact file is re-hashed, so an artifact deleted or
// modified behind the cache's back forces a rebuild.
func (s *Store) IsValid(key, inputHash string) bool {
	record, ok := s.Get(key)
	if !ok {
		return false
	}
	if record.InputHash != inputHash {
		return false
	}

	actual, err := s.hasher.FileHash(record.ArtifactPath)
	if err != nil {
		return false
	}
	return actual == record.ArtifactHash
}

// Sweep drops every record whose key is not in keep and deletes the
// orphaned artifact files.
func (s *Store) Sweep(keep map[string]struct{}) (int, error) {
	s.mu.Lock()
	removed := 0
	for key, record := range s.records {
		if _, ok := keep[key]; ok {
			continue
		}
		delete(s.records, key)
		removed++
		if record.ArtifactPath == "" {
			continue
		}
		if err := os.Remove(record.ArtifactPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("failed to remove orphaned artifact", "path", record.ArtifactPath, "error", err)
		}
	}
	s.mu.Unlock()

	if removed == 0 {
		return 0, nil
	}
	return removed, s.save()
}

// Len returns the number of records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

var _ ports.BuildCache = (*Store)(nil)
