package ports

import (
	"io"

	"go.trai.ch/moji/internal/core/domain"
)

// TableParser defines the interface for reading Unicode emoji data files.
//
//go:generate go run go.uber.org/mock/mockgen -source=tables.go -destination=mocks/mock_tables.go -package=mocks
type TableParser interface {
	// ParseFile reads a table from disk. The table shape is detected from
	// the content.
	ParseFile(path string) ([]domain.TableEntry, error)

	// Parse reads a table from r. The name is attached to entries as their
	// source for diagnostics.
	Parse(r io.Reader, name string) ([]domain.TableEntry, error)

	// ParseAliasFile reads a file of sequence pairs mapping an emoji to the
	// emoji whose image it shares.
	ParseAliasFile(path string) (map[domain.Identity]domain.Identity, error)
}
