package ports

import (
	"context"

	"go.trai.ch/moji/internal/core/domain"
)

// Assembler defines the interface for handing rendered glyphs to the font
// assembly toolchain.
//
//go:generate go run go.uber.org/mock/mockgen -source=assembler.go -destination=mocks/mock_assembler.go -package=mocks
type Assembler interface {
	// Assemble writes the manifest and invokes the configured assembly
	// command. It returns the path of the produced font file.
	Assemble(ctx context.Context, cfg domain.AssemblerConfig, manifest domain.Manifest, manifestPath string) (string, error)
}
