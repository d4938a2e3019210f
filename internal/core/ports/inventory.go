package ports

import "go.trai.ch/moji/internal/core/domain"

// AssetScanner defines the interface for discovering source images.
//
//go:generate go run go.uber.org/mock/mockgen -source=inventory.go -destination=mocks/mock_inventory.go -package=mocks
type AssetScanner interface {
	// Scan walks the image directories and indexes every usable source
	// file. flagsDir may be empty.
	Scan(imagesDir, flagsDir string) (*domain.Inventory, error)
}
