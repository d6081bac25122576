package repository

import (
	"fmt"
	"os"
	"path/filepath"

	"ussurochki/internal/app/ds"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func New(dbPath string) (*Repository, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data dir: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// WAL переживает падение процесса без порчи файла базы
	if err := db.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
		return nil, fmt.Errorf("failed to set journal mode: %w", err)
	}

	// Автоматическая миграция всех таблиц
	err = db.AutoMigrate(
		&ds.Client{},
		&ds.Product{},
		&ds.MklOrder{},
		&ds.MklOrderItem{},
		&ds.MeridianOrder{},
		&ds.MeridianOrderItem{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Repository{
		db: db,
	}, nil
}
