package database

import (
	"fmt"

	"food-wastage-backend/internal/config"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open: konfigürasyona göre sqlite veya postgres bağlantısı açar.
// Tablo migration'ları burada değil, store tarafında (Initialize) yapılır.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch cfg.DBDriver {
	case "sqlite":
		dial = sqlite.Open(cfg.DatabaseDSN)
	case "postgres":
		dial = postgres.Open(cfg.DatabaseDSN)
	default:
		return nil, fmt.Errorf("bilinmeyen DB_DRIVER: %s (sqlite|postgres)", cfg.DBDriver)
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("veritabanına bağlanılamadı: %w", err)
	}
	return db, nil
}
