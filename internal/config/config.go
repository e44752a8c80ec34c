package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPPort        string
	DBDriver        string // "sqlite" | "postgres"
	DatabaseDSN     string
	CORSOrigins     string
	ListingCacheTTL time.Duration // listing okuma cache süresi
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		DBDriver:        getEnv("DB_DRIVER", "sqlite"),
		DatabaseDSN:     getEnv("DATABASE_DSN", "food_wastage.db"),
		CORSOrigins:     getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		ListingCacheTTL: getCacheTTL(),
	}

	if cfg.DBDriver == "postgres" && os.Getenv("DATABASE_DSN") == "" {
		log.Fatal("[FATAL] DB_DRIVER=postgres için DATABASE_DSN tanımlanmalı.")
	}
	if cfg.DBDriver == "sqlite" && cfg.DatabaseDSN == "food_wastage.db" {
		log.Println("[WARN] DATABASE_DSN varsayılan değer kullanılıyor (food_wastage.db), production için kendi veritabanı yolunu tanımla.")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS varsayılan değer kullanılıyor, production için mutlaka kendi domain'ini tanımla.")
	}

	return cfg
}

// LISTING_CACHE_TTL saniye cinsinden; 0 cache'i kapatır.
func getCacheTTL() time.Duration {
	raw := os.Getenv("LISTING_CACHE_TTL")
	if raw == "" {
		return 60 * time.Second
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		log.Printf("[WARN] LISTING_CACHE_TTL geçersiz (%q), varsayılan 60 sn kullanılıyor", raw)
		return 60 * time.Second
	}
	return time.Duration(n) * time.Second
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
