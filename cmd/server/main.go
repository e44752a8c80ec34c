package main

import (
	"log"
	"strings"

	"food-wastage-backend/internal/audit"
	"food-wastage-backend/internal/config"
	"food-wastage-backend/internal/dashboard"
	"food-wastage-backend/internal/database"
	"food-wastage-backend/internal/listing"
	"food-wastage-backend/internal/provider"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Veritabanı açılamadı: %v", err)
	}

	store := listing.NewStore(db, cfg.ListingCacheTTL)
	if err := store.Initialize(); err != nil {
		log.Fatalf("Migration hatası: %v", err)
	}

	auditSvc, err := audit.NewService(db)
	if err != nil {
		log.Fatalf("Migration hatası: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,OPTIONS",
	}))

	api := app.Group("/api")

	// Listing'ler
	api.Post("/listings", listing.CreateListingHandler(store, auditSvc))
	api.Get("/listings", listing.ListListingsHandler(store))
	api.Get("/listings/cities", listing.ListCitiesHandler(store))
	api.Post("/listings/import", listing.ImportListingsHandler(store, auditSvc))

	// Sağlayıcı iletişim bilgileri
	api.Get("/providers", provider.ListByCityHandler(store))

	// Dashboard
	api.Get("/dashboard/overview", dashboard.OverviewHandler(store))
	api.Get("/dashboard/quantity-by-location", dashboard.QuantityByLocationHandler(store))
	api.Get("/dashboard/quantity-by-meal-type", dashboard.QuantityByMealTypeHandler(store))
	api.Get("/dashboard/top-food-items", dashboard.TopFoodItemsHandler(store))
	api.Get("/dashboard/average-quantity-by-meal-type", dashboard.AverageQuantityByMealTypeHandler(store))
	api.Get("/dashboard/expiry-status", dashboard.ExpiryStatusHandler(store))
	api.Get("/dashboard/expiry-trend", dashboard.ExpiryTrendHandler(store))

	// Audit logs
	api.Get("/audit-logs", audit.ListAuditLogsHandler(auditSvc))

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
