package dashboard

import (
	"time"

	"food-wastage-backend/internal/listing"

	"github.com/gofiber/fiber/v2"
)

type OverviewResponse struct {
	TotalListings   int     `json:"total_listings"`
	TotalQuantity   float64 `json:"total_quantity"` // kg
	UniqueFoodItems int     `json:"unique_food_items"`
	UniqueProviders int     `json:"unique_providers"`
	ExpiredListings int     `json:"expired_listings"`
	AsOf            string  `json:"as_of"`
}

// -------------------------------------------------
// GET /api/dashboard/overview?as_of=2025-08-25
// Üst KPI satırı. as_of verilmezse bugün kullanılır.
// -------------------------------------------------
func OverviewHandler(store *listing.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		asOf, err := asOfFromQuery(c)
		if err != nil {
			return err
		}

		rows, err := store.ListAll()
		if err != nil {
			return listing.MapError(err)
		}

		totals := listing.ComputeTotals(rows)

		return c.JSON(OverviewResponse{
			TotalListings:   totals.ListingCount,
			TotalQuantity:   totals.TotalQuantity,
			UniqueFoodItems: totals.UniqueFoodItems,
			UniqueProviders: totals.UniqueProviders,
			ExpiredListings: listing.ExpiredCount(rows, asOf),
			AsOf:            asOf.Format(listing.DateLayout),
		})
	}
}

// as_of query paramı; boşsa bugünün 00:00'ı (gün bazlı karşılaştırma)
func asOfFromQuery(c *fiber.Ctx) (time.Time, error) {
	raw := c.Query("as_of")
	if raw == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	d, err := time.Parse(listing.DateLayout, raw)
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "as_of tarihi geçersiz, 'YYYY-MM-DD' olmalı")
	}
	return d, nil
}
