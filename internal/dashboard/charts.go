package dashboard

import (
	"fmt"

	"food-wastage-backend/internal/listing"

	"github.com/gofiber/fiber/v2"
)

type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type ChartResponse struct {
	Points     []ChartPoint `json:"points"`
	GrandTotal float64      `json:"grand_total"`
}

type ExpiryStatusResponse struct {
	Expired    int    `json:"expired"`
	NotExpired int    `json:"not_expired"`
	AsOf       string `json:"as_of"`
}

func toChartResponse(sums []listing.GroupSum) ChartResponse {
	resp := ChartResponse{Points: make([]ChartPoint, 0, len(sums))}
	for _, g := range sums {
		resp.Points = append(resp.Points, ChartPoint{Label: g.Label, Value: g.Total})
		resp.GrandTotal += g.Total
	}
	return resp
}

// -------------------------------------------------
// GET /api/dashboard/quantity-by-location
// -------------------------------------------------
func QuantityByLocationHandler(store *listing.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, err := store.ListAll()
		if err != nil {
			return listing.MapError(err)
		}
		return c.JSON(toChartResponse(listing.QuantityByLocation(rows)))
	}
}

// -------------------------------------------------
// GET /api/dashboard/quantity-by-meal-type
// -------------------------------------------------
func QuantityByMealTypeHandler(store *listing.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, err := store.ListAll()
		if err != nil {
			return listing.MapError(err)
		}
		return c.JSON(toChartResponse(listing.QuantityByMealType(rows)))
	}
}

// -------------------------------------------------
// GET /api/dashboard/top-food-items?limit=5
// -------------------------------------------------
func TopFoodItemsHandler(store *listing.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := 5
		if raw := c.Query("limit"); raw != "" {
			if _, err := fmt.Sscan(raw, &limit); err != nil || limit <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "limit geçersiz")
			}
		}

		rows, err := store.ListAll()
		if err != nil {
			return listing.MapError(err)
		}
		return c.JSON(toChartResponse(listing.TopFoodItemsByQuantity(rows, limit)))
	}
}

// -------------------------------------------------
// GET /api/dashboard/average-quantity-by-meal-type
// -------------------------------------------------
func AverageQuantityByMealTypeHandler(store *listing.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, err := store.ListAll()
		if err != nil {
			return listing.MapError(err)
		}

		averages := listing.AverageQuantityByMealType(rows)
		points := make([]ChartPoint, 0, len(averages))
		for _, a := range averages {
			points = append(points, ChartPoint{Label: a.Label, Value: a.Average})
		}

		// Ortalama serisinde grand total anlamsız, sadece noktalar döner
		return c.JSON(fiber.Map{"points": points})
	}
}

// -------------------------------------------------
// GET /api/dashboard/expiry-status?as_of=2025-08-25
// Expired / not-expired iki kovalı sayım; tarihi bozuk satırlar iki kovaya
// da girmez.
// -------------------------------------------------
func ExpiryStatusHandler(store *listing.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		asOf, err := asOfFromQuery(c)
		if err != nil {
			return err
		}

		rows, err := store.ListAll()
		if err != nil {
			return listing.MapError(err)
		}

		st := listing.ComputeExpiryStatus(rows, asOf)
		return c.JSON(ExpiryStatusResponse{
			Expired:    st.Expired,
			NotExpired: st.NotExpired,
			AsOf:       asOf.Format(listing.DateLayout),
		})
	}
}

// -------------------------------------------------
// GET /api/dashboard/expiry-trend
// Expiry tarihine göre miktar toplamı, tarih artan sırada.
// -------------------------------------------------
func ExpiryTrendHandler(store *listing.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, err := store.ListAll()
		if err != nil {
			return listing.MapError(err)
		}
		return c.JSON(toChartResponse(listing.QuantityByExpiryDate(rows)))
	}
}
