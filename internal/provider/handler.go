package provider

import (
	"strings"

	"food-wastage-backend/internal/listing"

	"github.com/gofiber/fiber/v2"
)

type ProviderResponse struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	City    string `json:"city"`
}

// -------------------------------------------------
// GET /api/providers?city=Istanbul
// Seçili şehirdeki sağlayıcı iletişim bilgileri. Eşleşme yoksa boş liste.
// -------------------------------------------------
func ListByCityHandler(store *listing.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		city := strings.TrimSpace(c.Query("city"))
		if city == "" {
			return fiber.NewError(fiber.StatusBadRequest, "city zorunlu")
		}

		rows, err := store.ProvidersByCity(city)
		if err != nil {
			return listing.MapError(err)
		}

		resp := make([]ProviderResponse, 0, len(rows))
		for _, p := range rows {
			resp = append(resp, ProviderResponse{
				Name:    p.Name,
				Contact: p.Contact,
				City:    p.City,
			})
		}

		return c.JSON(resp)
	}
}
