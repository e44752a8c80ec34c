package listing

import (
	"strings"

	"food-wastage-backend/internal/audit"
	"food-wastage-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateListingRequest struct {
	FoodID          string  `json:"food_id"`
	ProviderID      string  `json:"provider_id"`
	FoodItem        string  `json:"food_item"`
	Quantity        float64 `json:"quantity"`    // kg
	ExpiryDate      string  `json:"expiry_date"` // "YYYY-MM-DD"
	Location        string  `json:"location"`
	MealType        string  `json:"meal_type"` // "Veg" | "Non-Veg" | "Vegan"
	ProviderName    string  `json:"provider_name"`
	ProviderContact string  `json:"provider_contact"`
}

type ListingResponse struct {
	ID         uint    `json:"id"`
	FoodID     string  `json:"food_id"`
	ProviderID string  `json:"provider_id"`
	FoodItem   string  `json:"food_item"`
	Quantity   float64 `json:"quantity"`
	ExpiryDate string  `json:"expiry_date"`
	Location   string  `json:"location"`
	MealType   string  `json:"meal_type"`
}

func toListingResponse(m models.FoodListing) ListingResponse {
	return ListingResponse{
		ID:         m.ID,
		FoodID:     m.FoodID,
		ProviderID: m.ProviderID,
		FoodItem:   m.FoodItem,
		Quantity:   m.Quantity,
		ExpiryDate: m.ExpiryDate,
		Location:   m.Location,
		MealType:   string(m.MealType),
	}
}

// -------------------------------------------------
// POST /api/listings
// -------------------------------------------------
func CreateListingHandler(store *Store, logs *audit.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateListingRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		row, err := store.AddListing(AddListingInput{
			FoodID:          body.FoodID,
			ProviderID:      body.ProviderID,
			FoodItem:        body.FoodItem,
			Quantity:        body.Quantity,
			ExpiryDate:      body.ExpiryDate,
			Location:        body.Location,
			MealType:        body.MealType,
			ProviderName:    body.ProviderName,
			ProviderContact: body.ProviderContact,
		})
		if err != nil {
			return MapError(err)
		}

		logs.ListingCreated(row)

		return c.Status(fiber.StatusCreated).JSON(toListingResponse(row))
	}
}

// -------------------------------------------------
// GET /api/listings?city=Istanbul
// city verilmezse tüm listing'ler kayıt sırasıyla döner.
// -------------------------------------------------
func ListListingsHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		city := strings.TrimSpace(c.Query("city"))

		var (
			rows []models.FoodListing
			err  error
		)
		if city == "" {
			rows, err = store.ListAll()
		} else {
			rows, err = store.ListByCity(city)
		}
		if err != nil {
			return MapError(err)
		}

		resp := make([]ListingResponse, 0, len(rows))
		for _, r := range rows {
			resp = append(resp, toListingResponse(r))
		}

		return c.JSON(resp)
	}
}

// -------------------------------------------------
// GET /api/listings/cities
// Şehir seçici için tekil, alfabetik Location listesi.
// -------------------------------------------------
func ListCitiesHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cities, err := store.Cities()
		if err != nil {
			return MapError(err)
		}
		return c.JSON(cities)
	}
}
