package models

import "time"

type MealType string

const (
	MealTypeVeg    MealType = "Veg"
	MealTypeNonVeg MealType = "Non-Veg"
	MealTypeVegan  MealType = "Vegan"
)

// FoodListing: bağışlanan gıda kaydı.
// Expiry_Date "YYYY-MM-DD" formatında metin olarak saklanır.
// Food_ID ve Provider_ID serbest metin referanstır, FK zorlanmaz.
type FoodListing struct {
	ID         uint     `gorm:"primaryKey"`
	FoodID     string   `gorm:"column:food_id;size:50;not null"`
	ProviderID string   `gorm:"column:provider_id;size:50;not null"`
	FoodItem   string   `gorm:"size:200;not null"`
	Quantity   float64  `gorm:"not null"`         // kg
	ExpiryDate string   `gorm:"size:10;not null"` // "YYYY-MM-DD"
	Location   string   `gorm:"size:100;index;not null"`
	MealType   MealType `gorm:"size:20;not null"` // Veg / Non-Veg / Vegan
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
