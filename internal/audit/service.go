package audit

import (
	"encoding/json"
	"fmt"
	"log"

	"food-wastage-backend/internal/models"

	"gorm.io/gorm"
)

// Service: append-only audit izi. Listing'ler güncellenmediği ve silinmediği
// için sadece ekleme olayları yazılır.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) (*Service, error) {
	if err := db.AutoMigrate(&models.AuditLog{}); err != nil {
		return nil, fmt.Errorf("audit tablosu oluşturulamadı: %w", err)
	}
	return &Service{db: db}, nil
}

// ListingCreated: tek listing eklendi. Log hatası kritik değildir, sadece
// log'lanır; asıl işlemi geri döndürmez.
func (s *Service) ListingCreated(row models.FoodListing) {
	after, _ := json.Marshal(map[string]interface{}{
		"id":          row.ID,
		"food_id":     row.FoodID,
		"provider_id": row.ProviderID,
		"food_item":   row.FoodItem,
		"quantity":    row.Quantity,
		"expiry_date": row.ExpiryDate,
		"location":    row.Location,
		"meal_type":   row.MealType,
	})

	entry := models.AuditLog{
		EntityType:  "food_listing",
		EntityID:    row.ID,
		Action:      models.AuditActionCreate,
		Description: fmt.Sprintf("Listing eklendi: %s (%.2f kg, %s)", row.FoodItem, row.Quantity, row.Location),
		AfterData:   string(after),
	}
	if err := s.db.Create(&entry).Error; err != nil {
		log.Printf("Audit log yazılamadı: %v", err)
	}
}

// ListingsImported: XLSX toplu yükleme özeti (tek satır).
func (s *Service) ListingsImported(count int, filename string) {
	after, _ := json.Marshal(map[string]interface{}{
		"imported": count,
		"filename": filename,
	})

	entry := models.AuditLog{
		EntityType:  "food_listing",
		Action:      models.AuditActionImport,
		Description: fmt.Sprintf("Toplu yükleme: %d listing (%s)", count, filename),
		AfterData:   string(after),
	}
	if err := s.db.Create(&entry).Error; err != nil {
		log.Printf("Audit log yazılamadı: %v", err)
	}
}
