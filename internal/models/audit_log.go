package models

import "time"

type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionImport AuditAction = "import"
)

// AuditLog: yazma işlemlerinin izi. Listing'ler hiç güncellenmediği ve
// silinmediği için sadece ekleme kayıtları tutulur, undo yoktur.
type AuditLog struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	// Hangi entity? (ör: "food_listing")
	EntityType string `gorm:"size:50;index"`
	EntityID   uint   `gorm:"index"`

	Action AuditAction `gorm:"size:20"`

	// Küçük bir özet
	Description string `gorm:"size:255"`

	// Eklenen kaydın hali (JSON)
	AfterData string `gorm:"type:text"`
}
