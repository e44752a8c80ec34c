package models

import "time"

// Provider: listing eklenirken türetilen iletişim kaydı.
// (Name, Contact, City) üçlüsü doğal anahtardır; aynı üçlü ikinci kez
// gelirse yeni satır açılmaz (insert-if-absent).
type Provider struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:200;not null"`
	Contact   string `gorm:"size:100;not null"`
	City      string `gorm:"size:100;index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
