package listing

import (
	"sort"
	"strings"
	"sync"
	"time"

	"food-wastage-backend/internal/models"

	"gorm.io/gorm"
)

// Expiry_Date formatı ("YYYY-MM-DD")
const DateLayout = "2006-01-02"

// AddListingInput: form alanları. Location aynı zamanda provider'ın şehri
// olarak kullanılır.
type AddListingInput struct {
	FoodID          string
	ProviderID      string
	FoodItem        string
	Quantity        float64
	ExpiryDate      string // "YYYY-MM-DD"
	Location        string
	MealType        string // Veg | Non-Veg | Vegan
	ProviderName    string
	ProviderContact string
}

// Store: food_listings ve providers tablolarının sahibi. Okuma tarafında
// TTL sınırlı bir liste cache'i tutar; her başarılı yazmada cache düşer.
// Global bağlantı yok, handler'lara referans olarak geçilir.
type Store struct {
	db  *gorm.DB
	ttl time.Duration

	mu       sync.Mutex
	cached   []models.FoodListing
	cachedAt time.Time
}

func NewStore(db *gorm.DB, cacheTTL time.Duration) *Store {
	return &Store{db: db, ttl: cacheTTL}
}

// Initialize: iki tabloyu oluşturur. Idempotent, tekrar çağrılabilir.
func (s *Store) Initialize() error {
	if err := s.db.AutoMigrate(&models.FoodListing{}, &models.Provider{}); err != nil {
		return storageErr("tablolar oluşturulamadı", err)
	}
	return nil
}

// AddListing: yeni listing ekler. Expiry bugünden önce olamaz.
func (s *Store) AddListing(in AddListingInput) (models.FoodListing, error) {
	return s.addListing(in, today())
}

// ImportListing: toplu yükleme yolu. Tarihsel veri setleri geçmiş expiry
// tarihleri içerdiği için "bugünden önce olamaz" kuralı uygulanmaz, diğer
// tüm doğrulamalar aynıdır.
func (s *Store) ImportListing(in AddListingInput) (models.FoodListing, error) {
	return s.addListing(in, time.Time{})
}

func (s *Store) addListing(in AddListingInput, minDate time.Time) (models.FoodListing, error) {
	if fields := in.validate(minDate); len(fields) > 0 {
		return models.FoodListing{}, &InvalidInputError{Fields: fields}
	}

	row := models.FoodListing{
		FoodID:     strings.TrimSpace(in.FoodID),
		ProviderID: strings.TrimSpace(in.ProviderID),
		FoodItem:   strings.TrimSpace(in.FoodItem),
		Quantity:   in.Quantity,
		ExpiryDate: strings.TrimSpace(in.ExpiryDate),
		Location:   strings.TrimSpace(in.Location),
		MealType:   models.MealType(strings.TrimSpace(in.MealType)),
	}
	prov := models.Provider{
		Name:    strings.TrimSpace(in.ProviderName),
		Contact: strings.TrimSpace(in.ProviderContact),
		City:    row.Location,
	}

	// Listing + provider tek transaction'da: ikisi birden yazılır ya da
	// hiçbiri yazılmaz.
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		// (Name, Contact, City) üçlüsü zaten varsa yeni satır açılmaz.
		var existing models.Provider
		return tx.Where("name = ? AND contact = ? AND city = ?", prov.Name, prov.Contact, prov.City).
			FirstOrCreate(&existing, prov).Error
	})
	if err != nil {
		return models.FoodListing{}, storageErr("listing kaydedilemedi", err)
	}

	s.invalidate()
	return row, nil
}

// Doğrulama: string alanlar trim sonrası boş olamaz, miktar > 0, tarih
// "YYYY-MM-DD" (minDate verilmişse ondan önce olamaz), öğün tipi bilinen
// enum. Hatalı alan adları toplanıp döner.
func (in AddListingInput) validate(minDate time.Time) []string {
	var fields []string

	required := []struct {
		name  string
		value string
	}{
		{"food_id", in.FoodID},
		{"provider_id", in.ProviderID},
		{"food_item", in.FoodItem},
		{"location", in.Location},
		{"provider_name", in.ProviderName},
		{"provider_contact", in.ProviderContact},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			fields = append(fields, f.name)
		}
	}

	if in.Quantity <= 0 {
		fields = append(fields, "quantity")
	}

	switch models.MealType(strings.TrimSpace(in.MealType)) {
	case models.MealTypeVeg, models.MealTypeNonVeg, models.MealTypeVegan:
		// ok
	default:
		fields = append(fields, "meal_type")
	}

	d, err := time.Parse(DateLayout, strings.TrimSpace(in.ExpiryDate))
	if err != nil || (!minDate.IsZero() && d.Before(minDate)) {
		fields = append(fields, "expiry_date")
	}

	return fields
}

// ListAll: tüm listing'leri kayıt sırasıyla döner. Sonuç en fazla cacheTTL
// kadar cache'lenir; cache'in bayatlaması kabul edilen bir tradeoff'tur,
// yazma işlemi cache'i hemen düşürdüğü için yazan kendi verisini görür.
func (s *Store) ListAll() ([]models.FoodListing, error) {
	s.mu.Lock()
	if s.ttl > 0 && s.cached != nil && time.Since(s.cachedAt) < s.ttl {
		rows := s.cached
		s.mu.Unlock()
		return rows, nil
	}
	s.mu.Unlock()

	var rows []models.FoodListing
	if err := s.db.Order("id asc").Find(&rows).Error; err != nil {
		return nil, storageErr("listing'ler yüklenemedi", err)
	}

	s.mu.Lock()
	s.cached = rows
	s.cachedAt = time.Now()
	s.mu.Unlock()

	return rows, nil
}

// ListByCity: Location birebir eşleşen listing'ler (case-sensitive).
func (s *Store) ListByCity(city string) ([]models.FoodListing, error) {
	rows, err := s.ListAll()
	if err != nil {
		return nil, err
	}
	filtered := make([]models.FoodListing, 0, len(rows))
	for _, r := range rows {
		if r.Location == city {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

// Cities: kayıtlı şehirlerin tekil, alfabetik listesi (şehir seçici için).
func (s *Store) Cities() ([]string, error) {
	rows, err := s.ListAll()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	cities := make([]string, 0)
	for _, r := range rows {
		if r.Location == "" || seen[r.Location] {
			continue
		}
		seen[r.Location] = true
		cities = append(cities, r.Location)
	}
	sort.Strings(cities)
	return cities, nil
}

// ProvidersByCity: City eşleşen provider kayıtları. Eşleşme yoksa boş liste
// döner, hata değil.
func (s *Store) ProvidersByCity(city string) ([]models.Provider, error) {
	var rows []models.Provider
	if err := s.db.Where("city = ?", city).Order("id asc").Find(&rows).Error; err != nil {
		return nil, storageErr("sağlayıcılar yüklenemedi", err)
	}
	return rows, nil
}

func (s *Store) invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}

// bugünün 00:00'ı (UTC, tarih karşılaştırmaları gün bazlı)
func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
