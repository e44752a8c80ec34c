package listing

import (
	"testing"
	"time"

	"food-wastage-backend/internal/models"
)

func mkListing(providerID, item string, qty float64, expiry, location, meal string) models.FoodListing {
	return models.FoodListing{
		ProviderID: providerID,
		FoodItem:   item,
		Quantity:   qty,
		ExpiryDate: expiry,
		Location:   location,
		MealType:   models.MealType(meal),
	}
}

func asOf(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		t.Fatalf("test tarihi bozuk: %v", err)
	}
	return d
}

func TestComputeTotals(t *testing.T) {
	rows := []models.FoodListing{
		mkListing("P-1", "Apple", 10, "2099-01-01", "Istanbul", "Veg"),
		mkListing("P-1", "Apple", 5, "2099-02-01", "Ankara", "Veg"),
		mkListing("P-2", "Bread", 3, "2020-01-01", "Istanbul", "Vegan"),
	}

	got := ComputeTotals(rows)
	if got.ListingCount != 3 {
		t.Errorf("beklenen 3 listing, gelen %d", got.ListingCount)
	}
	if got.TotalQuantity != 18 {
		t.Errorf("beklenen toplam 18, gelen %v", got.TotalQuantity)
	}
	if got.UniqueFoodItems != 2 {
		t.Errorf("beklenen 2 tekil ürün, gelen %d", got.UniqueFoodItems)
	}
	if got.UniqueProviders != 2 {
		t.Errorf("beklenen 2 tekil provider, gelen %d", got.UniqueProviders)
	}
}

func TestComputeTotalsUnknownItemsCountOnce(t *testing.T) {
	rows := []models.FoodListing{
		mkListing("P-1", "", 1, "2099-01-01", "Istanbul", "Veg"),
		mkListing("P-2", "  ", 2, "2099-01-01", "Ankara", "Veg"),
	}
	got := ComputeTotals(rows)
	// Boş Food_Item'lar tek "Unknown" grubu sayılır
	if got.UniqueFoodItems != 1 {
		t.Errorf("beklenen 1 tekil ürün (Unknown), gelen %d", got.UniqueFoodItems)
	}
}

func TestExpiredCountPartition(t *testing.T) {
	rows := []models.FoodListing{
		mkListing("P-1", "Apple", 10, "2099-01-01", "Istanbul", "Veg"),
		mkListing("P-1", "Bread", 3, "2020-01-01", "Istanbul", "Veg"),
		mkListing("P-2", "Milk", 2, "bozuk-tarih", "Ankara", "Veg"),
		mkListing("P-2", "Corba", 4, "2023-12-31", "Ankara", "Non-Veg"),
	}
	ref := asOf(t, "2024-01-01")

	st := ComputeExpiryStatus(rows, ref)
	if st.Expired != 2 {
		t.Errorf("beklenen 2 expired, gelen %d", st.Expired)
	}
	if st.NotExpired != 1 {
		t.Errorf("beklenen 1 not-expired, gelen %d", st.NotExpired)
	}

	// expired + not-expired + parse edilemeyen = toplam satır
	unparsable := len(rows) - st.Expired - st.NotExpired
	if unparsable != 1 {
		t.Errorf("beklenen 1 parse edilemeyen satır, gelen %d", unparsable)
	}

	if got := ExpiredCount(rows, ref); got != 2 {
		t.Errorf("beklenen ExpiredCount 2, gelen %d", got)
	}
}

func TestExpiredCountDayGranularity(t *testing.T) {
	rows := []models.FoodListing{
		mkListing("P-1", "Apple", 1, "2024-01-01", "Istanbul", "Veg"),
	}
	// Expiry == asOf günü ise expired değildir (kesin küçük olmalı)
	if got := ExpiredCount(rows, asOf(t, "2024-01-01")); got != 0 {
		t.Errorf("aynı gün expired sayılmamalı, gelen %d", got)
	}
	if got := ExpiredCount(rows, asOf(t, "2024-01-02")); got != 1 {
		t.Errorf("sonraki gün expired sayılmalı, gelen %d", got)
	}
}

func TestQuantityByLocationSumsToGrandTotal(t *testing.T) {
	rows := []models.FoodListing{
		mkListing("P-1", "Apple", 10, "2099-01-01", "Istanbul", "Veg"),
		mkListing("P-1", "Apple", 5, "2099-02-01", "Ankara", "Veg"),
		mkListing("P-2", "Bread", 3, "2020-01-01", "Istanbul", "Vegan"),
		mkListing("P-3", "Milk", 7.5, "2099-03-01", "Izmir", "Veg"),
	}

	sums := QuantityByLocation(rows)

	var grand float64
	for _, g := range sums {
		grand += g.Total
	}
	if grand != 25.5 {
		t.Errorf("grup toplamları genel toplama eşit olmalı, gelen %v", grand)
	}

	if len(sums) != 3 {
		t.Fatalf("beklenen 3 grup, gelen %d", len(sums))
	}
	// İlk görülme sırası korunur
	if sums[0].Label != "Istanbul" || sums[0].Total != 13 {
		t.Errorf("beklenen Istanbul=13, gelen %+v", sums[0])
	}
}

func TestQuantityByMealTypeUnknown(t *testing.T) {
	rows := []models.FoodListing{
		mkListing("P-1", "Apple", 10, "2099-01-01", "Istanbul", "Veg"),
		mkListing("P-1", "Bread", 5, "2099-01-01", "Istanbul", ""),
	}

	sums := QuantityByMealType(rows)
	if len(sums) != 2 {
		t.Fatalf("beklenen 2 grup, gelen %d", len(sums))
	}
	if sums[1].Label != UnknownLabel || sums[1].Total != 5 {
		t.Errorf("boş meal_type Unknown grubuna gitmeli, gelen %+v", sums[1])
	}
}

func TestTopFoodItemsByQuantity(t *testing.T) {
	rows := []models.FoodListing{
		mkListing("P-1", "Apple", 10, "2099-01-01", "Istanbul", "Veg"),
		mkListing("P-1", "Apple", 5, "2099-02-01", "Ankara", "Veg"),
		mkListing("P-2", "Bread", 3, "2020-01-01", "Istanbul", "Vegan"),
	}

	top := TopFoodItemsByQuantity(rows, 1)
	if len(top) != 1 {
		t.Fatalf("beklenen 1 grup, gelen %d", len(top))
	}
	if top[0].Label != "Apple" || top[0].Total != 15 {
		t.Errorf("beklenen Apple=15, gelen %+v", top[0])
	}

	// n grup sayısından büyükse hepsi döner
	top = TopFoodItemsByQuantity(rows, 5)
	if len(top) != 2 {
		t.Errorf("beklenen 2 grup, gelen %d", len(top))
	}
	if top[1].Label != "Bread" {
		t.Errorf("beklenen ikinci sıra Bread, gelen %q", top[1].Label)
	}
}

func TestTopFoodItemsStableTies(t *testing.T) {
	rows := []models.FoodListing{
		mkListing("P-1", "Bread", 5, "2099-01-01", "Istanbul", "Veg"),
		mkListing("P-1", "Apple", 5, "2099-01-01", "Istanbul", "Veg"),
	}

	// Eşit toplamda ilk görülen grup önde
	top := TopFoodItemsByQuantity(rows, 2)
	if top[0].Label != "Bread" || top[1].Label != "Apple" {
		t.Errorf("eşitlikte ilk görülme sırası korunmalı, gelen %+v", top)
	}
}

func TestAverageQuantityByMealType(t *testing.T) {
	rows := []models.FoodListing{
		mkListing("P-1", "Apple", 10, "2099-01-01", "Istanbul", "Veg"),
		mkListing("P-1", "Bread", 20, "2099-01-01", "Istanbul", "Veg"),
		mkListing("P-2", "Milk", 6, "2099-01-01", "Ankara", "Vegan"),
	}

	avgs := AverageQuantityByMealType(rows)
	if len(avgs) != 2 {
		t.Fatalf("beklenen 2 grup, gelen %d", len(avgs))
	}
	if avgs[0].Label != "Veg" || avgs[0].Average != 15 {
		t.Errorf("beklenen Veg ortalama 15, gelen %+v", avgs[0])
	}
	if avgs[1].Label != "Vegan" || avgs[1].Average != 6 {
		t.Errorf("beklenen Vegan ortalama 6, gelen %+v", avgs[1])
	}
}

func TestQuantityByExpiryDate(t *testing.T) {
	rows := []models.FoodListing{
		mkListing("P-1", "Apple", 5, "2099-02-01", "Istanbul", "Veg"),
		mkListing("P-1", "Bread", 3, "2099-01-01", "Istanbul", "Veg"),
		mkListing("P-2", "Milk", 2, "bozuk", "Ankara", "Veg"),
		mkListing("P-2", "Corba", 4, "2099-01-01", "Ankara", "Non-Veg"),
	}

	trend := QuantityByExpiryDate(rows)
	if len(trend) != 2 {
		t.Fatalf("bozuk tarih atlanmalı, beklenen 2 nokta, gelen %d", len(trend))
	}
	// Tarih artan sırada
	if trend[0].Label != "2099-01-01" || trend[0].Total != 7 {
		t.Errorf("beklenen 2099-01-01=7, gelen %+v", trend[0])
	}
	if trend[1].Label != "2099-02-01" || trend[1].Total != 5 {
		t.Errorf("beklenen 2099-02-01=5, gelen %+v", trend[1])
	}
}
