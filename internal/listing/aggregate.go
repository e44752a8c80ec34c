package listing

import (
	"sort"
	"strings"
	"time"

	"food-wastage-backend/internal/models"
)

// Dashboard aggregate'leri: yüklü listing seti üzerinde saf fonksiyonlar.
// Boş Food_Item / Meal_Type "Unknown" grubuna yazılır; parse edilemeyen
// Expiry_Date expiry hesaplarında eksik veri sayılır (expired değil).

const UnknownLabel = "Unknown"

// Totals: dashboard'un üst KPI satırı.
type Totals struct {
	ListingCount    int
	TotalQuantity   float64
	UniqueFoodItems int
	UniqueProviders int
}

// GroupSum: bir grafik serisinin tek noktası (grup etiketi + toplam miktar).
type GroupSum struct {
	Label string
	Total float64
}

// GroupAverage: grup başına ortalama miktar.
type GroupAverage struct {
	Label   string
	Average float64
}

// ExpiryStatus: expired / not-expired iki kovalı sayım. Tarihi parse
// edilemeyen satırlar iki kovaya da girmez.
type ExpiryStatus struct {
	Expired    int
	NotExpired int
}

func ComputeTotals(rows []models.FoodListing) Totals {
	t := Totals{ListingCount: len(rows)}
	items := make(map[string]bool)
	providers := make(map[string]bool)
	for _, r := range rows {
		t.TotalQuantity += r.Quantity
		items[foodItemLabel(r)] = true
		providers[strings.TrimSpace(r.ProviderID)] = true
	}
	t.UniqueFoodItems = len(items)
	t.UniqueProviders = len(providers)
	return t
}

// ExpiredCount: Expiry_Date < asOf olan satır sayısı (gün bazlı).
func ExpiredCount(rows []models.FoodListing, asOf time.Time) int {
	return ComputeExpiryStatus(rows, asOf).Expired
}

func ComputeExpiryStatus(rows []models.FoodListing, asOf time.Time) ExpiryStatus {
	day := truncateToDay(asOf)
	var st ExpiryStatus
	for _, r := range rows {
		d, ok := parseExpiry(r)
		if !ok {
			continue
		}
		if d.Before(day) {
			st.Expired++
		} else {
			st.NotExpired++
		}
	}
	return st
}

// QuantityByLocation: Location bazında miktar toplamı, ilk görülme sırasıyla.
func QuantityByLocation(rows []models.FoodListing) []GroupSum {
	return groupSum(rows, func(r models.FoodListing) string { return r.Location })
}

func QuantityByMealType(rows []models.FoodListing) []GroupSum {
	return groupSum(rows, mealTypeLabel)
}

// TopFoodItemsByQuantity: Food_Item bazında toplam, azalan sırada ilk n.
// Eşitlikte ilk görülen grup önde kalır (stable sort).
func TopFoodItemsByQuantity(rows []models.FoodListing, n int) []GroupSum {
	if n <= 0 {
		return []GroupSum{}
	}
	sums := groupSum(rows, foodItemLabel)
	sort.SliceStable(sums, func(i, j int) bool {
		return sums[i].Total > sums[j].Total
	})
	if len(sums) > n {
		sums = sums[:n]
	}
	return sums
}

func AverageQuantityByMealType(rows []models.FoodListing) []GroupAverage {
	sums := groupSum(rows, mealTypeLabel)
	counts := make(map[string]int)
	for _, r := range rows {
		counts[mealTypeLabel(r)]++
	}
	out := make([]GroupAverage, 0, len(sums))
	for _, g := range sums {
		out = append(out, GroupAverage{
			Label:   g.Label,
			Average: g.Total / float64(counts[g.Label]),
		})
	}
	return out
}

// QuantityByExpiryDate: expiry trend serisi. Tarihi parse edilemeyen satırlar
// atlanır, sonuç tarih artan sırada döner (grafik için).
func QuantityByExpiryDate(rows []models.FoodListing) []GroupSum {
	idx := make(map[string]int)
	out := make([]GroupSum, 0)
	for _, r := range rows {
		d, ok := parseExpiry(r)
		if !ok {
			continue
		}
		label := d.Format(DateLayout)
		i, seen := idx[label]
		if !seen {
			idx[label] = len(out)
			out = append(out, GroupSum{Label: label})
			i = len(out) - 1
		}
		out[i].Total += r.Quantity
	}
	// "YYYY-MM-DD" alfabetik sıralaması kronolojik sıra ile aynı
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

func groupSum(rows []models.FoodListing, key func(models.FoodListing) string) []GroupSum {
	idx := make(map[string]int)
	out := make([]GroupSum, 0)
	for _, r := range rows {
		k := key(r)
		i, seen := idx[k]
		if !seen {
			idx[k] = len(out)
			out = append(out, GroupSum{Label: k})
			i = len(out) - 1
		}
		out[i].Total += r.Quantity
	}
	return out
}

func foodItemLabel(r models.FoodListing) string {
	if v := strings.TrimSpace(r.FoodItem); v != "" {
		return v
	}
	return UnknownLabel
}

func mealTypeLabel(r models.FoodListing) string {
	if v := strings.TrimSpace(string(r.MealType)); v != "" {
		return v
	}
	return UnknownLabel
}

func parseExpiry(r models.FoodListing) (time.Time, bool) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(r.ExpiryDate))
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
