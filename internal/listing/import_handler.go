package listing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"food-wastage-backend/internal/audit"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// Beklenen kolon sırası (ilk sheet):
// Food_ID | Provider_ID | Food_Item | Quantity | Expiry_Date | Location |
// Meal_Type | Provider_Name | Provider_Contact

type ImportResultResponse struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors"`
}

// -------------------------------------------------
// POST /api/listings/import
// XLSX dosyasından toplu listing yükler. Geçerli satırlar yazılır, hatalı
// satırlar satır numarasıyla raporlanır. Boş Food_ID için otomatik ID üretilir.
// -------------------------------------------------
func ImportListingsHandler(store *Store, logs *audit.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dosya yüklenemedi: "+err.Error())
		}

		if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".xlsx") {
			return fiber.NewError(fiber.StatusBadRequest, "Sadece .xlsx dosyaları yüklenebilir")
		}

		file, err := fileHeader.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dosya açılamadı: "+err.Error())
		}
		defer file.Close()

		excelFile, err := excelize.OpenReader(file)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Excel dosyası okunamadı: "+err.Error())
		}
		defer excelFile.Close()

		sheetList := excelFile.GetSheetList()
		if len(sheetList) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Excel dosyasında sheet bulunamadı")
		}

		rows, err := excelFile.GetRows(sheetList[0])
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Sheet okunamadı: "+err.Error())
		}
		if len(rows) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Excel dosyası boş")
		}

		// İlk satır başlık mı? İlk hücre bilinen başlık adlarından biriyse
		// atlanır. İçerik araması yapılmaz, "FOOD-001" gibi bir Food_ID
		// başlık sanılmamalı.
		startIndex := 0
		if len(rows[0]) > 0 {
			switch strings.ToUpper(strings.TrimSpace(rows[0][0])) {
			case "FOOD_ID", "FOOD ID", "ÜRÜN_ID", "ÜRÜN ID":
				startIndex = 1
			}
		}

		result := ImportResultResponse{Errors: make([]string, 0)}

		for i := startIndex; i < len(rows); i++ {
			row := rows[i]
			if isEmptyRow(row) {
				continue
			}

			in, rowErr := parseImportRow(row)
			if rowErr != nil {
				result.Skipped++
				result.Errors = append(result.Errors, fmt.Sprintf("satır %d: %v", i+1, rowErr))
				continue
			}

			if _, err := store.ImportListing(in); err != nil {
				var verr *InvalidInputError
				if errors.As(err, &verr) {
					result.Skipped++
					result.Errors = append(result.Errors, fmt.Sprintf("satır %d: %v", i+1, verr))
					continue
				}
				// Storage hatasında import kesilir, kısmi sonuç raporlanmaz.
				return MapError(err)
			}
			result.Imported++
		}

		if result.Imported > 0 {
			logs.ListingsImported(result.Imported, fileHeader.Filename)
		}

		return c.JSON(result)
	}
}

func parseImportRow(row []string) (AddListingInput, error) {
	quantityRaw := cellAt(row, 3)
	// Excel'den "12,5" gelebilir
	quantity, err := strconv.ParseFloat(strings.ReplaceAll(quantityRaw, ",", "."), 64)
	if err != nil {
		return AddListingInput{}, fmt.Errorf("quantity geçersiz (%q)", quantityRaw)
	}

	foodID := cellAt(row, 0)
	if foodID == "" {
		foodID = uuid.NewString()
	}

	return AddListingInput{
		FoodID:          foodID,
		ProviderID:      cellAt(row, 1),
		FoodItem:        cellAt(row, 2),
		Quantity:        quantity,
		ExpiryDate:      cellAt(row, 4),
		Location:        cellAt(row, 5),
		MealType:        cellAt(row, 6),
		ProviderName:    cellAt(row, 7),
		ProviderContact: cellAt(row, 8),
	}, nil
}

// excelize sondaki boş hücreleri kırpabiliyor, index taşmasını tolere et
func cellAt(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
