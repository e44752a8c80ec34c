package listing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ErrStorageUnavailable: veritabanı okuma/yazma hatası. Çağıran taraf o
// ekran için işlemi durdurur; otomatik retry yapılmaz, kullanıcı yenileyince
// veri tekrar çekilir.
var ErrStorageUnavailable = errors.New("veritabanına ulaşılamıyor")

// InvalidInputError: doğrulama hatası. Hangi alanların hatalı olduğunu taşır,
// kısmi yazma yapılmaz.
type InvalidInputError struct {
	Fields []string
}

func (e *InvalidInputError) Error() string {
	return "geçersiz alan(lar): " + strings.Join(e.Fields, ", ")
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, ErrStorageUnavailable, err)
}

// MapError: store hatalarını HTTP hatalarına çevirir. Handler paketleri
// (listing, provider, dashboard) ortak kullanır.
func MapError(err error) error {
	var verr *InvalidInputError
	if errors.As(err, &verr) {
		return fiber.NewError(fiber.StatusBadRequest, "Geçersiz alan(lar): "+strings.Join(verr.Fields, ", "))
	}
	if errors.Is(err, ErrStorageUnavailable) {
		return fiber.NewError(fiber.StatusInternalServerError, "Veritabanı hatası, kayıtlara ulaşılamadı")
	}
	return err
}
