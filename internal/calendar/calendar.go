package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-BookingFront/internal/domain"
)

// DateKey сериализует дату в каноничный ключ YYYY-MM-DD.
// Используются локальные календарные поля, без сдвига в UTC.
func DateKey(t time.Time) string {
	return t.Format(domain.DateFormat)
}

// WeekdayOf возвращает английское название дня недели в нижнем регистре
// для ключа даты YYYY-MM-DD. Ключ интерпретируется как локальная полночь.
// Перед вызовом вызывающая сторона обязана проверить, что ключ не пуст.
func WeekdayOf(key string) (string, error) {
	t, err := time.ParseInLocation(domain.DateFormat, key, time.Local)
	if err != nil {
		return "", fmt.Errorf("calendar: invalid date key %q: %w", key, err)
	}
	return strings.ToLower(t.Weekday().String()), nil
}
