package dates

import (
	"fmt"
	"time"
)

// Формат даты повышения зарплаты, который присылают клиенты
const DateTimeTemplate = "2006-01-02T15:04:05"

// Функция разбора даты повышения. Принимаем формат клиентов
// без зоны и RFC3339 с зоной
func ParseUpgradeDate(value string) (time.Time, error) {
	if t, err := time.Parse(DateTimeTemplate, value); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q is not in the correct format, use %s", value, DateTimeTemplate)
	}
	return t, nil
}

// Функция форматирования даты повышения для записи в базу и ответа клиенту
func FormatUpgradeDate(t time.Time) string {
	return t.Format(DateTimeTemplate)
}
