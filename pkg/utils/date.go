package utils

import "time"

// ParseDate interpreta datas no formato yyyy-mm-dd. Texto vazio devolve nil.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
