package utils

import "time"

// ParseDateRange interpreta o par de datas (YYYY-MM-DD) de um intervalo de
// consulta. Datas vazias assumem os últimos 30 dias.
func ParseDateRange(fromStr, toStr string) (time.Time, time.Time, error) {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now

	if fromStr != "" {
		parsed, err := time.Parse(time.DateOnly, fromStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = parsed
	}

	if toStr != "" {
		parsed, err := time.Parse(time.DateOnly, toStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = parsed
	}

	return from, to, nil
}
