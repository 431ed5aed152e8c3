package utils

import "time"

// ReferencePeriod retorna o ano e o mês (1-12) da data
func ReferencePeriod(date time.Time) (int, int) {
	return date.Year(), int(date.Month())
}

// AddMonths desloca ano/mês (1-12) em n meses, para frente ou para trás
func AddMonths(year, month, n int) (int, int) {
	date := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	return date.Year(), int(date.Month())
}
