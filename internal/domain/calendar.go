// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	MonthsPerYear   = 12
	QuartersPerYear = 4

	FirstPlanningYear   = 2026
	PlanningYearCount   = 5
	FirstHistoricalYear = 2021
	HistoricalYearCount = 5
)

// Month é um mês do calendário fixo (1 = janeiro)
type Month int

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthKeys = [MonthsPerYear + 1]string{"", "jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"}

var monthNames = [MonthsPerYear + 1]string{
	"", "Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// Months retorna os meses na ordem do calendário
func Months() []Month {
	months := make([]Month, 0, MonthsPerYear)
	for m := January; m <= December; m++ {
		months = append(months, m)
	}
	return months
}

func (m Month) Valid() bool {
	return m >= January && m <= December
}

// Index retorna a posição do mês (0-11) nas séries mensais
func (m Month) Index() int {
	return int(m) - 1
}

// Key é a chave usada no snapshot persistido (ex: "jan")
func (m Month) Key() string {
	if !m.Valid() {
		return ""
	}
	return monthKeys[m]
}

func (m Month) Name() string {
	if !m.Valid() {
		return ""
	}
	return monthNames[m]
}

// Quarter retorna o trimestre (1-4) ao qual o mês pertence
func (m Month) Quarter() int {
	return (int(m)-1)/3 + 1
}

// Previous retorna o mês anterior e o ano correspondente
func (m Month) Previous(year int) (int, Month) {
	if m == January {
		return year - 1, December
	}
	return year, m - 1
}

func (m Month) String() string {
	return m.Key()
}

func (m Month) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("mês inválido: %d", int(m))
	}
	return []byte(m.Key()), nil
}

func (m *Month) UnmarshalText(text []byte) error {
	parsed, ok := ParseMonth(string(text))
	if !ok {
		return fmt.Errorf("mês inválido: %q", string(text))
	}
	*m = parsed
	return nil
}

// ParseMonth aceita a chave do mês ("jan", "Fev") ou o número ("1", "01")
func ParseMonth(s string) (Month, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, false
	}

	for m := January; m <= December; m++ {
		if monthKeys[m] == s {
			return m, true
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	m := Month(n)
	return m, m.Valid()
}

// QuarterMonths retorna os três meses de um trimestre
func QuarterMonths(quarter int) []Month {
	if quarter < 1 || quarter > QuartersPerYear {
		return nil
	}
	first := Month((quarter-1)*3 + 1)
	return []Month{first, first + 1, first + 2}
}

// PlanningYears retorna os anos planejáveis (projeções e lançamentos)
func PlanningYears() []int {
	return yearRange(FirstPlanningYear, PlanningYearCount)
}

// HistoricalYears retorna a janela fixa de anos históricos dos clientes
func HistoricalYears() []int {
	return yearRange(FirstHistoricalYear, HistoricalYearCount)
}

func IsPlanningYear(year int) bool {
	return year >= FirstPlanningYear && year < FirstPlanningYear+PlanningYearCount
}

func IsHistoricalYear(year int) bool {
	return year >= FirstHistoricalYear && year < FirstHistoricalYear+HistoricalYearCount
}

func yearRange(first, count int) []int {
	years := make([]int, count)
	for i := range years {
		years[i] = first + i
	}
	return years
}
