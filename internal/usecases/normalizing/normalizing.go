// Package normalizing converte valores monetários digitados (pt-BR) em números
package normalizing

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

var currencyPrefixes = strings.NewReplacer("R$", "", "r$", "", "BRL", "", "brl", "")

// Normalize interpreta texto no formato brasileiro ("R$ 1.234,56") e retorna o número.
// Ponto é separador de milhar e vírgula é separador decimal. Texto vazio ou inválido vale 0.
func Normalize(text string) float64 {
	cleaned := clean(text)
	if cleaned == "" {
		return 0
	}

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0
	}

	f, _ := value.Float64()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Canonical é a forma textual canônica de um valor já normalizado (vírgula decimal, sem milhar).
// Normalize(Canonical(v)) == v.
func Canonical(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "0"
	}
	return strings.Replace(strconv.FormatFloat(value, 'f', -1, 64), ".", ",", 1)
}

func clean(text string) string {
	text = currencyPrefixes.Replace(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case unicode.IsSpace(r), unicode.Is(unicode.Sc, r):
			continue
		case r == '.', r == '\'', r == '_':
			continue
		case r == ',':
			b.WriteRune('.')
		case r == 'e', r == 'E':
			// notação científica não é valor monetário digitado
			return ""
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
