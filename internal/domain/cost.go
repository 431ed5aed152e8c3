package domain

import (
	"fmt"
	"strings"
)

// CostField identifica um dos campos de custo operacional mensal
type CostField int

const (
	CostZM CostField = iota
	CostTerceiro
	CostCorreios
	CostMercadoria

	costFieldCount
)

var costFieldKeys = [costFieldCount]string{"zm", "terceiro", "correios", "mercadoria"}

func CostFields() []CostField {
	fields := make([]CostField, 0, costFieldCount)
	for f := CostField(0); f < costFieldCount; f++ {
		fields = append(fields, f)
	}
	return fields
}

func (f CostField) Valid() bool {
	return f >= 0 && f < costFieldCount
}

func (f CostField) Key() string {
	if !f.Valid() {
		return ""
	}
	return costFieldKeys[f]
}

// IsLogistics indica se o campo compõe o custo logístico (os demais são mercadoria)
func (f CostField) IsLogistics() bool {
	return f == CostZM || f == CostTerceiro || f == CostCorreios
}

func (f CostField) String() string {
	return f.Key()
}

func (f CostField) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("campo de custo inválido: %d", int(f))
	}
	return []byte(f.Key()), nil
}

func (f *CostField) UnmarshalText(text []byte) error {
	parsed, ok := ParseCostField(string(text))
	if !ok {
		return fmt.Errorf("campo de custo inválido: %q", string(text))
	}
	*f = parsed
	return nil
}

func ParseCostField(key string) (CostField, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	for f := CostField(0); f < costFieldCount; f++ {
		if costFieldKeys[f] == key {
			return f, true
		}
	}
	return 0, false
}

// CostEntry são os custos operacionais de um mês
type CostEntry struct {
	ZM         float64 `json:"zm"`
	Terceiro   float64 `json:"terceiro"`
	Correios   float64 `json:"correios"`
	Mercadoria float64 `json:"mercadoria"`
}

func (c CostEntry) Get(f CostField) float64 {
	switch f {
	case CostZM:
		return c.ZM
	case CostTerceiro:
		return c.Terceiro
	case CostCorreios:
		return c.Correios
	case CostMercadoria:
		return c.Mercadoria
	}
	return 0
}

func (c *CostEntry) Set(f CostField, value float64) {
	switch f {
	case CostZM:
		c.ZM = value
	case CostTerceiro:
		c.Terceiro = value
	case CostCorreios:
		c.Correios = value
	case CostMercadoria:
		c.Mercadoria = value
	}
}

// Logistics soma os três subcampos logísticos
func (c CostEntry) Logistics() float64 {
	return c.ZM + c.Terceiro + c.Correios
}

// Goods é o custo de mercadoria/materiais
func (c CostEntry) Goods() float64 {
	return c.Mercadoria
}
