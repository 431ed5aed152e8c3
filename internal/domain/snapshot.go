package domain

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MonthlySales guarda os lançamentos por vendedor de cada mês de um ano
type MonthlySales [MonthsPerYear]SellerAmounts

// At retorna o registro do mês para leitura ou alteração
func (m *MonthlySales) At(month Month) *SellerAmounts {
	if !month.Valid() {
		return nil
	}
	return &m[month.Index()]
}

func (m MonthlySales) MarshalJSON() ([]byte, error) {
	out := make(map[string]SellerAmounts, MonthsPerYear)
	for _, month := range Months() {
		out[month.Key()] = m[month.Index()]
	}
	return json.Marshal(out)
}

// MonthlyCosts guarda os custos operacionais de cada mês de um ano
type MonthlyCosts [MonthsPerYear]CostEntry

func (m *MonthlyCosts) At(month Month) *CostEntry {
	if !month.Valid() {
		return nil
	}
	return &m[month.Index()]
}

func (m MonthlyCosts) MarshalJSON() ([]byte, error) {
	out := make(map[string]CostEntry, MonthsPerYear)
	for _, month := range Months() {
		out[month.Key()] = m[month.Index()]
	}
	return json.Marshal(out)
}

// Snapshot é o estado completo em memória: lançamentos de vendas, custos e projeções.
// Todo ano planejável tem os 12 meses preenchidos.
type Snapshot struct {
	Revenue     map[int]*MonthlySales      `json:"revenue"`
	Operational map[int]*MonthlyCosts      `json:"operational"`
	Projections map[string]map[int]float64 `json:"projections"`
}

// SellerActual retorna o realizado de um vendedor; anos fora do snapshot valem 0
func (s *Snapshot) SellerActual(year int, month Month, seller SellerID) float64 {
	return s.MonthSales(year, month).Get(seller)
}

// MonthSales retorna os lançamentos de todos os vendedores no mês
func (s *Snapshot) MonthSales(year int, month Month) SellerAmounts {
	if s == nil || !month.Valid() {
		return SellerAmounts{}
	}
	sales, ok := s.Revenue[year]
	if !ok || sales == nil {
		return SellerAmounts{}
	}
	return sales[month.Index()]
}

func (s *Snapshot) Costs(year int, month Month) CostEntry {
	if s == nil || !month.Valid() {
		return CostEntry{}
	}
	costs, ok := s.Operational[year]
	if !ok || costs == nil {
		return CostEntry{}
	}
	return costs[month.Index()]
}

func (s *Snapshot) Projection(clientID string, year int) float64 {
	if s == nil {
		return 0
	}
	return s.Projections[clientID][year]
}

// Clone cria uma cópia profunda para leitura consistente fora do lock
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}

	clone := &Snapshot{
		Revenue:     make(map[int]*MonthlySales, len(s.Revenue)),
		Operational: make(map[int]*MonthlyCosts, len(s.Operational)),
		Projections: make(map[string]map[int]float64, len(s.Projections)),
	}

	for year, sales := range s.Revenue {
		if sales == nil {
			continue
		}
		copied := *sales
		clone.Revenue[year] = &copied
	}

	for year, costs := range s.Operational {
		if costs == nil {
			continue
		}
		copied := *costs
		clone.Operational[year] = &copied
	}

	for clientID, years := range s.Projections {
		copied := make(map[int]float64, len(years))
		for year, value := range years {
			copied[year] = value
		}
		clone.Projections[clientID] = copied
	}

	return clone
}
