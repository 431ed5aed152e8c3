package domain

// ClientHistory é o histórico de faturamento de um cliente, em qualquer um dos dois formatos
// conhecidos: valores por ano ou um total já agregado da janela histórica.
type ClientHistory interface {
	// ValueFor retorna o faturamento do ano, quando o formato guarda valores anuais
	ValueFor(year int) (float64, bool)
	// Total é a soma da janela histórica
	Total() float64
	// Average é a média anual da janela histórica
	Average() float64
}

// YearlyHistory guarda um valor por ano histórico
type YearlyHistory map[int]float64

func (h YearlyHistory) ValueFor(year int) (float64, bool) {
	if !IsHistoricalYear(year) {
		return 0, false
	}
	return h[year], true
}

func (h YearlyHistory) Total() float64 {
	var total float64
	for _, year := range HistoricalYears() {
		total += h[year]
	}
	return total
}

func (h YearlyHistory) Average() float64 {
	return h.Total() / HistoricalYearCount
}

// AggregatedHistory é o total da janela histórica sem detalhamento anual
type AggregatedHistory float64

func (h AggregatedHistory) ValueFor(int) (float64, bool) {
	return 0, false
}

func (h AggregatedHistory) Total() float64 {
	return float64(h)
}

func (h AggregatedHistory) Average() float64 {
	return float64(h) / HistoricalYearCount
}

// TopClient é um cliente do grupo acompanhado individualmente (T20)
type TopClient struct {
	ID      string
	Name    string
	History ClientHistory
}

// ValueFor retorna o valor de referência do cliente no ano: projeção para anos planejáveis,
// histórico para anos passados. Históricos agregados usam a média anual.
func (c TopClient) ValueFor(snapshot *Snapshot, year int) float64 {
	if IsPlanningYear(year) {
		return snapshot.Projection(c.ID, year)
	}
	if !IsHistoricalYear(year) || c.History == nil {
		return 0
	}
	if value, ok := c.History.ValueFor(year); ok {
		return value
	}
	return c.History.Average()
}

func (c TopClient) HistoricalAverage() float64 {
	if c.History == nil {
		return 0
	}
	return c.History.Average()
}
