package insighting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/reference"
)

func TestParetoCurve(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected []float64
	}{
		{name: "Três clientes", values: []float64{600, 300, 100}, expected: []float64{60, 90, 100}},
		{name: "Total zero", values: []float64{0, 0, 0}, expected: []float64{0, 0, 0}},
		{name: "Lista vazia", values: []float64{}, expected: []float64{}},
		{name: "Cliente único", values: []float64{42}, expected: []float64{100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			curve := ParetoCurve(tt.values)
			assert.Len(t, curve, len(tt.expected))
			for i := range tt.expected {
				assert.InDelta(t, tt.expected[i], curve[i], 0.0001)
			}
		})
	}

	t.Run("Curva não decresce e termina em 100", func(t *testing.T) {
		curve := ParetoCurve([]float64{0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1})
		for i := 1; i < len(curve); i++ {
			assert.GreaterOrEqual(t, curve[i], curve[i-1])
			assert.LessOrEqual(t, curve[i], 100.0)
		}
		assert.Equal(t, 100.0, curve[len(curve)-1])
	})
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		prior    float64
		expected domain.ClientStatus
	}{
		{name: "Deixou de comprar", current: 0, prior: 1000, expected: domain.ClientStatusChurn},
		{name: "Cresceu acima do multiplicador", current: 1300, prior: 1000, expected: domain.ClientStatusStar},
		{name: "Exatamente no multiplicador é estável", current: 1200, prior: 1000, expected: domain.ClientStatusStable},
		{name: "Caiu abaixo do limite", current: 700, prior: 1000, expected: domain.ClientStatusDecrease},
		{name: "Exatamente no limite de queda é estável", current: 800, prior: 1000, expected: domain.ClientStatusStable},
		{name: "Novo cliente", current: 500, prior: 0, expected: domain.ClientStatusStar},
		{name: "Sem movimento", current: 0, prior: 0, expected: domain.ClientStatusStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.current, tt.prior, testThresholds))
		})
	}
}

func TestGrowth(t *testing.T) {
	assert.Equal(t, 50.0, Growth(1500, 1000))
	assert.Equal(t, -100.0, Growth(0, 1000))
	assert.Equal(t, 0.0, Growth(1000, 0))
}

func TestClassifyPortfolio(t *testing.T) {
	clients := []domain.TopClient{
		{ID: "a", Name: "A", History: domain.YearlyHistory{2025: 100}},
		{ID: "b", Name: "B", History: domain.YearlyHistory{2025: 300}},
		{ID: "c", Name: "C", History: domain.AggregatedHistory(500)},
	}

	snapshot := newSnapshot()
	setProjection(snapshot, "a", 2026, 600)
	setProjection(snapshot, "b", 2026, 300)
	setProjection(snapshot, "c", 2026, 100)

	portfolio := ClassifyPortfolio(clients, snapshot, 2026, 2025, testThresholds)

	assert.Equal(t, 1000.0, portfolio.GrandTotal)
	assert.Equal(t, "a", portfolio.Clients[0].ClientID)
	assert.Equal(t, "b", portfolio.Clients[1].ClientID)
	assert.Equal(t, "c", portfolio.Clients[2].ClientID)

	assert.InDelta(t, 60.0, portfolio.Clients[0].CumulativeShare, 0.0001)
	assert.InDelta(t, 90.0, portfolio.Clients[1].CumulativeShare, 0.0001)
	assert.Equal(t, 100.0, portfolio.Clients[2].CumulativeShare)

	assert.Equal(t, domain.ClientStatusStar, portfolio.Clients[0].Status)
	assert.Equal(t, 500.0, portfolio.Clients[0].Growth)
	assert.Equal(t, domain.ClientStatusStable, portfolio.Clients[1].Status)
	// histórico agregado usa a média anual (500/5 = 100) como valor de 2025
	assert.Equal(t, 100.0, portfolio.Clients[2].Prior)
	assert.Equal(t, domain.ClientStatusStable, portfolio.Clients[2].Status)

	assert.Equal(t, 1, portfolio.StatusCounts[domain.ClientStatusStar])
	assert.Equal(t, 2, portfolio.StatusCounts[domain.ClientStatusStable])
	assert.Equal(t, 0, portfolio.StatusCounts[domain.ClientStatusChurn])
}

func TestClassifyPortfolio_CarteiraDeReferencia(t *testing.T) {
	clients := reference.TopClients()

	portfolio := ClassifyPortfolio(clients, newSnapshot(), 2026, 2025, testThresholds)

	assert.Len(t, portfolio.Clients, len(clients))
	assert.Equal(t, 0.0, portfolio.GrandTotal)
	for _, c := range portfolio.Clients {
		assert.Equal(t, 0.0, c.CumulativeShare)
		if c.Prior > 0 {
			assert.Equal(t, domain.ClientStatusChurn, c.Status)
		}
	}
}
