package insighting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/reference"
)

func TestAggregateRevenue(t *testing.T) {
	snapshot := newSnapshot()
	setSale(snapshot, 2026, domain.January, domain.SellerCarlos, 10000)
	setSale(snapshot, 2026, domain.January, domain.SellerFernanda, 5000)
	setSale(snapshot, 2026, domain.March, domain.SellerRicardo, 20000)
	setSale(snapshot, 2026, domain.December, domain.SellerPatricia, 7000)

	targets := reference.Targets()
	summary := AggregateRevenue(2026, snapshot, targets, 1000000)

	t.Run("Realizado do mês é a soma dos vendedores", func(t *testing.T) {
		assert.Len(t, summary.Monthly, domain.MonthsPerYear)
		assert.Equal(t, 15000.0, summary.Monthly[0].Realized)
		assert.Equal(t, 0.0, summary.Monthly[1].Realized)
		assert.Equal(t, 20000.0, summary.Monthly[2].Realized)
	})

	t.Run("Acumulado não decresce e termina no total", func(t *testing.T) {
		for i := 1; i < len(summary.Monthly); i++ {
			assert.GreaterOrEqual(t, summary.Monthly[i].CumulativeRealized, summary.Monthly[i-1].CumulativeRealized)
		}
		assert.Equal(t, 42000.0, summary.Monthly[11].CumulativeRealized)
		assert.Equal(t, summary.TotalRealized, summary.Monthly[11].CumulativeRealized)
		assert.Equal(t, targets.AnnualTotal(), summary.Monthly[11].CumulativeTarget)
	})

	t.Run("Trimestres somam as metas mensais", func(t *testing.T) {
		assert.Len(t, summary.Quarterly, domain.QuartersPerYear)

		var quarterlyTarget, quarterlyRealized float64
		for _, q := range summary.Quarterly {
			quarterlyTarget += q.Target
			quarterlyRealized += q.Realized
		}
		assert.Equal(t, summary.TotalTarget, quarterlyTarget)
		assert.Equal(t, summary.TotalRealized, quarterlyRealized)
		assert.Equal(t, 35000.0, summary.Quarterly[0].Realized)
		assert.Equal(t, []domain.Month{domain.October, domain.November, domain.December}, summary.Quarterly[3].Months)
	})

	t.Run("Percentual mensal e atingimento anual", func(t *testing.T) {
		janTarget := targets.For(domain.January).Total()
		assert.InDelta(t, 15000*100/janTarget, summary.Monthly[0].Percentage, 0.0001)
		assert.InDelta(t, 4.2, summary.Attainment, 0.0001)
	})
}

func TestAggregateRevenue_MetaZero(t *testing.T) {
	snapshot := newSnapshot()
	setSale(snapshot, 2027, domain.May, domain.SellerCarlos, 500)

	summary := AggregateRevenue(2027, snapshot, domain.TargetTable{}, 0)

	assert.Equal(t, 0.0, summary.Monthly[4].Percentage)
	assert.Equal(t, 0.0, summary.Quarterly[1].Percentage)
	assert.Equal(t, 0.0, summary.Attainment)
	assert.Equal(t, 500.0, summary.TotalRealized)
}

func TestAggregateRevenue_AnoForaDoSnapshot(t *testing.T) {
	summary := AggregateRevenue(2040, newSnapshot(), reference.Targets(), 100)

	assert.Len(t, summary.Monthly, domain.MonthsPerYear)
	assert.Equal(t, 0.0, summary.TotalRealized)
}
