package insighting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/reference"
)

type staticReader struct {
	snapshot *domain.Snapshot
	reads    int
}

func (r *staticReader) Snapshot() *domain.Snapshot {
	r.reads++
	return r.snapshot.Clone()
}

func newTestService(snapshot *domain.Snapshot) (*Service, *staticReader) {
	reader := &staticReader{snapshot: snapshot}
	targets := reference.Targets()
	return NewService(reader, targets, reference.TopClients(), domain.DefaultThresholds(targets)), reader
}

func TestService_Validation(t *testing.T) {
	service, _ := newTestService(newSnapshot())

	_, err := service.RevenueSummary(2025)
	assert.ErrorIs(t, err, ErrInvalidYear)

	_, err = service.SellerPerformance(2026, domain.Month(0))
	assert.ErrorIs(t, err, ErrInvalidMonth)

	_, err = service.ClientPortfolio(2026, 2019)
	assert.ErrorIs(t, err, ErrInvalidReferenceYear)

	_, err = service.ClientPortfolio(2026, 2025)
	assert.NoError(t, err)

	_, err = service.OpportunityCost(2031)
	assert.ErrorIs(t, err, ErrInvalidReferenceYear)
}

func TestService_Dashboard(t *testing.T) {
	snapshot := newSnapshot()
	setSale(snapshot, 2026, domain.January, domain.SellerCarlos, 12000)
	setProjection(snapshot, "c01", 2026, 700000)

	service, reader := newTestService(snapshot)

	dashboard, err := service.Dashboard(2026, domain.January)
	require.NoError(t, err)

	assert.Equal(t, 1, reader.reads)
	assert.Equal(t, 12000.0, dashboard.Revenue.TotalRealized)
	assert.Equal(t, 50.0, dashboard.Sellers.Sellers[domain.SellerCarlos].Attainment)
	assert.Equal(t, domain.SellerCarlos, dashboard.Ranking[0].Seller)
	assert.Equal(t, 2025, dashboard.Portfolio.PriorYear)
	assert.Equal(t, "c01", dashboard.Portfolio.Clients[0].ClientID)
	assert.Equal(t, 100.0, dashboard.Portfolio.Clients[0].CumulativeShare)
	assert.Equal(t, 19, dashboard.Opportunity.IdleCount)
	assert.Len(t, dashboard.Efficiency.Monthly, domain.MonthsPerYear)

	annualTarget := reference.Targets().AnnualTotal()
	assert.InDelta(t, 12000*100/annualTarget, dashboard.Revenue.Attainment, 0.0001)
}
