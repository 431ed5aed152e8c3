package insighting

import "github.com/vfg2006/sales-performance-api/internal/domain"

func newSnapshot() *domain.Snapshot {
	snapshot := &domain.Snapshot{
		Revenue:     map[int]*domain.MonthlySales{},
		Operational: map[int]*domain.MonthlyCosts{},
		Projections: map[string]map[int]float64{},
	}
	for _, year := range domain.PlanningYears() {
		snapshot.Revenue[year] = &domain.MonthlySales{}
		snapshot.Operational[year] = &domain.MonthlyCosts{}
	}
	return snapshot
}

func setSale(s *domain.Snapshot, year int, month domain.Month, seller domain.SellerID, value float64) {
	s.Revenue[year].At(month).Set(seller, value)
}

func setProjection(s *domain.Snapshot, clientID string, year int, value float64) {
	if s.Projections[clientID] == nil {
		s.Projections[clientID] = map[int]float64{}
	}
	s.Projections[clientID][year] = value
}

// targetsFor cria uma tabela de metas só para um vendedor
func targetsFor(seller domain.SellerID, values map[domain.Month]float64) domain.TargetTable {
	var table domain.TargetTable
	for _, month := range domain.Months() {
		table[month.Index()].Month = month
		table[month.Index()].Sellers.Set(seller, values[month])
	}
	return table
}

var testThresholds = domain.Thresholds{
	StarMultiplier:      domain.DefaultStarMultiplier,
	DeclineMultiplier:   domain.DefaultDeclineMultiplier,
	LogisticsWarningPct: domain.DefaultLogisticsWarningPct,
	GoodsWarningPct:     domain.DefaultGoodsWarningPct,
}
