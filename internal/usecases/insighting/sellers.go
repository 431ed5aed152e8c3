package insighting

import "github.com/vfg2006/sales-performance-api/internal/domain"

// SellerAttainment é o atingimento da meta individual. Sem meta, quem vendeu algo fica com 100%.
func SellerAttainment(realized, target float64) float64 {
	if target > 0 {
		return realized * 100 / target
	}
	if realized > 0 {
		return 100
	}
	return 0
}

// EvaluateSellers calcula o desempenho de cada vendedor no mês
func EvaluateSellers(year int, month domain.Month, snapshot *domain.Snapshot, targets domain.TargetTable) *domain.SellerPeriodPerformance {
	sales := snapshot.MonthSales(year, month)
	target := targets.For(month)

	performance := make([]domain.SellerPerformance, 0, domain.SellerCount)
	for _, seller := range domain.Sellers() {
		performance = append(performance, newSellerPerformance(seller, sales.Get(seller), target.Sellers.Get(seller)))
	}

	m := month
	return &domain.SellerPeriodPerformance{
		Year:    year,
		Month:   &m,
		Sellers: performance,
		Best:    bestSeller(performance),
	}
}

// EvaluateSellersAnnual usa a razão das somas dos doze meses, não a soma das razões
func EvaluateSellersAnnual(year int, snapshot *domain.Snapshot, targets domain.TargetTable) *domain.SellerPeriodPerformance {
	var realized, target domain.SellerAmounts
	for _, month := range domain.Months() {
		sales := snapshot.MonthSales(year, month)
		monthTarget := targets.For(month).Sellers
		for _, seller := range domain.Sellers() {
			realized.Set(seller, realized.Get(seller)+sales.Get(seller))
			target.Set(seller, target.Get(seller)+monthTarget.Get(seller))
		}
	}

	performance := make([]domain.SellerPerformance, 0, domain.SellerCount)
	for _, seller := range domain.Sellers() {
		performance = append(performance, newSellerPerformance(seller, realized.Get(seller), target.Get(seller)))
	}

	return &domain.SellerPeriodPerformance{
		Year:    year,
		Sellers: performance,
		Best:    bestSeller(performance),
	}
}

func newSellerPerformance(seller domain.SellerID, realized, target float64) domain.SellerPerformance {
	return domain.SellerPerformance{
		Seller:     seller,
		Name:       seller.Name(),
		Realized:   realized,
		Target:     target,
		Attainment: SellerAttainment(realized, target),
	}
}

// bestSeller retorna o maior realizado; empate fica com o primeiro na ordem canônica
func bestSeller(performance []domain.SellerPerformance) domain.SellerPerformance {
	if len(performance) == 0 {
		return domain.SellerPerformance{}
	}

	best := performance[0]
	for _, p := range performance[1:] {
		if p.Realized > best.Realized {
			best = p
		}
	}
	return best
}
