package insighting

import (
	"sort"

	"github.com/vfg2006/sales-performance-api/internal/domain"
)

// Growth é a variação percentual contra o ano anterior; sem base anterior vale 0
func Growth(current, prior float64) float64 {
	if prior <= 0 {
		return 0
	}
	return (current - prior) * 100 / prior
}

// Classify aplica a precedência CHURN → STAR → DECREASE → STABLE
func Classify(current, prior float64, thresholds domain.Thresholds) domain.ClientStatus {
	switch {
	case current == 0 && prior > 0:
		return domain.ClientStatusChurn
	case current > prior*thresholds.StarMultiplier:
		return domain.ClientStatusStar
	case current < prior*thresholds.DeclineMultiplier:
		return domain.ClientStatusDecrease
	default:
		return domain.ClientStatusStable
	}
}

// ParetoCurve é a participação acumulada (%) ao longo dos valores já ordenados.
// O último ponto é exatamente 100 quando o total é positivo; com total zero tudo vale 0.
func ParetoCurve(values []float64) []float64 {
	curve := make([]float64, len(values))

	var total float64
	for _, v := range values {
		total += v
	}
	if total <= 0 {
		return curve
	}

	var cumulative float64
	for i, v := range values {
		cumulative += v
		share := cumulative * 100 / total
		if share > 100 {
			share = 100
		}
		if i > 0 && share < curve[i-1] {
			share = curve[i-1]
		}
		curve[i] = share
	}
	curve[len(curve)-1] = 100

	return curve
}

// ClassifyPortfolio ordena a carteira T20 pelo valor do ano atual e classifica cada cliente
// contra o ano anterior.
func ClassifyPortfolio(
	clients []domain.TopClient,
	snapshot *domain.Snapshot,
	currentYear, priorYear int,
	thresholds domain.Thresholds,
) *domain.ClientPortfolio {
	portfolio := &domain.ClientPortfolio{
		CurrentYear: currentYear,
		PriorYear:   priorYear,
		Clients:     make([]domain.ClientPerformance, 0, len(clients)),
		StatusCounts: map[domain.ClientStatus]int{
			domain.ClientStatusStar:     0,
			domain.ClientStatusStable:   0,
			domain.ClientStatusDecrease: 0,
			domain.ClientStatusChurn:    0,
		},
	}

	for _, client := range clients {
		current := client.ValueFor(snapshot, currentYear)
		prior := client.ValueFor(snapshot, priorYear)
		status := Classify(current, prior, thresholds)

		portfolio.Clients = append(portfolio.Clients, domain.ClientPerformance{
			ClientID: client.ID,
			Name:     client.Name,
			Current:  current,
			Prior:    prior,
			Growth:   Growth(current, prior),
			Status:   status,
		})
		portfolio.StatusCounts[status]++
		portfolio.GrandTotal += current
	}

	sort.SliceStable(portfolio.Clients, func(i, j int) bool {
		return portfolio.Clients[i].Current > portfolio.Clients[j].Current
	})

	values := make([]float64, len(portfolio.Clients))
	for i, c := range portfolio.Clients {
		values[i] = c.Current
	}
	for i, share := range ParetoCurve(values) {
		portfolio.Clients[i].CumulativeShare = share
	}

	return portfolio
}
