package insighting

import "github.com/vfg2006/sales-performance-api/internal/domain"

// EstimateOpportunityCost marca como parado o cliente com valor exatamente zero no ano e atribui
// a ele sua média histórica anual como custo de oportunidade.
func EstimateOpportunityCost(year int, clients []domain.TopClient, snapshot *domain.Snapshot) *domain.OpportunityCostSummary {
	summary := &domain.OpportunityCostSummary{
		Year:    year,
		Clients: make([]domain.ClientOpportunity, 0, len(clients)),
	}

	for _, client := range clients {
		average := client.HistoricalAverage()
		value := client.ValueFor(snapshot, year)

		opportunity := domain.ClientOpportunity{
			ClientID:          client.ID,
			Name:              client.Name,
			HistoricalAverage: average,
			YearValue:         value,
			Idle:              value == 0,
		}
		if opportunity.Idle {
			summary.IdleCount++
			if average > 0 {
				opportunity.OpportunityCost = average
			}
		}

		summary.Total += opportunity.OpportunityCost
		summary.Clients = append(summary.Clients, opportunity)
	}

	return summary
}
