package handler

import (
	"net/http"

	"github.com/vfg2006/sales-performance-api/internal/domain"
)

type ReferenceClient struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	HistoricalTotal   float64 `json:"historical_total"`
	HistoricalAverage float64 `json:"historical_average"`
}

type ReferenceSeller struct {
	ID   domain.SellerID `json:"id"`
	Name string          `json:"name"`
}

// ReferenceData é o material estático que o cliente precisa para montar as telas de lançamento
type ReferenceData struct {
	PlanningYears   []int              `json:"planning_years"`
	HistoricalYears []int              `json:"historical_years"`
	Months          []domain.Month     `json:"months"`
	Sellers         []ReferenceSeller  `json:"sellers"`
	CostFields      []domain.CostField `json:"cost_fields"`
	Targets         domain.TargetTable `json:"targets"`
	Clients         []ReferenceClient  `json:"clients"`
	Thresholds      domain.Thresholds  `json:"thresholds"`
}

func NewReferenceData(targets domain.TargetTable, clients []domain.TopClient, thresholds domain.Thresholds) ReferenceData {
	sellers := make([]ReferenceSeller, 0, domain.SellerCount)
	for _, seller := range domain.Sellers() {
		sellers = append(sellers, ReferenceSeller{ID: seller, Name: seller.Name()})
	}

	refClients := make([]ReferenceClient, 0, len(clients))
	for _, client := range clients {
		var total float64
		if client.History != nil {
			total = client.History.Total()
		}
		refClients = append(refClients, ReferenceClient{
			ID:                client.ID,
			Name:              client.Name,
			HistoricalTotal:   total,
			HistoricalAverage: client.HistoricalAverage(),
		})
	}

	return ReferenceData{
		PlanningYears:   domain.PlanningYears(),
		HistoricalYears: domain.HistoricalYears(),
		Months:          domain.Months(),
		Sellers:         sellers,
		CostFields:      domain.CostFields(),
		Targets:         targets,
		Clients:         refClients,
		Thresholds:      thresholds,
	}
}

func GetReference(data ReferenceData) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, data)
	})
}
