package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/sales-performance-api/internal/domain"
)

type HealthcheckResponse struct {
	Status        string       `json:"status"`
	Time          string       `json:"time"`
	PlanningYears []int        `json:"planning_years"`
	CurrentYear   int          `json:"current_year"`
	CurrentMonth  domain.Month `json:"current_month"`
}

// HealthcheckHandler responde com o horário do servidor e o período usado como padrão nas leituras
func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		year, month := currentPeriod()
		writeJSON(w, r, http.StatusOK, HealthcheckResponse{
			Status:        "ok",
			Time:          now().Format(time.RFC3339),
			PlanningYears: domain.PlanningYears(),
			CurrentYear:   year,
			CurrentMonth:  month,
		})
	})
}
