package handler

import (
	"net/http"

	"github.com/vfg2006/sales-performance-api/internal/usecases/insighting"
	"github.com/vfg2006/sales-performance-api/pkg/apiErrors"
	"github.com/vfg2006/sales-performance-api/pkg/log"
)

// GetDashboard retorna todas as visões do período em uma única leitura do snapshot
func GetDashboard(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		year, month, err := periodParams(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		dashboard, err := service.Dashboard(year, month)
		if err != nil {
			logger.WithError(err).Warn("dashboard: período inválido")
			writeServiceError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"year":  year,
			"month": month.Key(),
		}).Info("dashboard: painel calculado")

		writeJSON(w, r, http.StatusOK, dashboard)
	})
}

func GetRevenue(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defaultYear, _ := currentPeriod()
		year, err := yearParam(r, "year", defaultYear)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		summary, err := service.RevenueSummary(year)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, summary)
	})
}

func GetSellers(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		year, month, err := periodParams(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		performance, err := service.SellerPerformance(year, month)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, performance)
	})
}

func GetAnnualSellers(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defaultYear, _ := currentPeriod()
		year, err := yearParam(r, "year", defaultYear)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		performance, err := service.AnnualSellerPerformance(year)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, performance)
	})
}

// GetClientPortfolio compara a carteira T20 entre dois anos; por padrão o ano corrente contra o anterior
func GetClientPortfolio(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defaultYear, _ := currentPeriod()

		current, err := yearParam(r, "current", defaultYear)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		prior, err := yearParam(r, "prior", current-1)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		portfolio, err := service.ClientPortfolio(current, prior)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, portfolio)
	})
}

func GetOpportunityCost(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defaultYear, _ := currentPeriod()
		year, err := yearParam(r, "year", defaultYear)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		summary, err := service.OpportunityCost(year)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, summary)
	})
}

func GetOperationalEfficiency(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defaultYear, _ := currentPeriod()
		year, err := yearParam(r, "year", defaultYear)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		efficiency, err := service.OperationalEfficiency(year)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, efficiency)
	})
}
