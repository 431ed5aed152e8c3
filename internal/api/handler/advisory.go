package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-performance-api/internal/usecases/advising"
	"github.com/vfg2006/sales-performance-api/internal/usecases/insighting"
	"github.com/vfg2006/sales-performance-api/pkg/apiErrors"
	"github.com/vfg2006/sales-performance-api/pkg/log"
)

// PostAdvisory pede recomendações sobre o painel do período. Falhas aqui não afetam as demais rotas.
func PostAdvisory(adviser advising.Adviser) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		year, month, err := periodParams(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		advice, err := adviser.Advise(r.Context(), year, month)
		if err != nil {
			switch {
			case errors.Is(err, advising.ErrAdvisoryDisabled):
				apiErrors.WriteError(w, apiErrors.ErrAdvisoryDisabled, "Serviço de recomendações desligado", nil)
			case errors.Is(err, insighting.ErrInvalidYear),
				errors.Is(err, insighting.ErrInvalidMonth):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			default:
				logger.WithError(err).Error("advisory: erro ao obter recomendações")
				apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar o serviço de recomendações", nil)
			}
			return
		}

		logger.WithFields(log.Fields{
			"year":    year,
			"month":   month.Key(),
			"sources": len(advice.Sources),
		}).Info("advisory: recomendações obtidas")

		writeJSON(w, r, http.StatusOK, advice)
	})
}
