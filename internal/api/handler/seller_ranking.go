package handler

import (
	"net/http"

	"github.com/vfg2006/sales-performance-api/internal/usecases/ranking"
	"github.com/vfg2006/sales-performance-api/pkg/apiErrors"
	"github.com/vfg2006/sales-performance-api/pkg/log"
)

// GetSellerRanking retorna o ranking de vendedores do mês com a variação de posição
func GetSellerRanking(service ranking.RankingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		year, month, err := periodParams(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		result, err := service.GetSellerRanking(year, month)
		if err != nil {
			logger.WithError(err).Warn("seller-ranking: erro ao obter ranking")
			writeServiceError(w, err)
			return
		}

		if result == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Nenhum ranking encontrado", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	})
}
