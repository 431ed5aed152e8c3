package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/vfg2006/sales-performance-api/infrastructure/exporter"
	"github.com/vfg2006/sales-performance-api/internal/usecases/insighting"
	"github.com/vfg2006/sales-performance-api/pkg/apiErrors"
	"github.com/vfg2006/sales-performance-api/pkg/log"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportDashboard gera a planilha do painel do período
func ExportDashboard(service insighting.Insighter, exp exporter.Exporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		year, month, err := periodParams(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		dashboard, err := service.Dashboard(year, month)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		// gera em memória para ainda poder responder com erro JSON
		var buf bytes.Buffer
		if err := exp.ExportDashboard(&buf, dashboard); err != nil {
			logger.WithError(err).Error("export: erro ao gerar planilha")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar planilha", nil)
			return
		}

		filename := fmt.Sprintf("painel-%d-%s.xlsx", year, month.Key())
		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		w.WriteHeader(http.StatusOK)

		if _, err := buf.WriteTo(w); err != nil {
			logger.WithError(err).Warn("export: erro ao enviar planilha")
		}
	})
}
