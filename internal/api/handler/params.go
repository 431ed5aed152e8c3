package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/usecases/insighting"
	"github.com/vfg2006/sales-performance-api/internal/usecases/recording"
	"github.com/vfg2006/sales-performance-api/pkg/apiErrors"
	"github.com/vfg2006/sales-performance-api/pkg/log"
	"github.com/vfg2006/sales-performance-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// now é substituído nos testes
var now = time.Now

// currentPeriod é o mês corrente limitado à janela de planejamento
func currentPeriod() (int, domain.Month) {
	year, month := utils.ReferencePeriod(now())

	first := domain.FirstPlanningYear
	last := domain.FirstPlanningYear + domain.PlanningYearCount - 1
	switch {
	case year < first:
		return first, domain.January
	case year > last:
		return last, domain.December
	}
	return year, domain.Month(month)
}

// yearParam lê um ano da query; ausente usa o padrão
func yearParam(r *http.Request, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return fallback, nil
	}

	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parâmetro %s inválido: %q", key, raw)
	}
	return year, nil
}

// periodParams lê year e month da query, com o período corrente como padrão
func periodParams(r *http.Request) (int, domain.Month, error) {
	defaultYear, defaultMonth := currentPeriod()

	year, err := yearParam(r, "year", defaultYear)
	if err != nil {
		return 0, 0, err
	}

	raw := r.URL.Query().Get("month")
	if strings.TrimSpace(raw) == "" {
		return year, defaultMonth, nil
	}

	month, ok := domain.ParseMonth(raw)
	if !ok {
		return 0, 0, fmt.Errorf("parâmetro month inválido: %q", raw)
	}
	return year, month, nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("handler: erro ao codificar resposta")
	}
}

// writeServiceError traduz erros dos serviços para o envelope de erro da API
func writeServiceError(w http.ResponseWriter, err error) {
	var recErr *recording.RecordingError
	if errors.As(err, &recErr) {
		apiErrors.WriteError(w, recErr.Code, recErr.Error(), nil)
		return
	}

	if errors.Is(err, insighting.ErrInvalidYear) ||
		errors.Is(err, insighting.ErrInvalidMonth) ||
		errors.Is(err, insighting.ErrInvalidReferenceYear) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
}
