package handler

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/tidwall/gjson"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/usecases/normalizing"
	"github.com/vfg2006/sales-performance-api/internal/usecases/recording"
	"github.com/vfg2006/sales-performance-api/pkg/apiErrors"
	"github.com/vfg2006/sales-performance-api/pkg/log"
)

const maxEditBodyBytes = 1 << 16

// EditResponse devolve o valor já normalizado que foi gravado no snapshot
type EditResponse struct {
	Key   map[string]any `json:"key"`
	Value float64        `json:"value"`
}

// editValue lê o campo "value" do corpo. Textos seguem para a normalização pt-BR;
// números JSON são convertidos para a forma canônica antes, para não perder o ponto decimal.
func editValue(w http.ResponseWriter, r *http.Request) (string, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxEditBodyBytes))
	if err != nil {
		return "", fmt.Errorf("corpo da requisição inválido: %w", err)
	}

	if !gjson.ValidBytes(body) {
		return "", fmt.Errorf("corpo da requisição não é um JSON válido")
	}

	value := gjson.GetBytes(body, "value")
	switch value.Type {
	case gjson.String:
		return value.Str, nil
	case gjson.Number:
		return normalizing.Canonical(value.Float()), nil
	case gjson.Null:
		if value.Exists() {
			return "", nil
		}
	}

	return "", fmt.Errorf("campo value ausente ou inválido")
}

func pathYear(params httprouter.Params) (int, error) {
	raw := params.ByName("year")
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("ano inválido: %q", raw)
	}
	return year, nil
}

func pathMonth(params httprouter.Params) (domain.Month, error) {
	raw := params.ByName("month")
	month, ok := domain.ParseMonth(raw)
	if !ok {
		return 0, fmt.Errorf("mês inválido: %q", raw)
	}
	return month, nil
}

// RecordSellerActual grava o realizado de um vendedor: PUT /v1/revenue/:year/:month/:seller
func RecordSellerActual(recorder recording.Recorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		params := httprouter.ParamsFromContext(r.Context())

		year, err := pathYear(params)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		month, err := pathMonth(params)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		seller, ok := domain.ParseSeller(params.ByName("seller"))
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, fmt.Sprintf("vendedor inválido: %q", params.ByName("seller")), nil)
			return
		}

		raw, err := editValue(w, r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
			return
		}

		value, err := recorder.RecordSellerActual(year, month, seller, raw)
		if err != nil {
			logger.WithError(err).Warn("recording: lançamento de realizado rejeitado")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, EditResponse{
			Key:   map[string]any{"year": year, "month": month, "seller": seller},
			Value: value,
		})
	})
}

// RecordOperationalCost grava um custo operacional: PUT /v1/operational/:year/:month/:field
func RecordOperationalCost(recorder recording.Recorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		params := httprouter.ParamsFromContext(r.Context())

		year, err := pathYear(params)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		month, err := pathMonth(params)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		field, ok := domain.ParseCostField(params.ByName("field"))
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, fmt.Sprintf("campo de custo inválido: %q", params.ByName("field")), nil)
			return
		}

		raw, err := editValue(w, r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
			return
		}

		value, err := recorder.RecordOperationalCost(year, month, field, raw)
		if err != nil {
			logger.WithError(err).Warn("recording: lançamento de custo rejeitado")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, EditResponse{
			Key:   map[string]any{"year": year, "month": month, "field": field},
			Value: value,
		})
	})
}

// RecordProjection grava a projeção de um cliente T20: PUT /v1/projections/:client/:year
func RecordProjection(recorder recording.Recorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		params := httprouter.ParamsFromContext(r.Context())

		year, err := pathYear(params)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		raw, err := editValue(w, r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
			return
		}

		clientID := params.ByName("client")
		value, err := recorder.RecordProjection(clientID, year, raw)
		if err != nil {
			logger.WithError(err).Warn("recording: projeção rejeitada")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, EditResponse{
			Key:   map[string]any{"client": clientID, "year": year},
			Value: value,
		})
	})
}

// GetSnapshot retorna o snapshot atual no formato persistido
func GetSnapshot(reader recording.SnapshotReader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, reader.Snapshot())
	})
}
