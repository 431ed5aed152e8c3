package recording

import (
	"errors"
	"fmt"
)

// Erros de validação das chaves de lançamento
var (
	ErrUnknownYear      = errors.New("unknown planning year")
	ErrUnknownMonth     = errors.New("unknown month")
	ErrUnknownSeller    = errors.New("unknown seller")
	ErrUnknownCostField = errors.New("unknown cost field")
	ErrUnknownClient    = errors.New("unknown client")

	// Erros de persistência
	ErrEncodeSnapshot = errors.New("error encoding snapshot")
	ErrSaveSnapshot   = errors.New("error saving snapshot")
)

// RecordingError é um erro com o código de API e o contexto do lançamento
type RecordingError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *RecordingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *RecordingError) Unwrap() error {
	return e.Err
}

func NewRecordingError(err error, code string, details string) *RecordingError {
	return &RecordingError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
