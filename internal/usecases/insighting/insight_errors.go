package insighting

import "errors"

var (
	ErrInvalidYear  = errors.New("year outside the planning window")
	ErrInvalidMonth = errors.New("invalid month")
	// ErrInvalidReferenceYear é usado quando o ano não é planejável nem histórico
	ErrInvalidReferenceYear = errors.New("year outside the planning and historical windows")
)
