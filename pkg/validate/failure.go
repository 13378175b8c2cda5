package validate

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

// Kind - вид отказа конвейера. Каждому виду соответствует свой HTTP-статус.
type Kind uint8

const (
	KindBadRequest Kind = iota + 1
	KindUnauthorized
	KindNotFound
	KindUnrecognized
	KindUpstream
)

// Sentinel-ошибки по видам отказа: errors.Is(err, validate.ErrNotFound) и т.п.
var (
	ErrBadRequest     = errors.New("bad request")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrNotFound       = errors.New("not found")
	ErrUnrecognized   = errors.New("unrecognized role")
	ErrUpstream       = errors.New("upstream failure")
	errUnknownFailure = errors.New("validation failed")
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindUnrecognized:
		return "unrecognized"
	case KindUpstream:
		return "upstream"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindBadRequest:
		return ErrBadRequest
	case KindUnauthorized:
		return ErrUnauthorized
	case KindNotFound:
		return ErrNotFound
	case KindUnrecognized:
		return ErrUnrecognized
	case KindUpstream:
		return ErrUpstream
	default:
		return errUnknownFailure
	}
}

// Failure - типизированный отказ шага конвейера.
// Field - проверяемое поле (может быть пустым для проверок авторизации),
// Err - исходная причина (ошибка удалённого вызова, БД, отмены контекста).
type Failure struct {
	Kind   Kind
	Field  Field
	Reason string
	Err    error
}

func (f *Failure) Error() string {
	var b strings.Builder
	b.WriteString(f.Kind.sentinel().Error())
	if f.Field != 0 {
		b.WriteString(": ")
		b.WriteString(f.Field.String())
	}
	if f.Reason != "" {
		b.WriteString(": ")
		b.WriteString(f.Reason)
	}
	if f.Err != nil {
		b.WriteString(": ")
		b.WriteString(f.Err.Error())
	}
	return b.String()
}

// Unwrap - отдаёт и sentinel вида, и исходную причину.
func (f *Failure) Unwrap() []error {
	if f.Err == nil {
		return []error{f.Kind.sentinel()}
	}
	return []error{f.Kind.sentinel(), f.Err}
}

// HTTPStatus - HTTP-эквивалент отказа.
func (f *Failure) HTTPStatus() int {
	switch f.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindUpstream:
		if errors.Is(f.Err, context.DeadlineExceeded) {
			return http.StatusGatewayTimeout
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// AsFailure - достаёт *Failure из цепочки ошибок.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

func badRequest(field Field, reason string) *Failure {
	return &Failure{Kind: KindBadRequest, Field: field, Reason: reason}
}

func notFound(field Field, reason string) *Failure {
	return &Failure{Kind: KindNotFound, Field: field, Reason: reason}
}

func unauthorized(reason string) *Failure {
	return &Failure{Kind: KindUnauthorized, Reason: reason}
}

func upstream(reason string, err error) *Failure {
	return &Failure{Kind: KindUpstream, Reason: reason, Err: err}
}
