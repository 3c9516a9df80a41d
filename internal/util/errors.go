package util

import (
	"errors"
	"net/http"
)

type ErrorKind string

const (
	KindValidation          ErrorKind = "validation"
	KindUnauthorized        ErrorKind = "unauthorized"
	KindTokenExpired        ErrorKind = "token_expired"
	KindNotFoundOrForbidden ErrorKind = "not_found_or_forbidden"
	KindConflict            ErrorKind = "conflict"
	KindInternal            ErrorKind = "internal"
)

// AppError : ошибка, доходящая до границы запроса.
// Message отдается клиенту, Err только логируется.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// Сентинелы для errors.Is: сравнение идет только по Kind
var (
	ErrValidation          = &AppError{Kind: KindValidation, Message: "validation failed"}
	ErrUnauthorized        = &AppError{Kind: KindUnauthorized, Message: "unauthorized"}
	ErrTokenExpired        = &AppError{Kind: KindTokenExpired, Message: "access token expired"}
	ErrNotFoundOrForbidden = &AppError{Kind: KindNotFoundOrForbidden, Message: "resource not found"}
	ErrConflict            = &AppError{Kind: KindConflict, Message: "conflict"}
	ErrInternal            = &AppError{Kind: KindInternal, Message: "internal server error"}
)

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

func NewError(kind ErrorKind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

func Validation(message string) error {
	return NewError(KindValidation, message, nil)
}

func Unauthorized(message string) error {
	return NewError(KindUnauthorized, message, nil)
}

func TokenExpired(message string) error {
	return NewError(KindTokenExpired, message, nil)
}

func NotFoundOrForbidden(message string) error {
	return NewError(KindNotFoundOrForbidden, message, nil)
}

func Conflict(message string) error {
	return NewError(KindConflict, message, nil)
}

// Internal : оборачивает неожиданную ошибку, наружу уходит только message
func Internal(message string, err error) error {
	return NewError(KindInternal, message, err)
}

// StatusCode : HTTP статус для ошибки; все неизвестные ошибки это 500
func StatusCode(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}

	switch appErr.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindTokenExpired:
		return http.StatusForbidden
	case KindNotFoundOrForbidden:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage : безопасный для клиента текст ошибки
func PublicMessage(err error) string {
	var appErr *AppError
	if !errors.As(err, &appErr) || appErr.Kind == KindInternal {
		return ErrInternal.Message
	}
	return appErr.Message
}
