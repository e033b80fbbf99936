package note

import (
	"errors"
	"fmt"
)

var (
	ErrNetwork  = errors.New("note request failed")
	ErrNotFound = errors.New("note not found")

	// ErrInvalidPayload - сервер ответил 2xx, но ответ непригоден; это тоже сетевая ошибка
	ErrInvalidPayload = fmt.Errorf("invalid note payload: %w", ErrNetwork)
)

// RequestError описывает неудачный запрос к хранилищу заметок.
// Err всегда оборачивает одну из ошибок пакета.
type RequestError struct {
	Op     string
	Method string
	URL    string
	Status int
	Err    error
	Cause  error
}

func (e *RequestError) Error() string {
	msg := fmt.Sprintf("%s: %s %s", e.Op, e.Method, e.URL)
	if e.Status != 0 {
		msg += fmt.Sprintf(": статус %d", e.Status)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg + ": " + e.Err.Error()
}

func (e *RequestError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}
