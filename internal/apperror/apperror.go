// Package apperror classifies workflow failures so the HTTP layer can map
// them to status codes.
package apperror

import (
	"errors"
	"net/http"

	"github.com/carson-networks/budget-planner/internal/storage/table"
)

type Kind int

const (
	KindInternal Kind = iota
	KindInvalid
	KindNotFound
	KindConflict
	KindUpload
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Invalid(message string) error {
	return &Error{Kind: KindInvalid, Message: message}
}

func NotFound(message string) error {
	return &Error{Kind: KindNotFound, Message: message, Err: table.ErrNotFound}
}

func Conflict(message string) error {
	return &Error{Kind: KindConflict, Message: message}
}

func Upload(err error) error {
	return &Error{Kind: KindUpload, Message: "image upload failed", Err: err}
}

// KindOf returns the kind of err. Storage not-found errors count as
// KindNotFound; anything unclassified is KindInternal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	if errors.Is(err, table.ErrNotFound) {
		return KindNotFound
	}
	return KindInternal
}

// StatusCode maps err to an HTTP status.
func StatusCode(err error) int {
	switch KindOf(err) {
	case KindInvalid:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUpload:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// Message returns the user facing message for err.
func Message(err error, fallback string) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	if errors.Is(err, table.ErrNotFound) {
		return "not found"
	}
	return fallback
}
