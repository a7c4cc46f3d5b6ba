// Package params parses the request values shared by the v1 handlers.
package params

import (
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-planner/internal/apperror"
	"github.com/carson-networks/budget-planner/internal/upload"
)

// ID parses a path id.
func ID(value string) (uuid.UUID, error) {
	id, err := uuid.FromString(value)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}
	return id, nil
}

var (
	minInteger = decimal.NewFromInt(math.MinInt64)
	maxInteger = decimal.NewFromInt(math.MaxInt64)
)

// Integer parses a decimal string holding a whole number, e.g. "1500".
func Integer(field, value string) (int64, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return 0, huma.NewError(http.StatusBadRequest, "invalid "+field, err)
	}
	if !d.IsInteger() {
		return 0, huma.NewError(http.StatusBadRequest, field+" must be a whole number", errors.New(value))
	}
	if d.LessThan(minInteger) || d.GreaterThan(maxInteger) {
		return 0, huma.NewError(http.StatusBadRequest, field+" is out of range", errors.New(value))
	}
	return d.IntPart(), nil
}

// Amount parses a positive whole amount.
func Amount(field, value string) (int64, error) {
	n, err := Integer(field, value)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, huma.NewError(http.StatusBadRequest, field+" must be greater than 0", errors.New(value))
	}
	return n, nil
}

// FormatAmount renders a stored amount the way the API accepts it.
func FormatAmount(n int64) string {
	return decimal.NewFromInt(n).String()
}

// Date parses a "YYYY-MM-DD" calendar day.
func Date(field, value string) (time.Time, error) {
	d, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, huma.NewError(http.StatusBadRequest, "invalid "+field, err)
	}
	return d, nil
}

// OptionalDate parses value when it is set.
func OptionalDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	d, err := Date(field, value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// FormatDate renders a stored day as "YYYY-MM-DD".
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// Image builds the upload for an optional base64 image field.
func Image(data []byte, name, contentType string) *upload.File {
	if len(data) == 0 {
		return nil
	}
	if name == "" {
		name = "image"
	}
	return &upload.File{Name: name, ContentType: contentType, Data: data}
}

// Error converts a service error into a Huma error with the matching status.
func Error(err error, fallback string) error {
	return huma.NewError(apperror.StatusCode(err), apperror.Message(err, fallback), err)
}
