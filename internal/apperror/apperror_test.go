package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/budget-planner/internal/storage/table"
)

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusCode(Invalid("amount must be positive")))
	assert.Equal(t, http.StatusNotFound, StatusCode(NotFound("account not found")))
	assert.Equal(t, http.StatusConflict, StatusCode(Conflict("insufficient balance")))
	assert.Equal(t, http.StatusBadGateway, StatusCode(Upload(errors.New("timeout"))))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("connection refused")))
}

func TestStatusCode_WrappedStorageNotFound(t *testing.T) {
	err := fmt.Errorf("load transfer: %w", table.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, StatusCode(err))
	assert.Equal(t, "not found", Message(err, "failed"))
}

func TestMessage(t *testing.T) {
	wrapped := fmt.Errorf("CreateTransfer: %w", Conflict("insufficient balance"))
	assert.Equal(t, "insufficient balance", Message(wrapped, "failed"))
	assert.Equal(t, "failed", Message(errors.New("boom"), "failed"))
}

func TestNotFound_IsStorageNotFound(t *testing.T) {
	assert.ErrorIs(t, NotFound("task not found"), table.ErrNotFound)
}
