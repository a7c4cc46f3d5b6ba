package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger() (*logrus.Logger, *bytes.Buffer) {
	logger := SetupLogging("debug")
	buf := &bytes.Buffer{}
	logger.Out = buf
	return logger, buf
}

func TestSetupLogging_LevelKey(t *testing.T) {
	logger, buf := newBufferedLogger()
	logger.Info("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["loglevel"])
	assert.Equal(t, "hello", line["msg"])
}

func TestSetupLogging_UnknownLevel(t *testing.T) {
	logger := SetupLogging("chatty")
	assert.Equal(t, logrus.InfoLevel, logger.Level)
}

func TestLogData_FieldsAndTimings(t *testing.T) {
	logger, _ := newBufferedLogger()
	logData := NewLogData(logger)
	logData.AddData("accountID", "abc")
	logData.AddTiming("queryMs")()

	entry := logData.Log()
	assert.Equal(t, "abc", entry.Data["accountID"])
	assert.Contains(t, entry.Data, "queryMs")
}

func TestTimed_NilLogData(t *testing.T) {
	called := false
	err := Timed(nil, "x", func() error {
		called = true
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, called)
}

func TestFromContext_Fallback(t *testing.T) {
	entry := FromContext(context.Background())
	assert.NotNil(t, entry)
}

func TestMiddleware_AttachesLogData(t *testing.T) {
	logger, buf := newBufferedLogger()

	var seen *LogData
	handler := middleware.RequestID(Middleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetLogData(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/accounts", nil))

	require.NotNil(t, seen)
	assert.Equal(t, http.StatusTeapot, rec.Code)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "Handler.Request.Complete", line["msg"])
	assert.Equal(t, "/v1/accounts", line["path"])
	assert.EqualValues(t, http.StatusTeapot, line["status"])
	assert.NotEmpty(t, line["requestID"])
}
