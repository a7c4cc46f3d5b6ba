package logging

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// LoggingWrapper adapts a handler that reports its error to an
// http.HandlerFunc with its own LogData per request.
func LoggingWrapper(
	loggingName string,
	log *logrus.Logger,
	handler func(http.ResponseWriter, *http.Request, *LogData) error,
) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		logData := NewLogData(log)
		log.Debugf("Handler.%v.Start", loggingName)

		endTimer := logData.AddTiming("duration")
		err := handler(w, req, logData)
		endTimer()
		if err != nil {
			logData.Log().WithError(err).Errorf("Handler.%v.Error", loggingName)
			return
		}

		logData.Log().Infof("Handler.%v.Complete", loggingName)
	}
}

// Middleware attaches a LogData and a request logger to every request and
// logs the outcome once the handler returns.
func Middleware(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			logData := NewLogData(log)
			entry := logrus.NewEntry(log).WithField("requestID", middleware.GetReqID(req.Context()))
			logData.AddData("requestID", middleware.GetReqID(req.Context()))
			logData.AddData("method", req.Method)
			logData.AddData("path", req.URL.Path)

			ctx := WithLogger(WithLogData(req.Context(), logData), entry)
			ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)

			endTimer := logData.AddTiming("durationMs")
			next.ServeHTTP(ww, req.WithContext(ctx))
			endTimer()

			logData.AddData("status", ww.Status())
			if ww.Status() >= http.StatusInternalServerError {
				logData.Log().Error("Handler.Request.Error")
				return
			}
			logData.Log().Info("Handler.Request.Complete")
		})
	}
}
