package handler

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/contractkit/pkg/logger"
)

// NewErrorHandler renders errors as JSON. Contract breaches and other client
// errors are logged at WARN, everything else at ERROR.
func NewErrorHandler(log *slog.Logger) ErrorHandler {
	if log == nil {
		log = slog.Default()
	}

	return func(w http.ResponseWriter, r *http.Request, err error) {
		resp := JSONError(err)
		logError(log, r, err, resp.Status())

		if writeErr := resp.Write(w); writeErr != nil {
			log.ErrorContext(r.Context(), "failed to write error response",
				logger.Error(writeErr),
				logger.Component("error_handler"),
			)
		}
	}
}

func logError(log *slog.Logger, r *http.Request, err error, status int) {
	level := slog.LevelError
	if status < http.StatusInternalServerError {
		level = slog.LevelWarn
	}

	log.LogAttrs(r.Context(), level, "request error",
		logger.Error(err),
		logger.Failures(err),
		logger.Status(status),
		logger.Route(r.Method, r.URL.Path),
		logger.Component("error_handler"),
	)
}
