package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// statusRecorder запоминает код ответа для лога
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// withLogging логирует каждый запрос со сгенерированным request id
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r)

		s.logger.Info("Request handled",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// requireUser достаёт ID пользователя из заголовка X-User-ID.
// Аутентификация живёт снаружи, сюда приходит уже проверенный ID
func (s *Server) requireUser(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.Header.Get("X-User-ID")
	if raw == "" {
		writeError(w, http.StatusUnauthorized, "X-User-ID header is required")
		return 0, false
	}

	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID <= 0 {
		writeError(w, http.StatusUnauthorized, "X-User-ID must be a positive integer")
		return 0, false
	}

	return userID, true
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
