package api

import "net/http"

// handleDashboard отдаёт последний снимок, собранный фоновой задачей.
// Снимок обновляется раз в 30 секунд, обработчик в БД не ходит.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireUser(w, r); !ok {
		return
	}

	writeJSON(w, http.StatusOK, s.dashboard.Snapshot())
}
