package api

import "net/http"

func (s *Server) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	recipientID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	notifications, err := s.notifications.List(r.Context(), recipientID)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, notifications)
}

func (s *Server) handleMarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	recipientID, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := s.notifications.MarkRead(r.Context(), recipientID, id); err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "marked as read"})
}
