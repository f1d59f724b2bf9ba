package api

import (
	"encoding/json"
	"net/http"

	"github.com/medicall/medicall/internal/model"
)

type createUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	UserType string `json:"user_type"` // hospital | worker
}

// handleCreateUser заводит профиль пользователя. Это провижининг,
// X-User-ID здесь не требуется
func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	user := &model.User{
		Email:    req.Email,
		Name:     req.Name,
		UserType: model.UserType(req.UserType),
	}

	if err := s.users.CreateUser(r.Context(), user); err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	user, err := s.users.GetUser(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
