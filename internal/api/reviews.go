package api

import (
	"encoding/json"
	"net/http"

	"github.com/medicall/medicall/internal/model"
)

type createReviewRequest struct {
	ShiftID        int64  `json:"shift_id"`
	ReviewedUserID int64  `json:"reviewed_user_id"`
	Rating         int    `json:"rating"`
	Comment        string `json:"comment"`
}

func (s *Server) handleCreateReview(w http.ResponseWriter, r *http.Request) {
	reviewerID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	var req createReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	review := &model.ShiftReview{
		ShiftID:        req.ShiftID,
		ReviewerID:     reviewerID,
		ReviewedUserID: req.ReviewedUserID,
		Rating:         req.Rating,
		Comment:        req.Comment,
	}

	if err := s.reviews.CreateReview(r.Context(), review); err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, review)
}

// handleListReviews отдаёт отзывы: свои по умолчанию,
// полученные - при ?received=true
func (s *Server) handleListReviews(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	var (
		reviews []*model.ShiftReview
		err     error
	)
	if r.URL.Query().Get("received") == "true" {
		reviews, err = s.reviews.ForUser(r.Context(), userID)
	} else {
		reviews, err = s.reviews.ByReviewer(r.Context(), userID)
	}
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, reviews)
}
