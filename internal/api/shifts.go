package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/medicall/medicall/internal/model"
)

// JSON payload для публикации смены
type createShiftRequest struct {
	Department    string  `json:"department"`
	Role          string  `json:"role"`
	Date          string  `json:"date"`       // YYYY-MM-DD
	StartTime     string  `json:"start_time"` // HH:MM
	EndTime       string  `json:"end_time"`   // HH:MM
	DurationHours float64 `json:"duration_hours"`
	PayPerHour    float64 `json:"pay_per_hour"`
	Urgency       string  `json:"urgency"`
	Requirements  string  `json:"requirements"`
	Location      string  `json:"location"`
	Description   string  `json:"description"`
	MaxApplicants int     `json:"max_applicants"`
}

func (s *Server) handleCreateShift(w http.ResponseWriter, r *http.Request) {
	hospitalID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	var req createShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	shift := &model.Shift{
		HospitalID:    hospitalID,
		Department:    req.Department,
		Role:          req.Role,
		Date:          req.Date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		DurationHours: req.DurationHours,
		PayPerHour:    req.PayPerHour,
		Urgency:       model.ShiftUrgency(req.Urgency),
		Requirements:  req.Requirements,
		Location:      req.Location,
		Description:   req.Description,
		MaxApplicants: req.MaxApplicants,
	}

	if err := s.shifts.CreateShift(r.Context(), shift); err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, shift)
}

// handleOpenShifts отдаёт все открытые смены, без привязки к пользователю
func (s *Server) handleOpenShifts(w http.ResponseWriter, r *http.Request) {
	views, err := s.shifts.OpenShifts(r.Context(), time.Now())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleGetShift(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	view, err := s.shifts.GetShift(r.Context(), id, time.Now())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleWorkerFeed(w http.ResponseWriter, r *http.Request) {
	workerID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	views, err := s.shifts.WorkerFeed(r.Context(), workerID, time.Now())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleHospitalShifts(w http.ResponseWriter, r *http.Request) {
	hospitalID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	views, err := s.shifts.HospitalShifts(r.Context(), hospitalID, time.Now())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleUpdateShiftStatus(w http.ResponseWriter, r *http.Request) {
	hospitalID, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if err := s.shifts.UpdateStatus(r.Context(), hospitalID, id, model.ShiftStatus(req.Status)); err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (s *Server) handleShiftTimeline(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	stages, countdown, err := s.shifts.Timeline(r.Context(), id, time.Now())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"stages":    stages,
		"countdown": countdown,
	})
}
