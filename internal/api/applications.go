package api

import (
	"encoding/json"
	"net/http"
)

type applyRequest struct {
	ShiftID      int64    `json:"shift_id"`
	CoverLetter  string   `json:"cover_letter"`
	ProposedRate *float64 `json:"proposed_rate"`
}

func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	workerID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	var req applyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	app, err := s.applications.Apply(r.Context(), workerID, req.ShiftID, req.CoverLetter, req.ProposedRate)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, app)
}

func (s *Server) handleWorkerApplications(w http.ResponseWriter, r *http.Request) {
	workerID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	apps, err := s.applications.WorkerApplications(r.Context(), workerID)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, apps)
}

func (s *Server) handleHospitalApplications(w http.ResponseWriter, r *http.Request) {
	hospitalID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	apps, err := s.applications.HospitalApplications(r.Context(), hospitalID)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, apps)
}

func (s *Server) handleShiftApplications(w http.ResponseWriter, r *http.Request) {
	hospitalID, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	shiftID, ok := pathID(w, r)
	if !ok {
		return
	}

	apps, err := s.applications.ShiftApplications(r.Context(), hospitalID, shiftID)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, apps)
}

func (s *Server) handleApproveApplication(w http.ResponseWriter, r *http.Request) {
	hospitalID, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := s.applications.Approve(r.Context(), hospitalID, id); err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"detail": "Application approved successfully"})
}

func (s *Server) handleRejectApplication(w http.ResponseWriter, r *http.Request) {
	hospitalID, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := s.applications.Reject(r.Context(), hospitalID, id); err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"detail": "Application rejected successfully"})
}

func (s *Server) handleWithdrawApplication(w http.ResponseWriter, r *http.Request) {
	workerID, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := s.applications.Withdraw(r.Context(), workerID, id); err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"detail": "Application withdrawn"})
}
