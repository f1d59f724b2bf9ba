package api

import (
	"context"
	"net/http"
	"time"

	"github.com/medicall/medicall/internal/lifecycle"
	"github.com/medicall/medicall/internal/model"
	"github.com/medicall/medicall/internal/service"
	"go.uber.org/zap"
)

type ShiftService interface {
	CreateShift(ctx context.Context, shift *model.Shift) error
	GetShift(ctx context.Context, id int64, now time.Time) (*service.ShiftView, error)
	OpenShifts(ctx context.Context, now time.Time) ([]*service.ShiftView, error)
	WorkerFeed(ctx context.Context, workerID int64, now time.Time) ([]*service.ShiftView, error)
	HospitalShifts(ctx context.Context, hospitalID int64, now time.Time) ([]*service.ShiftView, error)
	UpdateStatus(ctx context.Context, hospitalID, shiftID int64, status model.ShiftStatus) error
	Timeline(ctx context.Context, shiftID int64, now time.Time) ([]lifecycle.TimelineStage, lifecycle.Countdown, error)
}

type ApplicationService interface {
	Apply(ctx context.Context, workerID, shiftID int64, coverLetter string, proposedRate *float64) (*model.Application, error)
	Approve(ctx context.Context, hospitalID, applicationID int64) error
	Reject(ctx context.Context, hospitalID, applicationID int64) error
	Withdraw(ctx context.Context, workerID, applicationID int64) error
	WorkerApplications(ctx context.Context, workerID int64) ([]*model.Application, error)
	HospitalApplications(ctx context.Context, hospitalID int64) ([]*model.Application, error)
	ShiftApplications(ctx context.Context, hospitalID, shiftID int64) ([]*model.Application, error)
}

type NotificationService interface {
	List(ctx context.Context, recipientID int64) ([]*model.Notification, error)
	MarkRead(ctx context.Context, recipientID, notificationID int64) error
}

type ReviewService interface {
	CreateReview(ctx context.Context, review *model.ShiftReview) error
	ByReviewer(ctx context.Context, reviewerID int64) ([]*model.ShiftReview, error)
	ForUser(ctx context.Context, userID int64) ([]*model.ShiftReview, error)
}

type DashboardService interface {
	Snapshot() service.DashboardSnapshot
}

type UserService interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id int64) (*model.User, error)
}

type Server struct {
	shifts        ShiftService
	applications  ApplicationService
	notifications NotificationService
	reviews       ReviewService
	dashboard     DashboardService
	users         UserService
	logger        *zap.Logger
	mux           *http.ServeMux
}

func New(
	shifts ShiftService,
	applications ApplicationService,
	notifications NotificationService,
	reviews ReviewService,
	dashboard DashboardService,
	users UserService,
	logger *zap.Logger,
) *Server {
	s := &Server{
		shifts:        shifts,
		applications:  applications,
		notifications: notifications,
		reviews:       reviews,
		dashboard:     dashboard,
		users:         users,
		logger:        logger,
		mux:           http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /api/health", s.handleHealth)

	// Users
	s.mux.HandleFunc("POST /api/users/", s.handleCreateUser)
	s.mux.HandleFunc("GET /api/users/{id}", s.handleGetUser)

	// Shifts
	s.mux.HandleFunc("POST /api/shifts/", s.handleCreateShift)
	s.mux.HandleFunc("GET /api/shifts/", s.handleOpenShifts)
	s.mux.HandleFunc("GET /api/shifts/worker/{$}", s.handleWorkerFeed)
	s.mux.HandleFunc("GET /api/shifts/hospital/{$}", s.handleHospitalShifts)
	s.mux.HandleFunc("GET /api/shifts/{id}", s.handleGetShift)
	s.mux.HandleFunc("PATCH /api/shifts/{id}/status", s.handleUpdateShiftStatus)
	s.mux.HandleFunc("GET /api/shifts/{id}/timeline", s.handleShiftTimeline)
	s.mux.HandleFunc("GET /api/shifts/{id}/applications/", s.handleShiftApplications)

	// Applications
	s.mux.HandleFunc("POST /api/applications/", s.handleApply)
	s.mux.HandleFunc("GET /api/applications/", s.handleWorkerApplications)
	s.mux.HandleFunc("GET /api/applications/hospital/", s.handleHospitalApplications)
	s.mux.HandleFunc("POST /api/applications/{id}/approve", s.handleApproveApplication)
	s.mux.HandleFunc("POST /api/applications/{id}/reject", s.handleRejectApplication)
	s.mux.HandleFunc("POST /api/applications/{id}/withdraw", s.handleWithdrawApplication)

	// Notifications
	s.mux.HandleFunc("GET /api/notifications/", s.handleListNotifications)
	s.mux.HandleFunc("POST /api/notifications/{id}/read", s.handleMarkNotificationRead)

	// Reviews
	s.mux.HandleFunc("POST /api/reviews/", s.handleCreateReview)
	s.mux.HandleFunc("GET /api/reviews/", s.handleListReviews)

	// Dashboard
	s.mux.HandleFunc("GET /api/dashboard/", s.handleDashboard)
}

// ServeHTTP оборачивает mux в middleware логирования
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.withLogging(s.mux).ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
