package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/medicall/medicall/internal/lifecycle"
	"github.com/medicall/medicall/internal/model"
	"github.com/medicall/medicall/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubShifts struct {
	feed      []*service.ShiftView
	view      *service.ShiftView
	updateErr error
}

func (s *stubShifts) CreateShift(ctx context.Context, shift *model.Shift) error {
	shift.ID = 42
	return nil
}

func (s *stubShifts) GetShift(ctx context.Context, id int64, now time.Time) (*service.ShiftView, error) {
	if s.view == nil {
		return nil, service.ErrNotFound
	}
	return s.view, nil
}

func (s *stubShifts) OpenShifts(ctx context.Context, now time.Time) ([]*service.ShiftView, error) {
	return s.feed, nil
}

func (s *stubShifts) WorkerFeed(ctx context.Context, workerID int64, now time.Time) ([]*service.ShiftView, error) {
	return s.feed, nil
}

func (s *stubShifts) HospitalShifts(ctx context.Context, hospitalID int64, now time.Time) ([]*service.ShiftView, error) {
	return s.feed, nil
}

func (s *stubShifts) UpdateStatus(ctx context.Context, hospitalID, shiftID int64, status model.ShiftStatus) error {
	return s.updateErr
}

func (s *stubShifts) Timeline(ctx context.Context, shiftID int64, now time.Time) ([]lifecycle.TimelineStage, lifecycle.Countdown, error) {
	return []lifecycle.TimelineStage{{ID: lifecycle.StageCreated, Label: "Posted", Completed: true}},
		lifecycle.Countdown{Display: "3h 10m"}, nil
}

type stubApplications struct {
	approveErr error
}

func (s *stubApplications) Apply(ctx context.Context, workerID, shiftID int64, coverLetter string, proposedRate *float64) (*model.Application, error) {
	return &model.Application{ID: 7, ShiftID: shiftID, WorkerID: workerID, Status: model.ApplicationStatusPending}, nil
}

func (s *stubApplications) Approve(ctx context.Context, hospitalID, applicationID int64) error {
	return s.approveErr
}

func (s *stubApplications) Reject(ctx context.Context, hospitalID, applicationID int64) error {
	return nil
}

func (s *stubApplications) Withdraw(ctx context.Context, workerID, applicationID int64) error {
	return nil
}

func (s *stubApplications) WorkerApplications(ctx context.Context, workerID int64) ([]*model.Application, error) {
	return nil, nil
}

func (s *stubApplications) HospitalApplications(ctx context.Context, hospitalID int64) ([]*model.Application, error) {
	return nil, nil
}

func (s *stubApplications) ShiftApplications(ctx context.Context, hospitalID, shiftID int64) ([]*model.Application, error) {
	return nil, nil
}

type stubNotifications struct{}

func (s *stubNotifications) List(ctx context.Context, recipientID int64) ([]*model.Notification, error) {
	return []*model.Notification{{ID: 1, RecipientID: recipientID, Title: "Shift Expiring Soon"}}, nil
}

func (s *stubNotifications) MarkRead(ctx context.Context, recipientID, notificationID int64) error {
	return nil
}

type stubReviews struct{}

func (s *stubReviews) CreateReview(ctx context.Context, review *model.ShiftReview) error {
	review.ID = 3
	return nil
}

func (s *stubReviews) ByReviewer(ctx context.Context, reviewerID int64) ([]*model.ShiftReview, error) {
	return nil, nil
}

func (s *stubReviews) ForUser(ctx context.Context, userID int64) ([]*model.ShiftReview, error) {
	return nil, nil
}

type stubUsers struct {
	user *model.User
}

func (s *stubUsers) CreateUser(ctx context.Context, user *model.User) error {
	user.ID = 11
	return nil
}

func (s *stubUsers) GetUser(ctx context.Context, id int64) (*model.User, error) {
	if s.user == nil {
		return nil, service.ErrNotFound
	}
	return s.user, nil
}

type stubDashboard struct{}

func (s *stubDashboard) Snapshot() service.DashboardSnapshot {
	return service.DashboardSnapshot{ActiveShifts: 4, UrgentShifts: 1}
}

func newTestServer(shifts *stubShifts, apps *stubApplications) *Server {
	if shifts == nil {
		shifts = &stubShifts{}
	}
	if apps == nil {
		apps = &stubApplications{}
	}
	return New(shifts, apps, &stubNotifications{}, &stubReviews{}, &stubDashboard{}, &stubUsers{}, zap.NewNop())
}

func doRequest(srv *Server, method, path, body string, userID string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := doRequest(newTestServer(nil, nil), http.MethodGet, "/api/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestRequireUser(t *testing.T) {
	srv := newTestServer(nil, nil)

	rec := doRequest(srv, http.MethodGet, "/api/shifts/worker/", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(srv, http.MethodGet, "/api/shifts/worker/", "", "abc")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(srv, http.MethodGet, "/api/shifts/worker/", "", "12")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestIDHeader(t *testing.T) {
	rec := doRequest(newTestServer(nil, nil), http.MethodGet, "/api/health", "", "")

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestWorkerFeed(t *testing.T) {
	shifts := &stubShifts{
		feed: []*service.ShiftView{
			{
				Shift:           &model.Shift{ID: 1, Role: "ICU Nurse", Status: model.ShiftStatusActive},
				EffectiveStatus: model.ShiftStatusActive,
				Stage:           lifecycle.StageUrgent,
				Countdown:       lifecycle.Countdown{Display: "5h 12m"},
			},
		},
	}

	rec := doRequest(newTestServer(shifts, nil), http.MethodGet, "/api/shifts/worker/", "", "12")
	require.Equal(t, http.StatusOK, rec.Code)

	var views []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	require.Len(t, views, 1)
	assert.Equal(t, "active", views[0]["effective_status"])
	assert.Equal(t, "urgent", views[0]["stage"])
}

func TestCreateUser(t *testing.T) {
	body := `{"email":"icu@hospital.example","name":"City Hospital","user_type":"hospital"}`
	rec := doRequest(newTestServer(nil, nil), http.MethodPost, "/api/users/", body, "")

	require.Equal(t, http.StatusCreated, rec.Code)

	var created model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, int64(11), created.ID)
	assert.Equal(t, model.UserTypeHospital, created.UserType)
}

func TestGetUserNotFound(t *testing.T) {
	rec := doRequest(newTestServer(nil, nil), http.MethodGet, "/api/users/99", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOpenShiftsIsPublic(t *testing.T) {
	shifts := &stubShifts{
		feed: []*service.ShiftView{
			{Shift: &model.Shift{ID: 2, Role: "ER Nurse"}, EffectiveStatus: model.ShiftStatusActive},
		},
	}

	// Без X-User-ID: список открытых смен доступен всем
	rec := doRequest(newTestServer(shifts, nil), http.MethodGet, "/api/shifts/", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var views []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	require.Len(t, views, 1)
	assert.Equal(t, "ER Nurse", views[0]["role"])
}

func TestGetShiftNotFound(t *testing.T) {
	rec := doRequest(newTestServer(&stubShifts{}, nil), http.MethodGet, "/api/shifts/99", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateShift(t *testing.T) {
	body := `{"department":"ICU","role":"Nurse","date":"2024-06-01","start_time":"09:00","end_time":"17:00","pay_per_hour":55}`
	rec := doRequest(newTestServer(nil, nil), http.MethodPost, "/api/shifts/", body, "3")

	require.Equal(t, http.StatusCreated, rec.Code)

	var created model.Shift
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, int64(3), created.HospitalID)
}

func TestCreateShiftBadJSON(t *testing.T) {
	rec := doRequest(newTestServer(nil, nil), http.MethodPost, "/api/shifts/", "{", "3")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestApproveForbidden(t *testing.T) {
	apps := &stubApplications{approveErr: service.ErrForbidden}
	rec := doRequest(newTestServer(nil, apps), http.MethodPost, "/api/applications/5/approve", "", "3")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestApply(t *testing.T) {
	body := `{"shift_id":9,"cover_letter":"Available all week"}`
	rec := doRequest(newTestServer(nil, nil), http.MethodPost, "/api/applications/", body, "12")

	require.Equal(t, http.StatusCreated, rec.Code)

	var app model.Application
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &app))
	assert.Equal(t, int64(9), app.ShiftID)
	assert.Equal(t, model.ApplicationStatusPending, app.Status)
}

func TestShiftTimeline(t *testing.T) {
	rec := doRequest(newTestServer(nil, nil), http.MethodGet, "/api/shifts/5/timeline", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Stages    []lifecycle.TimelineStage `json:"stages"`
		Countdown lifecycle.Countdown       `json:"countdown"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Stages, 1)
	assert.Equal(t, "3h 10m", resp.Countdown.Display)
}

func TestDashboard(t *testing.T) {
	rec := doRequest(newTestServer(nil, nil), http.MethodGet, "/api/dashboard/", "", "1")
	require.Equal(t, http.StatusOK, rec.Code)

	var snapshot service.DashboardSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
	assert.Equal(t, int64(4), snapshot.ActiveShifts)
	assert.Equal(t, int64(1), snapshot.UrgentShifts)
}

func TestMarkNotificationRead(t *testing.T) {
	rec := doRequest(newTestServer(nil, nil), http.MethodPost, "/api/notifications/8/read", "", "12")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"marked as read"}`, rec.Body.String())
}

func TestInvalidPathID(t *testing.T) {
	rec := doRequest(newTestServer(nil, nil), http.MethodPost, "/api/applications/abc/approve", "", "3")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
