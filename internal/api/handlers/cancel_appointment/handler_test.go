package cancel_appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamtime/SalonBookingService/internal/api/middleware"
	"github.com/glamtime/SalonBookingService/internal/service/appointments"
	"github.com/glamtime/SalonBookingService/internal/service/appointments/models"
)

type stubService struct {
	resp    *models.CancelResponse
	err     error
	lastReq *models.CancelAppointmentRequest
	lastID  int64
}

func (s *stubService) Cancel(_ context.Context, appointmentID int64, req *models.CancelAppointmentRequest) (*models.CancelResponse, error) {
	s.lastID = appointmentID
	s.lastReq = req
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(svc *stubService) *mux.Router {
	h := NewHandler(svc, nopLogger{})

	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", h.Handle).Methods(http.MethodPatch)
	return r
}

func doRequest(t *testing.T, r http.Handler, userID, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/appointments/500/cancel", strings.NewReader(body))
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	svc := &stubService{resp: &models.CancelResponse{Changed: true}}
	rec := doRequest(t, newRouter(svc), "2", `{"cancellationReason":"sick"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.CancelResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Changed)

	assert.Equal(t, int64(500), svc.lastID)
	assert.Equal(t, int64(2), svc.lastReq.ActorID)
	assert.Equal(t, "sick", svc.lastReq.CancellationReason)
}

func TestHandle_EmptyBodyAllowed(t *testing.T) {
	svc := &stubService{resp: &models.CancelResponse{Changed: true}}
	rec := doRequest(t, newRouter(svc), "2", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, svc.lastReq.CancellationReason)
}

func TestHandle_RepeatedCancelReportsUnchanged(t *testing.T) {
	svc := &stubService{resp: &models.CancelResponse{Changed: false}}
	rec := doRequest(t, newRouter(svc), "2", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.CancelResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Changed)
}

func TestHandle_MissingUserHeader(t *testing.T) {
	rec := doRequest(t, newRouter(&stubService{}), "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"not found", appointments.ErrAppointmentNotFound, http.StatusNotFound},
		{"access denied", appointments.ErrAccessDenied, http.StatusForbidden},
		{"cannot cancel", appointments.ErrCannotCancel, http.StatusConflict},
		{"internal", appointments.ErrInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, newRouter(&stubService{err: tc.err}), "2", "")
			assert.Equal(t, tc.code, rec.Code)
		})
	}
}
