package get_schedule

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/glamtime/SalonBookingService/internal/api/handlers"
	"github.com/glamtime/SalonBookingService/internal/api/middleware"
	"github.com/glamtime/SalonBookingService/internal/domain"
	"github.com/glamtime/SalonBookingService/internal/service/appointments"
	"github.com/glamtime/SalonBookingService/internal/service/appointments/models"
)

const (
	msgUnauthorized      = "authentication required"
	msgMissingDate       = "date is required"
	msgInvalidDate       = "invalid date format, expected YYYY-MM-DD"
	msgInvalidOperatorID = "invalid operator ID"
	msgForbidden         = "access denied"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule
// Query params: date (required, YYYY-MM-DD), operatorId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /schedule - Missing authenticated user")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /schedule - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /schedule - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &models.GetScheduleRequest{
		ActorID: actorID,
		Date:    date,
	}
	if operatorIDStr := r.URL.Query().Get("operatorId"); operatorIDStr != "" {
		operatorID, err := strconv.ParseInt(operatorIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /schedule - Invalid operator ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidOperatorID)
			return
		}
		req.OperatorID = &operatorID
	}

	result, err := h.service.GetSchedule(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /schedule - Access denied: actor_id=%d", actorID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /schedule - Failed to get schedule: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule - Schedule retrieved: date=%s, count=%d", dateStr, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
