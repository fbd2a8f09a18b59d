package reschedule_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/glamtime/SalonBookingService/internal/api/handlers"
	"github.com/glamtime/SalonBookingService/internal/api/middleware"
	rescheduleAppointment "github.com/glamtime/SalonBookingService/internal/usecase/reschedule_appointment"
)

const (
	msgUnauthorized         = "authentication required"
	msgInvalidAppointmentID = "invalid appointment ID"
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidDate          = "invalid date format, expected YYYY-MM-DD"
	msgNotFound             = "appointment not found"
	msgServiceNotFound      = "service not found"
	msgOperatorNotFound     = "operator not found"
	msgOperatorUnqualified  = "operator does not perform this service"
	msgNotReschedulable     = "appointment cannot be rescheduled"
	msgAlreadyStarted       = "appointment has already started"
	msgSlotTaken            = "target slot is already taken"
	msgPastTime             = "target start time is in the past"
	msgInvalidTimeSlot      = "target start time does not match the slot grid"
	msgForbidden            = "access denied"
)

type Handler struct {
	useCase RescheduleAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/{appointmentId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments/{id}/reschedule - Missing authenticated user")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /appointments/{id}/reschedule - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req RescheduleAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actorID, appointmentID)
	if err != nil {
		h.logger.Warn("POST /appointments/{id}/reschedule - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleAppointment.ErrAppointmentNotFound):
			h.logger.Warn("POST /appointments/{id}/reschedule - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rescheduleAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments/{id}/reschedule - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, rescheduleAppointment.ErrOperatorNotFound):
			h.logger.Warn("POST /appointments/{id}/reschedule - Operator not found: operator_id=%v", req.OperatorID)
			handlers.RespondNotFound(w, msgOperatorNotFound)

		case errors.Is(err, rescheduleAppointment.ErrOperatorNotQualified):
			h.logger.Warn("POST /appointments/{id}/reschedule - Operator not qualified: operator_id=%v, service_id=%d",
				req.OperatorID, req.ServiceID)
			handlers.RespondBadRequest(w, msgOperatorUnqualified)

		case errors.Is(err, rescheduleAppointment.ErrNotReschedulable):
			h.logger.Warn("POST /appointments/{id}/reschedule - Not reschedulable: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgNotReschedulable)

		case errors.Is(err, rescheduleAppointment.ErrAlreadyStarted):
			h.logger.Warn("POST /appointments/{id}/reschedule - Already started: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgAlreadyStarted)

		case errors.Is(err, rescheduleAppointment.ErrSlotTaken):
			h.logger.Warn("POST /appointments/{id}/reschedule - Target slot taken: appointment_id=%d, date=%s, time=%s",
				appointmentID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, rescheduleAppointment.ErrPastTime):
			h.logger.Warn("POST /appointments/{id}/reschedule - Past time: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgPastTime)

		case errors.Is(err, rescheduleAppointment.ErrInvalidTimeSlot):
			h.logger.Warn("POST /appointments/{id}/reschedule - Invalid time slot: date=%s, time=%s",
				req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, rescheduleAppointment.ErrAccessDenied):
			h.logger.Warn("POST /appointments/{id}/reschedule - Access denied: appointment_id=%d, actor_id=%d",
				appointmentID, actorID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, rescheduleAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments/{id}/reschedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /appointments/{id}/reschedule - Failed to reschedule: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/{id}/reschedule - Appointment rescheduled: old_id=%d, new_id=%d, actor_id=%d",
		appointmentID, result.ID, actorID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
