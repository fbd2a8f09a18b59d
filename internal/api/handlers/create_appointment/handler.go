package create_appointment

import (
	"errors"
	"net/http"

	"github.com/glamtime/SalonBookingService/internal/api/handlers"
	"github.com/glamtime/SalonBookingService/internal/api/middleware"
	createAppointment "github.com/glamtime/SalonBookingService/internal/usecase/create_appointment"
)

const (
	msgUnauthorized        = "authentication required"
	msgInvalidRequestBody  = "invalid request body"
	msgInvalidDate         = "invalid date format, expected YYYY-MM-DD"
	msgServiceNotFound     = "service not found"
	msgOperatorNotFound    = "operator not found"
	msgClientNotFound      = "client not found"
	msgOperatorUnqualified = "operator does not perform this service"
	msgSlotTaken           = "slot is already taken"
	msgPastTime            = "start time is in the past"
	msgInvalidTimeSlot     = "start time does not match the slot grid"
	msgForbidden           = "access denied"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing authenticated user")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actorID)
	if err != nil {
		h.logger.Warn("POST /appointments - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrOperatorNotFound):
			h.logger.Warn("POST /appointments - Operator not found: operator_id=%v", req.OperatorID)
			handlers.RespondNotFound(w, msgOperatorNotFound)

		case errors.Is(err, createAppointment.ErrClientNotFound):
			h.logger.Warn("POST /appointments - Client not found: client_id=%d", useCaseReq.ClientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createAppointment.ErrOperatorNotQualified):
			h.logger.Warn("POST /appointments - Operator not qualified: operator_id=%v, service_id=%d",
				req.OperatorID, req.ServiceID)
			handlers.RespondBadRequest(w, msgOperatorUnqualified)

		case errors.Is(err, createAppointment.ErrSlotTaken):
			h.logger.Warn("POST /appointments - Slot taken: service_id=%d, date=%s, time=%s",
				req.ServiceID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createAppointment.ErrPastTime):
			h.logger.Warn("POST /appointments - Past time: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgPastTime)

		case errors.Is(err, createAppointment.ErrInvalidTimeSlot):
			h.logger.Warn("POST /appointments - Invalid time slot: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createAppointment.ErrAccessDenied):
			h.logger.Warn("POST /appointments - Access denied: actor_id=%d, client_id=%d",
				actorID, useCaseReq.ClientID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: actor_id=%d, error=%v",
				actorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: id=%d, client_id=%d, operator_id=%d",
		result.ID, result.ClientID, result.OperatorID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
