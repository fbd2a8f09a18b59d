package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/glamtime/SalonBookingService/internal/api/handlers"
	getAvailableSlots "github.com/glamtime/SalonBookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidServiceID    = "invalid service ID"
	msgMissingServiceID    = "service ID is required"
	msgInvalidOperatorID   = "invalid operator ID"
	msgMissingDate         = "date is required"
	msgInvalidDate         = "invalid date format, expected YYYY-MM-DD"
	msgServiceNotFound     = "service not found"
	msgOperatorNotFound    = "operator not found"
	msgOperatorUnqualified = "operator does not perform this service"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/salon/available-slots
// Query params: serviceId (required), date (required, YYYY-MM-DD), operatorId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceIDStr := r.URL.Query().Get("serviceId")
	if serviceIDStr == "" {
		h.logger.Warn("GET /salon/available-slots - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /salon/available-slots - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	var operatorID *int64
	if operatorIDStr := r.URL.Query().Get("operatorId"); operatorIDStr != "" {
		id, err := strconv.ParseInt(operatorIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /salon/available-slots - Invalid operator ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidOperatorID)
			return
		}
		operatorID = &id
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /salon/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(serviceID, operatorID, dateStr)
	if err != nil {
		h.logger.Warn("GET /salon/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /salon/available-slots - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrOperatorNotFound):
			h.logger.Warn("GET /salon/available-slots - Operator not found: operator_id=%v", operatorID)
			handlers.RespondNotFound(w, msgOperatorNotFound)

		case errors.Is(err, getAvailableSlots.ErrOperatorNotQualified):
			h.logger.Warn("GET /salon/available-slots - Operator not qualified: operator_id=%v, service_id=%d",
				operatorID, serviceID)
			handlers.RespondBadRequest(w, msgOperatorUnqualified)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /salon/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /salon/available-slots - Failed to get slots: service_id=%d, error=%v",
				serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /salon/available-slots - Slots retrieved successfully: service_id=%d, date=%s, slots_count=%d",
		serviceID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
