package list_operators

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/glamtime/SalonBookingService/internal/api/handlers"
	"github.com/glamtime/SalonBookingService/internal/service/catalog"
)

const (
	msgInvalidServiceID = "invalid service ID"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/operators
// Query params: serviceId (optional) narrows the list to qualified operators
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var serviceID *int64
	if serviceIDStr := r.URL.Query().Get("serviceId"); serviceIDStr != "" {
		id, err := strconv.ParseInt(serviceIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /operators - Invalid service ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidServiceID)
			return
		}
		serviceID = &id
	}

	result, err := h.service.ListOperators(r.Context(), serviceID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /operators - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidServiceID)

		default:
			h.logger.Error("GET /operators - Failed to list operators: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /operators - Operators listed successfully: count=%d, service_id=%v",
		len(result.Operators), serviceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
