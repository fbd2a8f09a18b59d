package get_operator

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/glamtime/SalonBookingService/internal/api/handlers"
	"github.com/glamtime/SalonBookingService/internal/service/catalog"
)

const (
	msgInvalidOperatorID = "invalid operator ID"
	msgNotFound          = "operator not found"
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

// Handle GET /api/v1/operators/{operatorId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	operatorID, err := strconv.ParseInt(vars["operatorId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /operators/{id} - Invalid operator ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOperatorID)
		return
	}

	result, err := h.service.GetOperator(r.Context(), operatorID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrOperatorNotFound):
			h.logger.Warn("GET /operators/{id} - Operator not found: operator_id=%d", operatorID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /operators/{id} - Failed to get operator: operator_id=%d, error=%v", operatorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /operators/{id} - Operator fetched: operator_id=%d", operatorID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
