package get_available_slots

import (
	"fmt"
)

// validateRequest validates the availability query before any store access.
func validateRequest(req *Request) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.OperatorID != nil && *req.OperatorID <= 0 {
		return fmt.Errorf("%w: operatorID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
