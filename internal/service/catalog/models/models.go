package models

import (
	"github.com/glamtime/SalonBookingService/internal/domain"
)

// ServiceResponse is the salon service DTO.
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// ServiceListResponse is a list of salon services.
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// OperatorResponse is the operator DTO.
type OperatorResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	ServiceIDs []int64 `json:"serviceIds"`
}

// OperatorListResponse is a list of operators.
type OperatorListResponse struct {
	Operators []OperatorResponse `json:"operators"`
}

// FromDomainService converts the domain model into a DTO.
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}

	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
	}
}

// FromDomainServiceList converts a list of domain models into a DTO.
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(services)),
	}

	for _, s := range services {
		if svcResp := FromDomainService(s); svcResp != nil {
			resp.Services = append(resp.Services, *svcResp)
		}
	}

	return resp
}

// FromDomainOperator converts the domain model into a DTO.
func FromDomainOperator(o *domain.Operator) *OperatorResponse {
	if o == nil {
		return nil
	}

	serviceIDs := o.ServiceIDs
	if serviceIDs == nil {
		serviceIDs = []int64{}
	}

	return &OperatorResponse{
		ID:         o.ID,
		Name:       o.Name,
		ServiceIDs: serviceIDs,
	}
}

// FromDomainOperatorList converts a list of domain models into a DTO.
func FromDomainOperatorList(operators []*domain.Operator) *OperatorListResponse {
	resp := &OperatorListResponse{
		Operators: make([]OperatorResponse, 0, len(operators)),
	}

	for _, o := range operators {
		if opResp := FromDomainOperator(o); opResp != nil {
			resp.Operators = append(resp.Operators, *opResp)
		}
	}

	return resp
}
