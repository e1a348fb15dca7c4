package usecase

import (
	"context"

	"gridworks/internal/domain"
)

// CreateEmployeeInput carries the writable fields of an employee. Status
// falls back to ACTIVE when empty; TeamID is an optional weak reference.
type CreateEmployeeInput struct {
	Registration string
	FullName     string
	Occupation   string
	Leadership   bool
	Status       domain.EmployeeStatus
	TeamID       *string
}

func (s Service) CreateEmployee(ctx context.Context, in CreateEmployeeInput) (EmployeeOutput, error) {
	status := in.Status
	if status == "" {
		status = domain.DefaultEmployeeStatus
	}
	if !status.Valid() {
		return EmployeeOutput{}, domain.ValidationError{Field: "status", Detail: "unknown value " + string(status)}
	}
	if in.TeamID != nil {
		if err := checkRef(ctx, "team", *in.TeamID, s.teamExists); err != nil {
			return EmployeeOutput{}, err
		}
	}
	e, err := s.Stores.Employees.InsertEmployee(ctx, domain.Employee{
		Registration: in.Registration,
		FullName:     in.FullName,
		Occupation:   in.Occupation,
		Leadership:   in.Leadership,
		Status:       status,
		TeamID:       in.TeamID,
	})
	if err != nil {
		return EmployeeOutput{}, err
	}
	return employeeOutput(e), nil
}

func (s Service) GetEmployee(ctx context.Context, id string) (EmployeeOutput, error) {
	e, err := s.Stores.Employees.GetEmployee(ctx, id)
	if err != nil {
		return EmployeeOutput{}, err
	}
	return employeeOutput(e), nil
}

func (s Service) ListEmployees(ctx context.Context, q domain.PageQuery) (ListOutput[EmployeeOutput], error) {
	page, err := s.Stores.Employees.ListEmployees(ctx, s.normalize(q))
	if err != nil {
		return ListOutput[EmployeeOutput]{}, err
	}
	return mapPage(page, employeeOutput), nil
}

func (s Service) UpdateEmployee(ctx context.Context, id string, p domain.EmployeePatch) (EmployeeOutput, error) {
	if p.Status != nil && !p.Status.Valid() {
		return EmployeeOutput{}, domain.ValidationError{Field: "status", Detail: "unknown value " + string(*p.Status)}
	}
	if p.TeamID != nil && *p.TeamID != "" {
		if err := checkRef(ctx, "team", *p.TeamID, s.teamExists); err != nil {
			return EmployeeOutput{}, err
		}
	}
	e, err := s.Stores.Employees.UpdateEmployee(ctx, id, p)
	if err != nil {
		return EmployeeOutput{}, err
	}
	return employeeOutput(e), nil
}

func (s Service) DeleteEmployee(ctx context.Context, id string) error {
	return s.Stores.Employees.DeleteEmployee(ctx, id)
}
