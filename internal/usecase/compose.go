package usecase

import (
	"context"
	"errors"
	"fmt"

	"gridworks/internal/domain"
)

// Read-side composition.

func (s Service) composeTeam(ctx context.Context, t domain.Team) (TeamOutput, error) {
	out := TeamOutput{
		ID:         t.ID,
		Name:       t.Name,
		Employees:  []domain.EmployeeSummary{},
		Equipments: []domain.EquipmentSummary{},
		CreatedAt:  t.CreatedAt,
	}
	employees, err := s.Stores.Teams.ListTeamEmployees(ctx, t.ID)
	if err != nil {
		return TeamOutput{}, fmt.Errorf("expand team %s employees: %w", t.ID, err)
	}
	for _, e := range employees {
		out.Employees = append(out.Employees, domain.EmployeeSummary{
			ID:           e.ID,
			Registration: e.Registration,
			FullName:     e.FullName,
			Occupation:   e.Occupation,
		})
	}
	equipments, err := s.Stores.Teams.ListTeamEquipments(ctx, t.ID)
	if err != nil {
		return TeamOutput{}, fmt.Errorf("expand team %s equipments: %w", t.ID, err)
	}
	for _, e := range equipments {
		out.Equipments = append(out.Equipments, domain.EquipmentSummary{
			ID:           e.ID,
			Model:        e.Model,
			Manufacturer: e.Manufacturer,
			LicensePlate: e.LicensePlate,
		})
	}
	return out, nil
}

func (s Service) composeTower(ctx context.Context, t domain.Tower) (TowerOutput, error) {
	out := TowerOutput{
		ID:             t.ID,
		Code:           t.Code,
		TowerNumber:    t.TowerNumber,
		Type:           t.Type,
		Latitude:       t.Latitude,
		Longitude:      t.Longitude,
		Height:         t.Height,
		Weight:         t.Weight,
		FoundationDate: t.FoundationDate,
		ErectionDate:   t.ErectionDate,
		TensioningDate: t.TensioningDate,
		Observations:   t.Observations,
		Hidden:         t.Hidden,
		WorkID:         t.WorkID,
		Foundations:    []FoundationOutput{},
		CreatedAt:      t.CreatedAt,
	}
	foundations, err := s.Stores.Foundations.ListTowerFoundations(ctx, t.ID)
	if err != nil {
		return TowerOutput{}, fmt.Errorf("embed tower %s foundations: %w", t.ID, err)
	}
	for _, f := range foundations {
		out.Foundations = append(out.Foundations, foundationOutput(f))
	}
	return out, nil
}

func (s Service) composeTeams(ctx context.Context, p domain.Page[domain.Team]) (ListOutput[TeamOutput], error) {
	out := ListOutput[TeamOutput]{Total: p.Total, Items: make([]TeamOutput, 0, len(p.Items))}
	for _, t := range p.Items {
		item, err := s.composeTeam(ctx, t)
		if err != nil {
			return ListOutput[TeamOutput]{}, err
		}
		out.Items = append(out.Items, item)
	}
	return out, nil
}

func (s Service) composeTowers(ctx context.Context, p domain.Page[domain.Tower]) (ListOutput[TowerOutput], error) {
	out := ListOutput[TowerOutput]{Total: p.Total, Items: make([]TowerOutput, 0, len(p.Items))}
	for _, t := range p.Items {
		item, err := s.composeTower(ctx, t)
		if err != nil {
			return ListOutput[TowerOutput]{}, err
		}
		out.Items = append(out.Items, item)
	}
	return out, nil
}

// Write-side reference checks. Referenced ids are verified before the store
// write so an invalid input never reaches the database.

// checkRefs validates an id list for a relation array: duplicates are a
// conflict, ids that do not resolve are invalid references.
func checkRefs(ctx context.Context, owner, resource string, ids []string, exists func(context.Context, string) error) error {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return domain.ConflictError{Resource: owner, Detail: fmt.Sprintf("duplicate %s id %s", resource, id)}
		}
		seen[id] = struct{}{}
		if err := exists(ctx, id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.InvalidReferenceError{Resource: resource, ID: id}
			}
			return err
		}
	}
	return nil
}

// checkRef validates a single required or optional (non-nil) reference.
func checkRef(ctx context.Context, resource, id string, exists func(context.Context, string) error) error {
	if err := exists(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.InvalidReferenceError{Resource: resource, ID: id}
		}
		return err
	}
	return nil
}

func (s Service) employeeExists(ctx context.Context, id string) error {
	_, err := s.Stores.Employees.GetEmployee(ctx, id)
	return err
}

func (s Service) equipmentExists(ctx context.Context, id string) error {
	_, err := s.Stores.Equipments.GetEquipment(ctx, id)
	return err
}

func (s Service) teamExists(ctx context.Context, id string) error {
	_, err := s.Stores.Teams.GetTeam(ctx, id)
	return err
}

func (s Service) towerExists(ctx context.Context, id string) error {
	_, err := s.Stores.Towers.GetTower(ctx, id)
	return err
}

func (s Service) taskExists(ctx context.Context, id string) error {
	_, err := s.Stores.Tasks.GetTask(ctx, id)
	return err
}

func (s Service) workExists(ctx context.Context, id string) error {
	_, err := s.Stores.Works.GetWork(ctx, id)
	return err
}
