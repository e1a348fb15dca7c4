package usecase

import (
	"context"

	"gridworks/internal/domain"
)

// CreateTeamInput names the team and optionally lists its initial members.
// Member ids are validated for existence and intra-array uniqueness before
// anything is written.
type CreateTeamInput struct {
	Name         string
	EmployeeIDs  []string
	EquipmentIDs []string
}

func (s Service) CreateTeam(ctx context.Context, in CreateTeamInput) (TeamOutput, error) {
	if err := checkRefs(ctx, "team", "employee", in.EmployeeIDs, s.employeeExists); err != nil {
		return TeamOutput{}, err
	}
	if err := checkRefs(ctx, "team", "equipment", in.EquipmentIDs, s.equipmentExists); err != nil {
		return TeamOutput{}, err
	}
	t, err := s.Stores.Teams.InsertTeam(ctx, in.Name, in.EmployeeIDs, in.EquipmentIDs)
	if err != nil {
		return TeamOutput{}, err
	}
	return s.composeTeam(ctx, t)
}

func (s Service) GetTeam(ctx context.Context, id string) (TeamOutput, error) {
	t, err := s.Stores.Teams.GetTeam(ctx, id)
	if err != nil {
		return TeamOutput{}, err
	}
	return s.composeTeam(ctx, t)
}

func (s Service) ListTeams(ctx context.Context, q domain.PageQuery) (ListOutput[TeamOutput], error) {
	page, err := s.Stores.Teams.ListTeams(ctx, s.normalize(q))
	if err != nil {
		return ListOutput[TeamOutput]{}, err
	}
	return s.composeTeams(ctx, page)
}

func (s Service) UpdateTeam(ctx context.Context, id string, p domain.TeamPatch) (TeamOutput, error) {
	if p.EmployeeIDs != nil {
		if err := checkRefs(ctx, "team", "employee", p.EmployeeIDs, s.employeeExists); err != nil {
			return TeamOutput{}, err
		}
	}
	if p.EquipmentIDs != nil {
		if err := checkRefs(ctx, "team", "equipment", p.EquipmentIDs, s.equipmentExists); err != nil {
			return TeamOutput{}, err
		}
	}
	t, err := s.Stores.Teams.UpdateTeam(ctx, id, p)
	if err != nil {
		return TeamOutput{}, err
	}
	return s.composeTeam(ctx, t)
}

func (s Service) DeleteTeam(ctx context.Context, id string) error {
	return s.Stores.Teams.DeleteTeam(ctx, id)
}
