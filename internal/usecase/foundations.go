package usecase

import (
	"context"

	"gridworks/internal/domain"
)

// CreateFoundationInput carries the writable fields of a foundation. TowerID
// is a required strong reference; the volume figures are optional.
type CreateFoundationInput struct {
	TowerID          string
	Project          string
	Revision         string
	Description      string
	ExcavationVolume *float64
	ConcreteVolume   *float64
	BackfillVolume   *float64
	SteelWeight      *float64
}

func (s Service) CreateFoundation(ctx context.Context, in CreateFoundationInput) (FoundationOutput, error) {
	if err := checkRef(ctx, "tower", in.TowerID, s.towerExists); err != nil {
		return FoundationOutput{}, err
	}
	f, err := s.Stores.Foundations.InsertFoundation(ctx, domain.Foundation{
		TowerID:          in.TowerID,
		Project:          in.Project,
		Revision:         in.Revision,
		Description:      in.Description,
		ExcavationVolume: in.ExcavationVolume,
		ConcreteVolume:   in.ConcreteVolume,
		BackfillVolume:   in.BackfillVolume,
		SteelWeight:      in.SteelWeight,
	})
	if err != nil {
		return FoundationOutput{}, err
	}
	return foundationOutput(f), nil
}

func (s Service) GetFoundation(ctx context.Context, id string) (FoundationOutput, error) {
	f, err := s.Stores.Foundations.GetFoundation(ctx, id)
	if err != nil {
		return FoundationOutput{}, err
	}
	return foundationOutput(f), nil
}

func (s Service) ListFoundations(ctx context.Context, q domain.PageQuery) (ListOutput[FoundationOutput], error) {
	page, err := s.Stores.Foundations.ListFoundations(ctx, s.normalize(q))
	if err != nil {
		return ListOutput[FoundationOutput]{}, err
	}
	return mapPage(page, foundationOutput), nil
}

func (s Service) UpdateFoundation(ctx context.Context, id string, p domain.FoundationPatch) (FoundationOutput, error) {
	f, err := s.Stores.Foundations.UpdateFoundation(ctx, id, p)
	if err != nil {
		return FoundationOutput{}, err
	}
	return foundationOutput(f), nil
}

func (s Service) DeleteFoundation(ctx context.Context, id string) error {
	return s.Stores.Foundations.DeleteFoundation(ctx, id)
}
