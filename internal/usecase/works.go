package usecase

import (
	"context"

	"gridworks/internal/domain"
)

// CreateWorkInput carries the writable fields of a work. Every field but the
// name is optional.
type CreateWorkInput struct {
	Name      string
	Tension   *string
	Extension *string
	StartDate *string
	EndDate   *string
}

func (s Service) CreateWork(ctx context.Context, in CreateWorkInput) (WorkOutput, error) {
	w, err := s.Stores.Works.InsertWork(ctx, domain.Work{
		Name:      in.Name,
		Tension:   in.Tension,
		Extension: in.Extension,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
	})
	if err != nil {
		return WorkOutput{}, err
	}
	return workOutput(w), nil
}

func (s Service) GetWork(ctx context.Context, id string) (WorkOutput, error) {
	w, err := s.Stores.Works.GetWork(ctx, id)
	if err != nil {
		return WorkOutput{}, err
	}
	return workOutput(w), nil
}

func (s Service) ListWorks(ctx context.Context, q domain.PageQuery) (ListOutput[WorkOutput], error) {
	page, err := s.Stores.Works.ListWorks(ctx, s.normalize(q))
	if err != nil {
		return ListOutput[WorkOutput]{}, err
	}
	return mapPage(page, workOutput), nil
}

func (s Service) UpdateWork(ctx context.Context, id string, p domain.WorkPatch) (WorkOutput, error) {
	w, err := s.Stores.Works.UpdateWork(ctx, id, p)
	if err != nil {
		return WorkOutput{}, err
	}
	return workOutput(w), nil
}

func (s Service) DeleteWork(ctx context.Context, id string) error {
	return s.Stores.Works.DeleteWork(ctx, id)
}
