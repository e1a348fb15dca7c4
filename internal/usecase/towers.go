package usecase

import (
	"context"

	"gridworks/internal/domain"
)

// CreateTowerInput carries the writable fields of a tower. WorkID is a
// required strong reference.
type CreateTowerInput struct {
	Code           int
	TowerNumber    string
	Type           string
	Latitude       float64
	Longitude      float64
	Height         *float64
	Weight         *float64
	FoundationDate *string
	ErectionDate   *string
	TensioningDate *string
	Observations   *string
	Hidden         bool
	WorkID         string
}

func (s Service) CreateTower(ctx context.Context, in CreateTowerInput) (TowerOutput, error) {
	if err := checkRef(ctx, "work", in.WorkID, s.workExists); err != nil {
		return TowerOutput{}, err
	}
	t, err := s.Stores.Towers.InsertTower(ctx, domain.Tower{
		Code:           in.Code,
		TowerNumber:    in.TowerNumber,
		Type:           in.Type,
		Latitude:       in.Latitude,
		Longitude:      in.Longitude,
		Height:         in.Height,
		Weight:         in.Weight,
		FoundationDate: in.FoundationDate,
		ErectionDate:   in.ErectionDate,
		TensioningDate: in.TensioningDate,
		Observations:   in.Observations,
		Hidden:         in.Hidden,
		WorkID:         in.WorkID,
	})
	if err != nil {
		return TowerOutput{}, err
	}
	return s.composeTower(ctx, t)
}

func (s Service) GetTower(ctx context.Context, id string) (TowerOutput, error) {
	t, err := s.Stores.Towers.GetTower(ctx, id)
	if err != nil {
		return TowerOutput{}, err
	}
	return s.composeTower(ctx, t)
}

func (s Service) ListTowers(ctx context.Context, q domain.PageQuery) (ListOutput[TowerOutput], error) {
	page, err := s.Stores.Towers.ListTowers(ctx, s.normalize(q))
	if err != nil {
		return ListOutput[TowerOutput]{}, err
	}
	return s.composeTowers(ctx, page)
}

func (s Service) UpdateTower(ctx context.Context, id string, p domain.TowerPatch) (TowerOutput, error) {
	if p.WorkID != nil {
		if err := checkRef(ctx, "work", *p.WorkID, s.workExists); err != nil {
			return TowerOutput{}, err
		}
	}
	t, err := s.Stores.Towers.UpdateTower(ctx, id, p)
	if err != nil {
		return TowerOutput{}, err
	}
	return s.composeTower(ctx, t)
}

// DeleteTower removes the tower and cascades over its foundations.
func (s Service) DeleteTower(ctx context.Context, id string) error {
	return s.Stores.Towers.DeleteTower(ctx, id)
}
