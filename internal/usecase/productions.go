package usecase

import (
	"context"

	"gridworks/internal/domain"
)

// CreateProductionInput carries the writable fields of a production. Status
// falls back to PLANNED; TaskID and WorkID are required strong references;
// team and tower ids are validated for existence and uniqueness within their
// arrays.
type CreateProductionInput struct {
	Status    domain.ProductionStatus
	Comments  *string
	StartTime *string
	FinalTime *string
	TaskID    string
	WorkID    string
	TeamIDs   []string
	TowerIDs  []string
}

func (s Service) CreateProduction(ctx context.Context, in CreateProductionInput) (ProductionOutput, error) {
	status := in.Status
	if status == "" {
		status = domain.DefaultProductionStatus
	}
	if !status.Valid() {
		return ProductionOutput{}, domain.ValidationError{Field: "status", Detail: "unknown value " + string(status)}
	}
	if err := checkRef(ctx, "task", in.TaskID, s.taskExists); err != nil {
		return ProductionOutput{}, err
	}
	if err := checkRef(ctx, "work", in.WorkID, s.workExists); err != nil {
		return ProductionOutput{}, err
	}
	if err := checkRefs(ctx, "production", "team", in.TeamIDs, s.teamExists); err != nil {
		return ProductionOutput{}, err
	}
	if err := checkRefs(ctx, "production", "tower", in.TowerIDs, s.towerExists); err != nil {
		return ProductionOutput{}, err
	}
	p, err := s.Stores.Productions.InsertProduction(ctx, domain.Production{
		Status:    status,
		Comments:  in.Comments,
		StartTime: in.StartTime,
		FinalTime: in.FinalTime,
		TaskID:    in.TaskID,
		WorkID:    in.WorkID,
		TeamIDs:   in.TeamIDs,
		TowerIDs:  in.TowerIDs,
	})
	if err != nil {
		return ProductionOutput{}, err
	}
	return productionOutput(p), nil
}

func (s Service) GetProduction(ctx context.Context, id string) (ProductionOutput, error) {
	p, err := s.Stores.Productions.GetProduction(ctx, id)
	if err != nil {
		return ProductionOutput{}, err
	}
	return productionOutput(p), nil
}

func (s Service) ListProductions(ctx context.Context, q domain.PageQuery) (ListOutput[ProductionOutput], error) {
	page, err := s.Stores.Productions.ListProductions(ctx, s.normalize(q))
	if err != nil {
		return ListOutput[ProductionOutput]{}, err
	}
	return mapPage(page, productionOutput), nil
}

func (s Service) UpdateProduction(ctx context.Context, id string, p domain.ProductionPatch) (ProductionOutput, error) {
	if p.Status != nil && !p.Status.Valid() {
		return ProductionOutput{}, domain.ValidationError{Field: "status", Detail: "unknown value " + string(*p.Status)}
	}
	if p.TaskID != nil {
		if err := checkRef(ctx, "task", *p.TaskID, s.taskExists); err != nil {
			return ProductionOutput{}, err
		}
	}
	if p.WorkID != nil {
		if err := checkRef(ctx, "work", *p.WorkID, s.workExists); err != nil {
			return ProductionOutput{}, err
		}
	}
	if p.TeamIDs != nil {
		if err := checkRefs(ctx, "production", "team", p.TeamIDs, s.teamExists); err != nil {
			return ProductionOutput{}, err
		}
	}
	if p.TowerIDs != nil {
		if err := checkRefs(ctx, "production", "tower", p.TowerIDs, s.towerExists); err != nil {
			return ProductionOutput{}, err
		}
	}
	out, err := s.Stores.Productions.UpdateProduction(ctx, id, p)
	if err != nil {
		return ProductionOutput{}, err
	}
	return productionOutput(out), nil
}

func (s Service) DeleteProduction(ctx context.Context, id string) error {
	return s.Stores.Productions.DeleteProduction(ctx, id)
}
