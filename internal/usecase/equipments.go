package usecase

import (
	"context"

	"gridworks/internal/domain"
)

// CreateEquipmentInput carries the writable fields of an equipment. Status
// falls back to ACTIVE when empty.
type CreateEquipmentInput struct {
	Registration string
	Model        string
	Manufacturer string
	LicensePlate string
	Provider     string
	Status       domain.EquipmentStatus
	TeamID       *string
}

func (s Service) CreateEquipment(ctx context.Context, in CreateEquipmentInput) (EquipmentOutput, error) {
	status := in.Status
	if status == "" {
		status = domain.DefaultEquipmentStatus
	}
	if !status.Valid() {
		return EquipmentOutput{}, domain.ValidationError{Field: "status", Detail: "unknown value " + string(status)}
	}
	if in.TeamID != nil {
		if err := checkRef(ctx, "team", *in.TeamID, s.teamExists); err != nil {
			return EquipmentOutput{}, err
		}
	}
	e, err := s.Stores.Equipments.InsertEquipment(ctx, domain.Equipment{
		Registration: in.Registration,
		Model:        in.Model,
		Manufacturer: in.Manufacturer,
		LicensePlate: in.LicensePlate,
		Provider:     in.Provider,
		Status:       status,
		TeamID:       in.TeamID,
	})
	if err != nil {
		return EquipmentOutput{}, err
	}
	return equipmentOutput(e), nil
}

func (s Service) GetEquipment(ctx context.Context, id string) (EquipmentOutput, error) {
	e, err := s.Stores.Equipments.GetEquipment(ctx, id)
	if err != nil {
		return EquipmentOutput{}, err
	}
	return equipmentOutput(e), nil
}

func (s Service) ListEquipments(ctx context.Context, q domain.PageQuery) (ListOutput[EquipmentOutput], error) {
	page, err := s.Stores.Equipments.ListEquipments(ctx, s.normalize(q))
	if err != nil {
		return ListOutput[EquipmentOutput]{}, err
	}
	return mapPage(page, equipmentOutput), nil
}

func (s Service) UpdateEquipment(ctx context.Context, id string, p domain.EquipmentPatch) (EquipmentOutput, error) {
	if p.Status != nil && !p.Status.Valid() {
		return EquipmentOutput{}, domain.ValidationError{Field: "status", Detail: "unknown value " + string(*p.Status)}
	}
	if p.TeamID != nil && *p.TeamID != "" {
		if err := checkRef(ctx, "team", *p.TeamID, s.teamExists); err != nil {
			return EquipmentOutput{}, err
		}
	}
	e, err := s.Stores.Equipments.UpdateEquipment(ctx, id, p)
	if err != nil {
		return EquipmentOutput{}, err
	}
	return equipmentOutput(e), nil
}

func (s Service) DeleteEquipment(ctx context.Context, id string) error {
	return s.Stores.Equipments.DeleteEquipment(ctx, id)
}
