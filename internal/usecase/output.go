package usecase

import "gridworks/internal/domain"

// Output shapes returned to every caller (HTTP, CLI, SDK). Field order is
// fixed per resource, optional scalars stay pointers so absent values render
// as explicit JSON nulls, and relation-bearing slices are never nil.

type EmployeeOutput struct {
	ID           string  `json:"id"`
	Registration string  `json:"registration"`
	FullName     string  `json:"full_name"`
	Occupation   string  `json:"occupation"`
	Leadership   bool    `json:"leadership"`
	Status       string  `json:"status"`
	TeamID       *string `json:"team_id"`
	CreatedAt    string  `json:"created_at"`
}

type EquipmentOutput struct {
	ID           string  `json:"id"`
	Registration string  `json:"registration"`
	Model        string  `json:"model"`
	Manufacturer string  `json:"manufacturer"`
	LicensePlate string  `json:"license_plate"`
	Provider     string  `json:"provider"`
	Status       string  `json:"status"`
	TeamID       *string `json:"team_id"`
	CreatedAt    string  `json:"created_at"`
}

type TeamOutput struct {
	ID         string                    `json:"id"`
	Name       string                    `json:"name"`
	Employees  []domain.EmployeeSummary  `json:"employees"`
	Equipments []domain.EquipmentSummary `json:"equipments"`
	CreatedAt  string                    `json:"created_at"`
}

type FoundationOutput struct {
	ID               string   `json:"id"`
	TowerID          string   `json:"tower_id"`
	Project          string   `json:"project"`
	Revision         string   `json:"revision"`
	Description      string   `json:"description"`
	ExcavationVolume *float64 `json:"excavation_volume"`
	ConcreteVolume   *float64 `json:"concrete_volume"`
	BackfillVolume   *float64 `json:"backfill_volume"`
	SteelWeight      *float64 `json:"steel_weight"`
	CreatedAt        string   `json:"created_at"`
}

type TowerOutput struct {
	ID             string             `json:"id"`
	Code           int                `json:"code"`
	TowerNumber    string             `json:"tower_number"`
	Type           string             `json:"type"`
	Latitude       float64            `json:"latitude"`
	Longitude      float64            `json:"longitude"`
	Height         *float64           `json:"height"`
	Weight         *float64           `json:"weight"`
	FoundationDate *string            `json:"foundation_date"`
	ErectionDate   *string            `json:"erection_date"`
	TensioningDate *string            `json:"tensioning_date"`
	Observations   *string            `json:"observations"`
	Hidden         bool               `json:"hidden"`
	WorkID         string             `json:"work_id"`
	Foundations    []FoundationOutput `json:"foundations"`
	CreatedAt      string             `json:"created_at"`
}

type TaskOutput struct {
	ID        string `json:"id"`
	Code      int    `json:"code"`
	Stage     string `json:"stage"`
	Group     string `json:"group"`
	Name      string `json:"name"`
	Unit      string `json:"unit"`
	WorkID    string `json:"work_id"`
	CreatedAt string `json:"created_at"`
}

type ProductionOutput struct {
	ID        string   `json:"id"`
	Status    string   `json:"status"`
	Comments  *string  `json:"comments"`
	StartTime *string  `json:"start_time"`
	FinalTime *string  `json:"final_time"`
	TaskID    string   `json:"task_id"`
	WorkID    string   `json:"work_id"`
	Teams     []string `json:"teams"`
	Towers    []string `json:"towers"`
	CreatedAt string   `json:"created_at"`
}

type WorkOutput struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Tension   *string `json:"tension"`
	Extension *string `json:"extension"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	CreatedAt string  `json:"created_at"`
}

type UserOutput struct {
	ID        string  `json:"id"`
	Name      *string `json:"name"`
	Email     string  `json:"email"`
	CreatedAt string  `json:"created_at"`
}

// ListOutput is the uniform page envelope: the filter-wide total plus the
// items of the requested page.
type ListOutput[T any] struct {
	Total int `json:"total"`
	Items []T `json:"items"`
}

func employeeOutput(e domain.Employee) EmployeeOutput {
	return EmployeeOutput{
		ID:           e.ID,
		Registration: e.Registration,
		FullName:     e.FullName,
		Occupation:   e.Occupation,
		Leadership:   e.Leadership,
		Status:       string(e.Status),
		TeamID:       e.TeamID,
		CreatedAt:    e.CreatedAt,
	}
}

func equipmentOutput(e domain.Equipment) EquipmentOutput {
	return EquipmentOutput{
		ID:           e.ID,
		Registration: e.Registration,
		Model:        e.Model,
		Manufacturer: e.Manufacturer,
		LicensePlate: e.LicensePlate,
		Provider:     e.Provider,
		Status:       string(e.Status),
		TeamID:       e.TeamID,
		CreatedAt:    e.CreatedAt,
	}
}

func foundationOutput(f domain.Foundation) FoundationOutput {
	return FoundationOutput{
		ID:               f.ID,
		TowerID:          f.TowerID,
		Project:          f.Project,
		Revision:         f.Revision,
		Description:      f.Description,
		ExcavationVolume: f.ExcavationVolume,
		ConcreteVolume:   f.ConcreteVolume,
		BackfillVolume:   f.BackfillVolume,
		SteelWeight:      f.SteelWeight,
		CreatedAt:        f.CreatedAt,
	}
}

func taskOutput(t domain.Task) TaskOutput {
	return TaskOutput{
		ID:        t.ID,
		Code:      t.Code,
		Stage:     t.Stage,
		Group:     t.Group,
		Name:      t.Name,
		Unit:      t.Unit,
		WorkID:    t.WorkID,
		CreatedAt: t.CreatedAt,
	}
}

func productionOutput(p domain.Production) ProductionOutput {
	return ProductionOutput{
		ID:        p.ID,
		Status:    string(p.Status),
		Comments:  p.Comments,
		StartTime: p.StartTime,
		FinalTime: p.FinalTime,
		TaskID:    p.TaskID,
		WorkID:    p.WorkID,
		Teams:     nonNilSlice(p.TeamIDs),
		Towers:    nonNilSlice(p.TowerIDs),
		CreatedAt: p.CreatedAt,
	}
}

func workOutput(w domain.Work) WorkOutput {
	return WorkOutput{
		ID:        w.ID,
		Name:      w.Name,
		Tension:   w.Tension,
		Extension: w.Extension,
		StartDate: w.StartDate,
		EndDate:   w.EndDate,
		CreatedAt: w.CreatedAt,
	}
}

func userOutput(u domain.User) UserOutput {
	return UserOutput{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// nonNilSlice keeps relation arrays serializing as [] instead of null.
func nonNilSlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func mapPage[S, T any](p domain.Page[S], f func(S) T) ListOutput[T] {
	items := make([]T, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, f(it))
	}
	return ListOutput[T]{Total: p.Total, Items: items}
}
