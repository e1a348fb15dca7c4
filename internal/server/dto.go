package server

import (
	"gridworks/internal/domain"
	"gridworks/internal/usecase"
)

// Request DTOs. Create requests mark required fields through the schema;
// update requests are all-optional patches where an omitted field leaves the
// value untouched and an empty string clears an optional field.

func enumPtr[T ~string](p *string) *T {
	if p == nil {
		return nil
	}
	v := T(*p)
	return &v
}

type createEmployeeRequest struct {
	Registration string  `json:"registration" minLength:"1"`
	FullName     string  `json:"full_name" minLength:"1"`
	Occupation   string  `json:"occupation" minLength:"1"`
	Leadership   bool    `json:"leadership,omitempty"`
	Status       string  `json:"status,omitempty" enum:"ACTIVE,ON_LEAVE,INACTIVE"`
	TeamID       *string `json:"team_id,omitempty"`
}

func (r createEmployeeRequest) input() usecase.CreateEmployeeInput {
	return usecase.CreateEmployeeInput{
		Registration: r.Registration,
		FullName:     r.FullName,
		Occupation:   r.Occupation,
		Leadership:   r.Leadership,
		Status:       domain.EmployeeStatus(r.Status),
		TeamID:       r.TeamID,
	}
}

type updateEmployeeRequest struct {
	Registration *string `json:"registration,omitempty"`
	FullName     *string `json:"full_name,omitempty"`
	Occupation   *string `json:"occupation,omitempty"`
	Leadership   *bool   `json:"leadership,omitempty"`
	Status       *string `json:"status,omitempty" enum:"ACTIVE,ON_LEAVE,INACTIVE"`
	TeamID       *string `json:"team_id,omitempty"`
}

func (r updateEmployeeRequest) patch() domain.EmployeePatch {
	return domain.EmployeePatch{
		Registration: r.Registration,
		FullName:     r.FullName,
		Occupation:   r.Occupation,
		Leadership:   r.Leadership,
		Status:       enumPtr[domain.EmployeeStatus](r.Status),
		TeamID:       r.TeamID,
	}
}

type createEquipmentRequest struct {
	Registration string  `json:"registration" minLength:"1"`
	Model        string  `json:"model" minLength:"1"`
	Manufacturer string  `json:"manufacturer,omitempty"`
	LicensePlate string  `json:"license_plate,omitempty"`
	Provider     string  `json:"provider,omitempty"`
	Status       string  `json:"status,omitempty" enum:"ACTIVE,MAINTENANCE,INACTIVE"`
	TeamID       *string `json:"team_id,omitempty"`
}

func (r createEquipmentRequest) input() usecase.CreateEquipmentInput {
	return usecase.CreateEquipmentInput{
		Registration: r.Registration,
		Model:        r.Model,
		Manufacturer: r.Manufacturer,
		LicensePlate: r.LicensePlate,
		Provider:     r.Provider,
		Status:       domain.EquipmentStatus(r.Status),
		TeamID:       r.TeamID,
	}
}

type updateEquipmentRequest struct {
	Registration *string `json:"registration,omitempty"`
	Model        *string `json:"model,omitempty"`
	Manufacturer *string `json:"manufacturer,omitempty"`
	LicensePlate *string `json:"license_plate,omitempty"`
	Provider     *string `json:"provider,omitempty"`
	Status       *string `json:"status,omitempty" enum:"ACTIVE,MAINTENANCE,INACTIVE"`
	TeamID       *string `json:"team_id,omitempty"`
}

func (r updateEquipmentRequest) patch() domain.EquipmentPatch {
	return domain.EquipmentPatch{
		Registration: r.Registration,
		Model:        r.Model,
		Manufacturer: r.Manufacturer,
		LicensePlate: r.LicensePlate,
		Provider:     r.Provider,
		Status:       enumPtr[domain.EquipmentStatus](r.Status),
		TeamID:       r.TeamID,
	}
}

type createTeamRequest struct {
	Name       string   `json:"name" minLength:"1"`
	Employees  []string `json:"employees,omitempty"`
	Equipments []string `json:"equipments,omitempty"`
}

func (r createTeamRequest) input() usecase.CreateTeamInput {
	return usecase.CreateTeamInput{
		Name:         r.Name,
		EmployeeIDs:  r.Employees,
		EquipmentIDs: r.Equipments,
	}
}

type updateTeamRequest struct {
	Name       *string  `json:"name,omitempty"`
	Employees  []string `json:"employees,omitempty"`
	Equipments []string `json:"equipments,omitempty"`
}

func (r updateTeamRequest) patch() domain.TeamPatch {
	return domain.TeamPatch{
		Name:         r.Name,
		EmployeeIDs:  r.Employees,
		EquipmentIDs: r.Equipments,
	}
}

type createWorkRequest struct {
	Name      string  `json:"name" minLength:"1"`
	Tension   *string `json:"tension,omitempty"`
	Extension *string `json:"extension,omitempty"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
}

func (r createWorkRequest) input() usecase.CreateWorkInput {
	return usecase.CreateWorkInput{
		Name:      r.Name,
		Tension:   r.Tension,
		Extension: r.Extension,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}
}

type updateWorkRequest struct {
	Name      *string `json:"name,omitempty"`
	Tension   *string `json:"tension,omitempty"`
	Extension *string `json:"extension,omitempty"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
}

func (r updateWorkRequest) patch() domain.WorkPatch {
	return domain.WorkPatch{
		Name:      r.Name,
		Tension:   r.Tension,
		Extension: r.Extension,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}
}

type createTowerRequest struct {
	Code           int      `json:"code"`
	TowerNumber    string   `json:"tower_number" minLength:"1"`
	Type           string   `json:"type,omitempty"`
	Latitude       float64  `json:"latitude"`
	Longitude      float64  `json:"longitude"`
	Height         *float64 `json:"height,omitempty"`
	Weight         *float64 `json:"weight,omitempty"`
	FoundationDate *string  `json:"foundation_date,omitempty"`
	ErectionDate   *string  `json:"erection_date,omitempty"`
	TensioningDate *string  `json:"tensioning_date,omitempty"`
	Observations   *string  `json:"observations,omitempty"`
	Hidden         bool     `json:"hidden,omitempty"`
	WorkID         string   `json:"work_id" minLength:"1"`
}

func (r createTowerRequest) input() usecase.CreateTowerInput {
	return usecase.CreateTowerInput{
		Code:           r.Code,
		TowerNumber:    r.TowerNumber,
		Type:           r.Type,
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
		Height:         r.Height,
		Weight:         r.Weight,
		FoundationDate: r.FoundationDate,
		ErectionDate:   r.ErectionDate,
		TensioningDate: r.TensioningDate,
		Observations:   r.Observations,
		Hidden:         r.Hidden,
		WorkID:         r.WorkID,
	}
}

type updateTowerRequest struct {
	Code           *int     `json:"code,omitempty"`
	TowerNumber    *string  `json:"tower_number,omitempty"`
	Type           *string  `json:"type,omitempty"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	Height         *float64 `json:"height,omitempty"`
	Weight         *float64 `json:"weight,omitempty"`
	FoundationDate *string  `json:"foundation_date,omitempty"`
	ErectionDate   *string  `json:"erection_date,omitempty"`
	TensioningDate *string  `json:"tensioning_date,omitempty"`
	Observations   *string  `json:"observations,omitempty"`
	Hidden         *bool    `json:"hidden,omitempty"`
	WorkID         *string  `json:"work_id,omitempty"`
}

func (r updateTowerRequest) patch() domain.TowerPatch {
	return domain.TowerPatch{
		Code:           r.Code,
		TowerNumber:    r.TowerNumber,
		Type:           r.Type,
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
		Height:         r.Height,
		Weight:         r.Weight,
		FoundationDate: r.FoundationDate,
		ErectionDate:   r.ErectionDate,
		TensioningDate: r.TensioningDate,
		Observations:   r.Observations,
		Hidden:         r.Hidden,
		WorkID:         r.WorkID,
	}
}

type createFoundationRequest struct {
	TowerID          string   `json:"tower_id" minLength:"1"`
	Project          string   `json:"project,omitempty"`
	Revision         string   `json:"revision,omitempty"`
	Description      string   `json:"description,omitempty"`
	ExcavationVolume *float64 `json:"excavation_volume,omitempty"`
	ConcreteVolume   *float64 `json:"concrete_volume,omitempty"`
	BackfillVolume   *float64 `json:"backfill_volume,omitempty"`
	SteelWeight      *float64 `json:"steel_weight,omitempty"`
}

func (r createFoundationRequest) input() usecase.CreateFoundationInput {
	return usecase.CreateFoundationInput{
		TowerID:          r.TowerID,
		Project:          r.Project,
		Revision:         r.Revision,
		Description:      r.Description,
		ExcavationVolume: r.ExcavationVolume,
		ConcreteVolume:   r.ConcreteVolume,
		BackfillVolume:   r.BackfillVolume,
		SteelWeight:      r.SteelWeight,
	}
}

type updateFoundationRequest struct {
	Project          *string  `json:"project,omitempty"`
	Revision         *string  `json:"revision,omitempty"`
	Description      *string  `json:"description,omitempty"`
	ExcavationVolume *float64 `json:"excavation_volume,omitempty"`
	ConcreteVolume   *float64 `json:"concrete_volume,omitempty"`
	BackfillVolume   *float64 `json:"backfill_volume,omitempty"`
	SteelWeight      *float64 `json:"steel_weight,omitempty"`
}

func (r updateFoundationRequest) patch() domain.FoundationPatch {
	return domain.FoundationPatch{
		Project:          r.Project,
		Revision:         r.Revision,
		Description:      r.Description,
		ExcavationVolume: r.ExcavationVolume,
		ConcreteVolume:   r.ConcreteVolume,
		BackfillVolume:   r.BackfillVolume,
		SteelWeight:      r.SteelWeight,
	}
}

type createTaskRequest struct {
	Code   int    `json:"code"`
	Stage  string `json:"stage,omitempty"`
	Group  string `json:"group,omitempty"`
	Name   string `json:"name" minLength:"1"`
	Unit   string `json:"unit,omitempty"`
	WorkID string `json:"work_id" minLength:"1"`
}

func (r createTaskRequest) input() usecase.CreateTaskInput {
	return usecase.CreateTaskInput{
		Code:   r.Code,
		Stage:  r.Stage,
		Group:  r.Group,
		Name:   r.Name,
		Unit:   r.Unit,
		WorkID: r.WorkID,
	}
}

type updateTaskRequest struct {
	Code   *int    `json:"code,omitempty"`
	Stage  *string `json:"stage,omitempty"`
	Group  *string `json:"group,omitempty"`
	Name   *string `json:"name,omitempty"`
	Unit   *string `json:"unit,omitempty"`
	WorkID *string `json:"work_id,omitempty"`
}

func (r updateTaskRequest) patch() domain.TaskPatch {
	return domain.TaskPatch{
		Code:   r.Code,
		Stage:  r.Stage,
		Group:  r.Group,
		Name:   r.Name,
		Unit:   r.Unit,
		WorkID: r.WorkID,
	}
}

type createProductionRequest struct {
	Status    string   `json:"status,omitempty" enum:"PLANNED,IN_PROGRESS,EXECUTED"`
	Comments  *string  `json:"comments,omitempty"`
	StartTime *string  `json:"start_time,omitempty"`
	FinalTime *string  `json:"final_time,omitempty"`
	TaskID    string   `json:"task_id" minLength:"1"`
	WorkID    string   `json:"work_id" minLength:"1"`
	Teams     []string `json:"teams,omitempty"`
	Towers    []string `json:"towers,omitempty"`
}

func (r createProductionRequest) input() usecase.CreateProductionInput {
	return usecase.CreateProductionInput{
		Status:    domain.ProductionStatus(r.Status),
		Comments:  r.Comments,
		StartTime: r.StartTime,
		FinalTime: r.FinalTime,
		TaskID:    r.TaskID,
		WorkID:    r.WorkID,
		TeamIDs:   r.Teams,
		TowerIDs:  r.Towers,
	}
}

type updateProductionRequest struct {
	Status    *string  `json:"status,omitempty" enum:"PLANNED,IN_PROGRESS,EXECUTED"`
	Comments  *string  `json:"comments,omitempty"`
	StartTime *string  `json:"start_time,omitempty"`
	FinalTime *string  `json:"final_time,omitempty"`
	TaskID    *string  `json:"task_id,omitempty"`
	WorkID    *string  `json:"work_id,omitempty"`
	Teams     []string `json:"teams,omitempty"`
	Towers    []string `json:"towers,omitempty"`
}

func (r updateProductionRequest) patch() domain.ProductionPatch {
	return domain.ProductionPatch{
		Status:    enumPtr[domain.ProductionStatus](r.Status),
		Comments:  r.Comments,
		StartTime: r.StartTime,
		FinalTime: r.FinalTime,
		TaskID:    r.TaskID,
		WorkID:    r.WorkID,
		TeamIDs:   r.Teams,
		TowerIDs:  r.Towers,
	}
}

type createUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    string  `json:"email" format:"email"`
	Password string  `json:"password" minLength:"6"`
}

func (r createUserRequest) input() usecase.CreateUserInput {
	return usecase.CreateUserInput{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
}

type updateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty" format:"email"`
	Password *string `json:"password,omitempty" minLength:"6"`
}

func (r updateUserRequest) input() usecase.UpdateUserInput {
	return usecase.UpdateUserInput{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
}
