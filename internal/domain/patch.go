package domain

// Patch types describe partial updates as consumed by every store's Update.
// A nil field is untouched. Optional string fields pointing at the empty
// string are cleared to null; nil id slices leave relations alone while
// empty ones clear them.

type EmployeePatch struct {
	Registration *string
	FullName     *string
	Occupation   *string
	Leadership   *bool
	Status       *EmployeeStatus
	TeamID       *string
}

type EquipmentPatch struct {
	Registration *string
	Model        *string
	Manufacturer *string
	LicensePlate *string
	Provider     *string
	Status       *EquipmentStatus
	TeamID       *string
}

type TeamPatch struct {
	Name         *string
	EmployeeIDs  []string
	EquipmentIDs []string
}

type FoundationPatch struct {
	Project          *string
	Revision         *string
	Description      *string
	ExcavationVolume *float64
	ConcreteVolume   *float64
	BackfillVolume   *float64
	SteelWeight      *float64
}

type TowerPatch struct {
	Code           *int
	TowerNumber    *string
	Type           *string
	Latitude       *float64
	Longitude      *float64
	Height         *float64
	Weight         *float64
	FoundationDate *string
	ErectionDate   *string
	TensioningDate *string
	Observations   *string
	Hidden         *bool
	WorkID         *string
}

type TaskPatch struct {
	Code   *int
	Stage  *string
	Group  *string
	Name   *string
	Unit   *string
	WorkID *string
}

type ProductionPatch struct {
	Status    *ProductionStatus
	Comments  *string
	StartTime *string
	FinalTime *string
	TaskID    *string
	WorkID    *string
	TeamIDs   []string
	TowerIDs  []string
}

type WorkPatch struct {
	Name      *string
	Tension   *string
	Extension *string
	StartDate *string
	EndDate   *string
}

type UserPatch struct {
	Name         *string
	Email        *string
	PasswordHash *string
}
