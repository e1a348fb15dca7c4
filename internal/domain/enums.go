package domain

// EmployeeStatus is the closed status set for employees.
type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "ACTIVE"
	EmployeeOnLeave  EmployeeStatus = "ON_LEAVE"
	EmployeeInactive EmployeeStatus = "INACTIVE"
)

// DefaultEmployeeStatus applies when a write leaves the status unset.
const DefaultEmployeeStatus = EmployeeActive

func (s EmployeeStatus) Valid() bool {
	switch s {
	case EmployeeActive, EmployeeOnLeave, EmployeeInactive:
		return true
	}
	return false
}

// EquipmentStatus is the closed status set for equipment.
type EquipmentStatus string

const (
	EquipmentActive      EquipmentStatus = "ACTIVE"
	EquipmentMaintenance EquipmentStatus = "MAINTENANCE"
	EquipmentInactive    EquipmentStatus = "INACTIVE"
)

// DefaultEquipmentStatus applies when a write leaves the status unset.
const DefaultEquipmentStatus = EquipmentActive

func (s EquipmentStatus) Valid() bool {
	switch s {
	case EquipmentActive, EquipmentMaintenance, EquipmentInactive:
		return true
	}
	return false
}

// ProductionStatus is the closed status set for productions.
type ProductionStatus string

const (
	ProductionPlanned    ProductionStatus = "PLANNED"
	ProductionInProgress ProductionStatus = "IN_PROGRESS"
	ProductionExecuted   ProductionStatus = "EXECUTED"
)

// DefaultProductionStatus applies when a write leaves the status unset.
const DefaultProductionStatus = ProductionPlanned

func (s ProductionStatus) Valid() bool {
	switch s {
	case ProductionPlanned, ProductionInProgress, ProductionExecuted:
		return true
	}
	return false
}
