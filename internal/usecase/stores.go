// Package usecase holds the stateless orchestration layer: one operation per
// verb per resource, composing the entity stores with relation expansion and
// output mapping. All state lives behind the store contracts.
package usecase

import (
	"context"

	"gridworks/internal/domain"
)

// Store contracts consumed by the use cases. The production implementation
// is repo.Repo; tests run against the in-memory fake. List always receives a
// normalized PageInput and returns the filter-wide total next to the page.

type EmployeeStore interface {
	InsertEmployee(ctx context.Context, e domain.Employee) (domain.Employee, error)
	GetEmployee(ctx context.Context, id string) (domain.Employee, error)
	ListEmployees(ctx context.Context, in domain.PageInput) (domain.Page[domain.Employee], error)
	UpdateEmployee(ctx context.Context, id string, p domain.EmployeePatch) (domain.Employee, error)
	DeleteEmployee(ctx context.Context, id string) error
}

type EquipmentStore interface {
	InsertEquipment(ctx context.Context, e domain.Equipment) (domain.Equipment, error)
	GetEquipment(ctx context.Context, id string) (domain.Equipment, error)
	ListEquipments(ctx context.Context, in domain.PageInput) (domain.Page[domain.Equipment], error)
	UpdateEquipment(ctx context.Context, id string, p domain.EquipmentPatch) (domain.Equipment, error)
	DeleteEquipment(ctx context.Context, id string) error
}

type TeamStore interface {
	InsertTeam(ctx context.Context, name string, employeeIDs, equipmentIDs []string) (domain.Team, error)
	GetTeam(ctx context.Context, id string) (domain.Team, error)
	ListTeams(ctx context.Context, in domain.PageInput) (domain.Page[domain.Team], error)
	UpdateTeam(ctx context.Context, id string, p domain.TeamPatch) (domain.Team, error)
	DeleteTeam(ctx context.Context, id string) error
	ListTeamEmployees(ctx context.Context, teamID string) ([]domain.Employee, error)
	ListTeamEquipments(ctx context.Context, teamID string) ([]domain.Equipment, error)
}

type FoundationStore interface {
	InsertFoundation(ctx context.Context, f domain.Foundation) (domain.Foundation, error)
	GetFoundation(ctx context.Context, id string) (domain.Foundation, error)
	ListFoundations(ctx context.Context, in domain.PageInput) (domain.Page[domain.Foundation], error)
	ListTowerFoundations(ctx context.Context, towerID string) ([]domain.Foundation, error)
	UpdateFoundation(ctx context.Context, id string, p domain.FoundationPatch) (domain.Foundation, error)
	DeleteFoundation(ctx context.Context, id string) error
}

type TowerStore interface {
	InsertTower(ctx context.Context, t domain.Tower) (domain.Tower, error)
	GetTower(ctx context.Context, id string) (domain.Tower, error)
	ListTowers(ctx context.Context, in domain.PageInput) (domain.Page[domain.Tower], error)
	UpdateTower(ctx context.Context, id string, p domain.TowerPatch) (domain.Tower, error)
	DeleteTower(ctx context.Context, id string) error
}

type TaskStore interface {
	InsertTask(ctx context.Context, t domain.Task) (domain.Task, error)
	GetTask(ctx context.Context, id string) (domain.Task, error)
	ListTasks(ctx context.Context, in domain.PageInput) (domain.Page[domain.Task], error)
	UpdateTask(ctx context.Context, id string, p domain.TaskPatch) (domain.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

type ProductionStore interface {
	InsertProduction(ctx context.Context, p domain.Production) (domain.Production, error)
	GetProduction(ctx context.Context, id string) (domain.Production, error)
	ListProductions(ctx context.Context, in domain.PageInput) (domain.Page[domain.Production], error)
	UpdateProduction(ctx context.Context, id string, p domain.ProductionPatch) (domain.Production, error)
	DeleteProduction(ctx context.Context, id string) error
}

type WorkStore interface {
	InsertWork(ctx context.Context, w domain.Work) (domain.Work, error)
	GetWork(ctx context.Context, id string) (domain.Work, error)
	ListWorks(ctx context.Context, in domain.PageInput) (domain.Page[domain.Work], error)
	UpdateWork(ctx context.Context, id string, p domain.WorkPatch) (domain.Work, error)
	DeleteWork(ctx context.Context, id string) error
}

type UserStore interface {
	InsertUser(ctx context.Context, u domain.User) (domain.User, error)
	GetUser(ctx context.Context, id string) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
	ListUsers(ctx context.Context, in domain.PageInput) (domain.Page[domain.User], error)
	UpdateUser(ctx context.Context, id string, p domain.UserPatch) (domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// PasswordHasher is the one-way hashing collaborator for user writes and
// login checks.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Compare(hash, plaintext string) error
}

// Stores bundles the per-resource contracts a Service runs on.
type Stores struct {
	Employees   EmployeeStore
	Equipments  EquipmentStore
	Teams       TeamStore
	Foundations FoundationStore
	Towers      TowerStore
	Tasks       TaskStore
	Productions ProductionStore
	Works       WorkStore
	Users       UserStore
}
