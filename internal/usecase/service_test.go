package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridworks/internal/domain"
)

type plainHasher struct{}

func (plainHasher) Hash(p string) (string, error) { return "hashed:" + p, nil }

func (plainHasher) Compare(hash, p string) error {
	if hash != "hashed:"+p {
		return errors.New("password mismatch")
	}
	return nil
}

func newTestService() (Service, *fakeStores) {
	f := newFakeStores()
	return Service{Stores: f.bundle(), Hasher: plainHasher{}}, f
}

func str(s string) *string { return &s }

func TestCreateEmployeeDefaultsStatus(t *testing.T) {
	s, _ := newTestService()

	out, err := s.CreateEmployee(context.Background(), CreateEmployeeInput{
		Registration: "E-100",
		FullName:     "Marta Lopes",
		Occupation:   "Rigger",
	})
	require.NoError(t, err)
	assert.Equal(t, "ACTIVE", out.Status)
	assert.NotEmpty(t, out.ID)
	assert.NotEmpty(t, out.CreatedAt)
	assert.Nil(t, out.TeamID)
}

func TestCreateEmployeeRejectsUnknownStatus(t *testing.T) {
	s, _ := newTestService()

	_, err := s.CreateEmployee(context.Background(), CreateEmployeeInput{
		Registration: "E-101",
		FullName:     "Nuno Faria",
		Occupation:   "Welder",
		Status:       domain.EmployeeStatus("RETIRED"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateEmployeeUnknownTeam(t *testing.T) {
	s, f := newTestService()

	_, err := s.CreateEmployee(context.Background(), CreateEmployeeInput{
		Registration: "E-102",
		FullName:     "Rui Costa",
		Occupation:   "Operator",
		TeamID:       str("no-such-team"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
	assert.Empty(t, f.employees)
}

func TestEmployeeRoundTrip(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	created, err := s.CreateEmployee(ctx, CreateEmployeeInput{
		Registration: "E-200",
		FullName:     "Joana Pires",
		Occupation:   "Surveyor",
		Leadership:   true,
		Status:       domain.EmployeeOnLeave,
	})
	require.NoError(t, err)

	got, err := s.GetEmployee(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestListEmployeesPaging(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		_, err := s.CreateEmployee(ctx, CreateEmployeeInput{
			Registration: fmt.Sprintf("E-%03d", i),
			FullName:     fmt.Sprintf("Worker %02d", i),
			Occupation:   "Lineman",
		})
		require.NoError(t, err)
	}

	out, err := s.ListEmployees(ctx, domain.PageQuery{Page: 3})
	require.NoError(t, err)
	assert.Equal(t, 25, out.Total)
	assert.Len(t, out.Items, 5)

	// Total tracks the filter, not the page window.
	filtered, err := s.ListEmployees(ctx, domain.PageQuery{Filter: "Worker 0", PerPage: 3})
	require.NoError(t, err)
	assert.Equal(t, 10, filtered.Total)
	assert.Len(t, filtered.Items, 3)
}

func TestListEmployeesHonorsConfiguredBounds(t *testing.T) {
	s, _ := newTestService()
	s.Paging = domain.PageBounds{PerPage: 4, MaxPerPage: 6}
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		_, err := s.CreateEmployee(ctx, CreateEmployeeInput{
			Registration: fmt.Sprintf("E-%03d", i),
			FullName:     fmt.Sprintf("Worker %02d", i),
			Occupation:   "Lineman",
		})
		require.NoError(t, err)
	}

	out, err := s.ListEmployees(ctx, domain.PageQuery{})
	require.NoError(t, err)
	assert.Equal(t, 10, out.Total)
	assert.Len(t, out.Items, 4)

	capped, err := s.ListEmployees(ctx, domain.PageQuery{PerPage: 50})
	require.NoError(t, err)
	assert.Len(t, capped.Items, 6)
}

func TestTeamExpansion(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	emp, err := s.CreateEmployee(ctx, CreateEmployeeInput{
		Registration: "E-300", FullName: "Tiago Melo", Occupation: "Foreman", Leadership: true,
	})
	require.NoError(t, err)
	eq, err := s.CreateEquipment(ctx, CreateEquipmentInput{
		Registration: "Q-300", Model: "D6", Manufacturer: "Caterpillar", LicensePlate: "AA-01-BB", Provider: "own",
	})
	require.NoError(t, err)

	team, err := s.CreateTeam(ctx, CreateTeamInput{
		Name:         "Erection North",
		EmployeeIDs:  []string{emp.ID},
		EquipmentIDs: []string{eq.ID},
	})
	require.NoError(t, err)

	require.Len(t, team.Employees, 1)
	assert.Equal(t, domain.EmployeeSummary{
		ID: emp.ID, Registration: "E-300", FullName: "Tiago Melo", Occupation: "Foreman",
	}, team.Employees[0])
	require.Len(t, team.Equipments, 1)
	assert.Equal(t, domain.EquipmentSummary{
		ID: eq.ID, Model: "D6", Manufacturer: "Caterpillar", LicensePlate: "AA-01-BB",
	}, team.Equipments[0])

	// Membership is reflected on the employee side too.
	gotEmp, err := s.GetEmployee(ctx, emp.ID)
	require.NoError(t, err)
	require.NotNil(t, gotEmp.TeamID)
	assert.Equal(t, team.ID, *gotEmp.TeamID)

	// An empty team renders empty arrays, never null.
	empty, err := s.CreateTeam(ctx, CreateTeamInput{Name: "Bench"})
	require.NoError(t, err)
	raw, err := json.Marshal(empty)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"employees":[]`)
	assert.Contains(t, string(raw), `"equipments":[]`)
}

func TestCreateTeamInvalidMemberWritesNothing(t *testing.T) {
	s, f := newTestService()
	ctx := context.Background()

	_, err := s.CreateTeam(ctx, CreateTeamInput{
		Name:        "Ghost crew",
		EmployeeIDs: []string{"missing-id"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
	assert.Empty(t, f.teams)
}

func TestCreateTeamDuplicateMember(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	emp, err := s.CreateEmployee(ctx, CreateEmployeeInput{
		Registration: "E-400", FullName: "Ana Reis", Occupation: "Electrician",
	})
	require.NoError(t, err)

	_, err = s.CreateTeam(ctx, CreateTeamInput{
		Name:        "Doubled",
		EmployeeIDs: []string{emp.ID, emp.ID},
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUpdateTeamReplacesMembership(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	a, err := s.CreateEmployee(ctx, CreateEmployeeInput{Registration: "E-500", FullName: "A", Occupation: "Lineman"})
	require.NoError(t, err)
	b, err := s.CreateEmployee(ctx, CreateEmployeeInput{Registration: "E-501", FullName: "B", Occupation: "Lineman"})
	require.NoError(t, err)

	team, err := s.CreateTeam(ctx, CreateTeamInput{Name: "Swap", EmployeeIDs: []string{a.ID}})
	require.NoError(t, err)

	// Name-only patch leaves membership alone.
	renamed, err := s.UpdateTeam(ctx, team.ID, domain.TeamPatch{Name: str("Swap 2")})
	require.NoError(t, err)
	assert.Equal(t, "Swap 2", renamed.Name)
	require.Len(t, renamed.Employees, 1)
	assert.Equal(t, a.ID, renamed.Employees[0].ID)

	// Supplying the array replaces it wholesale.
	swapped, err := s.UpdateTeam(ctx, team.ID, domain.TeamPatch{EmployeeIDs: []string{b.ID}})
	require.NoError(t, err)
	require.Len(t, swapped.Employees, 1)
	assert.Equal(t, b.ID, swapped.Employees[0].ID)

	// An empty array clears the membership.
	cleared, err := s.UpdateTeam(ctx, team.ID, domain.TeamPatch{EmployeeIDs: []string{}})
	require.NoError(t, err)
	assert.Empty(t, cleared.Employees)
}

func TestProductionReferenceRules(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	work, err := s.CreateWork(ctx, CreateWorkInput{Name: "LT 500kV"})
	require.NoError(t, err)
	task, err := s.CreateTask(ctx, CreateTaskInput{Code: 1, Stage: "civil", Group: "foundation", Name: "Excavation", Unit: "m3", WorkID: work.ID})
	require.NoError(t, err)
	team, err := s.CreateTeam(ctx, CreateTeamInput{Name: "Civil crew"})
	require.NoError(t, err)

	// Duplicate team ids in the array are a conflict.
	_, err = s.CreateProduction(ctx, CreateProductionInput{
		TaskID: task.ID, WorkID: work.ID, TeamIDs: []string{team.ID, team.ID},
	})
	assert.ErrorIs(t, err, domain.ErrConflict)

	// A tower id that does not resolve is an invalid reference.
	_, err = s.CreateProduction(ctx, CreateProductionInput{
		TaskID: task.ID, WorkID: work.ID, TowerIDs: []string{"missing-tower"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)

	prod, err := s.CreateProduction(ctx, CreateProductionInput{
		TaskID: task.ID, WorkID: work.ID, TeamIDs: []string{team.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, "PLANNED", prod.Status)
	assert.Equal(t, []string{team.ID}, prod.Teams)
	assert.Equal(t, []string{}, prod.Towers)
}

func TestTowerEmbedsFoundations(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	work, err := s.CreateWork(ctx, CreateWorkInput{Name: "LT 230kV"})
	require.NoError(t, err)
	tower, err := s.CreateTower(ctx, CreateTowerInput{
		Code: 12, TowerNumber: "12/1", Type: "suspension", Latitude: -23.5, Longitude: -46.6, WorkID: work.ID,
	})
	require.NoError(t, err)
	assert.Empty(t, tower.Foundations)

	vol := 14.5
	fd, err := s.CreateFoundation(ctx, CreateFoundationInput{
		TowerID: tower.ID, Project: "F-12", Revision: "B", Description: "leg A", ConcreteVolume: &vol,
	})
	require.NoError(t, err)
	// Second foundation without any volume figures.
	bare, err := s.CreateFoundation(ctx, CreateFoundationInput{
		TowerID: tower.ID, Project: "F-12", Revision: "B", Description: "leg B",
	})
	require.NoError(t, err)

	got, err := s.GetTower(ctx, tower.ID)
	require.NoError(t, err)
	require.Len(t, got.Foundations, 2)
	assert.Equal(t, fd, got.Foundations[0])
	assert.Equal(t, bare, got.Foundations[1])

	// Unset volumes on the embedded foundation serialize as explicit nulls.
	raw, err := json.Marshal(got.Foundations[1])
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"excavation_volume":null`)
	assert.Contains(t, string(raw), `"concrete_volume":null`)
	assert.Contains(t, string(raw), `"backfill_volume":null`)
	assert.Contains(t, string(raw), `"steel_weight":null`)
}

func TestWorkOutputNullCoalescing(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	work, err := s.CreateWork(ctx, CreateWorkInput{Name: "Short span", Tension: str("500kV")})
	require.NoError(t, err)

	raw, err := json.Marshal(work)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"tension":"500kV"`)
	assert.Contains(t, string(raw), `"extension":null`)
	assert.Contains(t, string(raw), `"start_date":null`)

	// Clearing with an empty string reverts the field to null.
	cleared, err := s.UpdateWork(ctx, work.ID, domain.WorkPatch{Tension: str("")})
	require.NoError(t, err)
	assert.Nil(t, cleared.Tension)
	assert.Equal(t, "Short span", cleared.Name)
}

func TestDeleteMissingIsNotFound(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	assert.ErrorIs(t, s.DeleteEmployee(ctx, "nope"), domain.ErrNotFound)
	assert.ErrorIs(t, s.DeleteWork(ctx, "nope"), domain.ErrNotFound)
	assert.ErrorIs(t, s.DeleteProduction(ctx, "nope"), domain.ErrNotFound)
}

func TestUserLifecycleAndLogin(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	u, err := s.CreateUser(ctx, CreateUserInput{Email: "ops@gridworks.dev", Password: "s3cret"})
	require.NoError(t, err)

	raw, err := json.Marshal(u)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(raw), "s3cret"))
	assert.False(t, strings.Contains(string(raw), "password"))
	assert.Contains(t, string(raw), `"name":null`)

	_, err = s.CreateUser(ctx, CreateUserInput{Email: "ops@gridworks.dev", Password: "other"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	got, err := s.Authenticate(ctx, "ops@gridworks.dev", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = s.Authenticate(ctx, "ops@gridworks.dev", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = s.Authenticate(ctx, "nobody@gridworks.dev", "s3cret")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	// Password changes go through the hasher.
	_, err = s.UpdateUser(ctx, u.ID, UpdateUserInput{Password: str("rotated")})
	require.NoError(t, err)
	_, err = s.Authenticate(ctx, "ops@gridworks.dev", "rotated")
	assert.NoError(t, err)
}

func TestUpdateEmployeePartial(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	created, err := s.CreateEmployee(ctx, CreateEmployeeInput{
		Registration: "E-600", FullName: "Pedro Dias", Occupation: "Lineman",
	})
	require.NoError(t, err)

	updated, err := s.UpdateEmployee(ctx, created.ID, domain.EmployeePatch{Occupation: str("Foreman")})
	require.NoError(t, err)
	assert.Equal(t, "Foreman", updated.Occupation)
	assert.Equal(t, created.FullName, updated.FullName)
	assert.Equal(t, created.Registration, updated.Registration)
	assert.Equal(t, created.Status, updated.Status)
}
