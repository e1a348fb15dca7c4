package repo

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridworks/internal/db"
	"gridworks/internal/domain"
	"gridworks/internal/migrate"
)

func newTestRepo(t *testing.T) Repo {
	t.Helper()
	conn, err := db.Open(db.Config{Workspace: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, migrate.Migrate(conn))

	r := New(conn)
	// Deterministic, strictly increasing clock so created_at ordering is
	// stable at second resolution.
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	clock := func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	r.Now = clock
	r.Events.Now = clock
	return r
}

func pageIn(page, perPage int) domain.PageInput {
	return domain.NormalizePage(domain.PageQuery{Page: page, PerPage: perPage})
}

func str(s string) *string { return &s }

func TestEmployeeRoundTripAndPartialUpdate(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.InsertEmployee(ctx, domain.Employee{
		Registration: "E-001",
		FullName:     "Marta Lopes",
		Occupation:   "Rigger",
		Leadership:   true,
		Status:       domain.EmployeeActive,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.NotEmpty(t, created.CreatedAt)

	got, err := r.GetEmployee(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	onLeave := domain.EmployeeOnLeave
	updated, err := r.UpdateEmployee(ctx, created.ID, domain.EmployeePatch{Status: &onLeave})
	require.NoError(t, err)
	assert.Equal(t, domain.EmployeeOnLeave, updated.Status)
	assert.Equal(t, created.FullName, updated.FullName)
	assert.Equal(t, created.Registration, updated.Registration)
	assert.True(t, updated.Leadership)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	require.NoError(t, r.DeleteEmployee(ctx, created.ID))
	assert.ErrorIs(t, r.DeleteEmployee(ctx, created.ID), domain.ErrNotFound)
	_, err = r.GetEmployee(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateMissingEmployeeIsNotFound(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.UpdateEmployee(context.Background(), "nope", domain.EmployeePatch{FullName: str("X")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListWorksPagingAndFilter(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	for i := 1; i <= 12; i++ {
		_, err := r.InsertWork(ctx, domain.Work{Name: fmt.Sprintf("Line %02d", i)})
		require.NoError(t, err)
	}

	page, err := r.ListWorks(ctx, pageIn(2, 5))
	require.NoError(t, err)
	assert.Equal(t, 12, page.Total)
	assert.Len(t, page.Items, 5)

	// Natural order is newest first.
	first, err := r.ListWorks(ctx, pageIn(1, 1))
	require.NoError(t, err)
	require.Len(t, first.Items, 1)
	assert.Equal(t, "Line 12", first.Items[0].Name)

	// The total follows the filter, not the window.
	filtered, err := r.ListWorks(ctx, domain.NormalizePage(domain.PageQuery{Filter: "Line 0", PerPage: 3}))
	require.NoError(t, err)
	assert.Equal(t, 9, filtered.Total)
	assert.Len(t, filtered.Items, 3)

	// A page past the end is empty but keeps the total.
	far, err := r.ListWorks(ctx, pageIn(40, 5))
	require.NoError(t, err)
	assert.Equal(t, 12, far.Total)
	assert.Empty(t, far.Items)
}

func TestListSortAllowlist(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	for _, name := range []string{"Bravo", "Alpha", "Charlie"} {
		_, err := r.InsertWork(ctx, domain.Work{Name: name})
		require.NoError(t, err)
	}

	asc, err := r.ListWorks(ctx, domain.NormalizePage(domain.PageQuery{Sort: "name"}))
	require.NoError(t, err)
	require.Len(t, asc.Items, 3)
	assert.Equal(t, "Alpha", asc.Items[0].Name)
	assert.Equal(t, "Charlie", asc.Items[2].Name)

	desc, err := r.ListWorks(ctx, domain.NormalizePage(domain.PageQuery{Sort: "name", SortDir: "desc"}))
	require.NoError(t, err)
	assert.Equal(t, "Charlie", desc.Items[0].Name)

	// An unknown sort column silently falls back to the natural order.
	fallback, err := r.ListWorks(ctx, domain.NormalizePage(domain.PageQuery{Sort: "no_such_column"}))
	require.NoError(t, err)
	require.Len(t, fallback.Items, 3)
	assert.Equal(t, "Charlie", fallback.Items[0].Name)
}

func TestTeamMembershipTransactional(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	emp, err := r.InsertEmployee(ctx, domain.Employee{
		Registration: "E-010", FullName: "Tiago Melo", Occupation: "Foreman", Status: domain.EmployeeActive,
	})
	require.NoError(t, err)

	// An unknown member id fails the whole insert: no team row is left.
	_, err = r.InsertTeam(ctx, "Ghost crew", []string{emp.ID, "missing"}, nil)
	require.ErrorIs(t, err, domain.ErrInvalidReference)
	teams, err := r.ListTeams(ctx, pageIn(1, 10))
	require.NoError(t, err)
	assert.Zero(t, teams.Total)
	fresh, err := r.GetEmployee(ctx, emp.ID)
	require.NoError(t, err)
	assert.Nil(t, fresh.TeamID)

	team, err := r.InsertTeam(ctx, "North", []string{emp.ID}, nil)
	require.NoError(t, err)

	members, err := r.ListTeamEmployees(ctx, team.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, emp.ID, members[0].ID)

	// Deleting the team keeps members, with membership cleared.
	require.NoError(t, r.DeleteTeam(ctx, team.ID))
	kept, err := r.GetEmployee(ctx, emp.ID)
	require.NoError(t, err)
	assert.Nil(t, kept.TeamID)
}

func TestUpdateTeamMembershipReplacement(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	a, err := r.InsertEmployee(ctx, domain.Employee{Registration: "E-020", FullName: "A", Occupation: "Lineman", Status: domain.EmployeeActive})
	require.NoError(t, err)
	b, err := r.InsertEmployee(ctx, domain.Employee{Registration: "E-021", FullName: "B", Occupation: "Lineman", Status: domain.EmployeeActive})
	require.NoError(t, err)
	team, err := r.InsertTeam(ctx, "Swap", []string{a.ID}, nil)
	require.NoError(t, err)

	// Renaming alone must not touch membership.
	_, err = r.UpdateTeam(ctx, team.ID, domain.TeamPatch{Name: str("Swap 2")})
	require.NoError(t, err)
	members, err := r.ListTeamEmployees(ctx, team.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, a.ID, members[0].ID)

	// Supplying the array replaces the membership wholesale.
	_, err = r.UpdateTeam(ctx, team.ID, domain.TeamPatch{EmployeeIDs: []string{b.ID}})
	require.NoError(t, err)
	members, err = r.ListTeamEmployees(ctx, team.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, b.ID, members[0].ID)

	// An empty array clears it.
	_, err = r.UpdateTeam(ctx, team.ID, domain.TeamPatch{EmployeeIDs: []string{}})
	require.NoError(t, err)
	members, err = r.ListTeamEmployees(ctx, team.ID)
	require.NoError(t, err)
	assert.Empty(t, members)
}

func seedWorkAndTask(t *testing.T, r Repo) (domain.Work, domain.Task) {
	t.Helper()
	ctx := context.Background()
	work, err := r.InsertWork(ctx, domain.Work{Name: "LT 500kV"})
	require.NoError(t, err)
	task, err := r.InsertTask(ctx, domain.Task{Code: 1, Stage: "civil", Group: "foundation", Name: "Excavation", Unit: "m3", WorkID: work.ID})
	require.NoError(t, err)
	return work, task
}

func TestProductionRelationArrays(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	work, task := seedWorkAndTask(t, r)

	team, err := r.InsertTeam(ctx, "Civil crew", nil, nil)
	require.NoError(t, err)
	tower, err := r.InsertTower(ctx, domain.Tower{Code: 7, TowerNumber: "7/2", Type: "suspension", Latitude: 1, Longitude: 2, WorkID: work.ID})
	require.NoError(t, err)

	created, err := r.InsertProduction(ctx, domain.Production{
		Status:   domain.ProductionPlanned,
		TaskID:   task.ID,
		WorkID:   work.ID,
		TeamIDs:  []string{team.ID},
		TowerIDs: []string{tower.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{team.ID}, created.TeamIDs)
	assert.Equal(t, []string{tower.ID}, created.TowerIDs)

	got, err := r.GetProduction(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.TeamIDs, got.TeamIDs)
	assert.Equal(t, created.TowerIDs, got.TowerIDs)

	// Duplicate ids in a replacement array violate the join-table key.
	_, err = r.UpdateProduction(ctx, created.ID, domain.ProductionPatch{TeamIDs: []string{team.ID, team.ID}})
	assert.ErrorIs(t, err, domain.ErrConflict)

	// A scalar-only patch leaves the arrays alone.
	executed := domain.ProductionExecuted
	patched, err := r.UpdateProduction(ctx, created.ID, domain.ProductionPatch{Status: &executed})
	require.NoError(t, err)
	assert.Equal(t, domain.ProductionExecuted, patched.Status)
	assert.Equal(t, []string{team.ID}, patched.TeamIDs)

	// An empty array clears the relation.
	cleared, err := r.UpdateProduction(ctx, created.ID, domain.ProductionPatch{TowerIDs: []string{}})
	require.NoError(t, err)
	assert.Empty(t, cleared.TowerIDs)
	assert.Equal(t, []string{team.ID}, cleared.TeamIDs)

	require.NoError(t, r.DeleteProduction(ctx, created.ID))
	_, err = r.GetProduction(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTowerFoundationCascade(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	work, _ := seedWorkAndTask(t, r)

	tower, err := r.InsertTower(ctx, domain.Tower{Code: 3, TowerNumber: "3/1", Type: "anchor", Latitude: 0, Longitude: 0, WorkID: work.ID})
	require.NoError(t, err)
	vol := 12.5
	fd, err := r.InsertFoundation(ctx, domain.Foundation{TowerID: tower.ID, Project: "F-3", Revision: "A", Description: "leg A", ConcreteVolume: &vol})
	require.NoError(t, err)

	bare, err := r.InsertFoundation(ctx, domain.Foundation{TowerID: tower.ID, Project: "F-3", Revision: "A", Description: "leg B"})
	require.NoError(t, err)

	embedded, err := r.ListTowerFoundations(ctx, tower.ID)
	require.NoError(t, err)
	require.Len(t, embedded, 2)
	// Embedding lists oldest first.
	assert.Equal(t, fd.ID, embedded[0].ID)
	assert.Equal(t, bare.ID, embedded[1].ID)
	require.NotNil(t, embedded[0].ConcreteVolume)
	assert.Equal(t, 12.5, *embedded[0].ConcreteVolume)
	assert.Nil(t, embedded[1].ExcavationVolume)
	assert.Nil(t, embedded[1].ConcreteVolume)
	assert.Nil(t, embedded[1].BackfillVolume)
	assert.Nil(t, embedded[1].SteelWeight)

	require.NoError(t, r.DeleteTower(ctx, tower.ID))
	_, err = r.GetFoundation(ctx, fd.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = r.GetFoundation(ctx, bare.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWorkOptionalClearing(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	work, err := r.InsertWork(ctx, domain.Work{Name: "Short span", Tension: str("500kV")})
	require.NoError(t, err)
	require.NotNil(t, work.Tension)

	cleared, err := r.UpdateWork(ctx, work.ID, domain.WorkPatch{Tension: str("")})
	require.NoError(t, err)
	assert.Nil(t, cleared.Tension)
	assert.Equal(t, "Short span", cleared.Name)
}

func TestUserUniqueEmail(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	u, err := r.InsertUser(ctx, domain.User{Email: "ops@gridworks.dev", PasswordHash: "x"})
	require.NoError(t, err)

	_, err = r.InsertUser(ctx, domain.User{Email: "ops@gridworks.dev", PasswordHash: "y"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	byEmail, err := r.GetUserByEmail(ctx, "ops@gridworks.dev")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	_, err = r.GetUserByEmail(ctx, "nobody@gridworks.dev")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	second, err := r.InsertUser(ctx, domain.User{Email: "two@gridworks.dev", PasswordHash: "z"})
	require.NoError(t, err)
	_, err = r.UpdateUser(ctx, second.ID, domain.UserPatch{Email: str("ops@gridworks.dev")})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestTaskGroupSortMapping(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	work, _ := seedWorkAndTask(t, r)

	_, err := r.InsertTask(ctx, domain.Task{Code: 2, Stage: "civil", Group: "assembly", Name: "Bolting", Unit: "un", WorkID: work.ID})
	require.NoError(t, err)

	// "group" is a reserved word; the external sort name maps onto the
	// backing column.
	page, err := r.ListTasks(ctx, domain.NormalizePage(domain.PageQuery{Sort: "group"}))
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "assembly", page.Items[0].Group)
	assert.Equal(t, "foundation", page.Items[1].Group)
}
