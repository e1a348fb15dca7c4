package usecase

import (
	"context"
	"fmt"
	"strings"

	"gridworks/internal/domain"
)

// fakeStores is an in-memory implementation of the store contracts for
// exercising the use cases without SQLite. Collections keep insertion order;
// filters are substring matches over the same columns the repository scans.
type fakeStores struct {
	seq         int
	employees   []domain.Employee
	equipments  []domain.Equipment
	teams       []domain.Team
	foundations []domain.Foundation
	towers      []domain.Tower
	tasks       []domain.Task
	productions []domain.Production
	works       []domain.Work
	users       []domain.User
}

func newFakeStores() *fakeStores { return &fakeStores{} }

func (f *fakeStores) bundle() Stores {
	return Stores{
		Employees:   f,
		Equipments:  f,
		Teams:       f,
		Foundations: f,
		Towers:      f,
		Tasks:       f,
		Productions: f,
		Works:       f,
		Users:       f,
	}
}

func (f *fakeStores) next() (string, string) {
	f.seq++
	return fmt.Sprintf("id-%04d", f.seq), fmt.Sprintf("2026-01-01T00:00:%02dZ", f.seq%60)
}

func pageOf[T any](items []T, in domain.PageInput, match func(T) bool) domain.Page[T] {
	filtered := make([]T, 0, len(items))
	for _, it := range items {
		if match == nil || match(it) {
			filtered = append(filtered, it)
		}
	}
	total := len(filtered)
	start := in.Offset()
	if start > total {
		start = total
	}
	end := start + in.PerPage
	if end > total {
		end = total
	}
	return domain.Page[T]{Total: total, Items: append([]T{}, filtered[start:end]...)}
}

func setStr(dst *string, p *string) {
	if p != nil {
		*dst = *p
	}
}

func setOpt[T any](dst **T, p *T) {
	if p != nil {
		v := *p
		*dst = &v
	}
}

// setNullStr mirrors the repository rule for optional strings: a pointer to
// the empty string clears the column.
func setNullStr(dst **string, p *string) {
	if p == nil {
		return
	}
	if *p == "" {
		*dst = nil
		return
	}
	v := *p
	*dst = &v
}

// Employees.

func (f *fakeStores) InsertEmployee(_ context.Context, e domain.Employee) (domain.Employee, error) {
	e.ID, e.CreatedAt = f.next()
	f.employees = append(f.employees, e)
	return e, nil
}

func (f *fakeStores) GetEmployee(_ context.Context, id string) (domain.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return domain.Employee{}, domain.NotFoundError{Resource: "employee", ID: id}
}

func (f *fakeStores) ListEmployees(_ context.Context, in domain.PageInput) (domain.Page[domain.Employee], error) {
	return pageOf(f.employees, in, func(e domain.Employee) bool {
		if in.Filter == "" {
			return true
		}
		return strings.Contains(e.Registration, in.Filter) ||
			strings.Contains(e.FullName, in.Filter) ||
			strings.Contains(e.Occupation, in.Filter)
	}), nil
}

func (f *fakeStores) UpdateEmployee(_ context.Context, id string, p domain.EmployeePatch) (domain.Employee, error) {
	for i := range f.employees {
		if f.employees[i].ID != id {
			continue
		}
		e := &f.employees[i]
		setStr(&e.Registration, p.Registration)
		setStr(&e.FullName, p.FullName)
		setStr(&e.Occupation, p.Occupation)
		if p.Leadership != nil {
			e.Leadership = *p.Leadership
		}
		if p.Status != nil {
			e.Status = *p.Status
		}
		if p.TeamID != nil {
			if *p.TeamID == "" {
				e.TeamID = nil
			} else {
				v := *p.TeamID
				e.TeamID = &v
			}
		}
		return *e, nil
	}
	return domain.Employee{}, domain.NotFoundError{Resource: "employee", ID: id}
}

func (f *fakeStores) DeleteEmployee(_ context.Context, id string) error {
	for i := range f.employees {
		if f.employees[i].ID == id {
			f.employees = append(f.employees[:i], f.employees[i+1:]...)
			return nil
		}
	}
	return domain.NotFoundError{Resource: "employee", ID: id}
}

// Equipments.

func (f *fakeStores) InsertEquipment(_ context.Context, e domain.Equipment) (domain.Equipment, error) {
	e.ID, e.CreatedAt = f.next()
	f.equipments = append(f.equipments, e)
	return e, nil
}

func (f *fakeStores) GetEquipment(_ context.Context, id string) (domain.Equipment, error) {
	for _, e := range f.equipments {
		if e.ID == id {
			return e, nil
		}
	}
	return domain.Equipment{}, domain.NotFoundError{Resource: "equipment", ID: id}
}

func (f *fakeStores) ListEquipments(_ context.Context, in domain.PageInput) (domain.Page[domain.Equipment], error) {
	return pageOf(f.equipments, in, func(e domain.Equipment) bool {
		if in.Filter == "" {
			return true
		}
		return strings.Contains(e.Registration, in.Filter) ||
			strings.Contains(e.Model, in.Filter) ||
			strings.Contains(e.Manufacturer, in.Filter)
	}), nil
}

func (f *fakeStores) UpdateEquipment(_ context.Context, id string, p domain.EquipmentPatch) (domain.Equipment, error) {
	for i := range f.equipments {
		if f.equipments[i].ID != id {
			continue
		}
		e := &f.equipments[i]
		setStr(&e.Registration, p.Registration)
		setStr(&e.Model, p.Model)
		setStr(&e.Manufacturer, p.Manufacturer)
		setStr(&e.LicensePlate, p.LicensePlate)
		setStr(&e.Provider, p.Provider)
		if p.Status != nil {
			e.Status = *p.Status
		}
		if p.TeamID != nil {
			if *p.TeamID == "" {
				e.TeamID = nil
			} else {
				v := *p.TeamID
				e.TeamID = &v
			}
		}
		return *e, nil
	}
	return domain.Equipment{}, domain.NotFoundError{Resource: "equipment", ID: id}
}

func (f *fakeStores) DeleteEquipment(_ context.Context, id string) error {
	for i := range f.equipments {
		if f.equipments[i].ID == id {
			f.equipments = append(f.equipments[:i], f.equipments[i+1:]...)
			return nil
		}
	}
	return domain.NotFoundError{Resource: "equipment", ID: id}
}

// Teams. Membership is stored on the members, mirroring the schema.

func (f *fakeStores) assignMembers(teamID string, employeeIDs, equipmentIDs []string) error {
	for i := range f.employees {
		if f.employees[i].TeamID != nil && *f.employees[i].TeamID == teamID {
			f.employees[i].TeamID = nil
		}
	}
	for i := range f.equipments {
		if f.equipments[i].TeamID != nil && *f.equipments[i].TeamID == teamID {
			f.equipments[i].TeamID = nil
		}
	}
	for _, id := range employeeIDs {
		found := false
		for i := range f.employees {
			if f.employees[i].ID == id {
				tid := teamID
				f.employees[i].TeamID = &tid
				found = true
			}
		}
		if !found {
			return domain.InvalidReferenceError{Resource: "employee", ID: id}
		}
	}
	for _, id := range equipmentIDs {
		found := false
		for i := range f.equipments {
			if f.equipments[i].ID == id {
				tid := teamID
				f.equipments[i].TeamID = &tid
				found = true
			}
		}
		if !found {
			return domain.InvalidReferenceError{Resource: "equipment", ID: id}
		}
	}
	return nil
}

func (f *fakeStores) InsertTeam(_ context.Context, name string, employeeIDs, equipmentIDs []string) (domain.Team, error) {
	t := domain.Team{Name: name}
	t.ID, t.CreatedAt = f.next()
	if err := f.assignMembers(t.ID, employeeIDs, equipmentIDs); err != nil {
		return domain.Team{}, err
	}
	f.teams = append(f.teams, t)
	return t, nil
}

func (f *fakeStores) GetTeam(_ context.Context, id string) (domain.Team, error) {
	for _, t := range f.teams {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.Team{}, domain.NotFoundError{Resource: "team", ID: id}
}

func (f *fakeStores) ListTeams(_ context.Context, in domain.PageInput) (domain.Page[domain.Team], error) {
	return pageOf(f.teams, in, func(t domain.Team) bool {
		return in.Filter == "" || strings.Contains(t.Name, in.Filter)
	}), nil
}

func (f *fakeStores) UpdateTeam(_ context.Context, id string, p domain.TeamPatch) (domain.Team, error) {
	for i := range f.teams {
		if f.teams[i].ID != id {
			continue
		}
		setStr(&f.teams[i].Name, p.Name)
		if p.EmployeeIDs != nil || p.EquipmentIDs != nil {
			emp := p.EmployeeIDs
			eq := p.EquipmentIDs
			if emp == nil {
				emp = f.memberEmployeeIDs(id)
			}
			if eq == nil {
				eq = f.memberEquipmentIDs(id)
			}
			if err := f.assignMembers(id, emp, eq); err != nil {
				return domain.Team{}, err
			}
		}
		return f.teams[i], nil
	}
	return domain.Team{}, domain.NotFoundError{Resource: "team", ID: id}
}

func (f *fakeStores) memberEmployeeIDs(teamID string) []string {
	ids := []string{}
	for _, e := range f.employees {
		if e.TeamID != nil && *e.TeamID == teamID {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

func (f *fakeStores) memberEquipmentIDs(teamID string) []string {
	ids := []string{}
	for _, e := range f.equipments {
		if e.TeamID != nil && *e.TeamID == teamID {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

func (f *fakeStores) DeleteTeam(_ context.Context, id string) error {
	for i := range f.teams {
		if f.teams[i].ID == id {
			f.teams = append(f.teams[:i], f.teams[i+1:]...)
			_ = f.assignMembers(id, nil, nil)
			return nil
		}
	}
	return domain.NotFoundError{Resource: "team", ID: id}
}

func (f *fakeStores) ListTeamEmployees(_ context.Context, teamID string) ([]domain.Employee, error) {
	out := []domain.Employee{}
	for _, e := range f.employees {
		if e.TeamID != nil && *e.TeamID == teamID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeStores) ListTeamEquipments(_ context.Context, teamID string) ([]domain.Equipment, error) {
	out := []domain.Equipment{}
	for _, e := range f.equipments {
		if e.TeamID != nil && *e.TeamID == teamID {
			out = append(out, e)
		}
	}
	return out, nil
}

// Foundations.

func (f *fakeStores) InsertFoundation(_ context.Context, fd domain.Foundation) (domain.Foundation, error) {
	fd.ID, fd.CreatedAt = f.next()
	f.foundations = append(f.foundations, fd)
	return fd, nil
}

func (f *fakeStores) GetFoundation(_ context.Context, id string) (domain.Foundation, error) {
	for _, fd := range f.foundations {
		if fd.ID == id {
			return fd, nil
		}
	}
	return domain.Foundation{}, domain.NotFoundError{Resource: "foundation", ID: id}
}

func (f *fakeStores) ListFoundations(_ context.Context, in domain.PageInput) (domain.Page[domain.Foundation], error) {
	return pageOf(f.foundations, in, func(fd domain.Foundation) bool {
		return in.Filter == "" || strings.Contains(fd.Project, in.Filter) || strings.Contains(fd.Description, in.Filter)
	}), nil
}

func (f *fakeStores) ListTowerFoundations(_ context.Context, towerID string) ([]domain.Foundation, error) {
	out := []domain.Foundation{}
	for _, fd := range f.foundations {
		if fd.TowerID == towerID {
			out = append(out, fd)
		}
	}
	return out, nil
}

func (f *fakeStores) UpdateFoundation(_ context.Context, id string, p domain.FoundationPatch) (domain.Foundation, error) {
	for i := range f.foundations {
		if f.foundations[i].ID != id {
			continue
		}
		fd := &f.foundations[i]
		setStr(&fd.Project, p.Project)
		setStr(&fd.Revision, p.Revision)
		setStr(&fd.Description, p.Description)
		setOpt(&fd.ExcavationVolume, p.ExcavationVolume)
		setOpt(&fd.ConcreteVolume, p.ConcreteVolume)
		setOpt(&fd.BackfillVolume, p.BackfillVolume)
		setOpt(&fd.SteelWeight, p.SteelWeight)
		return *fd, nil
	}
	return domain.Foundation{}, domain.NotFoundError{Resource: "foundation", ID: id}
}

func (f *fakeStores) DeleteFoundation(_ context.Context, id string) error {
	for i := range f.foundations {
		if f.foundations[i].ID == id {
			f.foundations = append(f.foundations[:i], f.foundations[i+1:]...)
			return nil
		}
	}
	return domain.NotFoundError{Resource: "foundation", ID: id}
}

// Towers.

func (f *fakeStores) InsertTower(_ context.Context, t domain.Tower) (domain.Tower, error) {
	t.ID, t.CreatedAt = f.next()
	f.towers = append(f.towers, t)
	return t, nil
}

func (f *fakeStores) GetTower(_ context.Context, id string) (domain.Tower, error) {
	for _, t := range f.towers {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.Tower{}, domain.NotFoundError{Resource: "tower", ID: id}
}

func (f *fakeStores) ListTowers(_ context.Context, in domain.PageInput) (domain.Page[domain.Tower], error) {
	return pageOf(f.towers, in, func(t domain.Tower) bool {
		return in.Filter == "" || strings.Contains(t.TowerNumber, in.Filter) || strings.Contains(t.Type, in.Filter)
	}), nil
}

func (f *fakeStores) UpdateTower(_ context.Context, id string, p domain.TowerPatch) (domain.Tower, error) {
	for i := range f.towers {
		if f.towers[i].ID != id {
			continue
		}
		t := &f.towers[i]
		if p.Code != nil {
			t.Code = *p.Code
		}
		setStr(&t.TowerNumber, p.TowerNumber)
		setStr(&t.Type, p.Type)
		if p.Latitude != nil {
			t.Latitude = *p.Latitude
		}
		if p.Longitude != nil {
			t.Longitude = *p.Longitude
		}
		setOpt(&t.Height, p.Height)
		setOpt(&t.Weight, p.Weight)
		setNullStr(&t.FoundationDate, p.FoundationDate)
		setNullStr(&t.ErectionDate, p.ErectionDate)
		setNullStr(&t.TensioningDate, p.TensioningDate)
		setNullStr(&t.Observations, p.Observations)
		if p.Hidden != nil {
			t.Hidden = *p.Hidden
		}
		setStr(&t.WorkID, p.WorkID)
		return *t, nil
	}
	return domain.Tower{}, domain.NotFoundError{Resource: "tower", ID: id}
}

func (f *fakeStores) DeleteTower(_ context.Context, id string) error {
	for i := range f.towers {
		if f.towers[i].ID == id {
			f.towers = append(f.towers[:i], f.towers[i+1:]...)
			kept := f.foundations[:0]
			for _, fd := range f.foundations {
				if fd.TowerID != id {
					kept = append(kept, fd)
				}
			}
			f.foundations = kept
			return nil
		}
	}
	return domain.NotFoundError{Resource: "tower", ID: id}
}

// Tasks.

func (f *fakeStores) InsertTask(_ context.Context, t domain.Task) (domain.Task, error) {
	t.ID, t.CreatedAt = f.next()
	f.tasks = append(f.tasks, t)
	return t, nil
}

func (f *fakeStores) GetTask(_ context.Context, id string) (domain.Task, error) {
	for _, t := range f.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.Task{}, domain.NotFoundError{Resource: "task", ID: id}
}

func (f *fakeStores) ListTasks(_ context.Context, in domain.PageInput) (domain.Page[domain.Task], error) {
	return pageOf(f.tasks, in, func(t domain.Task) bool {
		return in.Filter == "" || strings.Contains(t.Name, in.Filter) || strings.Contains(t.Stage, in.Filter)
	}), nil
}

func (f *fakeStores) UpdateTask(_ context.Context, id string, p domain.TaskPatch) (domain.Task, error) {
	for i := range f.tasks {
		if f.tasks[i].ID != id {
			continue
		}
		t := &f.tasks[i]
		if p.Code != nil {
			t.Code = *p.Code
		}
		setStr(&t.Stage, p.Stage)
		setStr(&t.Group, p.Group)
		setStr(&t.Name, p.Name)
		setStr(&t.Unit, p.Unit)
		setStr(&t.WorkID, p.WorkID)
		return *t, nil
	}
	return domain.Task{}, domain.NotFoundError{Resource: "task", ID: id}
}

func (f *fakeStores) DeleteTask(_ context.Context, id string) error {
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return domain.NotFoundError{Resource: "task", ID: id}
}

// Productions.

func (f *fakeStores) InsertProduction(_ context.Context, p domain.Production) (domain.Production, error) {
	p.ID, p.CreatedAt = f.next()
	if p.TeamIDs == nil {
		p.TeamIDs = []string{}
	}
	if p.TowerIDs == nil {
		p.TowerIDs = []string{}
	}
	f.productions = append(f.productions, p)
	return p, nil
}

func (f *fakeStores) GetProduction(_ context.Context, id string) (domain.Production, error) {
	for _, p := range f.productions {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Production{}, domain.NotFoundError{Resource: "production", ID: id}
}

func (f *fakeStores) ListProductions(_ context.Context, in domain.PageInput) (domain.Page[domain.Production], error) {
	return pageOf(f.productions, in, func(p domain.Production) bool {
		return in.Filter == "" || strings.Contains(string(p.Status), in.Filter)
	}), nil
}

func (f *fakeStores) UpdateProduction(_ context.Context, id string, p domain.ProductionPatch) (domain.Production, error) {
	for i := range f.productions {
		if f.productions[i].ID != id {
			continue
		}
		pr := &f.productions[i]
		if p.Status != nil {
			pr.Status = *p.Status
		}
		setNullStr(&pr.Comments, p.Comments)
		setNullStr(&pr.StartTime, p.StartTime)
		setNullStr(&pr.FinalTime, p.FinalTime)
		setStr(&pr.TaskID, p.TaskID)
		setStr(&pr.WorkID, p.WorkID)
		if p.TeamIDs != nil {
			pr.TeamIDs = append([]string{}, p.TeamIDs...)
		}
		if p.TowerIDs != nil {
			pr.TowerIDs = append([]string{}, p.TowerIDs...)
		}
		return *pr, nil
	}
	return domain.Production{}, domain.NotFoundError{Resource: "production", ID: id}
}

func (f *fakeStores) DeleteProduction(_ context.Context, id string) error {
	for i := range f.productions {
		if f.productions[i].ID == id {
			f.productions = append(f.productions[:i], f.productions[i+1:]...)
			return nil
		}
	}
	return domain.NotFoundError{Resource: "production", ID: id}
}

// Works.

func (f *fakeStores) InsertWork(_ context.Context, w domain.Work) (domain.Work, error) {
	w.ID, w.CreatedAt = f.next()
	f.works = append(f.works, w)
	return w, nil
}

func (f *fakeStores) GetWork(_ context.Context, id string) (domain.Work, error) {
	for _, w := range f.works {
		if w.ID == id {
			return w, nil
		}
	}
	return domain.Work{}, domain.NotFoundError{Resource: "work", ID: id}
}

func (f *fakeStores) ListWorks(_ context.Context, in domain.PageInput) (domain.Page[domain.Work], error) {
	return pageOf(f.works, in, func(w domain.Work) bool {
		return in.Filter == "" || strings.Contains(w.Name, in.Filter)
	}), nil
}

func (f *fakeStores) UpdateWork(_ context.Context, id string, p domain.WorkPatch) (domain.Work, error) {
	for i := range f.works {
		if f.works[i].ID != id {
			continue
		}
		w := &f.works[i]
		setStr(&w.Name, p.Name)
		setNullStr(&w.Tension, p.Tension)
		setNullStr(&w.Extension, p.Extension)
		setNullStr(&w.StartDate, p.StartDate)
		setNullStr(&w.EndDate, p.EndDate)
		return *w, nil
	}
	return domain.Work{}, domain.NotFoundError{Resource: "work", ID: id}
}

func (f *fakeStores) DeleteWork(_ context.Context, id string) error {
	for i := range f.works {
		if f.works[i].ID == id {
			f.works = append(f.works[:i], f.works[i+1:]...)
			return nil
		}
	}
	return domain.NotFoundError{Resource: "work", ID: id}
}

// Users.

func (f *fakeStores) InsertUser(_ context.Context, u domain.User) (domain.User, error) {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return domain.User{}, domain.ConflictError{Resource: "user", Detail: "email already registered"}
		}
	}
	u.ID, u.CreatedAt = f.next()
	f.users = append(f.users, u)
	return u, nil
}

func (f *fakeStores) GetUser(_ context.Context, id string) (domain.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, domain.NotFoundError{Resource: "user", ID: id}
}

func (f *fakeStores) GetUserByEmail(_ context.Context, email string) (domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, domain.NotFoundError{Resource: "user"}
}

func (f *fakeStores) ListUsers(_ context.Context, in domain.PageInput) (domain.Page[domain.User], error) {
	return pageOf(f.users, in, func(u domain.User) bool {
		return in.Filter == "" || strings.Contains(u.Email, in.Filter)
	}), nil
}

func (f *fakeStores) UpdateUser(_ context.Context, id string, p domain.UserPatch) (domain.User, error) {
	for i := range f.users {
		if f.users[i].ID != id {
			continue
		}
		u := &f.users[i]
		if p.Email != nil {
			for _, other := range f.users {
				if other.ID != id && other.Email == *p.Email {
					return domain.User{}, domain.ConflictError{Resource: "user", Detail: "email already registered"}
				}
			}
			u.Email = *p.Email
		}
		setNullStr(&u.Name, p.Name)
		setStr(&u.PasswordHash, p.PasswordHash)
		return *u, nil
	}
	return domain.User{}, domain.NotFoundError{Resource: "user", ID: id}
}

func (f *fakeStores) DeleteUser(_ context.Context, id string) error {
	for i := range f.users {
		if f.users[i].ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return domain.NotFoundError{Resource: "user", ID: id}
}
