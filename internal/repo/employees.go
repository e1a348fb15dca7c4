package repo

import (
	"context"
	"database/sql"

	"gridworks/internal/domain"
	"gridworks/internal/events"
)

const employeeColumns = `id, registration, full_name, occupation, leadership, status, team_id, created_at`

var employeeList = listSpec{
	table:         "employees",
	columns:       employeeColumns,
	filterColumns: []string{"registration", "full_name", "occupation"},
	sortColumns: map[string]string{
		"registration": "registration",
		"full_name":    "full_name",
		"occupation":   "occupation",
		"status":       "status",
		"created_at":   "created_at",
	},
}

func scanEmployee(row rowScanner) (domain.Employee, error) {
	var e domain.Employee
	var teamID sql.NullString
	err := row.Scan(&e.ID, &e.Registration, &e.FullName, &e.Occupation, &e.Leadership, &e.Status, &teamID, &e.CreatedAt)
	e.TeamID = strPtr(teamID)
	return e, err
}

// InsertEmployee persists a new employee, assigning id and created_at.
func (r Repo) InsertEmployee(ctx context.Context, e domain.Employee) (domain.Employee, error) {
	e.ID = newID()
	e.CreatedAt = r.now()
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO employees(id,registration,full_name,occupation,leadership,status,team_id,created_at) VALUES (?,?,?,?,?,?,?,?)`,
			e.ID, e.Registration, e.FullName, e.Occupation, e.Leadership, string(e.Status), nullableStr(e.TeamID), e.CreatedAt); err != nil {
			return err
		}
		return r.Events.Append(ctx, tx, "employee.created", "employee", e.ID, "", events.EventPayload{"registration": e.Registration})
	})
	if err != nil {
		return domain.Employee{}, err
	}
	return e, nil
}

func (r Repo) GetEmployee(ctx context.Context, id string) (domain.Employee, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id=?`, id)
	e, err := scanEmployee(row)
	if err == sql.ErrNoRows {
		return domain.Employee{}, domain.NotFoundError{Resource: "employee", ID: id}
	}
	if err != nil {
		return domain.Employee{}, err
	}
	return e, nil
}

func (r Repo) ListEmployees(ctx context.Context, in domain.PageInput) (domain.Page[domain.Employee], error) {
	return listPage(ctx, r.DB, employeeList, in, func(rows *sql.Rows) (domain.Employee, error) {
		return scanEmployee(rows)
	})
}


func (r Repo) UpdateEmployee(ctx context.Context, id string, p domain.EmployeePatch) (domain.Employee, error) {
	var (
		fields []string
		args   []any
	)
	appendField := func(name string, v any) {
		fields = append(fields, name+"=?")
		args = append(args, v)
	}
	if p.Registration != nil {
		appendField("registration", *p.Registration)
	}
	if p.FullName != nil {
		appendField("full_name", *p.FullName)
	}
	if p.Occupation != nil {
		appendField("occupation", *p.Occupation)
	}
	if p.Leadership != nil {
		appendField("leadership", *p.Leadership)
	}
	if p.Status != nil {
		appendField("status", string(*p.Status))
	}
	if p.TeamID != nil {
		appendField("team_id", nullable(*p.TeamID))
	}
	if len(fields) == 0 {
		return r.GetEmployee(ctx, id)
	}
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		if err := execPatch(ctx, tx, "employees", fields, args, id, "employee"); err != nil {
			return err
		}
		return r.Events.Append(ctx, tx, "employee.updated", "employee", id, "", nil)
	})
	if err != nil {
		return domain.Employee{}, err
	}
	return r.GetEmployee(ctx, id)
}

// DeleteEmployee removes the employee; deleting a missing id fails with
// NotFound.
func (r Repo) DeleteEmployee(ctx context.Context, id string) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM employees WHERE id=?`, id)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return domain.NotFoundError{Resource: "employee", ID: id}
		}
		return r.Events.Append(ctx, tx, "employee.deleted", "employee", id, "", nil)
	})
}
