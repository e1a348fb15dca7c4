package repo

import (
	"context"
	"database/sql"

	"gridworks/internal/domain"
	"gridworks/internal/events"
)

// grp instead of group in the schema: GROUP is reserved in SQL.
const taskColumns = `id, code, stage, grp, name, unit, work_id, created_at`

var taskList = listSpec{
	table:         "tasks",
	columns:       taskColumns,
	filterColumns: []string{"stage", "grp", "name"},
	sortColumns: map[string]string{
		"code":       "code",
		"stage":      "stage",
		"group":      "grp",
		"name":       "name",
		"created_at": "created_at",
	},
}

func scanTask(row rowScanner) (domain.Task, error) {
	var t domain.Task
	err := row.Scan(&t.ID, &t.Code, &t.Stage, &t.Group, &t.Name, &t.Unit, &t.WorkID, &t.CreatedAt)
	return t, err
}

// InsertTask persists a new task, assigning id and created_at.
func (r Repo) InsertTask(ctx context.Context, t domain.Task) (domain.Task, error) {
	t.ID = newID()
	t.CreatedAt = r.now()
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO tasks(id,code,stage,grp,name,unit,work_id,created_at) VALUES (?,?,?,?,?,?,?,?)`,
			t.ID, t.Code, t.Stage, t.Group, t.Name, t.Unit, t.WorkID, t.CreatedAt); err != nil {
			return err
		}
		return r.Events.Append(ctx, tx, "task.created", "task", t.ID, "", events.EventPayload{"name": t.Name})
	})
	if err != nil {
		return domain.Task{}, err
	}
	return t, nil
}

func (r Repo) GetTask(ctx context.Context, id string) (domain.Task, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id=?`, id)
	t, err := scanTask(row)
	if err == sql.ErrNoRows {
		return domain.Task{}, domain.NotFoundError{Resource: "task", ID: id}
	}
	if err != nil {
		return domain.Task{}, err
	}
	return t, nil
}

func (r Repo) ListTasks(ctx context.Context, in domain.PageInput) (domain.Page[domain.Task], error) {
	return listPage(ctx, r.DB, taskList, in, func(rows *sql.Rows) (domain.Task, error) {
		return scanTask(rows)
	})
}


func (r Repo) UpdateTask(ctx context.Context, id string, p domain.TaskPatch) (domain.Task, error) {
	var (
		fields []string
		args   []any
	)
	appendField := func(name string, v any) {
		fields = append(fields, name+"=?")
		args = append(args, v)
	}
	if p.Code != nil {
		appendField("code", *p.Code)
	}
	if p.Stage != nil {
		appendField("stage", *p.Stage)
	}
	if p.Group != nil {
		appendField("grp", *p.Group)
	}
	if p.Name != nil {
		appendField("name", *p.Name)
	}
	if p.Unit != nil {
		appendField("unit", *p.Unit)
	}
	if p.WorkID != nil {
		appendField("work_id", *p.WorkID)
	}
	if len(fields) == 0 {
		return r.GetTask(ctx, id)
	}
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		if err := execPatch(ctx, tx, "tasks", fields, args, id, "task"); err != nil {
			return err
		}
		return r.Events.Append(ctx, tx, "task.updated", "task", id, "", nil)
	})
	if err != nil {
		return domain.Task{}, err
	}
	return r.GetTask(ctx, id)
}

// DeleteTask removes the task; deleting a missing id fails with NotFound.
func (r Repo) DeleteTask(ctx context.Context, id string) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE id=?`, id)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return domain.NotFoundError{Resource: "task", ID: id}
		}
		return r.Events.Append(ctx, tx, "task.deleted", "task", id, "", nil)
	})
}
