package repo

import (
	"context"
	"database/sql"

	"gridworks/internal/domain"
	"gridworks/internal/events"
)

const workColumns = `id, name, tension, extension, start_date, end_date, created_at`

var workList = listSpec{
	table:         "works",
	columns:       workColumns,
	filterColumns: []string{"name", "tension"},
	sortColumns: map[string]string{
		"name":       "name",
		"start_date": "start_date",
		"end_date":   "end_date",
		"created_at": "created_at",
	},
}

func scanWork(row rowScanner) (domain.Work, error) {
	var w domain.Work
	var tension, extension, start, end sql.NullString
	err := row.Scan(&w.ID, &w.Name, &tension, &extension, &start, &end, &w.CreatedAt)
	w.Tension = strPtr(tension)
	w.Extension = strPtr(extension)
	w.StartDate = strPtr(start)
	w.EndDate = strPtr(end)
	return w, err
}

// InsertWork persists a new work, assigning id and created_at.
func (r Repo) InsertWork(ctx context.Context, w domain.Work) (domain.Work, error) {
	w.ID = newID()
	w.CreatedAt = r.now()
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO works(id,name,tension,extension,start_date,end_date,created_at) VALUES (?,?,?,?,?,?,?)`,
			w.ID, w.Name, nullableStr(w.Tension), nullableStr(w.Extension), nullableStr(w.StartDate), nullableStr(w.EndDate), w.CreatedAt); err != nil {
			return err
		}
		return r.Events.Append(ctx, tx, "work.created", "work", w.ID, "", events.EventPayload{"name": w.Name})
	})
	if err != nil {
		return domain.Work{}, err
	}
	return w, nil
}

func (r Repo) GetWork(ctx context.Context, id string) (domain.Work, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+workColumns+` FROM works WHERE id=?`, id)
	w, err := scanWork(row)
	if err == sql.ErrNoRows {
		return domain.Work{}, domain.NotFoundError{Resource: "work", ID: id}
	}
	if err != nil {
		return domain.Work{}, err
	}
	return w, nil
}

func (r Repo) ListWorks(ctx context.Context, in domain.PageInput) (domain.Page[domain.Work], error) {
	return listPage(ctx, r.DB, workList, in, func(rows *sql.Rows) (domain.Work, error) {
		return scanWork(rows)
	})
}


func (r Repo) UpdateWork(ctx context.Context, id string, p domain.WorkPatch) (domain.Work, error) {
	var (
		fields []string
		args   []any
	)
	appendField := func(name string, v any) {
		fields = append(fields, name+"=?")
		args = append(args, v)
	}
	if p.Name != nil {
		appendField("name", *p.Name)
	}
	if p.Tension != nil {
		appendField("tension", nullable(*p.Tension))
	}
	if p.Extension != nil {
		appendField("extension", nullable(*p.Extension))
	}
	if p.StartDate != nil {
		appendField("start_date", nullable(*p.StartDate))
	}
	if p.EndDate != nil {
		appendField("end_date", nullable(*p.EndDate))
	}
	if len(fields) == 0 {
		return r.GetWork(ctx, id)
	}
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		if err := execPatch(ctx, tx, "works", fields, args, id, "work"); err != nil {
			return err
		}
		return r.Events.Append(ctx, tx, "work.updated", "work", id, "", nil)
	})
	if err != nil {
		return domain.Work{}, err
	}
	return r.GetWork(ctx, id)
}

// DeleteWork removes the work; deleting a missing id fails with NotFound.
// Works still referenced by towers, tasks or productions are protected by
// the schema's foreign keys.
func (r Repo) DeleteWork(ctx context.Context, id string) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM works WHERE id=?`, id)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return domain.NotFoundError{Resource: "work", ID: id}
		}
		return r.Events.Append(ctx, tx, "work.deleted", "work", id, "", nil)
	})
}
