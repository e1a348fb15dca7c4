package repo

import (
	"context"
	"database/sql"

	"gridworks/internal/domain"
	"gridworks/internal/events"
)

const foundationColumns = `id, tower_id, project, revision, description, excavation_volume, concrete_volume, backfill_volume, steel_weight, created_at`

var foundationList = listSpec{
	table:         "foundations",
	columns:       foundationColumns,
	filterColumns: []string{"project", "revision", "description"},
	sortColumns: map[string]string{
		"project":    "project",
		"revision":   "revision",
		"created_at": "created_at",
	},
}

func scanFoundation(row rowScanner) (domain.Foundation, error) {
	var f domain.Foundation
	var exc, con, back, steel sql.NullFloat64
	err := row.Scan(&f.ID, &f.TowerID, &f.Project, &f.Revision, &f.Description, &exc, &con, &back, &steel, &f.CreatedAt)
	f.ExcavationVolume = floatPtr(exc)
	f.ConcreteVolume = floatPtr(con)
	f.BackfillVolume = floatPtr(back)
	f.SteelWeight = floatPtr(steel)
	return f, err
}

// InsertFoundation persists a new foundation, assigning id and created_at.
func (r Repo) InsertFoundation(ctx context.Context, f domain.Foundation) (domain.Foundation, error) {
	f.ID = newID()
	f.CreatedAt = r.now()
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO foundations(id,tower_id,project,revision,description,excavation_volume,concrete_volume,backfill_volume,steel_weight,created_at)
VALUES (?,?,?,?,?,?,?,?,?,?)`,
			f.ID, f.TowerID, f.Project, f.Revision, f.Description,
			nullableFloat(f.ExcavationVolume), nullableFloat(f.ConcreteVolume), nullableFloat(f.BackfillVolume), nullableFloat(f.SteelWeight), f.CreatedAt); err != nil {
			return err
		}
		return r.Events.Append(ctx, tx, "foundation.created", "foundation", f.ID, "", events.EventPayload{"tower_id": f.TowerID})
	})
	if err != nil {
		return domain.Foundation{}, err
	}
	return f, nil
}

func (r Repo) GetFoundation(ctx context.Context, id string) (domain.Foundation, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+foundationColumns+` FROM foundations WHERE id=?`, id)
	f, err := scanFoundation(row)
	if err == sql.ErrNoRows {
		return domain.Foundation{}, domain.NotFoundError{Resource: "foundation", ID: id}
	}
	if err != nil {
		return domain.Foundation{}, err
	}
	return f, nil
}

func (r Repo) ListFoundations(ctx context.Context, in domain.PageInput) (domain.Page[domain.Foundation], error) {
	return listPage(ctx, r.DB, foundationList, in, func(rows *sql.Rows) (domain.Foundation, error) {
		return scanFoundation(rows)
	})
}

// ListTowerFoundations returns every foundation of a tower, oldest first,
// for full embedding in tower output.
func (r Repo) ListTowerFoundations(ctx context.Context, towerID string) ([]domain.Foundation, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+foundationColumns+` FROM foundations WHERE tower_id=? ORDER BY created_at ASC, id ASC`, towerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []domain.Foundation{}
	for rows.Next() {
		f, err := scanFoundation(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, f)
	}
	return res, rows.Err()
}


func (r Repo) UpdateFoundation(ctx context.Context, id string, p domain.FoundationPatch) (domain.Foundation, error) {
	var (
		fields []string
		args   []any
	)
	appendField := func(name string, v any) {
		fields = append(fields, name+"=?")
		args = append(args, v)
	}
	if p.Project != nil {
		appendField("project", *p.Project)
	}
	if p.Revision != nil {
		appendField("revision", *p.Revision)
	}
	if p.Description != nil {
		appendField("description", *p.Description)
	}
	if p.ExcavationVolume != nil {
		appendField("excavation_volume", *p.ExcavationVolume)
	}
	if p.ConcreteVolume != nil {
		appendField("concrete_volume", *p.ConcreteVolume)
	}
	if p.BackfillVolume != nil {
		appendField("backfill_volume", *p.BackfillVolume)
	}
	if p.SteelWeight != nil {
		appendField("steel_weight", *p.SteelWeight)
	}
	if len(fields) == 0 {
		return r.GetFoundation(ctx, id)
	}
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		if err := execPatch(ctx, tx, "foundations", fields, args, id, "foundation"); err != nil {
			return err
		}
		return r.Events.Append(ctx, tx, "foundation.updated", "foundation", id, "", nil)
	})
	if err != nil {
		return domain.Foundation{}, err
	}
	return r.GetFoundation(ctx, id)
}

// DeleteFoundation removes the foundation; deleting a missing id fails with
// NotFound.
func (r Repo) DeleteFoundation(ctx context.Context, id string) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM foundations WHERE id=?`, id)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return domain.NotFoundError{Resource: "foundation", ID: id}
		}
		return r.Events.Append(ctx, tx, "foundation.deleted", "foundation", id, "", nil)
	})
}
