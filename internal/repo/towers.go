package repo

import (
	"context"
	"database/sql"

	"gridworks/internal/domain"
	"gridworks/internal/events"
)

const towerColumns = `id, code, tower_number, type, latitude, longitude, height, weight, foundation_date, erection_date, tensioning_date, observations, hidden, work_id, created_at`

var towerList = listSpec{
	table:         "towers",
	columns:       towerColumns,
	filterColumns: []string{"tower_number", "type"},
	sortColumns: map[string]string{
		"code":         "code",
		"tower_number": "tower_number",
		"type":         "type",
		"created_at":   "created_at",
	},
}

func scanTower(row rowScanner) (domain.Tower, error) {
	var t domain.Tower
	var height, weight sql.NullFloat64
	var fdate, edate, tdate, obs sql.NullString
	err := row.Scan(&t.ID, &t.Code, &t.TowerNumber, &t.Type, &t.Latitude, &t.Longitude,
		&height, &weight, &fdate, &edate, &tdate, &obs, &t.Hidden, &t.WorkID, &t.CreatedAt)
	t.Height = floatPtr(height)
	t.Weight = floatPtr(weight)
	t.FoundationDate = strPtr(fdate)
	t.ErectionDate = strPtr(edate)
	t.TensioningDate = strPtr(tdate)
	t.Observations = strPtr(obs)
	return t, err
}

// InsertTower persists a new tower, assigning id and created_at.
func (r Repo) InsertTower(ctx context.Context, t domain.Tower) (domain.Tower, error) {
	t.ID = newID()
	t.CreatedAt = r.now()
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO towers(id,code,tower_number,type,latitude,longitude,height,weight,foundation_date,erection_date,tensioning_date,observations,hidden,work_id,created_at)
VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
			t.ID, t.Code, t.TowerNumber, t.Type, t.Latitude, t.Longitude,
			nullableFloat(t.Height), nullableFloat(t.Weight), nullableStr(t.FoundationDate), nullableStr(t.ErectionDate),
			nullableStr(t.TensioningDate), nullableStr(t.Observations), t.Hidden, t.WorkID, t.CreatedAt); err != nil {
			return err
		}
		return r.Events.Append(ctx, tx, "tower.created", "tower", t.ID, "", events.EventPayload{"tower_number": t.TowerNumber})
	})
	if err != nil {
		return domain.Tower{}, err
	}
	return t, nil
}

func (r Repo) GetTower(ctx context.Context, id string) (domain.Tower, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+towerColumns+` FROM towers WHERE id=?`, id)
	t, err := scanTower(row)
	if err == sql.ErrNoRows {
		return domain.Tower{}, domain.NotFoundError{Resource: "tower", ID: id}
	}
	if err != nil {
		return domain.Tower{}, err
	}
	return t, nil
}

func (r Repo) ListTowers(ctx context.Context, in domain.PageInput) (domain.Page[domain.Tower], error) {
	return listPage(ctx, r.DB, towerList, in, func(rows *sql.Rows) (domain.Tower, error) {
		return scanTower(rows)
	})
}


func (r Repo) UpdateTower(ctx context.Context, id string, p domain.TowerPatch) (domain.Tower, error) {
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
	if p.TowerNumber != nil {
		appendField("tower_number", *p.TowerNumber)
	}
	if p.Type != nil {
		appendField("type", *p.Type)
	}
	if p.Latitude != nil {
		appendField("latitude", *p.Latitude)
	}
	if p.Longitude != nil {
		appendField("longitude", *p.Longitude)
	}
	if p.Height != nil {
		appendField("height", *p.Height)
	}
	if p.Weight != nil {
		appendField("weight", *p.Weight)
	}
	if p.FoundationDate != nil {
		appendField("foundation_date", nullable(*p.FoundationDate))
	}
	if p.ErectionDate != nil {
		appendField("erection_date", nullable(*p.ErectionDate))
	}
	if p.TensioningDate != nil {
		appendField("tensioning_date", nullable(*p.TensioningDate))
	}
	if p.Observations != nil {
		appendField("observations", nullable(*p.Observations))
	}
	if p.Hidden != nil {
		appendField("hidden", *p.Hidden)
	}
	if p.WorkID != nil {
		appendField("work_id", *p.WorkID)
	}
	if len(fields) == 0 {
		return r.GetTower(ctx, id)
	}
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		if err := execPatch(ctx, tx, "towers", fields, args, id, "tower"); err != nil {
			return err
		}
		return r.Events.Append(ctx, tx, "tower.updated", "tower", id, "", nil)
	})
	if err != nil {
		return domain.Tower{}, err
	}
	return r.GetTower(ctx, id)
}

// DeleteTower removes the tower and, through the schema's cascade, its
// foundations. Deleting a missing id fails with NotFound.
func (r Repo) DeleteTower(ctx context.Context, id string) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM towers WHERE id=?`, id)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return domain.NotFoundError{Resource: "tower", ID: id}
		}
		return r.Events.Append(ctx, tx, "tower.deleted", "tower", id, "", nil)
	})
}
