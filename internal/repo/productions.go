package repo

import (
	"context"
	"database/sql"

	"gridworks/internal/domain"
	"gridworks/internal/events"
)

const productionColumns = `id, status, comments, start_time, final_time, task_id, work_id, created_at`

var productionList = listSpec{
	table:         "productions",
	columns:       productionColumns,
	filterColumns: []string{"status", "comments"},
	sortColumns: map[string]string{
		"status":     "status",
		"start_time": "start_time",
		"final_time": "final_time",
		"created_at": "created_at",
	},
}

func scanProduction(row rowScanner) (domain.Production, error) {
	var p domain.Production
	var comments, start, final sql.NullString
	err := row.Scan(&p.ID, &p.Status, &comments, &start, &final, &p.TaskID, &p.WorkID, &p.CreatedAt)
	p.Comments = strPtr(comments)
	p.StartTime = strPtr(start)
	p.FinalTime = strPtr(final)
	return p, err
}

func replaceProductionRefs(ctx context.Context, tx *sql.Tx, table, column, productionID string, ids []string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE production_id=?`, productionID); err != nil {
		return err
	}
	for _, id := range ids {
		if _, err := tx.ExecContext(ctx, `INSERT INTO `+table+`(production_id,`+column+`) VALUES (?,?)`, productionID, id); err != nil {
			if isUniqueViolation(err) {
				return domain.ConflictError{Resource: "production", Detail: "duplicate " + column + " " + id}
			}
			return err
		}
	}
	return nil
}

func (r Repo) productionRefs(ctx context.Context, table, column, productionID string) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+column+` FROM `+table+` WHERE production_id=? ORDER BY `+column+` ASC`, productionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r Repo) loadProductionRefs(ctx context.Context, p *domain.Production) error {
	teams, err := r.productionRefs(ctx, "production_teams", "team_id", p.ID)
	if err != nil {
		return err
	}
	towers, err := r.productionRefs(ctx, "production_towers", "tower_id", p.ID)
	if err != nil {
		return err
	}
	p.TeamIDs = teams
	p.TowerIDs = towers
	return nil
}

// InsertProduction persists a new production together with its team and
// tower references, assigning id and created_at.
func (r Repo) InsertProduction(ctx context.Context, p domain.Production) (domain.Production, error) {
	p.ID = newID()
	p.CreatedAt = r.now()
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO productions(id,status,comments,start_time,final_time,task_id,work_id,created_at) VALUES (?,?,?,?,?,?,?,?)`,
			p.ID, string(p.Status), nullableStr(p.Comments), nullableStr(p.StartTime), nullableStr(p.FinalTime), p.TaskID, p.WorkID, p.CreatedAt); err != nil {
			return err
		}
		if err := replaceProductionRefs(ctx, tx, "production_teams", "team_id", p.ID, p.TeamIDs); err != nil {
			return err
		}
		if err := replaceProductionRefs(ctx, tx, "production_towers", "tower_id", p.ID, p.TowerIDs); err != nil {
			return err
		}
		return r.Events.Append(ctx, tx, "production.created", "production", p.ID, "", events.EventPayload{"task_id": p.TaskID})
	})
	if err != nil {
		return domain.Production{}, err
	}
	if p.TeamIDs == nil {
		p.TeamIDs = []string{}
	}
	if p.TowerIDs == nil {
		p.TowerIDs = []string{}
	}
	return p, nil
}

func (r Repo) GetProduction(ctx context.Context, id string) (domain.Production, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+productionColumns+` FROM productions WHERE id=?`, id)
	p, err := scanProduction(row)
	if err == sql.ErrNoRows {
		return domain.Production{}, domain.NotFoundError{Resource: "production", ID: id}
	}
	if err != nil {
		return domain.Production{}, err
	}
	if err := r.loadProductionRefs(ctx, &p); err != nil {
		return domain.Production{}, err
	}
	return p, nil
}

func (r Repo) ListProductions(ctx context.Context, in domain.PageInput) (domain.Page[domain.Production], error) {
	page, err := listPage(ctx, r.DB, productionList, in, func(rows *sql.Rows) (domain.Production, error) {
		return scanProduction(rows)
	})
	if err != nil {
		return page, err
	}
	for i := range page.Items {
		if err := r.loadProductionRefs(ctx, &page.Items[i]); err != nil {
			return page, err
		}
	}
	return page, nil
}


func (r Repo) UpdateProduction(ctx context.Context, id string, p domain.ProductionPatch) (domain.Production, error) {
	var (
		fields []string
		args   []any
	)
	appendField := func(name string, v any) {
		fields = append(fields, name+"=?")
		args = append(args, v)
	}
	if p.Status != nil {
		appendField("status", string(*p.Status))
	}
	if p.Comments != nil {
		appendField("comments", nullable(*p.Comments))
	}
	if p.StartTime != nil {
		appendField("start_time", nullable(*p.StartTime))
	}
	if p.FinalTime != nil {
		appendField("final_time", nullable(*p.FinalTime))
	}
	if p.TaskID != nil {
		appendField("task_id", *p.TaskID)
	}
	if p.WorkID != nil {
		appendField("work_id", *p.WorkID)
	}
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		if len(fields) > 0 {
			if err := execPatch(ctx, tx, "productions", fields, args, id, "production"); err != nil {
				return err
			}
		} else {
			var one int
			if err := tx.QueryRowContext(ctx, `SELECT 1 FROM productions WHERE id=?`, id).Scan(&one); err == sql.ErrNoRows {
				return domain.NotFoundError{Resource: "production", ID: id}
			} else if err != nil {
				return err
			}
		}
		if p.TeamIDs != nil {
			if err := replaceProductionRefs(ctx, tx, "production_teams", "team_id", id, p.TeamIDs); err != nil {
				return err
			}
		}
		if p.TowerIDs != nil {
			if err := replaceProductionRefs(ctx, tx, "production_towers", "tower_id", id, p.TowerIDs); err != nil {
				return err
			}
		}
		return r.Events.Append(ctx, tx, "production.updated", "production", id, "", nil)
	})
	if err != nil {
		return domain.Production{}, err
	}
	return r.GetProduction(ctx, id)
}

// DeleteProduction removes the production and its reference rows; deleting a
// missing id fails with NotFound.
func (r Repo) DeleteProduction(ctx context.Context, id string) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM productions WHERE id=?`, id)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return domain.NotFoundError{Resource: "production", ID: id}
		}
		return r.Events.Append(ctx, tx, "production.deleted", "production", id, "", nil)
	})
}
