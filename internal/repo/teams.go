package repo

import (
	"context"
	"database/sql"

	"gridworks/internal/domain"
	"gridworks/internal/events"
)

const teamColumns = `id, name, created_at`

var teamList = listSpec{
	table:         "teams",
	columns:       teamColumns,
	filterColumns: []string{"name"},
	sortColumns: map[string]string{
		"name":       "name",
		"created_at": "created_at",
	},
}

func scanTeam(row rowScanner) (domain.Team, error) {
	var t domain.Team
	err := row.Scan(&t.ID, &t.Name, &t.CreatedAt)
	return t, err
}

// assignMembers points the given member rows at teamID. A member id that no
// longer exists surfaces as an invalid reference instead of silently
// assigning a subset.
func assignMembers(ctx context.Context, tx *sql.Tx, table, resource, teamID string, ids []string) error {
	if _, err := tx.ExecContext(ctx, `UPDATE `+table+` SET team_id=NULL WHERE team_id=?`, teamID); err != nil {
		return err
	}
	for _, id := range ids {
		res, err := tx.ExecContext(ctx, `UPDATE `+table+` SET team_id=? WHERE id=?`, teamID, id)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return domain.InvalidReferenceError{Resource: resource, ID: id}
		}
	}
	return nil
}

// InsertTeam persists a new team and assigns the given members to it, all in
// one transaction so a bad member id leaves no partial write behind.
func (r Repo) InsertTeam(ctx context.Context, name string, employeeIDs, equipmentIDs []string) (domain.Team, error) {
	t := domain.Team{
		ID:        newID(),
		Name:      name,
		CreatedAt: r.now(),
	}
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO teams(id,name,created_at) VALUES (?,?,?)`,
			t.ID, t.Name, t.CreatedAt); err != nil {
			return err
		}
		if err := assignMembers(ctx, tx, "employees", "employee", t.ID, employeeIDs); err != nil {
			return err
		}
		if err := assignMembers(ctx, tx, "equipments", "equipment", t.ID, equipmentIDs); err != nil {
			return err
		}
		return r.Events.Append(ctx, tx, "team.created", "team", t.ID, "", events.EventPayload{"name": t.Name})
	})
	if err != nil {
		return domain.Team{}, err
	}
	return t, nil
}

func (r Repo) GetTeam(ctx context.Context, id string) (domain.Team, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+teamColumns+` FROM teams WHERE id=?`, id)
	t, err := scanTeam(row)
	if err == sql.ErrNoRows {
		return domain.Team{}, domain.NotFoundError{Resource: "team", ID: id}
	}
	if err != nil {
		return domain.Team{}, err
	}
	return t, nil
}

func (r Repo) ListTeams(ctx context.Context, in domain.PageInput) (domain.Page[domain.Team], error) {
	return listPage(ctx, r.DB, teamList, in, func(rows *sql.Rows) (domain.Team, error) {
		return scanTeam(rows)
	})
}


func (r Repo) UpdateTeam(ctx context.Context, id string, p domain.TeamPatch) (domain.Team, error) {
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		if p.Name != nil {
			if err := execPatch(ctx, tx, "teams", []string{"name=?"}, []any{*p.Name}, id, "team"); err != nil {
				return err
			}
		} else {
			var one int
			if err := tx.QueryRowContext(ctx, `SELECT 1 FROM teams WHERE id=?`, id).Scan(&one); err == sql.ErrNoRows {
				return domain.NotFoundError{Resource: "team", ID: id}
			} else if err != nil {
				return err
			}
		}
		if p.EmployeeIDs != nil {
			if err := assignMembers(ctx, tx, "employees", "employee", id, p.EmployeeIDs); err != nil {
				return err
			}
		}
		if p.EquipmentIDs != nil {
			if err := assignMembers(ctx, tx, "equipments", "equipment", id, p.EquipmentIDs); err != nil {
				return err
			}
		}
		return r.Events.Append(ctx, tx, "team.updated", "team", id, "", nil)
	})
	if err != nil {
		return domain.Team{}, err
	}
	return r.GetTeam(ctx, id)
}

// DeleteTeam removes the team; member rows keep existing with team_id
// cleared by the schema's ON DELETE SET NULL. Deleting a missing id fails
// with NotFound.
func (r Repo) DeleteTeam(ctx context.Context, id string) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM teams WHERE id=?`, id)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return domain.NotFoundError{Resource: "team", ID: id}
		}
		return r.Events.Append(ctx, tx, "team.deleted", "team", id, "", nil)
	})
}

// ListTeamEmployees returns the employees currently assigned to the team,
// in a stable order for output.
func (r Repo) ListTeamEmployees(ctx context.Context, teamID string) ([]domain.Employee, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+employeeColumns+` FROM employees WHERE team_id=? ORDER BY full_name ASC, id ASC`, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []domain.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, e)
	}
	return res, rows.Err()
}

// ListTeamEquipments returns the equipment currently assigned to the team,
// in a stable order for output.
func (r Repo) ListTeamEquipments(ctx context.Context, teamID string) ([]domain.Equipment, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+equipmentColumns+` FROM equipments WHERE team_id=? ORDER BY model ASC, id ASC`, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []domain.Equipment{}
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, e)
	}
	return res, rows.Err()
}
