package repo

import (
	"context"
	"database/sql"

	"gridworks/internal/domain"
	"gridworks/internal/events"
)

const equipmentColumns = `id, registration, model, manufacturer, license_plate, provider, status, team_id, created_at`

var equipmentList = listSpec{
	table:         "equipments",
	columns:       equipmentColumns,
	filterColumns: []string{"registration", "model", "manufacturer", "license_plate", "provider"},
	sortColumns: map[string]string{
		"registration":  "registration",
		"model":         "model",
		"manufacturer":  "manufacturer",
		"license_plate": "license_plate",
		"provider":      "provider",
		"status":        "status",
		"created_at":    "created_at",
	},
}

func scanEquipment(row rowScanner) (domain.Equipment, error) {
	var e domain.Equipment
	var teamID sql.NullString
	err := row.Scan(&e.ID, &e.Registration, &e.Model, &e.Manufacturer, &e.LicensePlate, &e.Provider, &e.Status, &teamID, &e.CreatedAt)
	e.TeamID = strPtr(teamID)
	return e, err
}

// InsertEquipment persists a new equipment, assigning id and created_at.
func (r Repo) InsertEquipment(ctx context.Context, e domain.Equipment) (domain.Equipment, error) {
	e.ID = newID()
	e.CreatedAt = r.now()
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO equipments(id,registration,model,manufacturer,license_plate,provider,status,team_id,created_at) VALUES (?,?,?,?,?,?,?,?,?)`,
			e.ID, e.Registration, e.Model, e.Manufacturer, e.LicensePlate, e.Provider, string(e.Status), nullableStr(e.TeamID), e.CreatedAt); err != nil {
			return err
		}
		return r.Events.Append(ctx, tx, "equipment.created", "equipment", e.ID, "", events.EventPayload{"registration": e.Registration})
	})
	if err != nil {
		return domain.Equipment{}, err
	}
	return e, nil
}

func (r Repo) GetEquipment(ctx context.Context, id string) (domain.Equipment, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+equipmentColumns+` FROM equipments WHERE id=?`, id)
	e, err := scanEquipment(row)
	if err == sql.ErrNoRows {
		return domain.Equipment{}, domain.NotFoundError{Resource: "equipment", ID: id}
	}
	if err != nil {
		return domain.Equipment{}, err
	}
	return e, nil
}

func (r Repo) ListEquipments(ctx context.Context, in domain.PageInput) (domain.Page[domain.Equipment], error) {
	return listPage(ctx, r.DB, equipmentList, in, func(rows *sql.Rows) (domain.Equipment, error) {
		return scanEquipment(rows)
	})
}


func (r Repo) UpdateEquipment(ctx context.Context, id string, p domain.EquipmentPatch) (domain.Equipment, error) {
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
	if p.Model != nil {
		appendField("model", *p.Model)
	}
	if p.Manufacturer != nil {
		appendField("manufacturer", *p.Manufacturer)
	}
	if p.LicensePlate != nil {
		appendField("license_plate", *p.LicensePlate)
	}
	if p.Provider != nil {
		appendField("provider", *p.Provider)
	}
	if p.Status != nil {
		appendField("status", string(*p.Status))
	}
	if p.TeamID != nil {
		appendField("team_id", nullable(*p.TeamID))
	}
	if len(fields) == 0 {
		return r.GetEquipment(ctx, id)
	}
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		if err := execPatch(ctx, tx, "equipments", fields, args, id, "equipment"); err != nil {
			return err
		}
		return r.Events.Append(ctx, tx, "equipment.updated", "equipment", id, "", nil)
	})
	if err != nil {
		return domain.Equipment{}, err
	}
	return r.GetEquipment(ctx, id)
}

// DeleteEquipment removes the equipment; deleting a missing id fails with
// NotFound.
func (r Repo) DeleteEquipment(ctx context.Context, id string) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM equipments WHERE id=?`, id)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return domain.NotFoundError{Resource: "equipment", ID: id}
		}
		return r.Events.Append(ctx, tx, "equipment.deleted", "equipment", id, "", nil)
	})
}
