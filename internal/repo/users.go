package repo

import (
	"context"
	"database/sql"

	"gridworks/internal/domain"
	"gridworks/internal/events"
)

const userColumns = `id, name, email, password_hash, created_at`

var userList = listSpec{
	table:         "users",
	columns:       userColumns,
	filterColumns: []string{"name", "email"},
	sortColumns: map[string]string{
		"name":       "name",
		"email":      "email",
		"created_at": "created_at",
	},
}

func scanUser(row rowScanner) (domain.User, error) {
	var u domain.User
	var name sql.NullString
	err := row.Scan(&u.ID, &name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	u.Name = strPtr(name)
	return u, err
}

// InsertUser persists a new user, assigning id and created_at. A duplicate
// email fails with Conflict.
func (r Repo) InsertUser(ctx context.Context, u domain.User) (domain.User, error) {
	u.ID = newID()
	u.CreatedAt = r.now()
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO users(id,name,email,password_hash,created_at) VALUES (?,?,?,?,?)`,
			u.ID, nullableStr(u.Name), u.Email, u.PasswordHash, u.CreatedAt); err != nil {
			if isUniqueViolation(err) {
				return domain.ConflictError{Resource: "user", Detail: "email already registered"}
			}
			return err
		}
		return r.Events.Append(ctx, tx, "user.created", "user", u.ID, "", events.EventPayload{"email": u.Email})
	})
	if err != nil {
		return domain.User{}, err
	}
	return u, nil
}

func (r Repo) GetUser(ctx context.Context, id string) (domain.User, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id=?`, id)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return domain.User{}, domain.NotFoundError{Resource: "user", ID: id}
	}
	if err != nil {
		return domain.User{}, err
	}
	return u, nil
}

// GetUserByEmail supports the login path; a missing email is NotFound and
// the caller decides whether that becomes InvalidCredentials.
func (r Repo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email=?`, email)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return domain.User{}, domain.NotFoundError{Resource: "user"}
	}
	if err != nil {
		return domain.User{}, err
	}
	return u, nil
}

func (r Repo) ListUsers(ctx context.Context, in domain.PageInput) (domain.Page[domain.User], error) {
	return listPage(ctx, r.DB, userList, in, func(rows *sql.Rows) (domain.User, error) {
		return scanUser(rows)
	})
}


func (r Repo) UpdateUser(ctx context.Context, id string, p domain.UserPatch) (domain.User, error) {
	var (
		fields []string
		args   []any
	)
	appendField := func(name string, v any) {
		fields = append(fields, name+"=?")
		args = append(args, v)
	}
	if p.Name != nil {
		appendField("name", nullable(*p.Name))
	}
	if p.Email != nil {
		appendField("email", *p.Email)
	}
	if p.PasswordHash != nil {
		appendField("password_hash", *p.PasswordHash)
	}
	if len(fields) == 0 {
		return r.GetUser(ctx, id)
	}
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		if err := execPatch(ctx, tx, "users", fields, args, id, "user"); err != nil {
			if isUniqueViolation(err) {
				return domain.ConflictError{Resource: "user", Detail: "email already registered"}
			}
			return err
		}
		return r.Events.Append(ctx, tx, "user.updated", "user", id, "", nil)
	})
	if err != nil {
		return domain.User{}, err
	}
	return r.GetUser(ctx, id)
}

// DeleteUser removes the user; deleting a missing id fails with NotFound.
func (r Repo) DeleteUser(ctx context.Context, id string) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id=?`, id)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return domain.NotFoundError{Resource: "user", ID: id}
		}
		return r.Events.Append(ctx, tx, "user.deleted", "user", id, "", nil)
	})
}
