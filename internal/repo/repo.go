package repo

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"gridworks/internal/domain"
	"gridworks/internal/events"
)

// Repo is the production entity store, backed by SQLite. Mutations run in a
// transaction that also appends an audit event, so the event log never
// references a write that did not commit.
type Repo struct {
	DB     *sql.DB
	Events events.Writer
	Now    func() time.Time
}

func New(db *sql.DB) Repo {
	return Repo{
		DB:     db,
		Events: events.Writer{DB: db},
		Now:    time.Now,
	}
}

func (r Repo) now() string {
	if r.Now != nil {
		return r.Now().UTC().Format(time.RFC3339)
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func newID() string {
	return uuid.NewString()
}

// naturalOrder is the documented default listing order applied whenever a
// PageInput carries no sort field: newest first, id as a stable tie-break.
const naturalOrder = "created_at DESC, id ASC"

// listSpec declares how one table is listed: which columns a free-text
// filter matches against and which external sort names are accepted. Sort
// names outside the map fall back to naturalOrder rather than erroring, so
// a PageInput can never make List fail.
type listSpec struct {
	table         string
	columns       string
	filterColumns []string
	sortColumns   map[string]string
	where         string
	whereArgs     []any
}

func (s listSpec) clauses(in domain.PageInput) (string, []any) {
	var preds []string
	args := append([]any{}, s.whereArgs...)
	if s.where != "" {
		preds = append(preds, s.where)
	}
	if in.Filter != "" && len(s.filterColumns) > 0 {
		likes := make([]string, len(s.filterColumns))
		pattern := "%" + in.Filter + "%"
		for i, col := range s.filterColumns {
			likes[i] = col + " LIKE ?"
			args = append(args, pattern)
		}
		preds = append(preds, "("+strings.Join(likes, " OR ")+")")
	}
	if len(preds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(preds, " AND "), args
}

func (s listSpec) order(in domain.PageInput) string {
	col, ok := s.sortColumns[in.Sort]
	if in.Sort == "" || !ok {
		return naturalOrder
	}
	dir := "ASC"
	if in.SortDir == domain.SortDesc {
		dir = "DESC"
	}
	return col + " " + dir + ", id ASC"
}

// listPage runs the count and the page select inside one transaction so
// total and items come from a consistent snapshot.
func listPage[T any](ctx context.Context, db *sql.DB, s listSpec, in domain.PageInput, scan func(*sql.Rows) (T, error)) (domain.Page[T], error) {
	where, args := s.clauses(in)
	page := domain.Page[T]{Items: []T{}}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return page, err
	}
	defer tx.Rollback()

	countQ := "SELECT COUNT(*) FROM " + s.table + where
	if err := tx.QueryRowContext(ctx, countQ, args...).Scan(&page.Total); err != nil {
		return page, fmt.Errorf("count %s: %w", s.table, err)
	}

	itemsQ := "SELECT " + s.columns + " FROM " + s.table + where +
		" ORDER BY " + s.order(in) + " LIMIT ? OFFSET ?"
	rows, err := tx.QueryContext(ctx, itemsQ, append(args, in.PerPage, in.Offset())...)
	if err != nil {
		return page, fmt.Errorf("list %s: %w", s.table, err)
	}
	defer rows.Close()
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return page, err
		}
		page.Items = append(page.Items, item)
	}
	if err := rows.Err(); err != nil {
		return page, err
	}
	return page, tx.Commit()
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows so scan helpers
// serve single-row gets and list pages alike.
type rowScanner interface {
	Scan(dest ...any) error
}

// execPatch applies a dynamic partial update; zero affected rows means the
// target does not exist.
func execPatch(ctx context.Context, tx *sql.Tx, table string, fields []string, args []any, id, resource string) error {
	args = append(args, id)
	res, err := tx.ExecContext(ctx, "UPDATE "+table+" SET "+strings.Join(fields, ",")+" WHERE id=?", args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: resource, ID: id}
	}
	return nil
}

// inTx wraps a mutation in a transaction with rollback on error.
func (r Repo) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func nullable(v string) any {
	if v == "" {
		return nil
	}
	return v
}

func nullableStr(p *string) any {
	if p == nil || *p == "" {
		return nil
	}
	return *p
}

func nullableFloat(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

func strPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func floatPtr(nf sql.NullFloat64) *float64 {
	if !nf.Valid {
		return nil
	}
	f := nf.Float64
	return &f
}
