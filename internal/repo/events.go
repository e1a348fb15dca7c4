package repo

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"gridworks/internal/domain"
)

// LatestEvents returns the newest audit events, optionally narrowed by
// event type, entity kind or entity id. Events are append-only; they are
// read here and written by events.Writer inside each mutation.
func (r Repo) LatestEvents(ctx context.Context, limit int, evtType, entityKind, entityID string) ([]domain.Event, error) {
	clauses := []string{"1=1"}
	var args []any
	if evtType != "" {
		clauses = append(clauses, "type=?")
		args = append(args, evtType)
	}
	if entityKind != "" {
		clauses = append(clauses, "entity_kind=?")
		args = append(args, entityKind)
	}
	if entityID != "" {
		clauses = append(clauses, "entity_id=?")
		args = append(args, entityID)
	}
	query := fmt.Sprintf(`SELECT id,ts,type,entity_kind,entity_id,actor_id,payload_json FROM events WHERE %s ORDER BY id DESC LIMIT ?`,
		strings.Join(clauses, " AND "))
	args = append(args, limit)
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []domain.Event
	for rows.Next() {
		var e domain.Event
		var entity, actor sql.NullString
		if err := rows.Scan(&e.ID, &e.TS, &e.Type, &e.EntityKind, &entity, &actor, &e.Payload); err != nil {
			return nil, err
		}
		if entity.Valid {
			e.EntityID = &entity.String
		}
		if actor.Valid {
			e.ActorID = &actor.String
		}
		res = append(res, e)
	}
	return res, rows.Err()
}
