package sqlite

import (
	"context"
	"database/sql"

	repo "github-event-monitor/internal/event/repository"
	"github-event-monitor/internal/model"
)

// CreateEvent inserts a new event row and returns the stored entity.
func (r *implRepository) CreateEvent(ctx context.Context, opt repo.CreateEventOptions) (model.Event, error) {
	const query = `
		INSERT INTO events (id, timestamp, request_id, author, action, from_branch, to_branch)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	e := opt.Event
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.Timestamp,
		nullable(e.RequestID),
		nullable(e.Author),
		string(e.Action),
		nullable(e.FromBranch),
		nullable(e.ToBranch),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEvent"), err)
		return model.Event{}, repo.ErrFailedToInsert
	}
	return e, nil
}

// ListEvents returns all event rows, most recent first. Ties on timestamp
// fall back to insertion order via rowid.
func (r *implRepository) ListEvents(ctx context.Context) ([]model.Event, error) {
	const query = `
		SELECT id, timestamp, request_id, author, action, from_branch, to_branch
		FROM events
		ORDER BY timestamp DESC, rowid DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var (
			e          model.Event
			action     string
			requestID  sql.NullString
			author     sql.NullString
			fromBranch sql.NullString
			toBranch   sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.Timestamp, &requestID, &author, &action, &fromBranch, &toBranch); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListEvents"), err)
			return nil, repo.ErrFailedToList
		}
		e.Action = model.Action(action)
		e.RequestID = fromNullable(requestID)
		e.Author = fromNullable(author)
		e.FromBranch = fromNullable(fromBranch)
		e.ToBranch = fromNullable(toBranch)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListEvents"), err)
		return nil, repo.ErrFailedToList
	}
	return events, nil
}

func nullable(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNullable(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
