package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/niteshvshukla2026-sudo/event-task-management/internal/entities"
)

const (
	insertEventQuery = `
INSERT INTO events(title, venue, description, created_by)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at`
	selectEventQuery  = `SELECT id, title, venue, description, created_by, created_at FROM events WHERE id=$1`
	selectEventsQuery = `SELECT id, title, venue, description, created_by, created_at FROM events ORDER BY created_at DESC`
	selectMemberEventsQuery = `
SELECT e.id, e.title, e.venue, e.description, e.created_by, e.created_at
FROM events e
JOIN event_teams t ON t.event_id = e.id
JOIN event_team_members m ON m.team_id = t.id
WHERE m.user_id = $1
ORDER BY e.created_at DESC`
)

// CreateEvent inserts an event.
func (p *Postgres) CreateEvent(ctx context.Context, event entities.Event) (*entities.Event, error) {
	err := p.db.QueryRow(ctx, insertEventQuery, event.Title, event.Venue, event.Description, event.CreatedBy).
		Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		p.log.Errorw("failed to insert event", "error", err, "title", event.Title)
		return nil, fmt.Errorf("insert event: %w", err)
	}

	p.log.Infow("event created", "event_id", event.ID, "title", event.Title)
	return &event, nil
}

// GetEvent fetches an event by id.
func (p *Postgres) GetEvent(ctx context.Context, eventID string) (*entities.Event, error) {
	var e entities.Event
	err := p.db.QueryRow(ctx, selectEventQuery, eventID).
		Scan(&e.ID, &e.Title, &e.Venue, &e.Description, &e.CreatedBy, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return nil, entities.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return &e, nil
}

// ListEvents returns all events, newest first.
func (p *Postgres) ListEvents(ctx context.Context) ([]entities.Event, error) {
	return p.queryEvents(ctx, selectEventsQuery)
}

// ListEventsForMember returns events whose team contains the user.
func (p *Postgres) ListEventsForMember(ctx context.Context, userID string) ([]entities.Event, error) {
	return p.queryEvents(ctx, selectMemberEventsQuery, userID)
}

func (p *Postgres) queryEvents(ctx context.Context, query string, args ...any) ([]entities.Event, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	events := make([]entities.Event, 0)
	for rows.Next() {
		var e entities.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Venue, &e.Description, &e.CreatedBy, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}

	return events, nil
}
