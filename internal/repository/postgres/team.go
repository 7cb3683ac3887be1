package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/niteshvshukla2026-sudo/event-task-management/internal/entities"
)

const (
	insertTeamQuery       = `INSERT INTO event_teams(event_id) VALUES($1) RETURNING id, created_at`
	insertTeamMemberQuery = `INSERT INTO event_team_members(team_id, user_id) VALUES ($1, $2)`
	selectTeamByEventQuery = `SELECT id, event_id, created_at FROM event_teams WHERE event_id=$1`
	selectTeamMembersQuery = `SELECT user_id FROM event_team_members WHERE team_id=$1`
	selectTeamsQuery       = `SELECT id, event_id, created_at FROM event_teams ORDER BY created_at`
)

// CreateTeam inserts the team row and its member set in one transaction.
// The UNIQUE constraint on event_id decides the winner of concurrent creates.
func (p *Postgres) CreateTeam(ctx context.Context, eventID string, memberIDs []string) (*entities.EventTeam, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	team := entities.EventTeam{EventID: eventID}
	if err := tx.QueryRow(ctx, insertTeamQuery, eventID).Scan(&team.ID, &team.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return nil, entities.ErrTeamExists
			case "23503":
				return nil, entities.ErrEventNotFound
			}
		}
		return nil, fmt.Errorf("insert team: %w", err)
	}

	for _, userID := range memberIDs {
		if _, err := tx.Exec(ctx, insertTeamMemberQuery, team.ID, userID); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return nil, entities.ErrUserNotFound
			}
			return nil, fmt.Errorf("insert team member: %w", err)
		}
		team.MemberIDs = append(team.MemberIDs, userID)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("team created", "event_id", eventID, "members", len(memberIDs))
	return &team, nil
}

// GetTeamByEvent fetches the team with its member set for an event.
func (p *Postgres) GetTeamByEvent(ctx context.Context, eventID string) (*entities.EventTeam, error) {
	var team entities.EventTeam
	if err := p.db.QueryRow(ctx, selectTeamByEventQuery, eventID).
		Scan(&team.ID, &team.EventID, &team.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("get team: %w", err)
	}

	members, err := p.readTeamMembers(ctx, team.ID)
	if err != nil {
		return nil, err
	}
	team.MemberIDs = members

	return &team, nil
}

// ListTeams returns all teams with their member sets.
func (p *Postgres) ListTeams(ctx context.Context) ([]entities.EventTeam, error) {
	rows, err := p.db.Query(ctx, selectTeamsQuery)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer rows.Close()

	teams := make([]entities.EventTeam, 0)
	for rows.Next() {
		var t entities.EventTeam
		if err := rows.Scan(&t.ID, &t.EventID, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate teams: %w", err)
	}

	for i := range teams {
		members, err := p.readTeamMembers(ctx, teams[i].ID)
		if err != nil {
			return nil, err
		}
		teams[i].MemberIDs = members
	}

	return teams, nil
}

func (p *Postgres) readTeamMembers(ctx context.Context, teamID string) ([]string, error) {
	rows, err := p.db.Query(ctx, selectTeamMembersQuery, teamID)
	if err != nil {
		return nil, fmt.Errorf("get team members: %w", err)
	}
	defer rows.Close()

	members := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		members = append(members, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate members: %w", err)
	}

	return members, nil
}
