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
	insertUserQuery = `
INSERT INTO users(name, mobile, password_hash, role)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at`
	selectUserQuery         = `SELECT id, name, mobile, password_hash, role, created_at FROM users WHERE id=$1`
	selectUserByMobileQuery = `SELECT id, name, mobile, password_hash, role, created_at FROM users WHERE mobile=$1`
	selectUsersByRoleQuery  = `SELECT id, name, mobile, password_hash, role, created_at FROM users WHERE role = ANY($1::text[]) ORDER BY created_at`
)

// CreateUser inserts a user; duplicate mobile maps to ErrMobileExists.
func (p *Postgres) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	err := p.db.QueryRow(ctx, insertUserQuery, user.Name, user.Mobile, user.PasswordHash, string(user.Role)).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, entities.ErrMobileExists
		}
		p.log.Errorw("failed to insert user", "error", err, "mobile", user.Mobile)
		return nil, fmt.Errorf("insert user: %w", err)
	}

	p.log.Infow("user created", "user_id", user.ID, "role", user.Role)
	return &user, nil
}

// GetUser fetches a user by id.
func (p *Postgres) GetUser(ctx context.Context, userID string) (*entities.User, error) {
	return p.scanUser(p.db.QueryRow(ctx, selectUserQuery, userID))
}

// GetUserByMobile fetches a user by mobile number.
func (p *Postgres) GetUserByMobile(ctx context.Context, mobile string) (*entities.User, error) {
	return p.scanUser(p.db.QueryRow(ctx, selectUserByMobileQuery, mobile))
}

// ListUsersByRole returns users whose role is in the given set.
func (p *Postgres) ListUsersByRole(ctx context.Context, roles ...entities.Role) ([]entities.User, error) {
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, string(r))
	}

	rows, err := p.db.Query(ctx, selectUsersByRoleQuery, names)
	if err != nil {
		return nil, fmt.Errorf("list users by role: %w", err)
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		var u entities.User
		var role string
		if err := rows.Scan(&u.ID, &u.Name, &u.Mobile, &u.PasswordHash, &role, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.Role = entities.Role(role)
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}

func (p *Postgres) scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	var role string
	if err := row.Scan(&u.ID, &u.Name, &u.Mobile, &u.PasswordHash, &role, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	u.Role = entities.Role(role)
	return &u, nil
}
