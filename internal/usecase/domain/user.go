// Package domain contains application usecases orchestrating domain logic by user.
package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/niteshvshukla2026-sudo/event-task-management/internal/entities"
)

// Register creates an account. Role defaults to USER when empty.
func (u *Usecase) Register(ctx context.Context, name, mobile, password string, role entities.Role) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if mobile == "" || password == "" {
		return nil, fmt.Errorf("%w: mobile and password are required", entities.ErrInvalidArgument)
	}
	if role == "" {
		role = entities.RoleUser
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", entities.ErrInvalidArgument, role)
	}

	hash, err := u.auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user, err := u.repo.CreateUser(ctx, entities.User{
		Name:         name,
		Mobile:       mobile,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		return nil, err
	}

	u.log.Infow("user registered", "user_id", user.ID, "role", user.Role)
	return user, nil
}

// Login verifies credentials and issues a bearer token.
func (u *Usecase) Login(ctx context.Context, mobile, password string) (string, *entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if mobile == "" || password == "" {
		return "", nil, fmt.Errorf("%w: mobile and password are required", entities.ErrInvalidArgument)
	}

	user, err := u.repo.GetUserByMobile(ctx, mobile)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return "", nil, entities.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !u.auth.CheckPassword(user.PasswordHash, password) {
		return "", nil, entities.ErrInvalidCredentials
	}

	token, err := u.auth.IssueToken(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// CreateUser creates an account on behalf of an administrator.
func (u *Usecase) CreateUser(ctx context.Context, caller entities.AuthContext, name, mobile, password string, role entities.Role) (*entities.User, error) {
	if !caller.Role.IsAdmin() {
		return nil, entities.ErrForbidden
	}
	return u.Register(ctx, name, mobile, password, role)
}

// Users lists regular accounts. Admin only.
func (u *Usecase) Users(ctx context.Context, caller entities.AuthContext) ([]entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if !caller.Role.IsAdmin() {
		return nil, entities.ErrForbidden
	}
	return u.repo.ListUsersByRole(ctx, entities.RoleUser)
}

// Me returns the calling user's account.
func (u *Usecase) Me(ctx context.Context, caller entities.AuthContext) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.GetUser(ctx, caller.UserID)
}
