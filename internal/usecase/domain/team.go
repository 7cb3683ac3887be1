// Package domain contains application usecases orchestrating domain logic by team.
package domain

import (
	"context"
	"fmt"

	"github.com/niteshvshukla2026-sudo/event-task-management/internal/entities"
)

// CreateTeam creates the event's team and notifies every member.
// The storage layer enforces at most one team per event; the loser of a
// concurrent create gets ErrTeamExists.
func (u *Usecase) CreateTeam(ctx context.Context, caller entities.AuthContext, eventID string, memberIDs []string) (*entities.EventTeam, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if !caller.Role.IsAdmin() {
		return nil, entities.ErrForbidden
	}
	if eventID == "" || len(memberIDs) == 0 {
		return nil, fmt.Errorf("%w: event and members are required", entities.ErrInvalidArgument)
	}

	if _, err := u.repo.GetEvent(ctx, eventID); err != nil {
		return nil, err
	}

	team, err := u.repo.CreateTeam(ctx, eventID, dedupe(memberIDs))
	if err != nil {
		return nil, err
	}

	for _, memberID := range team.MemberIDs {
		u.notify(memberID, entities.NotifyTeamCreated, "You have been added to a new event team")
	}

	u.log.Infow("team created", "event_id", eventID, "members", len(team.MemberIDs))
	return team, nil
}

// dedupe drops repeated ids, keeping first-seen order. Membership is a
// set; a repeated id must not break the storage-level primary key.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Teams returns all teams with their member sets.
func (u *Usecase) Teams(ctx context.Context) ([]entities.EventTeam, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListTeams(ctx)
}

// TeamMembers returns the member accounts of an event's team.
func (u *Usecase) TeamMembers(ctx context.Context, eventID string) ([]entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if eventID == "" {
		return nil, fmt.Errorf("%w: event is required", entities.ErrInvalidArgument)
	}

	team, err := u.repo.GetTeamByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	members := make([]entities.User, 0, len(team.MemberIDs))
	for _, memberID := range team.MemberIDs {
		user, err := u.repo.GetUser(ctx, memberID)
		if err != nil {
			return nil, err
		}
		members = append(members, *user)
	}

	return members, nil
}
