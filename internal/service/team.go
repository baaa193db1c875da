// internal/service/team.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/campusloop/campusloop/internal/domain"
	"github.com/campusloop/campusloop/internal/model"
	"github.com/campusloop/campusloop/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TeamRegistry owns Team entities and the invitation/membership state
// machine: none -> pending -> accepted|declined, with declined permitting a
// fresh invite.
type TeamRegistry struct {
	teams    repository.TeamRepositoryIface
	users    repository.UserRepositoryIface
	notifier *InvitationNotifier
	validate *validator.Validate
	logger   *slog.Logger
}

func NewTeamRegistry(
	teams repository.TeamRepositoryIface,
	users repository.UserRepositoryIface,
	notifier *InvitationNotifier,
	logger *slog.Logger,
) *TeamRegistry {
	return &TeamRegistry{
		teams:    teams,
		users:    users,
		notifier: notifier,
		validate: validator.New(),
		logger:   logger,
	}
}

type CreateTeamInput struct {
	LeaderID   uuid.UUID `json:"-" validate:"required"`
	Name       string    `json:"name" validate:"required,min=2,max=100"`
	MaxMembers int       `json:"max_members" validate:"required,min=1"`
}

// CreateTeam creates a team with the leader as its first member entry.
func (s *TeamRegistry) CreateTeam(ctx context.Context, input CreateTeamInput) (*model.Team, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	team := &model.Team{
		Name:       input.Name,
		LeaderID:   input.LeaderID,
		MaxMembers: input.MaxMembers,
	}
	if err := s.teams.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("creating team: %w", err)
	}

	s.logger.Info("team created", "team_id", team.ID, "leader_id", team.LeaderID)
	return team, nil
}

// GetTeam returns the team with members and invitations loaded.
func (s *TeamRegistry) GetTeam(ctx context.Context, teamID uuid.UUID) (*model.Team, error) {
	return s.teams.FindByID(ctx, teamID)
}

type InviteMemberInput struct {
	TeamID       uuid.UUID
	ActorID      uuid.UUID
	TargetUserID uuid.UUID
	Message      string
}

// InviteMember appends a pending invitation for the target user and triggers
// the notifier. Leader-only.
func (s *TeamRegistry) InviteMember(ctx context.Context, input InviteMemberInput) (*model.TeamInvitation, error) {
	team, err := s.teams.FindByID(ctx, input.TeamID)
	if err != nil {
		return nil, err
	}
	if team.LeaderID != input.ActorID {
		return nil, domain.ErrNotAuthorized
	}

	target, err := s.users.FindByID(ctx, input.TargetUserID)
	if err != nil {
		return nil, err
	}
	if !target.IsActive {
		return nil, domain.ErrUserInactive
	}

	inv := &model.TeamInvitation{
		TeamID:      input.TeamID,
		UserID:      input.TargetUserID,
		Status:      model.InvitationPending,
		Message:     input.Message,
		InvitedByID: input.ActorID,
	}
	if err := s.teams.AddInvitation(ctx, inv); err != nil {
		return nil, err
	}

	s.notifier.InviteCreated(ctx, team, inv)

	s.logger.Info("member invited",
		"team_id", input.TeamID, "user_id", input.TargetUserID, "invited_by", input.ActorID)
	return inv, nil
}

// RespondInvite resolves the user's pending invitation. Accepting inserts the
// accepted member entry, subject to the seat cap; declining leaves the seat
// untouched and the user re-invitable.
func (s *TeamRegistry) RespondInvite(ctx context.Context, teamID, userID uuid.UUID, accept bool) (*model.Team, error) {
	if accept {
		if _, err := s.teams.AcceptInvitation(ctx, teamID, userID); err != nil {
			return nil, err
		}
	} else {
		if err := s.teams.DeclineInvitation(ctx, teamID, userID); err != nil {
			return nil, err
		}
	}

	s.notifier.InviteResponded(ctx, teamID, userID)

	s.logger.Info("invite responded", "team_id", teamID, "user_id", userID, "accepted", accept)
	return s.teams.FindByID(ctx, teamID)
}

// RemoveMember removes the target's member entry. Leader-only; the leader
// cannot remove themself through this path.
func (s *TeamRegistry) RemoveMember(ctx context.Context, teamID, actorID, targetUserID uuid.UUID) error {
	team, err := s.teams.FindByID(ctx, teamID)
	if err != nil {
		return err
	}
	if team.LeaderID != actorID {
		return domain.ErrNotAuthorized
	}
	if targetUserID == team.LeaderID {
		return domain.ErrLeaderRemoval
	}

	if err := s.teams.RemoveMember(ctx, teamID, targetUserID); err != nil {
		return err
	}

	s.logger.Info("member removed", "team_id", teamID, "user_id", targetUserID)
	return nil
}

// DeleteTeam deletes the team and cascades: pending invitations are
// cancelled (with their notifications), member entries removed, and the
// team's event registrations withdrawn. Leader or admin only.
func (s *TeamRegistry) DeleteTeam(ctx context.Context, teamID, actorID uuid.UUID, actorRole model.Role) error {
	team, err := s.teams.FindByID(ctx, teamID)
	if err != nil {
		return err
	}
	if team.LeaderID != actorID && !actorRole.IsAdmin() {
		return domain.ErrNotAuthorized
	}

	if err := s.teams.Delete(ctx, teamID); err != nil {
		return err
	}

	s.notifier.TeamDeleted(ctx, teamID)

	s.logger.Info("team deleted", "team_id", teamID, "actor_id", actorID)
	return nil
}
