// internal/service/registrar.go
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/campusloop/campusloop/internal/domain"
	"github.com/campusloop/campusloop/internal/model"
	"github.com/campusloop/campusloop/internal/repository"
	"github.com/google/uuid"
)

// EventRegistrar coordinates individual and team registration against an
// event's capacity and deadline. Capacity predicates are applied by the
// repository inside a serialized conditional write on the event, never as a
// read-then-write pair here.
type EventRegistrar struct {
	events repository.EventRepositoryIface
	teams  repository.TeamRepositoryIface
	logger *slog.Logger
	now    func() time.Time
}

func NewEventRegistrar(
	events repository.EventRepositoryIface,
	teams repository.TeamRepositoryIface,
	logger *slog.Logger,
) *EventRegistrar {
	return &EventRegistrar{
		events: events,
		teams:  teams,
		logger: logger,
		now:    time.Now,
	}
}

// RegisterIndividual appends the user to an individual-mode event.
func (s *EventRegistrar) RegisterIndividual(ctx context.Context, eventID, userID uuid.UUID) error {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event.RegistrationType != model.RegistrationIndividual {
		return domain.ErrRegistrationTypeMismatch
	}
	if !event.RegistrationOpen(s.now()) {
		return domain.ErrRegistrationClosed
	}

	if err := s.events.AddParticipant(ctx, eventID, userID); err != nil {
		return err
	}

	s.logger.Info("individual registered", "event_id", eventID, "user_id", userID)
	return nil
}

// UnregisterIndividual removes the user's registration. Like registration it
// is only available before the deadline.
func (s *EventRegistrar) UnregisterIndividual(ctx context.Context, eventID, userID uuid.UUID) error {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event.RegistrationType != model.RegistrationIndividual {
		return domain.ErrRegistrationTypeMismatch
	}
	if !event.RegistrationOpen(s.now()) {
		return domain.ErrRegistrationClosed
	}

	if err := s.events.RemoveParticipant(ctx, eventID, userID); err != nil {
		return err
	}

	s.logger.Info("individual unregistered", "event_id", eventID, "user_id", userID)
	return nil
}

// RegisterTeam registers the team for a team-mode event with a snapshot of
// its current seat-holding members. Leader-only.
func (s *EventRegistrar) RegisterTeam(ctx context.Context, eventID, teamID, actorID uuid.UUID) error {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event.RegistrationType != model.RegistrationTeam {
		return domain.ErrRegistrationTypeMismatch
	}
	if !event.RegistrationOpen(s.now()) {
		return domain.ErrRegistrationClosed
	}

	team, err := s.teams.FindByID(ctx, teamID)
	if err != nil {
		return err
	}
	if team.LeaderID != actorID {
		return domain.ErrNotAuthorized
	}

	memberIDs := team.MemberIDs()
	if len(memberIDs) < event.TeamMinSize || len(memberIDs) > event.TeamMaxSize {
		return domain.ErrTeamSizeInvalid
	}

	reg := &model.TeamRegistration{
		EventID:      eventID,
		TeamID:       teamID,
		RegisteredAt: s.now().UTC(),
	}
	for _, id := range memberIDs {
		reg.Members = append(reg.Members, model.TeamRegistrationMember{UserID: id})
	}

	if err := s.events.AddTeamRegistration(ctx, reg); err != nil {
		return err
	}

	s.logger.Info("team registered",
		"event_id", eventID, "team_id", teamID, "members", len(memberIDs))
	return nil
}

// UnregisterTeam withdraws the team's registration. Leader-only, and like the
// individual path only available before the deadline.
func (s *EventRegistrar) UnregisterTeam(ctx context.Context, eventID, teamID, actorID uuid.UUID) error {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event.RegistrationType != model.RegistrationTeam {
		return domain.ErrRegistrationTypeMismatch
	}
	if !event.RegistrationOpen(s.now()) {
		return domain.ErrRegistrationClosed
	}

	team, err := s.teams.FindByID(ctx, teamID)
	if err != nil {
		return err
	}
	if team.LeaderID != actorID {
		return domain.ErrNotAuthorized
	}

	if err := s.events.RemoveTeamRegistration(ctx, eventID, teamID); err != nil {
		return err
	}

	s.logger.Info("team unregistered", "event_id", eventID, "team_id", teamID)
	return nil
}
