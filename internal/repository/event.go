// internal/repository/event.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/campusloop/campusloop/internal/domain"
	"github.com/campusloop/campusloop/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EventRepositoryIface interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error)
	AddParticipant(ctx context.Context, eventID, userID uuid.UUID) error
	RemoveParticipant(ctx context.Context, eventID, userID uuid.UUID) error
	AddTeamRegistration(ctx context.Context, reg *model.TeamRegistration) error
	RemoveTeamRegistration(ctx context.Context, eventID, teamID uuid.UUID) error
}

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	var event model.Event
	result := r.db.WithContext(ctx).
		Preload("Participants").
		Preload("TeamRegistrations").
		Preload("TeamRegistrations.Members").
		First(&event, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("finding event: %w", result.Error)
	}
	return &event, nil
}

// AddParticipant appends the user to the event's participant list. The
// duplicate and capacity predicates are evaluated under a row lock on the
// event, so two racers for the last seat serialize and exactly one wins.
func (r *EventRepository) AddParticipant(ctx context.Context, eventID, userID uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event model.Event
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&event, "id = ?", eventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrEventNotFound
			}
			return fmt.Errorf("locking event: %w", err)
		}

		var existing int64
		if err := tx.Model(&model.EventParticipant{}).
			Where("event_id = ? AND user_id = ?", eventID, userID).
			Count(&existing).Error; err != nil {
			return fmt.Errorf("checking registration: %w", err)
		}
		if existing > 0 {
			return domain.ErrAlreadyRegistered
		}

		var registered int64
		if err := tx.Model(&model.EventParticipant{}).
			Where("event_id = ?", eventID).
			Count(&registered).Error; err != nil {
			return fmt.Errorf("counting participants: %w", err)
		}
		if registered >= int64(event.MaxParticipants) {
			return domain.ErrEventFull
		}

		participant := model.EventParticipant{
			EventID:      eventID,
			UserID:       userID,
			RegisteredAt: time.Now().UTC(),
		}
		if err := tx.Create(&participant).Error; err != nil {
			return fmt.Errorf("creating participant: %w", err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) ||
			errors.Is(err, domain.ErrAlreadyRegistered) ||
			errors.Is(err, domain.ErrEventFull) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (r *EventRepository) RemoveParticipant(ctx context.Context, eventID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Delete(&model.EventParticipant{})
	if result.Error != nil {
		return fmt.Errorf("removing participant: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrRegistrationNotFound
	}
	return nil
}

// AddTeamRegistration appends the registration with its member snapshot. The
// duplicate-team predicate and the seat union across all registered teams are
// both evaluated under the event row lock.
func (r *EventRepository) AddTeamRegistration(ctx context.Context, reg *model.TeamRegistration) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event model.Event
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&event, "id = ?", reg.EventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrEventNotFound
			}
			return fmt.Errorf("locking event: %w", err)
		}

		var existing int64
		if err := tx.Model(&model.TeamRegistration{}).
			Where("event_id = ? AND team_id = ?", reg.EventID, reg.TeamID).
			Count(&existing).Error; err != nil {
			return fmt.Errorf("checking team registration: %w", err)
		}
		if existing > 0 {
			return domain.ErrAlreadyRegistered
		}

		var snapshots []model.TeamRegistrationMember
		if err := tx.Joins("JOIN team_registrations ON team_registrations.id = team_registration_members.team_registration_id").
			Where("team_registrations.event_id = ?", reg.EventID).
			Find(&snapshots).Error; err != nil {
			return fmt.Errorf("loading registered members: %w", err)
		}

		seats := make(map[uuid.UUID]struct{}, len(snapshots)+len(reg.Members))
		for _, m := range snapshots {
			seats[m.UserID] = struct{}{}
		}
		for _, m := range reg.Members {
			seats[m.UserID] = struct{}{}
		}
		if len(seats) > event.MaxParticipants {
			return domain.ErrEventFull
		}

		if err := tx.Create(reg).Error; err != nil {
			return fmt.Errorf("creating team registration: %w", err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) ||
			errors.Is(err, domain.ErrAlreadyRegistered) ||
			errors.Is(err, domain.ErrEventFull) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (r *EventRepository) RemoveTeamRegistration(ctx context.Context, eventID, teamID uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var reg model.TeamRegistration
		if err := tx.Where("event_id = ? AND team_id = ?", eventID, teamID).
			First(&reg).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrRegistrationNotFound
			}
			return fmt.Errorf("finding team registration: %w", err)
		}

		if err := tx.Where("team_registration_id = ?", reg.ID).
			Delete(&model.TeamRegistrationMember{}).Error; err != nil {
			return fmt.Errorf("deleting registration snapshot: %w", err)
		}
		if err := tx.Delete(&reg).Error; err != nil {
			return fmt.Errorf("deleting team registration: %w", err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrRegistrationNotFound) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}
