// internal/repository/team.go
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

type TeamRepositoryIface interface {
	Create(ctx context.Context, team *model.Team) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Team, error)
	AddInvitation(ctx context.Context, inv *model.TeamInvitation) error
	AcceptInvitation(ctx context.Context, teamID, userID uuid.UUID) (*model.TeamInvitation, error)
	DeclineInvitation(ctx context.Context, teamID, userID uuid.UUID) error
	RemoveMember(ctx context.Context, teamID, userID uuid.UUID) error
	Delete(ctx context.Context, teamID uuid.UUID) error
}

type TeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create persists the team together with its leader member entry.
func (r *TeamRepository) Create(ctx context.Context, team *model.Team) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Leader", "Members", "Invitations").Create(team).Error; err != nil {
			return fmt.Errorf("creating team: %w", err)
		}

		leader := model.TeamMember{
			TeamID:   team.ID,
			UserID:   team.LeaderID,
			Status:   model.MembershipLeader,
			JoinedAt: time.Now().UTC(),
		}
		if err := tx.Create(&leader).Error; err != nil {
			return fmt.Errorf("creating leader entry: %w", err)
		}
		team.Members = append(team.Members, leader)
		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (r *TeamRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Team, error) {
	var team model.Team
	result := r.db.WithContext(ctx).
		Preload("Members").
		Preload("Invitations").
		First(&team, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, fmt.Errorf("finding team: %w", result.Error)
	}
	return &team, nil
}

// AddInvitation appends a pending invitation, re-checking the membership and
// duplicate-invite predicates under a row lock on the team so concurrent
// invites cannot slip past each other.
func (r *TeamRepository) AddInvitation(ctx context.Context, inv *model.TeamInvitation) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var team model.Team
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&team, "id = ?", inv.TeamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrTeamNotFound
			}
			return fmt.Errorf("locking team: %w", err)
		}

		var memberCount int64
		if err := tx.Model(&model.TeamMember{}).
			Where("team_id = ? AND user_id = ?", inv.TeamID, inv.UserID).
			Count(&memberCount).Error; err != nil {
			return fmt.Errorf("checking membership: %w", err)
		}
		if memberCount > 0 {
			return domain.ErrAlreadyMember
		}

		var pendingCount int64
		if err := tx.Model(&model.TeamInvitation{}).
			Where("team_id = ? AND user_id = ? AND status = ?", inv.TeamID, inv.UserID, model.InvitationPending).
			Count(&pendingCount).Error; err != nil {
			return fmt.Errorf("checking pending invitations: %w", err)
		}
		if pendingCount > 0 {
			return domain.ErrAlreadyInvited
		}

		if err := tx.Create(inv).Error; err != nil {
			return fmt.Errorf("creating invitation: %w", err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrTeamNotFound) ||
			errors.Is(err, domain.ErrAlreadyMember) ||
			errors.Is(err, domain.ErrAlreadyInvited) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

// AcceptInvitation flips the pending invitation to accepted and inserts (or
// re-activates) the member entry. The seat-count predicate runs inside the
// same locked transaction, so the member cap holds at every observable point.
func (r *TeamRepository) AcceptInvitation(ctx context.Context, teamID, userID uuid.UUID) (*model.TeamInvitation, error) {
	var inv model.TeamInvitation

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var team model.Team
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&team, "id = ?", teamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrTeamNotFound
			}
			return fmt.Errorf("locking team: %w", err)
		}

		if err := tx.Where("team_id = ? AND user_id = ? AND status = ?", teamID, userID, model.InvitationPending).
			First(&inv).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrInvitationNotFound
			}
			return fmt.Errorf("finding invitation: %w", err)
		}

		var seated int64
		if err := tx.Model(&model.TeamMember{}).
			Where("team_id = ? AND status <> ?", teamID, model.MembershipPending).
			Count(&seated).Error; err != nil {
			return fmt.Errorf("counting members: %w", err)
		}
		if seated >= int64(team.MaxMembers) {
			return domain.ErrTeamFull
		}

		inv.Status = model.InvitationAccepted
		if err := tx.Save(&inv).Error; err != nil {
			return fmt.Errorf("updating invitation: %w", err)
		}

		member := model.TeamMember{
			TeamID:   teamID,
			UserID:   userID,
			Status:   model.MembershipAccepted,
			JoinedAt: time.Now().UTC(),
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "team_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "joined_at"}),
		}).Create(&member).Error; err != nil {
			return fmt.Errorf("creating member entry: %w", err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrTeamNotFound) ||
			errors.Is(err, domain.ErrInvitationNotFound) ||
			errors.Is(err, domain.ErrTeamFull) {
			return nil, err
		}
		return nil, fmt.Errorf("transaction failed: %w", err)
	}
	return &inv, nil
}

// DeclineInvitation flips the pending invitation to declined. Declined rows
// are kept, and a later re-invite creates a fresh pending row.
func (r *TeamRepository) DeclineInvitation(ctx context.Context, teamID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.TeamInvitation{}).
		Where("team_id = ? AND user_id = ? AND status = ?", teamID, userID, model.InvitationPending).
		Update("status", model.InvitationDeclined)
	if result.Error != nil {
		return fmt.Errorf("declining invitation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrInvitationNotFound
	}
	return nil
}

func (r *TeamRepository) RemoveMember(ctx context.Context, teamID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Delete(&model.TeamMember{})
	if result.Error != nil {
		return fmt.Errorf("removing member: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrMemberNotFound
	}
	return nil
}

// Delete removes the team and cascades: member entries, all invitations, and
// the team's registrations on every event (including their member snapshots).
// The event-side cascade keeps capacity accounting truthful.
func (r *TeamRepository) Delete(ctx context.Context, teamID uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var team model.Team
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&team, "id = ?", teamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrTeamNotFound
			}
			return fmt.Errorf("locking team: %w", err)
		}

		if err := tx.Where("team_registration_id IN (?)",
			tx.Model(&model.TeamRegistration{}).Select("id").Where("team_id = ?", teamID),
		).Delete(&model.TeamRegistrationMember{}).Error; err != nil {
			return fmt.Errorf("deleting registration snapshots: %w", err)
		}
		if err := tx.Where("team_id = ?", teamID).Delete(&model.TeamRegistration{}).Error; err != nil {
			return fmt.Errorf("deleting team registrations: %w", err)
		}
		if err := tx.Where("team_id = ?", teamID).Delete(&model.TeamInvitation{}).Error; err != nil {
			return fmt.Errorf("deleting invitations: %w", err)
		}
		if err := tx.Where("team_id = ?", teamID).Delete(&model.TeamMember{}).Error; err != nil {
			return fmt.Errorf("deleting members: %w", err)
		}
		if err := tx.Delete(&team).Error; err != nil {
			return fmt.Errorf("deleting team: %w", err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrTeamNotFound) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}
