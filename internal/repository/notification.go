// internal/repository/notification.go
package repository

import (
	"context"
	"fmt"

	"github.com/campusloop/campusloop/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationRepositoryIface interface {
	Create(ctx context.Context, n *model.Notification) error
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*model.Notification, error)
	MarkInviteResponded(ctx context.Context, teamID, userID uuid.UUID) error
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
	DeleteTeamInvites(ctx context.Context, teamID uuid.UUID) error
}

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *model.Notification) error {
	if err := r.db.WithContext(ctx).Create(n).Error; err != nil {
		return fmt.Errorf("creating notification: %w", err)
	}
	return nil
}

func (r *NotificationRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*model.Notification, error) {
	var notifications []*model.Notification
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications)
	if result.Error != nil {
		return nil, fmt.Errorf("finding notifications: %w", result.Error)
	}
	return notifications, nil
}

// MarkInviteResponded retires the invite pairing: the notification stays for
// history but no longer demands action.
func (r *NotificationRepository) MarkInviteResponded(ctx context.Context, teamID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("user_id = ? AND team_id = ? AND type = ?", userID, teamID, model.NotificationTeamInvite).
		Updates(map[string]interface{}{
			"read":            true,
			"action_required": false,
			"action":          model.ActionNone,
		})
	if result.Error != nil {
		return fmt.Errorf("marking invite responded: %w", result.Error)
	}
	return nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)
	if result.Error != nil {
		return fmt.Errorf("marking notification read: %w", result.Error)
	}
	return nil
}

// Delete removes the user's notification. Deleting an absent row is a no-op;
// dismiss is idempotent.
func (r *NotificationRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Notification{})
	if result.Error != nil {
		return fmt.Errorf("deleting notification: %w", result.Error)
	}
	return nil
}

// DeleteTeamInvites removes every team_invite notification for the team,
// used when a team is deleted and its pending invitations are cancelled.
func (r *NotificationRepository) DeleteTeamInvites(ctx context.Context, teamID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("team_id = ? AND type = ?", teamID, model.NotificationTeamInvite).
		Delete(&model.Notification{})
	if result.Error != nil {
		return fmt.Errorf("deleting team invite notifications: %w", result.Error)
	}
	return nil
}
