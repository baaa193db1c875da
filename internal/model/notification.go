// internal/model/notification.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationTeamInvite      NotificationType = "team_invite"
	NotificationEventUpdate     NotificationType = "event_update"
	NotificationAnnouncement    NotificationType = "announcement"
	NotificationResultPublished NotificationType = "result_published"
)

type NotificationAction string

const (
	ActionAcceptInvite  NotificationAction = "accept_invite"
	ActionDeclineInvite NotificationAction = "decline_invite"
	ActionViewEvent     NotificationAction = "view_event"
	ActionNone          NotificationAction = "none"
)

type Notification struct {
	ID             uuid.UUID          `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID         uuid.UUID          `gorm:"type:uuid;index;not null" json:"user_id"`
	Type           NotificationType   `gorm:"type:text;not null" json:"type"`
	TeamID         *uuid.UUID         `gorm:"type:uuid;index" json:"team_id,omitempty"`
	EventID        *uuid.UUID         `gorm:"type:uuid" json:"event_id,omitempty"`
	InvitedByID    *uuid.UUID         `gorm:"type:uuid" json:"invited_by_id,omitempty"`
	Read           bool               `gorm:"not null;default:false" json:"read"`
	ActionRequired bool               `gorm:"not null;default:false" json:"action_required"`
	Action         NotificationAction `gorm:"type:text;not null;default:'none'" json:"action"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}
