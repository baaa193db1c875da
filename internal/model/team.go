// internal/model/team.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type MembershipStatus string

const (
	MembershipLeader   MembershipStatus = "leader"
	MembershipAccepted MembershipStatus = "accepted"
	MembershipPending  MembershipStatus = "pending"
)

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationDeclined InvitationStatus = "declined"
)

type Team struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name       string    `gorm:"type:text;not null" json:"name"`
	LeaderID   uuid.UUID `gorm:"type:uuid;not null" json:"leader_id"`
	MaxMembers int       `gorm:"not null" json:"max_members"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Leader      User             `gorm:"foreignKey:LeaderID" json:"leader"`
	Members     []TeamMember     `gorm:"foreignKey:TeamID" json:"members"`
	Invitations []TeamInvitation `gorm:"foreignKey:TeamID" json:"invitations"`
}

type TeamMember struct {
	ID       uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TeamID   uuid.UUID        `gorm:"type:uuid;uniqueIndex:uniq_team_member;not null" json:"team_id"`
	UserID   uuid.UUID        `gorm:"type:uuid;uniqueIndex:uniq_team_member;not null" json:"user_id"`
	Status   MembershipStatus `gorm:"type:text;not null;default:'pending'" json:"status"`
	JoinedAt time.Time        `json:"joined_at"`

	User User `gorm:"foreignKey:UserID" json:"user"`
}

type TeamInvitation struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TeamID      uuid.UUID        `gorm:"type:uuid;index;not null" json:"team_id"`
	UserID      uuid.UUID        `gorm:"type:uuid;index;not null" json:"user_id"`
	Status      InvitationStatus `gorm:"type:text;not null;default:'pending'" json:"status"`
	Message     string           `gorm:"type:text" json:"message"`
	InvitedByID uuid.UUID        `gorm:"type:uuid;not null" json:"invited_by_id"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// ActiveMemberCount counts members who hold a seat: everyone except pending.
func (t *Team) ActiveMemberCount() int {
	n := 0
	for _, m := range t.Members {
		if m.Status != MembershipPending {
			n++
		}
	}
	return n
}

// MemberIDs returns the ids of seat-holding members (leader included).
func (t *Team) MemberIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(t.Members))
	for _, m := range t.Members {
		if m.Status != MembershipPending {
			ids = append(ids, m.UserID)
		}
	}
	return ids
}

// HasMember reports whether the user holds any member entry, pending included.
func (t *Team) HasMember(userID uuid.UUID) bool {
	for _, m := range t.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

// PendingInvitation returns the user's pending invitation, if one exists.
func (t *Team) PendingInvitation(userID uuid.UUID) *TeamInvitation {
	for i := range t.Invitations {
		inv := &t.Invitations[i]
		if inv.UserID == userID && inv.Status == InvitationPending {
			return inv
		}
	}
	return nil
}
