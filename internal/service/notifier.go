// internal/service/notifier.go
package service

import (
	"context"
	"log/slog"

	"github.com/campusloop/campusloop/internal/email"
	"github.com/campusloop/campusloop/internal/email/mailer"
	"github.com/campusloop/campusloop/internal/model"
	"github.com/campusloop/campusloop/internal/repository"
	"github.com/google/uuid"
)

// InvitationNotifier turns invitation lifecycle events into Notification
// records and best-effort outbound email. A failure here never rolls back the
// team mutation that triggered it; registration state and the notification
// side channel are deliberately decoupled.
type InvitationNotifier struct {
	repo         repository.NotificationRepositoryIface
	users        repository.UserRepositoryIface
	emailService *email.Service
	baseURL      string
	logger       *slog.Logger
}

func NewInvitationNotifier(
	repo repository.NotificationRepositoryIface,
	users repository.UserRepositoryIface,
	emailService *email.Service,
	baseURL string,
	logger *slog.Logger,
) *InvitationNotifier {
	return &InvitationNotifier{
		repo:         repo,
		users:        users,
		emailService: emailService,
		baseURL:      baseURL,
		logger:       logger,
	}
}

// InviteCreated records a team_invite notification for the invited user and
// attempts email delivery. Both are best-effort.
func (n *InvitationNotifier) InviteCreated(ctx context.Context, team *model.Team, inv *model.TeamInvitation) {
	notification := &model.Notification{
		UserID:         inv.UserID,
		Type:           model.NotificationTeamInvite,
		TeamID:         &inv.TeamID,
		InvitedByID:    &inv.InvitedByID,
		ActionRequired: true,
		Action:         model.ActionAcceptInvite,
	}
	if err := n.repo.Create(ctx, notification); err != nil {
		n.logger.Warn("failed to persist invite notification",
			"team_id", inv.TeamID, "user_id", inv.UserID, "error", err)
	}

	n.sendInviteEmail(ctx, team, inv)
}

// InviteResponded marks the matching notification read and clears its
// action flag. Responding and dismissing are the only ways the invite
// notification pairing is retired.
func (n *InvitationNotifier) InviteResponded(ctx context.Context, teamID, userID uuid.UUID) {
	if err := n.repo.MarkInviteResponded(ctx, teamID, userID); err != nil {
		n.logger.Warn("failed to update invite notification",
			"team_id", teamID, "user_id", userID, "error", err)
	}
}

// TeamDeleted removes every outstanding team_invite notification for the
// team, matching the cancellation of its pending invitations.
func (n *InvitationNotifier) TeamDeleted(ctx context.Context, teamID uuid.UUID) {
	if err := n.repo.DeleteTeamInvites(ctx, teamID); err != nil {
		n.logger.Warn("failed to delete invite notifications for team",
			"team_id", teamID, "error", err)
	}
}

// Dismiss deletes the notification. Dismissing one that is already gone is a
// no-op, not an error.
func (n *InvitationNotifier) Dismiss(ctx context.Context, notificationID, userID uuid.UUID) error {
	return n.repo.Delete(ctx, notificationID, userID)
}

// ListForUser returns the user's notifications, newest first.
func (n *InvitationNotifier) ListForUser(ctx context.Context, userID uuid.UUID) ([]*model.Notification, error) {
	return n.repo.FindByUser(ctx, userID)
}

// MarkRead flags a single notification as read.
func (n *InvitationNotifier) MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error {
	return n.repo.MarkRead(ctx, notificationID, userID)
}

func (n *InvitationNotifier) sendInviteEmail(ctx context.Context, team *model.Team, inv *model.TeamInvitation) {
	if n.emailService == nil {
		return
	}

	target, err := n.users.FindByID(ctx, inv.UserID)
	if err != nil {
		n.logger.Warn("skipping invite email, user lookup failed",
			"user_id", inv.UserID, "error", err)
		return
	}

	inviterName := team.Name + " leader"
	if inviter, err := n.users.FindByID(ctx, inv.InvitedByID); err == nil {
		inviterName = inviter.RecipientName()
	}

	err = mailer.SendTeamInviteEmail(n.emailService, target.Email, mailer.TeamInviteTemplateData{
		RecipientName: target.RecipientName(),
		TeamName:      team.Name,
		InviterName:   inviterName,
		Message:       inv.Message,
		InvitesLink:   n.baseURL + "/invites",
	})
	if err != nil {
		n.logger.Warn("failed to send invite email",
			"user_id", inv.UserID, "team_id", inv.TeamID, "error", err)
	}
}
