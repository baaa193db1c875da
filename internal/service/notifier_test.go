package service_test

import (
	"context"
	"testing"

	"github.com/campusloop/campusloop/internal/mocks"
	"github.com/campusloop/campusloop/internal/model"
	"github.com/campusloop/campusloop/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestInviteCreatedIsBestEffort(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notificationsRepo := mocks.NewMockNotificationRepositoryIface(ctrl)
	usersRepo := mocks.NewMockUserRepositoryIface(ctrl)
	notifier := service.NewInvitationNotifier(notificationsRepo, usersRepo, nil, "http://localhost", quietLogger())

	team := &model.Team{ID: uuid.New(), Name: "Chess Club", LeaderID: uuid.New()}
	inv := &model.TeamInvitation{
		TeamID:      team.ID,
		UserID:      uuid.New(),
		InvitedByID: team.LeaderID,
		Status:      model.InvitationPending,
	}

	// A failed notification write is logged, never surfaced to the caller.
	notificationsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(assert.AnError)
	notifier.InviteCreated(context.Background(), team, inv)
}

func TestInviteCreatedNotificationShape(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notificationsRepo := mocks.NewMockNotificationRepositoryIface(ctrl)
	usersRepo := mocks.NewMockUserRepositoryIface(ctrl)
	notifier := service.NewInvitationNotifier(notificationsRepo, usersRepo, nil, "http://localhost", quietLogger())

	team := &model.Team{ID: uuid.New(), Name: "Chess Club", LeaderID: uuid.New()}
	inv := &model.TeamInvitation{
		TeamID:      team.ID,
		UserID:      uuid.New(),
		InvitedByID: team.LeaderID,
	}

	notificationsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *model.Notification) error {
			assert.Equal(t, inv.UserID, n.UserID)
			assert.Equal(t, model.NotificationTeamInvite, n.Type)
			assert.Equal(t, team.ID, *n.TeamID)
			assert.Equal(t, team.LeaderID, *n.InvitedByID)
			assert.True(t, n.ActionRequired)
			assert.Equal(t, model.ActionAcceptInvite, n.Action)
			return nil
		})

	notifier.InviteCreated(context.Background(), team, inv)
}

func TestDismissIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notificationsRepo := mocks.NewMockNotificationRepositoryIface(ctrl)
	usersRepo := mocks.NewMockUserRepositoryIface(ctrl)
	notifier := service.NewInvitationNotifier(notificationsRepo, usersRepo, nil, "http://localhost", quietLogger())

	notificationID, userID := uuid.New(), uuid.New()

	// The repository treats zero deleted rows as success, so a repeat dismiss
	// comes back nil both times.
	notificationsRepo.EXPECT().Delete(gomock.Any(), notificationID, userID).Return(nil).Times(2)

	assert.NoError(t, notifier.Dismiss(context.Background(), notificationID, userID))
	assert.NoError(t, notifier.Dismiss(context.Background(), notificationID, userID))
}
