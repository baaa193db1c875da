package service_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/campusloop/campusloop/internal/domain"
	"github.com/campusloop/campusloop/internal/mocks"
	"github.com/campusloop/campusloop/internal/model"
	"github.com/campusloop/campusloop/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTeamRegistry(teams *mocks.MockTeamRepositoryIface, users *mocks.MockUserRepositoryIface, notifications *mocks.MockNotificationRepositoryIface) *service.TeamRegistry {
	notifier := service.NewInvitationNotifier(notifications, users, nil, "http://localhost", quietLogger())
	return service.NewTeamRegistry(teams, users, notifier, quietLogger())
}

func TestCreateTeamValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := newTeamRegistry(
		mocks.NewMockTeamRepositoryIface(ctrl),
		mocks.NewMockUserRepositoryIface(ctrl),
		mocks.NewMockNotificationRepositoryIface(ctrl),
	)

	_, err := registry.CreateTeam(context.Background(), service.CreateTeamInput{
		LeaderID:   uuid.New(),
		Name:       "Robotics Crew",
		MaxMembers: 0,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInviteAcceptInviteFlow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	teamID := uuid.New()
	leaderID := uuid.New()
	u1 := uuid.New()
	u2 := uuid.New()

	team := &model.Team{
		ID:         teamID,
		Name:       "Robotics Crew",
		LeaderID:   leaderID,
		MaxMembers: 3,
		Members: []model.TeamMember{
			{TeamID: teamID, UserID: leaderID, Status: model.MembershipLeader},
		},
	}

	teamsRepo := mocks.NewMockTeamRepositoryIface(ctrl)
	usersRepo := mocks.NewMockUserRepositoryIface(ctrl)
	notificationsRepo := mocks.NewMockNotificationRepositoryIface(ctrl)
	registry := newTeamRegistry(teamsRepo, usersRepo, notificationsRepo)

	// Leader invites U1.
	teamsRepo.EXPECT().FindByID(gomock.Any(), teamID).Return(team, nil)
	usersRepo.EXPECT().FindByID(gomock.Any(), u1).
		Return(&model.User{ID: u1, IsActive: true}, nil)
	teamsRepo.EXPECT().AddInvitation(gomock.Any(), gomock.Any()).Return(nil)
	notificationsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	inv, err := registry.InviteMember(context.Background(), service.InviteMemberInput{
		TeamID:       teamID,
		ActorID:      leaderID,
		TargetUserID: u1,
	})
	assert.NoError(t, err)
	assert.Equal(t, model.InvitationPending, inv.Status)
	assert.Equal(t, leaderID, inv.InvitedByID)

	// U1 accepts.
	accepted := &model.Team{
		ID:         teamID,
		LeaderID:   leaderID,
		MaxMembers: 3,
		Members: []model.TeamMember{
			{TeamID: teamID, UserID: leaderID, Status: model.MembershipLeader},
			{TeamID: teamID, UserID: u1, Status: model.MembershipAccepted},
		},
	}
	teamsRepo.EXPECT().AcceptInvitation(gomock.Any(), teamID, u1).
		Return(&model.TeamInvitation{TeamID: teamID, UserID: u1, Status: model.InvitationAccepted}, nil)
	notificationsRepo.EXPECT().MarkInviteResponded(gomock.Any(), teamID, u1).Return(nil)
	teamsRepo.EXPECT().FindByID(gomock.Any(), teamID).Return(accepted, nil)

	result, err := registry.RespondInvite(context.Background(), teamID, u1, true)
	assert.NoError(t, err)
	assert.Equal(t, 2, result.ActiveMemberCount())

	// With 2 of 3 seats taken a further invite still succeeds.
	teamsRepo.EXPECT().FindByID(gomock.Any(), teamID).Return(accepted, nil)
	usersRepo.EXPECT().FindByID(gomock.Any(), u2).
		Return(&model.User{ID: u2, IsActive: true}, nil)
	teamsRepo.EXPECT().AddInvitation(gomock.Any(), gomock.Any()).Return(nil)
	notificationsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	_, err = registry.InviteMember(context.Background(), service.InviteMemberInput{
		TeamID:       teamID,
		ActorID:      leaderID,
		TargetUserID: u2,
	})
	assert.NoError(t, err)
}

func TestInviteMemberAuthorization(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	teamID := uuid.New()
	leaderID := uuid.New()
	stranger := uuid.New()

	teamsRepo := mocks.NewMockTeamRepositoryIface(ctrl)
	usersRepo := mocks.NewMockUserRepositoryIface(ctrl)
	notificationsRepo := mocks.NewMockNotificationRepositoryIface(ctrl)
	registry := newTeamRegistry(teamsRepo, usersRepo, notificationsRepo)

	teamsRepo.EXPECT().FindByID(gomock.Any(), teamID).
		Return(&model.Team{ID: teamID, LeaderID: leaderID, MaxMembers: 4}, nil)

	_, err := registry.InviteMember(context.Background(), service.InviteMemberInput{
		TeamID:       teamID,
		ActorID:      stranger,
		TargetUserID: uuid.New(),
	})
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
}

func TestInviteMemberConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	teamID := uuid.New()
	leaderID := uuid.New()
	target := uuid.New()

	teamsRepo := mocks.NewMockTeamRepositoryIface(ctrl)
	usersRepo := mocks.NewMockUserRepositoryIface(ctrl)
	notificationsRepo := mocks.NewMockNotificationRepositoryIface(ctrl)
	registry := newTeamRegistry(teamsRepo, usersRepo, notificationsRepo)

	teamsRepo.EXPECT().FindByID(gomock.Any(), teamID).
		Return(&model.Team{ID: teamID, LeaderID: leaderID, MaxMembers: 4}, nil)
	usersRepo.EXPECT().FindByID(gomock.Any(), target).
		Return(&model.User{ID: target, IsActive: true}, nil)
	teamsRepo.EXPECT().AddInvitation(gomock.Any(), gomock.Any()).
		Return(domain.ErrAlreadyInvited)

	_, err := registry.InviteMember(context.Background(), service.InviteMemberInput{
		TeamID:       teamID,
		ActorID:      leaderID,
		TargetUserID: target,
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyInvited)
}

func TestDeclinedUserCanBeReinvited(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	teamID := uuid.New()
	leaderID := uuid.New()
	target := uuid.New()

	team := &model.Team{
		ID:         teamID,
		LeaderID:   leaderID,
		MaxMembers: 4,
		Invitations: []model.TeamInvitation{
			{TeamID: teamID, UserID: target, Status: model.InvitationDeclined},
		},
	}

	teamsRepo := mocks.NewMockTeamRepositoryIface(ctrl)
	usersRepo := mocks.NewMockUserRepositoryIface(ctrl)
	notificationsRepo := mocks.NewMockNotificationRepositoryIface(ctrl)
	registry := newTeamRegistry(teamsRepo, usersRepo, notificationsRepo)

	teamsRepo.EXPECT().FindByID(gomock.Any(), teamID).Return(team, nil)
	usersRepo.EXPECT().FindByID(gomock.Any(), target).
		Return(&model.User{ID: target, IsActive: true}, nil)
	teamsRepo.EXPECT().AddInvitation(gomock.Any(), gomock.Any()).Return(nil)
	notificationsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	_, err := registry.InviteMember(context.Background(), service.InviteMemberInput{
		TeamID:       teamID,
		ActorID:      leaderID,
		TargetUserID: target,
	})
	assert.NoError(t, err)
}

func TestRemoveMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	teamID := uuid.New()
	leaderID := uuid.New()
	member := uuid.New()

	team := &model.Team{ID: teamID, LeaderID: leaderID, MaxMembers: 4}

	teamsRepo := mocks.NewMockTeamRepositoryIface(ctrl)
	usersRepo := mocks.NewMockUserRepositoryIface(ctrl)
	notificationsRepo := mocks.NewMockNotificationRepositoryIface(ctrl)
	registry := newTeamRegistry(teamsRepo, usersRepo, notificationsRepo)

	t.Run("leader removes member", func(t *testing.T) {
		teamsRepo.EXPECT().FindByID(gomock.Any(), teamID).Return(team, nil)
		teamsRepo.EXPECT().RemoveMember(gomock.Any(), teamID, member).Return(nil)

		err := registry.RemoveMember(context.Background(), teamID, leaderID, member)
		assert.NoError(t, err)
	})

	t.Run("leader cannot remove themself", func(t *testing.T) {
		teamsRepo.EXPECT().FindByID(gomock.Any(), teamID).Return(team, nil)

		err := registry.RemoveMember(context.Background(), teamID, leaderID, leaderID)
		assert.ErrorIs(t, err, domain.ErrLeaderRemoval)
	})

	t.Run("non-leader cannot remove", func(t *testing.T) {
		teamsRepo.EXPECT().FindByID(gomock.Any(), teamID).Return(team, nil)

		err := registry.RemoveMember(context.Background(), teamID, member, leaderID)
		assert.ErrorIs(t, err, domain.ErrNotAuthorized)
	})
}

func TestDeleteTeam(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	teamID := uuid.New()
	leaderID := uuid.New()
	admin := uuid.New()

	team := &model.Team{ID: teamID, LeaderID: leaderID, MaxMembers: 4}

	teamsRepo := mocks.NewMockTeamRepositoryIface(ctrl)
	usersRepo := mocks.NewMockUserRepositoryIface(ctrl)
	notificationsRepo := mocks.NewMockNotificationRepositoryIface(ctrl)
	registry := newTeamRegistry(teamsRepo, usersRepo, notificationsRepo)

	t.Run("admin may delete", func(t *testing.T) {
		teamsRepo.EXPECT().FindByID(gomock.Any(), teamID).Return(team, nil)
		teamsRepo.EXPECT().Delete(gomock.Any(), teamID).Return(nil)
		notificationsRepo.EXPECT().DeleteTeamInvites(gomock.Any(), teamID).Return(nil)

		err := registry.DeleteTeam(context.Background(), teamID, admin, model.RoleAdmin)
		assert.NoError(t, err)
	})

	t.Run("member may not delete", func(t *testing.T) {
		teamsRepo.EXPECT().FindByID(gomock.Any(), teamID).Return(team, nil)

		err := registry.DeleteTeam(context.Background(), teamID, admin, model.RoleStudent)
		assert.ErrorIs(t, err, domain.ErrNotAuthorized)
	})

	t.Run("notification cleanup failure does not fail the delete", func(t *testing.T) {
		teamsRepo.EXPECT().FindByID(gomock.Any(), teamID).Return(team, nil)
		teamsRepo.EXPECT().Delete(gomock.Any(), teamID).Return(nil)
		notificationsRepo.EXPECT().DeleteTeamInvites(gomock.Any(), teamID).
			Return(assert.AnError)

		err := registry.DeleteTeam(context.Background(), teamID, leaderID, model.RoleStudent)
		assert.NoError(t, err)
	})
}

// fakeTeamStore reproduces the repository's serialized invitation/membership
// predicates, so the seat-cap invariant is exercised through the registry
// rather than mocked away.
type fakeTeamStore struct {
	mu   sync.Mutex
	team *model.Team
}

func newFakeTeamStore(team *model.Team) *fakeTeamStore {
	return &fakeTeamStore{team: team}
}

func (f *fakeTeamStore) Create(_ context.Context, team *model.Team) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	team.ID = uuid.New()
	team.Members = []model.TeamMember{
		{TeamID: team.ID, UserID: team.LeaderID, Status: model.MembershipLeader},
	}
	f.team = team
	return nil
}

func (f *fakeTeamStore) FindByID(_ context.Context, id uuid.UUID) (*model.Team, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.team == nil || f.team.ID != id {
		return nil, domain.ErrTeamNotFound
	}
	snapshot := *f.team
	snapshot.Members = append([]model.TeamMember(nil), f.team.Members...)
	snapshot.Invitations = append([]model.TeamInvitation(nil), f.team.Invitations...)
	return &snapshot, nil
}

func (f *fakeTeamStore) AddInvitation(_ context.Context, inv *model.TeamInvitation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.team.HasMember(inv.UserID) {
		return domain.ErrAlreadyMember
	}
	if f.team.PendingInvitation(inv.UserID) != nil {
		return domain.ErrAlreadyInvited
	}
	f.team.Invitations = append(f.team.Invitations, *inv)
	return nil
}

func (f *fakeTeamStore) AcceptInvitation(_ context.Context, teamID, userID uuid.UUID) (*model.TeamInvitation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	inv := f.team.PendingInvitation(userID)
	if inv == nil {
		return nil, domain.ErrInvitationNotFound
	}
	if f.team.ActiveMemberCount() >= f.team.MaxMembers {
		return nil, domain.ErrTeamFull
	}
	inv.Status = model.InvitationAccepted
	f.team.Members = append(f.team.Members, model.TeamMember{
		TeamID: teamID, UserID: userID, Status: model.MembershipAccepted,
	})
	return inv, nil
}

func (f *fakeTeamStore) DeclineInvitation(_ context.Context, _, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	inv := f.team.PendingInvitation(userID)
	if inv == nil {
		return domain.ErrInvitationNotFound
	}
	inv.Status = model.InvitationDeclined
	return nil
}

func (f *fakeTeamStore) RemoveMember(_ context.Context, _, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, m := range f.team.Members {
		if m.UserID == userID {
			f.team.Members = append(f.team.Members[:i], f.team.Members[i+1:]...)
			return nil
		}
	}
	return domain.ErrMemberNotFound
}

func (f *fakeTeamStore) Delete(_ context.Context, _ uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.team = nil
	return nil
}

func TestAcceptInvitationSeatCap(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	leaderID := uuid.New()
	member := uuid.New()
	invitee := uuid.New()
	teamID := uuid.New()

	// Two of two seats taken; inviting is still allowed, seating is not.
	store := newFakeTeamStore(&model.Team{
		ID:         teamID,
		Name:       "Debate Duo",
		LeaderID:   leaderID,
		MaxMembers: 2,
		Members: []model.TeamMember{
			{TeamID: teamID, UserID: leaderID, Status: model.MembershipLeader},
			{TeamID: teamID, UserID: member, Status: model.MembershipAccepted},
		},
	})

	usersRepo := mocks.NewMockUserRepositoryIface(ctrl)
	notificationsRepo := mocks.NewMockNotificationRepositoryIface(ctrl)
	notifier := service.NewInvitationNotifier(notificationsRepo, usersRepo, nil, "http://localhost", quietLogger())
	registry := service.NewTeamRegistry(store, usersRepo, notifier, quietLogger())

	usersRepo.EXPECT().FindByID(gomock.Any(), invitee).
		Return(&model.User{ID: invitee, IsActive: true}, nil)
	notificationsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	_, err := registry.InviteMember(context.Background(), service.InviteMemberInput{
		TeamID:       teamID,
		ActorID:      leaderID,
		TargetUserID: invitee,
	})
	require.NoError(t, err)

	// Accepting against a full team is refused and seats nothing.
	_, err = registry.RespondInvite(context.Background(), teamID, invitee, true)
	assert.ErrorIs(t, err, domain.ErrTeamFull)
	assert.Equal(t, 2, store.team.ActiveMemberCount())
	assert.NotNil(t, store.team.PendingInvitation(invitee), "invitation must stay pending")

	// Freeing a seat lets the same invitation proceed.
	require.NoError(t, registry.RemoveMember(context.Background(), teamID, leaderID, member))

	notificationsRepo.EXPECT().MarkInviteResponded(gomock.Any(), teamID, invitee).Return(nil)
	team, err := registry.RespondInvite(context.Background(), teamID, invitee, true)
	require.NoError(t, err)
	assert.Equal(t, 2, team.ActiveMemberCount())
	assert.True(t, team.HasMember(invitee))
}
