package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/campusloop/campusloop/internal/domain"
	"github.com/campusloop/campusloop/internal/mocks"
	"github.com/campusloop/campusloop/internal/model"
	"github.com/campusloop/campusloop/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeEventStore enforces the same serialized conditional-write semantics the
// real repository gets from its row lock, so registrar tests (including the
// racing ones) exercise the full predicate path.
type fakeEventStore struct {
	mu           sync.Mutex
	event        *model.Event
	participants []uuid.UUID
	teamRegs     []*model.TeamRegistration
}

func newFakeEventStore(event *model.Event) *fakeEventStore {
	return &fakeEventStore{event: event}
}

func (f *fakeEventStore) FindByID(_ context.Context, id uuid.UUID) (*model.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.event == nil || f.event.ID != id {
		return nil, domain.ErrEventNotFound
	}
	snapshot := *f.event
	snapshot.Participants = nil
	for _, userID := range f.participants {
		snapshot.Participants = append(snapshot.Participants, model.EventParticipant{
			EventID: id, UserID: userID,
		})
	}
	snapshot.TeamRegistrations = nil
	for _, reg := range f.teamRegs {
		snapshot.TeamRegistrations = append(snapshot.TeamRegistrations, *reg)
	}
	return &snapshot, nil
}

func (f *fakeEventStore) AddParticipant(_ context.Context, eventID, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.participants {
		if existing == userID {
			return domain.ErrAlreadyRegistered
		}
	}
	if len(f.participants) >= f.event.MaxParticipants {
		return domain.ErrEventFull
	}
	f.participants = append(f.participants, userID)
	return nil
}

func (f *fakeEventStore) RemoveParticipant(_ context.Context, eventID, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, existing := range f.participants {
		if existing == userID {
			f.participants = append(f.participants[:i], f.participants[i+1:]...)
			return nil
		}
	}
	return domain.ErrRegistrationNotFound
}

func (f *fakeEventStore) AddTeamRegistration(_ context.Context, reg *model.TeamRegistration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	seats := make(map[uuid.UUID]struct{})
	for _, existing := range f.teamRegs {
		if existing.TeamID == reg.TeamID {
			return domain.ErrAlreadyRegistered
		}
		for _, m := range existing.Members {
			seats[m.UserID] = struct{}{}
		}
	}
	for _, m := range reg.Members {
		seats[m.UserID] = struct{}{}
	}
	if len(seats) > f.event.MaxParticipants {
		return domain.ErrEventFull
	}
	f.teamRegs = append(f.teamRegs, reg)
	return nil
}

func (f *fakeEventStore) RemoveTeamRegistration(_ context.Context, eventID, teamID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, existing := range f.teamRegs {
		if existing.TeamID == teamID {
			f.teamRegs = append(f.teamRegs[:i], f.teamRegs[i+1:]...)
			return nil
		}
	}
	return domain.ErrRegistrationNotFound
}

func individualEvent(maxParticipants int) *model.Event {
	return &model.Event{
		ID:               uuid.New(),
		OrganizerID:      uuid.New(),
		Title:            "Intro to Soldering",
		RegistrationType: model.RegistrationIndividual,
		MaxParticipants:  maxParticipants,
	}
}

func TestRegisterIndividual(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := newFakeEventStore(individualEvent(2))
	registrar := service.NewEventRegistrar(store, mocks.NewMockTeamRepositoryIface(ctrl), quietLogger())

	u1, u2, u3 := uuid.New(), uuid.New(), uuid.New()
	eventID := store.event.ID

	require.NoError(t, registrar.RegisterIndividual(context.Background(), eventID, u1))
	require.NoError(t, registrar.RegisterIndividual(context.Background(), eventID, u2))

	// Duplicate registration is a conflict, not a second seat.
	err := registrar.RegisterIndividual(context.Background(), eventID, u1)
	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)

	// Third distinct user hits the cap.
	err = registrar.RegisterIndividual(context.Background(), eventID, u3)
	assert.ErrorIs(t, err, domain.ErrEventFull)

	// Unregistering frees the seat for the waiting user.
	require.NoError(t, registrar.UnregisterIndividual(context.Background(), eventID, u2))
	assert.NoError(t, registrar.RegisterIndividual(context.Background(), eventID, u3))
}

func TestRegisterIndividualLastSeatRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := newFakeEventStore(individualEvent(1))
	registrar := service.NewEventRegistrar(store, mocks.NewMockTeamRepositoryIface(ctrl), quietLogger())

	eventID := store.event.ID
	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = registrar.RegisterIndividual(context.Background(), eventID, uuid.New())
		}(i)
	}
	wg.Wait()

	var wins, fulls int
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case assert.ErrorIs(t, err, domain.ErrEventFull):
			fulls++
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, 1, fulls)
	assert.Len(t, store.participants, 1)
}

func TestRegisterIndividualGates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("closed after deadline", func(t *testing.T) {
		event := individualEvent(10)
		deadline := time.Now().Add(-time.Hour)
		event.RegistrationDeadline = &deadline

		store := newFakeEventStore(event)
		registrar := service.NewEventRegistrar(store, mocks.NewMockTeamRepositoryIface(ctrl), quietLogger())

		err := registrar.RegisterIndividual(context.Background(), event.ID, uuid.New())
		assert.ErrorIs(t, err, domain.ErrRegistrationClosed)

		// The deadline also ends the unregister window.
		err = registrar.UnregisterIndividual(context.Background(), event.ID, uuid.New())
		assert.ErrorIs(t, err, domain.ErrRegistrationClosed)
	})

	t.Run("team-mode event rejects individual registration", func(t *testing.T) {
		event := individualEvent(10)
		event.RegistrationType = model.RegistrationTeam

		store := newFakeEventStore(event)
		registrar := service.NewEventRegistrar(store, mocks.NewMockTeamRepositoryIface(ctrl), quietLogger())

		err := registrar.RegisterIndividual(context.Background(), event.ID, uuid.New())
		assert.ErrorIs(t, err, domain.ErrRegistrationTypeMismatch)
	})

	t.Run("unknown event", func(t *testing.T) {
		store := newFakeEventStore(individualEvent(10))
		registrar := service.NewEventRegistrar(store, mocks.NewMockTeamRepositoryIface(ctrl), quietLogger())

		err := registrar.RegisterIndividual(context.Background(), uuid.New(), uuid.New())
		assert.ErrorIs(t, err, domain.ErrEventNotFound)
	})
}

func teamOf(leaderID uuid.UUID, memberCount int) *model.Team {
	team := &model.Team{
		ID:         uuid.New(),
		LeaderID:   leaderID,
		MaxMembers: memberCount + 2,
		Members: []model.TeamMember{
			{UserID: leaderID, Status: model.MembershipLeader},
		},
	}
	for i := 1; i < memberCount; i++ {
		team.Members = append(team.Members, model.TeamMember{
			UserID: uuid.New(), Status: model.MembershipAccepted,
		})
	}
	return team
}

func TestRegisterTeam(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	event := &model.Event{
		ID:               uuid.New(),
		RegistrationType: model.RegistrationTeam,
		TeamMinSize:      2,
		TeamMaxSize:      4,
		MaxParticipants:  5,
	}
	leaderID := uuid.New()
	team := teamOf(leaderID, 3)

	store := newFakeEventStore(event)
	teamsRepo := mocks.NewMockTeamRepositoryIface(ctrl)
	registrar := service.NewEventRegistrar(store, teamsRepo, quietLogger())

	teamsRepo.EXPECT().FindByID(gomock.Any(), team.ID).Return(team, nil).AnyTimes()

	require.NoError(t, registrar.RegisterTeam(context.Background(), event.ID, team.ID, leaderID))
	require.Len(t, store.teamRegs, 1)
	assert.Len(t, store.teamRegs[0].Members, 3)

	// Registering the same team again is a conflict.
	err := registrar.RegisterTeam(context.Background(), event.ID, team.ID, leaderID)
	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)

	// A second team pushing the seat union past capacity is rejected.
	otherLeader := uuid.New()
	other := teamOf(otherLeader, 3)
	teamsRepo.EXPECT().FindByID(gomock.Any(), other.ID).Return(other, nil)

	err = registrar.RegisterTeam(context.Background(), event.ID, other.ID, otherLeader)
	assert.ErrorIs(t, err, domain.ErrEventFull)

	// Withdrawal reopens the seats.
	require.NoError(t, registrar.UnregisterTeam(context.Background(), event.ID, team.ID, leaderID))
	teamsRepo.EXPECT().FindByID(gomock.Any(), other.ID).Return(other, nil)
	assert.NoError(t, registrar.RegisterTeam(context.Background(), event.ID, other.ID, otherLeader))
}

func TestRegisterTeamSizeBounds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	event := &model.Event{
		ID:               uuid.New(),
		RegistrationType: model.RegistrationTeam,
		TeamMinSize:      3,
		TeamMaxSize:      4,
		MaxParticipants:  20,
	}

	store := newFakeEventStore(event)
	teamsRepo := mocks.NewMockTeamRepositoryIface(ctrl)
	registrar := service.NewEventRegistrar(store, teamsRepo, quietLogger())

	t.Run("below minimum", func(t *testing.T) {
		leaderID := uuid.New()
		small := teamOf(leaderID, 2)
		teamsRepo.EXPECT().FindByID(gomock.Any(), small.ID).Return(small, nil)

		err := registrar.RegisterTeam(context.Background(), event.ID, small.ID, leaderID)
		assert.ErrorIs(t, err, domain.ErrTeamSizeInvalid)
	})

	t.Run("above maximum", func(t *testing.T) {
		leaderID := uuid.New()
		big := teamOf(leaderID, 5)
		teamsRepo.EXPECT().FindByID(gomock.Any(), big.ID).Return(big, nil)

		err := registrar.RegisterTeam(context.Background(), event.ID, big.ID, leaderID)
		assert.ErrorIs(t, err, domain.ErrTeamSizeInvalid)
	})

	t.Run("deadline ends the withdrawal window", func(t *testing.T) {
		leaderID := uuid.New()
		team := teamOf(leaderID, 3)
		teamsRepo.EXPECT().FindByID(gomock.Any(), team.ID).Return(team, nil).AnyTimes()

		require.NoError(t, registrar.RegisterTeam(context.Background(), event.ID, team.ID, leaderID))
		require.Len(t, store.teamRegs, 1)

		deadline := time.Now().Add(-time.Hour)
		store.event.RegistrationDeadline = &deadline
		defer func() { store.event.RegistrationDeadline = nil }()

		err := registrar.UnregisterTeam(context.Background(), event.ID, team.ID, leaderID)
		assert.ErrorIs(t, err, domain.ErrRegistrationClosed)
		assert.Len(t, store.teamRegs, 1, "registration must survive a late withdrawal attempt")

		store.event.RegistrationDeadline = nil
		require.NoError(t, registrar.UnregisterTeam(context.Background(), event.ID, team.ID, leaderID))
	})

	t.Run("pending invitees do not count toward size", func(t *testing.T) {
		leaderID := uuid.New()
		team := teamOf(leaderID, 2)
		team.Members = append(team.Members, model.TeamMember{
			UserID: uuid.New(), Status: model.MembershipPending,
		})
		teamsRepo.EXPECT().FindByID(gomock.Any(), team.ID).Return(team, nil)

		err := registrar.RegisterTeam(context.Background(), event.ID, team.ID, leaderID)
		assert.ErrorIs(t, err, domain.ErrTeamSizeInvalid)
	})

	t.Run("only the leader registers", func(t *testing.T) {
		leaderID := uuid.New()
		team := teamOf(leaderID, 3)
		teamsRepo.EXPECT().FindByID(gomock.Any(), team.ID).Return(team, nil)

		err := registrar.RegisterTeam(context.Background(), event.ID, team.ID, uuid.New())
		assert.ErrorIs(t, err, domain.ErrNotAuthorized)
	})
}
