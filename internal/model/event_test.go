package model_test

import (
	"testing"
	"time"

	"github.com/campusloop/campusloop/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRegistrationOpen(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	t.Run("no deadline stays open", func(t *testing.T) {
		e := model.Event{}
		assert.True(t, e.RegistrationOpen(now))
	})

	t.Run("deadline in the future", func(t *testing.T) {
		e := model.Event{RegistrationDeadline: &future}
		assert.True(t, e.RegistrationOpen(now))
	})

	t.Run("deadline passed", func(t *testing.T) {
		e := model.Event{RegistrationDeadline: &past}
		assert.False(t, e.RegistrationOpen(now))
	})

	t.Run("conclusion closes an open deadline", func(t *testing.T) {
		e := model.Event{RegistrationDeadline: &future, ConcludedAt: &past}
		assert.False(t, e.RegistrationOpen(now))
	})
}

func TestConcluded(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.False(t, (&model.Event{}).Concluded(now))
	assert.False(t, (&model.Event{ConcludedAt: &future}).Concluded(now))
	assert.True(t, (&model.Event{ConcludedAt: &past}).Concluded(now))
}

func TestParticipantIDs(t *testing.T) {
	u1, u2, u3 := uuid.New(), uuid.New(), uuid.New()

	t.Run("individual mode preserves registration order", func(t *testing.T) {
		e := model.Event{
			RegistrationType: model.RegistrationIndividual,
			Participants: []model.EventParticipant{
				{UserID: u1}, {UserID: u2},
			},
		}
		assert.Equal(t, []uuid.UUID{u1, u2}, e.ParticipantIDs())
	})

	t.Run("team mode de-duplicates across snapshots", func(t *testing.T) {
		e := model.Event{
			RegistrationType: model.RegistrationTeam,
			TeamRegistrations: []model.TeamRegistration{
				{Members: []model.TeamRegistrationMember{{UserID: u1}, {UserID: u2}}},
				{Members: []model.TeamRegistrationMember{{UserID: u2}, {UserID: u3}}},
			},
		}
		assert.Equal(t, []uuid.UUID{u1, u2, u3}, e.ParticipantIDs())
	})
}

func TestTeamSeatHelpers(t *testing.T) {
	leader, member, invitee := uuid.New(), uuid.New(), uuid.New()
	team := model.Team{
		LeaderID: leader,
		Members: []model.TeamMember{
			{UserID: leader, Status: model.MembershipLeader},
			{UserID: member, Status: model.MembershipAccepted},
			{UserID: invitee, Status: model.MembershipPending},
		},
	}

	assert.Equal(t, 2, team.ActiveMemberCount())
	assert.Equal(t, []uuid.UUID{leader, member}, team.MemberIDs())
	assert.True(t, team.HasMember(invitee))
	assert.False(t, team.HasMember(uuid.New()))
}
