package model_test

import (
	"strings"
	"testing"

	"github.com/campusloop/campusloop/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewCertificateID(t *testing.T) {
	eventID := uuid.MustParse("6f1c1f46-9aab-4a3d-9c3f-2b6e4f8a1d2e")
	userID := uuid.MustParse("0b9d8e7f-1234-4cde-8f00-aabbccddeeff")

	id := model.NewCertificateID(eventID, userID)
	assert.Equal(t, "CERT-8A1D2E-DDEEFF", id)

	// Deterministic: the same pair always yields the same number.
	assert.Equal(t, id, model.NewCertificateID(eventID, userID))

	// Distinct users get distinct numbers for the same event.
	other := model.NewCertificateID(eventID, uuid.New())
	assert.NotEqual(t, id, other)
	assert.True(t, strings.HasPrefix(other, "CERT-8A1D2E-"))
}

func TestValidCertificateType(t *testing.T) {
	assert.True(t, model.ValidCertificateType(model.CertificateParticipation))
	assert.True(t, model.ValidCertificateType(model.CertificateWinner))
	assert.True(t, model.ValidCertificateType(model.CertificateRunnerUp))
	assert.True(t, model.ValidCertificateType(model.CertificateAppreciation))
	assert.False(t, model.ValidCertificateType(model.CertificateType("gold_star")))
	assert.False(t, model.ValidCertificateType(model.CertificateType("")))
}
