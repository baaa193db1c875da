// internal/service/certificate.go
package service

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/campusloop/campusloop/internal/domain"
	"github.com/campusloop/campusloop/internal/model"
	"github.com/campusloop/campusloop/internal/render"
	"github.com/campusloop/campusloop/internal/repository"
	"github.com/campusloop/campusloop/internal/storage"
	"github.com/google/uuid"
)

// Renderer produces one certificate artifact per participant.
type Renderer interface {
	Render(data render.CertificateData) ([]byte, error)
}

// CertificateIssuer resolves the participant set for an event, renders
// per-participant artifacts, and maintains the idempotent issuance ledger.
type CertificateIssuer struct {
	certs     repository.CertificateRepositoryIface
	events    repository.EventRepositoryIface
	users     repository.UserRepositoryIface
	renderer  Renderer
	artifacts storage.ArtifactStore
	logger    *slog.Logger
	now       func() time.Time
}

func NewCertificateIssuer(
	certs repository.CertificateRepositoryIface,
	events repository.EventRepositoryIface,
	users repository.UserRepositoryIface,
	renderer Renderer,
	artifacts storage.ArtifactStore,
	logger *slog.Logger,
) *CertificateIssuer {
	return &CertificateIssuer{
		certs:     certs,
		events:    events,
		users:     users,
		renderer:  renderer,
		artifacts: artifacts,
		logger:    logger,
		now:       time.Now,
	}
}

// GenerateResult tallies a batch run. Failed participants never abort the
// batch; they are counted here instead.
type GenerateResult struct {
	Generated int `json:"generated_count"`
	Failed    int `json:"error_count"`
}

// GenerateForEvent issues one certificate per participant of the event.
// Re-running updates each (user, event) ledger row in place.
func (s *CertificateIssuer) GenerateForEvent(
	ctx context.Context,
	eventID uuid.UUID,
	certType model.CertificateType,
	actorID uuid.UUID,
	actorRole model.Role,
) (*GenerateResult, error) {
	if !model.ValidCertificateType(certType) {
		return nil, domain.ErrInvalidInput
	}

	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.OrganizerID != actorID && !actorRole.IsAdmin() {
		return nil, domain.ErrNotAuthorized
	}
	if !event.Certificate.Enabled {
		return nil, domain.ErrTemplateNotConfigured
	}
	if !event.Concluded(s.now()) {
		return nil, domain.ErrEventNotConcluded
	}

	participantIDs := event.ParticipantIDs()
	users, err := s.users.FindByIDs(ctx, participantIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*model.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	result := &GenerateResult{}
	for _, userID := range participantIDs {
		if err := s.issueOne(ctx, event, byID[userID], userID, certType); err != nil {
			result.Failed++
			s.logger.Warn("certificate issuance failed for participant",
				"event_id", eventID, "user_id", userID, "error", err)
			continue
		}
		result.Generated++
	}

	s.logger.Info("certificate batch finished",
		"event_id", eventID, "generated", result.Generated, "failed", result.Failed)
	return result, nil
}

// issueOne renders, stores, and ledgers a single participant's certificate.
func (s *CertificateIssuer) issueOne(
	ctx context.Context,
	event *model.Event,
	user *model.User,
	userID uuid.UUID,
	certType model.CertificateType,
) error {
	if user == nil {
		return domain.ErrUserNotFound
	}

	issuedAt := s.now().UTC()
	certificateID := model.NewCertificateID(event.ID, userID)

	artifact, err := s.renderer.Render(render.CertificateData{
		RecipientName: user.RecipientName(),
		CertificateID: certificateID,
		IssuedOn:      issuedAt,
		Template:      event.Certificate,
	})
	if err != nil {
		return err
	}

	fileURL, err := s.artifacts.Put(ctx, storage.CertificateKey(event.ID, userID), artifact)
	if err != nil {
		return err
	}

	return s.certs.Upsert(ctx, &model.Certificate{
		UserID:        userID,
		EventID:       event.ID,
		Type:          certType,
		FileURL:       fileURL,
		CertificateID: certificateID,
		IssuedAt:      issuedAt,
	})
}

// DownloadCertificate returns the stored artifact for the certificate.
// Owner-or-admin only; a non-admin stranger gets NotAuthorized whether or not
// the certificate exists. A ledger row whose artifact is gone is storage
// drift and is reported, never silently regenerated.
func (s *CertificateIssuer) DownloadCertificate(
	ctx context.Context,
	certificateID string,
	requesterID uuid.UUID,
	requesterRole model.Role,
) (io.ReadCloser, *model.Certificate, error) {
	cert, err := s.certs.FindByCertificateID(ctx, certificateID)
	if err != nil {
		if !requesterRole.IsAdmin() {
			return nil, nil, domain.ErrNotAuthorized
		}
		return nil, nil, err
	}
	if cert.UserID != requesterID && !requesterRole.IsAdmin() {
		return nil, nil, domain.ErrNotAuthorized
	}

	key := storage.CertificateKey(cert.EventID, cert.UserID)
	exists, err := s.artifacts.Exists(ctx, key)
	if err != nil {
		return nil, nil, err
	}
	if !exists {
		return nil, nil, domain.ErrArtifactMissing
	}

	rc, err := s.artifacts.Open(ctx, key)
	if err != nil {
		return nil, nil, err
	}
	return rc, cert, nil
}
