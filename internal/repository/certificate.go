// internal/repository/certificate.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/campusloop/campusloop/internal/domain"
	"github.com/campusloop/campusloop/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CertificateRepositoryIface interface {
	Upsert(ctx context.Context, cert *model.Certificate) error
	FindByCertificateID(ctx context.Context, certificateID string) (*model.Certificate, error)
	FindByUserAndEvent(ctx context.Context, userID, eventID uuid.UUID) (*model.Certificate, error)
	FindByEvent(ctx context.Context, eventID uuid.UUID) ([]*model.Certificate, error)
}

type CertificateRepository struct {
	db *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) *CertificateRepository {
	return &CertificateRepository{db: db}
}

// Upsert writes the ledger row for (user, event): insert on first issuance,
// update file_url/issued_at/type in place on re-issuance. The uniqueness of
// the pair is the storage layer's constraint, not application locking.
func (r *CertificateRepository) Upsert(ctx context.Context, cert *model.Certificate) error {
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "event_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"type", "file_url", "certificate_id", "issued_at"}),
	}).Omit("User", "Event").Create(cert)
	if result.Error != nil {
		return fmt.Errorf("upserting certificate: %w", result.Error)
	}
	return nil
}

func (r *CertificateRepository) FindByCertificateID(ctx context.Context, certificateID string) (*model.Certificate, error) {
	var cert model.Certificate
	result := r.db.WithContext(ctx).First(&cert, "certificate_id = ?", certificateID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCertificateNotFound
		}
		return nil, fmt.Errorf("finding certificate: %w", result.Error)
	}
	return &cert, nil
}

func (r *CertificateRepository) FindByUserAndEvent(ctx context.Context, userID, eventID uuid.UUID) (*model.Certificate, error) {
	var cert model.Certificate
	result := r.db.WithContext(ctx).
		First(&cert, "user_id = ? AND event_id = ?", userID, eventID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCertificateNotFound
		}
		return nil, fmt.Errorf("finding certificate: %w", result.Error)
	}
	return &cert, nil
}

func (r *CertificateRepository) FindByEvent(ctx context.Context, eventID uuid.UUID) ([]*model.Certificate, error) {
	var certs []*model.Certificate
	result := r.db.WithContext(ctx).Where("event_id = ?", eventID).Find(&certs)
	if result.Error != nil {
		return nil, fmt.Errorf("finding event certificates: %w", result.Error)
	}
	return certs, nil
}
