// internal/model/certificate.go
package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type CertificateType string

const (
	CertificateParticipation CertificateType = "participation"
	CertificateWinner        CertificateType = "winner"
	CertificateRunnerUp      CertificateType = "runner_up"
	CertificateAppreciation  CertificateType = "appreciation"
)

// ValidCertificateType reports whether t is one of the issuable types.
func ValidCertificateType(t CertificateType) bool {
	switch t {
	case CertificateParticipation, CertificateWinner, CertificateRunnerUp, CertificateAppreciation:
		return true
	}
	return false
}

// Certificate is the issuance ledger row: at most one per (user, event),
// re-issuance updates it in place.
type Certificate struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID       `gorm:"type:uuid;uniqueIndex:uniq_user_event_cert;not null" json:"user_id"`
	EventID       uuid.UUID       `gorm:"type:uuid;uniqueIndex:uniq_user_event_cert;not null" json:"event_id"`
	Type          CertificateType `gorm:"type:text;not null;default:'participation'" json:"type"`
	FileURL       string          `gorm:"type:text;not null" json:"file_url"`
	CertificateID string          `gorm:"type:text;uniqueIndex;not null" json:"certificate_id"`
	IssuedAt      time.Time       `json:"issued_at"`

	User  User  `gorm:"foreignKey:UserID" json:"user"`
	Event Event `gorm:"foreignKey:EventID" json:"event"`
}

// NewCertificateID derives the public certificate number from short suffixes
// of the event and user ids. Deterministic, so re-issuance reproduces the
// same number; the unique index on certificate_id backstops collisions.
func NewCertificateID(eventID, userID uuid.UUID) string {
	return fmt.Sprintf("CERT-%s-%s", idSuffix(eventID, 6), idSuffix(userID, 6))
}

func idSuffix(id uuid.UUID, n int) string {
	s := strings.ReplaceAll(id.String(), "-", "")
	return strings.ToUpper(s[len(s)-n:])
}
