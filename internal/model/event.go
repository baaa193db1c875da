// internal/model/event.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type RegistrationType string

const (
	RegistrationIndividual RegistrationType = "individual"
	RegistrationTeam       RegistrationType = "team"
)

// SignatureBlock is one signatory printed at the bottom of a certificate.
type SignatureBlock struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

// SignatureBlocks is stored as a JSONB column; implements sql.Scanner and
// driver.Valuer.
type SignatureBlocks []SignatureBlock

// Scan implements the sql.Scanner interface
func (s *SignatureBlocks) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported Scan, storing driver.Value type %T into type %T", value, s)
	}

	return json.Unmarshal(raw, s)
}

// Value implements the driver.Valuer interface
func (s SignatureBlocks) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

// CertificateTemplate holds the per-event layout fields for issued
// certificates. Embedded into Event with a cert_ column prefix.
type CertificateTemplate struct {
	Enabled          bool            `gorm:"not null;default:false" json:"enabled"`
	TopHeader        string          `gorm:"type:text" json:"top_header"`
	MainHeader       string          `gorm:"type:text" json:"main_header"`
	Title            string          `gorm:"type:text" json:"title"`
	Subtitle         string          `gorm:"type:text" json:"subtitle"`
	PresentationLine string          `gorm:"type:text" json:"presentation_line"`
	Body             string          `gorm:"type:text" json:"body"`
	DateLine         string          `gorm:"type:text" json:"date_line"`
	Signatures       SignatureBlocks `gorm:"type:jsonb" json:"signatures"`
}

type Event struct {
	ID                   uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizerID          uuid.UUID        `gorm:"type:uuid;not null" json:"organizer_id"`
	Title                string           `gorm:"type:text;not null" json:"title"`
	Description          string           `gorm:"type:text" json:"description"`
	RegistrationType     RegistrationType `gorm:"type:text;not null;default:'individual'" json:"registration_type"`
	TeamMinSize          int              `gorm:"not null;default:1" json:"team_min_size"`
	TeamMaxSize          int              `gorm:"not null;default:1" json:"team_max_size"`
	MaxParticipants      int              `gorm:"not null" json:"max_participants"`
	RegistrationDeadline *time.Time       `json:"registration_deadline"`
	ConcludedAt          *time.Time       `json:"concluded_at"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`

	Certificate CertificateTemplate `gorm:"embedded;embeddedPrefix:cert_" json:"certificate_template"`

	Participants      []EventParticipant `gorm:"foreignKey:EventID" json:"participants,omitempty"`
	TeamRegistrations []TeamRegistration `gorm:"foreignKey:EventID" json:"team_registrations,omitempty"`
}

// RegistrationOpen reports whether registrations can still be mutated. A nil
// deadline means registration stays open until the event concludes.
func (e *Event) RegistrationOpen(now time.Time) bool {
	if e.ConcludedAt != nil && !now.Before(*e.ConcludedAt) {
		return false
	}
	return e.RegistrationDeadline == nil || now.Before(*e.RegistrationDeadline)
}

// Concluded reports whether the event has finished.
func (e *Event) Concluded(now time.Time) bool {
	return e.ConcludedAt != nil && !now.Before(*e.ConcludedAt)
}

// ParticipantIDs resolves the issuance identity set for the event: the
// registered users in individual mode, the de-duplicated union of team
// registration snapshots in team mode. Order is first-registered-first.
func (e *Event) ParticipantIDs() []uuid.UUID {
	if e.RegistrationType == RegistrationIndividual {
		ids := make([]uuid.UUID, 0, len(e.Participants))
		for _, p := range e.Participants {
			ids = append(ids, p.UserID)
		}
		return ids
	}

	seen := make(map[uuid.UUID]struct{})
	var ids []uuid.UUID
	for _, reg := range e.TeamRegistrations {
		for _, m := range reg.Members {
			if _, ok := seen[m.UserID]; ok {
				continue
			}
			seen[m.UserID] = struct{}{}
			ids = append(ids, m.UserID)
		}
	}
	return ids
}

type EventParticipant struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	EventID      uuid.UUID `gorm:"type:uuid;uniqueIndex:uniq_event_participant;not null" json:"event_id"`
	UserID       uuid.UUID `gorm:"type:uuid;uniqueIndex:uniq_event_participant;not null" json:"user_id"`
	RegisteredAt time.Time `json:"registered_at"`

	User User `gorm:"foreignKey:UserID" json:"user"`
}

type TeamRegistration struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	EventID      uuid.UUID `gorm:"type:uuid;uniqueIndex:uniq_event_team;not null" json:"event_id"`
	TeamID       uuid.UUID `gorm:"type:uuid;uniqueIndex:uniq_event_team;not null" json:"team_id"`
	RegisteredAt time.Time `json:"registered_at"`

	// Members is the membership snapshot taken at registration time; later
	// team mutations do not rewrite it.
	Members []TeamRegistrationMember `gorm:"foreignKey:TeamRegistrationID" json:"members"`
}

type TeamRegistrationMember struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TeamRegistrationID uuid.UUID `gorm:"type:uuid;index;not null" json:"team_registration_id"`
	UserID             uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
}
