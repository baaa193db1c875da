// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotAuthorized = errors.New("not authorized")

	// Team-related errors
	ErrTeamNotFound       = errors.New("team not found")
	ErrMemberNotFound     = errors.New("member not found")
	ErrInvitationNotFound = errors.New("invitation not found")
	ErrAlreadyMember      = errors.New("user is already a team member")
	ErrAlreadyInvited     = errors.New("user already has a pending invitation")
	ErrTeamFull           = errors.New("team is at maximum capacity")
	ErrLeaderRemoval      = errors.New("leader cannot be removed, delete the team instead")

	// Event registration errors
	ErrEventNotFound            = errors.New("event not found")
	ErrRegistrationNotFound     = errors.New("registration not found")
	ErrAlreadyRegistered        = errors.New("already registered for this event")
	ErrEventFull                = errors.New("event is at maximum capacity")
	ErrTeamSizeInvalid          = errors.New("team size outside the event's allowed range")
	ErrRegistrationClosed       = errors.New("registration deadline has passed")
	ErrRegistrationTypeMismatch = errors.New("operation does not match the event's registration type")

	// User-related errors
	ErrUserNotFound = errors.New("user not found")
	ErrUserInactive = errors.New("user account is inactive")

	// Certificate-related errors
	ErrCertificateNotFound   = errors.New("certificate not found")
	ErrTemplateNotConfigured = errors.New("certificate template is not configured for this event")
	ErrEventNotConcluded     = errors.New("event has not concluded yet")
	ErrArtifactMissing       = errors.New("certificate artifact missing from storage")
	ErrArtifactStorage       = errors.New("artifact storage failure")
)

// Error codes exposed on the API surface. Wrapped causes vary; the code is
// the stable part of the contract.
const (
	CodeValidation            = "validation_error"
	CodeNotFound              = "not_found"
	CodeNotAuthorized         = "not_authorized"
	CodeConflict              = "conflict"
	CodeTemplateNotConfigured = "template_not_configured"
	CodeStorage               = "storage_error"
	CodeInternal              = "internal_error"
)

// Code maps an error to its taxonomy code. Unrecognized errors are internal.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrLeaderRemoval),
		errors.Is(err, ErrRegistrationTypeMismatch),
		errors.Is(err, ErrUserInactive):
		return CodeValidation
	case errors.Is(err, ErrTeamNotFound),
		errors.Is(err, ErrMemberNotFound),
		errors.Is(err, ErrInvitationNotFound),
		errors.Is(err, ErrEventNotFound),
		errors.Is(err, ErrRegistrationNotFound),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrCertificateNotFound):
		return CodeNotFound
	case errors.Is(err, ErrNotAuthorized):
		return CodeNotAuthorized
	case errors.Is(err, ErrAlreadyMember),
		errors.Is(err, ErrAlreadyInvited),
		errors.Is(err, ErrTeamFull),
		errors.Is(err, ErrAlreadyRegistered),
		errors.Is(err, ErrEventFull),
		errors.Is(err, ErrTeamSizeInvalid),
		errors.Is(err, ErrRegistrationClosed),
		errors.Is(err, ErrEventNotConcluded):
		return CodeConflict
	case errors.Is(err, ErrTemplateNotConfigured):
		return CodeTemplateNotConfigured
	case errors.Is(err, ErrArtifactMissing),
		errors.Is(err, ErrArtifactStorage):
		return CodeStorage
	default:
		return CodeInternal
	}
}
