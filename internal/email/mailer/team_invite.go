// internal/email/mailer/team_invite.go
package mailer

import "github.com/campusloop/campusloop/internal/email"

// TeamInviteTemplateData contains data for the team invite email template
type TeamInviteTemplateData struct {
	RecipientName string
	TeamName      string
	InviterName   string
	Message       string
	InvitesLink   string
}

// SendTeamInviteEmail sends a team invitation email to the invited user
func SendTeamInviteEmail(s *email.Service, to string, data TeamInviteTemplateData) error {
	emailData := email.EmailData{
		To:           to,
		FromName:     "CampusLoop",
		Subject:      "You have been invited to join " + data.TeamName,
		TemplateName: "team_invite",
		TemplateData: data,
	}

	return s.SendEmail(emailData)
}
