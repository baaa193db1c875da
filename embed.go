package campusloop

import "embed"

// EmailFS embeds the email template groups consumed by internal/email.
//
//go:embed templates/emails
var EmailFS embed.FS
