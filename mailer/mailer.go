// Package mailer sends transactional email through Resend.
package mailer

import (
	"fmt"

	"github.com/resend/resend-go/v2"
	"socialword/config"
)

var client *resend.Client

// Init configures the Resend client. An empty key leaves the mailer
// disabled, which makes SendVerificationEmail fail.
func Init(apiKey string) {
	if apiKey == "" {
		return
	}
	client = resend.NewClient(apiKey)
}

func SendVerificationEmail(to, username, code string) error {
	if client == nil {
		return fmt.Errorf("mailer is not configured")
	}

	html := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; line-height: 1.5">
			<h2 style="color: #4f46e5;">Hello %s,</h2>
			<p>Here is your verification code:</p>
			<p style="font-size: 32px; font-weight: bold; color: #000;">%s</p>
			<p>This code is valid for 10 minutes.</p>
			<p style="font-size: 12px; color: #888;">&ndash; The SocialWord team</p>
		</div>
	`, username, code)

	params := &resend.SendEmailRequest{
		From:    config.Cfg.MailFrom,
		To:      []string{to},
		Subject: "Your verification code",
		Html:    html,
	}

	if _, err := client.Emails.Send(params); err != nil {
		return fmt.Errorf("send verification email: %w", err)
	}
	return nil
}
