package email

import (
	"fmt"

	"github.com/resendlabs/resend-go"
)

type EmailService struct {
	client    *resend.Client
	from      string
	fromName  string
	verifyURL string
}

func NewEmailService(apiKey, from, fromName, verifyURL string) *EmailService {
	return &EmailService{
		client:    resend.NewClient(apiKey),
		from:      from,
		fromName:  fromName,
		verifyURL: verifyURL,
	}
}

// SendVerificationEmail mails the time-limited verification link. The token
// expires two minutes after issuance, so the copy says so.
func (s *EmailService) SendVerificationEmail(to, token string) error {
	link := fmt.Sprintf("%s/v1/user/verify?token=%s", s.verifyURL, token)

	html := fmt.Sprintf(`
		<h2>Verify your email</h2>
		<p>Click the link below to verify your email address. The link is valid for 2 minutes.</p>
		<p><a href="%s">Verify email</a></p>`, link)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.fromName, s.from),
		To:      []string{to},
		Subject: "Verify your email address",
		Html:    html,
	}

	if _, err := s.client.Emails.Send(params); err != nil {
		return fmt.Errorf("failed to send verification email: %w", err)
	}
	return nil
}
