package smtp

import (
	"fmt"

	"github.com/JMURv/estate-backend/internal/config"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type EmailServer struct {
	server string
	port   int
	user   string
	pass   string
	appURL string
}

func New(conf config.Config) *EmailServer {
	return &EmailServer{
		server: conf.Email.Server,
		port:   conf.Email.Port,
		user:   conf.Email.User,
		pass:   conf.Email.Pass,
		appURL: conf.Email.AppURL,
	}
}

func (s *EmailServer) getMessageBase(subject, toEmail string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", s.user)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	return m
}

func (s *EmailServer) send(m *gomail.Message) error {
	d := gomail.NewDialer(s.server, s.port, s.user, s.pass)
	if err := d.DialAndSend(m); err != nil {
		zap.L().Error(
			"Failed to send an email",
			zap.Error(err),
		)
		return err
	}
	return nil
}

// SendVerificationEmail mails the raw verification secret as a link.
// The secret itself is never logged.
func (s *EmailServer) SendVerificationEmail(email, rawToken string) error {
	m := s.getMessageBase("Verify your email", email)
	m.SetBody(
		"text/html", fmt.Sprintf(
			`<p>Welcome! Please confirm your email address:</p>
<p><a href="%s/auth/verify-email?token=%s">Verify email</a></p>`,
			s.appURL, rawToken,
		),
	)
	return s.send(m)
}

func (s *EmailServer) SendPasswordResetEmail(email, rawToken string) error {
	m := s.getMessageBase("Reset your password", email)
	m.SetBody(
		"text/html", fmt.Sprintf(
			`<p>A password reset was requested for your account. The link expires shortly:</p>
<p><a href="%s/auth/reset-password?token=%s">Reset password</a></p>
<p>If this wasn't you, ignore this message.</p>`,
			s.appURL, rawToken,
		),
	)
	return s.send(m)
}
