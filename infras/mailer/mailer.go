package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"eikaiwa/config"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog/log"
)

// Mailer delivers transactional mail. Delivery is best-effort: callers log
// failures and never roll back committed work because of them.
type Mailer interface {
	Send(to, subject, body string) error
}

type smtpMailer struct {
	config *config.Config
}

func New(cfg *config.Config) Mailer {
	if cfg.External.SMTP.Host == "" {
		log.Warn().Msg("No SMTP host configured, mail will be logged instead of sent")

		return &logMailer{}
	}

	return &smtpMailer{config: cfg}
}

func (m *smtpMailer) Send(to, subject, body string) error {
	smtpCfg := m.config.External.SMTP

	msg := strings.Join([]string{
		"From: " + smtpCfg.From,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		`Content-Type: text/plain; charset="UTF-8"`,
		"",
		body,
	}, "\r\n")

	auth := smtp.PlainAuth("", smtpCfg.Username, smtpCfg.Password, smtpCfg.Host)
	addr := net.JoinHostPort(smtpCfg.Host, smtpCfg.Port)

	if err := smtp.SendMail(addr, auth, smtpCfg.From, []string{to}, []byte(msg)); err != nil {
		log.Error().Err(err).Str("to", to).Msg("failed to send mail")

		return fmt.Errorf("failed to send mail: %w", err)
	}

	log.Info().Str("to", to).Str("subject", subject).Msg("Mail sent")

	return nil
}

// logMailer stands in when SMTP is not configured (local development).
type logMailer struct{}

func (m *logMailer) Send(to, subject, body string) error {
	log.Info().Str("to", to).Str("subject", subject).Str("body", body).Msg("[mail]")

	return nil
}
