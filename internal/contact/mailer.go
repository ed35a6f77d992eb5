package contact

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/pkg/errors"

	"github.com/Zachkp/folio/internal/config"
)

var ErrMailNotConfigured = errors.New("SMTP credentials not configured")

// Sender delivers a contact submission to the site owner.
type Sender interface {
	Send(s Submission) error
}

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Mailer sends submissions over SMTP with PLAIN auth.
type Mailer struct {
	host, port string
	user, pass string
	to         string
	enabled    bool
	sendMail   sendMailFunc
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		pass:     cfg.SMTPPass,
		to:       cfg.ToEmail,
		enabled:  cfg.MailEnabled(),
		sendMail: smtp.SendMail,
	}
}

func (m *Mailer) Configured() bool {
	return m.enabled
}

func (m *Mailer) Send(s Submission) error {
	if !m.Configured() {
		return ErrMailNotConfigured
	}

	auth := smtp.PlainAuth("", m.user, m.pass, m.host)
	err := m.sendMail(m.host+":"+m.port, auth, m.user, []string{m.to}, m.compose(s))
	return errors.Wrap(err, "send contact email")
}

func (m *Mailer) compose(s Submission) []byte {
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Subject: %s
Message:
%s

---
Sent from your portfolio contact form
`, s.Name, s.Email, s.Subject, s.Message)

	return []byte("To: " + m.to + "\r\n" +
		"Subject: " + headerValue(s.Subject) + "\r\n" +
		"From: " + m.user + "\r\n" +
		"Reply-To: " + headerValue(s.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}

// headerValue keeps visitor input from injecting extra headers.
func headerValue(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}
