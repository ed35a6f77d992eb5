package contact

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

var ErrInvalidSubmission = errors.New("invalid contact submission")

const (
	maxName    = 200
	maxEmail   = 320
	maxSubject = 300
	maxMessage = 5000
)

// Submission is what a visitor types into the contact form.
type Submission struct {
	Name    string `json:"name" form:"fullName"`
	Email   string `json:"email" form:"email"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

// Normalize trims every field and fills in a subject when none was given.
func (s Submission) Normalize() Submission {
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.TrimSpace(s.Email)
	s.Subject = strings.TrimSpace(s.Subject)
	s.Message = strings.TrimSpace(s.Message)
	if s.Subject == "" && s.Name != "" {
		s.Subject = fmt.Sprintf("Portfolio Contact: %s", s.Name)
	}
	return s
}

// Validate expects a normalized submission.
func (s Submission) Validate() error {
	switch {
	case s.Name == "":
		return errors.Wrap(ErrInvalidSubmission, "name is required")
	case s.Email == "":
		return errors.Wrap(ErrInvalidSubmission, "email is required")
	case s.Message == "":
		return errors.Wrap(ErrInvalidSubmission, "message is required")
	case !validEmail(s.Email):
		return errors.Wrap(ErrInvalidSubmission, "email address is not valid")
	case utf8.RuneCountInString(s.Name) > maxName:
		return errors.Wrap(ErrInvalidSubmission, "name is too long")
	case utf8.RuneCountInString(s.Email) > maxEmail:
		return errors.Wrap(ErrInvalidSubmission, "email is too long")
	case utf8.RuneCountInString(s.Subject) > maxSubject:
		return errors.Wrap(ErrInvalidSubmission, "subject is too long")
	case utf8.RuneCountInString(s.Message) > maxMessage:
		return errors.Wrap(ErrInvalidSubmission, "message is too long")
	}
	return nil
}

func validEmail(addr string) bool {
	if strings.ContainsAny(addr, " \r\n<>") {
		return false
	}
	local, domain, ok := strings.Cut(addr, "@")
	return ok && local != "" && domain != "" && !strings.Contains(domain, "@")
}
