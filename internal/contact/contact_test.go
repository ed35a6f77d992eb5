package contact

import (
	"context"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/store"
)

type fakeRepo struct {
	saved    []store.ContactMessage
	statuses map[string]string
	saveErr  error
}

func (r *fakeRepo) SaveContact(_ context.Context, m store.ContactMessage) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = append(r.saved, m)
	return nil
}

func (r *fakeRepo) UpdateContactStatus(_ context.Context, id, status string) error {
	if r.statuses == nil {
		r.statuses = map[string]string{}
	}
	r.statuses[id] = status
	return nil
}

type fakeSender struct {
	got []Submission
	err error
}

func (s *fakeSender) Send(sub Submission) error {
	s.got = append(s.got, sub)
	return s.err
}

func validSubmission() Submission {
	return Submission{Name: " Ada ", Email: "ada@example.com", Message: " Hello there "}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Submission)
		ok     bool
	}{
		{"valid", func(*Submission) {}, true},
		{"missing name", func(s *Submission) { s.Name = "  " }, false},
		{"missing email", func(s *Submission) { s.Email = "" }, false},
		{"missing message", func(s *Submission) { s.Message = "\n" }, false},
		{"no at sign", func(s *Submission) { s.Email = "ada.example.com" }, false},
		{"two at signs", func(s *Submission) { s.Email = "a@b@c" }, false},
		{"header injection", func(s *Submission) { s.Email = "a@b.com\r\nBcc: x@y" }, false},
		{"long message", func(s *Submission) { s.Message = strings.Repeat("x", maxMessage+1) }, false},
		{"long name", func(s *Submission) { s.Name = strings.Repeat("n", maxName+1) }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSubmission()
			tt.modify(&s)
			err := s.Normalize().Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidSubmission)
			}
		})
	}
}

func TestNormalizeDefaultsSubject(t *testing.T) {
	s := validSubmission().Normalize()
	assert.Equal(t, "Ada", s.Name)
	assert.Equal(t, "Hello there", s.Message)
	assert.Equal(t, "Portfolio Contact: Ada", s.Subject)

	s = Submission{Name: "Ada", Subject: " Job offer "}.Normalize()
	assert.Equal(t, "Job offer", s.Subject)
}

func TestSubmitDelivers(t *testing.T) {
	repo := &fakeRepo{}
	sender := &fakeSender{}
	svc := NewService(repo, sender, zerolog.Nop())
	svc.now = func() time.Time { return time.Unix(1700000000, 0) }

	id, err := svc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	require.Len(t, repo.saved, 1)
	assert.Equal(t, id, repo.saved[0].ID)
	assert.Equal(t, store.ContactPending, repo.saved[0].Status)
	assert.Equal(t, "Ada", repo.saved[0].Name)
	assert.Equal(t, store.ContactSent, repo.statuses[id])

	require.Len(t, sender.got, 1)
	assert.Equal(t, "Hello there", sender.got[0].Message)
}

func TestSubmitRejectsInvalidWithoutSaving(t *testing.T) {
	repo := &fakeRepo{}
	sender := &fakeSender{}
	svc := NewService(repo, sender, zerolog.Nop())

	_, err := svc.Submit(context.Background(), Submission{Name: "Ada"})
	assert.ErrorIs(t, err, ErrInvalidSubmission)
	assert.Empty(t, repo.saved)
	assert.Empty(t, sender.got)
}

func TestSubmitKeepsMessageWhenDeliveryFails(t *testing.T) {
	repo := &fakeRepo{}
	sender := &fakeSender{err: ErrMailNotConfigured}
	svc := NewService(repo, sender, zerolog.Nop())

	id, err := svc.Submit(context.Background(), validSubmission())
	assert.ErrorIs(t, err, ErrMailNotConfigured)
	assert.NotEmpty(t, id)
	require.Len(t, repo.saved, 1)
	assert.Equal(t, store.ContactFailed, repo.statuses[id])
}

func TestSubmitStoreFailure(t *testing.T) {
	repo := &fakeRepo{saveErr: errors.New("disk full")}
	sender := &fakeSender{}
	svc := NewService(repo, sender, zerolog.Nop())

	_, err := svc.Submit(context.Background(), validSubmission())
	assert.Error(t, err)
	assert.Empty(t, sender.got)
}

func TestMailerNotConfigured(t *testing.T) {
	m := NewMailer(&config.Config{SMTPHost: "smtp.example.com", SMTPPort: "587"})
	assert.False(t, m.Configured())
	assert.ErrorIs(t, m.Send(validSubmission().Normalize()), ErrMailNotConfigured)
}

func TestMailerComposesMessage(t *testing.T) {
	m := NewMailer(&config.Config{
		SMTPHost: "smtp.example.com",
		SMTPPort: "2525",
		SMTPUser: "site@example.com",
		SMTPPass: "pw",
		ToEmail:  "owner@example.com",
	})

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	m.sendMail = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	sub := validSubmission().Normalize()
	sub.Subject = "Hi\r\nBcc: evil@example.com"
	require.NoError(t, m.Send(sub))

	assert.Equal(t, "smtp.example.com:2525", gotAddr)
	assert.Equal(t, "site@example.com", gotFrom)
	assert.Equal(t, []string{"owner@example.com"}, gotTo)

	msg := string(gotMsg)
	assert.Contains(t, msg, "To: owner@example.com\r\n")
	assert.Contains(t, msg, "Reply-To: ada@example.com\r\n")
	assert.Contains(t, msg, "Subject: Hi  Bcc: evil@example.com\r\n")
	headers, _, _ := strings.Cut(msg, "\r\n\r\n")
	assert.NotContains(t, headers, "\r\nBcc:")
	assert.Contains(t, msg, "Hello there")
}

func TestMailerWrapsSendError(t *testing.T) {
	m := NewMailer(&config.Config{SMTPUser: "u", SMTPPass: "p", ToEmail: "t@example.com"})
	m.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("connection refused")
	}

	err := m.Send(validSubmission().Normalize())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}
