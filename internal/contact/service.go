package contact

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/Zachkp/folio/internal/store"
)

// Repository is the slice of the store the contact service needs.
type Repository interface {
	SaveContact(ctx context.Context, m store.ContactMessage) error
	UpdateContactStatus(ctx context.Context, id, status string) error
}

type Service struct {
	repo   Repository
	sender Sender
	logger zerolog.Logger
	now    func() time.Time
}

func NewService(repo Repository, sender Sender, logger zerolog.Logger) *Service {
	return &Service{repo: repo, sender: sender, logger: logger, now: time.Now}
}

// Submit validates s, stores it, and forwards it by email. The message is
// kept even when delivery fails so nothing a visitor sends is lost.
func (svc *Service) Submit(ctx context.Context, s Submission) (string, error) {
	s = s.Normalize()
	if err := s.Validate(); err != nil {
		return "", err
	}

	msg := store.ContactMessage{
		ID:        uuid.NewString(),
		Name:      s.Name,
		Email:     s.Email,
		Subject:   s.Subject,
		Message:   s.Message,
		Status:    store.ContactPending,
		CreatedAt: svc.now(),
	}
	if err := svc.repo.SaveContact(ctx, msg); err != nil {
		return "", errors.Wrap(err, "save contact message")
	}

	sendErr := svc.sender.Send(s)
	status := store.ContactSent
	if sendErr != nil {
		status = store.ContactFailed
		svc.logger.Error().Err(sendErr).Str("id", msg.ID).Msg("contact email not delivered")
	} else {
		svc.logger.Info().Str("id", msg.ID).Str("name", s.Name).Msg("contact email sent")
	}

	if err := svc.repo.UpdateContactStatus(ctx, msg.ID, status); err != nil {
		svc.logger.Error().Err(err).Str("id", msg.ID).Msg("failed to update contact status")
	}
	return msg.ID, sendErr
}
