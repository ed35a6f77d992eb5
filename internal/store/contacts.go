package store

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

const (
	ContactPending = "pending"
	ContactSent    = "sent"
	ContactFailed  = "failed"
)

type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Store) SaveContact(ctx context.Context, m ContactMessage) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO contact_messages (id, name, email, subject, message, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, m.ID, m.Name, m.Email, m.Subject, m.Message, m.Status, m.CreatedAt.Unix())
	return errors.Wrap(err, "insert contact message")
}

func (s *Store) UpdateContactStatus(ctx context.Context, id, status string) error {
	result, err := s.db.ExecContext(ctx, `UPDATE contact_messages SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return errors.Wrap(err, "update contact status")
	}
	n, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "update contact status")
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) RecentContacts(ctx context.Context, limit int) ([]ContactMessage, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, COALESCE(subject, ''), message, status, created_at
		FROM contact_messages
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "query contact messages")
	}
	defer rows.Close()

	out := []ContactMessage{}
	for rows.Next() {
		var m ContactMessage
		var created int64
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.Status, &created); err != nil {
			return nil, errors.Wrap(err, "scan contact message")
		}
		m.CreatedAt = time.Unix(created, 0).UTC()
		out = append(out, m)
	}
	return out, rows.Err()
}
