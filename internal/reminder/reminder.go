// Package reminder sends email digests for items that are about to expire.
package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Veraticus/foodsaver/internal/common"
	"github.com/Veraticus/foodsaver/internal/service"
)

// DefaultWindowDays is the reminder horizon when none is configured.
const DefaultWindowDays = 3

// Service builds and delivers expiry reminder digests.
type Service struct {
	pantry     *service.Pantry
	sender     service.EmailSender
	recipients []string
	window     int
}

// NewService creates a reminder service. window <= 0 falls back to
// DefaultWindowDays.
func NewService(pantry *service.Pantry, sender service.EmailSender, recipients []string, window int) *Service {
	if window <= 0 {
		window = DefaultWindowDays
	}
	return &Service{
		pantry:     pantry,
		sender:     sender,
		recipients: recipients,
		window:     window,
	}
}

// Send emails a digest of items expiring within the window. It returns the
// number of items included; zero means nothing was expiring and no email
// was sent.
func (s *Service) Send(ctx context.Context, today time.Time) (int, error) {
	if len(s.recipients) == 0 {
		return 0, common.ErrNoRecipients
	}

	expiring, err := s.pantry.ExpiringWithin(ctx, today, s.window)
	if err != nil {
		return 0, fmt.Errorf("failed to find expiring items: %w", err)
	}
	if len(expiring) == 0 {
		slog.Info("No items expiring, skipping reminder", "window_days", s.window)
		return 0, nil
	}

	subject := fmt.Sprintf("FoodSaver reminders — %d item(s) expiring soon", len(expiring))
	body := Digest(expiring)

	err = common.WithRetry(ctx, func() error {
		return s.sender.Send(ctx, subject, body, s.recipients)
	}, service.RetryOptions{MaxAttempts: 3, InitialDelay: time.Second})
	if err != nil {
		return 0, fmt.Errorf("failed to send reminder email: %w", err)
	}

	slog.Info("Sent reminder email",
		"items", len(expiring),
		"recipients", len(s.recipients))
	return len(expiring), nil
}

// Digest renders the plain-text body for a reminder email.
func Digest(items []service.ListedItem) string {
	var b strings.Builder
	b.WriteString("Items expiring soon:\n")
	for _, item := range items {
		switch {
		case item.Days < 0:
			fmt.Fprintf(&b, "- %s (expired %d day(s) ago) — expiry %s\n", item.Name, -item.Days, item.ExpiryDate)
		default:
			fmt.Fprintf(&b, "- %s (in %d day(s)) — expiry %s\n", item.Name, item.Days, item.ExpiryDate)
		}
	}
	return b.String()
}
