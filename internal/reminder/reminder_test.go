package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/foodsaver/internal/common"
	"github.com/Veraticus/foodsaver/internal/model"
	"github.com/Veraticus/foodsaver/internal/service"
	"github.com/Veraticus/foodsaver/internal/storage"
)

// mockSender records sent messages and can simulate transient failures.
type mockSender struct {
	subjects  []string
	bodies    []string
	to        [][]string
	failTimes int
}

func (m *mockSender) Send(_ context.Context, subject, body string, to []string) error {
	if m.failTimes > 0 {
		m.failTimes--
		return errors.New("smtp unavailable")
	}
	m.subjects = append(m.subjects, subject)
	m.bodies = append(m.bodies, body)
	m.to = append(m.to, to)
	return nil
}

func newTestPantry(t *testing.T, items []model.PantryItem) *service.Pantry {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	require.NoError(t, store.Migrate(ctx))
	for i := range items {
		require.NoError(t, store.SaveItem(ctx, &items[i]))
	}

	return service.NewPantry(store)
}

func TestSend(t *testing.T) {
	today := time.Date(2025, 8, 27, 9, 0, 0, 0, time.Local)

	t.Run("sends digest for expiring items", func(t *testing.T) {
		pantry := newTestPantry(t, []model.PantryItem{
			{Name: "Milk", ExpiryDate: "2025-08-29"},
			{Name: "Cheese", ExpiryDate: "2025-12-01"},
		})
		sender := &mockSender{}
		svc := NewService(pantry, sender, []string{"me@example.com"}, 3)

		n, err := svc.Send(context.Background(), today)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		require.Len(t, sender.bodies, 1)
		assert.Contains(t, sender.subjects[0], "1 item(s)")
		assert.Contains(t, sender.bodies[0], "Milk")
		assert.Contains(t, sender.bodies[0], "2025-08-29")
		assert.NotContains(t, sender.bodies[0], "Cheese")
		assert.Equal(t, []string{"me@example.com"}, sender.to[0])
	})

	t.Run("no expiring items means no email", func(t *testing.T) {
		pantry := newTestPantry(t, []model.PantryItem{
			{Name: "Cheese", ExpiryDate: "2025-12-01"},
		})
		sender := &mockSender{}
		svc := NewService(pantry, sender, []string{"me@example.com"}, 3)

		n, err := svc.Send(context.Background(), today)
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.Empty(t, sender.subjects)
	})

	t.Run("no recipients configured", func(t *testing.T) {
		pantry := newTestPantry(t, nil)
		svc := NewService(pantry, &mockSender{}, nil, 3)

		_, err := svc.Send(context.Background(), today)
		require.ErrorIs(t, err, common.ErrNoRecipients)
	})

	t.Run("retries transient send failures", func(t *testing.T) {
		pantry := newTestPantry(t, []model.PantryItem{
			{Name: "Milk", ExpiryDate: "2025-08-28"},
		})
		sender := &mockSender{failTimes: 2}
		svc := NewService(pantry, sender, []string{"me@example.com"}, 3)

		n, err := svc.Send(context.Background(), today)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Len(t, sender.subjects, 1)
	})
}

func TestDigest(t *testing.T) {
	items := []service.ListedItem{
		{PantryItem: model.PantryItem{Name: "Yogurt", ExpiryDate: "2025-08-25"}, Days: -2, HasDays: true},
		{PantryItem: model.PantryItem{Name: "Milk", ExpiryDate: "2025-08-29"}, Days: 2, HasDays: true},
	}

	body := Digest(items)
	assert.Contains(t, body, "Items expiring soon:")
	assert.Contains(t, body, "- Yogurt (expired 2 day(s) ago) — expiry 2025-08-25")
	assert.Contains(t, body, "- Milk (in 2 day(s)) — expiry 2025-08-29")
}

func TestNewSMTPSender(t *testing.T) {
	t.Run("missing credentials", func(t *testing.T) {
		_, err := NewSMTPSender(SMTPConfig{Host: "smtp.example.com"})
		require.ErrorIs(t, err, common.ErrEmailNotConfigured)
	})

	t.Run("defaults applied", func(t *testing.T) {
		sender, err := NewSMTPSender(SMTPConfig{
			Host:     "smtp.example.com",
			Username: "user@example.com",
			Password: "hunter2",
		})
		require.NoError(t, err)
		assert.Equal(t, 587, sender.cfg.Port)
		assert.Equal(t, "user@example.com", sender.cfg.From)
	})
}
