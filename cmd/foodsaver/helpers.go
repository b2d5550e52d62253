package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/Veraticus/foodsaver/internal/common"
	"github.com/Veraticus/foodsaver/internal/config"
	"github.com/Veraticus/foodsaver/internal/reminder"
	"github.com/Veraticus/foodsaver/internal/service"
	"github.com/Veraticus/foodsaver/internal/storage"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	// Get database path from config
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/foodsaver/foodsaver.db"
	}

	// Expand tilde and environment variables
	dbPath = config.ExpandPath(dbPath)

	// Initialize storage
	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	// Run migrations
	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// reminderService builds a reminder service from config, or nil when email
// is not configured. A nil service is not an error: the app runs fine
// without reminders.
func reminderService(pantry *service.Pantry) (*reminder.Service, error) {
	sender, err := reminder.NewSMTPSender(reminder.SMTPConfig{
		Host:     viper.GetString("email.smtp_host"),
		Port:     viper.GetInt("email.smtp_port"),
		Username: viper.GetString("email.username"),
		Password: viper.GetString("email.password"),
		From:     viper.GetString("email.from"),
	})
	if errors.Is(err, common.ErrEmailNotConfigured) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	recipients := viper.GetStringSlice("email.to")
	if len(recipients) == 0 {
		return nil, nil
	}

	return reminder.NewService(pantry, sender, recipients, viper.GetInt("reminders.window_days")), nil
}
