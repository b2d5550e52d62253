package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/foodsaver/internal/reminder"
	"github.com/Veraticus/foodsaver/internal/service"
	"github.com/Veraticus/foodsaver/internal/web"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the pantry web UI",
		Long: `Start the local web interface for managing pantry items and recipes.

With --auto-reminders, a background scheduler periodically emails a digest
of items expiring within the configured window.`,
		RunE: runServe,
	}

	cmd.Flags().String("host", "", "bind address (default from config)")
	cmd.Flags().Int("port", 0, "listen port (default from config)")
	cmd.Flags().Bool("auto-reminders", false, "run the background reminder scheduler")
	_ = viper.BindPFlag("reminders.auto", cmd.Flags().Lookup("auto-reminders"))

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	pantry := service.NewPantry(store)

	reminders, err := reminderService(pantry)
	if err != nil {
		return fmt.Errorf("failed to configure reminders: %w", err)
	}

	if viper.GetBool("reminders.auto") {
		if reminders == nil {
			slog.Warn("auto-reminders requested but email is not configured; scheduler disabled")
		} else {
			interval := time.Duration(viper.GetInt("reminders.interval_minutes")) * time.Minute
			go reminder.NewScheduler(reminders, interval).Run(ctx)
		}
	}

	host, _ := cmd.Flags().GetString("host")
	if host == "" {
		host = viper.GetString("server.host")
	}
	port, _ := cmd.Flags().GetInt("port")
	if port == 0 {
		port = viper.GetInt("server.port")
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", host, port),
		Handler:           web.NewServer(pantry, store, reminders).Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting web UI", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
