package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Veraticus/foodsaver/internal/cli"
	"github.com/Veraticus/foodsaver/internal/service"
)

func remindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remind",
		Short: "Send a reminder email for expiring items",
		Long: `Email a digest of items expiring within the configured window (default 3
days). Requires email settings in the config file or environment.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			reminders, err := reminderService(service.NewPantry(store))
			if err != nil {
				return err
			}
			if reminders == nil {
				return fmt.Errorf("email is not configured; set email.smtp_host, email.username, email.password and email.to")
			}

			n, err := reminders.Send(ctx, time.Now())
			if err != nil {
				return err
			}
			if n == 0 {
				fmt.Println(cli.InfoStyle.Render("No items expiring soon; nothing sent."))
				return nil
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Reminder sent for %d item(s)", n)))
			return nil
		},
	}
}
