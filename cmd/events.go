/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/dileepkhanna/jobportal/config"
	"github.com/dileepkhanna/jobportal/internal/events"
	"github.com/dileepkhanna/jobportal/internal/mq"
	"github.com/spf13/cobra"
)

// eventsCmd represents the events command.
var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Inspect events published by the portal",
}

var eventsTailCmd = &cobra.Command{
	Use:   "tail",
	Short: "Print users.registered events as they arrive",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()

		broker, err := mq.Connect(cmd.Context(), cfg.MQ)
		if err != nil {
			return err
		}
		if broker == nil {
			return errors.New("MQ_BACKEND is not configured")
		}
		defer broker.Close()

		out := cmd.OutOrStdout()
		return broker.Subscribe(cmd.Context(), events.ChannelUserRegistered, func(ctx context.Context, msg mq.Message) error {
			event, err := events.ParseUserRegistered(msg.Data)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "skipping message %s: %v\n", msg.ID, err)
				return nil
			}
			fmt.Fprintf(out, "%s registered: id=%d userid=%s name=%s\n", msg.ID, event.ID, event.UserID, event.Name)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.AddCommand(eventsTailCmd)
}
