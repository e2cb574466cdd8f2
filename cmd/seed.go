/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/dileepkhanna/jobportal/config"
	"github.com/dileepkhanna/jobportal/internal/db"
	"github.com/dileepkhanna/jobportal/internal/seed"
	"github.com/spf13/cobra"
)

// seedCmd represents the seed command.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the default job role catalog into an empty database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()
		if err := db.MigrateUp(cfg); err != nil {
			return err
		}

		dbConn, err := db.Open(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer dbConn.Close()

		inserted, err := seed.Seed(cmd.Context(), dbConn)
		if err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
		if !inserted {
			fmt.Fprintln(cmd.OutOrStdout(), "job roles already present, nothing to seed")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
