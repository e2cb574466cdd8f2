/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/dileepkhanna/jobportal/config"
	"github.com/dileepkhanna/jobportal/internal/db"
	"github.com/dileepkhanna/jobportal/internal/report"
	"github.com/dileepkhanna/jobportal/internal/store"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Print the users, job roles and skills stored in the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()

		dbConn, err := db.Open(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer dbConn.Close()

		return report.Write(
			cmd.Context(),
			cmd.OutOrStdout(),
			store.NewUserRepository(dbConn),
			store.NewCatalogRepository(dbConn),
		)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
