/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/dileepkhanna/jobportal/config"
	"github.com/dileepkhanna/jobportal/internal/db"
	"github.com/dileepkhanna/jobportal/internal/services"
	"github.com/dileepkhanna/jobportal/internal/storage"
	"github.com/dileepkhanna/jobportal/internal/store"
	"github.com/spf13/cobra"
)

// catalogCmd represents the catalog command.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Job role catalog maintenance",
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Upload a JSON snapshot of the catalog to object storage",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()

		dbConn, err := db.Open(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer dbConn.Close()

		objects, err := storage.Connect(cmd.Context(), cfg.Storage)
		if err != nil {
			return fmt.Errorf("connect storage: %w", err)
		}

		skills := services.NewSkillService(store.NewCatalogRepository(dbConn), nil)
		key, err := services.NewCatalogExporter(skills, objects).Export(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "catalog exported to %s/%s\n", objects.Bucket(), key)
		return nil
	},
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog snapshots in object storage",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()

		objects, err := storage.Connect(cmd.Context(), cfg.Storage)
		if err != nil {
			return fmt.Errorf("connect storage: %w", err)
		}

		keys, err := services.NewCatalogExporter(nil, objects).Exports(cmd.Context())
		if err != nil {
			return err
		}
		for _, key := range keys {
			fmt.Fprintln(cmd.OutOrStdout(), key)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogExportCmd)
	catalogCmd.AddCommand(catalogListCmd)
}
