package main

import (
	"encoding/json"
	"fmt"

	"github.com/norce-drilling/field-service/internal/adapters/primary/http/dto"
	"github.com/norce-drilling/field-service/internal/adapters/secondary/usagefile"
	"github.com/norce-drilling/field-service/internal/config"
	"github.com/norce-drilling/field-service/internal/core/domain"

	"github.com/spf13/cobra"
)

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Print the persisted usage statistics as JSON",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(envFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		stats, err := usagefile.NewStore(cfg.Usage.FilePath).Load()
		if err != nil {
			return err
		}
		if stats == nil {
			stats = domain.NewUsageStatistics(cfg.Usage.BackupInterval)
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(dto.ToUsageStatisticsResponse(stats))
	},
}
