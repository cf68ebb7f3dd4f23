package commands

import (
	"fmt"
	"time"

	"github.com/openclaw/quota-tracker/internal/logger"
	"github.com/openclaw/quota-tracker/internal/report"
	"github.com/openclaw/quota-tracker/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewStatusCmd creates the status command showing the compact quota view.
func NewStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the compact quota status view",
		Long:  "Print one line per tracked service with its configured quota limit.",
		RunE:  RunStatus,
	}
}

// RunStatus renders the compact view. It is also the root command's default
// action, so a bare invocation behaves like "status".
func RunStatus(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync(log) }()

	quotas, err := store.Load(cfg.QuotaFile)
	if err != nil {
		return fmt.Errorf("load quota file: %w", err)
	}
	log.Debug("quota_config_loaded",
		zap.String("path", cfg.QuotaFile),
		zap.Int("services", len(quotas.Quotas)),
	)

	fmt.Fprintln(cmd.OutOrStdout(), report.Status(quotas, time.Now()))
	return nil
}
