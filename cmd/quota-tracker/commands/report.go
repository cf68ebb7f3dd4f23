package commands

import (
	"fmt"
	"time"

	"github.com/openclaw/quota-tracker/internal/logger"
	"github.com/openclaw/quota-tracker/internal/report"
	"github.com/openclaw/quota-tracker/internal/sessions"
	"github.com/openclaw/quota-tracker/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewReportCmd creates the report command showing the full quota report.
func NewReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print the full quota report",
		Long:  "Print a per-service quota breakdown plus session token usage when the sessions document is readable.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync(log) }()

			quotas, err := store.Load(cfg.QuotaFile)
			if err != nil {
				return fmt.Errorf("load quota file: %w", err)
			}

			// Session usage is best-effort; the report carries a
			// fallback line when the document is unreadable
			usage, err := sessions.Summarize(cfg.SessionsFile)
			if err != nil {
				log.Debug("session_usage_unavailable",
					zap.String("path", cfg.SessionsFile),
					zap.Error(err),
				)
				usage = nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), report.Report(quotas, usage, time.Now()))
			return nil
		},
	}
}
