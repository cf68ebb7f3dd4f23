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

// NewInitCmd creates the init command writing the default quota document.
func NewInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the default quota file if absent",
		Long:  "Create the quota document with the built-in defaults. An existing file is never overwritten.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync(log) }()

			created, err := store.Init(cfg.QuotaFile)
			if err != nil {
				return fmt.Errorf("init quota file: %w", err)
			}
			log.Debug("quota_file_initialized",
				zap.String("path", cfg.QuotaFile),
				zap.Bool("created", created),
			)

			out := cmd.OutOrStdout()
			if created {
				fmt.Fprintf(out, "✅ 配額資料已初始化：%s\n", cfg.QuotaFile)
			} else {
				fmt.Fprintf(out, "配額檔案已存在，未變更：%s\n", cfg.QuotaFile)
			}

			quotas, err := store.Load(cfg.QuotaFile)
			if err != nil {
				return fmt.Errorf("load quota file: %w", err)
			}
			fmt.Fprintln(out, report.Status(quotas, time.Now()))
			return nil
		},
	}
}
