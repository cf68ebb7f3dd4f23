package commands

import (
	"fmt"

	"github.com/openclaw/quota-tracker/internal/config"
	"github.com/openclaw/quota-tracker/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// setup loads configuration and builds the logger shared by every command
func setup(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	debugFlag, _ := cmd.Flags().GetBool("debug")
	log, err := logger.New(cfg.DebugMode || debugFlag, cfg.LogFile)
	if err != nil {
		return nil, nil, fmt.Errorf("initialize logger: %w", err)
	}

	return cfg, log, nil
}
