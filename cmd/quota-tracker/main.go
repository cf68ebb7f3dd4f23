package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/openclaw/quota-tracker/cmd/quota-tracker/commands"
	"github.com/spf13/cobra"
)

func main() {
	// A missing .env is fine; every config key has a default
	_ = godotenv.Load()

	var rootCmd = &cobra.Command{
		Use:   "quota-tracker",
		Short: "Quota status reporter for OpenClaw services",
		Long:  "Cron-friendly CLI that reports configured API quota limits for MiniMax, Claude Pro and Gemini Pro",
		RunE:  commands.RunStatus,
	}
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(commands.NewStatusCmd())
	rootCmd.AddCommand(commands.NewReportCmd())
	rootCmd.AddCommand(commands.NewInitCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
