package config

import (
	"os"
	"path/filepath"
)

// defaultSessionsPath is used when the home directory cannot be resolved
const defaultSessionsPath = "/home/openclaw/.openclaw/agents/main/sessions/sessions.json"

// Config holds application configuration
type Config struct {
	QuotaFile    string
	SessionsFile string
	LogFile      string
	DebugMode    bool
}

// Load loads configuration from environment variables. Every key has a
// default; the tool must run with an empty environment.
func Load() (*Config, error) {
	cfg := &Config{
		QuotaFile:    getEnv("QUOTA_FILE", filepath.Join("data", "quota.json")),
		SessionsFile: getEnv("SESSIONS_FILE", defaultSessionsFile()),
		LogFile:      getEnv("LOG_FILE", ""),
		DebugMode:    getEnvBool("DEBUG_MODE", false),
	}

	return cfg, nil
}

// defaultSessionsFile resolves the OpenClaw sessions document under the
// current user's home directory
func defaultSessionsFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultSessionsPath
	}
	return filepath.Join(home, ".openclaw", "agents", "main", "sessions", "sessions.json")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}
