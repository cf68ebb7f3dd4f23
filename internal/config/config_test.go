package config

import (
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		validate func(*testing.T, *Config)
	}{
		{
			name: "default values",
			envVars: map[string]string{
				"QUOTA_FILE":    "",
				"SESSIONS_FILE": "",
				"LOG_FILE":      "",
				"DEBUG_MODE":    "",
			},
			validate: func(t *testing.T, cfg *Config) {
				if cfg.QuotaFile != filepath.Join("data", "quota.json") {
					t.Errorf("Expected default QuotaFile to be 'data/quota.json', got '%s'", cfg.QuotaFile)
				}
				if cfg.SessionsFile == "" {
					t.Error("Expected default SessionsFile to be non-empty")
				}
				if cfg.LogFile != "" {
					t.Errorf("Expected default LogFile to be empty, got '%s'", cfg.LogFile)
				}
				if cfg.DebugMode != false {
					t.Errorf("Expected default DebugMode to be false, got %v", cfg.DebugMode)
				}
			},
		},
		{
			name: "all env vars set",
			envVars: map[string]string{
				"QUOTA_FILE":    "/var/lib/quota/quota.json",
				"SESSIONS_FILE": "/tmp/sessions.json",
				"LOG_FILE":      "/var/log/quota-tracker.log",
				"DEBUG_MODE":    "true",
			},
			validate: func(t *testing.T, cfg *Config) {
				if cfg.QuotaFile != "/var/lib/quota/quota.json" {
					t.Errorf("Expected QuotaFile to be '/var/lib/quota/quota.json', got '%s'", cfg.QuotaFile)
				}
				if cfg.SessionsFile != "/tmp/sessions.json" {
					t.Errorf("Expected SessionsFile to be '/tmp/sessions.json', got '%s'", cfg.SessionsFile)
				}
				if cfg.LogFile != "/var/log/quota-tracker.log" {
					t.Errorf("Expected LogFile to be '/var/log/quota-tracker.log', got '%s'", cfg.LogFile)
				}
				if cfg.DebugMode != true {
					t.Errorf("Expected DebugMode to be true, got %v", cfg.DebugMode)
				}
			},
		},
		{
			name: "debug mode accepts 1",
			envVars: map[string]string{
				"QUOTA_FILE": "",
				"DEBUG_MODE": "1",
			},
			validate: func(t *testing.T, cfg *Config) {
				if cfg.DebugMode != true {
					t.Errorf("Expected DebugMode to be true, got %v", cfg.DebugMode)
				}
			},
		},
		{
			name: "debug mode rejects garbage",
			envVars: map[string]string{
				"QUOTA_FILE": "",
				"DEBUG_MODE": "maybe",
			},
			validate: func(t *testing.T, cfg *Config) {
				if cfg.DebugMode != false {
					t.Errorf("Expected DebugMode to be false, got %v", cfg.DebugMode)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}
