package models

import (
	"testing"
)

func int64Ptr(v int64) *int64 { return &v }
func intPtr(v int) *int       { return &v }

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	minimax, ok := cfg.Quotas[ServiceMiniMax]
	if !ok {
		t.Fatal("Expected default config to contain minimax")
	}
	if minimax.Limit == nil || *minimax.Limit != 50_000_000 {
		t.Errorf("Expected minimax limit to be 50000000, got %v", minimax.Limit)
	}
	if minimax.PeriodHours == nil || *minimax.PeriodHours != 4 {
		t.Errorf("Expected minimax period to be 4 hours, got %v", minimax.PeriodHours)
	}

	for _, id := range []ServiceID{ServiceClaudePro, ServiceGeminiPro} {
		limit, ok := cfg.Quotas[id]
		if !ok {
			t.Fatalf("Expected default config to contain %s", id)
		}
		if !limit.Unlimited() {
			t.Errorf("Expected %s to be unlimited", id)
		}
	}
}

func TestQuotaLimit_Text(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		limit    QuotaLimit
		expected string
	}{
		{
			name:     "unlimited subscription",
			limit:    QuotaLimit{},
			expected: "無限制 (訂閱)",
		},
		{
			name:     "small limit with period",
			limit:    QuotaLimit{Limit: int64Ptr(1000), PeriodHours: intPtr(1)},
			expected: "每1小時 1,000 tokens",
		},
		{
			name:     "default minimax limit",
			limit:    QuotaLimit{Limit: int64Ptr(50_000_000), PeriodHours: intPtr(4)},
			expected: "每4小時 50,000,000 tokens",
		},
		{
			name:     "limit without period",
			limit:    QuotaLimit{Limit: int64Ptr(1234)},
			expected: "1,234 tokens",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.limit.Text(); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestQuotaConfig_LimitFor(t *testing.T) {
	t.Parallel()

	cfg := &QuotaConfig{
		Quotas: map[ServiceID]QuotaLimit{
			ServiceMiniMax: {Limit: int64Ptr(1000), PeriodHours: intPtr(1)},
		},
	}

	got := cfg.LimitFor(ServiceMiniMax)
	if got.Limit == nil || *got.Limit != 1000 {
		t.Errorf("Expected configured minimax limit 1000, got %v", got.Limit)
	}

	// Known service missing from the document falls back to the default
	fallback := cfg.LimitFor(ServiceClaudePro)
	if !fallback.Unlimited() {
		t.Errorf("Expected claude_pro fallback to be unlimited, got %v", fallback.Limit)
	}
}
