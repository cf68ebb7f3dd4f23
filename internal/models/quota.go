package models

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// ServiceID identifies one of the tracked upstream services
type ServiceID string

const (
	ServiceMiniMax   ServiceID = "minimax"
	ServiceClaudePro ServiceID = "claude_pro"
	ServiceGeminiPro ServiceID = "gemini_pro"
)

// KnownServices lists the tracked services in fixed display order
var KnownServices = []ServiceID{ServiceMiniMax, ServiceClaudePro, ServiceGeminiPro}

// QuotaLimit describes the quota of a single service. A nil Limit means the
// service is on an unlimited subscription plan.
type QuotaLimit struct {
	Limit       *int64 `json:"limit,omitempty" validate:"omitempty,gt=0"`
	PeriodHours *int   `json:"period_hours,omitempty" validate:"omitempty,gt=0"`
}

// Unlimited reports whether the service has no token limit (subscription plan)
func (q QuotaLimit) Unlimited() bool {
	return q.Limit == nil
}

// Text returns the human-readable quota description, e.g.
// "每4小時 50,000,000 tokens" or "無限制 (訂閱)"
func (q QuotaLimit) Text() string {
	if q.Unlimited() {
		return "無限制 (訂閱)"
	}
	if q.PeriodHours != nil {
		return fmt.Sprintf("每%d小時 %s tokens", *q.PeriodHours, humanize.Comma(*q.Limit))
	}
	return fmt.Sprintf("%s tokens", humanize.Comma(*q.Limit))
}

// QuotaConfig is the parsed quota document. It is loaded once per invocation
// and never mutated afterwards.
type QuotaConfig struct {
	Quotas map[ServiceID]QuotaLimit `json:"quotas" validate:"dive"`
}

// LimitFor returns the configured quota for a service, falling back to the
// built-in default when the document does not mention it. Known services
// always render, even from a sparse document.
func (c *QuotaConfig) LimitFor(id ServiceID) QuotaLimit {
	if q, ok := c.Quotas[id]; ok {
		return q
	}
	return DefaultConfig().Quotas[id]
}

// DefaultConfig returns the built-in quota set: MiniMax at 50M tokens per
// 4 hours, Claude Pro and Gemini Pro unlimited subscriptions.
func DefaultConfig() *QuotaConfig {
	limit := int64(50_000_000)
	period := 4
	return &QuotaConfig{
		Quotas: map[ServiceID]QuotaLimit{
			ServiceMiniMax:   {Limit: &limit, PeriodHours: &period},
			ServiceClaudePro: {},
			ServiceGeminiPro: {},
		},
	}
}
