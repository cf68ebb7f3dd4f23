package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/openclaw/quota-tracker/internal/models"
	"github.com/openclaw/quota-tracker/internal/sessions"
)

const timeFormat = "2006-01-02 15:04:05"

// ServiceDisplay is the rendered record for one known service: icon glyph,
// display label and human-readable quota description. Built transiently per
// render; never persisted.
type ServiceDisplay struct {
	Icon  string
	Name  string
	Quota string
}

// serviceMeta holds the fixed rendering rule for a known service
type serviceMeta struct {
	icon        string
	name        string
	title       string
	description string
	status      string
}

// Exactly one rendering rule per known service. Service ids in the document
// that are not listed here are ignored.
var serviceMetas = map[models.ServiceID]serviceMeta{
	models.ServiceMiniMax: {
		icon:        "🔵",
		name:        "MiniMax",
		title:       "MiniMax (每4小時配額)",
		description: "MiniMax API (4小時配額)",
		status:      "⚠️ 需設定 API Key 才能查詢實際用量",
	},
	models.ServiceClaudePro: {
		icon:        "🦅",
		name:        "Claude Pro",
		title:       "Claude Pro (阿鷹)",
		description: "Claude Code - Claude Pro 訂閱",
		status:      "✅ 訂閱方案，無用量限制",
	},
	models.ServiceGeminiPro: {
		icon:        "🐉",
		name:        "Gemini Pro",
		title:       "Gemini Pro (小龍)",
		description: "Gemini CLI - Google AI Pro 訂閱",
		status:      "✅ 訂閱方案，無用量限制",
	},
}

// displayFor builds the ServiceDisplay for a known service from the loaded
// document
func displayFor(cfg *models.QuotaConfig, id models.ServiceID) ServiceDisplay {
	meta := serviceMetas[id]
	return ServiceDisplay{
		Icon:  meta.icon,
		Name:  meta.name,
		Quota: cfg.LimitFor(id).Text(),
	}
}

// Status renders the compact view: header, one line per known service in
// fixed order, separator and a timestamp line.
func Status(cfg *models.QuotaConfig, now time.Time) string {
	var b strings.Builder

	b.WriteString("📊 配額狀態快速查看\n")
	b.WriteString(strings.Repeat("-", 50) + "\n")
	for _, id := range models.KnownServices {
		d := displayFor(cfg, id)
		fmt.Fprintf(&b, "%s %s: %s\n", d.Icon, d.Name, d.Quota)
	}
	b.WriteString(strings.Repeat("-", 50) + "\n")
	fmt.Fprintf(&b, "最後更新：%s", now.Format(timeFormat))

	return b.String()
}

// Report renders the full view: banner with query time, one section per
// known service, the session usage section and an explanatory footer. Pass a
// nil usage when the sessions document could not be read.
func Report(cfg *models.QuotaConfig, usage *sessions.Summary, now time.Time) string {
	banner := strings.Repeat("=", 60)
	rule := strings.Repeat("-", 40)

	var b strings.Builder
	b.WriteString(banner + "\n")
	b.WriteString("📊 OpenClaw 配額報告\n")
	fmt.Fprintf(&b, "📅 查詢時間：%s\n", now.Format(timeFormat))
	b.WriteString(banner + "\n")

	for _, id := range models.KnownServices {
		meta := serviceMetas[id]
		limit := cfg.LimitFor(id)
		fmt.Fprintf(&b, "\n%s %s\n", meta.icon, meta.title)
		b.WriteString(rule + "\n")
		fmt.Fprintf(&b, "   方案：%s\n", meta.description)
		fmt.Fprintf(&b, "   配額：%s\n", limit.Text())
		fmt.Fprintf(&b, "   狀態：%s\n", meta.status)
	}

	b.WriteString("\n📈 本次會話統計\n")
	b.WriteString(rule + "\n")
	if usage != nil {
		fmt.Fprintf(&b, "   活躍會話數：%d\n", usage.Sessions)
		fmt.Fprintf(&b, "   總 Token：%s\n", humanize.Comma(usage.TotalTokens))
	} else {
		b.WriteString("   無法讀取會話資料\n")
	}

	b.WriteString("\n" + banner + "\n")
	b.WriteString("💡 說明：\n")
	b.WriteString("   - MiniMax：需要 API Key 才能查詢實際用量\n")
	b.WriteString("   - Claude/Gemini Pro：訂閱方案，原則上無限制\n")
	b.WriteString("   - 本系統追蹤會話 Token 使用量作為參考\n")
	b.WriteString(banner)

	return b.String()
}
