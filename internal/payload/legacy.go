package payload

import (
	"fmt"
	"math"
	"strings"

	"github.com/muzaffarov/splitbill/internal/billing"
)

// Legacy is the pre-computed summary shape older webapp builds send.
type Legacy struct {
	BaseTotal    float64        `json:"base_total"`
	ServicePct   float64        `json:"service_pct"`
	ServiceTotal float64        `json:"service_total"`
	Total        float64        `json:"total"`
	People       []LegacyPerson `json:"people"`
}

type LegacyPerson struct {
	Name    string   `json:"name"`
	Base    float64  `json:"base"`
	Service float64  `json:"service"`
	Total   *float64 `json:"total"`
}

// Render reproduces the historical template from the sender's own numbers.
// Amounts truncate to whole units; a missing per-person total falls back to
// base plus service, a missing name to a numbered placeholder.
func (l *Legacy) Render() string {
	lines := []string{
		"🧮 Итоговый расчёт:",
		fmt.Sprintf("Без сервиса: %s %s", billing.FormatMoney(toWhole(l.BaseTotal)), billing.Currency),
		fmt.Sprintf("Сервис %d%%: %s %s", toWhole(l.ServicePct), billing.FormatMoney(toWhole(l.ServiceTotal)), billing.Currency),
		fmt.Sprintf("💰 Итого: %s %s", billing.FormatMoney(toWhole(l.Total)), billing.Currency),
		"",
		"👥 Разбивка по участникам:",
	}
	for i, p := range l.People {
		name := p.Name
		if name == "" {
			name = fmt.Sprintf("Участник %d", i+1)
		}
		base := toWhole(p.Base)
		service := toWhole(p.Service)
		total := base + service
		if p.Total != nil {
			total = toWhole(*p.Total)
		}
		lines = append(lines, fmt.Sprintf("%d. %s — %s %s  (до сервиса: %s %s, +%s %s)",
			i+1, name,
			billing.FormatMoney(total), billing.Currency,
			billing.FormatMoney(base), billing.Currency,
			billing.FormatMoney(service), billing.Currency))
	}
	return strings.Join(lines, "\n")
}

// toWhole truncates a float amount to whole currency units. Values outside
// the int64 range pin to its bounds and NaN truncates to zero; a bare
// conversion is implementation-specific there.
func toWhole(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= float64(math.MaxInt64):
		return math.MaxInt64
	case f <= float64(math.MinInt64):
		return math.MinInt64
	}
	return int64(f)
}
