package commands

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/shopspring/decimal"

	"github.com/muzaffarov/splitbill/internal/session"
)

var memberNumberRe = regexp.MustCompile(`\d+`)

func getStringOption(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) *string {
	for _, o := range opts {
		if o.Name == name {
			v := o.StringValue()
			return &v
		}
	}
	return nil
}

// parseMemberIndexes reads one-based participant numbers out of free text
// ("1, 2, 4") into zero-based indexes, dropping duplicates. Out-of-range
// numbers are kept; the bill rejects them with a named error.
func parseMemberIndexes(text string) []int {
	var out []int
	seen := make(map[int]struct{})
	for _, tok := range memberNumberRe.FindAllString(text, -1) {
		n, err := strconv.Atoi(tok)
		if err != nil || n < 1 {
			continue
		}
		if _, ok := seen[n-1]; ok {
			continue
		}
		seen[n-1] = struct{}{}
		out = append(out, n-1)
	}
	return out
}

// parseServicePct accepts "10", "12.5" and "12,5".
func parseServicePct(text string) (decimal.Decimal, error) {
	t := strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	pct, err := decimal.NewFromString(t)
	if err != nil {
		return decimal.Decimal{}, session.ErrBadServicePct
	}
	return pct, nil
}
