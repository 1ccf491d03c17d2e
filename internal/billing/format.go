package billing

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatMoney renders a whole-unit amount with a plain space as the
// thousands separator: 1234567 becomes "1 234 567".
func FormatMoney(n int64) string {
	in := strconv.FormatInt(n, 10)
	numOfDigits := len(in)
	if n < 0 {
		numOfDigits--
	}
	numOfSpaces := (numOfDigits - 1) / 3
	if numOfSpaces == 0 {
		return in
	}

	out := make([]byte, len(in)+numOfSpaces)
	if n < 0 {
		in, out[0] = in[1:], '-'
	}
	for i, j, k := len(in)-1, len(out)-1, 0; ; i, j = i-1, j-1 {
		out[j] = in[i]
		if i == 0 {
			return string(out)
		}
		if k++; k == 3 {
			j, k = j-1, 0
			out[j] = ' '
		}
	}
}

// RenderSummary renders the settled bill in the final chat layout.
func RenderSummary(b *Bill, s *Summary) string {
	lines := []string{
		"🧮 Итоговый расчёт:",
		fmt.Sprintf("Без сервиса: %s %s", FormatMoney(s.BaseTotal), Currency),
		fmt.Sprintf("Сервис %s%%: %s %s", b.ServicePct, FormatMoney(s.ServiceTotal), Currency),
		fmt.Sprintf("💰 Итого: %s %s", FormatMoney(s.GrandTotal), Currency),
		"",
		"👥 Разбивка по участникам:",
	}
	for i, p := range b.Participants {
		lines = append(lines, fmt.Sprintf("%d. %s — %s %s  (до сервиса: %s %s, +%s %s)",
			i+1, p.Name,
			FormatMoney(s.Total[i]), Currency,
			FormatMoney(s.Base[i]), Currency,
			FormatMoney(s.Service[i]), Currency))
	}
	return strings.Join(lines, "\n")
}

// RenderDishList renders the running dish list shown after each addition,
// one dish per line with its whole-unit price.
func RenderDishList(b *Bill) string {
	lines := make([]string, 0, len(b.Dishes))
	for i := range b.Dishes {
		d := &b.Dishes[i]
		unit := d.UnitPrice().Round(0).IntPart()
		lines = append(lines, fmt.Sprintf("%d. %s — %d шт × %s %s = %s %s",
			i+1, d.Name, d.QtyTotal.IntPart(),
			FormatMoney(unit), Currency,
			FormatMoney(d.LineTotal.IntPart()), Currency))
	}
	return strings.Join(lines, "\n")
}

// RenderChoices lists participant pi's picked units, one dish per line, or
// a dash when nothing is picked yet.
func RenderChoices(b *Bill, pi int) string {
	var parts []string
	for i := range b.Dishes {
		d := &b.Dishes[i]
		if pi < len(d.Assigned) && d.Assigned[pi].IsPositive() {
			parts = append(parts, fmt.Sprintf("• %s × %s", d.Name, d.Assigned[pi]))
		}
	}
	if len(parts) == 0 {
		return "—"
	}
	return strings.Join(parts, "\n")
}
