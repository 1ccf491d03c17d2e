package commands

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/muzaffarov/splitbill/internal/billing"
)

// targetView renders the assign flow's first screen: one button per
// participant, marked with a checkmark once they have picked anything, plus
// one button per group.
func targetView(b *billing.Bill) (string, []discordgo.MessageComponent) {
	var buttons []discordgo.MessageComponent
	for i, p := range b.Participants {
		mark := ""
		if hasChoices(b, i) {
			mark = " ✅"
		}
		buttons = append(buttons, discordgo.Button{
			Label:    fmt.Sprintf("%d. %s%s", i+1, p.Name, mark),
			Style:    discordgo.SecondaryButton,
			CustomID: fmt.Sprintf("pick_person:%d", i),
		})
	}
	for i, g := range b.Groups {
		buttons = append(buttons, discordgo.Button{
			Label:    fmt.Sprintf("👥 %s", g.Name),
			Style:    discordgo.SecondaryButton,
			CustomID: fmt.Sprintf("pick_group:%d", i),
		})
	}

	content := "Выберите участника:"
	if len(b.Groups) > 0 {
		content = "Выберите участника или группу:"
	}
	return content, buttonRows(buttons)
}

// personDishView renders the per-participant dish picker. Every dish button
// shows the remaining whole units and carries a checkmark when this
// participant already holds some of the dish.
func personDishView(b *billing.Bill, pi int, flash string) (string, []discordgo.MessageComponent) {
	var buttons []discordgo.MessageComponent
	for i := range b.Dishes {
		d := &b.Dishes[i]
		mark := ""
		if pi < len(d.Assigned) && d.Assigned[pi].IsPositive() {
			mark = " ✅"
		}
		buttons = append(buttons, discordgo.Button{
			Label:    fmt.Sprintf("%s (%d/%d)%s", d.Name, d.QtyLeft().IntPart(), d.QtyTotal.IntPart(), mark),
			Style:    discordgo.SecondaryButton,
			CustomID: fmt.Sprintf("plus:%d:%d", pi, i),
		})
	}
	buttons = append(buttons,
		discordgo.Button{
			Label:    "🔄 Очистить выбор",
			Style:    discordgo.DangerButton,
			CustomID: fmt.Sprintf("clear_person:%d", pi),
		},
		discordgo.Button{
			Label:    "⬅️ Назад",
			Style:    discordgo.PrimaryButton,
			CustomID: "back_targets",
		},
	)

	head := ""
	if flash != "" {
		head = flash + "\n\n"
	}
	content := head + fmt.Sprintf(
		"👤 Участник: **%s**\nНажимайте на блюдо — каждый тап добавляет 1 шт (если есть остаток).\n\n🧾 Выбранные для участника:\n%s",
		b.Participants[pi].Name, billing.RenderChoices(b, pi))
	return content, buttonRows(buttons)
}

// groupDishView renders the per-group dish picker. Each tap splits one unit
// evenly across the group.
func groupDishView(b *billing.Bill, gi int, flash string) (string, []discordgo.MessageComponent) {
	g := b.Groups[gi]
	var buttons []discordgo.MessageComponent
	for i := range b.Dishes {
		d := &b.Dishes[i]
		buttons = append(buttons, discordgo.Button{
			Label:    fmt.Sprintf("%s (%d/%d)", d.Name, d.QtyLeft().IntPart(), d.QtyTotal.IntPart()),
			Style:    discordgo.SecondaryButton,
			CustomID: fmt.Sprintf("gplus:%d:%d", gi, i),
		})
	}
	buttons = append(buttons, discordgo.Button{
		Label:    "⬅️ Назад",
		Style:    discordgo.PrimaryButton,
		CustomID: "back_targets",
	})

	memberNames := make([]string, len(g.Members))
	for idx, mi := range g.Members {
		memberNames[idx] = b.Participants[mi].Name
	}

	head := ""
	if flash != "" {
		head = flash + "\n\n"
	}
	content := head + fmt.Sprintf(
		"👥 Группа: **%s** (%s)\nНажимайте на блюдо — каждый тап делит 1 шт поровну между участниками группы.",
		g.Name, strings.Join(memberNames, ", "))
	return content, buttonRows(buttons)
}

func hasChoices(b *billing.Bill, pi int) bool {
	for i := range b.Dishes {
		d := &b.Dishes[i]
		if pi < len(d.Assigned) && d.Assigned[pi].IsPositive() {
			return true
		}
	}
	return false
}

// buttonRows packs buttons into action rows. Discord allows at most five
// rows of five buttons per message, surplus buttons are dropped.
func buttonRows(buttons []discordgo.MessageComponent) []discordgo.MessageComponent {
	if len(buttons) > 25 {
		buttons = buttons[:25]
	}
	var rows []discordgo.MessageComponent
	for len(buttons) > 0 {
		n := 5
		if len(buttons) < n {
			n = len(buttons)
		}
		rows = append(rows, discordgo.ActionsRow{Components: buttons[:n]})
		buttons = buttons[n:]
	}
	return rows
}
