package commands

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/muzaffarov/splitbill/internal/billing"
	"github.com/muzaffarov/splitbill/internal/session"
)

const noCapacityFlash = "❗ Остатка по позиции нет."

// HandleComponent routes the assign flow's button presses. Every press
// re-renders the message from a fresh snapshot; buttons from an outdated
// message fall back to the target picker instead of acting on wrong indexes.
func HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate, mgr *session.Manager) {
	ctx := context.Background()
	channelID := i.ChannelID
	action, args := splitCustomID(i.MessageComponentData().CustomID)

	switch action {
	case "back_targets":
		showTargets(s, i, mgr)
	case "pick_person":
		bill, err := mgr.Snapshot(ctx, channelID)
		if err != nil {
			respondText(s, i, err.Error())
			return
		}
		if len(args) != 1 || args[0] < 0 || args[0] >= len(bill.Participants) {
			showTargets(s, i, mgr)
			return
		}
		content, rows := personDishView(bill, args[0], "")
		updateMessage(s, i, content, rows)
	case "pick_group":
		bill, err := mgr.Snapshot(ctx, channelID)
		if err != nil {
			respondText(s, i, err.Error())
			return
		}
		if len(args) != 1 || args[0] < 0 || args[0] >= len(bill.Groups) {
			showTargets(s, i, mgr)
			return
		}
		content, rows := groupDishView(bill, args[0], "")
		updateMessage(s, i, content, rows)
	case "plus":
		if len(args) != 2 {
			showTargets(s, i, mgr)
			return
		}
		pi, di := args[0], args[1]
		flash := ""
		bill, err := mgr.AssignUnit(ctx, channelID, di, pi)
		if errors.Is(err, billing.ErrCapacityExceeded) {
			flash = noCapacityFlash
			bill, err = mgr.Snapshot(ctx, channelID)
		}
		if err != nil {
			showTargets(s, i, mgr)
			return
		}
		content, rows := personDishView(bill, pi, flash)
		updateMessage(s, i, content, rows)
	case "gplus":
		if len(args) != 2 {
			showTargets(s, i, mgr)
			return
		}
		gi, di := args[0], args[1]
		flash := ""
		bill, err := mgr.AssignGroupUnit(ctx, channelID, di, gi)
		if errors.Is(err, billing.ErrCapacityExceeded) {
			flash = noCapacityFlash
			bill, err = mgr.Snapshot(ctx, channelID)
		}
		if err != nil {
			showTargets(s, i, mgr)
			return
		}
		content, rows := groupDishView(bill, gi, flash)
		updateMessage(s, i, content, rows)
	case "clear_person":
		if len(args) != 1 {
			showTargets(s, i, mgr)
			return
		}
		bill, err := mgr.ClearParticipant(ctx, channelID, args[0])
		if err != nil {
			respondText(s, i, err.Error())
			return
		}
		if args[0] < 0 || args[0] >= len(bill.Participants) {
			showTargets(s, i, mgr)
			return
		}
		content, rows := personDishView(bill, args[0], "🧹 Выбор очищен.")
		updateMessage(s, i, content, rows)
	}
}

func showTargets(s *discordgo.Session, i *discordgo.InteractionCreate, mgr *session.Manager) {
	bill, err := mgr.Snapshot(context.Background(), i.ChannelID)
	if err != nil {
		respondText(s, i, err.Error())
		return
	}
	content, rows := targetView(bill)
	updateMessage(s, i, content, rows)
}

// splitCustomID parses ids of the form "action:arg1:arg2". Non-numeric args
// yield a nil slice, which every caller treats as a stale button.
func splitCustomID(id string) (string, []int) {
	parts := strings.Split(id, ":")
	args := make([]int, 0, len(parts)-1)
	for _, p := range parts[1:] {
		n, err := strconv.Atoi(p)
		if err != nil {
			return parts[0], nil
		}
		args = append(args, n)
	}
	return parts[0], args
}
