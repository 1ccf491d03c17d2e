package commands

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/muzaffarov/splitbill/internal/billing"
	"github.com/muzaffarov/splitbill/internal/session"
)

const dishModalID = "dish_add"

func HandleBill(s *discordgo.Session, i *discordgo.InteractionCreate, mgr *session.Manager, webAppURL string) {
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		respondText(s, i, "Не удалось распознать команду. Пожалуйста, используйте подкоманды /bill.")
		return
	}

	ctx := context.Background()
	sub := data.Options[0]
	channelID := i.ChannelID

	switch sub.Name {
	case "new":
		if err := mgr.NewBill(ctx, channelID); err != nil {
			respondText(s, i, err.Error())
			return
		}
		respondText(s, i, "🧾 Создан новый счёт.")
	case "dish":
		openDishModal(s, i)
	case "person":
		name := getStringOption(sub.Options, "name")
		if name == nil {
			respondText(s, i, "Укажите имя участника.")
			return
		}
		bill, err := mgr.AddParticipant(ctx, channelID, *name)
		if err != nil {
			respondText(s, i, err.Error())
			return
		}
		names := make([]string, len(bill.Participants))
		for idx, p := range bill.Participants {
			names[idx] = p.Name
		}
		added := bill.Participants[len(bill.Participants)-1]
		respondText(s, i, fmt.Sprintf("✅ Добавлен участник: %s\n👥 Текущий список: %s",
			added.Name, strings.Join(names, ", ")))
	case "group":
		name := getStringOption(sub.Options, "name")
		members := getStringOption(sub.Options, "members")
		if name == nil || members == nil {
			respondText(s, i, "Укажите название группы и номера участников.")
			return
		}
		bill, err := mgr.AddGroup(ctx, channelID, *name, parseMemberIndexes(*members))
		if err != nil {
			respondText(s, i, err.Error())
			return
		}
		g := bill.Groups[len(bill.Groups)-1]
		memberNames := make([]string, len(g.Members))
		for idx, mi := range g.Members {
			memberNames[idx] = bill.Participants[mi].Name
		}
		respondText(s, i, fmt.Sprintf("✅ Создана группа %s: %s", g.Name, strings.Join(memberNames, ", ")))
	case "service":
		percent := getStringOption(sub.Options, "percent")
		if percent == nil {
			respondText(s, i, "Укажите процент сервиса.")
			return
		}
		pct, err := parseServicePct(*percent)
		if err != nil {
			respondText(s, i, err.Error())
			return
		}
		if err := mgr.SetServicePct(ctx, channelID, pct); err != nil {
			respondText(s, i, err.Error())
			return
		}
		respondText(s, i, fmt.Sprintf("Сервис установлен: %s%%.", pct))
	case "assign":
		bill, err := mgr.Snapshot(ctx, channelID)
		if err != nil {
			respondText(s, i, err.Error())
			return
		}
		if len(bill.Participants) == 0 || len(bill.Dishes) == 0 {
			respondText(s, i, "Пожалуйста, добавьте хотя бы одно блюдо и одного участника.")
			return
		}
		content, rows := targetView(bill)
		respondComponents(s, i, content, rows)
	case "calc":
		text, err := mgr.Summary(ctx, channelID)
		if err != nil {
			respondText(s, i, err.Error())
			return
		}
		respondText(s, i, text)
	case "webapp":
		if webAppURL == "" {
			respondText(s, i, "WebApp не настроен на этом сервере.")
			return
		}
		token := mgr.IssueWebToken(channelID)
		respondText(s, i, fmt.Sprintf("🧮 Открыть WebApp: %s?token=%s", webAppURL, token))
	default:
		respondText(s, i, "Неизвестная подкоманда.")
	}
}

func openDishModal(s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: dishModalID,
			Title:    "Добавить блюдо",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    "dish_text",
							Label:       "Блюдо: (название) (кол-во) шт (цена)",
							Style:       discordgo.TextInputShort,
							Placeholder: "Плов 2 шт 90000",
							Required:    true,
							MaxLength:   100,
						},
					},
				},
			},
		},
	})
	if err != nil {
		log.Printf("Failed to create modal: %v", err)
	}
}

func HandleModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate, mgr *session.Manager) {
	data := i.ModalSubmitData()
	if data.CustomID != dishModalID {
		return
	}

	// Get the dish line from the modal
	var text string
	for _, component := range data.Components {
		if actionRow, ok := component.(*discordgo.ActionsRow); ok {
			for _, c := range actionRow.Components {
				if input, ok := c.(*discordgo.TextInput); ok && input.CustomID == "dish_text" {
					text = input.Value
				}
			}
		}
	}

	bill, err := mgr.AddDish(context.Background(), i.ChannelID, text)
	if err != nil {
		respondText(s, i, err.Error())
		return
	}

	d := bill.Dishes[len(bill.Dishes)-1]
	unit := d.UnitPrice().Round(0).IntPart()
	respondText(s, i, fmt.Sprintf("✅ Блюдо добавлено: %s — %d шт × %s %s = %s %s\n📋 Список блюд:\n%s",
		d.Name, d.QtyTotal.IntPart(),
		billing.FormatMoney(unit), billing.Currency,
		billing.FormatMoney(d.LineTotal.IntPart()), billing.Currency,
		billing.RenderDishList(bill)))
}
