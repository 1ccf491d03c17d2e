package commands

import "github.com/bwmarrin/discordgo"

func GetCommands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:         "bill",
			Description:  "Совместный счёт: блюда, участники, расчёт",
			DMPermission: boolPtr(false),
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "new",
					Description: "Начать новый счёт",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "dish",
					Description: "Добавить блюдо",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "person",
					Description: "Добавить участника",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Имя участника",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "group",
					Description: "Создать группу участников",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Название группы",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "members",
							Description: "Номера участников через запятую, например: 1, 2, 4",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "service",
					Description: "Установить процент сервиса",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "percent",
							Description: "Число от 0 до 100",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "assign",
					Description: "Распределить блюда по участникам",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "calc",
					Description: "Показать итоговый расчёт",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "webapp",
					Description: "Ссылка на веб-версию счёта",
				},
			},
		},
	}
}

func boolPtr(b bool) *bool {
	return &b
}
