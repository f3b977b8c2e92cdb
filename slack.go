package main

import (
	"fmt"
	"log"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"github.com/slack-go/slack/socketmode"
)

var watchCategories = []string{CategoryCooking, CategoryRune}

func StartSlackBot(cfg Config, store *SettingsStore, tracker *AlertTracker, api *slack.Client) error {
	client := socketmode.New(api)

	go func() {
		for evt := range client.Events {
			switch evt.Type {
			case socketmode.EventTypeConnected:
				log.Println("✅ Bot online")
			case socketmode.EventTypeSlashCommand:
				client.Ack(*evt.Request)
				cmd, ok := evt.Data.(slack.SlashCommand)
				if !ok {
					continue
				}
				log.Printf("Slash command received: %s from user=%s channel=%s", cmd.Command, cmd.UserID, cmd.ChannelID)
				go handleSlashCommand(api, store, cmd)
			case socketmode.EventTypeEventsAPI:
				client.Ack(*evt.Request)
				eventsAPIEvent, ok := evt.Data.(slackevents.EventsAPIEvent)
				if !ok {
					continue
				}
				go handleEventsAPI(api, store, tracker, eventsAPIEvent)
			}
		}
	}()

	log.Println("Slack bot connecting via Socket Mode")
	return client.Run()
}

func handleSlashCommand(api *slack.Client, store *SettingsStore, cmd slack.SlashCommand) {
	switch cmd.Command {
	case "/cooking-watch":
		handleSetChannel(api, store, cmd, CategoryCooking, RoleWatch, "🍳 이 채널을 요리 시세 감시 채널로 설정했습니다.")
	case "/cooking-alert":
		handleSetChannel(api, store, cmd, CategoryCooking, RoleAlert, "🍳 이 채널을 요리 고점 알림 채널로 설정했습니다.")
	case "/rune-watch":
		handleSetChannel(api, store, cmd, CategoryRune, RoleWatch, "🧪 이 채널을 룬 시세 감시 채널로 설정했습니다.")
	case "/rune-alert":
		handleSetChannel(api, store, cmd, CategoryRune, RoleAlert, "🧪 이 채널을 룬 고점 알림 채널로 설정했습니다.")
	case "/highwatch-status":
		handleStatus(api, store, cmd)
	}
}

// handleSetChannel points one guild/category/role at the channel the command
// was invoked in. The settings file is rewritten before the confirmation is
// sent, so a confirmed command is always durable.
func handleSetChannel(api *slack.Client, store *SettingsStore, cmd slack.SlashCommand, category, role, confirmation string) {
	if err := store.SetChannel(cmd.TeamID, category, role, cmd.ChannelID); err != nil {
		postEphemeral(api, cmd, fmt.Sprintf("설정 저장에 실패했습니다: %v", err))
		log.Printf("set-channel error team=%s category=%s role=%s: %v", cmd.TeamID, category, role, err)
		return
	}
	postEphemeral(api, cmd, confirmation)
}

func handleStatus(api *slack.Client, store *SettingsStore, cmd slack.SlashCommand) {
	g := store.Get(cmd.TeamID)
	ref := func(id string) string {
		if id == "" {
			return "(미설정)"
		}
		return fmt.Sprintf("<#%s>", id)
	}
	msg := fmt.Sprintf("현재 설정\n• 요리 감시: %s\n• 요리 알림: %s\n• 룬 감시: %s\n• 룬 알림: %s",
		ref(g.CookingWatchChannel), ref(g.CookingAlertChannel), ref(g.RuneWatchChannel), ref(g.RuneAlertChannel))
	postEphemeral(api, cmd, msg)
}

func handleEventsAPI(api *slack.Client, store *SettingsStore, tracker *AlertTracker, event slackevents.EventsAPIEvent) {
	if event.Type != slackevents.CallbackEvent {
		return
	}
	switch ev := event.InnerEvent.Data.(type) {
	case *slackevents.MessageEvent:
		handleMessage(api, store, tracker, event.TeamID, ev)
	}
}

// handleMessage runs the watch pipeline for both categories against one
// inbound channel message. Bot-authored messages are ignored so the bot's
// own alerts never feed back into the pipeline.
func handleMessage(api *slack.Client, store *SettingsStore, tracker *AlertTracker, guildID string, ev *slackevents.MessageEvent) {
	if ev.BotID != "" || ev.SubType == "bot_message" {
		return
	}
	if ev.SubType != "" {
		// edits, joins, deletions — not price updates
		return
	}

	guild := store.Get(guildID)
	for _, category := range watchCategories {
		if guild.WatchChannel(category) != ev.Channel {
			continue
		}
		alertChannel := guild.AlertChannel(category)
		if alertChannel == "" {
			continue
		}
		text, ok := BuildAlert(category, ev.Text)
		if !ok {
			continue
		}
		if _, err := api.GetConversationInfo(&slack.GetConversationInfoInput{ChannelID: alertChannel}); err != nil {
			log.Printf("Alert channel %s no longer resolves, skipping %s alert: %v", alertChannel, category, err)
			continue
		}
		channelID, timestamp, err := api.PostMessage(alertChannel, slack.MsgOptionText(text, false))
		if err != nil {
			log.Printf("Error posting %s alert to %s: %v", category, alertChannel, err)
			continue
		}
		tracker.Record(category, guildID, MessageHandle{ChannelID: channelID, Timestamp: timestamp})
		log.Printf("Posted %s alert guild=%s channel=%s ts=%s", category, guildID, channelID, timestamp)
	}
}

// BuildAlert runs parse → classify → format for one raw message and returns
// the alert text, or ok=false when the message produced nothing to send.
func BuildAlert(category, text string) (string, bool) {
	observations := ParseObservations(category, text)
	if len(observations) == 0 {
		return "", false
	}
	return FormatAlert(category, ClassifyObservations(category, observations))
}

func postEphemeral(api *slack.Client, cmd slack.SlashCommand, text string) {
	_, err := api.PostEphemeral(cmd.ChannelID, cmd.UserID, slack.MsgOptionText(text, false))
	if err != nil {
		log.Printf("Error posting ephemeral: %v", err)
	}
}
