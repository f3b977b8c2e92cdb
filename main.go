package main

import (
	"log"

	"github.com/slack-go/slack"
)

func main() {
	cfg := LoadConfig()

	store := NewSettingsStore(cfg.SettingsPath)
	tracker := NewAlertTracker()

	api := slack.New(
		cfg.SlackBotToken,
		slack.OptionAppLevelToken(cfg.SlackAppToken),
	)

	purge, err := NewPurgeScheduler(cfg.PurgeTime, cfg.Location, tracker, api)
	if err != nil {
		log.Fatalf("Failed to set up purge scheduler: %v", err)
	}
	purge.Start()
	defer purge.Stop()

	log.Println("Starting Price High-Watch Bot...")
	if err := StartSlackBot(cfg, store, tracker, api); err != nil {
		log.Fatalf("Slack bot error: %v", err)
	}
}
