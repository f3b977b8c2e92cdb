package main

import (
	"fmt"
	"log"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// GuildConfig holds the channels a guild has configured per category.
// Unset fields mean that category (or direction) is inactive for the guild.
type GuildConfig struct {
	CookingWatchChannel string `yaml:"cooking_watch_channel,omitempty"`
	CookingAlertChannel string `yaml:"cooking_alert_channel,omitempty"`
	RuneWatchChannel    string `yaml:"rune_watch_channel,omitempty"`
	RuneAlertChannel    string `yaml:"rune_alert_channel,omitempty"`
}

func (g GuildConfig) WatchChannel(category string) string {
	if category == CategoryRune {
		return g.RuneWatchChannel
	}
	return g.CookingWatchChannel
}

func (g GuildConfig) AlertChannel(category string) string {
	if category == CategoryRune {
		return g.RuneAlertChannel
	}
	return g.CookingAlertChannel
}

const (
	RoleWatch = "watch"
	RoleAlert = "alert"
)

// SettingsStore persists per-guild channel configuration to a yaml document,
// rewritten in full after every change.
type SettingsStore struct {
	mu     sync.Mutex
	path   string
	guilds map[string]GuildConfig
}

// NewSettingsStore loads path or starts empty. A missing or unreadable
// settings file is not fatal: alerting is best-effort and guilds can simply
// reconfigure their channels.
func NewSettingsStore(path string) *SettingsStore {
	s := &SettingsStore{path: path, guilds: map[string]GuildConfig{}}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Cannot read settings file %s, starting empty: %v", path, err)
		}
		return s
	}
	if err := yaml.Unmarshal(data, &s.guilds); err != nil {
		log.Printf("Cannot parse settings file %s, starting empty: %v", path, err)
		s.guilds = map[string]GuildConfig{}
		return s
	}
	log.Printf("Loaded settings for %d guild(s) from %s", len(s.guilds), path)
	return s
}

// Get returns the guild's configuration, zero-valued if never configured.
func (s *SettingsStore) Get(guildID string) GuildConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.guilds[guildID]
}

// SetChannel updates one channel assignment, creating the guild entry if
// needed, and rewrites the settings file before returning.
func (s *SettingsStore) SetChannel(guildID, category, role, channelID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.guilds[guildID]
	switch {
	case category == CategoryCooking && role == RoleWatch:
		g.CookingWatchChannel = channelID
	case category == CategoryCooking && role == RoleAlert:
		g.CookingAlertChannel = channelID
	case category == CategoryRune && role == RoleWatch:
		g.RuneWatchChannel = channelID
	case category == CategoryRune && role == RoleAlert:
		g.RuneAlertChannel = channelID
	default:
		return fmt.Errorf("unknown category/role %s/%s", category, role)
	}
	s.guilds[guildID] = g
	return s.save()
}

// save rewrites the whole document. Callers hold the lock.
func (s *SettingsStore) save() error {
	data, err := yaml.Marshal(s.guilds)
	if err != nil {
		return fmt.Errorf("marshal settings: %v", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write settings file %s: %v", s.path, err)
	}
	return nil
}
