package main

import "sync"

// MessageHandle identifies a previously posted alert so it can be deleted
// later. The bot stores it and hands it back to the platform, nothing else.
type MessageHandle struct {
	ChannelID string
	Timestamp string
}

type alertKey struct {
	guildID  string
	category string
}

// AlertTracker remembers every alert message posted since the last purge,
// grouped by guild and category. In-memory only: losing the list on restart
// just means one night's alerts are not cleaned up.
type AlertTracker struct {
	mu     sync.Mutex
	posted map[alertKey][]MessageHandle
}

func NewAlertTracker() *AlertTracker {
	return &AlertTracker{posted: map[alertKey][]MessageHandle{}}
}

// Record appends a posted alert's handle to its guild/category list.
func (t *AlertTracker) Record(category, guildID string, h MessageHandle) {
	t.mu.Lock()
	defer t.mu.Unlock()
	k := alertKey{guildID: guildID, category: category}
	t.posted[k] = append(t.posted[k], h)
}

// DrainAll returns every recorded handle and clears the tracker in the same
// critical section, so alerts posted while a purge is still deleting belong
// to the next accumulation cycle.
func (t *AlertTracker) DrainAll() []MessageHandle {
	t.mu.Lock()
	defer t.mu.Unlock()

	var handles []MessageHandle
	for _, hs := range t.posted {
		handles = append(handles, hs...)
	}
	t.posted = map[alertKey][]MessageHandle{}
	return handles
}
