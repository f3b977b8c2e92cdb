package main

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// MessageDeleter is the one platform call the purge needs.
// *slack.Client satisfies it.
type MessageDeleter interface {
	DeleteMessage(channelID, timestamp string) (string, string, error)
}

// PurgeScheduler deletes every tracked alert once per day at a fixed
// wall-clock time. It talks to the tracker only through DrainAll.
type PurgeScheduler struct {
	tracker *AlertTracker
	deleter MessageDeleter
	sched   cron.Schedule
	loc     *time.Location
	stop    chan struct{}
}

// NewPurgeScheduler wires the daily purge for clock ("HH:MM") in loc.
func NewPurgeScheduler(clock string, loc *time.Location, tracker *AlertTracker, deleter MessageDeleter) (*PurgeScheduler, error) {
	hour, min, err := parseClock(clock)
	if err != nil {
		return nil, fmt.Errorf("invalid purge time '%s': %v", clock, err)
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	sched, err := parser.Parse(fmt.Sprintf("%d %d * * *", min, hour))
	if err != nil {
		return nil, fmt.Errorf("invalid purge schedule: %v", err)
	}

	return &PurgeScheduler{
		tracker: tracker,
		deleter: deleter,
		sched:   sched,
		loc:     loc,
		stop:    make(chan struct{}),
	}, nil
}

// Start arms the daily timer in a background goroutine.
func (p *PurgeScheduler) Start() {
	go func() {
		for {
			now := time.Now().In(p.loc)
			next := p.sched.Next(now)
			log.Printf("Next alert purge at %s (in %s)", next.Format("Mon Jan 2 15:04"), next.Sub(now).Round(time.Minute))

			timer := time.NewTimer(next.Sub(now))
			select {
			case <-p.stop:
				timer.Stop()
				return
			case <-timer.C:
			}
			p.RunPurge()
		}
	}()
}

// Stop disarms the timer. A purge already running finishes its batch.
func (p *PurgeScheduler) Stop() {
	close(p.stop)
}

// RunPurge drains the tracker and deletes each message. A failed delete is
// logged and the rest of the batch is still attempted.
func (p *PurgeScheduler) RunPurge() {
	handles := p.tracker.DrainAll()
	if len(handles) == 0 {
		log.Println("Alert purge: nothing to delete")
		return
	}

	deleted := 0
	for _, h := range handles {
		if _, _, err := p.deleter.DeleteMessage(h.ChannelID, h.Timestamp); err != nil {
			log.Printf("Alert purge: delete failed channel=%s ts=%s: %v", h.ChannelID, h.Timestamp, err)
			continue
		}
		deleted++
	}
	log.Printf("Alert purge complete: deleted %d/%d alert(s)", deleted, len(handles))
}
