package main

import "testing"

func TestRecordAndDrainAll(t *testing.T) {
	tracker := NewAlertTracker()
	tracker.Record(CategoryCooking, "G1", MessageHandle{ChannelID: "C1", Timestamp: "1.0"})
	tracker.Record(CategoryCooking, "G1", MessageHandle{ChannelID: "C1", Timestamp: "2.0"})
	tracker.Record(CategoryRune, "G2", MessageHandle{ChannelID: "C2", Timestamp: "3.0"})

	handles := tracker.DrainAll()
	if len(handles) != 3 {
		t.Fatalf("expected 3 handles, got %d", len(handles))
	}
	seen := map[string]bool{}
	for _, h := range handles {
		seen[h.Timestamp] = true
	}
	for _, ts := range []string{"1.0", "2.0", "3.0"} {
		if !seen[ts] {
			t.Errorf("missing handle with timestamp %s", ts)
		}
	}
}

func TestDrainAllIsIdempotent(t *testing.T) {
	tracker := NewAlertTracker()
	tracker.Record(CategoryRune, "G1", MessageHandle{ChannelID: "C1", Timestamp: "1.0"})

	if got := tracker.DrainAll(); len(got) != 1 {
		t.Fatalf("expected 1 handle on first drain, got %d", len(got))
	}
	if got := tracker.DrainAll(); len(got) != 0 {
		t.Fatalf("expected empty second drain, got %d", len(got))
	}
}

func TestRecordAfterDrainStartsFreshCycle(t *testing.T) {
	tracker := NewAlertTracker()
	tracker.Record(CategoryCooking, "G1", MessageHandle{ChannelID: "C1", Timestamp: "1.0"})
	tracker.DrainAll()

	tracker.Record(CategoryCooking, "G1", MessageHandle{ChannelID: "C1", Timestamp: "2.0"})
	handles := tracker.DrainAll()
	if len(handles) != 1 || handles[0].Timestamp != "2.0" {
		t.Fatalf("expected only the post-drain handle, got %+v", handles)
	}
}
