package main

import (
	"strings"
	"testing"
)

func TestBuildAlertCookingRecord(t *testing.T) {
	text, ok := BuildAlert(CategoryCooking, "🍳[라면] | 40 → 85")
	if !ok {
		t.Fatal("expected an alert")
	}
	for _, want := range []string{"▶ 3차 요리", "🥇 최고점 요리", "- 라면 (85원)"} {
		if !strings.Contains(text, want) {
			t.Errorf("alert missing %q:\n%s", want, text)
		}
	}
}

func TestBuildAlertRuneNearHigh(t *testing.T) {
	text, ok := BuildAlert(CategoryRune, "🧪[룬 ㅣ 치유] | 300 → 335")
	if !ok {
		t.Fatal("expected an alert")
	}
	if !strings.Contains(text, "- 치유 (335원) (-6원)") {
		t.Fatalf("alert missing near-high line:\n%s", text)
	}
}

func TestBuildAlertNoPatternPostsNothing(t *testing.T) {
	if text, ok := BuildAlert(CategoryCooking, "요리 시세가 올랐다는 소문이 있던데요"); ok {
		t.Fatalf("expected no alert, got %q", text)
	}
}

func TestBuildAlertNoQualifyingObservation(t *testing.T) {
	// parses fine but the price is far from the high
	if text, ok := BuildAlert(CategoryCooking, "🍳[라면] | 40 → 72"); ok {
		t.Fatalf("expected no alert, got %q", text)
	}
}

func TestGuildConfigChannelAccessors(t *testing.T) {
	g := GuildConfig{
		CookingWatchChannel: "C1",
		CookingAlertChannel: "C2",
		RuneWatchChannel:    "C3",
		RuneAlertChannel:    "C4",
	}
	if g.WatchChannel(CategoryCooking) != "C1" || g.AlertChannel(CategoryCooking) != "C2" {
		t.Fatalf("unexpected cooking channels: %+v", g)
	}
	if g.WatchChannel(CategoryRune) != "C3" || g.AlertChannel(CategoryRune) != "C4" {
		t.Fatalf("unexpected rune channels: %+v", g)
	}
}
