package main

import (
	"fmt"
	"strings"
)

const (
	cookingAlertHeader = "🍳 오늘의 요리 고점 알림\n━━━━━━━━━━━━━━━━━━"
	runeAlertHeader    = "🧪 오늘의 룬 고점 알림\n━━━━━━━━━━━━━━━━━━"

	cookingRecordLabel = "🥇 최고점 요리"
	cookingNearLabel   = "🥈 최고점 -1원 요리"
)

// FormatAlert renders classified observations into the message block posted
// to the alert channel. ok is false when there is nothing to send.
func FormatAlert(category string, items []ClassifiedObservation) (string, bool) {
	if len(items) == 0 {
		return "", false
	}
	if category == CategoryRune {
		return formatRuneAlert(items), true
	}
	return formatCookingAlert(items), true
}

// formatCookingAlert groups by tier ascending, record highs before near
// highs within a tier, input order preserved inside each group. Tiers with
// no members are skipped; tier 0 (unbucketed dishes) is never rendered.
func formatCookingAlert(items []ClassifiedObservation) string {
	var b strings.Builder
	b.WriteString(cookingAlertHeader)
	for tier := 1; tier <= 4; tier++ {
		var records, nears []ClassifiedObservation
		for _, it := range items {
			if it.Tier != tier {
				continue
			}
			if it.Qualification == RecordHigh {
				records = append(records, it)
			} else {
				nears = append(nears, it)
			}
		}
		if len(records) == 0 && len(nears) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n\n▶ %d차 요리", tier)
		if len(records) > 0 {
			b.WriteString("\n" + cookingRecordLabel)
			for _, it := range records {
				fmt.Fprintf(&b, "\n- %s (%d원)", it.Name, it.NewPrice)
			}
		}
		if len(nears) > 0 {
			b.WriteString("\n" + cookingNearLabel)
			for _, it := range nears {
				fmt.Fprintf(&b, "\n- %s (%d원)", it.Name, it.NewPrice)
			}
		}
	}
	return b.String()
}

// formatRuneAlert lists record highs first, then near highs with their
// distance below the high, input order preserved inside each group.
func formatRuneAlert(items []ClassifiedObservation) string {
	var b strings.Builder
	b.WriteString(runeAlertHeader)
	for _, it := range items {
		if it.Qualification == RecordHigh {
			fmt.Fprintf(&b, "\n- %s (%d원) (0원)", it.Name, it.NewPrice)
		}
	}
	for _, it := range items {
		if it.Qualification == NearHigh {
			fmt.Fprintf(&b, "\n- %s (%d원) (-%d원)", it.Name, it.NewPrice, it.Distance)
		}
	}
	return b.String()
}
