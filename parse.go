package main

import (
	"log"
	"regexp"
	"strconv"
	"strings"
)

// Observation is one price movement extracted from a watched message.
type Observation struct {
	Name     string
	OldPrice int
	NewPrice int
}

// Price update lines look like "🍳[라면] | 40 → 85" for cooking and
// "🧪[룬 ㅣ 치유] | 300 → 335" for runes.
var cookingObsRegex = regexp.MustCompile(`🍳\[([^\[\]]+)\]\s*\|\s*([0-9]+)\s*→\s*([0-9]+)`)
var runeObsRegex = regexp.MustCompile(`🧪\[룬\s*ㅣ\s*([^\[\]]+)\]\s*\|\s*([0-9]+)\s*→\s*([0-9]+)`)

// ParseObservations extracts every price observation for the given category
// from one raw message, in the order they appear. A message with no match
// yields an empty slice, not an error.
func ParseObservations(category, text string) []Observation {
	pattern := cookingObsRegex
	if category == CategoryRune {
		pattern = runeObsRegex
	}

	var observations []Observation
	for _, m := range pattern.FindAllStringSubmatch(text, -1) {
		oldPrice, err := strconv.Atoi(m[2])
		if err != nil {
			log.Printf("Dropping %s observation %q: bad old price %q: %v", category, m[1], m[2], err)
			continue
		}
		newPrice, err := strconv.Atoi(m[3])
		if err != nil {
			log.Printf("Dropping %s observation %q: bad new price %q: %v", category, m[1], m[3], err)
			continue
		}
		observations = append(observations, Observation{
			Name:     strings.TrimSpace(m[1]),
			OldPrice: oldPrice,
			NewPrice: newPrice,
		})
	}
	return observations
}
