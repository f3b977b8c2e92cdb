package main

import "log"

// Qualification says how close an observation came to its historical high.
type Qualification int

const (
	RecordHigh Qualification = iota
	NearHigh
)

// ClassifiedObservation is an observation that qualified for alerting.
type ClassifiedObservation struct {
	Observation
	Qualification Qualification
	Distance      int // units below the historical high; 0 for a record
	Tier          int // cooking only; 0 when the dish fits no tier bucket
}

// Runes alert within this many units below the historical high.
const runeNearWindow = 10

// ClassifyObservations keeps the observations whose new price reached or
// nearly reached the catalog high: cooking alerts at the high and one unit
// below it, runes anywhere within runeNearWindow of the high. Names missing
// from the catalog are dropped silently. Only the new price is consulted;
// the old price is carried because the source text has it, nothing more.
func ClassifyObservations(category string, observations []Observation) []ClassifiedObservation {
	catalog := catalogFor(category)

	var classified []ClassifiedObservation
	for _, obs := range observations {
		r, ok := catalog[obs.Name]
		if !ok {
			continue
		}
		if category == CategoryRune {
			distance := r.High - obs.NewPrice
			switch {
			case distance == 0:
				classified = append(classified, ClassifiedObservation{Observation: obs, Qualification: RecordHigh})
			case distance >= 1 && distance <= runeNearWindow:
				classified = append(classified, ClassifiedObservation{Observation: obs, Qualification: NearHigh, Distance: distance})
			}
			continue
		}

		var c ClassifiedObservation
		switch obs.NewPrice {
		case r.High:
			c = ClassifiedObservation{Observation: obs, Qualification: RecordHigh}
		case r.High - 1:
			c = ClassifiedObservation{Observation: obs, Qualification: NearHigh, Distance: 1}
		default:
			continue
		}
		c.Tier = cookingTier(r.Low)
		if c.Tier == 0 {
			log.Printf("Cooking item %q has low %d outside every tier bucket", obs.Name, r.Low)
		}
		classified = append(classified, c)
	}
	return classified
}
