package model

import "math"

// ApplyProgress computes a completion percentage for every quest that has at
// least one labor and stores it on the quest. A labor counts as finished once
// it has a completion timestamp. Quests without labors are left untouched.
// The slice is mutated in place and returned for chaining.
func ApplyProgress(quests []*Quest) []*Quest {
	for _, q := range quests {
		if len(q.Labors) == 0 {
			continue
		}
		finished := 0
		for _, l := range q.Labors {
			if l.Finished() {
				finished++
			}
		}
		pct := roundPercent(float64(finished) / float64(len(q.Labors)) * 100)
		q.Percent = &pct
	}
	return quests
}

// roundPercent rounds to two decimal places.
func roundPercent(f float64) float64 {
	return math.Round(f*100) / 100
}
