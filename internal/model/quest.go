// Package model defines the quest, labor, and fate records returned by the
// quests REST API.
package model

import "time"

// Quest is a tracked unit of work composed of labors.
type Quest struct {
	ID           int64      `json:"id"`
	Description  string     `json:"description,omitempty"`
	Creator      string     `json:"creator,omitempty"`
	EmbarkAt     *time.Time `json:"embark_at,omitempty"`
	TargetTime   *time.Time `json:"target_time,omitempty"`
	CompletionAt *time.Time `json:"completion_at,omitempty"`
	Labors       []*Labor   `json:"labors,omitempty"`

	// Percent is the derived completion percentage (0-100, two decimal
	// places) set by ApplyProgress. Nil when the quest has no labors.
	Percent *float64 `json:"percent,omitempty"`
}

// Labor is a sub-task of a quest tied to a single host.
type Labor struct {
	ID             int64      `json:"id"`
	QuestID        int64      `json:"quest_id,omitempty"`
	Host           string     `json:"host,omitempty"`
	CreationTime   *time.Time `json:"creation_time,omitempty"`
	CompletionTime *time.Time `json:"completion_time,omitempty"`
	FateID         int64      `json:"fate_id,omitempty"`
}

// Finished reports whether the labor has a completion timestamp.
func (l *Labor) Finished() bool {
	return l.CompletionTime != nil
}
