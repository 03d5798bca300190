package model

// EventType is a category/state pair describing a fleet event.
type EventType struct {
	ID          int64  `json:"id"`
	Category    string `json:"category"`
	State       string `json:"state"`
	Description string `json:"description,omitempty"`
}

// Fate describes a transition from a creation event type to a completion
// event type. A fate with a FollowsID continues the chain started by the
// referenced fate; a fate without one starts a new chain.
type Fate struct {
	ID                  int64      `json:"id"`
	FollowsID           *int64     `json:"follows_id,omitempty"`
	CreationEventType   *EventType `json:"creationEventType,omitempty"`
	CompletionEventType *EventType `json:"completionEventType,omitempty"`
	Description         string     `json:"description,omitempty"`
}
