// Package events subscribes to change notifications published by the quests
// service over NATS.
package events

// Topics published by the quests service.
const (
	TopicQuestCreated   = "quests.quest.created"
	TopicQuestCompleted = "quests.quest.completed"
	TopicLaborCreated   = "quests.labor.created"
	TopicLaborCompleted = "quests.labor.completed"
	TopicFateCreated    = "quests.fate.created"
	TopicFateUpdated    = "quests.fate.updated"
)

// TopicWildcard matches every topic the quests service publishes.
const TopicWildcard = "quests.>"
