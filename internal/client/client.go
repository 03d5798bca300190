// Package client provides a transport-agnostic interface for the quests
// service and an HTTP/JSON implementation that talks to its REST API.
package client

import (
	"context"

	"github.com/alfredjeanlab/questgraph/internal/model"
)

// QuestsClient is the interface all questgraph commands use to talk to the
// quests server. It is implemented by HTTPClient and can be backed by any
// transport.
type QuestsClient interface {
	// GetQuests fetches all open quests with their labors expanded.
	GetQuests(ctx context.Context) ([]*model.Quest, error)

	// GetFates fetches all fates with their event types expanded.
	GetFates(ctx context.Context) ([]*model.Fate, error)

	// Health probes the server and returns its status string.
	Health(ctx context.Context) (string, error)

	// Lifecycle
	Close() error
}
