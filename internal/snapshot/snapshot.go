// Package snapshot encodes built fate graphs and writes them to local files
// or S3-compatible storage.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/alfredjeanlab/questgraph/internal/graph"
)

// Snapshot is a point-in-time export of a laid-out fate graph. Nodes and
// edges keep builder insertion order.
type Snapshot struct {
	ExportedAt time.Time     `json:"exported_at"`
	Nodes      []*graph.Node `json:"nodes"`
	Edges      []*graph.Edge `json:"edges"`
	Stats      graph.Stats   `json:"stats"`
}

// FromGraph captures the graph's current nodes, edges, and stats.
func FromGraph(g *graph.Graph, exportedAt time.Time) *Snapshot {
	return &Snapshot{
		ExportedAt: exportedAt,
		Nodes:      g.Nodes(),
		Edges:      g.Edges(),
		Stats:      g.Stats(),
	}
}

// Encode renders the snapshot as indented JSON.
func (s *Snapshot) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return data, nil
}

// Destination receives encoded snapshot data.
type Destination interface {
	Write(ctx context.Context, data []byte) error
}

// FileDestination writes snapshot data to a local file.
type FileDestination struct {
	Path string
}

func (d *FileDestination) Write(ctx context.Context, data []byte) error {
	if err := os.WriteFile(d.Path, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot file: %w", err)
	}
	return nil
}
