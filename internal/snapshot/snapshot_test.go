package snapshot

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alfredjeanlab/questgraph/internal/graph"
	"github.com/alfredjeanlab/questgraph/internal/model"
)

func buildTestGraph() *graph.Graph {
	follows := int64(1)
	fates := []*model.Fate{
		{
			ID:                1,
			CreationEventType: &model.EventType{ID: 9, Category: "system-reboot", State: "required"},
			Description:       "reboot",
		},
		{
			ID:          2,
			FollowsID:   &follows,
			Description: "release",
		},
	}
	g := graph.Build(fates)
	graph.Layout(g)
	return g
}

func TestFromGraphEncode(t *testing.T) {
	g := buildTestGraph()
	exportedAt := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)

	snap := FromGraph(g, exportedAt)
	data, err := snap.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	var decoded Snapshot
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decoding snapshot: %v", err)
	}

	if !decoded.ExportedAt.Equal(exportedAt) {
		t.Errorf("ExportedAt = %v, want %v", decoded.ExportedAt, exportedAt)
	}
	if len(decoded.Nodes) != 3 {
		t.Fatalf("got %d nodes, want 3", len(decoded.Nodes))
	}
	// Insertion order is preserved through encode/decode.
	wantOrder := []string{"r9", "f1c", "f2c"}
	for i, want := range wantOrder {
		if decoded.Nodes[i].ID != want {
			t.Errorf("nodes[%d].ID = %q, want %q", i, decoded.Nodes[i].ID, want)
		}
	}
	if len(decoded.Edges) != 2 {
		t.Fatalf("got %d edges, want 2", len(decoded.Edges))
	}
	if decoded.Stats.Roots != 1 || decoded.Stats.Fates != 2 || decoded.Stats.Ends != 1 {
		t.Errorf("stats = %+v, want 1 root, 2 fates, 1 end", decoded.Stats)
	}
}

func TestFileDestination(t *testing.T) {
	g := buildTestGraph()
	snap := FromGraph(g, time.Now().UTC())
	data, err := snap.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "graph.json")
	dest := &FileDestination{Path: path}
	if err := dest.Write(context.Background(), data); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written file: %v", err)
	}
	if string(written) != string(data) {
		t.Error("written file does not match encoded snapshot")
	}
}
