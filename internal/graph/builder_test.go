package graph

import (
	"testing"

	"github.com/alfredjeanlab/questgraph/internal/model"
)

func fate(id int64, eventTypeID int64, desc string) *model.Fate {
	return &model.Fate{
		ID:                  id,
		CreationEventType:   &model.EventType{ID: eventTypeID, Category: "system-reboot", State: "required"},
		CompletionEventType: &model.EventType{Category: "system-reboot", State: "completed"},
		Description:         desc,
	}
}

func followingFate(id, followsID int64, desc string) *model.Fate {
	f := fate(id, 0, desc)
	f.FollowsID = &followsID
	return f
}

func TestBuild_SingleFate(t *testing.T) {
	fates := []*model.Fate{{
		ID:                  1,
		CreationEventType:   &model.EventType{ID: 9, Category: "a", State: "new"},
		CompletionEventType: &model.EventType{Category: "a", State: "done"},
		Description:         "first",
	}}

	g := Build(fates)

	nodes := g.Nodes()
	if len(nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(nodes))
	}
	if nodes[0].ID != "r9" || nodes[0].Kind != KindRoot {
		t.Errorf("nodes[0] = %q (%s), want r9 (root)", nodes[0].ID, nodes[0].Kind)
	}
	if nodes[0].Label != "a new" {
		t.Errorf("root label = %q, want %q", nodes[0].Label, "a new")
	}
	if nodes[1].ID != "f1c" || nodes[1].Kind != KindChild {
		t.Errorf("nodes[1] = %q (%s), want f1c (child)", nodes[1].ID, nodes[1].Kind)
	}

	edges := g.Edges()
	if len(edges) != 1 {
		t.Fatalf("got %d edges, want 1", len(edges))
	}
	e := edges[0]
	if e.ID != "fe1" || e.Source != "r9" || e.Target != "f1c" {
		t.Errorf("edge = %+v, want fe1 r9->f1c", e)
	}
	if e.Kind != EdgeKindFateFlow {
		t.Errorf("edge kind = %q, want %q", e.Kind, EdgeKindFateFlow)
	}
	if e.Label != "first" {
		t.Errorf("edge label = %q, want %q", e.Label, "first")
	}
}

func TestBuild_RootPerDistinctEventType(t *testing.T) {
	fates := []*model.Fate{
		fate(1, 9, "first"),
		fate(2, 9, "second"),
		fate(3, 12, "third"),
	}

	g := Build(fates)

	var roots, children int
	for _, n := range g.Nodes() {
		switch n.Kind {
		case KindRoot:
			roots++
		case KindChild:
			children++
		}
	}
	if roots != 2 {
		t.Errorf("got %d roots, want 2 (distinct creation event types)", roots)
	}
	if children != len(fates) {
		t.Errorf("got %d children, want %d", children, len(fates))
	}
	if len(g.Edges()) != len(fates) {
		t.Errorf("got %d edges, want %d", len(g.Edges()), len(fates))
	}
}

func TestBuild_FollowsChainsByNaming(t *testing.T) {
	fates := []*model.Fate{
		fate(1, 9, "start"),
		followingFate(2, 1, "continue"),
	}

	g := Build(fates)

	// The follower must not create a second root.
	if got := len(g.Roots()); got != 1 {
		t.Fatalf("got %d roots, want 1", got)
	}

	edges := g.Edges()
	if len(edges) != 2 {
		t.Fatalf("got %d edges, want 2", len(edges))
	}
	if edges[1].Source != "f1c" {
		t.Errorf("follower edge source = %q, want f1c (parent's child node)", edges[1].Source)
	}
	if edges[1].Target != "f2c" {
		t.Errorf("follower edge target = %q, want f2c", edges[1].Target)
	}
}

func TestBuild_DuplicateFateAppendsChildNotRoot(t *testing.T) {
	f := fate(1, 9, "first")
	g := Build([]*model.Fate{f, f})

	var roots, children int
	for _, n := range g.Nodes() {
		switch n.Kind {
		case KindRoot:
			roots++
		case KindChild:
			children++
		}
	}
	if roots != 1 {
		t.Errorf("got %d roots, want 1 (root nodes dedup by id)", roots)
	}
	if children != 2 {
		t.Errorf("got %d children, want 2 (child nodes never dedup)", children)
	}
	if len(g.Edges()) != 2 {
		t.Errorf("got %d edges, want 2", len(g.Edges()))
	}

	// Lookup returns the first node added with the id.
	first := g.Nodes()[1]
	if g.Node("f1c") != first {
		t.Error("Node(\"f1c\") should return the first child added")
	}
}

func TestBuild_MissingCreationEventType(t *testing.T) {
	g := Build([]*model.Fate{{ID: 4, Description: "orphan"}})

	if n := g.Node("r0"); n == nil || n.Kind != KindRoot {
		t.Fatalf("expected fallback root r0, got %+v", n)
	}
	if n := g.Node("f4c"); n == nil {
		t.Fatal("expected child f4c")
	}
}
