package graph

import (
	"fmt"

	"github.com/alfredjeanlab/questgraph/internal/model"
)

// Node id conventions: roots are "r<event-type-id>", fate children are
// "f<fate-id>c", edges are "fe<fate-id>". A fate that follows another chains
// onto the parent's child node by naming convention, not by an extra edge.
const rootPrefix = "r"

func childID(fateID int64) string {
	return fmt.Sprintf("f%dc", fateID)
}

func edgeID(fateID int64) string {
	return fmt.Sprintf("fe%d", fateID)
}

// rootID resolves where a fate's edge starts: the parent's child node when
// the fate follows one, otherwise a root node derived from the creation
// event type.
func rootID(f *model.Fate) string {
	if f.FollowsID != nil {
		return childID(*f.FollowsID)
	}
	var et int64
	if f.CreationEventType != nil {
		et = f.CreationEventType.ID
	}
	return fmt.Sprintf("%s%d", rootPrefix, et)
}

func eventLabel(et *model.EventType) string {
	if et == nil {
		return ""
	}
	return et.Category + " " + et.State
}

// Build converts a flat fate list into a node/edge graph: one root node per
// distinct creation event type (first occurrence wins), one child node per
// fate, one edge per fate from its resolved root to its child.
//
// Child nodes are appended without dedup, so building from a list that
// contains the same fate twice yields two child nodes and two edges under a
// single root.
func Build(fates []*model.Fate) *Graph {
	g := New()
	for _, f := range fates {
		rid := rootID(f)
		if f.FollowsID == nil && g.Node(rid) == nil {
			g.addNode(&Node{
				ID:    rid,
				Kind:  KindRoot,
				Label: eventLabel(f.CreationEventType),
				Size:  RootSize,
			})
		}
		cid := childID(f.ID)
		g.addNode(&Node{
			ID:    cid,
			Kind:  KindChild,
			Label: eventLabel(f.CompletionEventType),
			Size:  ChildSize,
		})
		g.addEdge(&Edge{
			ID:     edgeID(f.ID),
			Source: rid,
			Target: cid,
			Kind:   EdgeKindFateFlow,
			Label:  f.Description,
		})
	}
	return g
}
