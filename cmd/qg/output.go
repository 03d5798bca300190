package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alfredjeanlab/questgraph/internal/model"
	"github.com/alfredjeanlab/questgraph/internal/ui"
)

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling JSON: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

func formatPercent(q *model.Quest) string {
	if q.Percent == nil {
		return ui.RenderMuted("-")
	}
	s := fmt.Sprintf("%.2f%%", *q.Percent)
	if *q.Percent >= 100 {
		return ui.RenderDone(s)
	}
	return ui.RenderInProgress(s)
}

func printQuestListTable(quests []*model.Quest) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCREATOR\tLABORS\tPERCENT\tDESCRIPTION")
	for _, q := range quests {
		desc := q.Description
		if len(desc) > 50 {
			desc = desc[:47] + "..."
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n",
			q.ID,
			q.Creator,
			len(q.Labors),
			formatPercent(q),
			desc,
		)
	}
	w.Flush()
	fmt.Printf("\n%d quests\n", len(quests))
}

func formatEventType(et *model.EventType) string {
	if et == nil {
		return "-"
	}
	return fmt.Sprintf("%s %s", et.Category, et.State)
}

func printFateListTable(fates []*model.Fate) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFOLLOWS\tCREATION\tCOMPLETION\tDESCRIPTION")
	for _, f := range fates {
		follows := "-"
		if f.FollowsID != nil {
			follows = fmt.Sprintf("%d", *f.FollowsID)
		}
		desc := f.Description
		if len(desc) > 50 {
			desc = desc[:47] + "..."
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			f.ID,
			follows,
			formatEventType(f.CreationEventType),
			formatEventType(f.CompletionEventType),
			desc,
		)
	}
	w.Flush()
	fmt.Printf("\n%d fates\n", len(fates))
}
