package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alfredjeanlab/questgraph/internal/model"
	"github.com/spf13/cobra"
)

var questsCmd = &cobra.Command{
	Use:     "quests",
	Short:   "List open quests with completion percentages",
	GroupID: "views",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		quests, err := qc.GetQuests(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		model.ApplyProgress(quests)

		if jsonOutput {
			printJSON(quests)
		} else {
			printQuestListTable(quests)
		}
		return nil
	},
}
