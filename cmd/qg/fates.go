package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var fatesCmd = &cobra.Command{
	Use:     "fates",
	Short:   "List fates",
	GroupID: "views",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fates, err := qc.GetFates(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			printJSON(fates)
		} else {
			printFateListTable(fates)
		}
		return nil
	},
}
