package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alfredjeanlab/questgraph/internal/graph"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:     "graph",
	Short:   "Show the fate graph",
	GroupID: "views",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		fates, err := qc.GetFates(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		g := graph.Build(fates)
		graph.Layout(g)

		switch format {
		case "json":
			printJSON(struct {
				Nodes []*graph.Node `json:"nodes"`
				Edges []*graph.Edge `json:"edges"`
				Stats graph.Stats   `json:"stats"`
			}{g.Nodes(), g.Edges(), g.Stats()})
		case "tree":
			printFateTrees(os.Stdout, g)
		default:
			return fmt.Errorf("unknown format %q (must be tree or json)", format)
		}
		return nil
	},
}

// printFateTrees renders one ASCII tree per root node.
func printFateTrees(w io.Writer, g *graph.Graph) {
	roots := g.Roots()
	if len(roots) == 0 {
		fmt.Fprintln(w, "No fates found.")
		return
	}
	for _, root := range roots {
		fmt.Fprintf(w, "%s [%s] %s\n", root.ID, root.Kind, root.Label)
		printFateBranch(w, g, root.ID, "")
	}
}

func printFateBranch(w io.Writer, g *graph.Graph, nodeID, prefix string) {
	children := g.Outgoing(nodeID)
	for i, e := range children {
		isLast := i == len(children)-1

		connector := "├── "
		childPrefix := prefix + "│   "
		if isLast {
			connector = "└── "
			childPrefix = prefix + "    "
		}

		child := g.Node(e.Target)
		if child == nil {
			fmt.Fprintf(w, "%s%s%s -> %s (missing)\n", prefix, connector, e.Label, e.Target)
			continue
		}

		fmt.Fprintf(w, "%s%s%s [%s] %s\n", prefix, connector, child.ID, child.Kind, e.Label)
		printFateBranch(w, g, child.ID, childPrefix)
	}
}

func init() {
	graphCmd.Flags().String("format", "tree", "output format (tree or json)")
}
