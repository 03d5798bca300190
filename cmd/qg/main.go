package main

import (
	"os"

	"github.com/alfredjeanlab/questgraph/internal/client"
	"github.com/alfredjeanlab/questgraph/internal/ui"
	"github.com/spf13/cobra"
)

var (
	httpURL    string
	jsonOutput bool

	qc client.QuestsClient
)

func defaultHTTPURL() string {
	if s := os.Getenv("QUESTGRAPH_HTTP_URL"); s != "" {
		return s
	}
	if u := activeRemoteURL(); u != "" {
		return u
	}
	return "http://localhost:8080"
}

func authToken() string {
	if t := os.Getenv("QUESTGRAPH_TOKEN"); t != "" {
		return t
	}
	return activeRemoteToken()
}

var rootCmd = &cobra.Command{
	Use:   "qg <command>",
	Short: "CLI client for the quests service",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !ui.ShouldUseColor() {
			ui.ForceNoColor()
		}
		qc = client.NewHTTPClient(httpURL, authToken())
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if qc != nil {
			qc.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&httpURL, "http-url", defaultHTTPURL(), "quests server URL")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")

	rootCmd.AddGroup(
		&cobra.Group{ID: "views", Title: "Views:"},
		&cobra.Group{ID: "system", Title: "System:"},
	)
	cobra.EnableCommandSorting = false

	// Views
	rootCmd.AddCommand(questsCmd)
	rootCmd.AddCommand(fatesCmd)
	rootCmd.AddCommand(graphCmd)
	rootCmd.AddCommand(watchCmd)

	// System
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(remoteCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
