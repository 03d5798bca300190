package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alfredjeanlab/questgraph/internal/config"
	"github.com/alfredjeanlab/questgraph/internal/graph"
	"github.com/alfredjeanlab/questgraph/internal/snapshot"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:     "export",
	Short:   "Export a laid-out graph snapshot to a file or S3",
	GroupID: "system",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		useS3, _ := cmd.Flags().GetBool("s3")

		ctx := context.Background()

		fates, err := qc.GetFates(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		g := graph.Build(fates)
		graph.Layout(g)

		snap := snapshot.FromGraph(g, time.Now().UTC())
		data, err := snap.Encode()
		if err != nil {
			return err
		}

		var dest snapshot.Destination
		target := out
		if useS3 {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.SnapshotS3Bucket == "" {
				return fmt.Errorf("QUESTGRAPH_SNAPSHOT_S3_BUCKET is required for --s3")
			}
			dest, err = snapshot.NewS3Destination(ctx,
				cfg.SnapshotS3Bucket, cfg.SnapshotS3Key, cfg.SnapshotS3Region, cfg.SnapshotS3Endpoint)
			if err != nil {
				return err
			}
			target = "s3://" + cfg.SnapshotS3Bucket + "/" + cfg.SnapshotS3Key
		} else {
			dest = &snapshot.FileDestination{Path: out}
		}

		if err := dest.Write(ctx, data); err != nil {
			return err
		}

		stats := snap.Stats
		fmt.Printf("exported %d roots, %d fates, %d ends to %s\n",
			stats.Roots, stats.Fates, stats.Ends, target)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("out", "fate-graph.json", "output file path")
	exportCmd.Flags().Bool("s3", false, "upload to the configured S3 bucket instead of a file")
}
