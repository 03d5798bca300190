package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/alfredjeanlab/questgraph/internal/config"
	"github.com/alfredjeanlab/questgraph/internal/events"
	"github.com/alfredjeanlab/questgraph/internal/model"
	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:     "watch",
	Short:   "Watch for new fates",
	GroupID: "views",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		once, _ := cmd.Flags().GetBool("once")

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		interval := cfg.WatchInterval
		if cmd.Flags().Changed("interval") {
			interval, _ = cmd.Flags().GetDuration("interval")
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		seen := make(map[int64]bool)

		// Initial query.
		if err := queryAndPrint(ctx, seen); err != nil {
			return err
		}
		if once {
			return nil
		}

		// Event-driven when a NATS URL is configured, polling otherwise.
		natsURL := cfg.NATSURL
		if natsURL == "" {
			natsURL = activeRemoteNATSURL()
		}
		if natsURL != "" {
			return watchNATS(ctx, natsURL, seen)
		}
		return watchPoll(ctx, interval, seen)
	},
}

// watchNATS subscribes to quests service events and re-queries on changes
// with debounce.
func watchNATS(ctx context.Context, natsURL string, seen map[int64]bool) error {
	// reconnectCh receives a signal when the NATS client reconnects after
	// a disconnect, so we can immediately re-query for missed events.
	reconnectCh := make(chan struct{}, 1)

	sub, err := events.NewNATSSubscriber(natsURL,
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Printf("nats: disconnected: %v", err)
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			log.Printf("nats: reconnected")
			select {
			case reconnectCh <- struct{}{}:
			default:
			}
		}),
	)
	if err != nil {
		return fmt.Errorf("connecting to NATS: %w", err)
	}
	defer sub.Close()

	ch, cancel, err := sub.Subscribe(events.TopicWildcard)
	if err != nil {
		return fmt.Errorf("subscribing to events: %w", err)
	}
	defer cancel()

	debounce := time.NewTimer(0)
	debounce.Stop()
	// Drain the timer channel in case it fired between NewTimer and Stop.
	select {
	case <-debounce.C:
	default:
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-ch:
			if !ok {
				return nil
			}
			debounce.Reset(200 * time.Millisecond)
		case <-reconnectCh:
			debounce.Reset(0) // immediate re-query
		case <-debounce.C:
			if err := queryAndPrint(ctx, seen); err != nil {
				return err
			}
		}
	}
}

// watchPoll polls for changes at the given interval.
func watchPoll(ctx context.Context, interval time.Duration, seen map[int64]bool) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(interval):
		}
		if err := queryAndPrint(ctx, seen); err != nil {
			return err
		}
	}
}

// queryAndPrint fetches the fate list, diffs against the seen set, and prints
// any new fates.
func queryAndPrint(ctx context.Context, seen map[int64]bool) error {
	fates, err := qc.GetFates(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	newFates := diffFates(fates, seen)
	if len(newFates) > 0 {
		if jsonOutput {
			printJSON(newFates)
		} else {
			printFateListTable(newFates)
		}
	}
	return nil
}

// diffFates returns fates not present in the seen set, updating it in place.
// Fate records are immutable, so identity by id is enough.
func diffFates(fates []*model.Fate, seen map[int64]bool) []*model.Fate {
	var newFates []*model.Fate
	for _, f := range fates {
		if !seen[f.ID] {
			newFates = append(newFates, f)
		}
		seen[f.ID] = true
	}
	return newFates
}

func init() {
	watchCmd.Flags().Duration("interval", 5*time.Second, "polling interval")
	watchCmd.Flags().Bool("once", false, "exit after first query")
}
