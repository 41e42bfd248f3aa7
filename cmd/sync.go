package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/timeworthapp/timeworth/internal/config"
	"github.com/timeworthapp/timeworth/internal/store"
	"github.com/timeworthapp/timeworth/internal/sync"
)

var flagSyncWatch bool

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync records with the remote sheet",
	Long: "Pulls remote rows into the local database, then pushes local\n" +
		"records changed since the last sync. With --watch, keeps running\n" +
		"and flushes changes on the configured interval.",
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVarP(&flagSyncWatch, "watch", "w", false, "Keep syncing until interrupted")
	rootCmd.AddCommand(syncCmd)
}

// syncClient builds a client from config, or nil when sync is not set
// up. The token can come from TIMEWORTH_SYNC_TOKEN or the config file.
func syncClient(cfg config.Config) *sync.Client {
	return sync.NewClient(cfg.Sync.Endpoint, config.GetSyncToken(cfg), sync.Backoff{
		Initial:     time.Duration(cfg.Sync.InitialDelayMS) * time.Millisecond,
		Multiplier:  cfg.Sync.Multiplier,
		Max:         time.Duration(cfg.Sync.MaxDelayMS) * time.Millisecond,
		MaxAttempts: cfg.Sync.MaxAttempts,
	})
}

func runSync(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	client := syncClient(cfg)
	if client == nil {
		return errors.New("sync is not configured — set an endpoint with: timeworth setup")
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := syncOnce(ctx, st, client); err != nil {
		return err
	}

	if !flagSyncWatch {
		return nil
	}

	interval := time.Duration(cfg.Sync.FlushSeconds) * time.Second
	if interval < time.Second {
		interval = 30 * time.Second
	}
	fmt.Printf("  Watching for changes, flushing every %s (ctrl+c to stop)\n", interval)

	queue := sync.NewQueue(client)
	go queue.Run(ctx, interval, func(err error) {
		fmt.Fprintf(os.Stderr, "  Sync flush failed, rows kept for retry: %v\n", err)
	})

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := enqueueChanges(st, queue); err != nil {
				fmt.Fprintf(os.Stderr, "  Reading changes: %v\n", err)
			}
		case <-ctx.Done():
			// Queue.Run does a final flush on cancellation.
			time.Sleep(100 * time.Millisecond)
			fmt.Println("\n  Stopped.")
			return nil
		}
	}
}

// syncOnce pulls remote rows the local database is missing, then pushes
// everything changed locally since the last watermark.
func syncOnce(ctx context.Context, st *store.Store, client *sync.Client) error {
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Pulling remote rows...\n")
	}

	rows, err := client.Pull(ctx)
	if err != nil {
		return err
	}

	local, err := st.ListRecords()
	if err != nil {
		return err
	}
	seen := make(map[string]bool, len(local))
	for _, r := range local {
		seen[r.ID.String()] = true
	}

	pulled := 0
	for _, row := range rows {
		if seen[row.ID] {
			continue
		}
		rec, err := row.ToRecord()
		if err != nil {
			fmt.Fprintf(os.Stderr, "  Skipping malformed row: %v\n", err)
			continue
		}
		if err := st.InsertRecord(rec); err != nil {
			return err
		}
		pulled++
	}

	watermark, err := st.LastSyncedAt()
	if err != nil {
		return err
	}
	changed, err := st.ChangedSince(watermark)
	if err != nil {
		return err
	}

	outbound := make([]sync.Row, 0, len(changed))
	for _, r := range changed {
		outbound = append(outbound, sync.RowFromRecord(r))
	}
	if err := client.Push(ctx, outbound); err != nil {
		return err
	}

	if err := st.SetLastSyncedAt(time.Now()); err != nil {
		return err
	}

	fmt.Printf("  Pulled %d, pushed %d\n", pulled, len(outbound))
	return nil
}

// enqueueChanges stages locally-changed rows on the queue and advances
// the watermark. Rows that fail to flush stay queued, so advancing here
// does not lose them.
func enqueueChanges(st *store.Store, queue *sync.Queue) error {
	watermark, err := st.LastSyncedAt()
	if err != nil {
		return err
	}
	changed, err := st.ChangedSince(watermark)
	if err != nil {
		return err
	}
	if len(changed) == 0 {
		return nil
	}

	for _, r := range changed {
		queue.Add(sync.RowFromRecord(r))
	}
	return st.SetLastSyncedAt(time.Now())
}
