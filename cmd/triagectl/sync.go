package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

const syncTimeout = 5 * time.Second

type syncFlags struct {
	queueFile string
	server    string
}

type syncResult struct {
	Synced int
	Failed int
}

func newSyncCmd() *cobra.Command {
	f := &syncFlags{}

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Send queued emergency requests to the triage server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			queue, err := loadQueue(f.queueFile)
			if err != nil {
				return err
			}
			if len(queue) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "nothing to sync")
				return nil
			}

			client := &http.Client{Timeout: syncTimeout}
			remaining, result := syncQueue(client, f.server, queue)
			if err := saveQueue(f.queueFile, remaining); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "synced: %d, failed: %d\n", result.Synced, result.Failed)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.queueFile, "queue", defaultQueueFile, "Path of the offline queue")
	flags.StringVar(&f.server, "server", "http://localhost:8080", "Base url of the triage server")

	return cmd
}

// syncQueue posts every request in order and returns the ones which are
// not accepted by the server
func syncQueue(client *http.Client, server string, queue []queuedEmergency) ([]queuedEmergency, syncResult) {
	var result syncResult
	remaining := []queuedEmergency{}

	endpoint := strings.TrimRight(server, "/") + "/api/dispatch/emergency"
	for _, e := range queue {
		if err := postEmergency(client, endpoint, e); err != nil {
			fmt.Fprintf(os.Stderr, "sync failed: %s\n", err)
			remaining = append(remaining, e)
			result.Failed++
			continue
		}
		result.Synced++
	}

	return remaining, result
}

func postEmergency(client *http.Client, endpoint string, e queuedEmergency) error {
	body, err := json.Marshal(e)
	if err != nil {
		return err
	}

	resp, err := client.Post(endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server responded %s", resp.Status)
	}
	return nil
}
