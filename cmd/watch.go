package main

import (
	"encoding/json"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/sitegen/internal/model"
	"github.com/sells-group/sitegen/internal/poll"
)

var (
	watchBusinessID string
	watchBaseURL    string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Poll a running generation job until it finishes",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		poller := &poll.Poller{
			Fetcher:  &poll.HTTPFetcher{BaseURL: watchBaseURL},
			Interval: time.Duration(cfg.Poll.IntervalSecs) * time.Second,
			Budget:   cfg.Poll.Budget,
			OnUpdate: func(job *model.GenerationJob) {
				fmt.Printf("[%3d%%] %-20s %s\n", job.Progress, job.Step, job.Message)
			},
		}

		job, err := poller.Wait(ctx, watchBusinessID)
		if err != nil {
			return err
		}

		encoded, err := json.MarshalIndent(job, "", "  ")
		if err != nil {
			return eris.Wrap(err, "encode result")
		}
		fmt.Println(string(encoded))

		if job.Status == model.JobStatusFailed {
			return eris.Errorf("generation failed: %s", job.Error)
		}
		return nil
	},
}

func init() {
	watchCmd.Flags().StringVar(&watchBusinessID, "business-id", "", "business identifier (required)")
	watchCmd.Flags().StringVar(&watchBaseURL, "base-url", "http://localhost:8080", "API server base url")
	watchCmd.MarkFlagRequired("business-id")
	rootCmd.AddCommand(watchCmd)
}
