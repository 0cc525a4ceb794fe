package main

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sells-group/sitegen/internal/model"
	"github.com/sells-group/sitegen/internal/store"
)

var (
	jobsStatus string
	jobsLimit  int
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List recent generation jobs",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		jobs, err := st.ListJobs(ctx, store.JobFilter{
			Status: model.JobStatus(jobsStatus),
			Limit:  jobsLimit,
		})
		if err != nil {
			return err
		}

		if len(jobs) == 0 {
			fmt.Println("no jobs")
			return nil
		}
		for _, job := range jobs {
			completed := "-"
			if job.CompletedAt != nil {
				completed = job.CompletedAt.Format(time.RFC3339)
			}
			fmt.Printf("%-24s %-18s %3d%%  started %s  completed %s\n",
				job.BusinessID, job.Status, job.Progress,
				job.StartedAt.Format(time.RFC3339), completed,
			)
		}
		return nil
	},
}

func init() {
	jobsCmd.Flags().StringVar(&jobsStatus, "status", "", "filter by status")
	jobsCmd.Flags().IntVar(&jobsLimit, "limit", 20, "maximum jobs to list")
	rootCmd.AddCommand(jobsCmd)
}
