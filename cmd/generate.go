package main

import (
	"encoding/json"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/sitegen/internal/model"
	"github.com/sells-group/sitegen/internal/pipeline"
)

var (
	generateBusinessID string
	generateURL        string
	generateNotes      string
	generateConfigOnly bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run website generation for one business and wait for the result",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		env, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		job, err := env.Orchestrator.Start(ctx, pipeline.Request{
			BusinessID:     generateBusinessID,
			SourceURL:      generateURL,
			Conversational: generateNotes,
		})
		if err != nil {
			return err
		}

		var out any = job
		if generateConfigOnly && job.Config != nil {
			out = job.Config
		}
		encoded, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return eris.Wrap(err, "encode result")
		}
		fmt.Println(string(encoded))

		if job.Status == model.JobStatusFailed {
			zap.L().Error("generation failed",
				zap.String("business_id", job.BusinessID),
				zap.String("error", job.Error),
			)
			return eris.Errorf("generation failed: %s", job.Error)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&generateBusinessID, "business-id", "", "business identifier (required)")
	generateCmd.Flags().StringVar(&generateURL, "url", "", "source website url (required)")
	generateCmd.Flags().StringVar(&generateNotes, "notes", "", "optional conversational text from the owner")
	generateCmd.Flags().BoolVar(&generateConfigOnly, "config-only", false, "print only the assembled website configuration")
	generateCmd.MarkFlagRequired("business-id")
	generateCmd.MarkFlagRequired("url")
	rootCmd.AddCommand(generateCmd)
}
