package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mixcut/internal/jobs"
	"mixcut/internal/logging"
	"mixcut/internal/services"
	"mixcut/internal/source"
)

func newSplitCommand(ctx *commandContext) *cobra.Command {
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "split <descriptor.json>",
		Short: "Split a local mix into individually tagged tracks",
		Long: `Split reads a JSON job descriptor pointing at a master audio file, its
cover art, and a chapter list, then produces one tagged MP3 per chapter in the
output directory. Already-produced titles are skipped, so rerunning the same
descriptor is a no-op.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.buildLogger(cfg)

			outputDir := strings.TrimSpace(outputFlag)
			if outputDir == "" {
				outputDir = cfg.Paths.OutputDir
			}

			store, err := jobs.Open(cfg)
			if err != nil {
				return fmt.Errorf("open job store: %w", err)
			}
			defer store.Close()

			job, err := store.Create(cmd.Context(), jobs.Request{
				SourceIdentifier:  args[0],
				DestinationFolder: outputDir,
			})
			if err != nil {
				return fmt.Errorf("record job: %w", err)
			}
			runCtx := services.WithJobID(cmd.Context(), job.ID)
			logger = logging.WithContext(runCtx, logger)
			if err := store.MarkProcessing(runCtx, job.ID); err != nil {
				return fmt.Errorf("update job: %w", err)
			}

			s, err := ctx.buildSplitter(cfg, logger)
			if err != nil {
				return err
			}
			produced, err := s.Process(runCtx, source.LocalSource{}, args[0], cfg.Paths.WorkDir, outputDir)
			if err != nil {
				if markErr := store.MarkFailed(runCtx, job.ID, err.Error()); markErr != nil {
					logger.Warn("failed to record job failure", "error", markErr)
				}
				return err
			}
			if err := store.MarkCompleted(runCtx, job.ID, produced); err != nil {
				return fmt.Errorf("finish job: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(produced) == 0 {
				fmt.Fprintln(out, "Nothing to do; all tracks already produced")
				return nil
			}
			fmt.Fprintf(out, "Produced %d track(s):\n", len(produced))
			for _, path := range produced {
				fmt.Fprintf(out, "  %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Destination directory (defaults to configured output_dir)")
	return cmd
}
