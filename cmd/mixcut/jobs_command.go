package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"mixcut/internal/jobs"
)

func newJobsCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "List recorded split jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := jobs.Open(cfg)
			if err != nil {
				return fmt.Errorf("open job store: %w", err)
			}
			defer store.Close()

			list, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(list) == 0 {
				fmt.Fprintln(out, "No jobs recorded")
				return nil
			}
			if isTerminal(out) {
				fmt.Fprintln(out, renderJobsTable(list))
			} else {
				printJobsPlain(out, list)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of jobs to show (0 for all)")
	return cmd
}

func renderJobsTable(list []*jobs.Job) string {
	headers := []string{"ID", "Source", "Status", "Files", "Updated"}
	rows := make([][]string, 0, len(list))
	for _, job := range list {
		rows = append(rows, []string{
			shortID(job.ID),
			job.SourceIdentifier,
			string(job.Status),
			strconv.Itoa(len(job.ProducedFiles)),
			job.UpdatedAt.Local().Format(time.DateTime),
		})
	}
	aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft}
	return renderTable(headers, rows, aligns)
}

func printJobsPlain(out io.Writer, list []*jobs.Job) {
	for _, job := range list {
		fmt.Fprintf(out, "%s\t%s\t%s\t%d\t%s\n",
			job.ID,
			job.SourceIdentifier,
			job.Status,
			len(job.ProducedFiles),
			job.UpdatedAt.UTC().Format(time.RFC3339))
	}
}

func shortID(id string) string {
	if idx := strings.IndexByte(id, '-'); idx > 0 {
		return id[:idx]
	}
	return id
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
