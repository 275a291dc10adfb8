package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mixcut/internal/deps"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check availability of external tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			missing := false
			for _, status := range deps.CheckBinaries(deps.Requirements(cfg.Split.FFmpegBinary)) {
				if status.Available {
					fmt.Fprintf(out, "ok       %s (%s)\n", status.Name, status.Command)
					continue
				}
				if !status.Optional {
					missing = true
				}
				fmt.Fprintf(out, "missing  %s: %s\n", status.Name, status.Detail)
			}
			if missing {
				return fmt.Errorf("required dependencies missing")
			}
			return nil
		},
	}
}
