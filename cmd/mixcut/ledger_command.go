package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mixcut/internal/ledger"
)

func newLedgerCommand(ctx *commandContext) *cobra.Command {
	ledgerCmd := &cobra.Command{
		Use:   "ledger",
		Short: "Processed-title ledger utilities",
	}
	ledgerCmd.AddCommand(newLedgerRepairCommand(ctx))
	return ledgerCmd
}

func newLedgerRepairCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "repair [output-dir]",
		Short: "Rebuild the ledger from the files actually present",
		Long: `Repair rewrites the processed-title record of an output directory from the
audio files that actually exist there. Use it after a failed run left claims
for tracks that were never produced.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			dir := cfg.Paths.OutputDir
			if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
				dir = args[0]
			}

			titles, err := ledger.NewRepository(cfg.Split.AudioExtension).Repair(dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Ledger for %s now records %d title(s)\n", dir, len(titles))
			return nil
		},
	}
}
