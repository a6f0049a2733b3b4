// Package stats implements "domvm stats": decode a raw change-list word
// stream without executing it, and report how many times each opcode
// appears, as CSV.
package stats

import (
	"encoding/csv"
	"errors"
	"os"

	"github.com/jszwec/csvutil"
	"github.com/spf13/cobra"

	"github.com/pgavlin/domvm/changelist"
	"github.com/pgavlin/domvm/memory"
)

// Command returns the "stats" cobra command.
func Command() *cobra.Command {
	command := &cobra.Command{
		Use:   "stats [path to change-list file]",
		Short: "Report per-opcode counts for a recorded change-list, without executing it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("expected exactly one argument")
			}

			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			if len(raw)%4 != 0 {
				return errors.New("stats: file is not a whole number of 32-bit words")
			}

			view := memory.NewView(raw)
			counts, err := changelist.CountOpcodes(view, 0, len(raw))
			if err != nil {
				return err
			}

			type row struct {
				Opcode string `csv:"opcode"`
				Count  int    `csv:"count"`
			}

			csvWriter := csv.NewWriter(cmd.OutOrStdout())
			defer csvWriter.Flush()

			encoder := csvutil.NewEncoder(csvWriter)
			for _, name := range changelist.OpcodeNames() {
				if err := encoder.Encode(&row{Opcode: name, Count: counts[name]}); err != nil {
					return err
				}
			}
			return nil
		},
	}

	return command
}
