package commands

import (
	"encoding/json"
	"fmt"

	"github.com/dyluth/tailsum/internal/report"
	"github.com/dyluth/tailsum/pkg/sequence"
	"github.com/spf13/cobra"
)

type alphabetOutput struct {
	Numbers []int           `json:"numbers"`
	Hits    []int           `json:"hits"`
	Bounds  sequence.Bounds `json:"bounds"`
}

func newAlphabetCmd(g *globalOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "alphabet",
		Short: "Show the alphabet, hit group and search bounds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrinter(cmd)

			format, err := report.ParseOutputFormat(output)
			if err != nil || format == report.OutputFormatJSONL {
				return p.Error(
					"invalid output format",
					fmt.Sprintf("Unknown format: %s", output),
					[]string{"Valid formats: default, json"},
				)
			}

			solver, err := g.newSolver(cmd, p)
			if err != nil {
				return err
			}

			if format == report.OutputFormatJSON {
				a := solver.Alphabet()
				data, err := json.MarshalIndent(alphabetOutput{
					Numbers: a.Values(),
					Hits:    a.HitGroup(),
					Bounds:  solver.Bounds(),
				}, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal alphabet to JSON: %w", err)
				}
				_, err = fmt.Fprintln(p.Out(), string(data))
				return err
			}

			report.FormatAlphabet(p, solver.Alphabet(), solver.Bounds())
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", string(report.OutputFormatDefault), "Output format (default, json)")
	return cmd
}
