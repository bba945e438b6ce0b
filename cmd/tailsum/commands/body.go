package commands

import (
	"encoding/json"
	"fmt"

	"github.com/dyluth/tailsum/internal/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type bodyOutput struct {
	Target int   `json:"target"`
	Body   []int `json:"body"`
	Found  bool  `json:"found"`
}

func newBodyCmd(g *globalOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "body TARGET",
		Short: "Find the shortest unconstrained body that sums to TARGET",
		Long: `Run only the breadth-first body search, with no tail.

Useful for checking what the search window and depth can reach.

Examples:
  tailsum body 100
  tailsum body -- -20
  tailsum body 416 -o json`,
		Args: cobra.ExactArgs(1),
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

			target, err := parseTarget(p, args[0])
			if err != nil {
				return err
			}

			solver, err := g.newSolver(cmd, p)
			if err != nil {
				return err
			}

			body, found := solver.ShortestBody(target)
			g.logger.Debug("body search finished",
				zap.Int("target", target),
				zap.Bool("found", found),
				zap.Int("length", len(body)))

			if format == report.OutputFormatJSON {
				if body == nil {
					body = []int{}
				}
				data, err := json.MarshalIndent(bodyOutput{Target: target, Body: body, Found: found}, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal body to JSON: %w", err)
				}
				_, err = fmt.Fprintln(p.Out(), string(data))
				return err
			}

			report.FormatBody(p, solver.Alphabet(), target, body, found)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", string(report.OutputFormatDefault), "Output format (default, json)")
	return cmd
}
