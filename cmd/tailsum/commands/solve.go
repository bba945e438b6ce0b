package commands

import (
	"fmt"
	"strconv"

	"github.com/dyluth/tailsum/internal/printer"
	"github.com/dyluth/tailsum/internal/report"
	"github.com/dyluth/tailsum/pkg/sequence"
	"github.com/spf13/cobra"
)

// demoTarget is solved when no TARGET is given
const demoTarget = 49

type solveOptions struct {
	third  sequence.Constraint
	second sequence.Constraint
	last   sequence.Constraint
	output string
}

func newSolveCmd(g *globalOptions) *cobra.Command {
	o := &solveOptions{}

	cmd := &cobra.Command{
		Use:   "solve [TARGET]",
		Short: "Find the shortest sequence that sums to TARGET",
		Long: `Find the shortest sequence of alphabet values that sums to TARGET.

Each tail position accepts a constraint:
  any   any alphabet value (default)
  hit   a value from the hit group
  N     exactly the integer N

Without TARGET, solves the demo query: 49 with every unset tail position
constrained to the hit group.

Examples:
  # Default colored report
  tailsum solve 49 --last hit

  # Exact values
  tailsum solve 20 --second 7

  # Negative targets follow --
  tailsum solve --third hit -- -20

  # Machine-readable output
  tailsum solve 49 --last hit -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, g, o, args)
		},
	}

	cmd.Flags().Var(&o.third, "third", "Constraint for the third-last element (any, hit, or an integer)")
	cmd.Flags().Var(&o.second, "second", "Constraint for the second-last element (any, hit, or an integer)")
	cmd.Flags().Var(&o.last, "last", "Constraint for the last element (any, hit, or an integer)")
	cmd.Flags().StringVarP(&o.output, "output", "o", string(report.OutputFormatDefault), "Output format (default, json, jsonl)")
	return cmd
}

func runSolve(cmd *cobra.Command, g *globalOptions, o *solveOptions, args []string) error {
	p := newPrinter(cmd)

	format, err := report.ParseOutputFormat(o.output)
	if err != nil {
		return p.Error(
			"invalid output format",
			fmt.Sprintf("Unknown format: %s", o.output),
			[]string{"Valid formats: default, json, jsonl"},
		)
	}

	tail := sequence.Tail{ThirdLast: o.third, SecondLast: o.second, Last: o.last}
	target := demoTarget
	if len(args) == 0 {
		applyDemoTail(cmd, &tail)
	} else {
		target, err = parseTarget(p, args[0])
		if err != nil {
			return err
		}
	}

	solver, err := g.newSolver(cmd, p)
	if err != nil {
		return err
	}

	res := solver.Solve(target, tail)
	q := report.Query{Target: target, Tail: tail}

	switch format {
	case report.OutputFormatJSON:
		return report.FormatJSON(p.Out(), res)
	case report.OutputFormatJSONL:
		return report.FormatJSONL(p.Out(), q, res)
	default:
		return report.FormatText(p, solver.Alphabet(), solver.Bounds(), q, res)
	}
}

// applyDemoTail sets every tail position the user did not set to hit
func applyDemoTail(cmd *cobra.Command, tail *sequence.Tail) {
	if !cmd.Flags().Changed("third") {
		tail.ThirdLast = sequence.Hit()
	}
	if !cmd.Flags().Changed("second") {
		tail.SecondLast = sequence.Hit()
	}
	if !cmd.Flags().Changed("last") {
		tail.Last = sequence.Hit()
	}
}

func parseTarget(p *printer.Printer, arg string) (int, error) {
	target, err := strconv.Atoi(arg)
	if err != nil {
		return 0, p.Error(
			"invalid target",
			fmt.Sprintf("TARGET must be an integer, got %q", arg),
			[]string{
				"Pass an integer target:\n  tailsum solve 49",
				"Put -- before negative targets:\n  tailsum solve -- -20",
			},
		)
	}
	return target, nil
}
