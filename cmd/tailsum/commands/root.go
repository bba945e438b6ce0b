package commands

import (
	"fmt"

	"github.com/dyluth/tailsum/internal/config"
	"github.com/dyluth/tailsum/internal/logging"
	"github.com/dyluth/tailsum/internal/printer"
	"github.com/dyluth/tailsum/pkg/sequence"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// globalOptions holds persistent flags and the state derived from them
type globalOptions struct {
	configPath string
	verbose    bool
	noColor    bool

	logger *zap.Logger
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	g := &globalOptions{logger: logging.Nop()}

	root := &cobra.Command{
		Use:   "tailsum",
		Short: "tailsum - shortest constrained sum sequences",
		Long: `tailsum finds the shortest sequence of values from a fixed alphabet that
sums to a target, where each of the last three elements (the tail) can be
constrained to any value, to the hit group, or to one exact value.

The body of the sequence is found with a breadth-first search over partial
sums, so the reported sequence is always of minimum length within the
configured search window and depth.`,
		// Prevent silent success when unknown flags are passed to root command
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if g.noColor {
				printer.DisableColor()
			}
			logger, err := logging.New(g.verbose)
			if err != nil {
				return err
			}
			g.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = g.logger.Sync()
		},
		// Enable strict flag parsing - unknown flags will cause an error
		FParseErrWhitelist: cobra.FParseErrWhitelist{},
		// Errors are printed by the printer package with color formatting
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.PersistentFlags().StringVarP(&g.configPath, "config", "c", config.DefaultPath, "Path to configuration file (built-in defaults if the default path is absent)")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "Enable debug logging on stderr")
	root.PersistentFlags().BoolVar(&g.noColor, "no-color", false, "Disable colored output")

	root.AddCommand(
		newSolveCmd(g),
		newBodyCmd(g),
		newAlphabetCmd(g),
		newServeCmd(g),
		newInitCmd(g),
	)
	return root
}

// Execute runs the root command. This is called by main.main().
// Errors not already reported by a command (flag and argument errors
// from cobra) are printed here.
func Execute() error {
	return execute(rootCmd)
}

func execute(root *cobra.Command) error {
	cmd, err := root.ExecuteC()
	if err != nil && !printer.IsReported(err) {
		if cmd == nil {
			cmd = root
		}
		newPrinter(cmd).Error(err.Error(), "", []string{
			fmt.Sprintf("Run '%s --help' for usage.", cmd.CommandPath()),
		})
	}
	return err
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

func newPrinter(cmd *cobra.Command) *printer.Printer {
	return printer.New(cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// loadConfig reads --config. An explicit path must exist; the default path
// falls back to built-in defaults.
func (g *globalOptions) loadConfig(cmd *cobra.Command, p *printer.Printer) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cmd.Flags().Changed("config") {
		cfg, err = config.Load(g.configPath)
	} else {
		cfg, _, err = config.LoadOrDefault(g.configPath)
	}
	if err != nil {
		return nil, p.ErrorWithContext(
			"invalid configuration",
			err.Error(),
			map[string]string{"Config": g.configPath},
			[]string{
				fmt.Sprintf("Fix the file, or regenerate it:\n  tailsum init --force --config %s", g.configPath),
			},
		)
	}

	for _, warning := range cfg.Warnings() {
		g.logger.Warn("configuration may limit search", zap.String("config", g.configPath), zap.String("warning", warning))
	}
	return cfg, nil
}

// newSolver loads the configuration and builds a solver from it
func (g *globalOptions) newSolver(cmd *cobra.Command, p *printer.Printer) (*sequence.Solver, error) {
	cfg, err := g.loadConfig(cmd, p)
	if err != nil {
		return nil, err
	}
	return g.solverFor(cfg)
}

func (g *globalOptions) solverFor(cfg *config.Config) (*sequence.Solver, error) {
	alphabet, err := cfg.BuildAlphabet()
	if err != nil {
		return nil, fmt.Errorf("failed to build alphabet: %w", err)
	}

	solver, err := sequence.NewSolver(alphabet,
		sequence.WithBounds(cfg.Bounds()),
		sequence.WithLogger(g.logger))
	if err != nil {
		return nil, err
	}
	return solver, nil
}
