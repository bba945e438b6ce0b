package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/dyluth/tailsum/internal/api"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd(g *globalOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver over HTTP",
		Long: `Serve the solver as a JSON API until interrupted.

Endpoints:
  POST /v1/solve      {"target": 49, "req3rd": "hit", "req2nd": "hit", "reqLast": "hit"}
  GET  /v1/alphabet   alphabet values and hit group
  GET  /health        liveness
  GET  /metrics       Prometheus metrics

The listen address defaults to server.addr from the configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrinter(cmd)

			cfg, err := g.loadConfig(cmd, p)
			if err != nil {
				return err
			}
			solver, err := g.solverFor(cfg)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("addr") {
				addr = cfg.Server.Addr
			}

			configureGin(g.verbose)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			g.logger.Info("starting tailsum server",
				zap.String("addr", addr),
				zap.Ints("alphabet", solver.Alphabet().Values()))

			return api.NewServer(solver, g.logger).Run(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides server.addr)")
	return cmd
}

// configureGin silences gin's route and warning output unless --verbose is set
func configureGin(verbose bool) {
	if verbose {
		gin.SetMode(gin.DebugMode)
		return
	}
	gin.SetMode(gin.ReleaseMode)
}
