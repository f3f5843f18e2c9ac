package cli

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/citymesh/citygraph/pkg/metrics"
	"github.com/citymesh/citygraph/pkg/observability"
	"github.com/citymesh/citygraph/pkg/server"
)

func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the graph over a read-only HTTP API",
		Long: `Load the graph once and serve it over HTTP until interrupted.
Prometheus metrics are exposed at /metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = c.cfg.Server.Addr
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
			m := metrics.New(reg)
			observability.SetBuildHooks(observability.MultiBuildHooks{newLogHooks(c.Logger), m})
			observability.SetHTTPHooks(m)

			ctx := cmd.Context()
			g, err := c.loadGraph(ctx)
			if err != nil {
				return err
			}

			srv := server.New(g, server.Options{
				Bands:        c.cfg.Bands(),
				DefaultDepth: c.cfg.Query.Depth,
				MaxDepth:     c.cfg.Query.MaxDepth,
				Metrics:      m.Handler(),
				Logger:       c.Logger,
			})
			err = srv.ListenAndServe(ctx, addr)
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}
