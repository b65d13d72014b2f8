package cmd

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"cosmossdk.io/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sebastiangula/asaswap/x/asaswap/keeper"
	"github.com/sebastiangula/asaswap/x/asaswap/simulation"
)

func newSimulateCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate <scenario.yaml>",
		Short: "Execute a scripted batch scenario against the engine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.NewLogger(os.Stderr)

			registry := prometheus.NewRegistry()
			if addr := v.GetString("metrics-addr"); addr != "" {
				startMetricsServer(logger, registry, addr)
			}

			k, kv, err := newKeeper(v, logger, keeper.WithMetrics(keeper.NewMetrics(registry)))
			if err != nil {
				return err
			}
			defer kv.Close()

			scenario, err := simulation.Load(args[0])
			if err != nil {
				return err
			}
			if err := scenario.Run(k, logger); err != nil {
				return err
			}
			logger.Info("scenario complete", "batches", len(scenario.Batches))
			return nil
		},
	}
	cmd.Flags().String("metrics-addr", "", "prometheus listen address, e.g. :2112 (disabled when empty)")
	return cmd
}

func startMetricsServer(logger log.Logger, registry *prometheus.Registry, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics server stopped", "err", err)
		}
	}()
	logger.Info("metrics server started", "addr", fmt.Sprintf("%s/metrics", addr))
}
