package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/foodcourier/marketplace/cmd/marketplace/cmd/cmdutil"
	"github.com/foodcourier/marketplace/internal/api"
	"github.com/foodcourier/marketplace/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

var demo cmdutil.DemoSeed

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := cmdutil.MustConfig(cmd.Context())
		log := logger.Get()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		stores, err := cmdutil.OpenStores(ctx, cfg, log)
		if err != nil {
			return fmt.Errorf("failed to open stores: %w", err)
		}
		defer func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			stores.Close(closeCtx)
		}()

		svc, err := cmdutil.NewServices(stores, cfg, log)
		if err != nil {
			return err
		}

		if err := cmdutil.SeedDemo(ctx, cfg, svc, demo, log); err != nil {
			return err
		}

		e := api.NewRouter(api.Dependencies{
			Authenticator: svc.Authenticator,
			Issuer:        svc.Issuer,
			Places:        svc.Places,
			Orders:        svc.Orders,
			Mongo:         stores.Mongo,
			Redis:         stores.Redis,
		}, logger.Component("http"))

		serverErrors := make(chan error, 1)
		go func() {
			log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
			serverErrors <- e.Start(":" + cfg.Port)
		}()

		select {
		case err := <-serverErrors:
			if !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		case <-ctx.Done():
			log.Info().Msg("shutting down")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		log.Info().Msg("server stopped")
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&demo.Customer, "demo-customer", "", "Create login:password at startup (memory driver only)")
	serveCmd.Flags().StringVar(&demo.CatalogPath, "demo-catalog", "", "Load merchants from a YAML catalog at startup (memory driver only)")
	rootCmd.AddCommand(serveCmd)
}
