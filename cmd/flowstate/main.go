package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/viant/flowstate"
	"github.com/viant/flowstate/service/gateway"
	"github.com/viant/flowstate/tracing"
)

// set at build time with -ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
)

var (
	configURL string
	addr      string
)

var rootCmd = &cobra.Command{
	Use:   "flowstate",
	Short: "Workflow state machine service",
	Long: `flowstate runs a workflow engine that registers state machine
definitions, starts instances and executes actions against them over
an HTTP API.`,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		config, err := flowstate.LoadConfig(ctx, configURL)
		if err != nil {
			return fmt.Errorf("failed to load config %s: %w", configURL, err)
		}
		if addr != "" {
			config.Gateway.Addr = addr
		}
		if config.Tracing.Enabled {
			if err := tracing.Init("flowstate", Version, config.Tracing.OutputFile); err != nil {
				return fmt.Errorf("failed to init tracing: %w", err)
			}
		}

		options := []flowstate.Option{
			flowstate.WithEventVendor(config.Events.Vendor),
		}
		if config.Definitions.BaseURL != "" {
			options = append(options, flowstate.WithMetaBaseURL(config.Definitions.BaseURL))
		}
		srv := flowstate.New(options...)
		runtime := srv.Runtime()

		for _, URL := range config.Definitions.Preload {
			def, err := runtime.LoadDefinition(ctx, URL)
			if err != nil {
				return fmt.Errorf("failed to load definition %s: %w", URL, err)
			}
			log.Printf("loaded definition %s (%s)", def.ID, def.Name)
		}

		server := gateway.New(runtime.Engine(), config.Gateway, Version)
		errors := make(chan error, 1)
		go func() {
			errors <- server.Start()
		}()
		log.Printf("listening on %s", config.Gateway.Addr)

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		select {
		case err := <-errors:
			return err
		case sig := <-quit:
			log.Printf("received %s, shutting down", sig)
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("flowstate %s (%s)\n", Version, GitCommit)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&configURL, "config", "c", "", "configuration file URL")
	serveCmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address, overrides config")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
