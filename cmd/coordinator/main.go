package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/cuemby/gridworks/pkg/coordinator"
	"github.com/cuemby/gridworks/pkg/credentials"
	"github.com/cuemby/gridworks/pkg/deploy"
	"github.com/cuemby/gridworks/pkg/ledger"
	"github.com/cuemby/gridworks/pkg/log"
	"github.com/cuemby/gridworks/pkg/registry"
	"github.com/cuemby/gridworks/pkg/scheduler"
	"github.com/cuemby/gridworks/pkg/wakeup"
)

var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "gridworks-coordinator",
	Short:   "Accept job submissions, schedule them onto agents, and track their states",
	Version: Version,
	RunE:    run,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("gridworks-coordinator %s (%s)\n", Version, Commit))

	rootCmd.Flags().String("grpc-addr", ":7770", "address the gRPC service listens on")
	rootCmd.Flags().String("http-addr", ":7771", "address /health, /ready and /metrics listen on")
	rootCmd.Flags().String("credentials-passphrase", "", "passphrase used to derive the credential store's encryption key")
	rootCmd.Flags().Duration("deploy-resolve-timeout", 30*time.Second, "timeout for branch/tag resolution shell-outs")
	rootCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.Flags().Bool("log-json", false, "emit logs as JSON")
}

func run(cmd *cobra.Command, args []string) error {
	logLevel, _ := cmd.Flags().GetString("log-level")
	logJSON, _ := cmd.Flags().GetBool("log-json")
	log.Init(log.Config{Level: log.Level(logLevel), JSONOutput: logJSON})

	passphrase, _ := cmd.Flags().GetString("credentials-passphrase")
	if passphrase == "" {
		passphrase = os.Getenv("GRIDWORKS_CREDENTIALS_PASSPHRASE")
	}
	if passphrase == "" {
		return fmt.Errorf("a credentials passphrase is required (--credentials-passphrase or GRIDWORKS_CREDENTIALS_PASSPHRASE)")
	}

	grpcAddr, _ := cmd.Flags().GetString("grpc-addr")
	httpAddr, _ := cmd.Flags().GetString("http-addr")
	resolveTimeout, _ := cmd.Flags().GetDuration("deploy-resolve-timeout")

	jobs := registry.NewJobRegistry()
	gridTasks := registry.NewGridTaskRegistry()
	l := ledger.New()
	creds, err := credentials.NewStoreFromPassphrase(passphrase)
	if err != nil {
		return fmt.Errorf("initializing credential store: %w", err)
	}
	resolver := deploy.NewResolver(resolveTimeout)
	wake := wakeup.New()
	sched := scheduler.New(jobs, gridTasks, l, wake, nil)
	sched.Start()
	defer sched.Stop()

	srv := coordinator.New(jobs, gridTasks, l, creds, resolver, sched, wake)
	listener := coordinator.NewListener(srv)

	errCh := make(chan error, 2)
	go func() {
		log.Logger.Info().Str("addr", grpcAddr).Msg("gRPC listening")
		errCh <- listener.ServeGRPC(grpcAddr)
	}()
	go func() {
		log.Logger.Info().Str("addr", httpAddr).Msg("health/metrics listening")
		errCh <- listener.ServeHTTP(httpAddr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigCh:
		log.Logger.Info().Msg("shutting down")
	case err := <-errCh:
		log.Logger.Error().Err(err).Msg("server error")
	}

	listener.Stop()
	return nil
}
