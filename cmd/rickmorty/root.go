package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/kerbaras/rickmorty/pkg/app"
	"github.com/kerbaras/rickmorty/pkg/config"
	"github.com/spf13/cobra"
)

var (
	configPath  string
	endpoint    string
	lang        string
	logFile     string
	metricsAddr string

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "rickmorty",
	Short: "Browse Rick and Morty characters",
	Long:  "Browse, filter and sort Rick and Morty characters in a translated TUI or from the command line",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if flags.Changed("endpoint") {
			loaded.Endpoint = endpoint
		}
		if flags.Changed("lang") {
			loaded.Language = lang
		}
		if flags.Changed("log-file") {
			loaded.Log.File = logFile
		}
		if flags.Changed("metrics-addr") {
			loaded.MetricsAddr = metricsAddr
		}
		cfg = loaded
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		// Launch TUI by default
		d, err := newDeps(cmd.Context(), cfg)
		cobra.CheckErr(err)
		defer d.Close()

		a := app.NewApp(d.controller, d.dict, d.lang, d.logger)
		if err := a.Run(cmd.Context()); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "path to a YAML config file")
	flags.StringVar(&endpoint, "endpoint", "", "GraphQL endpoint")
	flags.StringVar(&lang, "lang", "", "display language (en, de)")
	flags.StringVar(&logFile, "log-file", "", "log file path")
	flags.StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")

	// Add all subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(speciesCmd)
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
