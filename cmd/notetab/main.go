package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/sqweek/dialog"

	"notetab/internal/app"
	"notetab/internal/config"
	"notetab/internal/logging"
)

var (
	configPath string
	envFile    string
	language   string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:           "notetab",
	Short:         "A board of sticky notes for the new tab",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(config.LoadOptions{Path: configPath, EnvFile: envFile})
		if err != nil {
			return err
		}
		if language != "" {
			cfg.Language = language
		}
		if verbose {
			cfg.LogLevel = "debug"
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		log, err := logging.New(cfg.LogLevel, cfg.Environment)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		application, err := app.New(cfg, log)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return application.Run(ctx)
	},
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.Flags().StringVar(&envFile, "env-file", "", "dotenv file read before the environment (default: ./.env when present)")
	rootCmd.Flags().StringVar(&language, "lang", "", "interface language for this session (en, fa)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "notetab failed: %v\n", err)
		dialog.Message("%v", err).Title("notetab").Error()
		os.Exit(1)
	}
}
