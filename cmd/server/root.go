package main

import (
	"fmt"
	"os"

	"github.com/h4ks-com/farmstand/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	cfg     *config.Config
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "farmstand",
	Short: "Farm Stand - a marketplace of farms and their products",
	Long: `Farm Stand lists farms and the products they sell.

Run 'farmstand serve' to start the web server, or 'farmstand seed' to load
farms and products from a YAML file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		logger, err = newLogger(cfg.LogLevel, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func newLogger(level string, verbose bool) (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	zapConfig.Level = zap.NewAtomicLevelAt(lvl)

	return zapConfig.Build()
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
}
