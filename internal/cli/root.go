package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/avikram/kubeportal/internal/cli/apply"
	"github.com/avikram/kubeportal/internal/cli/assist"
	"github.com/avikram/kubeportal/internal/cli/contexts"
	"github.com/avikram/kubeportal/internal/cli/exec"
	"github.com/avikram/kubeportal/internal/cli/get"
	"github.com/avikram/kubeportal/internal/cli/logs"
	"github.com/avikram/kubeportal/internal/cli/manifest"
	"github.com/avikram/kubeportal/internal/cli/overview"
	"github.com/avikram/kubeportal/internal/cli/rollout"
	"github.com/avikram/kubeportal/internal/cli/top"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
)

// Execute runs the root command with the provided context
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// newRootCmd creates the root command
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kubeportal",
		Short: "Kubeportal - Kubernetes operator console",
		Long: `Kubeportal is an operator console for a single Kubernetes cluster at a time.
It reads workloads, events, logs, manifests and live metrics through one
kubeconfig context, applies manifests and restarts deployments, and keeps
working in a degraded read-only mode when no cluster is reachable.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd)
		},
	}

	// Define persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.kubeportal.yaml)")
	rootCmd.PersistentFlags().String("kubeconfig", "", "path to kubeconfig file (default is $HOME/.kube/config)")
	rootCmd.PersistentFlags().String("context", "", "kubeconfig context to use (default is the current context)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "output format (json, yaml, table)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output with debug logging")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	rootCmd.PersistentFlags().Duration("timeout", 30*time.Second, "timeout for operations")

	// Bind flags to viper
	viper.BindPFlag("kubeconfig", rootCmd.PersistentFlags().Lookup("kubeconfig"))
	viper.BindPFlag("context", rootCmd.PersistentFlags().Lookup("context"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("no-color", rootCmd.PersistentFlags().Lookup("no-color"))
	viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))

	// Add subcommands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(contexts.NewContextsCmd())
	rootCmd.AddCommand(get.NewGetCmd())
	rootCmd.AddCommand(apply.NewApplyCmd())
	rootCmd.AddCommand(rollout.NewRolloutCmd())
	rootCmd.AddCommand(logs.NewLogsCmd())
	rootCmd.AddCommand(manifest.NewManifestCmd())
	rootCmd.AddCommand(top.NewTopCmd())
	rootCmd.AddCommand(overview.NewOverviewCmd())
	rootCmd.AddCommand(assist.NewAssistCmd())
	rootCmd.AddCommand(exec.NewExecCmd())

	return rootCmd
}

// initConfig initializes configuration and logging
func initConfig(cmd *cobra.Command) error {
	// Initialize viper configuration
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for config in home directory
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".kubeportal")
	}

	// Read environment variables
	viper.SetEnvPrefix("KUBEPORTAL")
	viper.AutomaticEnv()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Setup structured logging
	setupLogging(cmd)

	return nil
}

// setupLogging configures structured logging with slog
func setupLogging(cmd *cobra.Command) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	noColor, _ := cmd.Flags().GetBool("no-color")

	// Set log level based on verbose flag
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	var handler slog.Handler
	if noColor {
		// Use JSON handler for no-color mode
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		// Use text handler for colored output
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	// Set default logger
	logger := slog.New(handler)
	slog.SetDefault(logger)

	if verbose {
		slog.Debug("verbose logging enabled")
		if viper.ConfigFileUsed() != "" {
			slog.Debug("loaded configuration", "file", viper.ConfigFileUsed())
		}
	}
}
