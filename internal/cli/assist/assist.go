package assist

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/avikram/kubeportal/internal/assist"
	"github.com/avikram/kubeportal/internal/config"
	"github.com/avikram/kubeportal/internal/kube"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewAssistCmd creates the assist command
func NewAssistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assist PROMPT...",
		Short: "Natural-language shortcut for common operations",
		Long: `Route a natural-language request to a cluster operation.

Restart requests ("restart deployment web namespace: apps") are parsed
and executed directly. Anything else is handed to the configured chat
backend; without one a not-configured notice is returned.`,
		Example: `  # Restart a deployment by asking for it
  kubeportal assist restart deployment web namespace: apps

  # Free-form questions need a configured backend
  kubeportal assist why is my pod crash looping`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssist(cmd, strings.Join(args, " "))
		},
	}

	return cmd
}

func runAssist(cmd *cobra.Command, prompt string) error {
	logger := slog.Default()

	contextName := viper.GetString("context")
	kubeconfigPath := viper.GetString("kubeconfig")

	defaultNamespace := "default"
	cfgManager := config.NewManager(viper.GetString("config"))
	if cfg, err := cfgManager.Load(); err == nil {
		if cfg.DefaultNamespace != "" {
			defaultNamespace = cfg.DefaultNamespace
		}
		if cfgManager.AssistEnabled() {
			logger.Warn("assist endpoint configured but no chat backend is bundled, only intent routing is available",
				"endpoint", cfg.Assist.Endpoint)
		}
	}

	restart := func(ctx context.Context, name, namespace string) string {
		return kube.RestartDeployment(ctx, name, namespace, contextName, kubeconfigPath)
	}

	assistant := assist.NewAssistant(restart, nil, logger)

	reply, err := assistant.Handle(cmd.Context(), prompt, defaultNamespace)
	if err != nil {
		return fmt.Errorf("assist failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), reply)
	return nil
}
