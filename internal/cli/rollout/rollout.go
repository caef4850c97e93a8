package rollout

import (
	"fmt"
	"log/slog"

	"github.com/avikram/kubeportal/internal/kube"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRolloutCmd creates the rollout parent command
func NewRolloutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rollout",
		Short: "Manage workload rollouts",
		Example: `  # Restart a deployment
  kubeportal rollout restart deployment web -n apps`,
	}

	cmd.AddCommand(newRestartCmd())

	return cmd
}

func newRestartCmd() *cobra.Command {
	var namespace string

	cmd := &cobra.Command{
		Use:   "restart deployment NAME",
		Short: "Restart a deployment",
		Long: `Trigger a rolling restart of a deployment.

The restart patches the pod template with a restart annotation, the
same mechanism kubectl rollout restart uses, so pods are replaced
under the deployment's rolling update policy.`,
		Example: `  # Restart the web deployment
  kubeportal rollout restart deployment web

  # Restart a deployment in another namespace
  kubeportal rollout restart deployment checkout-api -n shop`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, name := args[0], args[1]
			if kind != "deployment" && kind != "deploy" {
				return fmt.Errorf("unsupported rollout kind %q, only deployments can be restarted", kind)
			}

			logger := slog.Default()
			logger.Debug("restarting deployment", "name", name, "namespace", namespace)

			message := kube.RestartDeployment(
				cmd.Context(),
				name,
				namespace,
				viper.GetString("context"),
				viper.GetString("kubeconfig"),
			)

			fmt.Fprintln(cmd.OutOrStdout(), message)
			return nil
		},
	}

	cmd.Flags().StringVarP(&namespace, "namespace", "n", "default", "namespace of the deployment")

	return cmd
}
