package logs

import (
	"fmt"
	"log/slog"

	"github.com/avikram/kubeportal/internal/config"
	"github.com/avikram/kubeportal/internal/kube"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewLogsCmd creates the logs command
func NewLogsCmd() *cobra.Command {
	var (
		namespace string
		container string
		tailLines int64
	)

	cmd := &cobra.Command{
		Use:   "logs POD",
		Short: "Print the logs of a pod",
		Long: `Print the tail of a pod's logs from the active cluster.

When the pod has more than one container, pick one with -c. Fetch
failures are reported in the output instead of aborting, so a crashed
pod next to a missing one still shows what it can.`,
		Example: `  # Tail the last 100 lines of a pod
  kubeportal logs web-6d4b75cb6d-xk2tp

  # Logs of a specific container
  kubeportal logs web-6d4b75cb6d-xk2tp -c istio-proxy

  # More history from another namespace
  kubeportal logs ingest-0 -n pipelines --tail 500`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.Default()

			// The portal config can raise the default tail size; an
			// explicit --tail always wins.
			if !cmd.Flags().Changed("tail") {
				if cfg, err := config.NewManager(viper.GetString("config")).Load(); err == nil && cfg.TailLines > 0 {
					tailLines = int64(cfg.TailLines)
				}
			}

			loader := config.NewKubeconfigLoader(viper.GetString("kubeconfig"))
			mgr := kube.NewManager(loader, logger)
			if name := viper.GetString("context"); name != "" {
				mgr.SetContext(name)
			}
			catalog := kube.NewCatalog(mgr.Session())

			text := catalog.Logs(cmd.Context(), namespace, args[0], container, tailLines)
			fmt.Fprint(cmd.OutOrStdout(), text)
			if text != "" && text[len(text)-1] != '\n' {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&namespace, "namespace", "n", "default", "namespace of the pod")
	cmd.Flags().StringVarP(&container, "container", "c", "", "container to read logs from")
	cmd.Flags().Int64Var(&tailLines, "tail", 100, "number of log lines to show from the end")

	return cmd
}
