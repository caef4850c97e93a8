package manifest

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/avikram/kubeportal/internal/config"
	"github.com/avikram/kubeportal/internal/kube"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewManifestCmd creates the manifest command
func NewManifestCmd() *cobra.Command {
	var namespace string

	cmd := &cobra.Command{
		Use:   "manifest KIND NAME",
		Short: "Print a live object as an editable manifest",
		Long: `Print the live state of an object as YAML with the status subtree
stripped, so the output can be edited and fed back to apply.

Supported kinds: ` + kindNames() + `.`,
		Example: `  # Print a deployment manifest
  kubeportal manifest Deployment web -n apps

  # Round-trip an edit
  kubeportal manifest Service web > svc.yaml
  vi svc.yaml
  kubeportal apply -f svc.yaml`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := kube.ParseKind(args[0])
			if err != nil {
				return err
			}

			logger := slog.Default()

			loader := config.NewKubeconfigLoader(viper.GetString("kubeconfig"))
			mgr := kube.NewManager(loader, logger)
			if name := viper.GetString("context"); name != "" {
				mgr.SetContext(name)
			}
			catalog := kube.NewCatalog(mgr.Session())

			fmt.Fprint(cmd.OutOrStdout(), catalog.ManifestYAML(cmd.Context(), kind, namespace, args[1]))
			return nil
		},
	}

	cmd.Flags().StringVarP(&namespace, "namespace", "n", "default", "namespace of the object")

	return cmd
}

func kindNames() string {
	kinds := kube.SupportedKinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
