package get

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/avikram/kubeportal/internal/output"
	"github.com/avikram/kubeportal/internal/util"
	"github.com/spf13/cobra"
	corev1 "k8s.io/api/core/v1"
)

// SecretInfo represents secret metadata for display. Values never leave
// the cluster through this listing, only key counts.
type SecretInfo struct {
	Namespace string `json:"namespace"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Data      int    `json:"data"`
	Age       string `json:"age"`
}

func newGetSecretsCmd() *cobra.Command {
	var (
		namespace     string
		allNamespaces bool
	)

	cmd := &cobra.Command{
		Use:     "secrets",
		Aliases: []string{"secret"},
		Short:   "Get secrets",
		Long: `Get secret metadata from the active cluster.

Only the secret name, type and key count are shown; secret values are
never printed.`,
		Example: `  # Get secrets in the default namespace
  kubeportal get secrets

  # Get secrets in all namespaces
  kubeportal get secrets -A`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.Default()
			catalog, session := newCatalog(logger)

			secrets := catalog.Secrets(cmd.Context(), targetNamespace(namespace, allNamespaces))
			warnIfDegraded(session, logger)

			return render(secretList(secrets, time.Now()))
		},
	}

	cmd.Flags().StringVarP(&namespace, "namespace", "n", "default", "namespace to list secrets from")
	cmd.Flags().BoolVarP(&allNamespaces, "all-namespaces", "A", false, "list secrets across all namespaces")

	return cmd
}

// secretList converts secrets into a display listing of metadata only.
func secretList(secrets []corev1.Secret, now time.Time) output.List {
	infos := make([]SecretInfo, 0, len(secrets))
	rows := make([][]string, 0, len(secrets))

	for _, s := range secrets {
		info := SecretInfo{
			Namespace: s.Namespace,
			Name:      s.Name,
			Type:      string(s.Type),
			Data:      len(s.Data),
			Age:       util.FormatAge(s.CreationTimestamp.Time, now),
		}
		infos = append(infos, info)
		rows = append(rows, []string{info.Namespace, info.Name, info.Type, fmt.Sprintf("%d", info.Data), info.Age})
	}

	return output.List{
		Headers: []string{"NAMESPACE", "NAME", "TYPE", "DATA", "AGE"},
		Rows:    rows,
		Items:   infos,
	}
}
