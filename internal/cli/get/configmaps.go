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

// ConfigMapInfo represents configmap information for display
type ConfigMapInfo struct {
	Namespace string `json:"namespace"`
	Name      string `json:"name"`
	Data      int    `json:"data"`
	Age       string `json:"age"`
}

func newGetConfigMapsCmd() *cobra.Command {
	var (
		namespace     string
		allNamespaces bool
	)

	cmd := &cobra.Command{
		Use:     "configmaps",
		Aliases: []string{"configmap", "cm"},
		Short:   "Get configmaps",
		Example: `  # Get configmaps in the default namespace
  kubeportal get configmaps

  # Get configmaps in all namespaces
  kubeportal get cm -A`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.Default()
			catalog, session := newCatalog(logger)

			configMaps := catalog.ConfigMaps(cmd.Context(), targetNamespace(namespace, allNamespaces))
			warnIfDegraded(session, logger)

			return render(configMapList(configMaps, time.Now()))
		},
	}

	cmd.Flags().StringVarP(&namespace, "namespace", "n", "default", "namespace to list configmaps from")
	cmd.Flags().BoolVarP(&allNamespaces, "all-namespaces", "A", false, "list configmaps across all namespaces")

	return cmd
}

// configMapList converts configmaps into a display listing.
func configMapList(configMaps []corev1.ConfigMap, now time.Time) output.List {
	infos := make([]ConfigMapInfo, 0, len(configMaps))
	rows := make([][]string, 0, len(configMaps))

	for _, cm := range configMaps {
		info := ConfigMapInfo{
			Namespace: cm.Namespace,
			Name:      cm.Name,
			Data:      len(cm.Data) + len(cm.BinaryData),
			Age:       util.FormatAge(cm.CreationTimestamp.Time, now),
		}
		infos = append(infos, info)
		rows = append(rows, []string{info.Namespace, info.Name, fmt.Sprintf("%d", info.Data), info.Age})
	}

	return output.List{
		Headers: []string{"NAMESPACE", "NAME", "DATA", "AGE"},
		Rows:    rows,
		Items:   infos,
	}
}
