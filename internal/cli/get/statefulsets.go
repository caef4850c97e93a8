package get

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/avikram/kubeportal/internal/output"
	"github.com/avikram/kubeportal/internal/util"
	"github.com/spf13/cobra"
	appsv1 "k8s.io/api/apps/v1"
)

// StatefulSetInfo represents statefulset information for display
type StatefulSetInfo struct {
	Namespace string `json:"namespace"`
	Name      string `json:"name"`
	Ready     string `json:"ready"`
	Age       string `json:"age"`
}

func newGetStatefulSetsCmd() *cobra.Command {
	var (
		namespace     string
		allNamespaces bool
	)

	cmd := &cobra.Command{
		Use:     "statefulsets",
		Aliases: []string{"statefulset", "sts"},
		Short:   "Get statefulsets",
		Example: `  # Get statefulsets in the default namespace
  kubeportal get statefulsets

  # Get statefulsets in a data namespace
  kubeportal get sts -n databases`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.Default()
			catalog, session := newCatalog(logger)

			sets := catalog.StatefulSets(cmd.Context(), targetNamespace(namespace, allNamespaces))
			warnIfDegraded(session, logger)

			return render(statefulSetList(sets, time.Now()))
		},
	}

	cmd.Flags().StringVarP(&namespace, "namespace", "n", "default", "namespace to list statefulsets from")
	cmd.Flags().BoolVarP(&allNamespaces, "all-namespaces", "A", false, "list statefulsets across all namespaces")

	return cmd
}

// statefulSetList converts statefulsets into a display listing.
func statefulSetList(sets []appsv1.StatefulSet, now time.Time) output.List {
	infos := make([]StatefulSetInfo, 0, len(sets))
	rows := make([][]string, 0, len(sets))

	for _, s := range sets {
		replicas := int32(0)
		if s.Spec.Replicas != nil {
			replicas = *s.Spec.Replicas
		}
		info := StatefulSetInfo{
			Namespace: s.Namespace,
			Name:      s.Name,
			Ready:     fmt.Sprintf("%d/%d", s.Status.ReadyReplicas, replicas),
			Age:       util.FormatAge(s.CreationTimestamp.Time, now),
		}
		infos = append(infos, info)
		rows = append(rows, []string{info.Namespace, info.Name, info.Ready, info.Age})
	}

	return output.List{
		Headers: []string{"NAMESPACE", "NAME", "READY", "AGE"},
		Rows:    rows,
		Items:   infos,
	}
}
