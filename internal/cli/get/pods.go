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

// PodInfo represents pod information for display
type PodInfo struct {
	Namespace string `json:"namespace"`
	Name      string `json:"name"`
	Ready     string `json:"ready"`
	Status    string `json:"status"`
	Restarts  int32  `json:"restarts"`
	Age       string `json:"age"`
	Node      string `json:"node"`
}

func newGetPodsCmd() *cobra.Command {
	var (
		namespace     string
		fieldSelector string
		allNamespaces bool
	)

	cmd := &cobra.Command{
		Use:     "pods",
		Aliases: []string{"pod", "po"},
		Short:   "Get pods",
		Long: `Get pods from the active cluster.

Displays pod name, readiness, status, restart count, age and node
for each pod in the selected namespace.`,
		Example: `  # Get pods in the default namespace
  kubeportal get pods

  # Get pods in all namespaces
  kubeportal get pods -A

  # Get pods on a specific node
  kubeportal get pods -A --field-selector spec.nodeName=worker-1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.Default()
			catalog, session := newCatalog(logger)

			pods := catalog.Pods(cmd.Context(), targetNamespace(namespace, allNamespaces), fieldSelector)
			warnIfDegraded(session, logger)

			return render(podList(pods, time.Now()))
		},
	}

	cmd.Flags().StringVarP(&namespace, "namespace", "n", "default", "namespace to list pods from")
	cmd.Flags().StringVar(&fieldSelector, "field-selector", "", "field selector to filter pods")
	cmd.Flags().BoolVarP(&allNamespaces, "all-namespaces", "A", false, "list pods across all namespaces")

	return cmd
}

// podList converts pods into a display listing.
func podList(pods []corev1.Pod, now time.Time) output.List {
	infos := make([]PodInfo, 0, len(pods))
	rows := make([][]string, 0, len(pods))

	for _, pod := range pods {
		info := PodInfo{
			Namespace: pod.Namespace,
			Name:      pod.Name,
			Ready:     calculateReadyStatus(&pod),
			Status:    string(pod.Status.Phase),
			Restarts:  calculateRestarts(&pod),
			Age:       util.FormatAge(pod.CreationTimestamp.Time, now),
			Node:      pod.Spec.NodeName,
		}
		infos = append(infos, info)
		rows = append(rows, []string{
			info.Namespace,
			info.Name,
			info.Ready,
			info.Status,
			fmt.Sprintf("%d", info.Restarts),
			info.Age,
			info.Node,
		})
	}

	return output.List{
		Headers: []string{"NAMESPACE", "NAME", "READY", "STATUS", "RESTARTS", "AGE", "NODE"},
		Rows:    rows,
		Items:   infos,
	}
}

// calculateReadyStatus returns ready/total container count as a string
func calculateReadyStatus(pod *corev1.Pod) string {
	ready := 0
	total := len(pod.Spec.Containers)

	for _, status := range pod.Status.ContainerStatuses {
		if status.Ready {
			ready++
		}
	}

	return fmt.Sprintf("%d/%d", ready, total)
}

// calculateRestarts sums restart counts across all containers
func calculateRestarts(pod *corev1.Pod) int32 {
	var restarts int32
	for _, status := range pod.Status.ContainerStatuses {
		restarts += status.RestartCount
	}
	return restarts
}
