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

// DeploymentInfo represents deployment information for display
type DeploymentInfo struct {
	Namespace string `json:"namespace"`
	Name      string `json:"name"`
	Ready     string `json:"ready"`
	UpToDate  int32  `json:"upToDate"`
	Available int32  `json:"available"`
	Age       string `json:"age"`
}

func newGetDeploymentsCmd() *cobra.Command {
	var (
		namespace     string
		allNamespaces bool
	)

	cmd := &cobra.Command{
		Use:     "deployments",
		Aliases: []string{"deployment", "deploy"},
		Short:   "Get deployments",
		Long: `Get deployments from the active cluster.

Displays deployment name, ready replicas, up-to-date and available
counts, and age.`,
		Example: `  # Get deployments in the default namespace
  kubeportal get deployments

  # Get deployments in all namespaces as YAML
  kubeportal get deployments -A -o yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.Default()
			catalog, session := newCatalog(logger)

			deployments := catalog.Deployments(cmd.Context(), targetNamespace(namespace, allNamespaces))
			warnIfDegraded(session, logger)

			return render(deploymentList(deployments, time.Now()))
		},
	}

	cmd.Flags().StringVarP(&namespace, "namespace", "n", "default", "namespace to list deployments from")
	cmd.Flags().BoolVarP(&allNamespaces, "all-namespaces", "A", false, "list deployments across all namespaces")

	return cmd
}

// deploymentList converts deployments into a display listing.
func deploymentList(deployments []appsv1.Deployment, now time.Time) output.List {
	infos := make([]DeploymentInfo, 0, len(deployments))
	rows := make([][]string, 0, len(deployments))

	for _, d := range deployments {
		replicas := int32(0)
		if d.Spec.Replicas != nil {
			replicas = *d.Spec.Replicas
		}
		info := DeploymentInfo{
			Namespace: d.Namespace,
			Name:      d.Name,
			Ready:     fmt.Sprintf("%d/%d", d.Status.ReadyReplicas, replicas),
			UpToDate:  d.Status.UpdatedReplicas,
			Available: d.Status.AvailableReplicas,
			Age:       util.FormatAge(d.CreationTimestamp.Time, now),
		}
		infos = append(infos, info)
		rows = append(rows, []string{
			info.Namespace,
			info.Name,
			info.Ready,
			fmt.Sprintf("%d", info.UpToDate),
			fmt.Sprintf("%d", info.Available),
			info.Age,
		})
	}

	return output.List{
		Headers: []string{"NAMESPACE", "NAME", "READY", "UP-TO-DATE", "AVAILABLE", "AGE"},
		Rows:    rows,
		Items:   infos,
	}
}
