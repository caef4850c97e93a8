package get

import (
	"log/slog"
	"time"

	"github.com/avikram/kubeportal/internal/output"
	"github.com/avikram/kubeportal/internal/util"
	"github.com/spf13/cobra"
	corev1 "k8s.io/api/core/v1"
)

// NamespaceInfo represents namespace information for display
type NamespaceInfo struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Age    string `json:"age"`
}

func newGetNamespacesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "namespaces",
		Aliases: []string{"ns", "namespace"},
		Short:   "Get namespaces",
		Example: `  # Get all namespaces
  kubeportal get namespaces

  # Get namespaces in JSON format
  kubeportal get namespaces -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.Default()
			catalog, session := newCatalog(logger)

			namespaces := catalog.Namespaces(cmd.Context())
			warnIfDegraded(session, logger)

			return render(namespaceList(namespaces, time.Now()))
		},
	}

	return cmd
}

// namespaceList converts namespaces into a display listing.
func namespaceList(namespaces []corev1.Namespace, now time.Time) output.List {
	infos := make([]NamespaceInfo, 0, len(namespaces))
	rows := make([][]string, 0, len(namespaces))

	for _, ns := range namespaces {
		info := NamespaceInfo{
			Name:   ns.Name,
			Status: string(ns.Status.Phase),
			Age:    util.FormatAge(ns.CreationTimestamp.Time, now),
		}
		infos = append(infos, info)
		rows = append(rows, []string{info.Name, info.Status, info.Age})
	}

	return output.List{
		Headers: []string{"NAME", "STATUS", "AGE"},
		Rows:    rows,
		Items:   infos,
	}
}
