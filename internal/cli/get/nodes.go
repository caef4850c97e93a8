package get

import (
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/avikram/kubeportal/internal/output"
	"github.com/avikram/kubeportal/internal/util"
	"github.com/spf13/cobra"
	corev1 "k8s.io/api/core/v1"
)

// NodeInfo represents node information for display
type NodeInfo struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Roles   string `json:"roles"`
	Age     string `json:"age"`
	Version string `json:"version"`
}

func newGetNodesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "nodes",
		Aliases: []string{"node", "no"},
		Short:   "Get nodes",
		Example: `  # Get all nodes
  kubeportal get nodes

  # Get nodes in JSON format
  kubeportal get nodes -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.Default()
			catalog, session := newCatalog(logger)

			nodes := catalog.Nodes(cmd.Context())
			warnIfDegraded(session, logger)

			return render(nodeList(nodes, time.Now()))
		},
	}

	return cmd
}

// nodeList converts nodes into a display listing.
func nodeList(nodes []corev1.Node, now time.Time) output.List {
	infos := make([]NodeInfo, 0, len(nodes))
	rows := make([][]string, 0, len(nodes))

	for _, node := range nodes {
		info := NodeInfo{
			Name:    node.Name,
			Status:  nodeStatus(&node),
			Roles:   nodeRoles(&node),
			Age:     util.FormatAge(node.CreationTimestamp.Time, now),
			Version: node.Status.NodeInfo.KubeletVersion,
		}
		infos = append(infos, info)
		rows = append(rows, []string{info.Name, info.Status, info.Roles, info.Age, info.Version})
	}

	return output.List{
		Headers: []string{"NAME", "STATUS", "ROLES", "AGE", "VERSION"},
		Rows:    rows,
		Items:   infos,
	}
}

// nodeStatus reports Ready or NotReady from the node's Ready condition.
func nodeStatus(node *corev1.Node) string {
	for _, cond := range node.Status.Conditions {
		if cond.Type == corev1.NodeReady {
			if cond.Status == corev1.ConditionTrue {
				return "Ready"
			}
			return "NotReady"
		}
	}
	return "Unknown"
}

// nodeRoles extracts role names from the node-role.kubernetes.io labels.
func nodeRoles(node *corev1.Node) string {
	var roles []string
	for label := range node.Labels {
		if role, ok := strings.CutPrefix(label, "node-role.kubernetes.io/"); ok && role != "" {
			roles = append(roles, role)
		}
	}
	if len(roles) == 0 {
		return "<none>"
	}
	sort.Strings(roles)
	return strings.Join(roles, ",")
}
