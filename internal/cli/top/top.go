package top

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/avikram/kubeportal/internal/config"
	"github.com/avikram/kubeportal/internal/kube"
	"github.com/avikram/kubeportal/internal/output"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewTopCmd creates the top parent command
func NewTopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show live resource usage",
		Long: `Show CPU and memory usage from the metrics API.

Usage figures come from metrics-server samples. When the metrics API
is not installed or unreachable the listings come back empty.`,
		Example: `  # Node usage with health conditions
  kubeportal top nodes

  # Pod usage in a namespace
  kubeportal top pods -n apps`,
	}

	cmd.AddCommand(newTopNodesCmd())
	cmd.AddCommand(newTopPodsCmd())

	return cmd
}

// NodeUsage represents node usage for display
type NodeUsage struct {
	Name      string `json:"name"`
	CPU       string `json:"cpu"`
	Memory    string `json:"memory"`
	Pods      int    `json:"pods"`
	Kubelet   string `json:"kubelet"`
	Karpenter string `json:"karpenter"`
}

// PodUsage represents pod usage for display
type PodUsage struct {
	Namespace string `json:"namespace"`
	Name      string `json:"name"`
	CPU       string `json:"cpu"`
	Memory    string `json:"memory"`
}

func newTopNodesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "nodes",
		Aliases: []string{"node", "no"},
		Short:   "Show node resource usage",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader, session := newReader()
			metrics := reader.NodeMetrics(cmd.Context())
			warnIfDegraded(session)
			return render(nodeUsageList(metrics))
		},
	}

	return cmd
}

func newTopPodsCmd() *cobra.Command {
	var (
		namespace     string
		allNamespaces bool
	)

	cmd := &cobra.Command{
		Use:     "pods",
		Aliases: []string{"pod", "po"},
		Short:   "Show pod resource usage",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader, session := newReader()
			ns := namespace
			if allNamespaces {
				ns = ""
			}
			metrics := reader.PodMetrics(cmd.Context(), ns)
			warnIfDegraded(session)
			return render(podUsageList(metrics))
		},
	}

	cmd.Flags().StringVarP(&namespace, "namespace", "n", "default", "namespace to show usage from")
	cmd.Flags().BoolVarP(&allNamespaces, "all-namespaces", "A", false, "show usage across all namespaces")

	return cmd
}

func newReader() (*kube.MetricsReader, *kube.Session) {
	logger := slog.Default()

	loader := config.NewKubeconfigLoader(viper.GetString("kubeconfig"))
	mgr := kube.NewManager(loader, logger)
	if name := viper.GetString("context"); name != "" {
		mgr.SetContext(name)
	}
	session := mgr.Session()
	return kube.NewMetricsReader(session, kube.NewCatalog(session)), session
}

func warnIfDegraded(session *kube.Session) {
	if session.Degraded() {
		slog.Warn("no cluster connection, showing empty usage", "reason", session.LastWarning())
	} else if w := session.LastWarning(); w != "" {
		slog.Warn("metrics query degraded", "reason", w)
	}
}

func render(list output.List) error {
	var format output.Format
	switch viper.GetString("output") {
	case "json":
		format = output.FormatJSON
	case "yaml":
		format = output.FormatYAML
	default:
		format = output.FormatTable
	}

	formatter := output.NewFormatter(format, output.WithNoColor(viper.GetBool("no-color")))
	return formatter.FormatList(os.Stdout, list)
}

// nodeUsageList converts node metrics into a display listing.
func nodeUsageList(metrics []kube.NodeMetrics) output.List {
	usages := make([]NodeUsage, 0, len(metrics))
	rows := make([][]string, 0, len(metrics))

	for _, m := range metrics {
		usage := NodeUsage{
			Name:      m.Name,
			CPU:       fmt.Sprintf("%dm", m.CPUMillicores),
			Memory:    fmt.Sprintf("%dMi", m.MemoryMebibytes),
			Pods:      m.PodCount,
			Kubelet:   m.KubeletHealth,
			Karpenter: m.KarpenterHealth,
		}
		usages = append(usages, usage)
		rows = append(rows, []string{
			usage.Name,
			usage.CPU,
			usage.Memory,
			fmt.Sprintf("%d", usage.Pods),
			usage.Kubelet,
			usage.Karpenter,
		})
	}

	return output.List{
		Headers: []string{"NAME", "CPU", "MEMORY", "PODS", "KUBELET", "KARPENTER"},
		Rows:    rows,
		Items:   usages,
	}
}

// podUsageList converts pod metrics into a display listing.
func podUsageList(metrics []kube.PodMetrics) output.List {
	usages := make([]PodUsage, 0, len(metrics))
	rows := make([][]string, 0, len(metrics))

	for _, m := range metrics {
		usage := PodUsage{
			Namespace: m.Namespace,
			Name:      m.Name,
			CPU:       fmt.Sprintf("%dm", m.CPUMillicores),
			Memory:    fmt.Sprintf("%dMi", m.MemoryMebibytes),
		}
		usages = append(usages, usage)
		rows = append(rows, []string{usage.Namespace, usage.Name, usage.CPU, usage.Memory})
	}

	return output.List{
		Headers: []string{"NAMESPACE", "NAME", "CPU", "MEMORY"},
		Rows:    rows,
		Items:   usages,
	}
}
