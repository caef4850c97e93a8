package get

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/avikram/kubeportal/internal/output"
	"github.com/avikram/kubeportal/internal/util"
	"github.com/spf13/cobra"
	corev1 "k8s.io/api/core/v1"
)

// ServiceInfo represents service information for display
type ServiceInfo struct {
	Namespace  string `json:"namespace"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	ClusterIP  string `json:"clusterIP"`
	ExternalIP string `json:"externalIP"`
	Ports      string `json:"ports"`
	Age        string `json:"age"`
}

func newGetServicesCmd() *cobra.Command {
	var (
		namespace     string
		allNamespaces bool
	)

	cmd := &cobra.Command{
		Use:     "services",
		Aliases: []string{"service", "svc"},
		Short:   "Get services",
		Example: `  # Get services in the default namespace
  kubeportal get services

  # Get services in all namespaces
  kubeportal get svc -A`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.Default()
			catalog, session := newCatalog(logger)

			services := catalog.Services(cmd.Context(), targetNamespace(namespace, allNamespaces))
			warnIfDegraded(session, logger)

			return render(serviceList(services, time.Now()))
		},
	}

	cmd.Flags().StringVarP(&namespace, "namespace", "n", "default", "namespace to list services from")
	cmd.Flags().BoolVarP(&allNamespaces, "all-namespaces", "A", false, "list services across all namespaces")

	return cmd
}

// serviceList converts services into a display listing.
func serviceList(services []corev1.Service, now time.Time) output.List {
	infos := make([]ServiceInfo, 0, len(services))
	rows := make([][]string, 0, len(services))

	for _, svc := range services {
		info := ServiceInfo{
			Namespace:  svc.Namespace,
			Name:       svc.Name,
			Type:       string(svc.Spec.Type),
			ClusterIP:  svc.Spec.ClusterIP,
			ExternalIP: externalIP(&svc),
			Ports:      formatPorts(svc.Spec.Ports),
			Age:        util.FormatAge(svc.CreationTimestamp.Time, now),
		}
		infos = append(infos, info)
		rows = append(rows, []string{
			info.Namespace,
			info.Name,
			info.Type,
			info.ClusterIP,
			info.ExternalIP,
			info.Ports,
			info.Age,
		})
	}

	return output.List{
		Headers: []string{"NAMESPACE", "NAME", "TYPE", "CLUSTER-IP", "EXTERNAL-IP", "PORTS", "AGE"},
		Rows:    rows,
		Items:   infos,
	}
}

// externalIP resolves the service's external address, LoadBalancer
// ingress first, then the literal Spec.ExternalIPs entries.
func externalIP(svc *corev1.Service) string {
	for _, ingress := range svc.Status.LoadBalancer.Ingress {
		if ingress.IP != "" {
			return ingress.IP
		}
		if ingress.Hostname != "" {
			return ingress.Hostname
		}
	}
	if len(svc.Spec.ExternalIPs) > 0 {
		return strings.Join(svc.Spec.ExternalIPs, ",")
	}
	return "<none>"
}

// formatPorts renders service ports in kubectl's port/protocol notation.
func formatPorts(ports []corev1.ServicePort) string {
	if len(ports) == 0 {
		return "<none>"
	}
	parts := make([]string, 0, len(ports))
	for _, p := range ports {
		part := fmt.Sprintf("%d/%s", p.Port, p.Protocol)
		if p.NodePort != 0 {
			part = fmt.Sprintf("%d:%d/%s", p.Port, p.NodePort, p.Protocol)
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, ",")
}
