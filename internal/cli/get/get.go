package get

import (
	"log/slog"
	"os"

	"github.com/avikram/kubeportal/internal/config"
	"github.com/avikram/kubeportal/internal/kube"
	"github.com/avikram/kubeportal/internal/output"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewGetCmd creates the get parent command
// This command aggregates all get subcommands (pods, deployments, services, ...)
func NewGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get resources from the active cluster",
		Long: `Get Kubernetes resources from the active kubeconfig context.

Supports pods, deployments, statefulsets, jobs, services, configmaps,
secrets, namespaces, events and nodes with filtering options and
formatted output. When no cluster is reachable the listings come back
empty instead of failing.`,
		Example: `  # Get all pods in the default namespace
  kubeportal get pods

  # Get pods in a specific namespace
  kubeportal get pods -n kube-system

  # Get pods scheduled on one node
  kubeportal get pods --field-selector spec.nodeName=worker-1

  # Get deployments in JSON format
  kubeportal get deployments -o json

  # Get recent events against another context
  kubeportal get events --context staging`,
	}

	// Register all subcommands
	cmd.AddCommand(newGetPodsCmd())
	cmd.AddCommand(newGetDeploymentsCmd())
	cmd.AddCommand(newGetStatefulSetsCmd())
	cmd.AddCommand(newGetJobsCmd())
	cmd.AddCommand(newGetServicesCmd())
	cmd.AddCommand(newGetConfigMapsCmd())
	cmd.AddCommand(newGetSecretsCmd())
	cmd.AddCommand(newGetNamespacesCmd())
	cmd.AddCommand(newGetEventsCmd())
	cmd.AddCommand(newGetNodesCmd())

	return cmd
}

// newCatalog builds a resource catalog over the session selected by the
// global kubeconfig and context flags.
func newCatalog(logger *slog.Logger) (*kube.Catalog, *kube.Session) {
	loader := config.NewKubeconfigLoader(viper.GetString("kubeconfig"))
	mgr := kube.NewManager(loader, logger)
	if name := viper.GetString("context"); name != "" {
		mgr.SetContext(name)
	}
	session := mgr.Session()
	return kube.NewCatalog(session), session
}

// warnIfDegraded surfaces the session's last warning after a listing so
// an empty result is never silently ambiguous.
func warnIfDegraded(session *kube.Session, logger *slog.Logger) {
	if session.Degraded() {
		logger.Warn("no cluster connection, showing empty results", "reason", session.LastWarning())
	} else if w := session.LastWarning(); w != "" {
		logger.Warn("cluster query degraded", "reason", w)
	}
}

// targetNamespace resolves the -n/-A flag pair into the namespace
// argument the catalog expects, where empty means all namespaces.
func targetNamespace(namespace string, allNamespaces bool) string {
	if allNamespaces {
		return ""
	}
	return namespace
}

// render writes a listing in the format selected by the global flags.
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
