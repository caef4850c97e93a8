package contexts

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/avikram/kubeportal/internal/config"
	"github.com/avikram/kubeportal/internal/kube"
	"github.com/avikram/kubeportal/internal/output"
	"github.com/avikram/kubeportal/internal/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewContextsCmd creates the contexts command
func NewContextsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contexts",
		Short: "List kubeconfig contexts",
		Long: `List the contexts available in your kubeconfig file(s).

Each row shows the context, its cluster, server, default namespace and
user. Switching the portal to another context is done with the global
--context flag; the kubeconfig file itself is never modified.`,
		Aliases: []string{"ctx"},
		Example: `  # List all contexts
  kubeportal contexts

  # Show the active context
  kubeportal contexts current

  # Run any command against another context
  kubeportal get pods --context staging`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList()
		},
	}

	cmd.AddCommand(newCurrentCmd())

	return cmd
}

func newCurrentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "current",
		Short: "Show the active context",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.Default()

			loader := config.NewKubeconfigLoader(viper.GetString("kubeconfig"))
			mgr := kube.NewManager(loader, logger)
			if name := viper.GetString("context"); name != "" {
				mgr.SetContext(name)
			}

			session := mgr.Session()
			if session.Degraded() {
				logger.Warn("no cluster connection", "reason", session.LastWarning())
			}
			fmt.Fprintln(cmd.OutOrStdout(), session.Context.Context)
			return nil
		},
	}

	return cmd
}

func runList() error {
	logger := slog.Default()

	loader := config.NewKubeconfigLoader(viper.GetString("kubeconfig"))
	logger.Debug("loading kubeconfig", "paths", loader.GetPaths())

	contexts, err := loader.GetContexts()
	if err != nil {
		return fmt.Errorf("failed to load contexts: %w", err)
	}

	if len(contexts) == 0 {
		fmt.Fprintln(os.Stderr, "No contexts found in kubeconfig")
		return nil
	}

	return render(contextList(contexts))
}

// contextList converts kubeconfig contexts into a display listing with
// the active context first.
func contextList(contexts []config.ClusterInfo) output.List {
	sorted := make([]config.ClusterInfo, len(contexts))
	copy(sorted, contexts)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Current != sorted[j].Current {
			return sorted[i].Current
		}
		return sorted[i].Context < sorted[j].Context
	})

	rows := make([][]string, 0, len(sorted))
	for _, info := range sorted {
		marker := ""
		if info.Current {
			marker = "*"
		}
		rows = append(rows, []string{
			marker,
			info.Context,
			util.ShortContextName(info.Name),
			info.Server,
			info.Namespace,
			info.User,
		})
	}

	return output.List{
		Headers: []string{"CURRENT", "CONTEXT", "CLUSTER", "SERVER", "NAMESPACE", "USER"},
		Rows:    rows,
		Items:   sorted,
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
