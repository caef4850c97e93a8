package apply

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/avikram/kubeportal/internal/kube"
	"github.com/avikram/kubeportal/internal/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewApplyCmd creates the apply command
func NewApplyCmd() *cobra.Command {
	var (
		filename  string
		namespace string
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply a manifest to the active cluster",
		Long: `Apply a YAML manifest to the active kubeconfig context.

The manifest may contain multiple documents. Every document is
validated against the supported kinds before anything is sent to the
cluster, so a manifest with one bad document changes nothing. Existing
objects are patched, missing ones are created.`,
		Example: `  # Apply a single manifest
  kubeportal apply -f deployment.yaml

  # Apply a manifest from stdin
  cat deployment.yaml | kubeportal apply -f -

  # Apply into a namespace for documents that name none
  kubeportal apply -f service.yaml -n staging`,
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, err := readManifest(filename, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return runApply(cmd, manifest, namespace)
		},
	}

	cmd.Flags().StringVarP(&filename, "filename", "f", "", "path to manifest file, or - for stdin (required)")
	cmd.Flags().StringVarP(&namespace, "namespace", "n", "default", "namespace for documents without one")

	cmd.MarkFlagRequired("filename")

	return cmd
}

// readManifest loads the manifest text from a file or stdin.
func readManifest(filename string, stdin io.Reader) (string, error) {
	if filename == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", util.WrapErrorf(err, "failed to read manifest from stdin")
		}
		return string(data), nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return "", util.WrapErrorf(err, "failed to read manifest file %s", filename)
	}
	return string(data), nil
}

func runApply(cmd *cobra.Command, manifest, namespace string) error {
	logger := slog.Default()

	contextName := viper.GetString("context")
	kubeconfigPath := viper.GetString("kubeconfig")

	logger.Debug("applying manifest", "namespace", namespace, "context", contextName)

	if err := kube.ApplyManifest(cmd.Context(), manifest, namespace, contextName, kubeconfigPath); err != nil {
		return fmt.Errorf("apply failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "manifest applied")
	return nil
}
