package exec

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/avikram/kubeportal/internal/config"
	"github.com/avikram/kubeportal/internal/runner"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewExecCmd creates the exec command
func NewExecCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec -- COMMAND...",
		Short: "Run an operator CLI command against the active context",
		Long: `Run an arbitrary CLI command through a shell with the portal's
kubeconfig and context exported as KUBECONFIG and KUBECTL_CONTEXT.

The command runs under a timeout; on expiry it is killed and reported
with exit code 124. The command's exit code is passed through, so
kubeportal exec works in scripts.`,
		Example: `  # Run kubectl with the portal's context
  kubeportal exec -- kubectl get crds

  # Shell syntax works, the command runs through sh -c
  kubeportal exec -- "helm list -A | grep ingress"

  # Bound a slow command
  kubeportal exec --timeout 30s -- kubectl get pods -A`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExec(cmd, strings.Join(args, " "))
		},
	}

	return cmd
}

func runExec(cmd *cobra.Command, command string) error {
	logger := slog.Default()

	loader := config.NewKubeconfigLoader(viper.GetString("kubeconfig"))

	r := runner.New(loader.PrimaryPath(), viper.GetString("context"), logger)
	if timeout := viper.GetDuration("timeout"); timeout > 0 {
		r.Timeout = timeout
	}

	result := r.Run(cmd.Context(), command)

	if result.Stdout != "" {
		fmt.Fprint(cmd.OutOrStdout(), result.Stdout)
	}
	if result.Stderr != "" {
		fmt.Fprint(cmd.ErrOrStderr(), result.Stderr)
		if !strings.HasSuffix(result.Stderr, "\n") {
			fmt.Fprintln(cmd.ErrOrStderr())
		}
	}

	if result.ExitCode != 0 {
		logger.Debug("command exited nonzero", "exit_code", result.ExitCode)
		os.Exit(exitStatus(result.ExitCode))
	}
	return nil
}

// exitStatus clamps the runner's exit code to a valid process status.
// Launch failures are reported as -1, which os.Exit would otherwise
// turn into 255.
func exitStatus(code int) int {
	if code < 0 {
		return 1
	}
	return code
}
