// Package runner executes operator CLI commands (kubectl, helm, aws)
// against the selected kubeconfig and context. Commands run through the
// shell so pipelines and quoting behave the way operators expect.
package runner

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds a command when the caller sets none.
const DefaultTimeout = 180 * time.Second

// TimeoutExitCode is reported when a command is killed for exceeding
// its deadline, matching the coreutils timeout(1) convention.
const TimeoutExitCode = 124

// Result carries the captured output of a finished command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner shells out with the session's kubeconfig and context injected
// into the environment.
type Runner struct {
	KubeconfigPath string
	ContextName    string
	Timeout        time.Duration

	logger *slog.Logger
}

// New creates a runner bound to a kubeconfig path and context name.
// Either may be empty, in which case it is not injected.
func New(kubeconfigPath, contextName string, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		KubeconfigPath: kubeconfigPath,
		ContextName:    contextName,
		Timeout:        DefaultTimeout,
		logger:         logger,
	}
}

// Run executes the command string through the shell and captures its
// output. A timed-out command reports exit code 124 rather than an
// error; failures to launch surface in Stderr with exit code -1.
func (r *Runner) Run(ctx context.Context, command string) Result {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Env = r.buildEnv(os.Environ())

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.Debug("running command", "command", command, "context", r.ContextName)
	err := cmd.Run()

	if ctx.Err() == context.DeadlineExceeded {
		return Result{Stderr: "Command timed out", ExitCode: TimeoutExitCode}
	}

	result := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.Stderr = err.Error()
			result.ExitCode = -1
		}
	}
	return result
}

// buildEnv injects KUBECONFIG and KUBECTL_CONTEXT into a copy of the
// base environment. An already-exported KUBECTL_CONTEXT wins over the
// runner's context name.
func (r *Runner) buildEnv(base []string) []string {
	env := make([]string, 0, len(base)+2)
	hasContext := false
	for _, kv := range base {
		if r.KubeconfigPath != "" && strings.HasPrefix(kv, "KUBECONFIG=") {
			continue
		}
		if strings.HasPrefix(kv, "KUBECTL_CONTEXT=") {
			hasContext = true
		}
		env = append(env, kv)
	}
	if r.KubeconfigPath != "" {
		env = append(env, "KUBECONFIG="+r.KubeconfigPath)
	}
	if r.ContextName != "" && !hasContext {
		env = append(env, "KUBECTL_CONTEXT="+r.ContextName)
	}
	return env
}
