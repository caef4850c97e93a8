// Package assist routes natural-language operator requests into safe
// actions. A small set of regular expressions recognizes direct intents
// (currently deployment restarts) and executes them through an injected
// callback; everything else is handed to an optional chat collaborator.
package assist

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
)

// Intent is a recognized actionable request.
type Intent struct {
	Action      string
	Target      string
	Namespace   string
	Environment string
}

var (
	restartPattern   = regexp.MustCompile(`(?i)restart\s+(?:deployment|service|app)?\s*([\w-]+)`)
	namespacePattern = regexp.MustCompile(`(?i)namespace\s*[:=]?\s*([\w-]+)`)
	envPattern       = regexp.MustCompile(`(?i)env\s*[:=]?\s*([\w-]+)`)
)

// ParseIntent extracts an actionable intent from a free-form prompt.
// The namespace falls back to defaultNamespace, then "default". The
// second return value reports whether an intent was recognized.
func ParseIntent(prompt, defaultNamespace string) (Intent, bool) {
	match := restartPattern.FindStringSubmatch(prompt)
	if match == nil {
		return Intent{}, false
	}

	namespace := defaultNamespace
	if nsMatch := namespacePattern.FindStringSubmatch(prompt); nsMatch != nil {
		namespace = nsMatch[1]
	}
	if namespace == "" {
		namespace = "default"
	}

	environment := ""
	if envMatch := envPattern.FindStringSubmatch(prompt); envMatch != nil {
		environment = envMatch[1]
	}

	return Intent{
		Action:      "restart",
		Target:      match[1],
		Namespace:   namespace,
		Environment: environment,
	}, true
}

// ChatFunc produces a free-form answer for prompts that carry no
// recognized intent. Implementations typically call an external model.
type ChatFunc func(ctx context.Context, prompt string) (string, error)

// RestartFunc performs a deployment restart and returns a status
// message for the operator.
type RestartFunc func(ctx context.Context, name, namespace string) string

// notConfigured is returned when no chat collaborator is wired in.
const notConfigured = "Assistant backend is not configured."

// Assistant handles operator prompts. The restart callback is required;
// chat may be nil, in which case unrecognized prompts get a
// not-configured notice.
type Assistant struct {
	restart RestartFunc
	chat    ChatFunc
	logger  *slog.Logger
}

// NewAssistant creates an assistant with the given collaborators.
func NewAssistant(restart RestartFunc, chat ChatFunc, logger *slog.Logger) *Assistant {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assistant{
		restart: restart,
		chat:    chat,
		logger:  logger,
	}
}

// Handle routes a prompt: recognized restart intents execute directly,
// everything else goes to the chat collaborator.
func (a *Assistant) Handle(ctx context.Context, prompt, defaultNamespace string) (string, error) {
	if intent, ok := ParseIntent(prompt, defaultNamespace); ok && intent.Action == "restart" {
		a.logger.Info("routing restart intent",
			"target", intent.Target,
			"namespace", intent.Namespace)
		return a.restart(ctx, intent.Target, intent.Namespace), nil
	}

	if a.chat == nil {
		return notConfigured, nil
	}

	plan := fmt.Sprintf(
		"You are an SRE copilot for Kubernetes. User request: %s. "+
			"Produce a concise execution plan with kubectl/helm commands, "+
			"include RBAC considerations, and do not assume success.",
		prompt)
	return a.chat(ctx, plan)
}

// SummarizeLogs asks the chat collaborator for a root-cause analysis of
// pod logs. Long logs are truncated to keep the prompt bounded.
func (a *Assistant) SummarizeLogs(ctx context.Context, logs string) (string, error) {
	if a.chat == nil {
		return notConfigured, nil
	}

	snippet := logs
	if len(snippet) > 12000 {
		snippet = snippet[:12000]
	}
	prompt := fmt.Sprintf(
		"Analyze these Kubernetes pod logs, identify the most probable root cause, "+
			"outline the blast radius (pods, services, nodes), and recommend concrete "+
			"kubectl or manifest changes to remediate.\nLogs:\n%s",
		snippet)
	return a.chat(ctx, prompt)
}
