package kube

import (
	"fmt"
	"log/slog"
	"sync"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"

	"github.com/avikram/kubeportal/internal/config"
)

// Session is an immutable snapshot of connection state for a single
// kubeconfig context. A context switch never mutates a Session; the
// Manager builds a replacement and swaps the reference, so any caller
// holding an old Session keeps a coherent view of the old cluster.
type Session struct {
	Context    config.ClusterInfo
	Clientset  kubernetes.Interface
	RestConfig *rest.Config

	degraded bool

	mu      sync.Mutex
	warning string
}

// Degraded reports whether the session has no usable cluster handle.
// All read accessors return safe defaults on a degraded session.
func (s *Session) Degraded() bool {
	return s == nil || s.degraded || s.Clientset == nil
}

// LastWarning returns the most recent suppressed read failure, or the
// construction error for a degraded session. Empty when healthy.
func (s *Session) LastWarning() string {
	if s == nil {
		return ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.warning
}

func (s *Session) recordWarning(err error) {
	if s == nil || err == nil {
		return
	}
	s.mu.Lock()
	s.warning = err.Error()
	s.mu.Unlock()
}

// Manager owns the active Session and the list of selectable contexts.
// It is not safe for concurrent SetContext calls; the CLI drives it
// from a single goroutine.
type Manager struct {
	loader   *config.KubeconfigLoader
	logger   *slog.Logger
	contexts []config.ClusterInfo
	current  *Session

	// storeEmpty is set when the credential store had no contexts at
	// construction; SetContext then only relabels the placeholder.
	storeEmpty bool
}

// NewManager probes the kubeconfig loader and connects to the active
// context. When the store is empty or unreadable the manager starts
// degraded with a synthetic placeholder context instead of failing, so
// the rest of the portal can render its empty states.
func NewManager(loader *config.KubeconfigLoader, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Manager{loader: loader, logger: logger}

	contexts, err := loader.GetContexts()
	if err != nil || len(contexts) == 0 {
		reason := "no kubeconfig contexts available"
		if err != nil {
			reason = err.Error()
		}
		m.storeEmpty = true
		m.contexts = []config.ClusterInfo{placeholderContext()}
		m.current = degradedSession(m.contexts[0], reason)
		logger.Warn("starting in degraded mode", "reason", reason)
		return m
	}

	m.contexts = contexts
	active := contexts[0].Context
	for _, c := range contexts {
		if c.Current {
			active = c.Context
		}
	}
	m.SetContext(active)
	return m
}

// Contexts returns the selectable contexts discovered at construction.
// A degraded manager reports the single placeholder entry.
func (m *Manager) Contexts() []config.ClusterInfo {
	return m.contexts
}

// Session returns the current immutable session snapshot.
func (m *Manager) Session() *Session {
	return m.current
}

// SetContext replaces the current session with one built for the named
// context. Failures degrade the new session rather than erroring: the
// portal stays up and surfaces the problem through LastWarning.
func (m *Manager) SetContext(name string) {
	if m.storeEmpty {
		info := placeholderContext()
		info.Context = name
		m.current = degradedSession(info, "no kubeconfig contexts available")
		return
	}

	info, err := m.loader.GetContextInfo(name)
	if err != nil {
		m.logger.Warn("context lookup failed", "context", name, "error", err)
		m.current = degradedSession(config.ClusterInfo{Name: name, Context: name, User: "n/a"}, err.Error())
		return
	}

	restConfig, err := m.loader.BuildClientConfig(name)
	if err != nil {
		m.logger.Warn("client config build failed", "context", name, "error", err)
		m.current = degradedSession(*info, err.Error())
		return
	}

	clientset, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		m.logger.Warn("clientset build failed", "context", name, "error", err)
		m.current = degradedSession(*info, err.Error())
		return
	}

	m.logger.Debug("session established", "context", name, "server", info.Server)
	m.current = &Session{
		Context:    *info,
		Clientset:  clientset,
		RestConfig: restConfig,
	}
}

func placeholderContext() config.ClusterInfo {
	return config.ClusterInfo{
		Name:    "disconnected",
		Context: "disconnected",
		User:    "n/a",
	}
}

func degradedSession(info config.ClusterInfo, reason string) *Session {
	s := &Session{Context: info, degraded: true}
	s.warning = reason
	return s
}

// guard runs a remote read on a live session and falls back to the
// given default when the session is degraded or the call fails. The
// failure is recorded as the session's last warning, never returned.
func guard[T any](s *Session, def T, fn func() (T, error)) T {
	if s.Degraded() {
		return def
	}
	v, err := fn()
	if err != nil {
		s.recordWarning(fmt.Errorf("cluster read failed: %w", err))
		return def
	}
	return v
}
