package kube

import (
	"errors"
	"path/filepath"
	"testing"

	"k8s.io/client-go/kubernetes/fake"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/tools/clientcmd/api"

	"github.com/avikram/kubeportal/internal/config"
)

// writeTestKubeconfig writes a two-context kubeconfig and returns its path.
func writeTestKubeconfig(t *testing.T) string {
	t.Helper()
	cfg := &api.Config{
		CurrentContext: "staging",
		Clusters: map[string]*api.Cluster{
			"staging-cluster": {Server: "https://staging:6443"},
			"prod-cluster":    {Server: "https://prod:6443"},
		},
		Contexts: map[string]*api.Context{
			"staging": {Cluster: "staging-cluster", AuthInfo: "staging-user", Namespace: "apps"},
			"prod":    {Cluster: "prod-cluster", AuthInfo: "prod-user"},
		},
		AuthInfos: map[string]*api.AuthInfo{
			"staging-user": {Token: "staging-token"},
			"prod-user":    {Token: "prod-token"},
		},
	}
	path := filepath.Join(t.TempDir(), "config")
	if err := clientcmd.WriteToFile(*cfg, path); err != nil {
		t.Fatalf("failed to write kubeconfig: %v", err)
	}
	return path
}

func TestNewManagerConnectsActiveContext(t *testing.T) {
	loader := config.NewKubeconfigLoader(writeTestKubeconfig(t))
	manager := NewManager(loader, nil)

	session := manager.Session()
	if session.Degraded() {
		t.Fatalf("expected live session, got degraded with warning %q", session.LastWarning())
	}
	if session.Context.Context != "staging" {
		t.Errorf("expected active context 'staging', got %q", session.Context.Context)
	}
	if session.Context.Server != "https://staging:6443" {
		t.Errorf("unexpected server %q", session.Context.Server)
	}
	if session.Clientset == nil || session.RestConfig == nil {
		t.Error("live session should carry clientset and rest config")
	}
	if len(manager.Contexts()) != 2 {
		t.Errorf("expected 2 contexts, got %d", len(manager.Contexts()))
	}
}

func TestNewManagerDegradedWithoutKubeconfig(t *testing.T) {
	loader := config.NewKubeconfigLoader(filepath.Join(t.TempDir(), "missing"))
	manager := NewManager(loader, nil)

	session := manager.Session()
	if !session.Degraded() {
		t.Fatal("expected degraded session for missing kubeconfig")
	}
	if session.LastWarning() == "" {
		t.Error("degraded session should carry a warning")
	}

	contexts := manager.Contexts()
	if len(contexts) != 1 {
		t.Fatalf("expected single placeholder context, got %d", len(contexts))
	}
	if contexts[0].User != "n/a" {
		t.Errorf("placeholder user = %q, want n/a", contexts[0].User)
	}

	// Switching contexts on an empty store stays degraded.
	manager.SetContext("anything")
	if !manager.Session().Degraded() {
		t.Error("context switch on empty store should stay degraded")
	}
	if manager.Session().Context.Context != "anything" {
		t.Errorf("placeholder should be relabeled, got %q", manager.Session().Context.Context)
	}
}

func TestSetContextSwapsSnapshot(t *testing.T) {
	loader := config.NewKubeconfigLoader(writeTestKubeconfig(t))
	manager := NewManager(loader, nil)

	before := manager.Session()
	manager.SetContext("prod")
	after := manager.Session()

	if before == after {
		t.Fatal("SetContext should replace the session, not mutate it")
	}
	if before.Context.Context != "staging" {
		t.Errorf("old snapshot changed context to %q", before.Context.Context)
	}
	if after.Context.Context != "prod" {
		t.Errorf("new session context = %q, want prod", after.Context.Context)
	}
	if after.Context.Server != "https://prod:6443" {
		t.Errorf("new session server = %q", after.Context.Server)
	}
}

func TestSetContextUnknownDegrades(t *testing.T) {
	loader := config.NewKubeconfigLoader(writeTestKubeconfig(t))
	manager := NewManager(loader, nil)

	manager.SetContext("nope")
	session := manager.Session()
	if !session.Degraded() {
		t.Fatal("unknown context should degrade the session")
	}
	if session.LastWarning() == "" {
		t.Error("degraded session should carry the lookup error")
	}
}

func TestGuard(t *testing.T) {
	t.Run("degraded returns default without calling", func(t *testing.T) {
		session := &Session{degraded: true, Clientset: fake.NewSimpleClientset()}
		called := false
		got := guard(session, []string{}, func() ([]string, error) {
			called = true
			return []string{"x"}, nil
		})
		if called {
			t.Error("guard ran the call on a degraded session")
		}
		if len(got) != 0 {
			t.Errorf("expected default, got %v", got)
		}
	})

	t.Run("failure records warning and returns default", func(t *testing.T) {
		session := &Session{Clientset: fake.NewSimpleClientset()}
		got := guard(session, int64(7), func() (int64, error) {
			return 0, errors.New("boom")
		})
		if got != 7 {
			t.Errorf("expected default 7, got %d", got)
		}
		if session.LastWarning() == "" {
			t.Error("failed call should record a warning")
		}
	})

	t.Run("success passes value through", func(t *testing.T) {
		session := &Session{Clientset: fake.NewSimpleClientset()}
		got := guard(session, "", func() (string, error) { return "ok", nil })
		if got != "ok" {
			t.Errorf("expected ok, got %q", got)
		}
		if session.LastWarning() != "" {
			t.Errorf("successful call recorded warning %q", session.LastWarning())
		}
	})
}
