package integration

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/avikram/kubeportal/internal/config"
	"github.com/avikram/kubeportal/internal/executor"
	"github.com/avikram/kubeportal/internal/kube"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/tools/clientcmd/api"
)

// createTestKubeconfig writes a kubeconfig with the given contexts and
// returns its path.
func createTestKubeconfig(t *testing.T, contexts []string) string {
	t.Helper()

	cfg := api.NewConfig()
	for i, name := range contexts {
		cfg.Clusters[name] = &api.Cluster{
			Server: fmt.Sprintf("https://%s.example.com:6443", name),
		}
		cfg.AuthInfos[name+"-user"] = &api.AuthInfo{Token: "test-token"}
		cfg.Contexts[name] = &api.Context{
			Cluster:   name,
			AuthInfo:  name + "-user",
			Namespace: "default",
		}
		if i == 0 {
			cfg.CurrentContext = name
		}
	}

	path := filepath.Join(t.TempDir(), "kubeconfig")
	if err := clientcmd.WriteToFile(*cfg, path); err != nil {
		t.Fatalf("failed to write kubeconfig: %v", err)
	}
	return path
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// TestManagerSessionLifecycle walks the path the CLI takes: load a
// kubeconfig, build a manager, switch contexts, and verify the old
// session snapshot stays untouched.
func TestManagerSessionLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	kubeconfigPath := createTestKubeconfig(t, []string{"staging", "production"})

	loader := config.NewKubeconfigLoader(kubeconfigPath)
	contexts, err := loader.GetContexts()
	if err != nil {
		t.Fatalf("failed to get contexts: %v", err)
	}
	if len(contexts) != 2 {
		t.Fatalf("expected 2 contexts, got %d", len(contexts))
	}

	mgr := kube.NewManager(loader, testLogger())

	first := mgr.Session()
	if first.Degraded() {
		t.Fatalf("expected live session, degraded with: %s", first.LastWarning())
	}
	if first.Context.Context != "staging" {
		t.Errorf("expected current context 'staging', got %q", first.Context.Context)
	}

	mgr.SetContext("production")
	second := mgr.Session()

	if second == first {
		t.Error("expected SetContext to build a new session snapshot")
	}
	if second.Context.Context != "production" {
		t.Errorf("expected context 'production', got %q", second.Context.Context)
	}
	// The old snapshot still describes the old cluster.
	if first.Context.Context != "staging" {
		t.Errorf("old session mutated, context now %q", first.Context.Context)
	}
}

// TestManagerDegradedFallback checks that an unreadable store yields a
// usable manager with the placeholder context and empty listings.
func TestManagerDegradedFallback(t *testing.T) {
	loader := config.NewKubeconfigLoader(filepath.Join(t.TempDir(), "missing"))
	mgr := kube.NewManager(loader, testLogger())

	session := mgr.Session()
	if !session.Degraded() {
		t.Fatal("expected degraded session for missing kubeconfig")
	}
	if session.Context.Context != "disconnected" {
		t.Errorf("expected placeholder context 'disconnected', got %q", session.Context.Context)
	}

	catalog := kube.NewCatalog(session)
	ctx := context.Background()

	if pods := catalog.Pods(ctx, "", ""); len(pods) != 0 {
		t.Errorf("expected no pods on degraded session, got %d", len(pods))
	}
	if namespaces := catalog.Namespaces(ctx); len(namespaces) != 0 {
		t.Errorf("expected no namespaces on degraded session, got %d", len(namespaces))
	}

	// Switching contexts on an empty store keeps the portal degraded
	// instead of crashing.
	mgr.SetContext("production")
	if !mgr.Session().Degraded() {
		t.Error("expected session to stay degraded on empty store")
	}
}

// TestOverviewFanOut runs the overview counting pattern against a fake
// cluster: one task per resource type through the pool.
func TestOverviewFanOut(t *testing.T) {
	clientset := fake.NewSimpleClientset(
		&corev1.Pod{ObjectMeta: metav1.ObjectMeta{Name: "web-1", Namespace: "apps"}},
		&corev1.Pod{ObjectMeta: metav1.ObjectMeta{Name: "web-2", Namespace: "apps"}},
		&corev1.Service{ObjectMeta: metav1.ObjectMeta{Name: "web", Namespace: "apps"}},
		&corev1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: "apps"}},
	)

	session := &kube.Session{Clientset: clientset}
	catalog := kube.NewCatalog(session)

	pool := executor.NewPool(3, testLogger())

	sections := map[string]func(ctx context.Context) int{
		"pods":       func(ctx context.Context) int { return len(catalog.Pods(ctx, "", "")) },
		"services":   func(ctx context.Context) int { return len(catalog.Services(ctx, "")) },
		"namespaces": func(ctx context.Context) int { return len(catalog.Namespaces(ctx)) },
	}

	for name, count := range sections {
		count := count
		err := pool.Submit(executor.Task{
			Section: name,
			Execute: func(ctx context.Context) (interface{}, error) {
				return count(ctx), nil
			},
		})
		if err != nil {
			t.Fatalf("failed to submit task: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	results := pool.Execute(ctx)

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if executor.HasErrors(results) {
		t.Fatalf("unexpected errors: %v", executor.GetErrors(results))
	}

	want := map[string]int{"pods": 2, "services": 1, "namespaces": 1}
	for _, result := range executor.FilterSuccessful(results) {
		if got := result.Data.(int); got != want[result.Section] {
			t.Errorf("section %s: expected %d, got %d", result.Section, want[result.Section], got)
		}
	}
}

// TestConcurrentCatalogReads hammers one session from many goroutines.
// Run with -race.
func TestConcurrentCatalogReads(t *testing.T) {
	clientset := fake.NewSimpleClientset(
		&corev1.Pod{ObjectMeta: metav1.ObjectMeta{Name: "web-1", Namespace: "apps"}},
	)
	session := &kube.Session{Clientset: clientset}
	catalog := kube.NewCatalog(session)

	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = catalog.Pods(ctx, "apps", "")
			_ = session.LastWarning()
			_ = session.Degraded()
		}()
	}
	wg.Wait()
}

// TestPoolShutdownDuringOverview verifies shutdown does not hang while
// counting tasks are in flight.
func TestPoolShutdownDuringOverview(t *testing.T) {
	pool := executor.NewPool(2, testLogger())

	for i := 0; i < 4; i++ {
		section := fmt.Sprintf("section-%d", i)
		err := pool.Submit(executor.Task{
			Section: section,
			Execute: func(ctx context.Context) (interface{}, error) {
				time.Sleep(10 * time.Millisecond)
				return 0, nil
			},
		})
		if err != nil {
			t.Fatalf("failed to submit task: %v", err)
		}
	}

	done := make(chan []executor.Result, 1)
	go func() {
		done <- pool.Execute(context.Background())
	}()

	results := <-done

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Shutdown(ctx); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}

	if len(results) != 4 {
		t.Errorf("expected 4 results, got %d", len(results))
	}
}
