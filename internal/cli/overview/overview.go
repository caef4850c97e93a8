package overview

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/avikram/kubeportal/internal/config"
	"github.com/avikram/kubeportal/internal/executor"
	"github.com/avikram/kubeportal/internal/kube"
	"github.com/avikram/kubeportal/internal/output"
	"github.com/avikram/kubeportal/internal/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	eventsv1 "k8s.io/api/events/v1"
)

// ResourceCount is one row of the overview, a resource type and how
// many of them the cluster holds.
type ResourceCount struct {
	Resource string `json:"resource"`
	Count    int    `json:"count"`
}

// EventSummary is one recent event in the overview.
type EventSummary struct {
	Namespace string `json:"namespace"`
	LastSeen  string `json:"lastSeen"`
	Type      string `json:"type"`
	Reason    string `json:"reason"`
	Object    string `json:"object"`
	Message   string `json:"message"`
}

// NewOverviewCmd creates the overview command
func NewOverviewCmd() *cobra.Command {
	var (
		eventCount int
		workers    int
	)

	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Show a cluster-wide summary",
		Long: `Show a one-screen summary of the active cluster.

Counts pods, deployments, services, statefulsets, jobs and namespaces
concurrently, then lists the most recent events. On a degraded session
every count is zero and the event list is empty. With --verbose the
table output starts with the status and timing of each query.`,
		Example: `  # Summarize the active cluster
  kubeportal overview

  # Summarize another context with more event history
  kubeportal overview --context staging --events 25

  # Include per-query status and timing
  kubeportal overview -v`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOverview(cmd.Context(), eventCount, workers)
		},
	}

	cmd.Flags().IntVar(&eventCount, "events", 10, "number of recent events to show")
	cmd.Flags().IntVar(&workers, "workers", 4, "number of concurrent resource queries")

	return cmd
}

func runOverview(ctx context.Context, eventCount, workers int) error {
	logger := slog.Default()

	loader := config.NewKubeconfigLoader(viper.GetString("kubeconfig"))
	mgr := kube.NewManager(loader, logger)
	if name := viper.GetString("context"); name != "" {
		mgr.SetContext(name)
	}
	session := mgr.Session()
	catalog := kube.NewCatalog(session)

	logger.Debug("collecting cluster overview", "context", session.Context.Context, "workers", workers)

	results := collectSections(ctx, catalog, workers, logger)
	counts := resourceCounts(results)

	events := catalog.Events(ctx, "")
	summaries := recentEvents(events, eventCount, time.Now())

	if session.Degraded() {
		logger.Warn("no cluster connection, overview is empty", "reason", session.LastWarning())
	} else if w := session.LastWarning(); w != "" {
		logger.Warn("overview degraded", "reason", w)
	}

	return renderOverview(os.Stdout, results, counts, summaries)
}

// sectionNames fixes the order the overview reports its sections in,
// independent of the order the worker pool finishes them.
var sectionNames = []string{"pods", "deployments", "services", "statefulsets", "jobs", "namespaces"}

// collectSections runs one counting task per resource type through the
// worker pool and returns the raw per-section results.
func collectSections(ctx context.Context, catalog *kube.Catalog, workers int, logger *slog.Logger) []executor.Result {
	counters := map[string]func(ctx context.Context) int{
		"pods":         func(ctx context.Context) int { return len(catalog.Pods(ctx, "", "")) },
		"deployments":  func(ctx context.Context) int { return len(catalog.Deployments(ctx, "")) },
		"services":     func(ctx context.Context) int { return len(catalog.Services(ctx, "")) },
		"statefulsets": func(ctx context.Context) int { return len(catalog.StatefulSets(ctx, "")) },
		"jobs":         func(ctx context.Context) int { return len(catalog.Jobs(ctx, "")) },
		"namespaces":   func(ctx context.Context) int { return len(catalog.Namespaces(ctx)) },
	}

	pool := executor.NewPool(workers, logger)
	for _, name := range sectionNames {
		count := counters[name]
		task := executor.Task{
			Section: name,
			Execute: func(ctx context.Context) (interface{}, error) {
				return count(ctx), nil
			},
		}
		if err := pool.Submit(task); err != nil {
			logger.Error("failed to submit overview task", "section", name, "error", err)
		}
	}

	execCtx := ctx
	if timeout := viper.GetDuration("timeout"); timeout > 0 {
		var cancel context.CancelFunc
		execCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	results := pool.Execute(execCtx)

	for _, failed := range executor.FilterFailed(results) {
		logger.Error("overview query failed", "section", failed.Section, "error", failed.Error)
	}
	return results
}

// resourceCounts reassembles the pool results into count rows in
// section order. A failed section counts as zero.
func resourceCounts(results []executor.Result) []ResourceCount {
	bySection := executor.BySection(results)

	counts := make([]ResourceCount, 0, len(results))
	for _, name := range sectionNames {
		result, ok := bySection[name]
		if !ok {
			continue
		}
		count := 0
		if n, ok := result.Data.(int); ok {
			count = n
		}
		counts = append(counts, ResourceCount{Resource: name, Count: count})
	}
	return counts
}

// recentEvents picks the newest events, most recent first.
func recentEvents(events []eventsv1.Event, limit int, now time.Time) []EventSummary {
	sorted := make([]eventsv1.Event, len(events))
	copy(sorted, events)
	sort.Slice(sorted, func(i, j int) bool {
		return util.EventTime(&sorted[i]).After(util.EventTime(&sorted[j]))
	})
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	summaries := make([]EventSummary, 0, len(sorted))
	for _, e := range sorted {
		summaries = append(summaries, EventSummary{
			Namespace: e.Namespace,
			LastSeen:  util.FormatAge(util.EventTime(&e), now),
			Type:      e.Type,
			Reason:    e.Reason,
			Object:    fmt.Sprintf("%s/%s", e.Regarding.Kind, e.Regarding.Name),
			Message:   e.Note,
		})
	}
	return summaries
}

// renderOverview writes the counts and recent events. Structured
// formats get both under one document; the table format prints two
// titled sections, preceded by the query status table when verbose.
func renderOverview(w io.Writer, results []executor.Result, counts []ResourceCount, events []EventSummary) error {
	noColor := viper.GetBool("no-color")

	doc := map[string]interface{}{
		"counts": counts,
		"events": events,
	}
	if executor.HasErrors(results) {
		msgs := make([]string, 0)
		for _, err := range executor.GetErrors(results) {
			msgs = append(msgs, err.Error())
		}
		doc["errors"] = msgs
	}

	switch viper.GetString("output") {
	case "json":
		formatter := output.NewFormatter(output.FormatJSON, output.WithNoColor(noColor))
		return formatter.Format(w, doc)
	case "yaml":
		formatter := output.NewFormatter(output.FormatYAML, output.WithNoColor(noColor))
		return formatter.Format(w, doc)
	}

	formatter := output.NewFormatter(output.FormatTable, output.WithNoColor(noColor))

	if viper.GetBool("verbose") {
		fmt.Fprintln(w, "Query status:")
		if err := formatter.FormatSections(w, results); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	if err := formatter.FormatList(w, countList(counts)); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Recent events:")
	return formatter.FormatList(w, eventList(events))
}

func countList(counts []ResourceCount) output.List {
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{c.Resource, fmt.Sprintf("%d", c.Count)})
	}
	return output.List{
		Headers: []string{"RESOURCE", "COUNT"},
		Rows:    rows,
		Items:   counts,
	}
}

func eventList(events []EventSummary) output.List {
	rows := make([][]string, 0, len(events))
	for _, e := range events {
		rows = append(rows, []string{e.Namespace, e.LastSeen, e.Type, e.Reason, e.Object, e.Message})
	}
	return output.List{
		Headers: []string{"NAMESPACE", "LAST SEEN", "TYPE", "REASON", "OBJECT", "MESSAGE"},
		Rows:    rows,
		Items:   events,
	}
}
