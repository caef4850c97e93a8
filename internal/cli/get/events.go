package get

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/avikram/kubeportal/internal/output"
	"github.com/avikram/kubeportal/internal/util"
	"github.com/spf13/cobra"
	eventsv1 "k8s.io/api/events/v1"
)

// EventInfo represents event information for display
type EventInfo struct {
	Namespace string `json:"namespace"`
	LastSeen  string `json:"lastSeen"`
	Type      string `json:"type"`
	Reason    string `json:"reason"`
	Object    string `json:"object"`
	Message   string `json:"message"`
}

func newGetEventsCmd() *cobra.Command {
	var (
		namespace     string
		allNamespaces bool
		limit         int
	)

	cmd := &cobra.Command{
		Use:     "events",
		Aliases: []string{"event", "ev"},
		Short:   "Get events",
		Long: `Get events from the active cluster, newest first.

Events are the first place to look when a workload misbehaves; this
listing joins reason, involved object and message per event.`,
		Example: `  # Get events in the default namespace
  kubeportal get events

  # Get the 20 most recent events across all namespaces
  kubeportal get events -A --limit 20`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.Default()
			catalog, session := newCatalog(logger)

			events := catalog.Events(cmd.Context(), targetNamespace(namespace, allNamespaces))
			warnIfDegraded(session, logger)

			return render(eventList(events, limit, time.Now()))
		},
	}

	cmd.Flags().StringVarP(&namespace, "namespace", "n", "default", "namespace to list events from")
	cmd.Flags().BoolVarP(&allNamespaces, "all-namespaces", "A", false, "list events across all namespaces")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of events to show (0 means all)")

	return cmd
}

// eventList converts events into a display listing sorted newest first.
func eventList(events []eventsv1.Event, limit int, now time.Time) output.List {
	sorted := make([]eventsv1.Event, len(events))
	copy(sorted, events)
	sort.Slice(sorted, func(i, j int) bool {
		return util.EventTime(&sorted[i]).After(util.EventTime(&sorted[j]))
	})
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	infos := make([]EventInfo, 0, len(sorted))
	rows := make([][]string, 0, len(sorted))

	for _, e := range sorted {
		info := EventInfo{
			Namespace: e.Namespace,
			LastSeen:  util.FormatAge(util.EventTime(&e), now),
			Type:      e.Type,
			Reason:    e.Reason,
			Object:    fmt.Sprintf("%s/%s", e.Regarding.Kind, e.Regarding.Name),
			Message:   e.Note,
		}
		infos = append(infos, info)
		rows = append(rows, []string{info.Namespace, info.LastSeen, info.Type, info.Reason, info.Object, info.Message})
	}

	return output.List{
		Headers: []string{"NAMESPACE", "LAST SEEN", "TYPE", "REASON", "OBJECT", "MESSAGE"},
		Rows:    rows,
		Items:   infos,
	}
}
