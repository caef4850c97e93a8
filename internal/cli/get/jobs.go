package get

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/avikram/kubeportal/internal/output"
	"github.com/avikram/kubeportal/internal/util"
	"github.com/spf13/cobra"
	batchv1 "k8s.io/api/batch/v1"
)

// JobInfo represents job information for display
type JobInfo struct {
	Namespace   string `json:"namespace"`
	Name        string `json:"name"`
	Completions string `json:"completions"`
	Duration    string `json:"duration"`
	Age         string `json:"age"`
}

func newGetJobsCmd() *cobra.Command {
	var (
		namespace     string
		allNamespaces bool
	)

	cmd := &cobra.Command{
		Use:     "jobs",
		Aliases: []string{"job"},
		Short:   "Get jobs",
		Example: `  # Get jobs in the default namespace
  kubeportal get jobs

  # Get jobs in all namespaces
  kubeportal get jobs -A`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.Default()
			catalog, session := newCatalog(logger)

			jobs := catalog.Jobs(cmd.Context(), targetNamespace(namespace, allNamespaces))
			warnIfDegraded(session, logger)

			return render(jobList(jobs, time.Now()))
		},
	}

	cmd.Flags().StringVarP(&namespace, "namespace", "n", "default", "namespace to list jobs from")
	cmd.Flags().BoolVarP(&allNamespaces, "all-namespaces", "A", false, "list jobs across all namespaces")

	return cmd
}

// jobList converts jobs into a display listing.
func jobList(jobs []batchv1.Job, now time.Time) output.List {
	infos := make([]JobInfo, 0, len(jobs))
	rows := make([][]string, 0, len(jobs))

	for _, j := range jobs {
		completions := int32(1)
		if j.Spec.Completions != nil {
			completions = *j.Spec.Completions
		}
		info := JobInfo{
			Namespace:   j.Namespace,
			Name:        j.Name,
			Completions: fmt.Sprintf("%d/%d", j.Status.Succeeded, completions),
			Duration:    jobDuration(&j, now),
			Age:         util.FormatAge(j.CreationTimestamp.Time, now),
		}
		infos = append(infos, info)
		rows = append(rows, []string{info.Namespace, info.Name, info.Completions, info.Duration, info.Age})
	}

	return output.List{
		Headers: []string{"NAMESPACE", "NAME", "COMPLETIONS", "DURATION", "AGE"},
		Rows:    rows,
		Items:   infos,
	}
}

// jobDuration reports how long the job ran, or has been running.
func jobDuration(job *batchv1.Job, now time.Time) string {
	if job.Status.StartTime == nil {
		return "<none>"
	}
	end := now
	if job.Status.CompletionTime != nil {
		end = job.Status.CompletionTime.Time
	}
	return util.FormatAge(job.Status.StartTime.Time, end)
}
