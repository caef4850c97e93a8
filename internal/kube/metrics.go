package kube

import (
	"context"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	metricsclient "k8s.io/metrics/pkg/client/clientset/versioned"
)

// NodeMetrics is one node's usage snapshot joined with its scheduling
// load and health conditions, in display units.
type NodeMetrics struct {
	Name            string
	CPUMillicores   int64
	MemoryMebibytes int64
	PodCount        int
	KubeletHealth   string
	KarpenterHealth string
}

// PodMetrics is one pod's usage summed across its containers.
type PodMetrics struct {
	Name            string
	Namespace       string
	CPUMillicores   int64
	MemoryMebibytes int64
}

// MetricsReader joins metrics-server usage samples with node and pod
// state from the catalog. Like the catalog it is total: when the
// metrics API is absent or a call fails it returns empty slices and
// records the failure on the session.
type MetricsReader struct {
	session *Session
	catalog *Catalog
	client  metricsclient.Interface
}

// NewMetricsReader builds a reader over the session. On a degraded
// session the reader carries no metrics client and reports nothing.
func NewMetricsReader(session *Session, catalog *Catalog) *MetricsReader {
	r := &MetricsReader{session: session, catalog: catalog}
	if !session.Degraded() && session.RestConfig != nil {
		if mc, err := metricsclient.NewForConfig(session.RestConfig); err == nil {
			r.client = mc
		}
	}
	return r
}

// NodeMetrics returns a usage row per node, each joined with the
// node's pod count and the Ready and KarpenterInitialized conditions.
func (r *MetricsReader) NodeMetrics(ctx context.Context) []NodeMetrics {
	metrics := []NodeMetrics{}
	if r.client == nil || r.session.Degraded() {
		return metrics
	}
	list, err := r.client.MetricsV1beta1().NodeMetricses().List(ctx, metav1.ListOptions{})
	if err != nil {
		r.session.recordWarning(fmt.Errorf("node metrics unavailable: %w", err))
		return metrics
	}
	for _, item := range list.Items {
		metrics = append(metrics, NodeMetrics{
			Name:            item.Name,
			CPUMillicores:   r.usageValue(item.Usage, corev1.ResourceCPU),
			MemoryMebibytes: r.usageValue(item.Usage, corev1.ResourceMemory),
			PodCount:        len(r.catalog.Pods(ctx, "", "spec.nodeName="+item.Name)),
			KubeletHealth:   r.nodeCondition(ctx, item.Name, "Ready"),
			KarpenterHealth: r.nodeCondition(ctx, item.Name, "KarpenterInitialized"),
		})
	}
	return metrics
}

// PodMetrics returns a usage row per pod in the namespace, all
// namespaces when empty, summed across containers.
func (r *MetricsReader) PodMetrics(ctx context.Context, namespace string) []PodMetrics {
	metrics := []PodMetrics{}
	if r.client == nil || r.session.Degraded() {
		return metrics
	}
	list, err := r.client.MetricsV1beta1().PodMetricses(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		r.session.recordWarning(fmt.Errorf("pod metrics unavailable: %w", err))
		return metrics
	}
	for _, item := range list.Items {
		row := PodMetrics{Name: item.Name, Namespace: item.Namespace}
		for _, container := range item.Containers {
			row.CPUMillicores += r.usageValue(container.Usage, corev1.ResourceCPU)
			row.MemoryMebibytes += r.usageValue(container.Usage, corev1.ResourceMemory)
		}
		metrics = append(metrics, row)
	}
	return metrics
}

func (r *MetricsReader) usageValue(usage corev1.ResourceList, resource corev1.ResourceName) int64 {
	quantity, ok := usage[resource]
	if !ok {
		return 0
	}
	v, err := ParseQuantity(quantity.String())
	if err != nil {
		r.session.recordWarning(err)
		return 0
	}
	return v
}

// nodeCondition reads one status condition off a node, "Unknown" when
// the node or the condition is missing.
func (r *MetricsReader) nodeCondition(ctx context.Context, nodeName, conditionType string) string {
	node := r.catalog.Node(ctx, nodeName)
	if node == nil {
		return "Unknown"
	}
	for _, cond := range node.Status.Conditions {
		if string(cond.Type) == conditionType {
			return string(cond.Status)
		}
	}
	return "Unknown"
}
