package kube

import (
	"context"
	"fmt"

	appsv1 "k8s.io/api/apps/v1"
	batchv1 "k8s.io/api/batch/v1"
	corev1 "k8s.io/api/core/v1"
	eventsv1 "k8s.io/api/events/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/yaml"
)

// Degraded-session sentinels shown in place of cluster content.
const (
	noKubeconfigLogs     = "No kubeconfig loaded; cannot fetch logs."
	noKubeconfigManifest = "No kubeconfig loaded; unable to load manifest."
)

// Catalog exposes uniform read access to the resource kinds the portal
// lists. Every accessor is total: on a degraded session or a failed API
// call it returns an empty result and stashes the failure on the
// session, so rendering code never branches on errors.
type Catalog struct {
	session *Session
}

// NewCatalog builds a catalog over the given session snapshot.
func NewCatalog(session *Session) *Catalog {
	return &Catalog{session: session}
}

// Pods lists pods in the namespace, all namespaces when empty. A field
// selector such as "spec.nodeName=<node>" narrows the listing.
func (c *Catalog) Pods(ctx context.Context, namespace, fieldSelector string) []corev1.Pod {
	return guard(c.session, []corev1.Pod{}, func() ([]corev1.Pod, error) {
		list, err := c.session.Clientset.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{FieldSelector: fieldSelector})
		if err != nil {
			return nil, err
		}
		return list.Items, nil
	})
}

// Deployments lists deployments in the namespace, all when empty.
func (c *Catalog) Deployments(ctx context.Context, namespace string) []appsv1.Deployment {
	return guard(c.session, []appsv1.Deployment{}, func() ([]appsv1.Deployment, error) {
		list, err := c.session.Clientset.AppsV1().Deployments(namespace).List(ctx, metav1.ListOptions{})
		if err != nil {
			return nil, err
		}
		return list.Items, nil
	})
}

// StatefulSets lists stateful sets in the namespace, all when empty.
func (c *Catalog) StatefulSets(ctx context.Context, namespace string) []appsv1.StatefulSet {
	return guard(c.session, []appsv1.StatefulSet{}, func() ([]appsv1.StatefulSet, error) {
		list, err := c.session.Clientset.AppsV1().StatefulSets(namespace).List(ctx, metav1.ListOptions{})
		if err != nil {
			return nil, err
		}
		return list.Items, nil
	})
}

// Jobs lists jobs in the namespace, all when empty.
func (c *Catalog) Jobs(ctx context.Context, namespace string) []batchv1.Job {
	return guard(c.session, []batchv1.Job{}, func() ([]batchv1.Job, error) {
		list, err := c.session.Clientset.BatchV1().Jobs(namespace).List(ctx, metav1.ListOptions{})
		if err != nil {
			return nil, err
		}
		return list.Items, nil
	})
}

// Services lists services in the namespace, all when empty.
func (c *Catalog) Services(ctx context.Context, namespace string) []corev1.Service {
	return guard(c.session, []corev1.Service{}, func() ([]corev1.Service, error) {
		list, err := c.session.Clientset.CoreV1().Services(namespace).List(ctx, metav1.ListOptions{})
		if err != nil {
			return nil, err
		}
		return list.Items, nil
	})
}

// ConfigMaps lists config maps in the namespace, all when empty.
func (c *Catalog) ConfigMaps(ctx context.Context, namespace string) []corev1.ConfigMap {
	return guard(c.session, []corev1.ConfigMap{}, func() ([]corev1.ConfigMap, error) {
		list, err := c.session.Clientset.CoreV1().ConfigMaps(namespace).List(ctx, metav1.ListOptions{})
		if err != nil {
			return nil, err
		}
		return list.Items, nil
	})
}

// Secrets lists secrets in the namespace, all when empty. Values are
// left opaque; the output layer decides what to reveal.
func (c *Catalog) Secrets(ctx context.Context, namespace string) []corev1.Secret {
	return guard(c.session, []corev1.Secret{}, func() ([]corev1.Secret, error) {
		list, err := c.session.Clientset.CoreV1().Secrets(namespace).List(ctx, metav1.ListOptions{})
		if err != nil {
			return nil, err
		}
		return list.Items, nil
	})
}

// Namespaces lists every namespace in the cluster.
func (c *Catalog) Namespaces(ctx context.Context) []corev1.Namespace {
	return guard(c.session, []corev1.Namespace{}, func() ([]corev1.Namespace, error) {
		list, err := c.session.Clientset.CoreV1().Namespaces().List(ctx, metav1.ListOptions{})
		if err != nil {
			return nil, err
		}
		return list.Items, nil
	})
}

// Events lists events in the namespace, all when empty.
func (c *Catalog) Events(ctx context.Context, namespace string) []eventsv1.Event {
	return guard(c.session, []eventsv1.Event{}, func() ([]eventsv1.Event, error) {
		list, err := c.session.Clientset.EventsV1().Events(namespace).List(ctx, metav1.ListOptions{})
		if err != nil {
			return nil, err
		}
		return list.Items, nil
	})
}

// Nodes lists every node in the cluster.
func (c *Catalog) Nodes(ctx context.Context) []corev1.Node {
	return guard(c.session, []corev1.Node{}, func() ([]corev1.Node, error) {
		list, err := c.session.Clientset.CoreV1().Nodes().List(ctx, metav1.ListOptions{})
		if err != nil {
			return nil, err
		}
		return list.Items, nil
	})
}

// Node fetches a single node by name, nil when unreachable or missing.
func (c *Catalog) Node(ctx context.Context, name string) *corev1.Node {
	return guard(c.session, (*corev1.Node)(nil), func() (*corev1.Node, error) {
		return c.session.Clientset.CoreV1().Nodes().Get(ctx, name, metav1.GetOptions{})
	})
}

// Logs returns the tail of a pod's log stream as display text. Failures
// come back as operator-facing sentinel strings, never errors, so the
// log pane always has something to show.
func (c *Catalog) Logs(ctx context.Context, namespace, podName, container string, tailLines int64) string {
	if c.session.Degraded() {
		return noKubeconfigLogs
	}
	opts := &corev1.PodLogOptions{TailLines: &tailLines}
	if container != "" {
		opts.Container = container
	}
	data, err := c.session.Clientset.CoreV1().Pods(namespace).GetLogs(podName, opts).DoRaw(ctx)
	if err != nil {
		c.session.recordWarning(err)
		return fmt.Sprintf("Unable to fetch logs: %v", err)
	}
	return string(data)
}

// ManifestYAML renders the live object of a supported kind as YAML with
// the server-maintained status subtree stripped, suitable for editing
// and re-applying. Failures come back as sentinel strings.
func (c *Catalog) ManifestYAML(ctx context.Context, kind Kind, namespace, name string) string {
	if c.session.Degraded() {
		return noKubeconfigManifest
	}
	obj, err := opsFor(kind).read(ctx, c.session.Clientset, namespace, name)
	if err != nil {
		c.session.recordWarning(err)
		return fmt.Sprintf("Unable to load manifest: %v", err)
	}
	fields, err := runtime.DefaultUnstructuredConverter.ToUnstructured(obj)
	if err != nil {
		c.session.recordWarning(err)
		return fmt.Sprintf("Unable to load manifest: %v", err)
	}
	delete(fields, "status")
	// Typed Get responses omit TypeMeta; restore it so the document
	// round-trips through apply.
	fields["apiVersion"] = opsFor(kind).apiVersion
	fields["kind"] = string(kind)
	out, err := yaml.Marshal(fields)
	if err != nil {
		c.session.recordWarning(err)
		return fmt.Sprintf("Unable to load manifest: %v", err)
	}
	return string(out)
}
