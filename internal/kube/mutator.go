package kube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/types"
	apiyaml "k8s.io/apimachinery/pkg/util/yaml"
	"k8s.io/client-go/kubernetes"

	"github.com/avikram/kubeportal/internal/config"
	"github.com/avikram/kubeportal/internal/util"
)

// restartedAtAnnotation is the pod template annotation kubectl uses for
// rollout restarts; bumping it triggers a rolling replacement.
const restartedAtAnnotation = "kubectl.kubernetes.io/restartedAt"

// ApplyManifest applies a possibly multi-document YAML manifest to the
// named context using a freshly built API handle, so a concurrent
// context switch on the read-side session cannot redirect the write.
// Documents missing a namespace get defaultNamespace. An unsupported
// kind anywhere in the manifest fails the whole apply before the first
// API call.
func ApplyManifest(ctx context.Context, manifest, defaultNamespace, contextName, kubeconfigPath string) error {
	cs, err := buildClientset(kubeconfigPath, contextName)
	if err != nil {
		return util.WrapContextError(contextName, fmt.Errorf("%w: %v", util.ErrConnectionFailed, err))
	}
	return applyDocuments(ctx, cs, manifest, defaultNamespace)
}

func applyDocuments(ctx context.Context, cs kubernetes.Interface, manifest, defaultNamespace string) error {
	docs, err := decodeDocuments(manifest)
	if err != nil {
		return err
	}

	// Resolve every document's kind up front: a bad kind in document
	// three should not leave documents one and two half-applied.
	kinds := make([]Kind, len(docs))
	for i, doc := range docs {
		kind, err := ParseKind(doc.GetKind())
		if err != nil {
			return err
		}
		kinds[i] = kind
		if doc.GetNamespace() == "" {
			doc.SetNamespace(defaultNamespace)
		}
	}

	for i, doc := range docs {
		if err := applyDocument(ctx, cs, kinds[i], doc); err != nil {
			return err
		}
	}
	return nil
}

func applyDocument(ctx context.Context, cs kubernetes.Interface, kind Kind, doc *unstructured.Unstructured) error {
	name := doc.GetName()
	namespace := doc.GetNamespace()
	data, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to encode %s %s/%s: %w", kind, namespace, name, err)
	}

	ops := opsFor(kind)
	if _, err := ops.read(ctx, cs, namespace, name); err == nil {
		if err := ops.patch(ctx, cs, namespace, name, data); err != nil {
			return fmt.Errorf("failed to patch %s %s/%s: %w", kind, namespace, name, err)
		}
		return nil
	}
	// Any read failure routes to create; a transient read error then
	// surfaces as a distinct create failure instead of being hidden.
	if err := ops.create(ctx, cs, namespace, data); err != nil {
		return fmt.Errorf("failed to create %s %s/%s: %w", kind, namespace, name, err)
	}
	return nil
}

func decodeDocuments(manifest string) ([]*unstructured.Unstructured, error) {
	decoder := apiyaml.NewYAMLOrJSONDecoder(strings.NewReader(manifest), 4096)
	var docs []*unstructured.Unstructured
	for {
		// Decode into a plain map rather than Unstructured directly:
		// blank documents between separators decode to nil here, while
		// Unstructured would reject them with a missing-kind error.
		var raw map[string]interface{}
		err := decoder.Decode(&raw)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode manifest: %w", err)
		}
		if len(raw) == 0 {
			continue
		}
		docs = append(docs, &unstructured.Unstructured{Object: raw})
	}
	return docs, nil
}

// RestartDeployment triggers a rolling restart of a deployment in the
// named context. The result is an operator-facing description string:
// this path reports outcomes, it does not return errors.
func RestartDeployment(ctx context.Context, name, namespace, contextName, kubeconfigPath string) string {
	cs, err := buildClientset(kubeconfigPath, contextName)
	if err != nil {
		return fmt.Sprintf("Deployment fetch failed: %v", err)
	}
	return restartDeployment(ctx, cs, name, namespace)
}

func restartDeployment(ctx context.Context, cs kubernetes.Interface, name, namespace string) string {
	deployment, err := cs.AppsV1().Deployments(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return fmt.Sprintf("Deployment fetch failed: %v", err)
	}

	if deployment.Spec.Template.Annotations == nil {
		deployment.Spec.Template.Annotations = map[string]string{}
	}
	deployment.Spec.Template.Annotations[restartedAtAnnotation] = time.Now().UTC().Format(time.RFC3339)

	data, err := json.Marshal(deployment)
	if err != nil {
		return fmt.Sprintf("Deployment restart failed: %v", err)
	}
	if _, err := cs.AppsV1().Deployments(namespace).Patch(ctx, name, types.StrategicMergePatchType, data, metav1.PatchOptions{}); err != nil {
		return fmt.Sprintf("Deployment restart failed: %v", err)
	}
	return fmt.Sprintf("Deployment %s restarted", name)
}

// buildClientset constructs a one-shot API handle for the given
// kubeconfig path and context, independent of any shared session.
func buildClientset(kubeconfigPath, contextName string) (kubernetes.Interface, error) {
	loader := config.NewKubeconfigLoader(kubeconfigPath)
	restConfig, err := loader.BuildClientConfig(contextName)
	if err != nil {
		return nil, err
	}
	return kubernetes.NewForConfig(restConfig)
}
