package kube

import (
	"context"
	"encoding/json"
	"fmt"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/kubernetes"
)

// Kind enumerates the manifest kinds the portal can describe and apply.
type Kind string

const (
	KindDeployment  Kind = "Deployment"
	KindStatefulSet Kind = "StatefulSet"
	KindService     Kind = "Service"
	KindConfigMap   Kind = "ConfigMap"
	KindSecret      Kind = "Secret"
)

// SupportedKinds returns the closed set of kinds in display order.
func SupportedKinds() []Kind {
	return []Kind{KindDeployment, KindStatefulSet, KindService, KindConfigMap, KindSecret}
}

// UnsupportedKindError reports a manifest kind outside the supported set.
type UnsupportedKindError struct {
	Kind string
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("unsupported kind %q, supported kinds are %v", e.Kind, SupportedKinds())
}

// ParseKind validates a kind string against the supported set.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindDeployment, KindStatefulSet, KindService, KindConfigMap, KindSecret:
		return Kind(s), nil
	}
	return "", &UnsupportedKindError{Kind: s}
}

// kindOps carries the typed read/patch/create verbs for one supported
// kind, so apply and describe paths stay a single switch away from the
// generated clientset instead of spreading kind dispatch everywhere.
type kindOps struct {
	apiVersion string
	read       func(ctx context.Context, cs kubernetes.Interface, namespace, name string) (runtime.Object, error)
	patch      func(ctx context.Context, cs kubernetes.Interface, namespace, name string, data []byte) error
	create     func(ctx context.Context, cs kubernetes.Interface, namespace string, data []byte) error
}

func opsFor(k Kind) kindOps {
	switch k {
	case KindDeployment:
		return kindOps{
			apiVersion: "apps/v1",
			read: func(ctx context.Context, cs kubernetes.Interface, namespace, name string) (runtime.Object, error) {
				return cs.AppsV1().Deployments(namespace).Get(ctx, name, metav1.GetOptions{})
			},
			patch: func(ctx context.Context, cs kubernetes.Interface, namespace, name string, data []byte) error {
				_, err := cs.AppsV1().Deployments(namespace).Patch(ctx, name, types.StrategicMergePatchType, data, metav1.PatchOptions{})
				return err
			},
			create: func(ctx context.Context, cs kubernetes.Interface, namespace string, data []byte) error {
				var obj appsv1.Deployment
				if err := json.Unmarshal(data, &obj); err != nil {
					return fmt.Errorf("failed to decode Deployment: %w", err)
				}
				_, err := cs.AppsV1().Deployments(namespace).Create(ctx, &obj, metav1.CreateOptions{})
				return err
			},
		}
	case KindStatefulSet:
		return kindOps{
			apiVersion: "apps/v1",
			read: func(ctx context.Context, cs kubernetes.Interface, namespace, name string) (runtime.Object, error) {
				return cs.AppsV1().StatefulSets(namespace).Get(ctx, name, metav1.GetOptions{})
			},
			patch: func(ctx context.Context, cs kubernetes.Interface, namespace, name string, data []byte) error {
				_, err := cs.AppsV1().StatefulSets(namespace).Patch(ctx, name, types.StrategicMergePatchType, data, metav1.PatchOptions{})
				return err
			},
			create: func(ctx context.Context, cs kubernetes.Interface, namespace string, data []byte) error {
				var obj appsv1.StatefulSet
				if err := json.Unmarshal(data, &obj); err != nil {
					return fmt.Errorf("failed to decode StatefulSet: %w", err)
				}
				_, err := cs.AppsV1().StatefulSets(namespace).Create(ctx, &obj, metav1.CreateOptions{})
				return err
			},
		}
	case KindService:
		return kindOps{
			apiVersion: "v1",
			read: func(ctx context.Context, cs kubernetes.Interface, namespace, name string) (runtime.Object, error) {
				return cs.CoreV1().Services(namespace).Get(ctx, name, metav1.GetOptions{})
			},
			patch: func(ctx context.Context, cs kubernetes.Interface, namespace, name string, data []byte) error {
				_, err := cs.CoreV1().Services(namespace).Patch(ctx, name, types.StrategicMergePatchType, data, metav1.PatchOptions{})
				return err
			},
			create: func(ctx context.Context, cs kubernetes.Interface, namespace string, data []byte) error {
				var obj corev1.Service
				if err := json.Unmarshal(data, &obj); err != nil {
					return fmt.Errorf("failed to decode Service: %w", err)
				}
				_, err := cs.CoreV1().Services(namespace).Create(ctx, &obj, metav1.CreateOptions{})
				return err
			},
		}
	case KindConfigMap:
		return kindOps{
			apiVersion: "v1",
			read: func(ctx context.Context, cs kubernetes.Interface, namespace, name string) (runtime.Object, error) {
				return cs.CoreV1().ConfigMaps(namespace).Get(ctx, name, metav1.GetOptions{})
			},
			patch: func(ctx context.Context, cs kubernetes.Interface, namespace, name string, data []byte) error {
				_, err := cs.CoreV1().ConfigMaps(namespace).Patch(ctx, name, types.StrategicMergePatchType, data, metav1.PatchOptions{})
				return err
			},
			create: func(ctx context.Context, cs kubernetes.Interface, namespace string, data []byte) error {
				var obj corev1.ConfigMap
				if err := json.Unmarshal(data, &obj); err != nil {
					return fmt.Errorf("failed to decode ConfigMap: %w", err)
				}
				_, err := cs.CoreV1().ConfigMaps(namespace).Create(ctx, &obj, metav1.CreateOptions{})
				return err
			},
		}
	case KindSecret:
		return kindOps{
			apiVersion: "v1",
			read: func(ctx context.Context, cs kubernetes.Interface, namespace, name string) (runtime.Object, error) {
				return cs.CoreV1().Secrets(namespace).Get(ctx, name, metav1.GetOptions{})
			},
			patch: func(ctx context.Context, cs kubernetes.Interface, namespace, name string, data []byte) error {
				_, err := cs.CoreV1().Secrets(namespace).Patch(ctx, name, types.StrategicMergePatchType, data, metav1.PatchOptions{})
				return err
			},
			create: func(ctx context.Context, cs kubernetes.Interface, namespace string, data []byte) error {
				var obj corev1.Secret
				if err := json.Unmarshal(data, &obj); err != nil {
					return fmt.Errorf("failed to decode Secret: %w", err)
				}
				_, err := cs.CoreV1().Secrets(namespace).Create(ctx, &obj, metav1.CreateOptions{})
				return err
			},
		}
	}
	// ParseKind guards every caller; reaching here is a programming error.
	panic(fmt.Sprintf("no operations registered for kind %q", k))
}
