// Package kube is the cluster state accessor and mutation layer.
//
// It normalizes the heterogeneous Kubernetes resource kinds the portal
// works with into a uniform listing/describe/apply surface, degrades
// safely when no kubeconfig or cluster is reachable, and keeps mutation
// paths on their own freshly scoped API handles so a context switch on
// the read side never redirects an in-flight write.
//
// Error discipline: read-path failures are captured as the session's
// last warning and converted to safe defaults (empty slices, nil
// objects, sentinel strings); they never propagate to callers. Write
// paths surface failures: ApplyManifest returns errors, and the rollout
// restart returns an operator-facing description string.
package kube
