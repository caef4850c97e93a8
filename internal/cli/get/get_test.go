package get

import (
	"context"
	"testing"
	"time"

	"github.com/avikram/kubeportal/internal/kube"
	appsv1 "k8s.io/api/apps/v1"
	batchv1 "k8s.io/api/batch/v1"
	corev1 "k8s.io/api/core/v1"
	eventsv1 "k8s.io/api/events/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"
)

// createTestPod creates a pod with the given readiness for testing
func createTestPod(name, namespace string, phase corev1.PodPhase, ready, total int) corev1.Pod {
	containers := make([]corev1.Container, total)
	statuses := make([]corev1.ContainerStatus, total)
	for i := 0; i < total; i++ {
		containers[i] = corev1.Container{Name: "app"}
		statuses[i] = corev1.ContainerStatus{Ready: i < ready, RestartCount: 2}
	}

	return corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{
			Name:              name,
			Namespace:         namespace,
			CreationTimestamp: metav1.NewTime(time.Now().Add(-2 * time.Hour)),
		},
		Spec: corev1.PodSpec{
			Containers: containers,
			NodeName:   "worker-1",
		},
		Status: corev1.PodStatus{
			Phase:             phase,
			ContainerStatuses: statuses,
		},
	}
}

func TestPodList(t *testing.T) {
	now := time.Now()
	pods := []corev1.Pod{
		createTestPod("web-1", "default", corev1.PodRunning, 1, 1),
		createTestPod("web-2", "default", corev1.PodPending, 0, 2),
	}

	list := podList(pods, now)

	if len(list.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(list.Rows))
	}
	if len(list.Headers) != 7 {
		t.Errorf("expected 7 headers, got %d", len(list.Headers))
	}

	row := list.Rows[0]
	if row[1] != "web-1" {
		t.Errorf("expected name 'web-1', got %q", row[1])
	}
	if row[2] != "1/1" {
		t.Errorf("expected ready '1/1', got %q", row[2])
	}
	if row[3] != "Running" {
		t.Errorf("expected status 'Running', got %q", row[3])
	}
	if row[4] != "2" {
		t.Errorf("expected restarts '2', got %q", row[4])
	}
	if row[6] != "worker-1" {
		t.Errorf("expected node 'worker-1', got %q", row[6])
	}

	infos, ok := list.Items.([]PodInfo)
	if !ok {
		t.Fatalf("expected Items to be []PodInfo, got %T", list.Items)
	}
	if infos[1].Ready != "0/2" {
		t.Errorf("expected second pod ready '0/2', got %q", infos[1].Ready)
	}
}

// TestPodListThroughCatalog exercises the same path the command runs,
// against a fake clientset.
func TestPodListThroughCatalog(t *testing.T) {
	pod := createTestPod("api-1", "apps", corev1.PodRunning, 1, 1)
	session := &kube.Session{Clientset: fake.NewSimpleClientset(&pod)}
	catalog := kube.NewCatalog(session)

	pods := catalog.Pods(context.Background(), "apps", "")
	list := podList(pods, time.Now())

	if len(list.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(list.Rows))
	}
	if list.Rows[0][0] != "apps" || list.Rows[0][1] != "api-1" {
		t.Errorf("unexpected row %v", list.Rows[0])
	}
}

func TestDeploymentList(t *testing.T) {
	replicas := int32(3)
	deployments := []appsv1.Deployment{
		{
			ObjectMeta: metav1.ObjectMeta{Name: "web", Namespace: "default"},
			Spec:       appsv1.DeploymentSpec{Replicas: &replicas},
			Status: appsv1.DeploymentStatus{
				ReadyReplicas:     2,
				UpdatedReplicas:   3,
				AvailableReplicas: 2,
			},
		},
	}

	list := deploymentList(deployments, time.Now())

	if len(list.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(list.Rows))
	}
	row := list.Rows[0]
	if row[2] != "2/3" {
		t.Errorf("expected ready '2/3', got %q", row[2])
	}
	if row[3] != "3" || row[4] != "2" {
		t.Errorf("expected up-to-date 3 and available 2, got %q and %q", row[3], row[4])
	}
}

func TestStatefulSetList(t *testing.T) {
	replicas := int32(2)
	sets := []appsv1.StatefulSet{
		{
			ObjectMeta: metav1.ObjectMeta{Name: "postgres", Namespace: "databases"},
			Spec:       appsv1.StatefulSetSpec{Replicas: &replicas},
			Status:     appsv1.StatefulSetStatus{ReadyReplicas: 2},
		},
	}

	list := statefulSetList(sets, time.Now())

	if len(list.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(list.Rows))
	}
	if list.Rows[0][2] != "2/2" {
		t.Errorf("expected ready '2/2', got %q", list.Rows[0][2])
	}
}

func TestJobList(t *testing.T) {
	completions := int32(1)
	start := metav1.NewTime(time.Now().Add(-10 * time.Minute))
	end := metav1.NewTime(time.Now().Add(-5 * time.Minute))

	tests := []struct {
		name            string
		job             batchv1.Job
		wantCompletions string
		wantDuration    string
	}{
		{
			name: "completed job",
			job: batchv1.Job{
				ObjectMeta: metav1.ObjectMeta{Name: "migrate", Namespace: "apps"},
				Spec:       batchv1.JobSpec{Completions: &completions},
				Status: batchv1.JobStatus{
					Succeeded:      1,
					StartTime:      &start,
					CompletionTime: &end,
				},
			},
			wantCompletions: "1/1",
			wantDuration:    "5m",
		},
		{
			name: "job not started",
			job: batchv1.Job{
				ObjectMeta: metav1.ObjectMeta{Name: "pending", Namespace: "apps"},
			},
			wantCompletions: "0/1",
			wantDuration:    "<none>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := jobList([]batchv1.Job{tt.job}, time.Now())
			row := list.Rows[0]
			if row[2] != tt.wantCompletions {
				t.Errorf("expected completions %q, got %q", tt.wantCompletions, row[2])
			}
			if row[3] != tt.wantDuration {
				t.Errorf("expected duration %q, got %q", tt.wantDuration, row[3])
			}
		})
	}
}

func TestServiceList(t *testing.T) {
	services := []corev1.Service{
		{
			ObjectMeta: metav1.ObjectMeta{Name: "web", Namespace: "default"},
			Spec: corev1.ServiceSpec{
				Type:      corev1.ServiceTypeNodePort,
				ClusterIP: "10.0.0.1",
				Ports: []corev1.ServicePort{
					{Port: 80, NodePort: 30080, Protocol: corev1.ProtocolTCP},
				},
			},
		},
		{
			ObjectMeta: metav1.ObjectMeta{Name: "ingress", Namespace: "default"},
			Spec: corev1.ServiceSpec{
				Type:      corev1.ServiceTypeLoadBalancer,
				ClusterIP: "10.0.0.2",
				Ports:     []corev1.ServicePort{{Port: 443, Protocol: corev1.ProtocolTCP}},
			},
			Status: corev1.ServiceStatus{
				LoadBalancer: corev1.LoadBalancerStatus{
					Ingress: []corev1.LoadBalancerIngress{{IP: "203.0.113.10"}},
				},
			},
		},
	}

	list := serviceList(services, time.Now())

	if len(list.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(list.Rows))
	}
	if list.Rows[0][5] != "80:30080/TCP" {
		t.Errorf("expected NodePort notation, got %q", list.Rows[0][5])
	}
	if list.Rows[0][4] != "<none>" {
		t.Errorf("expected no external IP, got %q", list.Rows[0][4])
	}
	if list.Rows[1][4] != "203.0.113.10" {
		t.Errorf("expected load balancer IP, got %q", list.Rows[1][4])
	}
}

func TestSecretListShowsNoValues(t *testing.T) {
	secrets := []corev1.Secret{
		{
			ObjectMeta: metav1.ObjectMeta{Name: "registry", Namespace: "apps"},
			Type:       corev1.SecretTypeDockerConfigJson,
			Data:       map[string][]byte{".dockerconfigjson": []byte("hunter2")},
		},
	}

	list := secretList(secrets, time.Now())

	if len(list.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(list.Rows))
	}
	for _, cell := range list.Rows[0] {
		if cell == "hunter2" {
			t.Fatal("secret value leaked into the listing")
		}
	}
	if list.Rows[0][3] != "1" {
		t.Errorf("expected data count '1', got %q", list.Rows[0][3])
	}
}

func TestEventListSortsNewestFirst(t *testing.T) {
	now := time.Now()
	events := []eventsv1.Event{
		{
			ObjectMeta: metav1.ObjectMeta{Name: "old", Namespace: "default"},
			EventTime:  metav1.NewMicroTime(now.Add(-time.Hour)),
			Type:       "Normal",
			Reason:     "Scheduled",
			Regarding:  corev1.ObjectReference{Kind: "Pod", Name: "web-1"},
			Note:       "Successfully assigned",
		},
		{
			ObjectMeta: metav1.ObjectMeta{Name: "new", Namespace: "default"},
			EventTime:  metav1.NewMicroTime(now.Add(-time.Minute)),
			Type:       "Warning",
			Reason:     "BackOff",
			Regarding:  corev1.ObjectReference{Kind: "Pod", Name: "web-2"},
			Note:       "Back-off restarting failed container",
		},
	}

	list := eventList(events, 0, now)

	if len(list.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(list.Rows))
	}
	if list.Rows[0][3] != "BackOff" {
		t.Errorf("expected newest event first, got reason %q", list.Rows[0][3])
	}
	if list.Rows[0][4] != "Pod/web-2" {
		t.Errorf("expected object 'Pod/web-2', got %q", list.Rows[0][4])
	}

	limited := eventList(events, 1, now)
	if len(limited.Rows) != 1 {
		t.Errorf("expected limit to cap rows at 1, got %d", len(limited.Rows))
	}
}

func TestNodeList(t *testing.T) {
	nodes := []corev1.Node{
		{
			ObjectMeta: metav1.ObjectMeta{
				Name: "control-1",
				Labels: map[string]string{
					"node-role.kubernetes.io/control-plane": "",
				},
			},
			Status: corev1.NodeStatus{
				Conditions: []corev1.NodeCondition{
					{Type: corev1.NodeReady, Status: corev1.ConditionTrue},
				},
				NodeInfo: corev1.NodeSystemInfo{KubeletVersion: "v1.31.0"},
			},
		},
		{
			ObjectMeta: metav1.ObjectMeta{Name: "worker-1"},
			Status: corev1.NodeStatus{
				Conditions: []corev1.NodeCondition{
					{Type: corev1.NodeReady, Status: corev1.ConditionFalse},
				},
				NodeInfo: corev1.NodeSystemInfo{KubeletVersion: "v1.31.0"},
			},
		},
	}

	list := nodeList(nodes, time.Now())

	if list.Rows[0][1] != "Ready" || list.Rows[0][2] != "control-plane" {
		t.Errorf("unexpected control plane row %v", list.Rows[0])
	}
	if list.Rows[1][1] != "NotReady" || list.Rows[1][2] != "<none>" {
		t.Errorf("unexpected worker row %v", list.Rows[1])
	}
}

func TestTargetNamespace(t *testing.T) {
	tests := []struct {
		name          string
		namespace     string
		allNamespaces bool
		want          string
	}{
		{"explicit namespace", "kube-system", false, "kube-system"},
		{"all namespaces overrides", "kube-system", true, ""},
		{"default namespace", "default", false, "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := targetNamespace(tt.namespace, tt.allNamespaces); got != tt.want {
				t.Errorf("targetNamespace(%q, %v) = %q, want %q", tt.namespace, tt.allNamespaces, got, tt.want)
			}
		})
	}
}
