package contexts

import (
	"testing"

	"github.com/avikram/kubeportal/internal/config"
)

func TestContextList(t *testing.T) {
	infos := []config.ClusterInfo{
		{
			Name:    "arn:aws:eks:us-east-1:123456789012:cluster/prod-east",
			Context: "prod-east",
			Server:  "https://prod.example.com",
			User:    "prod-admin",
		},
		{
			Name:      "staging",
			Context:   "staging",
			Server:    "https://staging.example.com",
			Namespace: "apps",
			User:      "staging-admin",
			Current:   true,
		},
	}

	list := contextList(infos)

	if len(list.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(list.Rows))
	}

	// Active context sorts first and carries the marker.
	if list.Rows[0][0] != "*" || list.Rows[0][1] != "staging" {
		t.Errorf("expected active context first, got %v", list.Rows[0])
	}
	if list.Rows[1][0] != "" {
		t.Errorf("expected empty marker for inactive context, got %q", list.Rows[1][0])
	}

	// ARN cluster names are shortened for display.
	if list.Rows[1][2] != "prod-east" {
		t.Errorf("expected shortened cluster name 'prod-east', got %q", list.Rows[1][2])
	}

	if list.Rows[0][4] != "apps" {
		t.Errorf("expected namespace 'apps', got %q", list.Rows[0][4])
	}
}

func TestNewContextsCmd(t *testing.T) {
	cmd := NewContextsCmd()

	if cmd.Use != "contexts" {
		t.Errorf("expected Use 'contexts', got %q", cmd.Use)
	}

	found := false
	for _, sub := range cmd.Commands() {
		if sub.Name() == "current" {
			found = true
		}
	}
	if !found {
		t.Error("expected 'current' subcommand to be registered")
	}
}
