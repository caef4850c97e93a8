package manifest

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewManifestCmd(t *testing.T) {
	cmd := NewManifestCmd()

	if cmd.Use != "manifest KIND NAME" {
		t.Errorf("unexpected Use %q", cmd.Use)
	}
	if !strings.Contains(cmd.Long, "Deployment") {
		t.Error("expected supported kinds in long help")
	}
}

func TestManifestRejectsUnsupportedKind(t *testing.T) {
	cmd := NewManifestCmd()
	cmd.SetArgs([]string{"CronJob", "backup"})

	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(output)

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error for unsupported kind")
	}
	if !strings.Contains(err.Error(), "unsupported kind") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestKindNames(t *testing.T) {
	names := kindNames()

	for _, want := range []string{"Deployment", "StatefulSet", "Service", "ConfigMap", "Secret"} {
		if !strings.Contains(names, want) {
			t.Errorf("expected kind list to contain %q, got %q", want, names)
		}
	}
}
