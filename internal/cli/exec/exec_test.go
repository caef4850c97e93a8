package exec

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewExecCmd(t *testing.T) {
	cmd := NewExecCmd()

	if !strings.HasPrefix(cmd.Use, "exec") {
		t.Errorf("unexpected Use %q", cmd.Use)
	}
	if !strings.Contains(cmd.Long, "KUBECONFIG") {
		t.Error("expected KUBECONFIG in long help")
	}
	if !strings.Contains(cmd.Long, "124") {
		t.Error("expected timeout exit code in long help")
	}
}

func TestExitStatus(t *testing.T) {
	tests := []struct {
		name string
		code int
		want int
	}{
		{"passthrough", 3, 3},
		{"timeout code", 124, 124},
		{"launch failure maps to one", -1, 1},
		{"zero stays zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitStatus(tt.code); got != tt.want {
				t.Errorf("exitStatus(%d) = %d, want %d", tt.code, got, tt.want)
			}
		})
	}
}

func TestExecRequiresCommand(t *testing.T) {
	cmd := NewExecCmd()
	cmd.SetArgs([]string{})

	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(output)

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error when command is missing")
	}
	if !strings.Contains(err.Error(), "requires at least 1 arg") {
		t.Errorf("unexpected error: %v", err)
	}
}
