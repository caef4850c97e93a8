package executor

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestCountSuccessful(t *testing.T) {
	tests := []struct {
		name     string
		results  []Result
		expected int
	}{
		{
			name:     "empty results",
			results:  []Result{},
			expected: 0,
		},
		{
			name: "all successful",
			results: []Result{
				{Section: "pods", Error: nil},
				{Section: "deployments", Error: nil},
				{Section: "services", Error: nil},
			},
			expected: 3,
		},
		{
			name: "all failed",
			results: []Result{
				{Section: "pods", Error: errors.New("error1")},
				{Section: "deployments", Error: errors.New("error2")},
			},
			expected: 0,
		},
		{
			name: "mixed",
			results: []Result{
				{Section: "pods", Error: nil},
				{Section: "deployments", Error: errors.New("error")},
				{Section: "services", Error: nil},
				{Section: "events", Error: errors.New("error")},
			},
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountSuccessful(tt.results)
			if got != tt.expected {
				t.Errorf("CountSuccessful() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestCountFailed(t *testing.T) {
	tests := []struct {
		name     string
		results  []Result
		expected int
	}{
		{
			name:     "empty results",
			results:  []Result{},
			expected: 0,
		},
		{
			name: "all successful",
			results: []Result{
				{Section: "pods", Error: nil},
				{Section: "services", Error: nil},
			},
			expected: 0,
		},
		{
			name: "all failed",
			results: []Result{
				{Section: "pods", Error: errors.New("error1")},
				{Section: "deployments", Error: errors.New("error2")},
				{Section: "services", Error: errors.New("error3")},
			},
			expected: 3,
		},
		{
			name: "mixed",
			results: []Result{
				{Section: "pods", Error: nil},
				{Section: "deployments", Error: errors.New("error")},
				{Section: "services", Error: nil},
				{Section: "events", Error: errors.New("error")},
			},
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountFailed(tt.results)
			if got != tt.expected {
				t.Errorf("CountFailed() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestFilterSuccessful(t *testing.T) {
	results := []Result{
		{Section: "pods", Error: nil, Data: "data1"},
		{Section: "deployments", Error: errors.New("error"), Data: nil},
		{Section: "services", Error: nil, Data: "data3"},
		{Section: "events", Error: errors.New("error"), Data: nil},
	}

	filtered := FilterSuccessful(results)

	if len(filtered) != 2 {
		t.Errorf("expected 2 successful results, got %d", len(filtered))
	}

	for _, r := range filtered {
		if r.Error != nil {
			t.Errorf("filtered result has error: %v", r.Error)
		}
	}

	expectedSections := map[string]bool{"pods": true, "services": true}
	for _, r := range filtered {
		if !expectedSections[r.Section] {
			t.Errorf("unexpected section in filtered results: %s", r.Section)
		}
	}
}

func TestFilterFailed(t *testing.T) {
	results := []Result{
		{Section: "pods", Error: nil, Data: "data1"},
		{Section: "deployments", Error: errors.New("error"), Data: nil},
		{Section: "services", Error: nil, Data: "data3"},
		{Section: "events", Error: errors.New("error"), Data: nil},
	}

	filtered := FilterFailed(results)

	if len(filtered) != 2 {
		t.Errorf("expected 2 failed results, got %d", len(filtered))
	}

	for _, r := range filtered {
		if r.Error == nil {
			t.Errorf("filtered result has no error")
		}
	}

	expectedSections := map[string]bool{"deployments": true, "events": true}
	for _, r := range filtered {
		if !expectedSections[r.Section] {
			t.Errorf("unexpected section in filtered results: %s", r.Section)
		}
	}
}

func TestBySection(t *testing.T) {
	results := []Result{
		{Section: "pods", Data: "data1"},
		{Section: "deployments", Data: "data2"},
		{Section: "services", Data: "data3"},
	}

	indexed := BySection(results)

	if len(indexed) != 3 {
		t.Errorf("expected 3 sections, got %d", len(indexed))
	}

	if indexed["pods"].Data != "data1" {
		t.Errorf("pods data = %v, want data1", indexed["pods"].Data)
	}
	if indexed["deployments"].Data != "data2" {
		t.Errorf("deployments data = %v, want data2", indexed["deployments"].Data)
	}

	if _, ok := indexed["missing"]; ok {
		t.Error("unexpected entry for missing section")
	}
}

func TestAverageDuration(t *testing.T) {
	tests := []struct {
		name     string
		results  []Result
		expected time.Duration
	}{
		{
			name:     "empty results",
			results:  []Result{},
			expected: 0,
		},
		{
			name: "single result",
			results: []Result{
				{Duration: 100 * time.Millisecond},
			},
			expected: 100 * time.Millisecond,
		},
		{
			name: "multiple results",
			results: []Result{
				{Duration: 100 * time.Millisecond},
				{Duration: 200 * time.Millisecond},
				{Duration: 300 * time.Millisecond},
			},
			expected: 200 * time.Millisecond,
		},
		{
			name: "different durations",
			results: []Result{
				{Duration: 50 * time.Millisecond},
				{Duration: 150 * time.Millisecond},
			},
			expected: 100 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AverageDuration(tt.results)
			if got != tt.expected {
				t.Errorf("AverageDuration() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMaxDuration(t *testing.T) {
	tests := []struct {
		name     string
		results  []Result
		expected time.Duration
	}{
		{
			name:     "empty results",
			results:  []Result{},
			expected: 0,
		},
		{
			name: "single result",
			results: []Result{
				{Duration: 100 * time.Millisecond},
			},
			expected: 100 * time.Millisecond,
		},
		{
			name: "multiple results",
			results: []Result{
				{Duration: 100 * time.Millisecond},
				{Duration: 500 * time.Millisecond},
				{Duration: 200 * time.Millisecond},
			},
			expected: 500 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MaxDuration(tt.results)
			if got != tt.expected {
				t.Errorf("MaxDuration() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrors(t *testing.T) {
	results := []Result{
		{Section: "pods", Error: nil},
		{Section: "deployments", Error: errors.New("error1")},
		{Section: "services", Error: nil},
		{Section: "events", Error: errors.New("error2")},
	}

	errs := GetErrors(results)

	if len(errs) != 2 {
		t.Errorf("expected 2 errors, got %d", len(errs))
	}

	for _, err := range errs {
		if err == nil {
			t.Error("got nil error in error list")
		}
	}
}

func TestSummarize(t *testing.T) {
	results := []Result{
		{Section: "pods", Error: nil, Duration: 100 * time.Millisecond},
		{Section: "deployments", Error: errors.New("error"), Duration: 200 * time.Millisecond},
		{Section: "services", Error: nil, Duration: 300 * time.Millisecond},
		{Section: "configmaps", Error: errors.New("error"), Duration: 50 * time.Millisecond},
		{Section: "events", Error: nil, Duration: 150 * time.Millisecond},
	}

	summary := Summarize(results)

	if summary.Total != 5 {
		t.Errorf("expected Total=5, got %d", summary.Total)
	}

	if summary.Successful != 3 {
		t.Errorf("expected Successful=3, got %d", summary.Successful)
	}

	if summary.Failed != 2 {
		t.Errorf("expected Failed=2, got %d", summary.Failed)
	}

	expectedAvg := 160 * time.Millisecond
	if summary.AvgDuration != expectedAvg {
		t.Errorf("expected AvgDuration=%v, got %v", expectedAvg, summary.AvgDuration)
	}

	expectedMax := 300 * time.Millisecond
	if summary.MaxDuration != expectedMax {
		t.Errorf("expected MaxDuration=%v, got %v", expectedMax, summary.MaxDuration)
	}
}

func TestSummary_String(t *testing.T) {
	summary := Summary{
		Total:       10,
		Successful:  7,
		Failed:      3,
		AvgDuration: 123456789 * time.Nanosecond,
		MaxDuration: 200 * time.Millisecond,
	}

	str := summary.String()

	requiredSubstrings := []string{
		"Total: 10",
		"Successful: 7",
		"Failed: 3",
		"Avg:",
		"Max:",
	}

	for _, substr := range requiredSubstrings {
		if !strings.Contains(str, substr) {
			t.Errorf("summary string missing %q: %s", substr, str)
		}
	}
}

func TestSummary_String_Empty(t *testing.T) {
	summary := Summary{
		Total:      0,
		Successful: 0,
		Failed:     0,
	}

	str := summary.String()

	if !strings.Contains(str, "Total: 0") {
		t.Errorf("expected 'Total: 0' in summary string: %s", str)
	}
}

func TestHasErrors(t *testing.T) {
	tests := []struct {
		name     string
		results  []Result
		expected bool
	}{
		{
			name:     "empty results",
			results:  []Result{},
			expected: false,
		},
		{
			name: "no errors",
			results: []Result{
				{Section: "pods", Error: nil},
				{Section: "services", Error: nil},
			},
			expected: false,
		},
		{
			name: "has errors",
			results: []Result{
				{Section: "pods", Error: nil},
				{Section: "services", Error: errors.New("error")},
			},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HasErrors(tt.results)
			if got != tt.expected {
				t.Errorf("HasErrors() = %v, want %v", got, tt.expected)
			}
		})
	}
}
