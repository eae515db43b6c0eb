package workflow_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/amplitudeventures/vyve/internal/results"
	"github.com/amplitudeventures/vyve/internal/workflow"
)

func TestBuildContextNoResults(t *testing.T) {
	tests := []struct {
		name      string
		completed []results.CompletedResult
	}{
		{"nil slice", nil},
		{"empty slice", []results.CompletedResult{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := workflow.BuildContext("analyze emissions", tt.completed)
			if !strings.HasPrefix(got, "analyze emissions") {
				t.Errorf("prompt = %q, want it to lead the assembled context", got)
			}
			if !strings.Contains(got, "Previously completed analysis results:") {
				t.Error("header should be present even with no completed results")
			}
			if strings.Contains(got, strings.Repeat("-", 40)) {
				t.Error("no result blocks expected with no completed results")
			}
		})
	}
}

func TestBuildContextAppendsResults(t *testing.T) {
	completed := []results.CompletedResult{
		{SubPhaseID: uuid.New(), SubPhaseName: "Document Analysis", Result: "ten annual reports"},
		{SubPhaseID: uuid.New(), SubPhaseName: "Activity Identification", Result: "mining and logistics"},
	}

	got := workflow.BuildContext("analyze emissions", completed)

	if !strings.HasPrefix(got, "analyze emissions") {
		t.Error("original prompt should lead the assembled context")
	}
	if !strings.Contains(got, "Previously completed analysis results:") {
		t.Error("context header missing")
	}
	if !strings.Contains(got, "Document Analysis: ten annual reports") {
		t.Error("first result block missing")
	}
	if !strings.Contains(got, "Activity Identification: mining and logistics") {
		t.Error("second result block missing")
	}

	a := strings.Index(got, "Document Analysis:")
	b := strings.Index(got, "Activity Identification:")
	if !(a < b) {
		t.Error("results should appear in input order")
	}
}

func TestBuildContextSeparatesBlocks(t *testing.T) {
	completed := []results.CompletedResult{
		{SubPhaseName: "A", Result: "one"},
		{SubPhaseName: "B", Result: "two"},
	}

	got := workflow.BuildContext("prompt", completed)

	if n := strings.Count(got, strings.Repeat("-", 40)); n != 2 {
		t.Errorf("separator count = %d, want one per result block", n)
	}
}
