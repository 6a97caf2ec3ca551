package merge

import (
	"math"
	"reflect"
	"testing"

	contractx "github.com/napatw/Sarabun-HR-Copilot/agent/contract"
)

func TestMergeEmpty(t *testing.T) {
	t.Parallel()

	got := Merge(nil)
	if got.Answer != "No results to merge" {
		t.Fatalf("unexpected answer: %q", got.Answer)
	}
	if got.Confidence != 0 {
		t.Fatalf("expected zero confidence, got %v", got.Confidence)
	}
	if got.Sources == nil || len(got.Sources) != 0 {
		t.Fatalf("expected empty sources slice, got %v", got.Sources)
	}
	if got.AgentsUsed == nil || len(got.AgentsUsed) != 0 {
		t.Fatalf("expected empty agents slice, got %v", got.AgentsUsed)
	}
}

func TestMergeSingletonIsIdentity(t *testing.T) {
	t.Parallel()

	in := contractx.DispatchResult{
		Answer:     "Your balance is 12 days.",
		Confidence: 0.9,
		AgentType:  "leave_desk",
		// Duplicate sources must survive; the singleton path does not dedup.
		Sources: []string{"hr-db: leave_balances", "hr-db: leave_balances"},
	}

	got := Merge([]contractx.DispatchResult{in})
	if got.Answer != in.Answer {
		t.Fatalf("answer changed: %q", got.Answer)
	}
	if got.Confidence != in.Confidence {
		t.Fatalf("confidence changed: %v", got.Confidence)
	}
	if !reflect.DeepEqual(got.Sources, in.Sources) {
		t.Fatalf("sources changed: %v", got.Sources)
	}
	if !reflect.DeepEqual(got.AgentsUsed, []string{"leave_desk"}) {
		t.Fatalf("unexpected agents: %v", got.AgentsUsed)
	}
}

func TestMergeMultiple(t *testing.T) {
	t.Parallel()

	got := Merge([]contractx.DispatchResult{
		{
			Answer:     "Remote work is allowed three days a week.",
			Confidence: 0.9,
			AgentType:  "policy_advisor",
			Sources:    []string{"handbook: remote-work", "handbook: hours"},
		},
		{
			Answer:     "You have 12 vacation days left.",
			Confidence: 0.7,
			AgentType:  "leave_desk",
			Sources:    []string{"hr-db: leave_balances", "handbook: remote-work"},
		},
		{
			Answer:     "Your dental plan covers cleanings.",
			Confidence: 0.8,
			AgentType:  "leave_desk",
		},
	})

	want := "1. Remote work is allowed three days a week.\n" +
		"2. You have 12 vacation days left.\n" +
		"3. Your dental plan covers cleanings."
	if got.Answer != want {
		t.Fatalf("unexpected merged answer:\n%q", got.Answer)
	}
	if math.Abs(got.Confidence-0.8) > 1e-9 {
		t.Fatalf("expected mean confidence 0.8, got %v", got.Confidence)
	}
	wantSources := []string{"handbook: remote-work", "handbook: hours", "hr-db: leave_balances"}
	if !reflect.DeepEqual(got.Sources, wantSources) {
		t.Fatalf("unexpected source union: %v", got.Sources)
	}
	// AgentsUsed keeps invocation order including the duplicate tag.
	wantAgents := []string{"policy_advisor", "leave_desk", "leave_desk"}
	if !reflect.DeepEqual(got.AgentsUsed, wantAgents) {
		t.Fatalf("unexpected agents: %v", got.AgentsUsed)
	}
}

func TestMergeClampsConfidence(t *testing.T) {
	t.Parallel()

	got := Merge([]contractx.DispatchResult{
		{Answer: "a", Confidence: 1.8, AgentType: "x"},
		{Answer: "b", Confidence: -0.5, AgentType: "y"},
	})
	if got.Confidence != 0.5 {
		t.Fatalf("expected clamped mean 0.5, got %v", got.Confidence)
	}
}
