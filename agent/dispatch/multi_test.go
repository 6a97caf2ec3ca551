package dispatch

import (
	"context"
	"testing"

	contractx "github.com/napatw/Sarabun-HR-Copilot/agent/contract"
	promptx "github.com/napatw/Sarabun-HR-Copilot/agent/prompt"
)

func TestDispatchAllSkipsLowConfidenceCandidates(t *testing.T) {
	t.Parallel()

	spec := &fakeSpecialist{
		res: contractx.DispatchResult{Answer: "ok", Confidence: 0.9, AgentType: "policy_advisor"},
	}
	d := New(&fakeResolver{spec: spec}, nil, nil, promptx.LoadPromptSet())

	got := d.DispatchAll(context.Background(), []contractx.Classification{
		{Intent: contractx.IntentPolicy, Confidence: 0.9},
		{Intent: contractx.IntentLeave, Confidence: 0.2},
	}, "remote work and leave", testCaller())

	if len(got) != 1 {
		t.Fatalf("expected one result, got %d", len(got))
	}
	if got[0].Intent != contractx.IntentPolicy {
		t.Fatalf("unexpected intent: %s", got[0].Intent)
	}
	if spec.calls != 1 {
		t.Fatalf("expected one dispatch, got %d", spec.calls)
	}
}

func TestDispatchAllRecordsDenialsWithoutDispatching(t *testing.T) {
	t.Parallel()

	spec := &fakeSpecialist{
		res: contractx.DispatchResult{Answer: "ok", Confidence: 0.9, AgentType: "policy_advisor"},
	}
	d := New(&fakeResolver{spec: spec}, nil, nil, promptx.LoadPromptSet())

	got := d.DispatchAll(context.Background(), []contractx.Classification{
		{Intent: contractx.IntentAnalytics, Confidence: 0.9},
		{Intent: contractx.IntentPolicy, Confidence: 0.9},
	}, "headcount and remote work", testCaller())

	if len(got) != 2 {
		t.Fatalf("expected two results, got %d", len(got))
	}
	// The denied candidate comes first, mirroring the input order.
	if got[0].Intent != contractx.IntentAnalytics {
		t.Fatalf("unexpected first intent: %s", got[0].Intent)
	}
	if got[0].Err != "Permission denied" {
		t.Fatalf("unexpected denial error: %q", got[0].Err)
	}
	if got[0].Confidence != 0 {
		t.Fatalf("denied entry must carry zero confidence, got %v", got[0].Confidence)
	}
	if got[1].Intent != contractx.IntentPolicy {
		t.Fatalf("unexpected second intent: %s", got[1].Intent)
	}
	if spec.calls != 1 {
		t.Fatalf("denied candidates must not dispatch, got %d calls", spec.calls)
	}
}

func TestDispatchAllEmptyCandidates(t *testing.T) {
	t.Parallel()

	d := New(&fakeResolver{}, nil, nil, promptx.LoadPromptSet())

	got := d.DispatchAll(context.Background(), nil, "anything", testCaller())
	if len(got) != 0 {
		t.Fatalf("expected no results, got %d", len(got))
	}
}
