package intent

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudwego/eino/schema"
	contractx "github.com/napatw/Sarabun-HR-Copilot/agent/contract"
)

type fakeModel struct {
	out   string
	err   error
	calls int
}

func (f *fakeModel) Invoke(ctx context.Context, messages []*schema.Message) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.out, nil
}

func TestClassifyStrongKeywordMatch(t *testing.T) {
	t.Parallel()

	c := New(nil, "", DefaultThresholds())

	got := c.Classify(context.Background(), "What is the remote work policy?")
	if got.Intent != contractx.IntentPolicy {
		t.Fatalf("expected policy, got %s", got.Intent)
	}
	if got.Confidence != 0.9 {
		t.Fatalf("expected confidence 0.9, got %v", got.Confidence)
	}
}

func TestClassifySoleCategoryIsStrong(t *testing.T) {
	t.Parallel()

	c := New(nil, "", DefaultThresholds())

	// One hit, but no other category scores at all.
	got := c.Classify(context.Background(), "does the dental cover include cleanings")
	if got.Intent != contractx.IntentBenefits {
		t.Fatalf("expected benefits, got %s", got.Intent)
	}
	if got.Confidence != 0.9 {
		t.Fatalf("expected confidence 0.9, got %v", got.Confidence)
	}
}

func TestClassifyDistinctWinner(t *testing.T) {
	t.Parallel()

	c := New(nil, "", DefaultThresholds())

	// Both payroll and benefits score; the longer payroll phrase wins.
	got := c.Classify(context.Background(), "where is the payslip and the dental summary")
	if got.Intent != contractx.IntentPayroll {
		t.Fatalf("expected payroll, got %s", got.Intent)
	}
	if got.Confidence != 0.8 {
		t.Fatalf("expected confidence 0.8, got %v", got.Confidence)
	}
}

func TestClassifyTieResolvesToEarlierEntry(t *testing.T) {
	t.Parallel()

	c := New(nil, "", DefaultThresholds())

	// "policy" and "dental" are both six characters, so the scores tie and
	// the earlier table entry keeps the win.
	got := c.Classify(context.Background(), "policy on dental")
	if got.Intent != contractx.IntentPolicy {
		t.Fatalf("expected policy on tie, got %s", got.Intent)
	}
	if got.Confidence != 0.7 {
		t.Fatalf("expected confidence 0.7, got %v", got.Confidence)
	}
}

func TestClassifyModelFallbackParsesWrappedJSON(t *testing.T) {
	t.Parallel()

	model := &fakeModel{
		out: "Sure, here is my verdict:\n{\"intent\": \"benefits\", \"confidence\": 0.66, \"reasoning\": \"mentions coverage\"}\nHope that helps.",
	}
	c := New(model, "classify the query", DefaultThresholds())

	got := c.Classify(context.Background(), "xyzzy frobnicate quux")
	if model.calls != 1 {
		t.Fatalf("expected one model call, got %d", model.calls)
	}
	if got.Intent != contractx.IntentBenefits {
		t.Fatalf("expected benefits from model, got %s", got.Intent)
	}
	if got.Confidence != 0.66 {
		t.Fatalf("expected confidence 0.66, got %v", got.Confidence)
	}
}

func TestClassifyModelFallbackUnknownLabel(t *testing.T) {
	t.Parallel()

	model := &fakeModel{out: `{"intent": "weather", "confidence": 0.8}`}
	c := New(model, "classify the query", DefaultThresholds())

	got := c.Classify(context.Background(), "xyzzy frobnicate quux")
	if got.Intent != contractx.IntentUnclear {
		t.Fatalf("expected unclear for unknown label, got %s", got.Intent)
	}
}

func TestClassifyModelFallbackClampsConfidence(t *testing.T) {
	t.Parallel()

	model := &fakeModel{out: `{"intent": "leave", "confidence": 1.7}`}
	c := New(model, "classify the query", DefaultThresholds())

	got := c.Classify(context.Background(), "xyzzy frobnicate quux")
	if got.Intent != contractx.IntentLeave {
		t.Fatalf("expected leave, got %s", got.Intent)
	}
	if got.Confidence != 1.0 {
		t.Fatalf("expected confidence clamped to 1.0, got %v", got.Confidence)
	}
}

func TestClassifyModelFailureDegrades(t *testing.T) {
	t.Parallel()

	model := &fakeModel{err: errors.New("upstream timeout")}
	c := New(model, "classify the query", DefaultThresholds())

	got := c.Classify(context.Background(), "xyzzy frobnicate quux")
	if got.Intent != contractx.IntentUnclear {
		t.Fatalf("expected unclear, got %s", got.Intent)
	}
	if got.Confidence != 0.3 {
		t.Fatalf("expected degraded confidence 0.3, got %v", got.Confidence)
	}
}

func TestClassifyNilModelDegrades(t *testing.T) {
	t.Parallel()

	c := New(nil, "classify the query", DefaultThresholds())

	got := c.Classify(context.Background(), "xyzzy frobnicate quux")
	if got.Intent != contractx.IntentUnclear {
		t.Fatalf("expected unclear, got %s", got.Intent)
	}
	if got.Confidence != 0.3 {
		t.Fatalf("expected degraded confidence 0.3, got %v", got.Confidence)
	}
}

func TestClassifyConfidenceAlwaysInRange(t *testing.T) {
	t.Parallel()

	model := &fakeModel{out: `{"intent": "policy", "confidence": -2}`}
	c := New(model, "classify the query", DefaultThresholds())

	queries := []string{
		"What is the remote work policy?",
		"policy on dental",
		"xyzzy frobnicate quux",
		"how many employees joined last quarter",
		"",
	}
	for _, q := range queries {
		got := c.Classify(context.Background(), q)
		if got.Confidence < 0 || got.Confidence > 1 {
			t.Fatalf("confidence out of range for %q: %v", q, got.Confidence)
		}
	}
}

func TestClassifyKeywordHitSkipsModel(t *testing.T) {
	t.Parallel()

	model := &fakeModel{err: errors.New("must not be called")}
	c := New(model, "classify the query", DefaultThresholds())

	got := c.Classify(context.Background(), "how do I check my leave balance")
	if got.Intent != contractx.IntentLeave {
		t.Fatalf("expected leave, got %s", got.Intent)
	}
	if model.calls != 0 {
		t.Fatalf("model must not run when keywords decide, got %d calls", model.calls)
	}
}
