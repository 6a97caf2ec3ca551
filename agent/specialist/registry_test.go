package specialist

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudwego/eino/schema"
	contractx "github.com/napatw/Sarabun-HR-Copilot/agent/contract"
	promptx "github.com/napatw/Sarabun-HR-Copilot/agent/prompt"
)

type fakeModel struct {
	out string
	err error
}

func (f *fakeModel) Invoke(ctx context.Context, messages []*schema.Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.out, nil
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := NewRegistry(Deps{
		Model:   &fakeModel{out: "ok"},
		Prompts: promptx.LoadPromptSet(),
	})
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	return r
}

func TestNewRegistryRequiresModel(t *testing.T) {
	t.Parallel()

	_, err := NewRegistry(Deps{Prompts: promptx.LoadPromptSet()})
	if !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestResolveUnmappedIntent(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)

	for _, intent := range []contractx.Intent{contractx.IntentUnclear, contractx.IntentMultiIntent, contractx.Intent("weather")} {
		_, err := r.Resolve(intent)
		if !errors.Is(err, contractx.ErrNoSpecialist) {
			t.Fatalf("expected ErrNoSpecialist for %s, got %v", intent, err)
		}
	}
}

func TestResolveConstructsAndCaches(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)

	first, err := r.Resolve(contractx.IntentPolicy)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	second, err := r.Resolve(contractx.IntentPolicy)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if first != second {
		t.Fatal("repeated resolution must reuse the cached instance")
	}
}

func TestResolveSharedTypeInstances(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)

	// performance and analytics map to the same specialist type, so they
	// share one instance; benefits and payroll likewise.
	perf, err := r.Resolve(contractx.IntentPerformance)
	if err != nil {
		t.Fatalf("Resolve(performance) error = %v", err)
	}
	analytics, err := r.Resolve(contractx.IntentAnalytics)
	if err != nil {
		t.Fatalf("Resolve(analytics) error = %v", err)
	}
	if perf != analytics {
		t.Fatal("performance and analytics must share one instance")
	}

	benefits, err := r.Resolve(contractx.IntentBenefits)
	if err != nil {
		t.Fatalf("Resolve(benefits) error = %v", err)
	}
	payroll, err := r.Resolve(contractx.IntentPayroll)
	if err != nil {
		t.Fatalf("Resolve(payroll) error = %v", err)
	}
	if benefits != payroll {
		t.Fatal("benefits and payroll must share one instance")
	}
}

func TestResolveEveryMappedIntent(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)

	for intent := range intentTypes {
		spec, err := r.Resolve(intent)
		if err != nil {
			t.Fatalf("Resolve(%s) error = %v", intent, err)
		}
		if spec == nil {
			t.Fatalf("Resolve(%s) returned nil specialist", intent)
		}
	}
}

func TestResolveConcurrentFirstUse(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)

	const workers = 8
	results := make(chan contractx.Specialist, workers)
	for i := 0; i < workers; i++ {
		go func() {
			spec, err := r.Resolve(contractx.IntentLeave)
			if err != nil {
				results <- nil
				return
			}
			results <- spec
		}()
	}

	var first contractx.Specialist
	for i := 0; i < workers; i++ {
		spec := <-results
		if spec == nil {
			t.Fatal("concurrent Resolve failed")
		}
		if first == nil {
			first = spec
		} else if spec != first {
			t.Fatal("concurrent first use must still build one instance")
		}
	}
}
