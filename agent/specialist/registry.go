// Package specialist owns the intent→specialist mapping and the lazily
// populated, type-keyed specialist cache.
package specialist

import (
	"fmt"
	"sync"

	capabilityx "github.com/napatw/Sarabun-HR-Copilot/agent/capability"
	contractx "github.com/napatw/Sarabun-HR-Copilot/agent/contract"
	promptx "github.com/napatw/Sarabun-HR-Copilot/agent/prompt"
	logx "github.com/napatw/Sarabun-HR-Copilot/pkg/logger"
	"github.com/rs/zerolog"
)

// TypeName identifies a specialist implementation. Several intents may map
// to the same type; the cache is keyed by type, so those intents share one
// instance.
type TypeName string

const (
	TypePolicyAdvisor     TypeName = "policy_advisor"
	TypeLeaveDesk         TypeName = "leave_desk"
	TypeBenefitsDesk      TypeName = "benefits_desk"
	TypePeopleDirectory   TypeName = "people_directory"
	TypeWorkforceInsights TypeName = "workforce_insights"
	TypePrivacyDesk       TypeName = "privacy_desk"
)

// intentTypes maps intents to specialist types. multi_intent and unclear
// deliberately have no entry; the dispatcher handles them through its
// fallback chain.
var intentTypes = map[contractx.Intent]TypeName{
	contractx.IntentPolicy:       TypePolicyAdvisor,
	contractx.IntentLeave:        TypeLeaveDesk,
	contractx.IntentBenefits:     TypeBenefitsDesk,
	contractx.IntentPayroll:      TypeBenefitsDesk,
	contractx.IntentEmployeeInfo: TypePeopleDirectory,
	contractx.IntentPerformance:  TypeWorkforceInsights,
	contractx.IntentAnalytics:    TypeWorkforceInsights,
	contractx.IntentDataRequest:  TypePrivacyDesk,
}

// Deps is the explicit capability set offered to specialist factories.
// Factories take what they need and tolerate nil capabilities; a missing
// optional collaborator never fails construction.
type Deps struct {
	Model        contractx.ModelInvoker
	Prompts      promptx.PromptSet
	Capabilities *capabilityx.Set
}

type factory func(Deps) (contractx.Specialist, error)

var factories = map[TypeName]factory{
	TypePolicyAdvisor:     newPolicyAdvisor,
	TypeLeaveDesk:         newLeaveDesk,
	TypeBenefitsDesk:      newBenefitsDesk,
	TypePeopleDirectory:   newPeopleDirectory,
	TypeWorkforceInsights: newWorkforceInsights,
	TypePrivacyDesk:       newPrivacyDesk,
}

// Registry resolves intents to constructed specialists. Construction is
// lazy, cached per type, and guarded by a mutex so concurrent first use
// builds each type exactly once. Failed constructions are cached too and
// keep resolving as unavailable.
type Registry struct {
	deps Deps

	mu       sync.Mutex
	cache    map[TypeName]contractx.Specialist
	failures map[TypeName]error

	log zerolog.Logger
}

var _ contractx.SpecialistResolver = (*Registry)(nil)

func NewRegistry(deps Deps) (*Registry, error) {
	if deps.Model == nil {
		return nil, fmt.Errorf("%w: model invoker is required", contractx.ErrValidation)
	}
	if deps.Capabilities == nil {
		deps.Capabilities = &capabilityx.Set{}
	}

	return &Registry{
		deps:     deps,
		cache:    make(map[TypeName]contractx.Specialist, len(factories)),
		failures: make(map[TypeName]error, 2),
		log:      logx.Component("registry"),
	}, nil
}

// Resolve returns the specialist for an intent, constructing it on first
// use. ErrNoSpecialist means the intent has no registered type;
// ErrSpecialistUnavailable means construction failed (now or earlier).
func (r *Registry) Resolve(intent contractx.Intent) (contractx.Specialist, error) {
	typeName, ok := intentTypes[intent]
	if !ok {
		return nil, fmt.Errorf("%w: intent=%s", contractx.ErrNoSpecialist, intent)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if spec, ok := r.cache[typeName]; ok {
		return spec, nil
	}
	if err, ok := r.failures[typeName]; ok {
		return nil, err
	}

	build, ok := factories[typeName]
	if !ok {
		err := fmt.Errorf("%w: no factory for type=%s", contractx.ErrSpecialistUnavailable, typeName)
		r.failures[typeName] = err
		return nil, err
	}

	spec, err := build(r.deps)
	if err != nil {
		wrapped := fmt.Errorf("%w: type=%s: %v", contractx.ErrSpecialistUnavailable, typeName, err)
		r.failures[typeName] = wrapped
		r.log.Error().Err(err).Str("type", string(typeName)).Msg("specialist construction failed")
		return nil, wrapped
	}

	r.cache[typeName] = spec
	r.log.Debug().Str("type", string(typeName)).Msg("specialist constructed")
	return spec, nil
}
