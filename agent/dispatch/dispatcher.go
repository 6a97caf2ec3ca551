// Package dispatch runs a classified intent through the bounded fallback
// chain: specialist attempt, model fallback, static fallback. Dispatch
// never fails; every path ends in a fully shaped result.
package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cloudwego/eino/schema"
	contractx "github.com/napatw/Sarabun-HR-Copilot/agent/contract"
	promptx "github.com/napatw/Sarabun-HR-Copilot/agent/prompt"
	logx "github.com/napatw/Sarabun-HR-Copilot/pkg/logger"
	"github.com/rs/zerolog"
)

// Inherited tuning values; kept as data, not derived.
const (
	modelFallbackConfidence = 0.85
	degradedConfidence      = 0.3
	staticConfidence        = 0.75
	placeholderConfidence   = 0.4

	// CandidateThreshold is the minimum candidate confidence the
	// multi-intent path will dispatch.
	CandidateThreshold = 0.4
)

type Dispatcher struct {
	registry contractx.SpecialistResolver
	model    contractx.ModelInvoker
	data     contractx.DataConnector
	prompts  promptx.PromptSet
	log      zerolog.Logger
}

// New builds a dispatcher. model and data may be nil: without a model the
// chain skips straight from specialist to static fallback; without data
// the model fallback just goes unenriched.
func New(registry contractx.SpecialistResolver, model contractx.ModelInvoker, data contractx.DataConnector, prompts promptx.PromptSet) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		model:    model,
		data:     data,
		prompts:  prompts,
		log:      logx.Component("dispatcher"),
	}
}

// Dispatch resolves one intent to a result. The chain is bounded: at most
// two escalation hops (specialist → model → static), never a loop, never
// an error to the caller.
func (d *Dispatcher) Dispatch(ctx context.Context, intent contractx.Intent, text string, caller contractx.CallerContext) contractx.DispatchResult {
	spec, err := d.registry.Resolve(intent)
	switch {
	case err == nil:
		if res, ok := d.trySpecialist(ctx, spec, intent, text, caller); ok {
			return res
		}
	case errors.Is(err, contractx.ErrNoSpecialist):
		return contractx.DispatchResult{
			Confidence: 0,
			AgentType:  "none",
			Intent:     intent,
			Err:        "No agent registered",
		}
	default:
		// Construction failed; the chain continues below.
		d.log.Warn().Err(err).Str("intent", intent.String()).Msg("specialist unavailable")
	}

	if res, done := d.tryModel(ctx, intent, text, caller); done {
		return res
	}

	return d.staticAnswer(intent)
}

func (d *Dispatcher) trySpecialist(ctx context.Context, spec contractx.Specialist, intent contractx.Intent, text string, caller contractx.CallerContext) (contractx.DispatchResult, bool) {
	res, err := spec.Run(ctx, text, caller)
	if err != nil {
		d.log.Warn().Err(err).Str("intent", intent.String()).Msg("specialist run failed")
		return contractx.DispatchResult{}, false
	}
	if !res.Usable() {
		d.log.Debug().Str("intent", intent.String()).Msg("specialist produced no usable answer")
		return contractx.DispatchResult{}, false
	}

	res.Confidence = contractx.Clamp01(res.Confidence)
	res.Intent = intent
	if res.AgentType == "" {
		res.AgentType = intent.String()
	}
	return res, true
}

// tryModel is the second chain stage. done=false only when no model is
// configured; a failed model call still terminates the chain with a
// degraded apologetic answer.
func (d *Dispatcher) tryModel(ctx context.Context, intent contractx.Intent, text string, caller contractx.CallerContext) (contractx.DispatchResult, bool) {
	if d.model == nil {
		return contractx.DispatchResult{}, false
	}

	persona := d.prompts.PersonaFor(intent)
	if ambient := d.ambientContext(ctx, intent, caller); len(ambient) > 0 {
		if encoded, err := json.Marshal(ambient); err == nil {
			persona = persona + "\n\nContext:\n" + string(encoded)
		}
	}

	answer, err := d.model.Invoke(ctx, []*schema.Message{
		schema.SystemMessage(persona),
		schema.UserMessage(text),
	})
	if err != nil {
		d.log.Warn().Err(err).Str("intent", intent.String()).Msg("model fallback failed")
		return contractx.DispatchResult{
			Answer: fmt.Sprintf(
				"I'm sorry, I couldn't produce an answer right now (%s). Please try again or contact the HR team.",
				shorten(err.Error(), 80)),
			Confidence: degradedConfidence,
			AgentType:  intent.String(),
			Intent:     intent,
			Err:        err.Error(),
		}, true
	}

	return contractx.DispatchResult{
		Answer:     answer,
		Confidence: modelFallbackConfidence,
		AgentType:  intent.String(),
		Intent:     intent,
	}, true
}

// ambientContext pulls best-effort data for the model fallback. Any
// failure is swallowed; the prompt just goes out without it.
func (d *Dispatcher) ambientContext(ctx context.Context, intent contractx.Intent, caller contractx.CallerContext) map[string]any {
	if d.data == nil {
		return nil
	}

	ambient := map[string]any{}
	switch intent {
	case contractx.IntentLeave:
		if balances, err := d.data.LeaveBalances(ctx, caller.ID); err == nil && len(balances) > 0 {
			ambient["leave_balances"] = balances
		}
		if requests, err := d.data.RecentLeaveRequests(ctx, caller.ID, 3); err == nil && len(requests) > 0 {
			ambient["recent_requests"] = requests
		}
	case contractx.IntentEmployeeInfo:
		if profile, err := d.data.ProfileSummary(ctx, caller.ID); err == nil && profile != "" {
			ambient["requester"] = profile
		}
	case contractx.IntentAnalytics, contractx.IntentPerformance:
		if counts, err := d.data.HeadcountByDepartment(ctx); err == nil && len(counts) > 0 {
			ambient["headcount_by_department"] = counts
		}
	}

	if len(ambient) == 0 {
		return nil
	}
	return ambient
}

func shorten(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
