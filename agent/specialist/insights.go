package specialist

import (
	"context"

	contractx "github.com/napatw/Sarabun-HR-Copilot/agent/contract"
	logx "github.com/napatw/Sarabun-HR-Copilot/pkg/logger"
)

// workforceInsights serves the performance and analytics intents (one
// shared instance). Answers get a bias audit; findings are appended as a
// caution rather than blocking the answer.
type workforceInsights struct {
	model   contractx.ModelInvoker
	persona string
	data    contractx.DataConnector
	bias    contractx.BiasAuditor
}

func newWorkforceInsights(deps Deps) (contractx.Specialist, error) {
	return &workforceInsights{
		model:   deps.Model,
		persona: deps.Prompts.PersonaFor(contractx.IntentAnalytics),
		data:    deps.Capabilities.Data,
		bias:    deps.Capabilities.Bias,
	}, nil
}

func (s *workforceInsights) Run(ctx context.Context, text string, caller contractx.CallerContext) (contractx.DispatchResult, error) {
	payload := map[string]any{
		"question":       text,
		"requester_role": string(caller.Role),
	}

	log := logx.Component("workforce_insights")

	var sources []string
	if s.data != nil {
		if counts, err := s.data.HeadcountByDepartment(ctx); err != nil {
			log.Warn().Err(err).Msg("headcount unavailable")
		} else if len(counts) > 0 {
			payload["headcount_by_department"] = counts
			sources = append(sources, "hr-db: employees (aggregate)")
		}
	}

	answer, err := invokePersona(ctx, s.model, s.persona, payload)
	if err != nil {
		return contractx.DispatchResult{}, err
	}

	if s.bias != nil {
		if findings := s.bias.Audit(answer); len(findings) > 0 {
			log.Warn().Strs("findings", findings).Msg("bias audit flagged answer")
			answer += "\n\nNote: this answer touches protected attributes; interpret with care."
		}
	}

	return contractx.DispatchResult{
		Answer:     answer,
		Confidence: specialistConfidence,
		AgentType:  string(TypeWorkforceInsights),
		Sources:    sources,
	}, nil
}
