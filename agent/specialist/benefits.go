package specialist

import (
	"context"

	contractx "github.com/napatw/Sarabun-HR-Copilot/agent/contract"
	logx "github.com/napatw/Sarabun-HR-Copilot/pkg/logger"
)

// benefitsDesk covers both benefits and payroll questions; the two intents
// share this type.
type benefitsDesk struct {
	model   contractx.ModelInvoker
	persona string
	data    contractx.DataConnector
}

func newBenefitsDesk(deps Deps) (contractx.Specialist, error) {
	return &benefitsDesk{
		model:   deps.Model,
		persona: deps.Prompts.PersonaFor(contractx.IntentBenefits),
		data:    deps.Capabilities.Data,
	}, nil
}

func (s *benefitsDesk) Run(ctx context.Context, text string, caller contractx.CallerContext) (contractx.DispatchResult, error) {
	payload := map[string]any{
		"question": text,
	}

	log := logx.Component("benefits_desk")

	var sources []string
	if s.data != nil {
		if profile, err := s.data.ProfileSummary(ctx, caller.ID); err != nil {
			log.Debug().Err(err).Msg("profile summary unavailable")
		} else if profile != "" {
			payload["employee"] = profile
			sources = append(sources, "hr-db: employees")
		}
	}

	answer, err := invokePersona(ctx, s.model, s.persona, payload)
	if err != nil {
		return contractx.DispatchResult{}, err
	}

	return contractx.DispatchResult{
		Answer:     answer,
		Confidence: specialistConfidence,
		AgentType:  string(TypeBenefitsDesk),
		Sources:    sources,
	}, nil
}
