package specialist

import (
	"context"

	contractx "github.com/napatw/Sarabun-HR-Copilot/agent/contract"
	logx "github.com/napatw/Sarabun-HR-Copilot/pkg/logger"
)

// peopleDirectory answers who-is questions. Outbound answers pass through
// the PII filter so only business contact data leaves.
type peopleDirectory struct {
	model   contractx.ModelInvoker
	persona string
	data    contractx.DataConnector
	pii     contractx.PIIFilter
}

func newPeopleDirectory(deps Deps) (contractx.Specialist, error) {
	return &peopleDirectory{
		model:   deps.Model,
		persona: deps.Prompts.PersonaFor(contractx.IntentEmployeeInfo),
		data:    deps.Capabilities.Data,
		pii:     deps.Capabilities.PII,
	}, nil
}

func (s *peopleDirectory) Run(ctx context.Context, text string, caller contractx.CallerContext) (contractx.DispatchResult, error) {
	payload := map[string]any{
		"question": text,
	}

	log := logx.Component("people_directory")

	var sources []string
	if s.data != nil {
		if profile, err := s.data.ProfileSummary(ctx, caller.ID); err != nil {
			log.Debug().Err(err).Msg("requester profile unavailable")
		} else if profile != "" {
			payload["requester"] = profile
			sources = append(sources, "hr-db: employees")
		}
	}

	answer, err := invokePersona(ctx, s.model, s.persona, payload)
	if err != nil {
		return contractx.DispatchResult{}, err
	}

	if s.pii != nil {
		answer = s.pii.Redact(answer)
	}

	return contractx.DispatchResult{
		Answer:     answer,
		Confidence: specialistConfidence,
		AgentType:  string(TypePeopleDirectory),
		Sources:    sources,
	}, nil
}
