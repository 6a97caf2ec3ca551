package specialist

import (
	"context"

	contractx "github.com/napatw/Sarabun-HR-Copilot/agent/contract"
	logx "github.com/napatw/Sarabun-HR-Copilot/pkg/logger"
)

// policyAdvisor answers policy questions, grounding the model on retrieved
// policy snippets and annotating which compliance rules apply.
type policyAdvisor struct {
	model      contractx.ModelInvoker
	persona    string
	retrieval  contractx.RetrievalPipeline
	compliance contractx.ComplianceEngine
}

func newPolicyAdvisor(deps Deps) (contractx.Specialist, error) {
	return &policyAdvisor{
		model:      deps.Model,
		persona:    deps.Prompts.PersonaFor(contractx.IntentPolicy),
		retrieval:  deps.Capabilities.Retrieval,
		compliance: deps.Capabilities.Compliance,
	}, nil
}

func (s *policyAdvisor) Run(ctx context.Context, text string, caller contractx.CallerContext) (contractx.DispatchResult, error) {
	payload := map[string]any{
		"question":   text,
		"department": caller.Department,
	}

	log := logx.Component("policy_advisor")

	var sources []string
	if s.retrieval != nil {
		snippets, err := s.retrieval.Retrieve(ctx, text, 3)
		if err != nil {
			log.Warn().Err(err).Msg("snippet retrieval failed")
		} else if len(snippets) > 0 {
			excerpts := make([]string, 0, len(snippets))
			for _, sn := range snippets {
				excerpts = append(excerpts, sn.Text)
				sources = append(sources, sn.Ref)
			}
			payload["policy_excerpts"] = excerpts
		}
	}

	answer, err := invokePersona(ctx, s.model, s.persona, payload)
	if err != nil {
		return contractx.DispatchResult{}, err
	}

	if s.compliance != nil {
		for _, rule := range s.compliance.Applicable(text + " " + answer) {
			sources = append(sources, "compliance: "+rule)
		}
	}

	return contractx.DispatchResult{
		Answer:     answer,
		Confidence: specialistConfidence,
		AgentType:  string(TypePolicyAdvisor),
		Sources:    sources,
	}, nil
}
