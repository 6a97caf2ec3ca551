package specialist

import (
	"context"
	"strings"

	contractx "github.com/napatw/Sarabun-HR-Copilot/agent/contract"
	logx "github.com/napatw/Sarabun-HR-Copilot/pkg/logger"
)

// privacyDesk handles data-subject requests. When the repositories are
// available it files export/erasure requests and reports consent status;
// without them it still explains the process.
type privacyDesk struct {
	model    contractx.ModelInvoker
	persona  string
	requests contractx.SubjectRequestRepository
	consent  contractx.ConsentRepository
	pii      contractx.PIIFilter
}

func newPrivacyDesk(deps Deps) (contractx.Specialist, error) {
	return &privacyDesk{
		model:    deps.Model,
		persona:  deps.Prompts.PersonaFor(contractx.IntentDataRequest),
		requests: deps.Capabilities.SubjectRequests,
		consent:  deps.Capabilities.Consent,
		pii:      deps.Capabilities.PII,
	}, nil
}

func (s *privacyDesk) Run(ctx context.Context, text string, caller contractx.CallerContext) (contractx.DispatchResult, error) {
	log := logx.Component("privacy_desk")

	payload := map[string]any{
		"question": text,
	}

	var sources []string
	if kind := requestKind(text); kind != "" && s.requests != nil {
		id, err := s.requests.Record(ctx, caller.ID, kind, text)
		if err != nil {
			log.Warn().Err(err).Msg("recording subject request failed")
		} else {
			payload["filed_request"] = map[string]any{"id": id, "kind": kind}
			sources = append(sources, "privacy-db: subject_requests")
		}
	}

	if s.consent != nil {
		granted, err := s.consent.HasConsent(ctx, caller.ID, "analytics")
		if err != nil {
			log.Debug().Err(err).Msg("consent lookup failed")
		} else {
			payload["analytics_consent"] = granted
			sources = append(sources, "privacy-db: consents")
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
		AgentType:  string(TypePrivacyDesk),
		Sources:    sources,
	}, nil
}

func requestKind(text string) string {
	lowered := strings.ToLower(text)
	switch {
	case strings.Contains(lowered, "delete"), strings.Contains(lowered, "erase"),
		strings.Contains(lowered, "forgotten"):
		return "erasure"
	case strings.Contains(lowered, "export"), strings.Contains(lowered, "copy of"),
		strings.Contains(lowered, "download"):
		return "export"
	default:
		return ""
	}
}
