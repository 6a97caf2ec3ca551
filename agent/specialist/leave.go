package specialist

import (
	"context"
	"strings"

	contractx "github.com/napatw/Sarabun-HR-Copilot/agent/contract"
	logx "github.com/napatw/Sarabun-HR-Copilot/pkg/logger"
)

// leaveDesk answers time-off questions with the caller's balances and
// recent requests in context, and pings the notifier when the caller is
// filing a new request.
type leaveDesk struct {
	model    contractx.ModelInvoker
	persona  string
	data     contractx.DataConnector
	notifier contractx.Notifier
}

func newLeaveDesk(deps Deps) (contractx.Specialist, error) {
	return &leaveDesk{
		model:    deps.Model,
		persona:  deps.Prompts.PersonaFor(contractx.IntentLeave),
		data:     deps.Capabilities.Data,
		notifier: deps.Capabilities.Notifier,
	}, nil
}

func (s *leaveDesk) Run(ctx context.Context, text string, caller contractx.CallerContext) (contractx.DispatchResult, error) {
	log := logx.Component("leave_desk")

	payload := map[string]any{
		"question": text,
	}

	var sources []string
	if s.data != nil {
		if balances, err := s.data.LeaveBalances(ctx, caller.ID); err != nil {
			log.Warn().Err(err).Msg("leave balances unavailable")
		} else if len(balances) > 0 {
			payload["leave_balances"] = balances
			sources = append(sources, "hr-db: leave_balances")
		}
		if requests, err := s.data.RecentLeaveRequests(ctx, caller.ID, 5); err != nil {
			log.Warn().Err(err).Msg("leave requests unavailable")
		} else if len(requests) > 0 {
			payload["recent_requests"] = requests
			sources = append(sources, "hr-db: leave_requests")
		}
	}

	answer, err := invokePersona(ctx, s.model, s.persona, payload)
	if err != nil {
		return contractx.DispatchResult{}, err
	}

	if s.notifier != nil && mentionsNewRequest(text) {
		notifyErr := s.notifier.Notify(ctx, "", map[string]any{
			"event":    "leave_request_intent",
			"employee": caller.ID,
			"text":     text,
		})
		if notifyErr != nil {
			log.Warn().Err(notifyErr).Msg("leave request notification failed")
		}
	}

	return contractx.DispatchResult{
		Answer:     answer,
		Confidence: specialistConfidence,
		AgentType:  string(TypeLeaveDesk),
		Sources:    sources,
	}, nil
}

func mentionsNewRequest(text string) bool {
	lowered := strings.ToLower(text)
	for _, marker := range []string{"request", "book", "submit", "apply"} {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return false
}
