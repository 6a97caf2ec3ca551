package routernode

import (
	"context"
	"fmt"

	contractx "github.com/napatw/Sarabun-HR-Copilot/agent/contract"
	mergex "github.com/napatw/Sarabun-HR-Copilot/agent/merge"
)

// Dispatch routes the classified intent through the dispatcher. The
// multi_intent label goes through the multi-intent orchestrator and the
// merger; everything else dispatches directly.
func Dispatch(ctx context.Context, in *GraphState, dispatcher Dispatcher) (contractx.FinalResponse, error) {
	if in == nil {
		return contractx.FinalResponse{}, fmt.Errorf("graph state is nil")
	}

	intents := []contractx.Classification{in.Classification}

	if in.Classification.Intent == contractx.IntentMultiIntent {
		results := dispatcher.DispatchAll(ctx, intents, in.Text, in.Caller)
		merged := mergex.Merge(results)
		return contractx.FinalResponse{
			Answer:     merged.Answer,
			Confidence: merged.Confidence,
			AgentType:  "router",
			Sources:    merged.Sources,
			AgentsUsed: merged.AgentsUsed,
			Intents:    intents,
		}, nil
	}

	res := dispatcher.Dispatch(ctx, in.Classification.Intent, in.Text, in.Caller)
	return contractx.FinalResponse{
		Answer:     res.Answer,
		Confidence: contractx.Clamp01(res.Confidence),
		AgentType:  "router",
		Sources:    res.Sources,
		Err:        res.Err,
		Intents:    intents,
	}, nil
}
