package routernode

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/schema"
	contractx "github.com/napatw/Sarabun-HR-Copilot/agent/contract"
)

const clarifyExcerptLen = 30

// Clarify asks the caller what they meant instead of answering. The
// question comes from the model when one is configured and cooperative; a
// template quoting the start of their text covers the rest. The dispatcher
// is never reached from this path.
func Clarify(ctx context.Context, in *GraphState, model contractx.ModelInvoker, clarifierPrompt string) (contractx.FinalResponse, error) {
	if in == nil {
		return contractx.FinalResponse{}, fmt.Errorf("graph state is nil")
	}

	question := ""
	if model != nil && clarifierPrompt != "" {
		if out, err := model.Invoke(ctx, []*schema.Message{
			schema.SystemMessage(clarifierPrompt),
			schema.UserMessage(in.Text),
		}); err == nil {
			question = strings.TrimSpace(out)
		}
	}
	if question == "" {
		excerpt := in.Text
		if len(excerpt) > clarifyExcerptLen {
			excerpt = excerpt[:clarifyExcerptLen] + "..."
		}
		question = fmt.Sprintf(
			"I want to make sure I point you to the right place. Could you say more about what you need when you ask %q?",
			excerpt)
	}

	return contractx.FinalResponse{
		Answer:                question,
		Confidence:            contractx.Clamp01(in.Classification.Confidence),
		AgentType:             "router",
		RequiresClarification: true,
		Intents:               []contractx.Classification{in.Classification},
	}, nil
}
