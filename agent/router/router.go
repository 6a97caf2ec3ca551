// Package router wires the classifier, permission gate, dispatcher and
// merger into the single public entry point.
package router

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/compose"
	contractx "github.com/napatw/Sarabun-HR-Copilot/agent/contract"
	routernode "github.com/napatw/Sarabun-HR-Copilot/agent/nodes"
	logx "github.com/napatw/Sarabun-HR-Copilot/pkg/logger"
	"github.com/rs/zerolog"
)

// ClarifyThreshold is the classification confidence below which the
// router asks for clarification instead of dispatching. Inherited tuning
// value; keep as data.
const ClarifyThreshold = 0.5

type Config struct {
	// ClarifyThreshold overrides the default when > 0.
	ClarifyThreshold float64
}

type Router struct {
	classifier routernode.Classifier
	dispatcher routernode.Dispatcher
	model      contractx.ModelInvoker
	clarifier  string

	clarifyThreshold float64

	graphRunner compose.Runnable[routernode.GraphInput, contractx.FinalResponse]

	log zerolog.Logger
}

// New builds the router and compiles its graph. model may be nil; the
// clarification path then always uses the template fallback.
func New(
	classifier routernode.Classifier,
	dispatcher routernode.Dispatcher,
	model contractx.ModelInvoker,
	clarifierPrompt string,
	cfg Config,
) (*Router, error) {
	if classifier == nil {
		return nil, fmt.Errorf("%w: classifier is required", contractx.ErrValidation)
	}
	if dispatcher == nil {
		return nil, fmt.Errorf("%w: dispatcher is required", contractx.ErrValidation)
	}

	threshold := cfg.ClarifyThreshold
	if threshold <= 0 {
		threshold = ClarifyThreshold
	}

	r := &Router{
		classifier:       classifier,
		dispatcher:       dispatcher,
		model:            model,
		clarifier:        clarifierPrompt,
		clarifyThreshold: threshold,
		log:              logx.Component("router"),
	}

	graphRunner, err := r.compileHandleGraph(context.Background())
	if err != nil {
		return nil, err
	}
	r.graphRunner = graphRunner

	return r, nil
}

// Handle answers one query. It never returns an error: any failure inside
// the pipeline degrades to a fully shaped response.
func (r *Router) Handle(ctx context.Context, text string, caller *contractx.CallerContext, history []contractx.Turn) contractx.FinalResponse {
	out, err := r.graphRunner.Invoke(ctx, routernode.GraphInput{
		Text:    text,
		Caller:  caller,
		History: history,
	})
	if err != nil {
		r.log.Error().Err(err).Msg("router pipeline failed")
		return contractx.FinalResponse{
			Answer:     "Something went wrong while handling your question. Please try again.",
			Confidence: 0,
			AgentType:  "router",
			Err:        err.Error(),
		}
	}
	return out
}
