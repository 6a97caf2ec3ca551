package router

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/compose"
	contractx "github.com/napatw/Sarabun-HR-Copilot/agent/contract"
	routernode "github.com/napatw/Sarabun-HR-Copilot/agent/nodes"
	permissionx "github.com/napatw/Sarabun-HR-Copilot/agent/permission"
)

func (r *Router) compileHandleGraph(
	ctx context.Context,
) (compose.Runnable[routernode.GraphInput, contractx.FinalResponse], error) {
	graph := compose.NewGraph[routernode.GraphInput, contractx.FinalResponse]()

	if err := graph.AddLambdaNode("validate_request",
		compose.InvokableLambda(func(ctx context.Context, in routernode.GraphInput) (*routernode.GraphState, error) {
			return routernode.ValidateRequest(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node validate_request: %w", err)
	}

	if err := graph.AddLambdaNode("classify",
		compose.InvokableLambda(func(ctx context.Context, in *routernode.GraphState) (*routernode.GraphState, error) {
			return routernode.Classify(ctx, in, r.classifier)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node classify: %w", err)
	}

	if err := graph.AddLambdaNode("clarify",
		compose.InvokableLambda(func(ctx context.Context, in *routernode.GraphState) (contractx.FinalResponse, error) {
			return routernode.Clarify(ctx, in, r.model, r.clarifier)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node clarify: %w", err)
	}

	if err := graph.AddLambdaNode("deny",
		compose.InvokableLambda(func(ctx context.Context, in *routernode.GraphState) (contractx.FinalResponse, error) {
			return routernode.Deny(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node deny: %w", err)
	}

	if err := graph.AddLambdaNode("dispatch",
		compose.InvokableLambda(func(ctx context.Context, in *routernode.GraphState) (contractx.FinalResponse, error) {
			return routernode.Dispatch(ctx, in, r.dispatcher)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node dispatch: %w", err)
	}

	branch := compose.NewGraphBranch(
		func(ctx context.Context, in *routernode.GraphState) (string, error) {
			if in == nil {
				return "", fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
			}
			if in.Classification.Confidence < r.clarifyThreshold {
				return "clarify", nil
			}
			if !permissionx.Allowed(in.Caller, in.Classification.Intent) {
				return "deny", nil
			}
			return "dispatch", nil
		},
		map[string]bool{
			"clarify":  true,
			"deny":     true,
			"dispatch": true,
		},
	)

	if err := graph.AddEdge(compose.START, "validate_request"); err != nil {
		return nil, fmt.Errorf("add edge start->validate_request: %w", err)
	}
	if err := graph.AddEdge("validate_request", "classify"); err != nil {
		return nil, fmt.Errorf("add edge validate_request->classify: %w", err)
	}
	if err := graph.AddBranch("classify", branch); err != nil {
		return nil, fmt.Errorf("add branch after classify: %w", err)
	}
	for _, terminal := range []string{"clarify", "deny", "dispatch"} {
		if err := graph.AddEdge(terminal, compose.END); err != nil {
			return nil, fmt.Errorf("add edge %s->end: %w", terminal, err)
		}
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName("router.handle_query"))
	if err != nil {
		return nil, fmt.Errorf("compile router graph: %w", err)
	}
	return runner, nil
}
