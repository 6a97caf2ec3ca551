// Package routernode holds the node functions the router graph is wired
// from, plus the state threaded between them.
package routernode

import (
	"context"
	"errors"
	"strings"

	contractx "github.com/napatw/Sarabun-HR-Copilot/agent/contract"
)

var ErrInvalidQuery = errors.New("query text is empty")

// Classifier is the slice of the intent classifier the nodes need.
type Classifier interface {
	Classify(ctx context.Context, text string) contractx.Classification
}

// Dispatcher is the slice of the dispatch layer the nodes need.
type Dispatcher interface {
	Dispatch(ctx context.Context, intent contractx.Intent, text string, caller contractx.CallerContext) contractx.DispatchResult
	DispatchAll(ctx context.Context, candidates []contractx.Classification, text string, caller contractx.CallerContext) []contractx.DispatchResult
}

type GraphInput struct {
	Text    string
	Caller  *contractx.CallerContext
	History []contractx.Turn
}

type GraphState struct {
	Text    string
	Caller  contractx.CallerContext
	History []contractx.Turn

	Classification contractx.Classification
}

// ValidateRequest normalizes the input: trimmed text, defaulted caller.
// History is carried but never consumed; it belongs to the session store.
func ValidateRequest(in GraphInput) (*GraphState, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, ErrInvalidQuery
	}

	caller := contractx.DefaultCaller()
	if in.Caller != nil {
		caller = *in.Caller
		if strings.TrimSpace(string(caller.Role)) == "" {
			caller.Role = contractx.RoleEmployee
		}
		if strings.TrimSpace(caller.ID) == "" {
			caller.ID = "unknown"
		}
	}

	return &GraphState{
		Text:    text,
		Caller:  caller,
		History: in.History,
	}, nil
}

// Classify runs the intent classifier and records its single candidate.
func Classify(ctx context.Context, in *GraphState, classifier Classifier) (*GraphState, error) {
	if in == nil {
		return nil, errors.New("graph state is nil")
	}
	in.Classification = classifier.Classify(ctx, in.Text)
	return in, nil
}
