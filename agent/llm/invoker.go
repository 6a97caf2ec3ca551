package llm

import (
	"context"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	contractx "github.com/napatw/Sarabun-HR-Copilot/agent/contract"
)

// Invoker adapts an eino chat model to the ModelInvoker contract.
type Invoker struct {
	model einomodel.BaseChatModel
}

var _ contractx.ModelInvoker = (*Invoker)(nil)

func NewInvoker(model einomodel.BaseChatModel) (*Invoker, error) {
	if model == nil {
		return nil, fmt.Errorf("%w: chat model is required", contractx.ErrValidation)
	}
	return &Invoker{model: model}, nil
}

func (i *Invoker) Invoke(ctx context.Context, messages []*schema.Message) (string, error) {
	if len(messages) == 0 {
		return "", fmt.Errorf("%w: no messages to send", contractx.ErrValidation)
	}

	out, err := i.model.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("%w: %v", contractx.ErrModelInvoke, err)
	}
	if out == nil {
		return "", fmt.Errorf("%w: model returned no message", contractx.ErrModelInvoke)
	}

	content := strings.TrimSpace(out.Content)
	if content == "" {
		return "", fmt.Errorf("%w: model returned empty content", contractx.ErrModelInvoke)
	}
	return content, nil
}
