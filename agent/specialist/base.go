package specialist

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/schema"
	contractx "github.com/napatw/Sarabun-HR-Copilot/agent/contract"
)

// Confidence a specialist reports for a model-backed answer. Higher than
// the dispatcher's model fallback (0.85): the specialist had persona and
// capability context the fallback lacks.
const specialistConfidence = 0.9

// invokePersona sends a persona-framed JSON payload to the model and
// returns the trimmed reply.
func invokePersona(ctx context.Context, model contractx.ModelInvoker, persona string, payload map[string]any) (string, error) {
	if model == nil {
		return "", fmt.Errorf("%w: specialist has no model", contractx.ErrModelInvoke)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: marshal specialist payload: %v", contractx.ErrValidation, err)
	}

	out, err := model.Invoke(ctx, []*schema.Message{
		schema.SystemMessage(persona),
		schema.UserMessage(string(body)),
	})
	if err != nil {
		return "", err
	}

	answer := strings.TrimSpace(out)
	if answer == "" {
		return "", fmt.Errorf("%w: specialist answer is empty", contractx.ErrSchemaViolation)
	}
	return answer, nil
}
