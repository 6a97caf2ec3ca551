package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	contractx "github.com/napatw/Sarabun-HR-Copilot/agent/contract"
)

// DecodeLoose unmarshals a model reply into T. Models wrap JSON in prose
// or code fences often enough that a direct parse is tried first and, on
// failure, the first balanced {...} substring is parsed instead.
func DecodeLoose[T any](raw string) (T, error) {
	var out T

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return out, fmt.Errorf("%w: empty model output", contractx.ErrSchemaViolation)
	}

	if err := json.Unmarshal([]byte(trimmed), &out); err == nil {
		return out, nil
	}

	candidate, ok := firstBalancedObject(trimmed)
	if !ok {
		return out, fmt.Errorf("%w: no JSON object in model output", contractx.ErrSchemaViolation)
	}
	if err := json.Unmarshal([]byte(candidate), &out); err != nil {
		return out, fmt.Errorf("%w: %v", contractx.ErrSchemaViolation, err)
	}
	return out, nil
}

// firstBalancedObject scans for the first top-level {...} span, tracking
// string literals and escapes so braces inside values don't miscount.
func firstBalancedObject(s string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		ch := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			if depth > 0 {
				inString = true
			}
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 && start >= 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
