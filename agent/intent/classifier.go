package intent

import (
	"context"
	"strings"

	"github.com/cloudwego/eino/schema"
	contractx "github.com/napatw/Sarabun-HR-Copilot/agent/contract"
	llmx "github.com/napatw/Sarabun-HR-Copilot/agent/llm"
	logx "github.com/napatw/Sarabun-HR-Copilot/pkg/logger"
	"github.com/rs/zerolog"
)

// Thresholds are the confidence levels the classifier assigns. They are
// inherited tuning values; keep them as data, they are not derived from
// anything.
type Thresholds struct {
	Strong   float64 // clear winner, or sole scoring category
	Distinct float64 // winner beats the runner-up
	Tie      float64 // tie resolved by table order
	Degraded float64 // model fallback failed entirely
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		Strong:   0.9,
		Distinct: 0.8,
		Tie:      0.7,
		Degraded: 0.3,
	}
}

// strongScore is the keyword score at which a single winner is trusted
// outright; phraseWeightDivisor turns phrase length into a score bonus
// (1 + len/divisor per hit).
const (
	strongScore         = 2.0
	phraseWeightDivisor = 20.0
)

// Classifier maps raw text to one (intent, confidence) pair. Keyword
// scoring decides whenever any phrase hits; a generative fallback covers
// the rest. Classify never fails: total fallback failure degrades to
// (unclear, Thresholds.Degraded).
type Classifier struct {
	model      contractx.ModelInvoker
	prompt     string
	thresholds Thresholds
	log        zerolog.Logger
}

// New builds a classifier. model may be nil; the fallback then degrades
// immediately.
func New(model contractx.ModelInvoker, classifierPrompt string, thresholds Thresholds) *Classifier {
	return &Classifier{
		model:      model,
		prompt:     strings.TrimSpace(classifierPrompt),
		thresholds: thresholds,
		log:        logx.Component("classifier"),
	}
}

func (c *Classifier) Classify(ctx context.Context, text string) contractx.Classification {
	lowered := strings.ToLower(text)

	var (
		best       contractx.Intent
		bestScore  float64
		runnerUp   float64
		scoredCats int
	)

	for _, entry := range keywordTable {
		score := 0.0
		for _, phrase := range entry.phrases {
			if strings.Contains(lowered, phrase) {
				score += 1 + float64(len(phrase))/phraseWeightDivisor
			}
		}
		if score <= 0 {
			continue
		}
		scoredCats++
		// Strict > keeps earlier table entries on equal scores.
		if score > bestScore {
			runnerUp = bestScore
			bestScore = score
			best = entry.intent
		} else if score > runnerUp {
			runnerUp = score
		}
	}

	switch {
	case bestScore >= strongScore, bestScore >= 1 && scoredCats == 1:
		return contractx.Classification{Intent: best, Confidence: contractx.Clamp01(c.thresholds.Strong)}
	case bestScore > runnerUp && bestScore > 0:
		return contractx.Classification{Intent: best, Confidence: contractx.Clamp01(c.thresholds.Distinct)}
	case bestScore >= 1:
		return contractx.Classification{Intent: best, Confidence: contractx.Clamp01(c.thresholds.Tie)}
	}

	return c.classifyWithModel(ctx, text)
}

type modelVerdict struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

func (c *Classifier) classifyWithModel(ctx context.Context, text string) contractx.Classification {
	degraded := contractx.Classification{
		Intent:     contractx.IntentUnclear,
		Confidence: c.thresholds.Degraded,
	}

	if c.model == nil || c.prompt == "" {
		return degraded
	}

	out, err := c.model.Invoke(ctx, []*schema.Message{
		schema.SystemMessage(c.prompt),
		schema.UserMessage(text),
	})
	if err != nil {
		c.log.Warn().Err(err).Msg("classifier model fallback failed")
		return degraded
	}

	verdict, err := llmx.DecodeLoose[modelVerdict](out)
	if err != nil {
		c.log.Warn().Err(err).Msg("classifier model output unparseable")
		return degraded
	}

	label := contractx.Intent(strings.TrimSpace(strings.ToLower(verdict.Intent)))
	if !label.Known() {
		label = contractx.IntentUnclear
	}

	return contractx.Classification{
		Intent:     label,
		Confidence: contractx.Clamp01(verdict.Confidence),
	}
}
