package llm

import (
	"fmt"
	"strings"
	"time"

	contractx "github.com/napatw/Sarabun-HR-Copilot/agent/contract"
	openrouterx "github.com/napatw/Sarabun-HR-Copilot/pkg/openrouter"
)

// Stage names the two model roles this core distinguishes: the router
// (classification fallback, clarification) and the specialists.
type Stage string

const (
	StageRouter     Stage = "router"
	StageSpecialist Stage = "specialist"
)

type Config struct {
	BaseURL            string        `envconfig:"BASE_URL" split_words:"true" default:"https://openrouter.ai/api/v1"`
	APIKey             string        `envconfig:"API_KEY" split_words:"true" required:"true"`
	Model              string        `envconfig:"MODEL" split_words:"true" required:"true"`
	MaxCompletionToken int           `envconfig:"MAX_COMPLETION_TOKEN" split_words:"true" default:"2000"`
	Temperature        float32       `envconfig:"TEMPERATURE" split_words:"true" default:"0.3"`
	Timeout            time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"30s"`
	SiteURL            string        `envconfig:"SITE_URL" split_words:"true"`
	SiteName           string        `envconfig:"SITE_NAME" split_words:"true"`

	RouterModel           string  `envconfig:"ROUTER_MODEL" split_words:"true"`
	SpecialistModel       string  `envconfig:"SPECIALIST_MODEL" split_words:"true"`
	RouterTemperature     float32 `envconfig:"ROUTER_TEMPERATURE" split_words:"true" default:"-1"`
	SpecialistTemperature float32 `envconfig:"SPECIALIST_TEMPERATURE" split_words:"true" default:"-1"`
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("%w: openrouter api key is required", contractx.ErrValidation)
	}
	if strings.TrimSpace(c.Model) == "" {
		return fmt.Errorf("%w: default model is required", contractx.ErrValidation)
	}
	return nil
}

// OpenRouterFor resolves the effective model config for a stage, falling
// back to the defaults when no override is set.
func (c Config) OpenRouterFor(stage Stage) openrouterx.Config {
	modelName := strings.TrimSpace(c.Model)
	temp := c.Temperature

	switch stage {
	case StageRouter:
		if v := strings.TrimSpace(c.RouterModel); v != "" {
			modelName = v
		}
		if c.RouterTemperature >= 0 {
			temp = c.RouterTemperature
		}
	case StageSpecialist:
		if v := strings.TrimSpace(c.SpecialistModel); v != "" {
			modelName = v
		}
		if c.SpecialistTemperature >= 0 {
			temp = c.SpecialistTemperature
		}
	}

	maxCompletionToken := c.MaxCompletionToken
	return openrouterx.Config{
		BaseURL:            strings.TrimSpace(c.BaseURL),
		APIKey:             strings.TrimSpace(c.APIKey),
		Model:              modelName,
		MaxCompletionToken: &maxCompletionToken,
		Temperature:        temp,
		Timeout:            c.Timeout,
		SiteURL:            strings.TrimSpace(c.SiteURL),
		SiteName:           strings.TrimSpace(c.SiteName),
	}
}
