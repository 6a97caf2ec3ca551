package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	capabilityx "github.com/napatw/Sarabun-HR-Copilot/agent/capability"
	contractx "github.com/napatw/Sarabun-HR-Copilot/agent/contract"
	dispatchx "github.com/napatw/Sarabun-HR-Copilot/agent/dispatch"
	intentx "github.com/napatw/Sarabun-HR-Copilot/agent/intent"
	llmx "github.com/napatw/Sarabun-HR-Copilot/agent/llm"
	promptx "github.com/napatw/Sarabun-HR-Copilot/agent/prompt"
	routerx "github.com/napatw/Sarabun-HR-Copilot/agent/router"
	specialistx "github.com/napatw/Sarabun-HR-Copilot/agent/specialist"
	configx "github.com/napatw/Sarabun-HR-Copilot/pkg/config"
	_ "github.com/napatw/Sarabun-HR-Copilot/pkg/logger/autoload"
	openrouterx "github.com/napatw/Sarabun-HR-Copilot/pkg/openrouter"
	qstashx "github.com/napatw/Sarabun-HR-Copilot/pkg/qstash"
	upstashx "github.com/napatw/Sarabun-HR-Copilot/pkg/upstash"
)

type AppConfig struct {
	DatabaseDSN       string `envconfig:"DATABASE_DSN" split_words:"true"`
	NotifyDestination string `envconfig:"NOTIFY_DESTINATION" split_words:"true"`
	SnippetKey        string `envconfig:"SNIPPET_KEY" split_words:"true"`
	EmbedModel        string `envconfig:"EMBED_MODEL" split_words:"true"`
	EmployeeID        string `envconfig:"EMPLOYEE_ID" split_words:"true" default:"unknown"`
	Role              string `envconfig:"ROLE" split_words:"true" default:"employee"`
	Department        string `envconfig:"DEPARTMENT" split_words:"true"`
}

func main() {
	ctx := context.Background()

	appCfg := configx.MustNew[AppConfig]("HR")
	llmCfg := configx.MustNew[llmx.Config]("LLM")
	if err := llmCfg.Validate(); err != nil {
		panic(err)
	}

	routerModelCfg := llmCfg.OpenRouterFor(llmx.StageRouter)
	routerModel, err := routerModelCfg.New(ctx)
	if err != nil {
		panic(fmt.Errorf("create router model: %w", err))
	}
	routerInvoker, err := llmx.NewInvoker(routerModel)
	if err != nil {
		panic(err)
	}

	specialistModelCfg := llmCfg.OpenRouterFor(llmx.StageSpecialist)
	specialistModel, err := specialistModelCfg.New(ctx)
	if err != nil {
		panic(fmt.Errorf("create specialist model: %w", err))
	}
	specialistInvoker, err := llmx.NewInvoker(specialistModel)
	if err != nil {
		panic(err)
	}

	buildOpts := capabilityx.BuildOptions{
		DatabaseDSN:       appCfg.DatabaseDSN,
		NotifyDestination: appCfg.NotifyDestination,
		SnippetKey:        appCfg.SnippetKey,
		OpenAI:            openrouterx.NewClient(routerModelCfg),
		EmbedModel:        appCfg.EmbedModel,
	}

	if qstashCfg, err := configx.New[qstashx.Config]("QSTASH"); err != nil {
		log.Warn().Err(err).Msg("qstash not configured, notifier disabled")
	} else if client, err := qstashx.NewClient(*qstashCfg); err != nil {
		log.Warn().Err(err).Msg("qstash client failed, notifier disabled")
	} else {
		buildOpts.QStash = client
	}

	if upstashCfg, err := configx.New[upstashx.Config]("UPSTASH"); err != nil {
		log.Warn().Err(err).Msg("upstash not configured, retrieval disabled")
	} else if client, err := upstashx.NewClient(*upstashCfg); err != nil {
		log.Warn().Err(err).Msg("upstash client failed, retrieval disabled")
	} else {
		buildOpts.Upstash = client
	}

	caps := capabilityx.Build(buildOpts)
	prompts := promptx.LoadPromptSet()

	registry, err := specialistx.NewRegistry(specialistx.Deps{
		Model:        specialistInvoker,
		Prompts:      prompts,
		Capabilities: caps,
	})
	if err != nil {
		panic(err)
	}

	classifier := intentx.New(routerInvoker, prompts.Classifier, intentx.DefaultThresholds())
	dispatcher := dispatchx.New(registry, routerInvoker, caps.Data, prompts)

	r, err := routerx.New(classifier, dispatcher, routerInvoker, prompts.Clarifier, routerx.Config{})
	if err != nil {
		panic(err)
	}

	caller := contractx.CallerContext{
		ID:         appCfg.EmployeeID,
		Role:       contractx.Role(appCfg.Role),
		Department: appCfg.Department,
	}

	log.Info().Str("employee", caller.ID).Str("role", string(caller.Role)).Msg("hr copilot ready")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if text == "exit" || text == "quit" {
			break
		}

		resp := r.Handle(ctx, text, &caller, nil)
		encoded, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			log.Error().Err(err).Msg("encode response")
			continue
		}
		fmt.Println(string(encoded))
	}
}
