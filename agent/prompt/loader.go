package prompt

import (
	_ "embed"
	"strings"

	contractx "github.com/napatw/Sarabun-HR-Copilot/agent/contract"
)

var (
	//go:embed template/classifier.txt
	classifierRaw string

	//go:embed template/clarifier.txt
	clarifierRaw string

	//go:embed template/persona_policy.txt
	personaPolicyRaw string

	//go:embed template/persona_leave.txt
	personaLeaveRaw string

	//go:embed template/persona_benefits.txt
	personaBenefitsRaw string

	//go:embed template/persona_people.txt
	personaPeopleRaw string

	//go:embed template/persona_insights.txt
	personaInsightsRaw string

	//go:embed template/persona_privacy.txt
	personaPrivacyRaw string

	//go:embed template/persona_generic.txt
	personaGenericRaw string
)

// PromptSet holds loaded prompt content.
type PromptSet struct {
	Classifier string
	Clarifier  string

	personas map[contractx.Intent]string
	generic  string
}

// LoadPromptSet returns a PromptSet with trimmed prompt strings. Safe to
// call concurrently; the embed is compile-time and trimming is cheap.
func LoadPromptSet() PromptSet {
	return PromptSet{
		Classifier: strings.TrimSpace(classifierRaw),
		Clarifier:  strings.TrimSpace(clarifierRaw),
		personas: map[contractx.Intent]string{
			contractx.IntentPolicy:       strings.TrimSpace(personaPolicyRaw),
			contractx.IntentLeave:        strings.TrimSpace(personaLeaveRaw),
			contractx.IntentBenefits:     strings.TrimSpace(personaBenefitsRaw),
			contractx.IntentPayroll:      strings.TrimSpace(personaBenefitsRaw),
			contractx.IntentEmployeeInfo: strings.TrimSpace(personaPeopleRaw),
			contractx.IntentPerformance:  strings.TrimSpace(personaInsightsRaw),
			contractx.IntentAnalytics:    strings.TrimSpace(personaInsightsRaw),
			contractx.IntentDataRequest:  strings.TrimSpace(personaPrivacyRaw),
		},
		generic: strings.TrimSpace(personaGenericRaw),
	}
}

// PersonaFor returns the system persona used by the model fallback for an
// intent, or the generic persona when none is defined.
func (p PromptSet) PersonaFor(intent contractx.Intent) string {
	if persona, ok := p.personas[intent]; ok && persona != "" {
		return persona
	}
	return p.generic
}
