package capability

import (
	"fmt"
	"strings"

	contractx "github.com/napatw/Sarabun-HR-Copilot/agent/contract"
)

// RuleBiasAuditor flags wording in analytics answers that leans on
// protected attributes. Findings are advisory, not blocking.
type RuleBiasAuditor struct {
	terms []string
}

var _ contractx.BiasAuditor = (*RuleBiasAuditor)(nil)

func NewBiasAuditor() *RuleBiasAuditor {
	return &RuleBiasAuditor{
		terms: []string{
			"age", "gender", "pregnan", "religion", "disability",
			"marital", "nationality", "ethnic",
		},
	}
}

func (a *RuleBiasAuditor) Audit(answer string) []string {
	lowered := strings.ToLower(answer)
	var findings []string
	for _, term := range a.terms {
		if strings.Contains(lowered, term) {
			findings = append(findings, fmt.Sprintf("answer references protected attribute %q", term))
		}
	}
	return findings
}

// RuleComplianceEngine annotates answers with the regulations they touch.
type RuleComplianceEngine struct {
	rules map[string]string
}

var _ contractx.ComplianceEngine = (*RuleComplianceEngine)(nil)

func NewComplianceEngine() *RuleComplianceEngine {
	return &RuleComplianceEngine{
		rules: map[string]string{
			"personal data": "GDPR Art. 5 (data minimisation)",
			"retention":     "GDPR Art. 5(1)(e) (storage limitation)",
			"consent":       "GDPR Art. 7 (conditions for consent)",
			"overtime":      "Working Time Directive 2003/88/EC",
			"termination":   "local labor code, notice periods",
			"sick leave":    "statutory sick pay rules",
		},
	}
}

func (e *RuleComplianceEngine) Applicable(text string) []string {
	lowered := strings.ToLower(text)
	var applicable []string
	for keyword, rule := range e.rules {
		if strings.Contains(lowered, keyword) {
			applicable = append(applicable, rule)
		}
	}
	return applicable
}
