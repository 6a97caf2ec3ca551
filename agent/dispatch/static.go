package dispatch

import contractx "github.com/napatw/Sarabun-HR-Copilot/agent/contract"

const staticAgentType = "static_fallback"

// staticAnswers is the last chain stage: canned per-intent answers used
// when neither a specialist nor a model could help.
var staticAnswers = map[contractx.Intent]string{
	contractx.IntentPolicy: "Company policies, including remote work, working hours and " +
		"expenses, are published in the HR handbook on the intranet under HR > Policies.",
	contractx.IntentLeave: "You can view your leave balance and submit time-off requests " +
		"in the HR portal under My Time Off. Requests go to your manager for approval.",
	contractx.IntentBenefits: "Details on health insurance, retirement plans and other " +
		"benefits are in the benefits portal. Enrollment changes are possible during open " +
		"enrollment or after a qualifying life event.",
	contractx.IntentPayroll: "Payslips and tax documents are available in the payroll " +
		"portal. Salary payments arrive on the last working day of each month.",
	contractx.IntentDataRequest: "To exercise your data rights (export, correction, " +
		"erasure), file a request with the privacy office at privacy@company.example.",
}

const genericFallbackAnswer = "I could not find a confident answer to that. " +
	"Please reach out to the HR team directly and they will help you."

func (d *Dispatcher) staticAnswer(intent contractx.Intent) contractx.DispatchResult {
	if answer, ok := staticAnswers[intent]; ok {
		return contractx.DispatchResult{
			Answer:     answer,
			Confidence: staticConfidence,
			AgentType:  staticAgentType,
			Intent:     intent,
		}
	}
	return contractx.DispatchResult{
		Answer:     genericFallbackAnswer,
		Confidence: placeholderConfidence,
		AgentType:  staticAgentType,
		Intent:     intent,
	}
}
