package intent

import contractx "github.com/napatw/Sarabun-HR-Copilot/agent/contract"

// intentKeywords pairs an intent with the phrases that vote for it. Table
// order follows contract.Intents; scoring ties resolve to the earliest
// entry, so do not reorder.
type intentKeywords struct {
	intent  contractx.Intent
	phrases []string
}

// Phrases are matched as substrings of the lower-cased query. Longer
// phrases score higher, so prefer specific wording over single words
// when two intents could collide.
var keywordTable = []intentKeywords{
	{
		intent: contractx.IntentPolicy,
		phrases: []string{
			"policy", "policies", "remote work", "work from home",
			"code of conduct", "dress code", "working hours",
			"travel policy", "expense rule",
		},
	},
	{
		intent: contractx.IntentLeave,
		phrases: []string{
			"leave", "vacation", "time off", "sick day", "sick leave",
			"parental leave", "annual leave", "leave balance", "day off",
			"public holiday",
		},
	},
	{
		intent: contractx.IntentBenefits,
		phrases: []string{
			"benefit", "insurance", "health plan", "dental", "retirement",
			"pension", "wellness", "perks",
		},
	},
	{
		intent: contractx.IntentPayroll,
		phrases: []string{
			"payroll", "salary", "payslip", "pay slip", "paycheck",
			"compensation", "tax document", "bank account",
		},
	},
	{
		intent: contractx.IntentEmployeeInfo,
		phrases: []string{
			"who is", "contact info", "email address", "phone number",
			"org chart", "reports to", "employee profile", "manager of",
		},
	},
	{
		intent: contractx.IntentPerformance,
		phrases: []string{
			"performance", "performance review", "appraisal",
			"review cycle", "feedback cycle", "rating",
		},
	},
	{
		intent: contractx.IntentAnalytics,
		phrases: []string{
			"analytics", "headcount", "attrition", "turnover",
			"how many employees", "statistics", "breakdown by",
		},
	},
	{
		intent: contractx.IntentDataRequest,
		phrases: []string{
			"my data", "gdpr", "data request", "personal data",
			"export my", "delete my", "consent",
			"right to be forgotten",
		},
	},
}
