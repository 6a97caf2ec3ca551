package contract

// Intent is a closed-set label describing the topic of a query.
type Intent string

const (
	IntentPolicy       Intent = "policy"
	IntentLeave        Intent = "leave"
	IntentBenefits     Intent = "benefits"
	IntentPayroll      Intent = "payroll"
	IntentEmployeeInfo Intent = "employee_info"
	IntentPerformance  Intent = "performance"
	IntentAnalytics    Intent = "analytics"
	IntentDataRequest  Intent = "data_request"
	IntentMultiIntent  Intent = "multi_intent"
	IntentUnclear      Intent = "unclear"
)

// Intents lists every known intent in declaration order. Classifier
// tie-breaks resolve to the earliest entry, so the order is load-bearing.
var Intents = []Intent{
	IntentPolicy,
	IntentLeave,
	IntentBenefits,
	IntentPayroll,
	IntentEmployeeInfo,
	IntentPerformance,
	IntentAnalytics,
	IntentDataRequest,
	IntentMultiIntent,
	IntentUnclear,
}

func (i Intent) String() string {
	return string(i)
}

// Known reports whether the label belongs to the closed intent set.
func (i Intent) Known() bool {
	for _, known := range Intents {
		if i == known {
			return true
		}
	}
	return false
}

type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
	RoleHRAdmin  Role = "hr_admin"
)

// CallerContext identifies who is asking. Department is informational only.
type CallerContext struct {
	ID         string `json:"id"`
	Role       Role   `json:"role"`
	Department string `json:"department,omitempty"`
}

// DefaultCaller stands in when the entry point receives no context.
func DefaultCaller() CallerContext {
	return CallerContext{ID: "unknown", Role: RoleEmployee}
}

// Turn is one prior exchange. Accepted on the entry point but not consumed
// by any decision logic here; history is owned by the session store.
type Turn struct {
	User      string `json:"user"`
	Assistant string `json:"assistant"`
}

// Classification is one (label, confidence) pair. Exactly one is produced
// per classification call; candidate lists reuse the same shape.
type Classification struct {
	Intent     Intent  `json:"intent"`
	Confidence float64 `json:"confidence"`
}

// DispatchResult is what one dispatch attempt produced, whichever stage
// of the fallback chain answered.
type DispatchResult struct {
	Answer     string   `json:"answer"`
	Confidence float64  `json:"confidence"`
	AgentType  string   `json:"agent_type"`
	Sources    []string `json:"sources,omitempty"`
	Intent     Intent   `json:"intent,omitempty"`
	Err        string   `json:"error,omitempty"`
}

// Usable reports whether the result carries an answer worth returning.
// Confidence at or below zero means the stage produced nothing and the
// chain must escalate.
func (r DispatchResult) Usable() bool {
	return r.Confidence > 0
}

// MergedResponse combines zero or more dispatch results. AgentsUsed keeps
// duplicates in invocation order for traceability; Sources is a
// duplicate-free union.
type MergedResponse struct {
	Answer     string   `json:"answer"`
	Confidence float64  `json:"confidence"`
	Sources    []string `json:"sources"`
	AgentsUsed []string `json:"agents_used"`
}

// FinalResponse is the only shape the entry point ever returns.
type FinalResponse struct {
	Answer                string           `json:"answer"`
	Confidence            float64          `json:"confidence"`
	AgentType             string           `json:"agent_type"`
	Sources               []string         `json:"sources,omitempty"`
	AgentsUsed            []string         `json:"agents_used,omitempty"`
	Err                   string           `json:"error,omitempty"`
	RequiresClarification bool             `json:"requires_clarification,omitempty"`
	Intents               []Classification `json:"intents,omitempty"`
}

// Clamp01 bounds a confidence value to [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
