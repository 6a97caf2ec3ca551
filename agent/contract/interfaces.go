package contract

import (
	"context"

	"github.com/cloudwego/eino/schema"
)

// ModelInvoker is the generative-model contract this core depends on.
// Implementations may fail; callers decide how a failure degrades.
type ModelInvoker interface {
	Invoke(ctx context.Context, messages []*schema.Message) (string, error)
}

// Specialist answers queries for one or more intents. Run may fail; the
// dispatcher treats any error as an escalation to the fallback chain.
type Specialist interface {
	Run(ctx context.Context, text string, caller CallerContext) (DispatchResult, error)
}

// SpecialistResolver maps an intent to a ready specialist. Resolve returns
// ErrNoSpecialist when the intent has no registered type and
// ErrSpecialistUnavailable when construction failed.
type SpecialistResolver interface {
	Resolve(intent Intent) (Specialist, error)
}

// DataConnector exposes the HR data reads the core may pull best-effort
// to enrich model-fallback prompts and specialist answers.
type DataConnector interface {
	LeaveBalances(ctx context.Context, employeeID string) (map[string]float64, error)
	RecentLeaveRequests(ctx context.Context, employeeID string, limit int) ([]LeaveRequest, error)
	ProfileSummary(ctx context.Context, employeeID string) (string, error)
	HeadcountByDepartment(ctx context.Context) (map[string]int, error)
}

type LeaveRequest struct {
	Kind   string `json:"kind"`
	From   string `json:"from"`
	To     string `json:"to"`
	Status string `json:"status"`
}

// Notifier pushes a message to an external channel (e.g. the caller's
// manager inbox). Best-effort; failures never fail a dispatch.
type Notifier interface {
	Notify(ctx context.Context, destination string, payload map[string]any) error
}

// BiasAuditor flags wording in analytics answers that leans on protected
// attributes. Findings are advisory.
type BiasAuditor interface {
	Audit(answer string) []string
}

// ComplianceEngine annotates policy answers with the rules they touch.
type ComplianceEngine interface {
	Applicable(text string) []string
}

// RetrievalPipeline returns supporting snippets for a query.
type RetrievalPipeline interface {
	Retrieve(ctx context.Context, query string, limit int) ([]Snippet, error)
}

type Snippet struct {
	Ref  string `json:"ref"`
	Text string `json:"text"`
}

// PIIFilter redacts personally identifying strings from outbound text.
type PIIFilter interface {
	Redact(text string) string
}

// SubjectRequestRepository records data-subject requests (export, erasure).
type SubjectRequestRepository interface {
	Record(ctx context.Context, employeeID, kind, detail string) (string, error)
	Open(ctx context.Context, employeeID string) ([]SubjectRequest, error)
}

type SubjectRequest struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Kind       string `json:"kind"`
	Detail     string `json:"detail,omitempty"`
	Status     string `json:"status"`
}

// ConsentRepository answers whether an employee consented to a processing
// purpose.
type ConsentRepository interface {
	HasConsent(ctx context.Context, employeeID, purpose string) (bool, error)
}
