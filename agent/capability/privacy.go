package capability

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/uptrace/bun"

	contractx "github.com/napatw/Sarabun-HR-Copilot/agent/contract"
)

type subjectRequestRow struct {
	bun.BaseModel `bun:"table:subject_requests,alias:sr"`

	ID         string    `bun:"id,pk"`
	EmployeeID string    `bun:"employee_id"`
	Kind       string    `bun:"kind"`
	Detail     string    `bun:"detail"`
	Status     string    `bun:"status"`
	CreatedAt  time.Time `bun:"created_at"`
}

type consentRow struct {
	bun.BaseModel `bun:"table:consents,alias:c"`

	EmployeeID string `bun:"employee_id"`
	Purpose    string `bun:"purpose"`
	Granted    bool   `bun:"granted"`
}

// SubjectRequestStore persists data-subject requests in Postgres.
type SubjectRequestStore struct {
	db *bun.DB
}

var _ contractx.SubjectRequestRepository = (*SubjectRequestStore)(nil)

func NewSubjectRequestStore(db *bun.DB) *SubjectRequestStore {
	return &SubjectRequestStore{db: db}
}

func (s *SubjectRequestStore) Record(ctx context.Context, employeeID, kind, detail string) (string, error) {
	employeeID = strings.TrimSpace(employeeID)
	kind = strings.TrimSpace(kind)
	if employeeID == "" || kind == "" {
		return "", fmt.Errorf("%w: employee id and kind are required", contractx.ErrValidation)
	}

	now := time.Now().UTC()
	row := &subjectRequestRow{
		ID:         fmt.Sprintf("sr_%d", now.UnixNano()),
		EmployeeID: employeeID,
		Kind:       kind,
		Detail:     strings.TrimSpace(detail),
		Status:     "open",
		CreatedAt:  now,
	}

	if _, err := s.db.NewInsert().Model(row).Exec(ctx); err != nil {
		return "", fmt.Errorf("insert subject request: %w", err)
	}
	return row.ID, nil
}

func (s *SubjectRequestStore) Open(ctx context.Context, employeeID string) ([]contractx.SubjectRequest, error) {
	var rows []subjectRequestRow
	err := s.db.NewSelect().
		Model(&rows).
		Where("employee_id = ?", employeeID).
		Where("status = ?", "open").
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("query subject requests: %w", err)
	}

	out := make([]contractx.SubjectRequest, 0, len(rows))
	for _, row := range rows {
		out = append(out, contractx.SubjectRequest{
			ID:         row.ID,
			EmployeeID: row.EmployeeID,
			Kind:       row.Kind,
			Detail:     row.Detail,
			Status:     row.Status,
		})
	}
	return out, nil
}

// ConsentStore answers consent lookups from Postgres.
type ConsentStore struct {
	db *bun.DB
}

var _ contractx.ConsentRepository = (*ConsentStore)(nil)

func NewConsentStore(db *bun.DB) *ConsentStore {
	return &ConsentStore{db: db}
}

func (s *ConsentStore) HasConsent(ctx context.Context, employeeID, purpose string) (bool, error) {
	exists, err := s.db.NewSelect().
		Model((*consentRow)(nil)).
		Where("employee_id = ?", employeeID).
		Where("purpose = ?", purpose).
		Where("granted = TRUE").
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("query consent: %w", err)
	}
	return exists, nil
}
