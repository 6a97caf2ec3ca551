package capability

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	contractx "github.com/napatw/Sarabun-HR-Copilot/agent/contract"
)

type employeeRow struct {
	bun.BaseModel `bun:"table:employees,alias:e"`

	ID          string `bun:"id,pk"`
	FullName    string `bun:"full_name"`
	Title       string `bun:"title"`
	Department  string `bun:"department"`
	ManagerName string `bun:"manager_name"`
	Email       string `bun:"email"`
}

type leaveBalanceRow struct {
	bun.BaseModel `bun:"table:leave_balances,alias:lb"`

	EmployeeID string  `bun:"employee_id"`
	Kind       string  `bun:"kind"`
	DaysLeft   float64 `bun:"days_left"`
}

type leaveRequestRow struct {
	bun.BaseModel `bun:"table:leave_requests,alias:lr"`

	EmployeeID string    `bun:"employee_id"`
	Kind       string    `bun:"kind"`
	FromDate   time.Time `bun:"from_date"`
	ToDate     time.Time `bun:"to_date"`
	Status     string    `bun:"status"`
}

// PostgresConnector reads HR data from Postgres through bun.
type PostgresConnector struct {
	db *bun.DB
}

var _ contractx.DataConnector = (*PostgresConnector)(nil)

func NewPostgresConnector(dsn string) (*PostgresConnector, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("%w: database dsn is empty", contractx.ErrCapabilityUnavailable)
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())

	return &PostgresConnector{db: db}, nil
}

// DB exposes the underlying handle for the repositories sharing this
// connection.
func (c *PostgresConnector) DB() *bun.DB {
	return c.db
}

func (c *PostgresConnector) LeaveBalances(ctx context.Context, employeeID string) (map[string]float64, error) {
	var rows []leaveBalanceRow
	err := c.db.NewSelect().
		Model(&rows).
		Where("employee_id = ?", employeeID).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("query leave balances: %w", err)
	}

	balances := make(map[string]float64, len(rows))
	for _, row := range rows {
		balances[row.Kind] = row.DaysLeft
	}
	return balances, nil
}

func (c *PostgresConnector) RecentLeaveRequests(ctx context.Context, employeeID string, limit int) ([]contractx.LeaveRequest, error) {
	if limit <= 0 {
		limit = 5
	}

	var rows []leaveRequestRow
	err := c.db.NewSelect().
		Model(&rows).
		Where("employee_id = ?", employeeID).
		Order("from_date DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("query leave requests: %w", err)
	}

	requests := make([]contractx.LeaveRequest, 0, len(rows))
	for _, row := range rows {
		requests = append(requests, contractx.LeaveRequest{
			Kind:   row.Kind,
			From:   row.FromDate.Format("2006-01-02"),
			To:     row.ToDate.Format("2006-01-02"),
			Status: row.Status,
		})
	}
	return requests, nil
}

func (c *PostgresConnector) ProfileSummary(ctx context.Context, employeeID string) (string, error) {
	var row employeeRow
	err := c.db.NewSelect().
		Model(&row).
		Where("id = ?", employeeID).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return "", fmt.Errorf("query employee profile: %w", err)
	}

	return fmt.Sprintf("%s, %s in %s, reports to %s (%s)",
		row.FullName, row.Title, row.Department, row.ManagerName, row.Email), nil
}

func (c *PostgresConnector) HeadcountByDepartment(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		Department string `bun:"department"`
		Headcount  int    `bun:"headcount"`
	}
	err := c.db.NewSelect().
		Model((*employeeRow)(nil)).
		Column("department").
		ColumnExpr("count(*) AS headcount").
		Group("department").
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("query headcount: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Department] = row.Headcount
	}
	return counts, nil
}
