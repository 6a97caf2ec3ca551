// Package permission holds the static role→intent access matrix.
package permission

import (
	"strings"

	contractx "github.com/napatw/Sarabun-HR-Copilot/agent/contract"
)

var anyRole = []contractx.Role{
	contractx.RoleEmployee,
	contractx.RoleManager,
	contractx.RoleHRAdmin,
}

var managerUp = []contractx.Role{
	contractx.RoleManager,
	contractx.RoleHRAdmin,
}

// matrix maps each intent to the roles permitted to use it. Intents absent
// from the matrix inherit the "unclear" entry.
var matrix = map[contractx.Intent][]contractx.Role{
	contractx.IntentPolicy:       anyRole,
	contractx.IntentLeave:        anyRole,
	contractx.IntentBenefits:     anyRole,
	contractx.IntentPayroll:      anyRole,
	contractx.IntentEmployeeInfo: anyRole,
	contractx.IntentPerformance:  managerUp,
	contractx.IntentAnalytics:    managerUp,
	contractx.IntentDataRequest:  anyRole,
	contractx.IntentMultiIntent:  anyRole,
	contractx.IntentUnclear:      anyRole,
}

// Allowed reports whether the caller's role may use the intent. A missing
// role defaults to employee; an unrecognized intent inherits the unclear
// permission set. Pure function, no side effects.
func Allowed(caller contractx.CallerContext, intent contractx.Intent) bool {
	role := NormalizeRole(caller.Role)

	roles, ok := matrix[intent]
	if !ok {
		roles = matrix[contractx.IntentUnclear]
	}

	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// NormalizeRole maps a blank role to the employee default.
func NormalizeRole(role contractx.Role) contractx.Role {
	if strings.TrimSpace(string(role)) == "" {
		return contractx.RoleEmployee
	}
	return role
}
