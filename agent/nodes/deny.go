package routernode

import (
	"fmt"

	contractx "github.com/napatw/Sarabun-HR-Copilot/agent/contract"
	permissionx "github.com/napatw/Sarabun-HR-Copilot/agent/permission"
)

// Deny produces the permission-denied response. Confidence is 1.0: the
// denial itself is a certain fact, not a hedge on an answer.
func Deny(in *GraphState) (contractx.FinalResponse, error) {
	if in == nil {
		return contractx.FinalResponse{}, fmt.Errorf("graph state is nil")
	}

	role := permissionx.NormalizeRole(in.Caller.Role)
	return contractx.FinalResponse{
		Answer: fmt.Sprintf(
			"Your role (%s) does not have access to %s queries. Contact the HR team if you believe you need this access.",
			role, in.Classification.Intent),
		Confidence: 1.0,
		AgentType:  "router",
		Err:        "Permission denied",
		Intents:    []contractx.Classification{in.Classification},
	}, nil
}
