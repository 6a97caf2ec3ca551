package dispatch

import (
	"context"

	contractx "github.com/napatw/Sarabun-HR-Copilot/agent/contract"
	permissionx "github.com/napatw/Sarabun-HR-Copilot/agent/permission"
)

// DispatchAll runs a descending-confidence candidate list through the
// dispatcher. Candidates below CandidateThreshold are skipped; denied
// candidates are recorded without dispatching. Result order mirrors the
// input order.
func (d *Dispatcher) DispatchAll(ctx context.Context, candidates []contractx.Classification, text string, caller contractx.CallerContext) []contractx.DispatchResult {
	results := make([]contractx.DispatchResult, 0, len(candidates))

	for _, candidate := range candidates {
		if candidate.Confidence < CandidateThreshold {
			d.log.Debug().
				Str("intent", candidate.Intent.String()).
				Float64("confidence", candidate.Confidence).
				Msg("candidate below dispatch threshold, skipped")
			continue
		}

		if !permissionx.Allowed(caller, candidate.Intent) {
			results = append(results, contractx.DispatchResult{
				Intent:     candidate.Intent,
				Confidence: 0,
				Err:        "Permission denied",
			})
			continue
		}

		res := d.Dispatch(ctx, candidate.Intent, text, caller)
		res.Intent = candidate.Intent
		results = append(results, res)
	}

	return results
}
