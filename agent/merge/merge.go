// Package merge combines dispatch results into one response.
package merge

import (
	"fmt"
	"strings"

	contractx "github.com/napatw/Sarabun-HR-Copilot/agent/contract"
)

const emptyMergeAnswer = "No results to merge"

// Merge combines zero, one or many dispatch results.
//   - empty input: placeholder answer with zero confidence
//   - singleton: returned unchanged
//   - multiple: numbered concatenation, deduplicated source union, ordered
//     agent tags (duplicates kept), mean confidence
func Merge(results []contractx.DispatchResult) contractx.MergedResponse {
	switch len(results) {
	case 0:
		return contractx.MergedResponse{
			Answer:     emptyMergeAnswer,
			Confidence: 0,
			Sources:    []string{},
			AgentsUsed: []string{},
		}
	case 1:
		// Identity: the single result passes through untouched.
		return contractx.MergedResponse{
			Answer:     results[0].Answer,
			Confidence: contractx.Clamp01(results[0].Confidence),
			Sources:    append([]string{}, results[0].Sources...),
			AgentsUsed: []string{results[0].AgentType},
		}
	}

	var (
		parts      = make([]string, 0, len(results))
		agentsUsed = make([]string, 0, len(results))
		seen       = make(map[string]struct{})
		sources    = []string{}
		total      float64
	)

	for i, res := range results {
		parts = append(parts, fmt.Sprintf("%d. %s", i+1, res.Answer))
		agentsUsed = append(agentsUsed, res.AgentType)
		total += contractx.Clamp01(res.Confidence)
		for _, src := range res.Sources {
			if _, ok := seen[src]; ok {
				continue
			}
			seen[src] = struct{}{}
			sources = append(sources, src)
		}
	}

	return contractx.MergedResponse{
		Answer:     strings.Join(parts, "\n"),
		Confidence: contractx.Clamp01(total / float64(len(results))),
		Sources:    sources,
		AgentsUsed: agentsUsed,
	}
}
