package capability

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	openaisdk "github.com/openai/openai-go"

	contractx "github.com/napatw/Sarabun-HR-Copilot/agent/contract"
	logx "github.com/napatw/Sarabun-HR-Copilot/pkg/logger"
	upstashx "github.com/napatw/Sarabun-HR-Copilot/pkg/upstash"
)

const defaultSnippetKey = "hrdocs:snippets"

// storedSnippet is the JSON shape indexed in Redis. Embedding is optional;
// snippets without one only participate in keyword ranking.
type storedSnippet struct {
	Ref       string    `json:"ref"`
	Text      string    `json:"text"`
	Embedding []float64 `json:"embedding,omitempty"`
}

// SnippetRetriever ranks policy snippets stored in Upstash Redis against a
// query. With an OpenAI client it ranks by embedding similarity; without
// one, or when the embedding call fails, it degrades to keyword overlap.
type SnippetRetriever struct {
	redis      *upstashx.Client
	key        string
	openai     *openaisdk.Client
	embedModel string
}

var _ contractx.RetrievalPipeline = (*SnippetRetriever)(nil)

func NewSnippetRetriever(redis *upstashx.Client, key string, openai *openaisdk.Client, embedModel string) (*SnippetRetriever, error) {
	if redis == nil {
		return nil, fmt.Errorf("%w: redis client is required", contractx.ErrCapabilityUnavailable)
	}
	if strings.TrimSpace(key) == "" {
		key = defaultSnippetKey
	}
	if strings.TrimSpace(embedModel) == "" {
		embedModel = string(openaisdk.EmbeddingModelTextEmbedding3Small)
	}
	return &SnippetRetriever{
		redis:      redis,
		key:        key,
		openai:     openai,
		embedModel: embedModel,
	}, nil
}

func (r *SnippetRetriever) Retrieve(ctx context.Context, query string, limit int) ([]contractx.Snippet, error) {
	if limit <= 0 {
		limit = 3
	}

	items, err := r.redis.ListRange(ctx, r.key, 0, -1)
	if err != nil {
		return nil, fmt.Errorf("load snippets: %w", err)
	}
	if len(items) == 0 {
		return nil, nil
	}

	snippets := make([]storedSnippet, 0, len(items))
	for _, item := range items {
		var sn storedSnippet
		if err := json.Unmarshal([]byte(item), &sn); err != nil {
			continue
		}
		if strings.TrimSpace(sn.Text) == "" {
			continue
		}
		snippets = append(snippets, sn)
	}

	scores := r.rank(ctx, query, snippets)

	type scored struct {
		snippet storedSnippet
		score   float64
	}
	ranked := make([]scored, 0, len(snippets))
	for i, sn := range snippets {
		if scores[i] <= 0 {
			continue
		}
		ranked = append(ranked, scored{snippet: sn, score: scores[i]})
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].score > ranked[b].score
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	out := make([]contractx.Snippet, 0, len(ranked))
	for _, item := range ranked {
		out = append(out, contractx.Snippet{Ref: item.snippet.Ref, Text: item.snippet.Text})
	}
	return out, nil
}

func (r *SnippetRetriever) rank(ctx context.Context, query string, snippets []storedSnippet) []float64 {
	if r.openai != nil {
		if scores, ok := r.rankByEmbedding(ctx, query, snippets); ok {
			return scores
		}
	}
	return rankByKeywords(query, snippets)
}

func (r *SnippetRetriever) rankByEmbedding(ctx context.Context, query string, snippets []storedSnippet) ([]float64, bool) {
	resp, err := r.openai.Embeddings.New(ctx, openaisdk.EmbeddingNewParams{
		Model: openaisdk.EmbeddingModel(r.embedModel),
		Input: openaisdk.EmbeddingNewParamsInputUnion{
			OfString: openaisdk.String(query),
		},
	})
	if err != nil || len(resp.Data) == 0 {
		log := logx.Component("retrieval")
		log.Warn().Err(err).Msg("embedding query failed, keyword ranking instead")
		return nil, false
	}

	queryVec := resp.Data[0].Embedding
	scores := make([]float64, len(snippets))
	usable := false
	for i, sn := range snippets {
		if len(sn.Embedding) != len(queryVec) || len(queryVec) == 0 {
			continue
		}
		scores[i] = cosine(queryVec, sn.Embedding)
		usable = true
	}
	return scores, usable
}

func rankByKeywords(query string, snippets []storedSnippet) []float64 {
	words := strings.Fields(strings.ToLower(query))
	scores := make([]float64, len(snippets))
	for i, sn := range snippets {
		text := strings.ToLower(sn.Text)
		for _, word := range words {
			if len(word) < 3 {
				continue
			}
			if strings.Contains(text, word) {
				scores[i]++
			}
		}
	}
	return scores
}

func cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
