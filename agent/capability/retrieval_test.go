package capability

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	upstashx "github.com/napatw/Sarabun-HR-Copilot/pkg/upstash"
)

func snippetServer(t *testing.T, snippets []storedSnippet) *httptest.Server {
	t.Helper()

	encoded := make([]string, 0, len(snippets))
	for _, sn := range snippets {
		raw, err := json.Marshal(sn)
		if err != nil {
			t.Fatalf("marshal snippet: %v", err)
		}
		encoded = append(encoded, string(raw))
	}
	result, err := json.Marshal(encoded)
	if err != nil {
		t.Fatalf("marshal result: %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		var command []any
		if err := json.NewDecoder(r.Body).Decode(&command); err != nil {
			t.Errorf("decode command: %v", err)
		}
		if len(command) == 0 || command[0] != "LRANGE" {
			t.Errorf("unexpected command: %#v", command)
		}
		fmt.Fprintf(w, `{"result":%s}`, result)
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestRetriever(t *testing.T, server *httptest.Server) *SnippetRetriever {
	t.Helper()

	redis, err := upstashx.NewClient(
		upstashx.Config{URL: server.URL, Token: "token"},
		upstashx.WithHTTPClient(server.Client()),
	)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	retriever, err := NewSnippetRetriever(redis, "hrdocs:test", nil, "")
	if err != nil {
		t.Fatalf("NewSnippetRetriever() error = %v", err)
	}
	return retriever
}

func TestRetrieveRanksByKeywordOverlap(t *testing.T) {
	t.Parallel()

	server := snippetServer(t, []storedSnippet{
		{Ref: "handbook: hours", Text: "Standard working hours run nine to six."},
		{Ref: "handbook: remote-work", Text: "Employees may choose remote work three days per week; remote work requires manager signoff."},
		{Ref: "handbook: travel", Text: "Travel bookings go through the agency portal."},
	})
	retriever := newTestRetriever(t, server)

	got, err := retriever.Retrieve(context.Background(), "remote work rules", 2)
	if err != nil {
		t.Fatalf("Retrieve() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected two matching snippets, got %d", len(got))
	}
	if got[0].Ref != "handbook: remote-work" {
		t.Fatalf("unexpected top snippet: %q", got[0].Ref)
	}
	if got[1].Ref != "handbook: hours" {
		t.Fatalf("unexpected second snippet: %q", got[1].Ref)
	}
}

func TestRetrieveHonorsLimit(t *testing.T) {
	t.Parallel()

	server := snippetServer(t, []storedSnippet{
		{Ref: "a", Text: "leave policy part one"},
		{Ref: "b", Text: "leave policy part two"},
		{Ref: "c", Text: "leave policy part three"},
	})
	retriever := newTestRetriever(t, server)

	got, err := retriever.Retrieve(context.Background(), "leave policy", 2)
	if err != nil {
		t.Fatalf("Retrieve() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected the limit to cap results, got %d", len(got))
	}
}

func TestRetrieveSkipsMalformedEntries(t *testing.T) {
	t.Parallel()

	result, err := json.Marshal([]string{
		"not json at all",
		`{"ref":"ok","text":"leave policy snippet"}`,
		`{"ref":"blank","text":"   "}`,
	})
	if err != nil {
		t.Fatalf("marshal result: %v", err)
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"result":%s}`, result)
	}))
	t.Cleanup(server.Close)
	retriever := newTestRetriever(t, server)

	got, err := retriever.Retrieve(context.Background(), "leave policy", 3)
	if err != nil {
		t.Fatalf("Retrieve() error = %v", err)
	}
	if len(got) != 1 || got[0].Ref != "ok" {
		t.Fatalf("expected only the valid snippet, got %v", got)
	}
}

func TestRetrieveEmptyStore(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"result":[]}`)
	}))
	t.Cleanup(server.Close)
	retriever := newTestRetriever(t, server)

	got, err := retriever.Retrieve(context.Background(), "anything", 3)
	if err != nil {
		t.Fatalf("Retrieve() error = %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no snippets, got %v", got)
	}
}

func TestNewSnippetRetrieverRequiresRedis(t *testing.T) {
	t.Parallel()

	if _, err := NewSnippetRetriever(nil, "", nil, ""); err == nil {
		t.Fatal("expected error without a redis client")
	}
}
