package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"smartvault/internal/adapters/memory"
	"smartvault/internal/application"
	"smartvault/internal/domain"
)

func call(t *testing.T, h server.ToolHandlerFunc, args map[string]any) (string, bool) {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args

	res, err := h(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if len(res.Content) == 0 {
		t.Fatal("empty tool result")
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("unexpected content %T", res.Content[0])
	}
	return text.Text, res.IsError
}

func newVault(t *testing.T, backend *memory.Backend) *application.Vault {
	t.Helper()
	vault := application.NewVault(backend)
	if err := vault.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return vault
}

func TestBrowseHandler(t *testing.T) {
	backend := memory.New().
		Seed("h1", "photos/trip/a.jpg", 1, "").
		Seed("h2", "photos/b.jpg", 1, "")
	vault := newVault(t, backend)

	out, isErr := call(t, browseHandler(vault), map[string]any{"path": "photos"})
	if isErr {
		t.Fatalf("unexpected tool error: %s", out)
	}
	trip := strings.Index(out, "photos/trip/")
	file := strings.Index(out, "photos/b.jpg")
	if trip < 0 || file < 0 || trip > file {
		t.Errorf("expected folder before file, got:\n%s", out)
	}
}

func TestBrowseHandler_SeesExternalChanges(t *testing.T) {
	backend := memory.New()
	vault := newVault(t, backend)
	backend.Seed("h1", "late.txt", 1, "")

	out, _ := call(t, browseHandler(vault), nil)
	if !strings.Contains(out, "late.txt") {
		t.Errorf("expected refetched record, got:\n%s", out)
	}
}

func TestSearchHandler_RequiresQuery(t *testing.T) {
	vault := newVault(t, memory.New())

	out, isErr := call(t, searchHandler(vault), map[string]any{})
	if !isErr || !strings.Contains(out, "search query is required") {
		t.Errorf("expected query error, got %q", out)
	}
}

func TestTimelineHandler_RejectsUnknownMode(t *testing.T) {
	vault := newVault(t, memory.New())

	_, isErr := call(t, timelineHandler(vault), map[string]any{"mode": "created"})
	if !isErr {
		t.Error("expected error for unknown mode")
	}
}

func TestSimilarHandler_ThresholdRange(t *testing.T) {
	backend := memory.New().
		Seed("a", "a.jpg", 1, "").
		Seed("b", "b.jpg", 1, "").
		SetSimilar(domain.SimilarityTriple{RepresentativeHash: "a", MemberHashes: []string{"b"}, SimilarityPct: 98})
	vault := newVault(t, backend)

	if _, isErr := call(t, similarHandler(vault, 90), map[string]any{"threshold": 50}); !isErr {
		t.Error("expected range error")
	}
	out, isErr := call(t, similarHandler(vault, 90), nil)
	if isErr || !strings.Contains(out, "a.jpg  98%") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestMoveHandler(t *testing.T) {
	backend := memory.New().
		Seed("h1", "inbox/a.pdf", 1, "").
		Seed("h2", "docs/b.pdf", 1, "")
	vault := newVault(t, backend)

	t.Run("file", func(t *testing.T) {
		out, isErr := call(t, moveHandler(vault), map[string]any{"hash": "h1", "destination": "docs"})
		if isErr || out != "Moved to: docs/a.pdf" {
			t.Errorf("unexpected result %q", out)
		}
	})

	t.Run("folder into itself", func(t *testing.T) {
		_, isErr := call(t, moveHandler(vault), map[string]any{"folder": "docs", "destination": "docs/sub"})
		if !isErr {
			t.Error("expected error")
		}
		if backend.Count("MoveFolder") != 0 {
			t.Error("backend must not be called")
		}
	})

	t.Run("ambiguous target", func(t *testing.T) {
		_, isErr := call(t, moveHandler(vault), map[string]any{"hash": "h2", "folder": "docs", "destination": "x"})
		if !isErr {
			t.Error("expected error")
		}
	})
}

func TestDeleteToBinHandler(t *testing.T) {
	backend := memory.New().Seed("h1", "a.jpg", 1, "")
	vault := newVault(t, backend)

	out, isErr := call(t, deleteToBinHandler(vault), map[string]any{"hash": "h1", "path": "a.jpg"})
	if isErr || out != "Moved to bin: a.jpg" {
		t.Errorf("unexpected result %q", out)
	}
	if len(vault.State().Deleted) != 1 {
		t.Error("expected history refreshed")
	}
}
