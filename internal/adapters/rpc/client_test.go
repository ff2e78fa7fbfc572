package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	c, err := New(Config{Addr: ts.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestListRecords_DecodesPairs(t *testing.T) {
	var gotPath, gotMethod, gotRequestID string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([][2]string{
			{"h1", `{"path":"a.jpg","size":3}`},
			{"h2", `not json`},
		})
	}))

	records, err := c.ListRecords(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/invoke/get_all_stored_files" || gotMethod != http.MethodPost {
		t.Errorf("unexpected request %s %s", gotMethod, gotPath)
	}
	if gotRequestID == "" {
		t.Error("expected X-Request-ID header")
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Hash != "h1" || records[1].Payload != "not json" {
		t.Errorf("unexpected records %+v", records)
	}
}

func TestInvoke_SendsNamedArguments(t *testing.T) {
	var got map[string]any
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		json.NewEncoder(w).Encode("Moved to: archive/a.jpg")
	}))

	msg, err := c.MoveFile(context.Background(), "h1", "archive")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg != "Moved to: archive/a.jpg" {
		t.Errorf("msg = %q", msg)
	}
	if got["hash"] != "h1" || got["destinationFolder"] != "archive" {
		t.Errorf("unexpected args %v", got)
	}
}

func TestInvoke_EmptyArgumentsSendObject(t *testing.T) {
	var body string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var raw json.RawMessage
		json.NewDecoder(r.Body).Decode(&raw)
		body = string(raw)
		w.WriteHeader(http.StatusOK)
	}))

	if err := c.ClearHistory(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body != "{}" {
		t.Errorf("body = %q, want {}", body)
	}
}

func TestInvoke_CommandError(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{name: "json error", body: `{"error":"file is locked"}`, wantMsg: "file is locked"},
		{name: "plain body", body: "boom\n", wantMsg: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnprocessableEntity)
				w.Write([]byte(tt.body))
			}))

			err := c.DeleteToBin(context.Background(), "h1", "a.jpg")
			var cerr *CommandError
			if !errors.As(err, &cerr) {
				t.Fatalf("expected CommandError, got %v", err)
			}
			if cerr.Message != tt.wantMsg || cerr.Status != http.StatusUnprocessableEntity {
				t.Errorf("unexpected error %+v", cerr)
			}
			if cerr.Command != "delete_to_bin" {
				t.Errorf("Command = %q", cerr.Command)
			}
		})
	}
}

func TestInvoke_Unreachable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	addr := ts.URL
	ts.Close()

	c, err := New(Config{Addr: addr})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = c.ListSnapshots(context.Background())
	if !errors.Is(err, ErrUnreachable) {
		t.Errorf("expected ErrUnreachable, got %v", err)
	}
}

func TestFindSimilarImages_DecodesTriples(t *testing.T) {
	var got map[string]any
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`[["a",["b","c"],97],["d",[],91]]`))
	}))

	triples, err := c.FindSimilarImages(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["threshold"] != float64(10) {
		t.Errorf("threshold arg = %v", got["threshold"])
	}
	if len(triples) != 2 {
		t.Fatalf("expected 2 triples, got %d", len(triples))
	}
	if triples[0].RepresentativeHash != "a" || len(triples[0].MemberHashes) != 2 || triples[0].SimilarityPct != 97 {
		t.Errorf("unexpected triple %+v", triples[0])
	}
}

func TestFindSimilarImages_RejectsMalformedTriple(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[["a",["b"]]]`))
	}))

	if _, err := c.FindSimilarImages(context.Background(), 10); err == nil {
		t.Error("expected error for two-field tuple")
	}
}

func TestNew_Addresses(t *testing.T) {
	tests := []struct {
		addr    string
		want    string
		wantErr bool
	}{
		{addr: "127.0.0.1:7420", want: "http://127.0.0.1:7420"},
		{addr: "https://vault.local/", want: "https://vault.local"},
		{addr: "unix:///run/vault.sock", want: "http://vault"},
		{addr: "", wantErr: true},
		{addr: "unix://", wantErr: true},
	}

	for _, tt := range tests {
		c, err := New(Config{Addr: tt.addr})
		if (err != nil) != tt.wantErr {
			t.Errorf("New(%q) error = %v, wantErr %v", tt.addr, err, tt.wantErr)
			continue
		}
		if err == nil && c.baseURL != tt.want {
			t.Errorf("New(%q) baseURL = %q, want %q", tt.addr, c.baseURL, tt.want)
		}
	}
}

func TestClient_UnixSocket(t *testing.T) {
	dir, err := os.MkdirTemp("", "sv")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	socket := filepath.Join(dir, "vault.sock")

	ln, err := net.Listen("unix", socket)
	if err != nil {
		t.Skipf("unix sockets unavailable: %v", err)
	}
	ts := httptest.NewUnstartedServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(true)
	}))
	ts.Listener.Close()
	ts.Listener = ln
	ts.Start()
	defer ts.Close()

	c, err := New(Config{Addr: "unix://" + socket})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	exists, err := c.CheckExists(context.Background(), "a.jpg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Error("expected true")
	}
}
