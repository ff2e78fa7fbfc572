package cmd

import (
	"context"
	"errors"
	"testing"

	"smartvault/internal/adapters/memory"
	"smartvault/internal/application"
	"smartvault/internal/application/commands"
	"smartvault/internal/domain"
)

func loadVault(t *testing.T, backend *memory.Backend) {
	t.Helper()
	vault = application.NewVault(backend)
	if err := vault.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	t.Cleanup(func() { vault = nil })
}

func TestFileByPath(t *testing.T) {
	loadVault(t, memory.New().Seed("h1", "docs/a.pdf", 10, ""))

	rec, err := fileByPath("docs/a.pdf")
	if err != nil || rec.Hash != "h1" {
		t.Fatalf("fileByPath = %+v, %v", rec, err)
	}

	if _, err := fileByPath("docs"); !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound for a folder, got %v", err)
	}
}

func TestSnapshotByName(t *testing.T) {
	loadVault(t, memory.New().
		SeedSnapshot(domain.SnapshotInfo{Name: "nightly", Timestamp: 100}).
		SeedSnapshot(domain.SnapshotInfo{Name: "nightly", Timestamp: 200}).
		SeedSnapshot(domain.SnapshotInfo{Name: "once", Timestamp: 300}))

	tests := []struct {
		name    string
		args    []string
		wantTS  int64
		wantErr bool
	}{
		{name: "unique name", args: []string{"once"}, wantTS: 300},
		{name: "ambiguous name", args: []string{"nightly"}, wantErr: true},
		{name: "name with timestamp", args: []string{"nightly", "200"}, wantTS: 200},
		{name: "bad timestamp", args: []string{"nightly", "yesterday"}, wantErr: true},
		{name: "unknown", args: []string{"missing"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap, err := snapshotByName(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && snap.Timestamp != tt.wantTS {
				t.Errorf("timestamp = %d, want %d", snap.Timestamp, tt.wantTS)
			}
		})
	}
}

func TestConfirm_AssumeYes(t *testing.T) {
	assumeYes = true
	t.Cleanup(func() { assumeYes = false })

	if err := confirm("Reset the vault"); err != nil {
		t.Errorf("--yes should skip the prompt, got %v", err)
	}
}

func TestPrintMutation(t *testing.T) {
	res := &commands.MutationResult{Message: "Moved"}
	refresh := &application.RefreshError{Scope: application.RefreshRecords, Err: errors.New("down")}

	if err := printMutation(res, refresh); err != nil {
		t.Errorf("a refresh failure after success should only warn, got %v", err)
	}
	if err := printMutation(nil, errors.New("boom")); err == nil {
		t.Error("a failed command should be returned")
	}
}

func TestCommandTree(t *testing.T) {
	want := []string{"ls", "search", "dups", "timeline", "similar", "props", "open", "index", "add",
		"rm", "rmdir", "purge", "rename", "mv", "compress", "extract", "history", "snapshots",
		"clear-history", "rm-snapshot", "reset", "check", "activity"}

	for _, name := range want {
		c, _, err := rootCmd.Find([]string{name})
		if err != nil || c == rootCmd {
			t.Errorf("command %q not registered", name)
		}
	}
}
