package views

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"smartvault/internal/application"
	"smartvault/internal/domain"
)

func TestRenderNodeRow(t *testing.T) {
	folder := domain.BrowserNode{Name: "photos", IsFolder: true, FolderPath: "photos"}
	file := domain.BrowserNode{Name: "a.jpg", Hash: "h1", Path: "photos/a.jpg", Category: domain.CategoryImage}

	tests := []struct {
		name    string
		row     NodeRow
		want    []string
		notWant []string
	}{
		{name: "folder", row: NodeRow{Node: folder}, want: []string{"photos/"}, notWant: []string{"(cut)"}},
		{name: "file with size", row: NodeRow{Node: file, Size: 100}, want: []string{"a.jpg", "100 B"}, notWant: []string{"(cut)", "photos/a.jpg"}},
		{name: "cut file", row: NodeRow{Node: file, Cut: true}, want: []string{"(cut)"}},
		{name: "search shows path", row: NodeRow{Node: file, WithPath: true}, want: []string{"photos/a.jpg"}},
		{name: "selected", row: NodeRow{Node: file, Selected: true}, want: []string{"> "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderNodeRow(tt.row)
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("%q missing %q", got, w)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(got, w) {
					t.Errorf("%q should not contain %q", got, w)
				}
			}
		})
	}
}

func TestRenderHeaders(t *testing.T) {
	dup := domain.DuplicateGroup{Hash: "0123456789abcdef", Records: []domain.FileRecord{{Size: 2048}, {Size: 2048}}}
	if got := RenderDuplicateHeader(dup); !strings.Contains(got, "0123456789ab  2 copies  2.0 KB each") {
		t.Errorf("duplicate header = %q", got)
	}

	sim := domain.SimilarityGroup{Members: make([]domain.FileRecord, 3), SimilarityPct: 96.4}
	if got := RenderSimilarHeader(sim); !strings.Contains(got, "~96% similar  1 best + 3 similar") {
		t.Errorf("similar header = %q", got)
	}

	bucket := domain.TimelineBucket{DisplayLabel: "Jun 14, 2025", Files: make([]domain.FileRecord, 2)}
	if got := RenderBucketHeader(bucket, true, false); !strings.Contains(got, "Jun 14, 2025  2 files") {
		t.Errorf("bucket header = %q", got)
	}

	if RenderFilterBadge(domain.FilterAll) != "" {
		t.Error("the all filter has no badge")
	}
	if !strings.Contains(RenderGhostName("x.jpg", true), "ghost") || RenderGhostName("x.jpg", false) != "x.jpg" {
		t.Error("ghost marker only for missing items")
	}
}

func TestRenderDeletedEntry(t *testing.T) {
	got := RenderDeletedEntry(domain.DeletedEntry{Name: "a.txt", Path: "docs/a.txt", Size: 10, SnapshotName: "nightly"}, false)
	if strings.Count(got, "\n") != 1 || !strings.Contains(got, "from nightly") {
		t.Errorf("deleted entry = %q", got)
	}
}

func TestInputForm_Validate(t *testing.T) {
	t.Run("name with separator", func(t *testing.T) {
		form := NewInputForm(
			NewPathField("Folder", ""),
			NewNameField("New name", "").WithValue("a/b"),
		)
		form.Fields[0].Input.SetValue("/srv/media")

		err := form.Validate()
		var verr *application.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected a ValidationError, got %v", err)
		}
		if form.FocusedField != 1 {
			t.Errorf("focus = %d, want the failing field", form.FocusedField)
		}
	})

	t.Run("blank required path", func(t *testing.T) {
		form := NewInputForm(NewPathField("File", ""))
		if form.Validate() == nil {
			t.Error("a blank path should fail")
		}
	})

	t.Run("empty name is left to the command", func(t *testing.T) {
		form := NewInputForm(NewNameField("Archive name", ""))
		if err := form.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("folder drops trailing separators", func(t *testing.T) {
		form := NewInputForm(
			NewFolderField("Destination").WithValue(" docs/2024/ "),
			NewFolderField("Root").WithValue("/"),
		)
		if got := form.Values(); got[0] != "docs/2024" || got[1] != "/" {
			t.Errorf("values = %q", got)
		}
	})
}

func TestPromptModal_InvalidFieldKeepsPromptOpen(t *testing.T) {
	submitted := false
	prompt := NewPromptModal("Rename", "a.jpg", "rename",
		func(values []string) (tea.Cmd, error) {
			submitted = true
			return nil, nil
		},
		NewNameField("New name", "").WithValue("../b.jpg"),
	)

	done, _ := prompt.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if done || submitted {
		t.Fatal("an invalid name must not submit")
	}
	if !strings.Contains(prompt.View(), "path separators") {
		t.Errorf("expected the field error in the prompt:\n%s", prompt.View())
	}
}
