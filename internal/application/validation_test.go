package application

import (
	"errors"
	"testing"

	"smartvault/internal/domain"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		wantErr   bool
	}{
		{
			name:      "valid value",
			fieldName: "newName",
			value:     "holiday.jpg",
			wantErr:   false,
		},
		{
			name:      "empty string",
			fieldName: "newName",
			value:     "",
			wantErr:   true,
		},
		{
			name:      "whitespace only",
			fieldName: "folderPath",
			value:     "   ",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.fieldName, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequired() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil {
				var valErr *ValidationError
				if !errors.As(err, &valErr) {
					t.Fatalf("expected ValidationError, got %T", err)
				}
				if valErr.Field != tt.fieldName {
					t.Errorf("expected field %s, got %s", tt.fieldName, valErr.Field)
				}
			}
		})
	}
}

func TestValidateRequiredMessage(t *testing.T) {
	err := ValidateRequired("folderPath", "")
	if err == nil || err.Error() != "folderPath: folder path is required" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "plain", value: "report.pdf"},
		{name: "spaces", value: "my report.pdf"},
		{name: "forward slash", value: "a/b", wantErr: true},
		{name: "backslash", value: `a\b`, wantErr: true},
		{name: "dot dot", value: "..", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName("newName", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestValidateThreshold(t *testing.T) {
	for _, th := range []int{70, 85, 99} {
		if err := ValidateThreshold(th); err != nil {
			t.Errorf("ValidateThreshold(%d) unexpected error: %v", th, err)
		}
	}
	for _, th := range []int{0, 69, 100} {
		var valErr *ValidationError
		if err := ValidateThreshold(th); !errors.As(err, &valErr) {
			t.Errorf("ValidateThreshold(%d) expected ValidationError, got %v", th, err)
		}
	}
}

func TestValidateMoveDestination(t *testing.T) {
	folder := domain.ClipboardItem{Name: "photos", IsFolder: true, FolderPath: "root/photos"}
	file := domain.ClipboardItem{Name: "a.jpg", Hash: "h", Path: "root/photos/a.jpg"}

	tests := []struct {
		name    string
		item    domain.ClipboardItem
		dest    string
		wantErr error
	}{
		{name: "folder to sibling", item: folder, dest: "root/archive"},
		{name: "folder to prefix-sharing sibling", item: folder, dest: "root/photos2"},
		{name: "folder into itself", item: folder, dest: "root/photos", wantErr: ErrInvalidOperation},
		{name: "folder into child", item: folder, dest: `root\photos\2024`, wantErr: ErrInvalidOperation},
		{name: "file anywhere", item: file, dest: "root/photos"},
		{name: "empty", item: file, dest: "  ", wantErr: ErrEmptyDestination},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMoveDestination(tt.item, tt.dest)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
