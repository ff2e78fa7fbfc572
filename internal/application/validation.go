package application

import (
	"fmt"
	"slices"
	"strings"

	"smartvault/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "folderPath" -> "folder path")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"hash":              "hash",
		"path":              "path",
		"folderPath":        "folder path",
		"oldPath":           "old path",
		"newName":           "new name",
		"destinationFolder": "destination folder",
		"destinationParent": "destination parent",
		"outputPath":        "output path",
		"outputDir":         "output directory",
		"zipPath":           "zip path",
		"snapshotName":      "snapshot name",
		"app":               "application",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidateName rejects names that would escape their parent folder
func ValidateName(fieldName, name string) error {
	if err := ValidateRequired(fieldName, name); err != nil {
		return err
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must not contain path separators", formatFieldName(fieldName)),
		}
	}
	return nil
}

// ValidateThreshold checks a similarity threshold against its accepted range
func ValidateThreshold(threshold int) error {
	if _, err := domain.MaxDistance(threshold); err != nil {
		return &ValidationError{Field: "threshold", Message: err.Error()}
	}
	return nil
}

// ValidateMoveDestination rejects moving a folder into itself or a descendant
func ValidateMoveDestination(item domain.ClipboardItem, dest string) error {
	dest = strings.TrimSpace(dest)
	if dest == "" {
		return ErrEmptyDestination
	}
	if !item.IsFolder {
		return nil
	}

	src := domain.SplitPath(item.SourcePath())
	dst := domain.SplitPath(dest)
	if len(dst) >= len(src) && slices.Equal(dst[:len(src)], src) {
		return &MoveError{
			Source: item.SourcePath(),
			Dest:   dest,
			Reason: "destination is inside the folder being moved",
		}
	}
	return nil
}
