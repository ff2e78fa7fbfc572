package commands

import (
	"context"
	"fmt"
	"path"
	"strings"

	"smartvault/internal/application"
	"smartvault/internal/domain"
)

// CompressCommand zips one or more paths into OutputPath
type CompressCommand struct {
	vault      *application.Vault
	Paths      []string
	OutputPath string
}

// NewCompressCommand creates a new CompressCommand. An empty or bare
// output name is resolved by OutputFile.
func NewCompressCommand(vault *application.Vault, paths []string, outputPath string) *CompressCommand {
	return &CompressCommand{vault: vault, Paths: paths, OutputPath: outputPath}
}

// Validate checks if the compress operation is valid
func (c *CompressCommand) Validate() error {
	if len(c.Paths) == 0 {
		return &application.ValidationError{Field: "paths", Message: "at least one path is required"}
	}
	for _, p := range c.Paths {
		if err := application.ValidateRequired("path", p); err != nil {
			return err
		}
	}
	return nil
}

// OutputFile is the zip that will be written. A name without a folder is
// placed beside the first source; ".zip" is appended when missing.
func (c *CompressCommand) OutputFile() string {
	out := strings.TrimSpace(c.OutputPath)
	if out == "" {
		out = domain.DefaultArchiveName(c.Paths)
	}
	if !strings.EqualFold(path.Ext(out), ".zip") {
		out += ".zip"
	}
	if len(domain.SplitPath(out)) == 1 && len(c.Paths) > 0 {
		if parent := parentFolder(c.Paths[0]); parent != "" {
			out = parent + "/" + out
		}
	}
	return out
}

// Execute runs the compress command. The vault is not refetched since a new
// zip outside the index does not change it.
func (c *CompressCommand) Execute(ctx context.Context) (*MutationResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	out := c.OutputFile()
	return runMutation(ctx, c.vault, "compress", out, application.RefreshNone,
		func(ctx context.Context) (string, error) {
			msg, err := c.vault.Backend().Compress(ctx, c.Paths, out)
			if err != nil {
				return "", fmt.Errorf("failed to compress: %w", err)
			}
			return msg, nil
		})
}

// ExtractCommand unpacks a zip into OutputDir
type ExtractCommand struct {
	vault     *application.Vault
	ZipPath   string
	OutputDir string
}

// NewExtractCommand creates a new ExtractCommand. An empty output
// directory defaults to a folder named after the zip, beside it.
func NewExtractCommand(vault *application.Vault, zipPath, outputDir string) *ExtractCommand {
	return &ExtractCommand{vault: vault, ZipPath: zipPath, OutputDir: outputDir}
}

// Validate checks if the extract operation is valid
func (c *ExtractCommand) Validate() error {
	if err := application.ValidateRequired("zipPath", c.ZipPath); err != nil {
		return err
	}
	if domain.CategoryFromPath(c.ZipPath) != domain.CategoryArchive {
		return &application.ValidationError{Field: "zipPath", Message: "not an archive: " + c.ZipPath}
	}
	return nil
}

// Dir is the directory the archive will be extracted into
func (c *ExtractCommand) Dir() string {
	if dir := strings.TrimSpace(c.OutputDir); dir != "" {
		return dir
	}
	stem := domain.Stem(c.ZipPath)
	if parent := parentFolder(c.ZipPath); parent != "" {
		return parent + "/" + stem
	}
	return stem
}

// Execute runs the extract command
func (c *ExtractCommand) Execute(ctx context.Context) (*MutationResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	dir := c.Dir()
	return runMutation(ctx, c.vault, "extract", c.ZipPath, application.RefreshRecords,
		func(ctx context.Context) (string, error) {
			msg, err := c.vault.Backend().Extract(ctx, c.ZipPath, dir)
			if err != nil {
				return "", fmt.Errorf("failed to extract %s: %w", c.ZipPath, err)
			}
			return msg, nil
		})
}

// parentFolder returns p without its last segment, keeping the original
// separator style and any leading root.
func parentFolder(p string) string {
	idx := strings.LastIndexAny(p, `/\`)
	if idx <= 0 {
		return ""
	}
	return p[:idx]
}
