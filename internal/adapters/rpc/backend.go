package rpc

import (
	"context"
	"encoding/json"
	"fmt"

	"smartvault/internal/domain"
	"smartvault/internal/ports"
)

// Backend command names
const (
	cmdListRecords       = "get_all_stored_files"
	cmdListDeleted       = "get_deleted_files"
	cmdListSnapshots     = "get_snapshots"
	cmdCheckExists       = "check_file_status"
	cmdFileProperties    = "get_file_properties"
	cmdFolderProperties  = "get_folder_properties"
	cmdFindSimilar       = "find_similar_images"
	cmdIntegrityCheck    = "run_integrity_check"
	cmdStartScan         = "start_auto_scan"
	cmdAddFile           = "add_single_file"
	cmdOpen              = "open_file"
	cmdOpenWith          = "open_file_with"
	cmdDeleteToBin       = "delete_to_bin"
	cmdDeleteFolderToBin = "delete_folder_to_bin"
	cmdPermanentDelete   = "delete_physical_file"
	cmdRenameFile        = "rename_in_index"
	cmdRenameFolder      = "rename_folder"
	cmdMoveFile          = "move_file"
	cmdMoveFolder        = "move_folder"
	cmdCompress          = "compress_to_zip"
	cmdExtract           = "extract_zip"
	cmdClearVault        = "clear_vault"
	cmdClearHistory      = "clear_deleted_history"
	cmdDeleteSnapshot    = "delete_snapshot"
)

var _ ports.VaultBackend = (*Client)(nil)

func (c *Client) ListRecords(ctx context.Context) ([]domain.RawRecord, error) {
	var pairs [][2]string
	if err := c.invoke(ctx, cmdListRecords, nil, &pairs); err != nil {
		return nil, err
	}
	out := make([]domain.RawRecord, len(pairs))
	for i, p := range pairs {
		out[i] = domain.RawRecord{Hash: p[0], Payload: p[1]}
	}
	return out, nil
}

func (c *Client) ListDeleted(ctx context.Context) ([]domain.DeletedEntry, error) {
	var out []domain.DeletedEntry
	err := c.invoke(ctx, cmdListDeleted, nil, &out)
	return out, err
}

func (c *Client) ListSnapshots(ctx context.Context) ([]domain.SnapshotInfo, error) {
	var out []domain.SnapshotInfo
	err := c.invoke(ctx, cmdListSnapshots, nil, &out)
	return out, err
}

func (c *Client) CheckExists(ctx context.Context, path string) (bool, error) {
	var exists bool
	err := c.invoke(ctx, cmdCheckExists, map[string]any{"path": path}, &exists)
	return exists, err
}

func (c *Client) FileProperties(ctx context.Context, hash string) (*domain.FileProperties, error) {
	var out domain.FileProperties
	if err := c.invoke(ctx, cmdFileProperties, map[string]any{"hash": hash}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) FolderProperties(ctx context.Context, folderPath string) (*domain.FolderProperties, error) {
	var out domain.FolderProperties
	if err := c.invoke(ctx, cmdFolderProperties, map[string]any{"folderPath": folderPath}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) FindSimilarImages(ctx context.Context, maxDistance int) ([]domain.SimilarityTriple, error) {
	var raw []json.RawMessage
	if err := c.invoke(ctx, cmdFindSimilar, map[string]any{"threshold": maxDistance}, &raw); err != nil {
		return nil, err
	}
	out := make([]domain.SimilarityTriple, 0, len(raw))
	for i, r := range raw {
		t, err := decodeTriple(r)
		if err != nil {
			return nil, fmt.Errorf("%s: entry %d: %w", cmdFindSimilar, i, err)
		}
		out = append(out, t)
	}
	return out, nil
}

// decodeTriple reads a [representative, [members...], pct] tuple
func decodeTriple(raw json.RawMessage) (domain.SimilarityTriple, error) {
	var parts []json.RawMessage
	if err := json.Unmarshal(raw, &parts); err != nil {
		return domain.SimilarityTriple{}, err
	}
	if len(parts) != 3 {
		return domain.SimilarityTriple{}, fmt.Errorf("expected 3 fields, got %d", len(parts))
	}

	var t domain.SimilarityTriple
	if err := json.Unmarshal(parts[0], &t.RepresentativeHash); err != nil {
		return t, fmt.Errorf("representative: %w", err)
	}
	if err := json.Unmarshal(parts[1], &t.MemberHashes); err != nil {
		return t, fmt.Errorf("members: %w", err)
	}
	if err := json.Unmarshal(parts[2], &t.SimilarityPct); err != nil {
		return t, fmt.Errorf("similarity: %w", err)
	}
	return t, nil
}

func (c *Client) IntegrityCheck(ctx context.Context) ([]string, error) {
	var out []string
	err := c.invoke(ctx, cmdIntegrityCheck, nil, &out)
	return out, err
}

func (c *Client) StartScan(ctx context.Context, folderPath, snapshotName string) (string, error) {
	return c.invokeMessage(ctx, cmdStartScan, map[string]any{
		"folderPath":   folderPath,
		"snapshotName": snapshotName,
	})
}

func (c *Client) AddFile(ctx context.Context, path string) (string, error) {
	return c.invokeMessage(ctx, cmdAddFile, map[string]any{"path": path})
}

func (c *Client) Open(ctx context.Context, path string) error {
	return c.invoke(ctx, cmdOpen, map[string]any{"path": path}, nil)
}

func (c *Client) OpenWith(ctx context.Context, path, app string) error {
	return c.invoke(ctx, cmdOpenWith, map[string]any{"path": path, "app": app}, nil)
}

func (c *Client) DeleteToBin(ctx context.Context, hash, path string) error {
	return c.invoke(ctx, cmdDeleteToBin, map[string]any{"hash": hash, "path": path}, nil)
}

func (c *Client) DeleteFolderToBin(ctx context.Context, folderPath string) (string, error) {
	return c.invokeMessage(ctx, cmdDeleteFolderToBin, map[string]any{"folderPath": folderPath})
}

func (c *Client) PermanentDelete(ctx context.Context, hash, path string) error {
	return c.invoke(ctx, cmdPermanentDelete, map[string]any{"hash": hash, "path": path}, nil)
}

func (c *Client) RenameFile(ctx context.Context, hash, newName string) error {
	return c.invoke(ctx, cmdRenameFile, map[string]any{"hash": hash, "newName": newName}, nil)
}

func (c *Client) RenameFolder(ctx context.Context, oldPath, newName string) error {
	return c.invoke(ctx, cmdRenameFolder, map[string]any{"oldPath": oldPath, "newName": newName}, nil)
}

func (c *Client) MoveFile(ctx context.Context, hash, destinationFolder string) (string, error) {
	return c.invokeMessage(ctx, cmdMoveFile, map[string]any{
		"hash":              hash,
		"destinationFolder": destinationFolder,
	})
}

func (c *Client) MoveFolder(ctx context.Context, oldPath, destinationParent string) (string, error) {
	return c.invokeMessage(ctx, cmdMoveFolder, map[string]any{
		"oldPath":           oldPath,
		"destinationParent": destinationParent,
	})
}

func (c *Client) Compress(ctx context.Context, paths []string, outputPath string) (string, error) {
	return c.invokeMessage(ctx, cmdCompress, map[string]any{"paths": paths, "outputPath": outputPath})
}

func (c *Client) Extract(ctx context.Context, zipPath, outputDir string) (string, error) {
	return c.invokeMessage(ctx, cmdExtract, map[string]any{"zipPath": zipPath, "outputDir": outputDir})
}

func (c *Client) ClearVault(ctx context.Context) error {
	return c.invoke(ctx, cmdClearVault, nil, nil)
}

func (c *Client) ClearHistory(ctx context.Context) error {
	return c.invoke(ctx, cmdClearHistory, nil, nil)
}

func (c *Client) DeleteSnapshot(ctx context.Context, name string, timestamp int64) error {
	return c.invoke(ctx, cmdDeleteSnapshot, map[string]any{
		"snapshotName": name,
		"timestamp":    timestamp,
	}, nil)
}

// invokeMessage runs a command whose result is a status string
func (c *Client) invokeMessage(ctx context.Context, command string, args any) (string, error) {
	var msg string
	if err := c.invoke(ctx, command, args, &msg); err != nil {
		return "", err
	}
	return msg, nil
}
