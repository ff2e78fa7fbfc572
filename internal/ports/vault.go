package ports

import (
	"context"

	"smartvault/internal/domain"
)

// VaultBackend is the command surface of the vault service. It owns the
// stored records, the bin and snapshots; every call may fail.
type VaultBackend interface {
	// Queries
	ListRecords(ctx context.Context) ([]domain.RawRecord, error)
	ListDeleted(ctx context.Context) ([]domain.DeletedEntry, error)
	ListSnapshots(ctx context.Context) ([]domain.SnapshotInfo, error)
	CheckExists(ctx context.Context, path string) (bool, error)
	FileProperties(ctx context.Context, hash string) (*domain.FileProperties, error)
	FolderProperties(ctx context.Context, folderPath string) (*domain.FolderProperties, error)
	FindSimilarImages(ctx context.Context, maxDistance int) ([]domain.SimilarityTriple, error)
	IntegrityCheck(ctx context.Context) ([]string, error)

	// Indexing
	StartScan(ctx context.Context, folderPath, snapshotName string) (string, error)
	AddFile(ctx context.Context, path string) (string, error)

	// Opening
	Open(ctx context.Context, path string) error
	OpenWith(ctx context.Context, path, app string) error

	// Deletion
	DeleteToBin(ctx context.Context, hash, path string) error
	DeleteFolderToBin(ctx context.Context, folderPath string) (string, error)
	PermanentDelete(ctx context.Context, hash, path string) error

	// Rename and move
	RenameFile(ctx context.Context, hash, newName string) error
	RenameFolder(ctx context.Context, oldPath, newName string) error
	MoveFile(ctx context.Context, hash, destinationFolder string) (string, error)
	MoveFolder(ctx context.Context, oldPath, destinationParent string) (string, error)

	// Archives
	Compress(ctx context.Context, paths []string, outputPath string) (string, error)
	Extract(ctx context.Context, zipPath, outputDir string) (string, error)

	// Maintenance
	ClearVault(ctx context.Context) error
	ClearHistory(ctx context.Context) error
	DeleteSnapshot(ctx context.Context, name string, timestamp int64) error
}
