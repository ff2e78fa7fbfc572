// Package memory provides an in-process VaultBackend used by tests of the
// coordinators and front ends. It keeps just enough state to make
// refetch-after-mutation observable.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"
	"sync"
	"time"

	"smartvault/internal/domain"
)

// Call is one recorded backend invocation
type Call struct {
	Name string
	Args []any
}

type entry struct {
	Hash     string `json:"-"`
	Path     string `json:"path"`
	Size     uint64 `json:"size"`
	Modified string `json:"modified"`
	Category string `json:"category"`
}

// Backend is a fake vault service
type Backend struct {
	mu        sync.Mutex
	entries   []entry
	malformed []domain.RawRecord
	deleted   []domain.DeletedEntry
	snapshots []domain.SnapshotInfo
	missing   map[string]bool
	similar   []domain.SimilarityTriple
	corrupted []string
	errs      map[string]error
	calls     []Call
	now       func() time.Time
}

// New returns an empty fake backend
func New() *Backend {
	return &Backend{
		missing: make(map[string]bool),
		errs:    make(map[string]error),
		now:     time.Now,
	}
}

// Seed adds one record with its category derived from the extension
func (b *Backend) Seed(hash, p string, size uint64, modified string) *Backend {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = append(b.entries, entry{
		Hash:     hash,
		Path:     p,
		Size:     size,
		Modified: modified,
		Category: string(domain.CategoryFromPath(p)),
	})
	return b
}

// SeedRaw seeds a payload verbatim, typically a malformed one
func (b *Backend) SeedRaw(hash, payload string) *Backend {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.malformed = append(b.malformed, domain.RawRecord{Hash: hash, Payload: payload})
	return b
}

// SeedDeleted seeds a bin entry
func (b *Backend) SeedDeleted(e domain.DeletedEntry) *Backend {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.deleted = append(b.deleted, e)
	return b
}

// SeedSnapshot seeds a snapshot
func (b *Backend) SeedSnapshot(s domain.SnapshotInfo) *Backend {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.snapshots = append(b.snapshots, s)
	return b
}

// SetSimilar sets the relation returned by FindSimilarImages
func (b *Backend) SetSimilar(triples ...domain.SimilarityTriple) *Backend {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.similar = triples
	return b
}

// SetMissing marks a path as absent on disk
func (b *Backend) SetMissing(p string) *Backend {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.missing[p] = true
	return b
}

// SetCorrupted sets the paths returned by IntegrityCheck
func (b *Backend) SetCorrupted(paths ...string) *Backend {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.corrupted = paths
	return b
}

// FailOn makes every call to the named method return err
func (b *Backend) FailOn(method string, err error) *Backend {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err == nil {
		delete(b.errs, method)
	} else {
		b.errs[method] = err
	}
	return b
}

// Calls returns every recorded invocation
func (b *Backend) Calls() []Call {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Call(nil), b.calls...)
}

// Count returns how many times method was invoked
func (b *Backend) Count(method string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, c := range b.calls {
		if c.Name == method {
			n++
		}
	}
	return n
}

// begin records the call and returns its injected error. Callers hold no lock.
func (b *Backend) begin(method string, args ...any) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, Call{Name: method, Args: args})
	return b.errs[method]
}

func (b *Backend) ListRecords(ctx context.Context) ([]domain.RawRecord, error) {
	if err := b.begin("ListRecords"); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]domain.RawRecord, 0, len(b.entries)+len(b.malformed))
	for _, e := range b.entries {
		payload, err := json.Marshal(e)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.RawRecord{Hash: e.Hash, Payload: string(payload)})
	}
	return append(out, b.malformed...), nil
}

func (b *Backend) ListDeleted(ctx context.Context) ([]domain.DeletedEntry, error) {
	if err := b.begin("ListDeleted"); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]domain.DeletedEntry(nil), b.deleted...), nil
}

func (b *Backend) ListSnapshots(ctx context.Context) ([]domain.SnapshotInfo, error) {
	if err := b.begin("ListSnapshots"); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]domain.SnapshotInfo(nil), b.snapshots...), nil
}

func (b *Backend) CheckExists(ctx context.Context, p string) (bool, error) {
	if err := b.begin("CheckExists", p); err != nil {
		return false, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return !b.missing[p], nil
}

func (b *Backend) FileProperties(ctx context.Context, hash string) (*domain.FileProperties, error) {
	if err := b.begin("FileProperties", hash); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, e := range b.entries {
		if e.Hash == hash {
			return &domain.FileProperties{
				Path:         e.Path,
				Name:         domain.BaseName(e.Path),
				Size:         e.Size,
				Hash:         e.Hash,
				Modified:     e.Modified,
				Category:     domain.Category(e.Category),
				ExistsOnDisk: !b.missing[e.Path],
			}, nil
		}
	}
	return nil, fmt.Errorf("file %s not in index", hash)
}

func (b *Backend) FolderProperties(ctx context.Context, folderPath string) (*domain.FolderProperties, error) {
	if err := b.begin("FolderProperties", folderPath); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	props := &domain.FolderProperties{
		Path:         folderPath,
		Name:         domain.BaseName(folderPath),
		ExistsOnDisk: !b.missing[folderPath],
	}
	for _, e := range b.entries {
		if underFolder(e.Path, folderPath) {
			props.FileCount++
			props.TotalSize += e.Size
		}
	}
	return props, nil
}

func (b *Backend) FindSimilarImages(ctx context.Context, maxDistance int) ([]domain.SimilarityTriple, error) {
	if err := b.begin("FindSimilarImages", maxDistance); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]domain.SimilarityTriple(nil), b.similar...), nil
}

func (b *Backend) IntegrityCheck(ctx context.Context) ([]string, error) {
	if err := b.begin("IntegrityCheck"); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.corrupted...), nil
}

func (b *Backend) StartScan(ctx context.Context, folderPath, snapshotName string) (string, error) {
	if err := b.begin("StartScan", folderPath, snapshotName); err != nil {
		return "", err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	count := 0
	for _, e := range b.entries {
		if underFolder(e.Path, folderPath) {
			count++
		}
	}
	b.snapshots = append(b.snapshots, domain.SnapshotInfo{
		Name:       snapshotName,
		Timestamp:  b.now().Unix(),
		FileCount:  count,
		FolderPath: folderPath,
	})
	return fmt.Sprintf("Indexed %d files", count), nil
}

func (b *Backend) AddFile(ctx context.Context, p string) (string, error) {
	if err := b.begin("AddFile", p); err != nil {
		return "", err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = append(b.entries, entry{
		Hash:     "added:" + p,
		Path:     p,
		Category: string(domain.CategoryFromPath(p)),
	})
	return "Added " + domain.BaseName(p), nil
}

func (b *Backend) Open(ctx context.Context, p string) error {
	return b.begin("Open", p)
}

func (b *Backend) OpenWith(ctx context.Context, p, app string) error {
	return b.begin("OpenWith", p, app)
}

func (b *Backend) DeleteToBin(ctx context.Context, hash, p string) error {
	if err := b.begin("DeleteToBin", hash, p); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.removeWhere(func(e entry) bool { return e.Hash == hash && e.Path == p }, true)
	return nil
}

func (b *Backend) DeleteFolderToBin(ctx context.Context, folderPath string) (string, error) {
	if err := b.begin("DeleteFolderToBin", folderPath); err != nil {
		return "", err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	n := b.removeWhere(func(e entry) bool { return underFolder(e.Path, folderPath) }, true)
	return fmt.Sprintf("Moved %d files to bin", n), nil
}

func (b *Backend) PermanentDelete(ctx context.Context, hash, p string) error {
	if err := b.begin("PermanentDelete", hash, p); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.removeWhere(func(e entry) bool { return e.Hash == hash && e.Path == p }, false)
	return nil
}

func (b *Backend) RenameFile(ctx context.Context, hash, newName string) error {
	if err := b.begin("RenameFile", hash, newName); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, e := range b.entries {
		if e.Hash == hash {
			b.entries[i].Path = path.Join(parentOf(e.Path), newName)
			return nil
		}
	}
	return fmt.Errorf("file %s not in index", hash)
}

func (b *Backend) RenameFolder(ctx context.Context, oldPath, newName string) error {
	if err := b.begin("RenameFolder", oldPath, newName); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.reparent(oldPath, path.Join(parentOf(oldPath), newName))
	return nil
}

func (b *Backend) MoveFile(ctx context.Context, hash, destinationFolder string) (string, error) {
	if err := b.begin("MoveFile", hash, destinationFolder); err != nil {
		return "", err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, e := range b.entries {
		if e.Hash == hash {
			np := path.Join(destinationFolder, domain.BaseName(e.Path))
			b.entries[i].Path = np
			return np, nil
		}
	}
	return "", fmt.Errorf("file %s not in index", hash)
}

func (b *Backend) MoveFolder(ctx context.Context, oldPath, destinationParent string) (string, error) {
	if err := b.begin("MoveFolder", oldPath, destinationParent); err != nil {
		return "", err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	np := path.Join(destinationParent, domain.BaseName(oldPath))
	b.reparent(oldPath, np)
	return np, nil
}

func (b *Backend) Compress(ctx context.Context, paths []string, outputPath string) (string, error) {
	if err := b.begin("Compress", paths, outputPath); err != nil {
		return "", err
	}
	return fmt.Sprintf("Compressed %d items to %s", len(paths), outputPath), nil
}

func (b *Backend) Extract(ctx context.Context, zipPath, outputDir string) (string, error) {
	if err := b.begin("Extract", zipPath, outputDir); err != nil {
		return "", err
	}
	return fmt.Sprintf("Extracted %s to %s", domain.BaseName(zipPath), outputDir), nil
}

func (b *Backend) ClearVault(ctx context.Context) error {
	if err := b.begin("ClearVault"); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = nil
	b.malformed = nil
	return nil
}

func (b *Backend) ClearHistory(ctx context.Context) error {
	if err := b.begin("ClearHistory"); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.deleted = nil
	return nil
}

func (b *Backend) DeleteSnapshot(ctx context.Context, name string, timestamp int64) error {
	if err := b.begin("DeleteSnapshot", name, timestamp); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	kept := b.snapshots[:0]
	for _, s := range b.snapshots {
		if s.Name != name || s.Timestamp != timestamp {
			kept = append(kept, s)
		}
	}
	b.snapshots = kept
	return nil
}

// removeWhere drops matching entries, optionally sending them to the bin
func (b *Backend) removeWhere(match func(entry) bool, toBin bool) int {
	kept := b.entries[:0]
	removed := 0
	for _, e := range b.entries {
		if !match(e) {
			kept = append(kept, e)
			continue
		}
		removed++
		if toBin {
			b.deleted = append([]domain.DeletedEntry{{
				Hash:      e.Hash,
				Path:      e.Path,
				Name:      domain.BaseName(e.Path),
				Size:      e.Size,
				Category:  domain.Category(e.Category),
				DeletedAt: b.now().Unix(),
			}}, b.deleted...)
		}
	}
	b.entries = kept
	return removed
}

func (b *Backend) reparent(oldPath, newPath string) {
	for i, e := range b.entries {
		if underFolder(e.Path, oldPath) {
			rest := strings.Join(domain.SplitPath(e.Path)[len(domain.SplitPath(oldPath)):], "/")
			b.entries[i].Path = path.Join(newPath, rest)
		}
	}
}

func underFolder(p, folder string) bool {
	ps, fs := domain.SplitPath(p), domain.SplitPath(folder)
	if len(ps) <= len(fs) {
		return false
	}
	for i := range fs {
		if ps[i] != fs[i] {
			return false
		}
	}
	return true
}

func parentOf(p string) string {
	segs := domain.SplitPath(p)
	if len(segs) <= 1 {
		return ""
	}
	return strings.Join(segs[:len(segs)-1], "/")
}
