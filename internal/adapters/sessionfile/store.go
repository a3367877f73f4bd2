package sessionfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/kintelligence/strawberry-cookie-tools/internal/domain"
	"github.com/kintelligence/strawberry-cookie-tools/internal/ports"
	"github.com/spf13/afero"
)

const (
	storeDirMode    = 0o755
	sessionFileMode = 0o644
	sessionFileExt  = ".json"
)

var errNoSessionID = errors.New("session id is the no-session sentinel")

type Store struct {
	fs   afero.Fs
	root string
	mu   sync.RWMutex
}

var _ ports.SessionStore = (*Store)(nil)

func NewStore(fs afero.Fs, root string) *Store {
	if fs == nil {
		fs = afero.NewOsFs()
	}

	return &Store{fs: fs, root: filepath.Clean(root)}
}

func (s *Store) Root() string {
	return s.root
}

// PathFor returns the file a session record is written to.
func (s *Store) PathFor(id domain.SessionID) string {
	return filepath.Join(s.root, id.String()+sessionFileExt)
}

func (s *Store) Save(ctx context.Context, record domain.SessionRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !record.ContentId.Valid() {
		return errNoSessionID
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session %s: %w", record.ContentId, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fs.MkdirAll(s.root, storeDirMode); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}

	if err := afero.WriteFile(s.fs, s.PathFor(record.ContentId), data, sessionFileMode); err != nil {
		return fmt.Errorf("write session %s: %w", record.ContentId, err)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, id domain.SessionID) (domain.SessionRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.SessionRecord{}, err
	}
	if !id.Valid() {
		return domain.SessionRecord{}, errNoSessionID
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.readLocked(s.PathFor(id))
}

// List returns every readable record sorted by id. Files that cannot be read
// or decoded are skipped; their errors are joined into the returned error,
// each wrapping domain.ErrCorruptSession, alongside the records that loaded.
// A nil slice means the directory itself could not be listed.
func (s *Store) List(ctx context.Context) ([]domain.SessionRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := afero.ReadDir(s.fs, s.root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []domain.SessionRecord{}, nil
		}
		return nil, fmt.Errorf("list session directory: %w", err)
	}

	records := make([]domain.SessionRecord, 0, len(entries))
	var skipped []error
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), sessionFileExt) {
			continue
		}
		if _, err := domain.ParseSessionID(strings.TrimSuffix(entry.Name(), sessionFileExt)); err != nil {
			continue
		}

		record, err := s.readLocked(filepath.Join(s.root, entry.Name()))
		switch {
		case errors.Is(err, domain.ErrSessionNotFound):
			continue
		case errors.Is(err, domain.ErrCorruptSession):
			skipped = append(skipped, err)
			continue
		case err != nil:
			skipped = append(skipped, fmt.Errorf("%w: %w", domain.ErrCorruptSession, err))
			continue
		}
		records = append(records, record)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].ContentId < records[j].ContentId
	})

	return records, errors.Join(skipped...)
}

func (s *Store) Delete(ctx context.Context, id domain.SessionID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !id.Valid() {
		return errNoSessionID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.fs.Remove(s.PathFor(id))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete session %s: %w", id, err)
	}

	return nil
}

func (s *Store) readLocked(path string) (domain.SessionRecord, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.SessionRecord{}, domain.ErrSessionNotFound
		}
		return domain.SessionRecord{}, fmt.Errorf("read session file %q: %w", filepath.Base(path), err)
	}

	var record domain.SessionRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return domain.SessionRecord{}, fmt.Errorf("decode session file %q: %w: %w", filepath.Base(path), domain.ErrCorruptSession, err)
	}

	return record, nil
}
