package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/MKhiriev/go-llm-relay/internal/logger"
	"github.com/MKhiriev/go-llm-relay/models"
)

// fileSessionStore keeps all records in one JSON document. Every mutation
// rewrites the document through a temp file and a rename.
type fileSessionStore struct {
	path   string
	logger *logger.Logger

	mu      sync.Mutex
	records map[string]models.PersistedRecord
}

type filePersistedState struct {
	Sessions []models.PersistedRecord `json:"sessions"`
}

// NewFileSessionStore opens the JSON session file at path. A missing file
// is an empty store. An unreadable or malformed file is moved to
// path+".corrupt" and the store starts empty.
func NewFileSessionStore(path string, log *logger.Logger) (SessionStore, error) {
	if path == "" {
		return nil, ErrEmptyStorePath
	}

	s := &fileSessionStore{
		path:    path,
		logger:  log,
		records: make(map[string]models.PersistedRecord),
	}
	if err := s.load(); err != nil {
		log.Warn().Err(err).Str("func", "NewFileSessionStore").Str("path", path).
			Msg("session file is unreadable, moving it aside and starting with no sessions")
		if qErr := quarantine(path); qErr != nil {
			log.Warn().Err(qErr).Str("func", "NewFileSessionStore").Msg("error moving session file aside")
		}
		s.records = make(map[string]models.PersistedRecord)
	}
	return s, nil
}

func (s *fileSessionStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%w: read session file: %w", ErrReadingStore, err)
	}

	var st filePersistedState
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("%w: decode session file: %w", ErrReadingStore, err)
	}

	for _, record := range st.Sessions {
		if record.UserID == "" {
			continue
		}
		s.records[record.UserID] = record
	}

	return nil
}

// persist must be called with s.mu held.
func (s *fileSessionStore) persist() error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create session dir: %w", ErrWritingStore, err)
		}
	}

	payload, err := json.MarshalIndent(filePersistedState{Sessions: s.sorted()}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode sessions: %w", ErrWritingStore, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingStore, err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrWritingStore, err)
	}
	if err = tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrWritingStore, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingStore, err)
	}

	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingStore, err)
	}

	return nil
}

func (s *fileSessionStore) sorted() []models.PersistedRecord {
	records := make([]models.PersistedRecord, 0, len(s.records))
	for _, record := range s.records {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].UserID < records[j].UserID })
	return records
}

func (s *fileSessionStore) Save(_ context.Context, record models.PersistedRecord) error {
	if record.UserID == "" {
		return ErrInvalidRecord
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.records[record.UserID]
	s.records[record.UserID] = record
	if err := s.persist(); err != nil {
		if existed {
			s.records[record.UserID] = prev
		} else {
			delete(s.records, record.UserID)
		}
		return err
	}

	return nil
}

func (s *fileSessionStore) Delete(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.records[userID]
	if !existed {
		return nil
	}

	delete(s.records, userID)
	if err := s.persist(); err != nil {
		s.records[userID] = prev
		return err
	}

	return nil
}

func (s *fileSessionStore) LoadAll(_ context.Context) ([]models.PersistedRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sorted(), nil
}

func (s *fileSessionStore) Close() error {
	return nil
}
