package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Store reads and writes whole JSON documents under a single data directory.
// Each domain keeps all of its records in one file: a JSON object mapping
// trip name to the record's document. There is no partial update; every save
// rewrites the complete file.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir. The directory is created lazily on
// the first save, so a fresh installation can load before anything exists.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the absolute location of a document file within the store.
func (s *Store) Path(filename string) string {
	return filepath.Join(s.dir, filename)
}

// Load reads the named document and returns its records keyed by trip name.
// A missing file is not an error: it is the empty collection.
func (s *Store) Load(filename string) (map[string]json.RawMessage, error) {
	path := s.Path(filename)
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Debugf("document %s does not exist yet, returning empty collection", path)
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		err := fmt.Errorf("could not read document %s: %w", path, err)
		log.Error(err)
		return nil, err
	}

	docs := map[string]json.RawMessage{}
	if err := json.Unmarshal(content, &docs); err != nil {
		return nil, fmt.Errorf("could not parse document %s: %w", path, err)
	}
	return docs, nil
}

// Save serializes the records as an indented JSON object and replaces the
// named document. The content is written to a uniquely named temporary file
// first and renamed into place, so readers never observe a partial write.
func (s *Store) Save(filename string, docs map[string]json.RawMessage) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		err := fmt.Errorf("could not create data directory %s: %w", s.dir, err)
		log.Error(err)
		return err
	}

	content, err := json.MarshalIndent(docs, "", "    ")
	if err != nil {
		err := fmt.Errorf("could not serialize document %s: %w", filename, err)
		log.Error(err)
		return err
	}

	path := s.Path(filename)
	tmpPath := fmt.Sprintf("%s.%s.tmp", path, uuid.NewString())
	if err := os.WriteFile(tmpPath, content, 0o644); err != nil {
		err := fmt.Errorf("could not write document %s: %w", tmpPath, err)
		log.Error(err)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		err := fmt.Errorf("could not replace document %s: %w", path, err)
		log.Error(err)
		return err
	}
	return nil
}
