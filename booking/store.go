package booking

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
)

// Records is one collection as persisted: record id -> flat JSON object.
// Values are kept raw so records that no longer decode can still be listed,
// overwritten or deleted.
type Records map[string]json.RawMessage

// IDs returns the record ids in sorted order.
func (r Records) IDs() []string {
	ids := make([]string, 0, len(r))
	for id := range r {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// RecordStore persists one collection with whole-collection semantics.
//
// Load never fails: missing or unreadable data degrades to an empty mapping
// and a warning, so callers cannot tell "empty" from "failed to read".
// Save reports failures both as a logged warning and as an error wrapping
// ErrPersistence.
type RecordStore interface {
	Load() Records
	Save(records Records) error
	Path() string
}

// FileStore keeps a collection as a pretty-printed JSON object in one file.
type FileStore struct {
	path   string
	logger *log.Logger
}

// NewFileStore returns a store backed by the JSON file at path. The file is
// created on first save.
func NewFileStore(path string, logger *log.Logger) *FileStore {
	return &FileStore{path: path, logger: loggerOrDefault(logger)}
}

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Load() Records {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Records{}
	}
	if err != nil {
		warnf(s.logger, "Could not load %s: %v. Using empty.", s.path, err)
		return Records{}
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return Records{}
	}
	return decodeCollection(raw, s.path, s.logger)
}

func (s *FileStore) Save(records Records) error {
	if records == nil {
		records = Records{}
	}
	data, err := encodeJSON(records, "  ")
	if err != nil {
		warnf(s.logger, "Could not save %s: %v.", s.path, err)
		return fmt.Errorf("%w: encode %s: %v", ErrPersistence, s.path, err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			warnf(s.logger, "Could not save %s: %v.", s.path, err)
			return fmt.Errorf("%w: create dir: %v", ErrPersistence, err)
		}
	}
	if err := os.WriteFile(s.path, append(data, '\n'), 0o644); err != nil {
		warnf(s.logger, "Could not save %s: %v.", s.path, err)
		return fmt.Errorf("%w: write %s: %v", ErrPersistence, s.path, err)
	}
	return nil
}

// encodeJSON marshals v without HTML escaping so stored text reads as it was
// written and survives a save/load round trip. indent "" means compact.
func encodeJSON(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// decodeCollection parses a whole collection. Anything that is not a JSON
// object at the top level yields an empty mapping.
func decodeCollection(raw []byte, source string, logger *log.Logger) Records {
	var top json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		warnf(logger, "Could not load %s: %v. Using empty.", source, err)
		return Records{}
	}
	if trimmed := bytes.TrimSpace(top); len(trimmed) == 0 || trimmed[0] != '{' {
		warnf(logger, "Invalid data structure in %s. Using empty.", source)
		return Records{}
	}
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(top, &entries); err != nil {
		warnf(logger, "Could not load %s: %v. Using empty.", source, err)
		return Records{}
	}
	records := make(Records, len(entries))
	for id, value := range entries {
		records[id] = compact(value)
	}
	return records
}

// compact normalizes a raw value so that a save/load round trip returns
// byte-identical records.
func compact(value json.RawMessage) json.RawMessage {
	var buf bytes.Buffer
	if err := json.Compact(&buf, value); err != nil {
		return value
	}
	return buf.Bytes()
}
