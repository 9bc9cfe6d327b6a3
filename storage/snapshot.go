package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Document is the single persisted unit: the whole registry in one JSON file.
// AdminMessages is a reserved section kept for layout compatibility; nothing
// reads it yet.
type Document struct {
	Users         map[int64]DiskUser         `json:"users"`
	AdminMessages map[string]json.RawMessage `json:"admin_messages"`
}

// DiskUser is the on-disk representation of a registry record. The
// repository layer converts to and from the domain struct.
type DiskUser struct {
	ID          int64         `json:"user_id"`
	Handle      string        `json:"username,omitempty"`
	DisplayName string        `json:"first_name,omitempty"`
	JoinedAt    time.Time     `json:"joined_date"`
	Messages    []DiskMessage `json:"messages"`
	Active      bool          `json:"is_active"`
}

type DiskMessage struct {
	ID           string    `json:"id"`
	Text         string    `json:"text"`
	At           time.Time `json:"timestamp"`
	FromOperator bool      `json:"is_from_admin"`
}

func EmptyDocument() Document {
	return Document{
		Users:         map[int64]DiskUser{},
		AdminMessages: map[string]json.RawMessage{},
	}
}

// SnapshotStore persists the registry document with a write-then-rename
// discipline: a crash mid-write never leaves a partial file behind.
// Callers serialize Save; the store itself holds no lock.
type SnapshotStore struct {
	path string
	log  *slog.Logger
}

func NewSnapshotStore(path string, log *slog.Logger) *SnapshotStore {
	return &SnapshotStore{path: path, log: log}
}

// Load reads the persisted document. A missing, unreadable or malformed file
// yields an empty document, never an error: corruption is logged and the
// relay starts fresh.
func (s *SnapshotStore) Load() Document {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Warn("Snapshot unreadable, starting with an empty registry", "path", s.path, "error", err)
		}
		return EmptyDocument()
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.log.Warn("Snapshot malformed, starting with an empty registry", "path", s.path, "error", err)
		return EmptyDocument()
	}
	if doc.Users == nil {
		doc.Users = map[int64]DiskUser{}
	}
	if doc.AdminMessages == nil {
		doc.AdminMessages = map[string]json.RawMessage{}
	}
	return doc
}

// Save serializes the whole document and atomically replaces the target file.
func (s *SnapshotStore) Save(doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write temp snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("close temp snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}
