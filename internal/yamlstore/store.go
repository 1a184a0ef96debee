// Package yamlstore persists the whole ticket collection as a single YAML
// document. Every save rewrites the file; there is no locking, so two
// processes saving the same file race and the last writer wins.
package yamlstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"github.com/rpggio/yamtik/internal/domain/ticket"
	"github.com/rpggio/yamtik/internal/repository"
	"gopkg.in/yaml.v3"
)

// Extension is the only file extension the store reads or writes.
const Extension = ".yaml"

const filePerms = 0o644

// Store implements ticket.Repository for one YAML file.
type Store struct {
	path string
}

// New creates a Store bound to path. The path is checked on every
// Load and Save, before any file access.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Load implements ticket.Repository.
func (s *Store) Load(ctx context.Context) ([]ticket.Ticket, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Load(s.path)
}

// Save implements ticket.Repository.
func (s *Store) Save(ctx context.Context, tickets []ticket.Ticket) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return Save(tickets, s.path)
}

// CheckPath returns repository.ErrInvalidFormat unless path ends in .yaml.
func CheckPath(path string) error {
	if filepath.Ext(path) != Extension {
		return fmt.Errorf("%w: %q must be a %s file", repository.ErrInvalidFormat, path, Extension)
	}
	return nil
}

// Load reads the collection stored at path. A missing file or an empty
// document is an empty collection.
func Load(path string) ([]ticket.Ticket, error) {
	if err := CheckPath(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []ticket.Ticket{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	tickets, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tickets, nil
}

// Save overwrites path with the full collection. The file is replaced
// atomically, so readers see either the old or the new document.
func Save(tickets []ticket.Ticket, path string) error {
	if err := CheckPath(path); err != nil {
		return err
	}

	data, err := Encode(tickets)
	if err != nil {
		return err
	}

	_, statErr := os.Stat(path)
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if errors.Is(statErr, fs.ErrNotExist) {
		// atomic.WriteFile only carries over permissions of an existing file.
		if err := os.Chmod(path, filePerms); err != nil {
			return fmt.Errorf("chmod %s: %w", path, err)
		}
	}
	return nil
}

// Decode parses a YAML document whose root is a sequence of tickets.
func Decode(data []byte) ([]ticket.Ticket, error) {
	var tickets []ticket.Ticket
	if err := yaml.Unmarshal(data, &tickets); err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrDecodeFailure, err)
	}
	if tickets == nil {
		return []ticket.Ticket{}, nil
	}
	if err := ticket.ValidateCollection(tickets); err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrDecodeFailure, err)
	}
	return tickets, nil
}

// Encode renders tickets as a YAML sequence with keys in field order. It
// refuses collections that Decode would reject.
func Encode(tickets []ticket.Ticket) ([]byte, error) {
	if tickets == nil {
		tickets = []ticket.Ticket{}
	}
	if err := ticket.ValidateCollection(tickets); err != nil {
		return nil, fmt.Errorf("encode tickets: %w", err)
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(tickets); err != nil {
		return nil, fmt.Errorf("encode tickets: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode tickets: %w", err)
	}
	return buf.Bytes(), nil
}
