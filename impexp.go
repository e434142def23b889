package fundfolio

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// this file contains functions to handle the single-file backup format: one
// JSON object carrying both collections, a timestamp and a format version.

// BackupVersion identifies the current backup format.
const BackupVersion = "2"

// Backup is the import/export envelope.
type Backup struct {
	Funds     []Holding `json:"funds"`
	Groups    []Group   `json:"groups"`
	Timestamp int64     `json:"timestamp"`
	Version   string    `json:"version"`
}

// Export writes a backup of the given collections to w.
func Export(w io.Writer, holdings []Holding, groups []Group) error {
	if holdings == nil {
		holdings = []Holding{}
	}
	if groups == nil {
		groups = []Group{}
	}
	b := Backup{
		Funds:     holdings,
		Groups:    groups,
		Timestamp: time.Now().UnixMilli(),
		Version:   BackupVersion,
	}
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode backup: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// ParseBackup decodes a backup document. Both the "funds" and "groups" keys
// must be present; their content is accepted as-is, matching what Export of
// any prior version produced.
func ParseBackup(r io.Reader) (*Backup, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	// The key-presence check needs the raw object: a missing key and an
	// empty collection must not look the same.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("cannot parse backup: %w", err)
	}
	if _, ok := raw["funds"]; !ok {
		return nil, fmt.Errorf("invalid backup: missing %q key", "funds")
	}
	if _, ok := raw["groups"]; !ok {
		return nil, fmt.Errorf("invalid backup: missing %q key", "groups")
	}

	var b Backup
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("cannot parse backup: %w", err)
	}
	return &b, nil
}

// Import validates a backup and, on success, replaces both of the store's
// collections and persists them. On any validation error the store and its
// persisted state are left untouched: both collections are overwritten or
// neither is.
func (s *Store) Import(r io.Reader) error {
	b, err := ParseBackup(r)
	if err != nil {
		return err
	}
	s.holdings, s.groups = b.Funds, b.Groups
	if len(s.groups) == 0 {
		g := NewGroup(DefaultGroupName)
		g.IsDefault = true
		s.groups = []Group{g}
	}
	return s.save()
}
