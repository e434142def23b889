package fundfolio

import (
	"encoding/json"
	"fmt"
	"io"
)

// This file contains the encoding of the two persisted collections. Each is a
// plain JSON array, indented and with stable field order, so the store files
// remain human-readable and diff cleanly under version control.

// EncodeHoldings writes the holdings collection to w.
func EncodeHoldings(w io.Writer, holdings []Holding) error {
	if holdings == nil {
		holdings = []Holding{}
	}
	data, err := json.MarshalIndent(holdings, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode holdings: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// DecodeHoldings reads a holdings collection from r.
func DecodeHoldings(r io.Reader) ([]Holding, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var holdings []Holding
	if err := json.Unmarshal(data, &holdings); err != nil {
		return nil, fmt.Errorf("cannot decode holdings: %w", err)
	}
	return holdings, nil
}

// EncodeGroups writes the groups collection to w.
func EncodeGroups(w io.Writer, groups []Group) error {
	if groups == nil {
		groups = []Group{}
	}
	data, err := json.MarshalIndent(groups, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode groups: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// DecodeGroups reads a groups collection from r.
func DecodeGroups(r io.Reader) ([]Group, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var groups []Group
	if err := json.Unmarshal(data, &groups); err != nil {
		return nil, fmt.Errorf("cannot decode groups: %w", err)
	}
	return groups, nil
}
