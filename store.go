package fundfolio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// This file contains the application store: the single owner of the holdings
// and groups collections. All mutation goes through the operations below;
// readers get snapshot copies and every mutation replaces a collection with a
// new one rather than editing in place. There is one logical writer, so no
// locking is needed around the collections themselves; the only guard is the
// single-in-flight refresh.

// Persisted store keys.
const (
	KeyFunds  = "funds"
	KeyGroups = "groups"
)

// DefaultGroupName names the group created on first open. It is the fallback
// target that can never be deleted.
const DefaultGroupName = "自选"

// A Backend is a simple external key-value store for the persisted
// collections. Load returns fs.ErrNotExist (wrapped or not) for an absent
// key.
type Backend interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
}

// DirBackend persists each key as a JSON file in one directory.
type DirBackend struct {
	Dir string
}

func (b DirBackend) path(key string) string { return filepath.Join(b.Dir, key+".json") }

// Load implements Backend.
func (b DirBackend) Load(key string) ([]byte, error) { return os.ReadFile(b.path(key)) }

// Save implements Backend. The write goes through a temp file and a rename,
// so a crash never leaves a half-written store file behind.
func (b DirBackend) Save(key string, data []byte) error {
	if err := os.MkdirAll(b.Dir, 0o755); err != nil {
		return err
	}
	tmp := b.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, b.path(key))
}

// Store owns the canonical holdings and groups collections and exposes the
// engine operations as its mutation API.
type Store struct {
	backend  Backend
	source   QuoteSource
	holdings []Holding
	groups   []Group

	refreshMu sync.Mutex
	inFlight  bool
}

// ErrRefreshInFlight is returned when a refresh is requested while a previous
// one has not settled yet.
var ErrRefreshInFlight = errors.New("a refresh is already in flight")

// Open loads the persisted collections from the backend. A missing key is an
// empty collection; on very first open the default group is created.
func Open(backend Backend, source QuoteSource) (*Store, error) {
	s := &Store{backend: backend, source: source}

	data, err := backend.Load(KeyFunds)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// empty store
	case err != nil:
		return nil, fmt.Errorf("cannot load holdings: %w", err)
	default:
		if s.holdings, err = DecodeHoldings(bytes.NewReader(data)); err != nil {
			return nil, err
		}
	}

	data, err = backend.Load(KeyGroups)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// empty store
	case err != nil:
		return nil, fmt.Errorf("cannot load groups: %w", err)
	default:
		if s.groups, err = DecodeGroups(bytes.NewReader(data)); err != nil {
			return nil, err
		}
	}

	if len(s.groups) == 0 {
		g := NewGroup(DefaultGroupName)
		g.IsDefault = true
		s.groups = []Group{g}
		if err := s.save(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// save persists both collections. Encoding happens fully before the first
// byte is written, so an encoding failure leaves the persisted state
// untouched.
func (s *Store) save() error {
	var funds, groups bytes.Buffer
	if err := EncodeHoldings(&funds, s.holdings); err != nil {
		return err
	}
	if err := EncodeGroups(&groups, s.groups); err != nil {
		return err
	}
	if err := s.backend.Save(KeyFunds, funds.Bytes()); err != nil {
		return fmt.Errorf("cannot save holdings: %w", err)
	}
	if err := s.backend.Save(KeyGroups, groups.Bytes()); err != nil {
		return fmt.Errorf("cannot save groups: %w", err)
	}
	return nil
}

// Holdings returns a snapshot copy of the holdings collection.
func (s *Store) Holdings() []Holding {
	out := make([]Holding, len(s.holdings))
	copy(out, s.holdings)
	return out
}

// Groups returns a snapshot copy of the groups collection.
func (s *Store) Groups() []Group {
	out := make([]Group, len(s.groups))
	copy(out, s.groups)
	return out
}

// DefaultGroup returns the group marked as default.
func (s *Store) DefaultGroup() Group {
	for _, g := range s.groups {
		if g.IsDefault {
			return g
		}
	}
	// Open guarantees one default group exists.
	return s.groups[0]
}

// Group returns the group with the given id or name.
func (s *Store) Group(idOrName string) (Group, error) {
	for _, g := range s.groups {
		if g.ID == idOrName || g.Name == idOrName {
			return g, nil
		}
	}
	return Group{}, fmt.Errorf("unknown group %q", idOrName)
}

// Holding returns the holding with the given id.
func (s *Store) Holding(id string) (Holding, error) {
	for _, h := range s.holdings {
		if h.ID == id {
			return h, nil
		}
	}
	return Holding{}, fmt.Errorf("unknown holding %q", id)
}

// HoldingByCode returns the first holding with the given fund code, searching
// the given group first when groupID is non-empty.
func (s *Store) HoldingByCode(code, groupID string) (Holding, error) {
	for _, h := range s.holdings {
		if h.Code == code && (groupID == "" || h.GroupID == groupID) {
			return h, nil
		}
	}
	return Holding{}, fmt.Errorf("no holding for fund %q", code)
}

// AddGroup creates a new group.
func (s *Store) AddGroup(name string) (Group, error) {
	if name == "" {
		return Group{}, errors.New("group name is missing")
	}
	for _, g := range s.groups {
		if g.Name == name {
			return Group{}, fmt.Errorf("group %q already exists", name)
		}
	}
	g := NewGroup(name)
	s.groups = append(s.Groups(), g)
	if err := s.save(); err != nil {
		return Group{}, err
	}
	return g, nil
}

// DeleteGroup removes a group and, by cascade, every holding in it. The
// default group cannot be deleted.
func (s *Store) DeleteGroup(idOrName string) error {
	g, err := s.Group(idOrName)
	if err != nil {
		return err
	}
	if g.IsDefault {
		return fmt.Errorf("group %q is the default group and cannot be deleted", g.Name)
	}
	groups := make([]Group, 0, len(s.groups)-1)
	for _, x := range s.groups {
		if x.ID != g.ID {
			groups = append(groups, x)
		}
	}
	holdings := make([]Holding, 0, len(s.holdings))
	for _, h := range s.holdings {
		if h.GroupID != g.ID {
			holdings = append(holdings, h)
		}
	}
	s.groups, s.holdings = groups, holdings
	return s.save()
}

// AddHolding creates a holding in a group, seeds its position when shares is
// positive, and refreshes its valuation before returning. The refresh is
// awaited, not fired and forgotten: mutation first, then one direct refresh
// of just this holding.
func (s *Store) AddHolding(ctx context.Context, code, name, groupID string, shares Quantity, avgCost Money) (Holding, error) {
	if code == "" {
		return Holding{}, errors.New("fund code is missing")
	}
	if shares.IsNegative() || avgCost.IsNegative() {
		return Holding{}, fmt.Errorf("shares and cost must not be negative")
	}
	g, err := s.Group(groupID)
	if err != nil {
		return Holding{}, err
	}
	h := NewHolding(code, name, g.ID, shares, avgCost)
	h = RefreshOne(ctx, h, s.source)
	s.holdings = append(s.Holdings(), h)
	if err := s.save(); err != nil {
		return Holding{}, err
	}
	return h, nil
}

// AddWatch creates a watchlist-only holding in a group, refreshed and
// excluded from totals.
func (s *Store) AddWatch(ctx context.Context, code, name, groupID string) (Holding, error) {
	if code == "" {
		return Holding{}, errors.New("fund code is missing")
	}
	g, err := s.Group(groupID)
	if err != nil {
		return Holding{}, err
	}
	h := NewWatch(code, name, g.ID)
	h = RefreshOne(ctx, h, s.source)
	s.holdings = append(s.Holdings(), h)
	if err := s.save(); err != nil {
		return Holding{}, err
	}
	return h, nil
}

// DeleteHolding removes one holding.
func (s *Store) DeleteHolding(id string) error {
	holdings := make([]Holding, 0, len(s.holdings))
	found := false
	for _, h := range s.holdings {
		if h.ID == id {
			found = true
			continue
		}
		holdings = append(holdings, h)
	}
	if !found {
		return fmt.Errorf("unknown holding %q", id)
	}
	s.holdings = holdings
	return s.save()
}

// Record validates a transaction and applies it to a holding through the
// ledger.
func (s *Store) Record(id string, tx Transaction) (Holding, error) {
	if err := tx.Validate(); err != nil {
		return Holding{}, err
	}
	holdings := s.Holdings()
	for i, h := range holdings {
		if h.ID == id {
			holdings[i] = Apply(h, tx)
			s.holdings = holdings
			if err := s.save(); err != nil {
				return Holding{}, err
			}
			return holdings[i], nil
		}
	}
	return Holding{}, fmt.Errorf("unknown holding %q", id)
}

// Refresh runs one batch refresh over all holdings and replaces the visible
// collection atomically once every fetch has settled. A second refresh
// requested while one is in flight is rejected, never interleaved.
func (s *Store) Refresh(ctx context.Context) error {
	s.refreshMu.Lock()
	if s.inFlight {
		s.refreshMu.Unlock()
		return ErrRefreshInFlight
	}
	s.inFlight = true
	s.refreshMu.Unlock()
	defer func() {
		s.refreshMu.Lock()
		s.inFlight = false
		s.refreshMu.Unlock()
	}()

	s.holdings = RefreshAll(ctx, s.Holdings(), s.source)
	return s.save()
}
