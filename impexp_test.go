package fundfolio

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestExportParseRoundTrip(t *testing.T) {
	holdings := fixtureHoldings()
	groups := fixtureGroups()

	var buf bytes.Buffer
	if err := Export(&buf, holdings, groups); err != nil {
		t.Fatal(err)
	}

	b, err := ParseBackup(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b.Version != BackupVersion {
		t.Errorf("version = %q, want %q", b.Version, BackupVersion)
	}
	if b.Timestamp == 0 {
		t.Error("timestamp missing")
	}
	if len(b.Funds) != len(holdings) || len(b.Groups) != len(groups) {
		t.Fatalf("round trip lost entries: %d funds, %d groups", len(b.Funds), len(b.Groups))
	}
	if b.Funds[0].ID != holdings[0].ID || b.Funds[0].Code != holdings[0].Code {
		t.Errorf("funds[0] = %+v", b.Funds[0])
	}
}

func TestExportEmptyCollections(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(&buf, nil, nil); err != nil {
		t.Fatal(err)
	}
	// nil collections export as empty arrays, not null.
	if strings.Contains(buf.String(), "null") {
		t.Errorf("export contains null:\n%s", buf.String())
	}
	if _, err := ParseBackup(&buf); err != nil {
		t.Errorf("empty export does not parse back: %v", err)
	}
}

func TestParseBackupRejectsMissingKeys(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "not json", in: "not json at all"},
		{name: "missing funds", in: `{"groups":[]}`},
		{name: "missing groups", in: `{"funds":[]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseBackup(strings.NewReader(tt.in)); err == nil {
				t.Error("invalid backup accepted")
			}
		})
	}
}

func TestImportReplacesStore(t *testing.T) {
	s, err := Open(newMemBackend(), nilSource)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddHolding(context.Background(), "999999", "old", s.DefaultGroup().ID, Q(1), CNY(1)); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Export(&buf, fixtureHoldings(), fixtureGroups()); err != nil {
		t.Fatal(err)
	}
	if err := s.Import(&buf); err != nil {
		t.Fatal(err)
	}

	if len(s.Holdings()) != len(fixtureHoldings()) {
		t.Errorf("holdings = %d, want %d", len(s.Holdings()), len(fixtureHoldings()))
	}
	if _, err := s.HoldingByCode("999999", ""); err == nil {
		t.Error("pre-import holding survived")
	}
	if s.DefaultGroup().ID != "g1" {
		t.Errorf("default group = %+v", s.DefaultGroup())
	}
}

func TestImportFailureLeavesStoreUntouched(t *testing.T) {
	s, err := Open(newMemBackend(), nilSource)
	if err != nil {
		t.Fatal(err)
	}
	h, err := s.AddHolding(context.Background(), "110011", "n", s.DefaultGroup().ID, Q(100), CNY(4))
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Import(strings.NewReader(`{"groups":[]}`)); err == nil {
		t.Fatal("invalid backup accepted")
	}
	if _, err := s.Holding(h.ID); err != nil {
		t.Errorf("holding lost on failed import: %v", err)
	}
	if len(s.Groups()) != 1 {
		t.Errorf("groups changed on failed import: %+v", s.Groups())
	}
}

func TestImportWithoutGroupsRecreatesDefault(t *testing.T) {
	s, err := Open(newMemBackend(), nilSource)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Import(strings.NewReader(`{"funds":[],"groups":[]}`)); err != nil {
		t.Fatal(err)
	}
	g := s.DefaultGroup()
	if g.Name != DefaultGroupName || !g.IsDefault {
		t.Errorf("default group = %+v", g)
	}
}
