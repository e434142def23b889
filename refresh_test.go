package fundfolio

import (
	"context"
	"testing"
)

func TestRefreshAllKeepsOrderAndLength(t *testing.T) {
	holdings := []Holding{
		{ID: "a", Code: "110011", ReferenceValue: 1.40, EstimatedValue: 1.40},
		{ID: "b", Code: "161725", ReferenceValue: 1.10, EstimatedValue: 1.10},
		{ID: "c", Code: "005827", ReferenceValue: 2.30, EstimatedValue: 2.30},
	}
	source := staticSource(map[string]*Quote{
		"110011": {ReferenceValue: 1.48, EstimatedValue: 1.50, EstimatedChange: 1.06},
		// 161725 has no quote at all.
		"005827": {EstimatedValue: 2.35, EstimatedChange: 0.4},
	})

	got := RefreshAll(context.Background(), holdings, source)
	if len(got) != len(holdings) {
		t.Fatalf("length = %d, want %d", len(got), len(holdings))
	}
	for i := range holdings {
		if got[i].ID != holdings[i].ID {
			t.Fatalf("order broken at %d: %s", i, got[i].ID)
		}
	}
	if got[0].EstimatedValue != 1.50 {
		t.Errorf("refreshed estimate = %v, want 1.50", got[0].EstimatedValue)
	}
	// The source-less holding keeps its prior valuation.
	if got[1].ReferenceValue != 1.10 || got[1].EstimatedValue != 1.10 {
		t.Errorf("holding without quote changed: %+v", got[1])
	}
	// Estimate-only quote keeps the prior reference.
	if got[2].ReferenceValue != 2.30 || got[2].EstimatedValue != 2.35 {
		t.Errorf("estimate-only refresh wrong: %+v", got[2])
	}
}

func TestRefreshAllEmptyInput(t *testing.T) {
	calls := 0
	source := QuoteSourceFunc(func(context.Context, string) *Quote {
		calls++
		return nil
	})
	got := RefreshAll(context.Background(), nil, source)
	if got == nil || len(got) != 0 {
		t.Errorf("empty refresh = %v, want empty non-nil slice", got)
	}
	if calls != 0 {
		t.Errorf("source called %d times for an empty batch", calls)
	}
}

func TestRefreshAllRecoversFromPanickingSource(t *testing.T) {
	holdings := []Holding{
		{ID: "a", Code: "110011", ReferenceValue: 1.40, EstimatedValue: 1.40},
		{ID: "b", Code: "161725", ReferenceValue: 1.10, EstimatedValue: 1.10},
	}
	source := QuoteSourceFunc(func(_ context.Context, code string) *Quote {
		if code == "110011" {
			panic("rogue source")
		}
		return &Quote{EstimatedValue: 1.12, EstimatedChange: 1.8}
	})

	got := RefreshAll(context.Background(), holdings, source)
	// The panicking holding keeps its prior state; the other one updates.
	if got[0].EstimatedValue != 1.40 {
		t.Errorf("panicked holding changed: %+v", got[0])
	}
	if got[1].EstimatedValue != 1.12 {
		t.Errorf("sibling holding not refreshed: %+v", got[1])
	}
}

func TestRefreshOne(t *testing.T) {
	h := Holding{ID: "a", Code: "110011"}
	source := staticSource(map[string]*Quote{
		"110011": {ReferenceValue: 1.48, EstimatedValue: 1.50, DisplayName: "易方达优质精选"},
	})
	got := RefreshOne(context.Background(), h, source)
	if got.DisplayName != "易方达优质精选" || got.ReferenceValue != 1.48 {
		t.Errorf("RefreshOne = %+v", got)
	}
}
