package fundfolio

import "testing"

func fixtureGroups() []Group {
	return []Group{
		{ID: "g1", Name: "自选", IsDefault: true},
		{ID: "g2", Name: "retirement"},
	}
}

func fixtureHoldings() []Holding {
	return []Holding{
		{
			ID: "h1", Code: "110011", GroupID: "g1", Tags: []string{"equity"},
			ReferenceValue: 1.40, EstimatedValue: 1.50,
			Shares: Q(1000), AverageCost: CNY(1.20),
		},
		{
			ID: "h2", Code: "161725", GroupID: "g2", Tags: []string{"liquor"},
			ReferenceValue: 1.00, EstimatedValue: 0.98,
			Shares: Q(2000), AverageCost: CNY(1.10), RealizedGain: CNY(50),
		},
		// Watch entry: never counted.
		{
			ID: "h3", Code: "510300", GroupID: "g1", Watch: true,
			ReferenceValue: 3.50, EstimatedValue: 3.55,
		},
		// Flat position: never counted.
		{
			ID: "h4", Code: "005827", GroupID: "g2",
			ReferenceValue: 2.30, EstimatedValue: 2.31, Shares: Q(0),
		},
	}
}

func TestPortfolioTotals(t *testing.T) {
	got := PortfolioTotals(fixtureHoldings())

	// h1: value 1500, today (1.50-1.40)*1000 = 100, cum 1500-1200 = 300
	// h2: value 1960, today (0.98-1.00)*2000 = -40, cum 1960-2200+50 = -190
	if got.Count != 2 {
		t.Errorf("count = %d, want 2", got.Count)
	}
	if want := 1500.0 + 1960.0; !approx(got.MarketValue, want) {
		t.Errorf("market value = %v, want %v", got.MarketValue, want)
	}
	if want := 100.0 - 40.0; !approx(got.TodayProfit, want) {
		t.Errorf("today profit = %v, want %v", got.TodayProfit, want)
	}
	if want := 300.0 - 190.0; !approx(got.CumulativeReturn, want) {
		t.Errorf("cumulative return = %v, want %v", got.CumulativeReturn, want)
	}
}

func TestGroupStats(t *testing.T) {
	stats := GroupStats(fixtureGroups(), fixtureHoldings())
	if len(stats) != 2 {
		t.Fatalf("stats = %d, want 2", len(stats))
	}
	// Sorted by market value descending: g2 (1960) before g1 (1500).
	if stats[0].Group.ID != "g2" || stats[1].Group.ID != "g1" {
		t.Fatalf("order = %s, %s; want g2, g1", stats[0].Group.ID, stats[1].Group.ID)
	}
	if stats[0].Count != 1 || stats[1].Count != 1 {
		t.Errorf("counts = %d, %d; want 1, 1", stats[0].Count, stats[1].Count)
	}
	if !approx(stats[1].MarketValue, 1500) {
		t.Errorf("g1 market value = %v, want 1500", stats[1].MarketValue)
	}
}

func TestGroupStatsIgnoresOrphans(t *testing.T) {
	holdings := []Holding{{
		ID: "h9", Code: "110011", GroupID: "gone",
		EstimatedValue: 1.0, Shares: Q(10),
	}}
	stats := GroupStats(fixtureGroups(), holdings)
	for _, s := range stats {
		if s.Count != 0 {
			t.Errorf("orphan holding counted in group %s", s.Group.ID)
		}
	}
}

func TestAllocationByTag(t *testing.T) {
	holdings := fixtureHoldings()
	// An untagged counted holding falls under "other".
	holdings = append(holdings, Holding{
		ID: "h5", Code: "007994", GroupID: "g1",
		EstimatedValue: 2.0, Shares: Q(100),
	})

	allocs := AllocationByTag(holdings)
	if len(allocs) != 3 {
		t.Fatalf("allocations = %d, want 3", len(allocs))
	}
	// Descending by value: liquor 1960, equity 1500, other 200.
	want := []Allocation{
		{Tag: "liquor", Value: 1960},
		{Tag: "equity", Value: 1500},
		{Tag: "other", Value: 200},
	}
	for i, a := range allocs {
		if a.Tag != want[i].Tag || !approx(a.Value, want[i].Value) {
			t.Errorf("allocs[%d] = %+v, want %+v", i, a, want[i])
		}
	}
}

// approx compares report floats with a tolerance; they come from float
// arithmetic over decimal share counts.
func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
