package fundfolio

import "sort"

// This file contains the stateless roll-ups of holdings into group and
// portfolio totals. Nothing here is persisted; every figure is recomputed
// from the current collections on each call.

// GroupStat is the aggregate of one group's counted holdings.
type GroupStat struct {
	Group Group
	// MarketValue is the sum of estimatedValue * shares.
	MarketValue float64
	// TodayProfit is the sum of today's unrealized profits.
	TodayProfit float64
	// CumulativeReturn is unrealized plus realized gain since inception.
	CumulativeReturn float64
	// Count is the number of counted (non-watch, shares > 0) holdings.
	Count int
}

// cumulativeReturn is the holding's total gain: market value over cost basis,
// plus what selling already locked in.
func cumulativeReturn(h Holding) float64 {
	return h.MarketValue() - h.CostBasis().AsFloat() + h.RealizedGain.AsFloat()
}

// GroupStats rolls holdings up per group, sorted by market value descending;
// equal values keep the groups' input order.
func GroupStats(groups []Group, holdings []Holding) []GroupStat {
	stats := make([]GroupStat, len(groups))
	index := make(map[string]int, len(groups))
	for i, g := range groups {
		stats[i] = GroupStat{Group: g}
		index[g.ID] = i
	}
	for _, h := range holdings {
		if !h.Counted() {
			continue
		}
		i, ok := index[h.GroupID]
		if !ok {
			continue
		}
		stats[i].MarketValue += h.MarketValue()
		stats[i].TodayProfit += h.ProfitToday()
		stats[i].CumulativeReturn += cumulativeReturn(h)
		stats[i].Count++
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].MarketValue > stats[j].MarketValue
	})
	return stats
}

// PortfolioTotal is the whole portfolio summed over counted holdings,
// independent of grouping.
type PortfolioTotal struct {
	MarketValue      float64
	TodayProfit      float64
	CumulativeReturn float64
	Count            int
}

// PortfolioTotals sums all counted holdings.
func PortfolioTotals(holdings []Holding) PortfolioTotal {
	var t PortfolioTotal
	for _, h := range holdings {
		if !h.Counted() {
			continue
		}
		t.MarketValue += h.MarketValue()
		t.TodayProfit += h.ProfitToday()
		t.CumulativeReturn += cumulativeReturn(h)
		t.Count++
	}
	return t
}

// Allocation is the market value held under one tag.
type Allocation struct {
	Tag   string
	Value float64
}

// AllocationByTag groups market value by each counted holding's primary tag
// (first tag, or "other"), sorted by value descending with stable ties.
func AllocationByTag(holdings []Holding) []Allocation {
	values := make(map[string]float64)
	var order []string
	for _, h := range holdings {
		if !h.Counted() {
			continue
		}
		tag := h.PrimaryTag()
		if _, ok := values[tag]; !ok {
			order = append(order, tag)
		}
		values[tag] += h.MarketValue()
	}
	allocs := make([]Allocation, 0, len(order))
	for _, tag := range order {
		allocs = append(allocs, Allocation{Tag: tag, Value: values[tag]})
	}
	sort.SliceStable(allocs, func(i, j int) bool {
		return allocs[i].Value > allocs[j].Value
	})
	return allocs
}
