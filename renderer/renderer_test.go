package renderer

import (
	"strings"
	"testing"

	"github.com/yfei/fundfolio"
)

func TestSummary(t *testing.T) {
	out := Summary(&SummaryReport{
		Date: fundfolio.MustParseDate("2024-06-17"),
		Total: fundfolio.PortfolioTotal{
			MarketValue:      3460,
			TodayProfit:      60,
			CumulativeReturn: 110,
			Count:            2,
		},
		Groups: []fundfolio.GroupStat{
			{Group: fundfolio.Group{Name: "自选"}, MarketValue: 1960, TodayProfit: -40, CumulativeReturn: -190, Count: 1},
		},
	})

	for _, want := range []string{
		"2024-06-17",
		"3460.00",
		"+60.00",
		"| 自选 | 1960.00 | -40.00 | -190.00 | 1 |",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestSummaryZeroProfitRendersDash(t *testing.T) {
	out := Summary(&SummaryReport{Date: fundfolio.MustParseDate("2024-06-17")})
	if !strings.Contains(out, "| Today's Profit | - |") {
		t.Errorf("zero profit not rendered as dash:\n%s", out)
	}
}

func TestHoldings(t *testing.T) {
	h := fundfolio.NewHolding("110011", "易方达优质精选", "g1", fundfolio.Q(1000), fundfolio.CNY(1.2))
	h.ReferenceValue = 1.48
	h.EstimatedValue = 1.50
	h.EstimatedChange = 1.06
	h.SourceTag = "official"

	out := Holdings(&HoldingsReport{GroupName: "自选", Holdings: []fundfolio.Holding{h}})
	for _, want := range []string{
		"自选",
		"易方达优质精选",
		"110011",
		"1.4800",  // nav, four decimals
		"+1.06%",  // signed change
		"1500.00", // market value
		"official",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("holdings missing %q:\n%s", want, out)
		}
	}
}

func TestHistory(t *testing.T) {
	out := History(&HistoryReport{
		Code: "110011",
		Name: "易方达优质精选",
		Points: []fundfolio.NavPoint{
			{Date: fundfolio.MustParseDate("2024-06-13"), Value: 1.4701},
			{Date: fundfolio.MustParseDate("2024-06-14"), Value: 1.4855},
		},
	})
	for _, want := range []string{"110011", "2024-06-13", "1.4701", "1.4855"} {
		if !strings.Contains(out, want) {
			t.Errorf("history missing %q:\n%s", want, out)
		}
	}
}

func TestSearchResults(t *testing.T) {
	out := SearchResults([]fundfolio.SearchResult{
		{Code: "110011", Name: "易方达优质精选", Category: "混合型"},
	})
	if !strings.Contains(out, "| 110011 | 易方达优质精选 | 混合型 |") {
		t.Errorf("search row missing:\n%s", out)
	}
}

func TestAllocations(t *testing.T) {
	out := Allocations([]fundfolio.Allocation{{Tag: "equity", Value: 1500}})
	if !strings.Contains(out, "| equity | 1500.00 |") {
		t.Errorf("allocation row missing:\n%s", out)
	}
}

func TestTransactions(t *testing.T) {
	h := fundfolio.NewHolding("110011", "易方达优质精选", "g1", fundfolio.Q(100), fundfolio.CNY(4))
	out := Transactions(h)
	for _, want := range []string{"易方达优质精选", "buy", "100"} {
		if !strings.Contains(out, want) {
			t.Errorf("transactions missing %q:\n%s", want, out)
		}
	}
}
