package renderer

import "github.com/yfei/fundfolio"

// Market renders an index snapshot table.
func Market(quotes []fundfolio.IndexQuote) string { return render("market.md", quotes) }

// HistoryReport is the data behind the NAV history document.
type HistoryReport struct {
	Code   string
	Name   string
	Points []fundfolio.NavPoint
}

// History renders the recent NAV series of one fund.
func History(r *HistoryReport) string { return render("history.md", r) }

// SearchResults renders fund search candidates.
func SearchResults(results []fundfolio.SearchResult) string {
	return render("search.md", results)
}
