package renderer

import "github.com/yfei/fundfolio"

// SummaryReport is the data behind the portfolio summary document.
type SummaryReport struct {
	Date   fundfolio.Date
	Total  fundfolio.PortfolioTotal
	Groups []fundfolio.GroupStat
}

// Summary renders the portfolio-wide totals and the per-group roll-up.
func Summary(r *SummaryReport) string { return render("summary.md", r) }

// HoldingsReport is the data behind the holdings listing.
type HoldingsReport struct {
	GroupName string
	Holdings  []fundfolio.Holding
}

// Holdings renders a table of holdings with their live valuations.
func Holdings(r *HoldingsReport) string { return render("holdings.md", r) }

// Allocations renders the market value split by primary tag.
func Allocations(allocs []fundfolio.Allocation) string {
	return render("allocation.md", allocs)
}

// Transactions renders a holding's ledger entries in entry order.
func Transactions(h fundfolio.Holding) string { return render("transactions.md", h) }
