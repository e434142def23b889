package fundfolio

import (
	"context"
	"math"
)

// Quote is a raw valuation record for one fund, normalized from whatever an
// upstream returned. Any subset of fields may be absent: some sources give
// only a live estimate, others only the settled reference NAV.
//
// For the value fields absence and garbage collapse to the same thing: a
// value that is not finite and strictly positive is not usable, and only
// Reconcile interprets that. EstimatedChange is meaningful only when
// EstimatedValue is usable, since a change percent without its estimate has
// nothing to apply to.
type Quote struct {
	ReferenceValue  float64 // last settled NAV, 0 when absent
	ReferenceDate   Date    // zero when absent
	EstimatedValue  float64 // live estimate, 0 when absent
	EstimatedChange float64 // live change percent
	DisplayName     string
	SourceTag       string
}

// usable reports whether v is a valid valuation figure. Upstreams
// intermittently return zero or garbage instead of failing cleanly, so only
// finite positive values count.
func usable(v float64) bool {
	return v > 0 && !math.IsInf(v, 1) && !math.IsNaN(v)
}

// HasReference reports whether the quote carries a usable settled NAV.
func (q *Quote) HasReference() bool { return q != nil && usable(q.ReferenceValue) }

// HasEstimate reports whether the quote carries a usable live estimate.
func (q *Quote) HasEstimate() bool { return q != nil && usable(q.EstimatedValue) }

// A QuoteSource fetches the freshest quote it can for one fund code.
//
// FetchQuote never fails: timeouts, malformed payloads and non-success
// statuses all collapse to nil, and the caller keeps its previous state. The
// source owns its own network timeout.
type QuoteSource interface {
	FetchQuote(ctx context.Context, code string) *Quote
}

// QuoteSourceFunc adapts a function to the QuoteSource interface.
type QuoteSourceFunc func(ctx context.Context, code string) *Quote

func (f QuoteSourceFunc) FetchQuote(ctx context.Context, code string) *Quote { return f(ctx, code) }
