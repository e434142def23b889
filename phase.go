package fundfolio

import "time"

// MarketPhase describes where the mainland trading session currently stands.
// The live-estimate endpoints only carry meaningful data during the session;
// outside of it the settled NAV is the truth.
type MarketPhase string

const (
	PhaseClosed     MarketPhase = "CLOSED"
	PhasePreMarket  MarketPhase = "PRE_MARKET"
	PhaseMarket     MarketPhase = "MARKET"
	PhaseLunchBreak MarketPhase = "LUNCH_BREAK"
	PhasePostMarket MarketPhase = "POST_MARKET"
)

// Live reports whether intraday estimates are worth fetching in this phase.
func (p MarketPhase) Live() bool { return p == PhaseMarket || p == PhaseLunchBreak }

var cst = time.FixedZone("CST", 8*60*60)

// CurrentPhase returns the session phase for the mainland exchanges right now.
func CurrentPhase() MarketPhase { return PhaseAt(time.Now()) }

// PhaseAt returns the session phase at the given instant.
func PhaseAt(t time.Time) MarketPhase {
	now := t.In(cst)
	if wd := now.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return PhaseClosed
	}
	mins := now.Hour()*60 + now.Minute()
	switch {
	case mins < 9*60+25:
		return PhasePreMarket
	case mins >= 11*60+30 && mins < 13*60:
		return PhaseLunchBreak
	case mins <= 15*60:
		return PhaseMarket
	default:
		return PhasePostMarket
	}
}
