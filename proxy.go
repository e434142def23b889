package fundfolio

import (
	"context"
	"fmt"
	"log"
	"math"
	"regexp"
	"strings"
	"sync"
	"time"
)

// This file implements the estimation fallbacks used when the official
// estimate is flat or missing during the trading session:
//
//   - proxy: index funds, feeder funds and QDII trackers move with a listed
//     ETF; the fund name is matched against a keyword table and the ETF's
//     live change percent stands in for the fund's.
//   - penetration: for active equity funds, the top-10 reported stock
//     holdings are weighted by their live change percents, damped by 0.95 on
//     the assumption that the unreported remainder moves less.

// proxyMap maps a keyword appearing in a fund's name to the exchange-traded
// proxy whose intraday move approximates the fund. Longest matching keyword
// wins, so "纳斯达克" beats "纳".
var proxyMap = map[string]string{
	// precious metals & commodities
	"上海金": "518600",
	"黄金":  "518880",
	"豆粕":  "159985",
	"有色":  "512400",
	"能源":  "159930",

	// cross-border & QDII
	"纳斯达克":  "513100",
	"纳指":    "513100",
	"标普500": "513500",
	"标普":    "513500",
	"恒生科技":  "513130",
	"港股通科技": "513130",
	"恒生互联网": "513330",
	"中概互联":  "513050",
	"海外互联":  "513050",
	"恒生医疗":  "513060",
	"日经":    "513520",
	"东南亚":   "513910",
	"沙特":    "520830",

	// broad indices
	"沪深300":  "510300",
	"中证500":  "510500",
	"中证1000": "512100",
	"中证2000": "561370",
	"创业板50":  "159949",
	"创业板":    "159915",
	"科创50":   "588000",
	"科创100":  "588190",
	"上证50":   "510050",
	"A50":    "560050",
	"科创创业":   "588400",
	"双创":     "588400",

	// sectors
	"白酒":   "512690",
	"食品饮料": "512690",
	"半导体":  "512480",
	"芯片":   "512480",
	"集成电路": "512480",
	"医疗":   "512170",
	"医药":   "512010",
	"生物":   "512290",
	"中药":   "562390",
	"光伏":   "515790",
	"新能源车": "515030",
	"新能车":  "515030",
	"电池":   "159755",
	"军工":   "512660",
	"国防":   "512660",
	"证券":   "512880",
	"券商":   "512880",
	"银行":   "512800",
	"人工智能": "515070",
	"AI":   "515070",
	"计算机":  "512720",
	"软件":   "515290",
	"信创":   "562030",
	"游戏":   "516010",
	"动漫":   "516010",
	"传媒":   "512980",
	"红利":   "515080",
	"高股息":  "515080",
	"煤炭":   "515220",
	"地产":   "512200",
	"酒":    "512690",

	// bonds, as a bellwether
	"可转债": "511380",
	"短债":  "511260",
	"国债":  "511010",
	"政金债": "511520",
}

// proxyFor resolves the exchange-traded proxy for a fund. A fund that is
// itself listed (ETF/LOF code prefixes) is its own proxy; otherwise the name
// is looked up in the keyword table, longest match first. Empty when no
// proxy applies.
func proxyFor(code, name string) string {
	for _, p := range []string{"51", "159", "56", "58"} {
		if strings.HasPrefix(code, p) {
			return code
		}
	}
	bestKey, bestCode := "", ""
	for key, etf := range proxyMap {
		if strings.Contains(name, key) && len(key) > len(bestKey) {
			bestKey, bestCode = key, etf
		}
	}
	return bestCode
}

// Stake is one reported position of a fund: a stock code and its percentage
// of the fund's net assets.
type Stake struct {
	Code    string
	Percent float64
}

// stakeTTL is how long reported fund holdings stay fresh; they only change
// on quarterly disclosures.
const stakeTTL = 3 * 24 * time.Hour

var (
	stakeCodeRe = regexp.MustCompile(`>([0-9]{6})</a>`)
	stakePctRe  = regexp.MustCompile(`([0-9]+(?:\.[0-9]+)?)%`)
)

// fetchStakes fetches the fund's reported top-10 stock holdings from the F10
// archive. The payload embeds an HTML table inside a javascript string, so it
// is mined with regular expressions rather than parsed.
func fetchStakes(ctx context.Context, code string) ([]Stake, error) {
	year := time.Now().In(cst).Year()
	for _, y := range []int{year, year - 1} {
		addr := fmt.Sprintf("http://fundf10.eastmoney.com/FundArchivesDatas.aspx?type=jjcc&code=%s&topline=10&year=%d", code, y)
		body, err := wget(ctx, daily(), addr)
		if err != nil {
			return nil, fmt.Errorf("fund stakes %s: %w", code, err)
		}
		stakes := parseStakes(string(body))
		if len(stakes) > 0 {
			return stakes, nil
		}
	}
	return nil, nil
}

// parseStakes extracts (stock code, percent) pairs row by row from the
// archive payload. Rows without both parts are skipped.
func parseStakes(body string) []Stake {
	var stakes []Stake
	for _, row := range strings.Split(body, "<tr>") {
		code := stakeCodeRe.FindStringSubmatch(row)
		pct := stakePctRe.FindStringSubmatch(row)
		if code == nil || pct == nil {
			continue
		}
		stakes = append(stakes, Stake{Code: code[1], Percent: atof(pct[1])})
		if len(stakes) == 10 {
			break
		}
	}
	return stakes
}

// Estimator is the full quote source chain: official estimate first, then
// the proxy and penetration fallbacks, gated on the trading session phase.
// It is safe for the concurrent fan-out of a batch refresh; the stakes cache
// is the only shared state.
type Estimator struct {
	phase func() MarketPhase

	mu     sync.Mutex
	stakes map[string]stakeEntry
}

type stakeEntry struct {
	stakes  []Stake
	fetched time.Time
}

// NewEstimator returns an Estimator using the real market clock.
func NewEstimator() *Estimator {
	return &Estimator{phase: CurrentPhase, stakes: make(map[string]stakeEntry)}
}

// cachedStakes returns the fund's reported holdings, fetching at most once
// per TTL window.
func (e *Estimator) cachedStakes(ctx context.Context, code string) []Stake {
	e.mu.Lock()
	entry, ok := e.stakes[code]
	e.mu.Unlock()
	if ok && time.Since(entry.fetched) < stakeTTL {
		return entry.stakes
	}
	stakes, err := fetchStakes(ctx, code)
	if err != nil {
		log.Printf("warning: stakes for %s unavailable: %v", code, err)
		return entry.stakes // possibly stale, better than nothing
	}
	e.mu.Lock()
	e.stakes[code] = stakeEntry{stakes: stakes, fetched: time.Now()}
	e.mu.Unlock()
	return stakes
}

// FetchQuote implements QuoteSource. It never fails; the worst outcome is a
// nil quote and the holding keeps its last good valuation.
func (e *Estimator) FetchQuote(ctx context.Context, code string) *Quote {
	q := OfficialSource().FetchQuote(ctx, code)
	if q == nil {
		return nil
	}

	phase := e.phase()
	if !phase.Live() {
		// Outside the session the settled NAV is the whole truth; estimates
		// from any source would be yesterday's news.
		if q.HasReference() {
			q.EstimatedValue = q.ReferenceValue
			q.EstimatedChange = 0
		}
		return q
	}

	// During the session a flat official estimate usually means "not
	// updated", not "unchanged".
	if q.HasEstimate() && math.Abs(q.EstimatedChange) > 0.001 {
		return q
	}
	if !q.HasReference() {
		return q // nothing to derive an estimate from
	}

	if etf := proxyFor(code, q.DisplayName); etf != "" {
		if chg, ok := e.liveChange(ctx, etf); ok {
			return derived(q, chg, "proxy:"+etf)
		}
	}

	if est, ok := e.penetrate(ctx, code); ok {
		return derived(q, est, "holdings")
	}
	return q
}

// liveChange fetches the current change percent for a single instrument.
func (e *Estimator) liveChange(ctx context.Context, code string) (float64, bool) {
	quotes, err := changePercents(ctx, []string{code})
	if err != nil {
		log.Printf("warning: proxy quote for %s unavailable: %v", code, err)
		return 0, false
	}
	chg, ok := quotes[code]
	return chg, ok
}

// penetrate estimates the fund's change percent from its reported top-10
// stock holdings, weighted by position size and damped by 0.95.
func (e *Estimator) penetrate(ctx context.Context, code string) (float64, bool) {
	stakes := e.cachedStakes(ctx, code)
	if len(stakes) == 0 {
		return 0, false
	}
	codes := make([]string, len(stakes))
	for i, s := range stakes {
		codes[i] = s.Code
	}
	quotes, err := changePercents(ctx, codes)
	if err != nil {
		log.Printf("warning: penetration quotes for %s unavailable: %v", code, err)
		return 0, false
	}
	var weighted, total float64
	for _, s := range stakes {
		weighted += quotes[s.Code] * s.Percent
		total += s.Percent
	}
	if total <= 0 {
		return 0, false
	}
	return weighted / total * 0.95, true
}

// derived builds a quote whose estimate is the reference NAV moved by the
// given change percent.
func derived(q *Quote, changePercent float64, tag string) *Quote {
	d := *q
	d.EstimatedChange = changePercent
	d.EstimatedValue = q.ReferenceValue * (1 + changePercent/100)
	d.SourceTag = tag
	return &d
}
