package fundfolio

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// This file contains functions to access the eastmoney quote endpoints: the
// push2 batch snapshot (stocks, ETFs and indices), the fund search list and
// the NAV history archive.

// secid maps a bare instrument code to the exchange-prefixed identifier the
// push2 endpoint expects: "1." for Shanghai, "0." for Shenzhen. The prefix is
// guessed from the code itself, which is how the upstream's own frontend does
// it.
func secid(code string) string {
	switch {
	case strings.HasPrefix(code, "51"),
		strings.HasPrefix(code, "56"),
		strings.HasPrefix(code, "58"),
		strings.HasPrefix(code, "6"),
		strings.HasPrefix(code, "11"):
		return "1." + code
	default:
		return "0." + code
	}
}

// batchSize bounds one push2 request; the endpoint truncates longer lists.
const batchSize = 40

// changePercents fetches the current day change percent for a set of codes
// (stocks or ETFs), batching requests. Codes the upstream does not know are
// simply absent from the result.
func changePercents(ctx context.Context, codes []string) (map[string]float64, error) {
	out := make(map[string]float64, len(codes))
	unique := make([]string, 0, len(codes))
	seen := make(map[string]bool, len(codes))
	for _, c := range codes {
		if !seen[c] {
			seen[c] = true
			unique = append(unique, c)
		}
	}

	for i := 0; i < len(unique); i += batchSize {
		batch := unique[i:min(i+batchSize, len(unique))]
		secids := make([]string, len(batch))
		for j, c := range batch {
			secids[j] = secid(c)
		}
		addr := "http://push2.eastmoney.com/api/qt/ulist.np/get?fltt=2&invt=2&fields=f3,f12&secids=" + strings.Join(secids, ",")

		var jobj any
		if err := jwget(ctx, live(), addr, &jobj); err != nil {
			return out, fmt.Errorf("eastmoney batch quote: %w", err)
		}
		// The payload nests the rows under data.diff; everything else in it
		// is noise.
		jdiff, err := jsonpath.Get("$.data.diff", jobj)
		if err != nil {
			return out, fmt.Errorf("eastmoney batch quote: %q: %w", "$.data.diff", err)
		}
		rows, ok := jdiff.([]any)
		if !ok {
			return out, fmt.Errorf("eastmoney batch quote: diff is not a list")
		}
		for _, row := range rows {
			m, ok := row.(map[string]any)
			if !ok {
				continue
			}
			code, _ := m["f12"].(string)
			// f3 is "-" instead of a number when the instrument did not trade.
			if chg, ok := m["f3"].(float64); ok && code != "" {
				out[code] = chg
			}
		}
	}
	return out, nil
}

// SearchResult is one fund candidate returned by Search. Used only to
// originate new holdings; not part of the valuation engine.
type SearchResult struct {
	Code     string
	Name     string
	Category string
}

// Search matches the query against the full fund list (code, name or pinyin
// abbreviation), case-insensitively, returning at most limit candidates. The
// list itself is fetched at most once a day through the caching client.
func Search(ctx context.Context, query string, limit int) ([]SearchResult, error) {
	funds, err := fundList(ctx)
	if err != nil {
		return nil, err
	}
	query = strings.ToUpper(query)
	var results []SearchResult
	for _, f := range funds {
		if strings.Contains(f.code, query) ||
			strings.Contains(strings.ToUpper(f.name), query) ||
			strings.Contains(f.pinyin, query) {
			results = append(results, SearchResult{Code: f.code, Name: f.name, Category: f.category})
			if len(results) >= limit {
				break
			}
		}
	}
	return results, nil
}

type fundEntry struct {
	code, pinyin, name, category string
}

// fundList fetches the full fund registry. The payload is a javascript
// assignment of a nested string array:
//
//	var r = [["000001","HXCZHH","华夏成长混合","混合型-灵活",...],...];
func fundList(ctx context.Context) ([]fundEntry, error) {
	body, err := wget(ctx, daily(), "http://fund.eastmoney.com/js/fundcode_search.js")
	if err != nil {
		return nil, fmt.Errorf("eastmoney fund list: %w", err)
	}
	start := strings.Index(string(body), "[")
	end := strings.LastIndex(string(body), "]")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("eastmoney fund list: no array in %d bytes", len(body))
	}
	var rows [][]string
	if err := json.Unmarshal(body[start:end+1], &rows); err != nil {
		return nil, fmt.Errorf("eastmoney fund list: %w", err)
	}
	funds := make([]fundEntry, 0, len(rows))
	for _, row := range rows {
		if len(row) < 4 {
			continue
		}
		funds = append(funds, fundEntry{code: row[0], pinyin: row[1], name: row[2], category: row[3]})
	}
	return funds, nil
}

// NavPoint is one settled NAV observation.
type NavPoint struct {
	Date  Date
	Value float64
}

// FetchHistory returns up to count settled NAV points for a fund, most
// recent last.
func FetchHistory(ctx context.Context, code string, count int) ([]NavPoint, error) {
	addr := fmt.Sprintf("http://api.fund.eastmoney.com/f10/lsjz?fundCode=%s&pageIndex=1&pageSize=%d", url.QueryEscape(code), count)
	var payload struct {
		Data struct {
			LSJZList []struct {
				FSRQ string `json:"FSRQ"` // NAV date
				DWJZ string `json:"DWJZ"` // unit NAV
			} `json:"LSJZList"`
		} `json:"Data"`
	}
	if err := jwget(ctx, live(), addr, &payload); err != nil {
		return nil, fmt.Errorf("eastmoney history %s: %w", code, err)
	}
	// upstream is newest-first; flip to chronological order.
	rows := payload.Data.LSJZList
	points := make([]NavPoint, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		day, err := ParseDate(rows[i].FSRQ)
		if err != nil {
			continue
		}
		if v := atof(rows[i].DWJZ); usable(v) {
			points = append(points, NavPoint{Date: day, Value: v})
		}
	}
	return points, nil
}

// IndexQuote is a snapshot of one market index or traded instrument, for the
// market overview.
type IndexQuote struct {
	Code          string
	Name          string
	Value         float64
	ChangePercent float64
}

// defaultIndices are shown when the caller asks for no specific codes:
// the SSE composite and the Shenzhen component index.
var defaultIndices = []string{"1.000001", "0.399001"}

// MarketSnapshot fetches a quote snapshot for the given secids (or the
// default indices when empty).
func MarketSnapshot(ctx context.Context, secids []string) ([]IndexQuote, error) {
	if len(secids) == 0 {
		secids = defaultIndices
	}
	addr := "http://push2.eastmoney.com/api/qt/ulist.np/get?fltt=2&invt=2&fields=f2,f3,f12,f14&secids=" + strings.Join(secids, ",")
	var jobj any
	if err := jwget(ctx, live(), addr, &jobj); err != nil {
		return nil, fmt.Errorf("eastmoney market snapshot: %w", err)
	}
	jdiff, err := jsonpath.Get("$.data.diff", jobj)
	if err != nil {
		return nil, fmt.Errorf("eastmoney market snapshot: %q: %w", "$.data.diff", err)
	}
	rows, ok := jdiff.([]any)
	if !ok {
		return nil, fmt.Errorf("eastmoney market snapshot: diff is not a list")
	}
	var quotes []IndexQuote
	for _, row := range rows {
		m, ok := row.(map[string]any)
		if !ok {
			continue
		}
		q := IndexQuote{}
		q.Code, _ = m["f12"].(string)
		q.Name, _ = m["f14"].(string)
		q.Value, _ = m["f2"].(float64)
		q.ChangePercent, _ = m["f3"].(float64)
		quotes = append(quotes, q)
	}
	return quotes, nil
}
