package fundfolio

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"time"
)

// This file contains functions to access the fundgz live estimate endpoint,
// the primary upstream for fund valuations.
//
// A response is a jsonp document:
//
//	jsonpgz({"fundcode":"110011","name":"易方达优质精选",
//	         "jzrq":"2024-06-14","dwjz":"1.4855",
//	         "gsz":"1.5012","gszzl":"1.06","gztime":"2024-06-17 14:59"});
//
// where dwjz is the last settled NAV, jzrq its date, gsz the live estimate
// and gszzl the estimated change percent. All numbers travel as strings and
// any of them can be "0" or empty when the upstream has nothing.

const fundgzTag = "official"

var jsonpgzRe = regexp.MustCompile(`jsonpgz\((.*?)\);`)

// fundgzEstimate fetches the official live estimate for one fund code.
func fundgzEstimate(ctx context.Context, code string) (*Quote, error) {
	addr := fmt.Sprintf("http://fundgz.1234567.com.cn/js/gszzl_%s.js?rt=%d", code, time.Now().UnixMilli())
	body, err := wget(ctx, live(), addr)
	if err != nil {
		return nil, fmt.Errorf("fundgz %s: %w", code, err)
	}
	return parseFundgz(code, body)
}

// parseFundgz extracts a Quote from a jsonp payload. Unusable numeric fields
// are kept at zero; Reconcile decides what that means.
func parseFundgz(code string, body []byte) (*Quote, error) {
	m := jsonpgzRe.FindSubmatch(body)
	if m == nil {
		return nil, fmt.Errorf("fundgz %s: no jsonpgz payload in %d bytes", code, len(body))
	}
	var j struct {
		Fundcode string `json:"fundcode"`
		Name     string `json:"name"`
		Jzrq     string `json:"jzrq"`
		Dwjz     string `json:"dwjz"`
		Gsz      string `json:"gsz"`
		Gszzl    string `json:"gszzl"`
	}
	if err := json.Unmarshal(m[1], &j); err != nil {
		return nil, fmt.Errorf("fundgz %s: %w", code, err)
	}
	q := &Quote{
		ReferenceValue:  atof(j.Dwjz),
		EstimatedValue:  atof(j.Gsz),
		EstimatedChange: atof(j.Gszzl),
		DisplayName:     j.Name,
		SourceTag:       fundgzTag,
	}
	if d, err := ParseDate(j.Jzrq); err == nil {
		q.ReferenceDate = d
	}
	return q, nil
}

// atof reads an upstream numeric string, tolerating the comma decimal
// separator and stray spaces this API is known to emit. Unparseable input
// yields 0, the "absent" value.
func atof(s string) float64 {
	if s == "" {
		return 0
	}
	clean := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ',':
			clean = append(clean, '.')
		case ' ':
		default:
			clean = append(clean, s[i])
		}
	}
	v, err := strconv.ParseFloat(string(clean), 64)
	if err != nil {
		return 0
	}
	return v
}

// OfficialSource adapts the fundgz endpoint to the QuoteSource contract:
// every failure mode collapses to nil after a logged warning.
func OfficialSource() QuoteSource {
	return QuoteSourceFunc(func(ctx context.Context, code string) *Quote {
		q, err := fundgzEstimate(ctx, code)
		if err != nil {
			log.Printf("warning: official estimate for %s unavailable: %v", code, err)
			return nil
		}
		return q
	})
}
