package fundfolio

import (
	"context"
	"log"
	"sync"
)

// This file contains the batch refresh coordinator: the only concurrent part
// of the engine. The fan-out is pure read concurrency against external
// sources; each result lands in its own slot of a pre-sized slice and the
// reduction happens after every fetch has settled, on the caller's flow.

// RefreshAll fetches a fresh quote for every holding concurrently and
// reconciles each one independently.
//
// The output has the same length and holding order as the input. A slow or
// failing source never blocks or drops other holdings' updates: each holding
// either reflects its own quote or keeps its prior state unchanged. An empty
// input returns an empty (non-nil) slice without any network activity.
//
// RefreshAll is not re-entrant-safe with respect to itself; callers issue one
// refresh cycle at a time (the store enforces this).
func RefreshAll(ctx context.Context, holdings []Holding, source QuoteSource) []Holding {
	refreshed := make([]Holding, len(holdings))
	if len(holdings) == 0 {
		return refreshed
	}

	quotes := make([]*Quote, len(holdings))
	var wg sync.WaitGroup
	for i, h := range holdings {
		wg.Add(1)
		go func(i int, code string) {
			defer wg.Done()
			// The source contract is never-throw, but one rogue source must
			// not take the whole batch down.
			defer func() {
				if r := recover(); r != nil {
					log.Printf("warning: quote source panicked for %s (recovered): %v", code, r)
					quotes[i] = nil
				}
			}()
			quotes[i] = source.FetchQuote(ctx, code)
		}(i, h.Code)
	}
	wg.Wait()

	for i, h := range holdings {
		refreshed[i] = Reconcile(h, quotes[i])
	}
	return refreshed
}

// RefreshOne refreshes a single holding, awaited. Used right after a holding
// is inserted so its valuation is live before the caller returns.
func RefreshOne(ctx context.Context, h Holding, source QuoteSource) Holding {
	out := RefreshAll(ctx, []Holding{h}, source)
	return out[0]
}
