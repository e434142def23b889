// Package fundfolio provides the core types and functions for tracking a
// personal portfolio of open-end funds. It is designed to be local-first and
// resilient to flaky market-data upstreams, so that the displayed state of a
// portfolio degrades to "stale" but never to "wrong".
//
// The core functionalities include:
//   - Position Ledger: pure functions applying immutable buy/sell
//     transactions to a holding, maintaining shares, average cost and
//     cumulative realized gain.
//   - Quote Sources: adapters fetching live valuation estimates for one fund
//     code from heterogeneous upstream endpoints, normalizing partial or
//     garbage payloads into an optional-field Quote.
//   - Valuation Reconciliation: merging a possibly-partial fresh quote into a
//     holding's previously known valuation using a fixed fallback precedence,
//     so a single bad field can never null out good display data.
//   - Batch Refresh: concurrent fan-out of quote fetches over all holdings
//     with per-holding failure isolation.
//   - Aggregation: stateless roll-ups of holdings into per-group and
//     portfolio-wide market value, daily profit and cumulative return.
//   - Data Persistence: encoding the holdings and groups collections to a
//     simple two-document JSON store, plus a single-file backup format.
//
// This package serves as the foundational logic for the `ff` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package fundfolio
