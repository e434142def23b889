package fundfolio

// Reconcile merges a possibly-partial fresh quote into a holding's previously
// known valuation fields and returns the updated holding. It is the single
// place that interprets field absence.
//
// The precedence is fixed:
//
//  1. A nil quote keeps every prior field (total fallback).
//  2. Reference value: the quote's if usable; else, when no prior reference
//     exists, the quote's estimate, else 1.0 as a sentinel so the display
//     never shows a zero valuation; else the prior reference.
//  3. Estimated value: the quote's if usable; else the (possibly just
//     updated) reference value; else the prior estimate; else 1.0.
//  4. Change percent: the quote's only when step 3 accepted the live
//     estimate; otherwise 0, because a stale percent against a fallback
//     value would be a lie.
//  5. Display name: the quote's when non-empty.
//  6. Reference date and source tag travel with the value that was accepted.
//
// Given a prior with positive valuation fields, the result's reference and
// estimated values are always positive: a single bad upstream field can never
// null out previously-good display data.
func Reconcile(prior Holding, q *Quote) Holding {
	if q == nil {
		return prior
	}
	h := prior

	switch {
	case q.HasReference():
		h.ReferenceValue = q.ReferenceValue
		if !q.ReferenceDate.IsZero() {
			h.ReferenceDate = q.ReferenceDate
		}
	case !usable(prior.ReferenceValue):
		// No reference known at all; borrow the estimate, or pin to the
		// sentinel rather than display a total loss.
		if q.HasEstimate() {
			h.ReferenceValue = q.EstimatedValue
			if !q.ReferenceDate.IsZero() {
				h.ReferenceDate = q.ReferenceDate
			}
		} else {
			h.ReferenceValue = 1.0
		}
	}

	if q.HasEstimate() {
		h.EstimatedValue = q.EstimatedValue
		h.EstimatedChange = q.EstimatedChange
	} else {
		if usable(h.ReferenceValue) {
			h.EstimatedValue = h.ReferenceValue
		} else if !usable(prior.EstimatedValue) {
			h.EstimatedValue = 1.0
		}
		h.EstimatedChange = 0
	}

	if q.DisplayName != "" {
		h.DisplayName = q.DisplayName
	}
	if q.SourceTag != "" && (q.HasEstimate() || q.HasReference()) {
		h.SourceTag = q.SourceTag
	}
	return h
}
