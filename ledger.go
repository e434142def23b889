package fundfolio

// This file owns the mutation rules for a holding's position: shares, average
// cost and realized gain. All functions are pure; the caller persists the
// returned holding. Input is assumed validated by Transaction.Validate.

// Apply appends a transaction to a holding and returns the updated holding.
// The input holding is never modified; its transaction slice is copied before
// the append, keeping snapshots held elsewhere intact.
func Apply(h Holding, t Transaction) Holding {
	switch t.Type {
	case TxBuy:
		h = applyBuy(h, t)
	case TxSell:
		h = applySell(h, t)
	default:
		// validated input cannot reach here; keep the holding untouched.
		return h
	}
	txs := make([]Transaction, len(h.Transactions), len(h.Transactions)+1)
	copy(txs, h.Transactions)
	h.Transactions = append(txs, t)
	return h
}

// applyBuy folds the transaction's full gross amount into the weighted
// average cost. The fee convention follows the observed product behavior:
// grossAmount already includes the fee, so the whole outlay becomes cost
// basis.
func applyBuy(h Holding, t Transaction) Holding {
	newShares := h.Shares.Add(t.Shares)
	if !newShares.IsPositive() {
		h.AverageCost = CNY(0)
		h.Shares = newShares
		return h
	}
	oldCost := h.AverageCost.Mul(h.Shares)
	h.AverageCost = oldCost.Add(t.GrossAmount).Div(newShares)
	h.Shares = newShares
	return h
}

// applySell clamps the sale to the shares actually held: selling more than
// the position is a no-op beyond available inventory, never an error and
// never a negative position. Realized gain moves by
// (unitPrice - averageCost) * sold - fee.
func applySell(h Holding, t Transaction) Holding {
	sold := t.Shares.Min(h.Shares)
	if !sold.IsPositive() {
		return h
	}
	delta := t.UnitPrice.Sub(h.AverageCost).Mul(sold).Sub(t.Fee)
	h.RealizedGain = h.RealizedGain.Add(delta)
	h.Shares = h.Shares.Sub(sold)
	if !h.Shares.IsPositive() {
		// flat position: the average cost is meaningless, reset it.
		h.Shares = Q(0)
		h.AverageCost = CNY(0)
	}
	return h
}
