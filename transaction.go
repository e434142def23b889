package fundfolio

import (
	"encoding/json"
	"fmt"
)

// TxType is a typed string identifying the kind of a ledger transaction.
type TxType string

const (
	// TxBuy records shares bought for a gross cash outlay.
	TxBuy TxType = "buy"
	// TxSell records shares sold at a unit price, net of a fee.
	TxSell TxType = "sell"
)

// Transaction is one immutable ledger entry for a holding. Transactions are
// never edited or removed; corrections are modeled as new offsetting entries.
type Transaction struct {
	ID     string   `json:"id"`
	Type   TxType   `json:"type"`
	Date   Date     `json:"date"`
	Shares Quantity `json:"shares"`
	// UnitPrice is the execution price per share.
	UnitPrice Money `json:"unitPrice"`
	// GrossAmount is the full cash moved by the transaction. For a buy it is
	// the total outlay including fee, and it is folded entirely into the cost
	// basis.
	GrossAmount Money `json:"grossAmount"`
	Fee         Money `json:"fee"`
}

// NewBuy creates a buy transaction. The gross amount is the full cash outlay.
func NewBuy(day Date, shares Quantity, unitPrice, grossAmount, fee Money) Transaction {
	return Transaction{
		ID:          newID("tx", day.String()),
		Type:        TxBuy,
		Date:        day,
		Shares:      shares,
		UnitPrice:   unitPrice,
		GrossAmount: grossAmount,
		Fee:         fee,
	}
}

// NewSell creates a sell transaction at the given execution price.
func NewSell(day Date, shares Quantity, unitPrice, fee Money) Transaction {
	return Transaction{
		ID:        newID("tx", day.String()),
		Type:      TxSell,
		Date:      day,
		Shares:    shares,
		UnitPrice: unitPrice,
		// proceeds before fee
		GrossAmount: unitPrice.Mul(shares),
		Fee:         fee,
	}
}

// Validate checks a transaction for correctness before it may reach the
// ledger. The ledger itself assumes validated input.
func (t Transaction) Validate() error {
	if t.Type != TxBuy && t.Type != TxSell {
		return fmt.Errorf("unknown transaction type %q", t.Type)
	}
	if !t.Shares.IsPositive() {
		return fmt.Errorf("%s transaction shares must be positive, got %s", t.Type, t.Shares)
	}
	if t.UnitPrice.IsNegative() {
		return fmt.Errorf("%s transaction unit price must not be negative, got %s", t.Type, t.UnitPrice)
	}
	if t.Fee.IsNegative() {
		return fmt.Errorf("%s transaction fee must not be negative, got %s", t.Type, t.Fee)
	}
	if t.Type == TxBuy && !t.GrossAmount.IsPositive() {
		return fmt.Errorf("buy transaction amount must be positive, got %s", t.GrossAmount)
	}
	return nil
}

// Equal reports whether two transactions carry the same values.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID && t.Type == o.Type && t.Date == o.Date &&
		t.Shares.Equal(o.Shares) && t.UnitPrice.Equal(o.UnitPrice) &&
		t.GrossAmount.Equal(o.GrossAmount) && t.Fee.Equal(o.Fee)
}

// MarshalJSON implements the json.Marshaler interface for Transaction with a
// stable field order.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("type", t.Type)
	w.Append("date", t.Date)
	w.Append("shares", t.Shares)
	w.Append("unitPrice", t.UnitPrice)
	w.Append("grossAmount", t.GrossAmount)
	w.Append("fee", t.Fee)
	return w.MarshalJSON()
}

// jtx mirrors Transaction for decoding; Money fields default to the portfolio
// currency on read.
type jtx struct {
	ID          string   `json:"id"`
	Type        TxType   `json:"type"`
	Date        Date     `json:"date"`
	Shares      Quantity `json:"shares"`
	UnitPrice   Money    `json:"unitPrice"`
	GrossAmount Money    `json:"grossAmount"`
	Fee         Money    `json:"fee"`
}

// UnmarshalJSON implements the json.Unmarshaler interface for Transaction.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var j jtx
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	*t = Transaction(j)
	return nil
}
