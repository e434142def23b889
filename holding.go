package fundfolio

import (
	"encoding/json"
	"fmt"
	"time"
)

// newID builds an identifier from its parts and the creation instant, so the
// same fund code can exist in several groups without colliding.
func newID(parts ...string) string {
	id := ""
	for _, p := range parts {
		id += p + "-"
	}
	return fmt.Sprintf("%s%d", id, time.Now().UnixNano())
}

// Holding is a tracked position in one fund within one group, or a
// watchlist-only entry with zero shares.
//
// Field ownership is strict: descriptive fields are set at creation or edit
// and never touched by the engine; valuation fields are mutated only by
// Reconcile; position fields are mutated only by the ledger's Apply.
type Holding struct {
	ID          string   `json:"id"`
	Code        string   `json:"code"`        // fund code, e.g. "110011"
	DisplayName string   `json:"displayName"` // descriptive
	Manager     string   `json:"manager,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	GroupID     string   `json:"groupId"`
	// Watch marks a holding tracked for observation only. Shares stay at
	// zero and the holding is excluded from aggregate totals.
	Watch bool `json:"watch,omitempty"`

	// Valuation fields, owned by Reconcile.
	ReferenceValue  float64 `json:"referenceValue"` // last confirmed NAV
	ReferenceDate   Date    `json:"referenceDate"`
	EstimatedValue  float64 `json:"estimatedValue"`
	EstimatedChange float64 `json:"estimatedChangePercent"`
	SourceTag       string  `json:"sourceTag,omitempty"`

	// Position fields, owned by the ledger.
	Shares       Quantity      `json:"shares"`
	AverageCost  Money         `json:"averageCost"`
	RealizedGain Money         `json:"realizedGain"`
	Transactions []Transaction `json:"transactions"`
}

// NewHolding creates a holding in a group. If shares is positive the position
// is seeded with one implicit buy at the given average cost, dated today, so
// no holding ever carries shares without a transaction trail.
func NewHolding(code, name, groupID string, shares Quantity, avgCost Money) Holding {
	h := Holding{
		ID:          newID(code, groupID),
		Code:        code,
		DisplayName: name,
		GroupID:     groupID,
	}
	if shares.IsPositive() {
		seed := NewBuy(Today(), shares, avgCost, avgCost.Mul(shares), CNY(0))
		h = Apply(h, seed)
	}
	return h
}

// NewWatch creates a watchlist-only holding: zero shares, excluded from
// totals.
func NewWatch(code, name, groupID string) Holding {
	h := NewHolding(code, name, groupID, Q(0), CNY(0))
	h.Watch = true
	return h
}

// MarketValue returns the holding's current estimated market value.
func (h Holding) MarketValue() float64 { return h.EstimatedValue * h.Shares.AsFloat() }

// ProfitToday returns today's unrealized profit, derived and never stored:
// the spread between the live estimate and the last confirmed NAV, over the
// held shares.
func (h Holding) ProfitToday() float64 {
	return (h.EstimatedValue - h.ReferenceValue) * h.Shares.AsFloat()
}

// CostBasis returns the cash currently invested in the position.
func (h Holding) CostBasis() Money { return h.AverageCost.Mul(h.Shares) }

// Counted reports whether the holding participates in aggregate totals.
func (h Holding) Counted() bool { return !h.Watch && h.Shares.IsPositive() }

// PrimaryTag returns the first tag, or "other" when untagged.
func (h Holding) PrimaryTag() string {
	if len(h.Tags) > 0 && h.Tags[0] != "" {
		return h.Tags[0]
	}
	return "other"
}

// MarshalJSON implements the json.Marshaler interface for Holding with a
// stable field order, so persisted files diff cleanly.
func (h Holding) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", h.ID)
	w.Append("code", h.Code)
	w.Append("displayName", h.DisplayName)
	w.Optional("manager", h.Manager)
	w.Optional("tags", h.Tags)
	w.Append("groupId", h.GroupID)
	w.Optional("watch", h.Watch)
	w.Append("referenceValue", h.ReferenceValue)
	w.Append("referenceDate", h.ReferenceDate)
	w.Append("estimatedValue", h.EstimatedValue)
	w.Append("estimatedChangePercent", h.EstimatedChange)
	w.Optional("sourceTag", h.SourceTag)
	w.Append("shares", h.Shares)
	w.Append("averageCost", h.AverageCost)
	w.Append("realizedGain", h.RealizedGain)
	w.Append("transactions", h.Transactions)
	return w.MarshalJSON()
}

// jholding mirrors Holding for decoding without recursing into MarshalJSON.
type jholding struct {
	ID              string        `json:"id"`
	Code            string        `json:"code"`
	DisplayName     string        `json:"displayName"`
	Manager         string        `json:"manager"`
	Tags            []string      `json:"tags"`
	GroupID         string        `json:"groupId"`
	Watch           bool          `json:"watch"`
	ReferenceValue  float64       `json:"referenceValue"`
	ReferenceDate   Date          `json:"referenceDate"`
	EstimatedValue  float64       `json:"estimatedValue"`
	EstimatedChange float64       `json:"estimatedChangePercent"`
	SourceTag       string        `json:"sourceTag"`
	Shares          Quantity      `json:"shares"`
	AverageCost     Money         `json:"averageCost"`
	RealizedGain    Money         `json:"realizedGain"`
	Transactions    []Transaction `json:"transactions"`
}

// UnmarshalJSON implements the json.Unmarshaler interface for Holding.
func (h *Holding) UnmarshalJSON(data []byte) error {
	var j jholding
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	*h = Holding(j)
	return nil
}

// Group is a named account bucket for holdings. Exactly one group is the
// default; it is the one that cannot be deleted.
type Group struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsDefault bool   `json:"isDefault,omitempty"`
}

// NewGroup creates a group with a fresh identifier.
func NewGroup(name string) Group {
	return Group{ID: newID("grp"), Name: name}
}
