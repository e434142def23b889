package fundfolio

import (
	"math"
	"testing"
)

func TestReconcile(t *testing.T) {
	navDay := MustParseDate("2024-06-14")
	prior := Holding{
		ID:              "h1",
		Code:            "110011",
		DisplayName:     "old name",
		ReferenceValue:  1.40,
		ReferenceDate:   MustParseDate("2024-06-13"),
		EstimatedValue:  1.42,
		EstimatedChange: 1.43,
		SourceTag:       "official",
	}

	tests := []struct {
		name       string
		prior      Holding
		quote      *Quote
		wantRef    float64
		wantEst    float64
		wantChange float64
		wantName   string
		wantTag    string
	}{
		{
			name:  "nil quote keeps everything",
			prior: prior, quote: nil,
			wantRef: 1.40, wantEst: 1.42, wantChange: 1.43,
			wantName: "old name", wantTag: "official",
		},
		{
			name:  "full quote adopts everything",
			prior: prior,
			quote: &Quote{
				ReferenceValue: 1.4855, ReferenceDate: navDay,
				EstimatedValue: 1.5012, EstimatedChange: 1.06,
				DisplayName: "易方达优质精选", SourceTag: "official",
			},
			wantRef: 1.4855, wantEst: 1.5012, wantChange: 1.06,
			wantName: "易方达优质精选", wantTag: "official",
		},
		{
			name:  "reference only pins estimate to reference",
			prior: prior,
			quote: &Quote{ReferenceValue: 1.50, ReferenceDate: navDay, SourceTag: "official"},
			wantRef: 1.50, wantEst: 1.50, wantChange: 0,
			wantName: "old name", wantTag: "official",
		},
		{
			name:  "estimate only keeps prior reference",
			prior: prior,
			quote: &Quote{EstimatedValue: 1.51, EstimatedChange: 0.8, SourceTag: "proxy:510300"},
			wantRef: 1.40, wantEst: 1.51, wantChange: 0.8,
			wantName: "old name", wantTag: "proxy:510300",
		},
		{
			name:  "estimate borrowed as reference when none known",
			prior: Holding{ID: "h2", Code: "161725"},
			quote: &Quote{EstimatedValue: 1.20, EstimatedChange: 0.5, SourceTag: "official"},
			wantRef: 1.20, wantEst: 1.20, wantChange: 0.5,
			wantTag: "official",
		},
		{
			name:  "empty quote on empty prior pins the sentinel",
			prior: Holding{ID: "h2", Code: "161725"},
			quote: &Quote{},
			wantRef: 1.0, wantEst: 1.0, wantChange: 0,
		},
		{
			name:  "garbage values count as absent",
			prior: prior,
			quote: &Quote{ReferenceValue: -3, EstimatedValue: math.NaN(), EstimatedChange: 9},
			wantRef: 1.40, wantEst: 1.40, wantChange: 0,
			wantName: "old name", wantTag: "official",
		},
		{
			name:  "tag does not travel without an accepted value",
			prior: prior,
			quote: &Quote{SourceTag: "holdings"},
			wantRef: 1.40, wantEst: 1.40, wantChange: 0,
			wantName: "old name", wantTag: "official",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reconcile(tt.prior, tt.quote)
			if got.ReferenceValue != tt.wantRef {
				t.Errorf("reference = %v, want %v", got.ReferenceValue, tt.wantRef)
			}
			if got.EstimatedValue != tt.wantEst {
				t.Errorf("estimate = %v, want %v", got.EstimatedValue, tt.wantEst)
			}
			if got.EstimatedChange != tt.wantChange {
				t.Errorf("change = %v, want %v", got.EstimatedChange, tt.wantChange)
			}
			if got.DisplayName != tt.wantName {
				t.Errorf("name = %q, want %q", got.DisplayName, tt.wantName)
			}
			if got.SourceTag != tt.wantTag {
				t.Errorf("tag = %q, want %q", got.SourceTag, tt.wantTag)
			}
		})
	}
}

func TestReconcileUpdatesReferenceDate(t *testing.T) {
	prior := Holding{ReferenceValue: 1.40, ReferenceDate: MustParseDate("2024-06-13")}
	navDay := MustParseDate("2024-06-14")

	got := Reconcile(prior, &Quote{ReferenceValue: 1.41, ReferenceDate: navDay})
	if got.ReferenceDate != navDay {
		t.Errorf("reference date = %v, want %v", got.ReferenceDate, navDay)
	}

	// A usable reference without a date keeps the prior date.
	got = Reconcile(prior, &Quote{ReferenceValue: 1.41})
	if got.ReferenceDate != prior.ReferenceDate {
		t.Errorf("reference date = %v, want %v", got.ReferenceDate, prior.ReferenceDate)
	}
}
