package fundfolio

import (
	"testing"
	"time"
)

func TestPhaseAt(t *testing.T) {
	// 2024-06-17 is a Monday.
	at := func(h, m int) time.Time { return time.Date(2024, 6, 17, h, m, 0, 0, cst) }

	tests := []struct {
		name string
		t    time.Time
		want MarketPhase
	}{
		{name: "early morning", t: at(8, 0), want: PhasePreMarket},
		{name: "just before auction close", t: at(9, 24), want: PhasePreMarket},
		{name: "auction matched", t: at(9, 25), want: PhaseMarket},
		{name: "mid morning", t: at(10, 30), want: PhaseMarket},
		{name: "lunch start", t: at(11, 30), want: PhaseLunchBreak},
		{name: "lunch end", t: at(12, 59), want: PhaseLunchBreak},
		{name: "afternoon open", t: at(13, 0), want: PhaseMarket},
		{name: "close", t: at(15, 0), want: PhaseMarket},
		{name: "after close", t: at(15, 1), want: PhasePostMarket},
		{name: "saturday", t: time.Date(2024, 6, 15, 10, 30, 0, 0, cst), want: PhaseClosed},
		{name: "sunday", t: time.Date(2024, 6, 16, 10, 30, 0, 0, cst), want: PhaseClosed},
		// The wall clock of the caller does not matter; only Beijing time does.
		{name: "utc instant during session", t: time.Date(2024, 6, 17, 2, 0, 0, 0, time.UTC), want: PhaseMarket},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PhaseAt(tt.t); got != tt.want {
				t.Errorf("PhaseAt(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestPhaseLive(t *testing.T) {
	tests := []struct {
		phase MarketPhase
		want  bool
	}{
		{phase: PhaseMarket, want: true},
		{phase: PhaseLunchBreak, want: true},
		{phase: PhasePreMarket, want: false},
		{phase: PhasePostMarket, want: false},
		{phase: PhaseClosed, want: false},
	}
	for _, tt := range tests {
		if got := tt.phase.Live(); got != tt.want {
			t.Errorf("%s.Live() = %v, want %v", tt.phase, got, tt.want)
		}
	}
}
