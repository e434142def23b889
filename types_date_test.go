package fundfolio

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2024-06-17", want: NewDate(2024, time.June, 17)},
		{in: "2024-6-7", want: NewDate(2024, time.June, 7)},
		{in: "", wantErr: true},
		{in: "17/06/2024", wantErr: true},
		{in: "2024-13-01", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDateAddNormalizes(t *testing.T) {
	d := NewDate(2024, time.December, 31).Add(1)
	if got, want := d.String(), "2025-01-01"; got != want {
		t.Errorf("Add(1) = %s, want %s", got, want)
	}
}

func TestDateOrdering(t *testing.T) {
	a := MustParseDate("2024-06-17")
	b := MustParseDate("2024-06-18")
	if !a.Before(b) || a.After(b) || b.Before(a) {
		t.Errorf("ordering broken for %v and %v", a, b)
	}
}

func TestDateJSON(t *testing.T) {
	tests := []struct {
		d    Date
		want string
	}{
		{d: MustParseDate("2024-06-17"), want: `"2024-06-17"`},
		{d: Date{}, want: `""`},
	}
	for _, tt := range tests {
		data, err := json.Marshal(tt.d)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != tt.want {
			t.Errorf("Marshal(%v) = %s, want %s", tt.d, data, tt.want)
		}
		var back Date
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatal(err)
		}
		if back != tt.d {
			t.Errorf("round trip of %v gave %v", tt.d, back)
		}
	}
}
