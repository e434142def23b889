package fundfolio

import "testing"

func TestParseFundgz(t *testing.T) {
	body := []byte(`jsonpgz({"fundcode":"110011","name":"易方达优质精选","jzrq":"2024-06-14","dwjz":"1.4855","gsz":"1.5012","gszzl":"1.06","gztime":"2024-06-17 14:59"});`)

	q, err := parseFundgz("110011", body)
	if err != nil {
		t.Fatal(err)
	}
	if q.ReferenceValue != 1.4855 {
		t.Errorf("reference = %v, want 1.4855", q.ReferenceValue)
	}
	if q.ReferenceDate != MustParseDate("2024-06-14") {
		t.Errorf("reference date = %v", q.ReferenceDate)
	}
	if q.EstimatedValue != 1.5012 || q.EstimatedChange != 1.06 {
		t.Errorf("estimate = %v / %v", q.EstimatedValue, q.EstimatedChange)
	}
	if q.DisplayName != "易方达优质精选" {
		t.Errorf("name = %q", q.DisplayName)
	}
	if q.SourceTag != "official" {
		t.Errorf("tag = %q", q.SourceTag)
	}
}

func TestParseFundgzPartialPayload(t *testing.T) {
	// QDII funds outside their session often carry only the settled NAV.
	body := []byte(`jsonpgz({"fundcode":"270042","name":"广发纳指联接","jzrq":"2024-06-14","dwjz":"4.1021","gsz":"","gszzl":""});`)

	q, err := parseFundgz("270042", body)
	if err != nil {
		t.Fatal(err)
	}
	if !q.HasReference() {
		t.Error("reference should be usable")
	}
	if q.HasEstimate() {
		t.Error("empty estimate should not be usable")
	}
}

func TestParseFundgzRejectsGarbage(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ""},
		{name: "html error page", body: "<html>502 Bad Gateway</html>"},
		{name: "broken json", body: `jsonpgz({"fundcode":);`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseFundgz("110011", []byte(tt.body)); err == nil {
				t.Error("garbage payload accepted")
			}
		})
	}
}

func TestAtof(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{in: "1.4855", want: 1.4855},
		{in: "1,4855", want: 1.4855}, // comma decimal separator
		{in: " 2.5 ", want: 2.5},
		{in: "-0.52", want: -0.52},
		{in: "", want: 0},
		{in: "--", want: 0},
		{in: "n/a", want: 0},
	}
	for _, tt := range tests {
		if got := atof(tt.in); got != tt.want {
			t.Errorf("atof(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
