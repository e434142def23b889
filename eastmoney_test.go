package fundfolio

import "testing"

func TestSecid(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{code: "600519", want: "1.600519"}, // SH main board
		{code: "510300", want: "1.510300"}, // SH ETF
		{code: "588000", want: "1.588000"}, // STAR ETF
		{code: "110011", want: "1.110011"}, // SH convertible range
		{code: "000001", want: "0.000001"}, // SZ main board
		{code: "159915", want: "0.159915"}, // SZ ETF
		{code: "300750", want: "0.300750"}, // ChiNext
	}
	for _, tt := range tests {
		if got := secid(tt.code); got != tt.want {
			t.Errorf("secid(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
