package api

import "testing"

func TestBaseUnitsToToken(t *testing.T) {
	tests := []struct {
		input    string
		decimals int32
		want     float64
	}{
		{"1000000000000000000", 18, 1.0},
		{"500000000000000000", 18, 0.5},
		{"1200000000000000000", 18, 1.2},
		{"0", 18, 0},
		{"1", 18, 1e-18},
		// 100 tokens in base units exceeds int64.
		{"100000000000000000000", 18, 100},
		{"5", 0, 5},
		{"250", 2, 2.5},
		{"", 18, 0},
		{"invalid", 18, 0},
		{"-1000000000000000000", 18, 0},
		{"  1000000000000000000  ", 18, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := BaseUnitsToToken(tt.input, tt.decimals)
			if got != tt.want {
				t.Errorf("BaseUnitsToToken(%q, %d) = %v, want %v", tt.input, tt.decimals, got, tt.want)
			}
		})
	}
}

func TestBaseUnitsToTokenOK(t *testing.T) {
	tests := []struct {
		input  string
		wantOK bool
	}{
		{"1000000000000000000", true},
		{"0", true},
		{"", false},
		{"invalid", false},
		{"-5", false},
	}

	for _, tt := range tests {
		_, ok := baseUnitsToToken(tt.input, 18)
		if ok != tt.wantOK {
			t.Errorf("baseUnitsToToken(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
		}
	}
}
