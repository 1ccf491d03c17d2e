package billing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSplitEven(t *testing.T) {
	tests := []struct {
		name   string
		total  string
		n      int
		places int32
		want   []string
	}{
		{name: "halves", total: "1", n: 2, places: 3, want: []string{"0.5", "0.5"}},
		{name: "thirds carry residual", total: "1", n: 3, places: 3, want: []string{"0.333", "0.333", "0.334"}},
		{name: "sevenths round up first", total: "1", n: 7, places: 3, want: []string{"0.143", "0.143", "0.143", "0.143", "0.143", "0.143", "0.142"}},
		{name: "single share passes through", total: "7.25", n: 1, places: 3, want: []string{"7.25"}},
		{name: "zero shares", total: "1", n: 0, places: 3, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitEven(dec(t, tt.total), tt.n, tt.places)
			if len(got) != len(tt.want) {
				t.Fatalf("SplitEven() returned %d shares, want %d", len(got), len(tt.want))
			}
			for i, w := range tt.want {
				if got[i].String() != w {
					t.Errorf("share[%d] = %s, want %s", i, got[i], w)
				}
			}
		})
	}
}

func TestSplitEvenSumsExactly(t *testing.T) {
	tests := []struct {
		name   string
		total  string
		n      int
		places int32
	}{
		{name: "one into three at 3 digits", total: "1", n: 3, places: 3},
		{name: "two into three at division precision", total: "2", n: 3, places: int32(decimal.DivisionPrecision)},
		{name: "odd amount into seven", total: "12345.678", n: 7, places: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := dec(t, tt.total)
			sum := decimal.Zero
			for _, share := range SplitEven(total, tt.n, tt.places) {
				sum = sum.Add(share)
			}
			if !sum.Equal(total) {
				t.Errorf("sum(SplitEven()) = %s, want exactly %s", sum, total)
			}
		})
	}
}
