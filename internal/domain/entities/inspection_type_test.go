package entities

import "testing"

func TestInspectionTypeWithinVariance(t *testing.T) {
	it := InspectionType{BasePriceCents: 10000, MaxVarianceCents: 1500}

	cases := []struct {
		price int64
		want  bool
	}{
		{10000, true},
		{11500, true},
		{8500, true},
		{11501, false},
		{8499, false},
	}
	for _, tc := range cases {
		if got := it.WithinVariance(tc.price); got != tc.want {
			t.Fatalf("WithinVariance(%d) = %v want %v", tc.price, got, tc.want)
		}
	}

	zero := InspectionType{BasePriceCents: 10000}
	if zero.WithinVariance(10001) || zero.WithinVariance(9999) {
		t.Fatalf("zero variance must pin the price to base")
	}
	if !zero.WithinVariance(10000) {
		t.Fatalf("base price must always be allowed")
	}
}

func TestPricingKey(t *testing.T) {
	if got := PricingKey("ten-1", "it-1"); got != "ten-1#it-1" {
		t.Fatalf("unexpected key: %s", got)
	}
}
