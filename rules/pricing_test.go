package rules

import "testing"

func TestBookingTotalRoundsToWholeUnit(t *testing.T) {
	cases := []struct {
		pricePerGuest float64
		guests        int
		want          float64
	}{
		{20, 3, 60},
		{19.99, 2, 40},
		{12.25, 3, 37},
		{0.4, 1, 0},
	}
	for _, tc := range cases {
		if got := BookingTotal(tc.pricePerGuest, tc.guests); got != tc.want {
			t.Errorf("BookingTotal(%v, %d) = %v, want %v", tc.pricePerGuest, tc.guests, got, tc.want)
		}
	}
}

func TestOrderTotalIsUnrounded(t *testing.T) {
	if got := OrderTotal(15.5, 2); got != 31.0 {
		t.Errorf("OrderTotal(15.5, 2) = %v, want 31.0", got)
	}
	if got := OrderTotal(19.99, 3); got != 59.97 {
		t.Errorf("OrderTotal(19.99, 3) = %v, want 59.97", got)
	}
}
