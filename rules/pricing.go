package rules

import "math"

// BookingTotal computes price-per-guest x guests, rounded to the nearest
// whole currency unit. Frozen into the booking at creation time; later
// hosting price changes do not touch it.
func BookingTotal(pricePerGuest float64, guests int) float64 {
	return math.Round(pricePerGuest * float64(guests))
}

// OrderTotal computes dish price x quantity, unrounded. The rounding
// asymmetry with BookingTotal is established API behavior and is kept.
func OrderTotal(price float64, quantity int) float64 {
	return price * float64(quantity)
}
