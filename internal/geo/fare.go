package geo

import (
	"fmt"
	"math"
	"net/url"
)

// Ride-hailing fare model, KES. Base plus per-distance and per-time rates,
// floored at the minimum fare.
const (
	BaseFareKES = 220
	PerKmKES    = 35
	PerMinKES   = 5
	MinFareKES  = 250
)

// Fare estimates a one-way fare in KES for a trip of the given distance and
// duration.
func Fare(distanceKm, durationMins float64) int {
	raw := BaseFareKES + distanceKm*PerKmKES + durationMins*PerMinKES
	fare := int(math.Round(raw))
	if fare < MinFareKES {
		return MinFareKES
	}
	return fare
}

// FareRange widens the estimate by ±50 KES to present as a band, keeping
// the low end at or above the minimum fare.
func FareRange(distanceKm, durationMins float64) (low, high int) {
	fare := Fare(distanceKm, durationMins)
	low = fare - 50
	if low < MinFareKES {
		low = MinFareKES
	}
	return low, fare + 50
}

// UberLink deep-links a ride with pickup at the rider's current location and
// dropoff at the plot.
func UberLink(lat, lng float64, nickname string) string {
	return fmt.Sprintf(
		"https://m.uber.com/ul/?action=setPickup&dropoff[latitude]=%v&dropoff[longitude]=%v&dropoff[nickname]=%s",
		lat, lng, url.QueryEscape(nickname),
	)
}

// BoltLink deep-links a ride straight to the plot pin.
func BoltLink(lat, lng float64) string {
	return fmt.Sprintf("https://bolt.eu/ride/?lat=%v&lng=%v", lat, lng)
}
