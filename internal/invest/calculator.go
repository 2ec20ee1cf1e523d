// Package invest holds the marketing-page financial projections: compound
// growth with monthly contributions, the fixed-rate lending pool, and a
// reference currency converter. All figures are KES unless stated.
package invest

import "math"

// PoolAPR is the lending pool's fixed annualized return.
const PoolAPR = 0.30

// Reference exchange rates, KES per one unit. Planning figures, not live.
var Rates = map[string]float64{
	"USD": 156,
	"GBP": 198,
	"EUR": 171,
}

// FutureValue compounds an initial amount monthly at the given annual
// return while adding a fixed monthly contribution.
func FutureValue(initial, monthly, annualReturnPct, years float64) float64 {
	r := annualReturnPct / 100 / 12
	n := int(math.Round(years * 12))
	if n < 0 {
		n = 0
	}
	fv := initial
	for i := 0; i < n; i++ {
		fv = fv*(1+r) + monthly
	}
	return fv
}

// Projection returns the year-by-year future values from year 0 (the
// initial amount) through the given horizon, for charting.
func Projection(initial, monthly, annualReturnPct float64, years int) []float64 {
	if years < 0 {
		years = 0
	}
	points := make([]float64, years+1)
	for y := 0; y <= years; y++ {
		points[y] = FutureValue(initial, monthly, annualReturnPct, float64(y))
	}
	return points
}

// PoolReturn is the simple 12-month projection for the fixed-APR lending
// pool: the interest earned and the total at term.
func PoolReturn(amount float64) (gain, total float64) {
	gain = amount * PoolAPR
	return gain, amount + gain
}

// ConvertKES converts a KES amount into every reference currency.
func ConvertKES(amountKES float64) map[string]float64 {
	out := make(map[string]float64, len(Rates))
	for code, rate := range Rates {
		out[code] = amountKES / rate
	}
	return out
}

// Clamp bounds n to [min, max]; slider inputs arrive unchecked.
func Clamp(n, min, max float64) float64 {
	return math.Max(min, math.Min(max, n))
}
