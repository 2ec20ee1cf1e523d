package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/muthomi-ke/land-platform/internal/invest"
)

func queryFloat(c *gin.Context, key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(c.Query(key), 64)
	if err != nil {
		return fallback
	}
	return v
}

// InvestProjection charts compound growth for the calculator page. Slider
// inputs are clamped to the page's ranges rather than rejected.
func (h *Handler) InvestProjection(c *gin.Context) {
	initial := invest.Clamp(queryFloat(c, "initial", 100000), 0, 100_000_000)
	monthly := invest.Clamp(queryFloat(c, "monthly", 10000), 0, 10_000_000)
	annual := invest.Clamp(queryFloat(c, "annual_return", 12), 0, 100)
	years := int(invest.Clamp(queryFloat(c, "years", 10), 0, 50))

	c.JSON(http.StatusOK, gin.H{
		"initial":       initial,
		"monthly":       monthly,
		"annual_return": annual,
		"years":         years,
		"future_value":  invest.FutureValue(initial, monthly, annual, float64(years)),
		"projection":    invest.Projection(initial, monthly, annual, years),
	})
}

func (h *Handler) InvestPool(c *gin.Context) {
	amount := invest.Clamp(queryFloat(c, "amount", 50000), 0, 100_000_000)
	gain, total := invest.PoolReturn(amount)

	c.JSON(http.StatusOK, gin.H{
		"amount":   amount,
		"apr":      invest.PoolAPR,
		"gain":     gain,
		"total":    total,
		"term":     "12 months",
		"currency": "KES",
	})
}

func (h *Handler) InvestConvert(c *gin.Context) {
	amount := queryFloat(c, "amount_kes", 0)
	if amount < 0 {
		amount = 0
	}
	c.JSON(http.StatusOK, gin.H{
		"amount_kes": amount,
		"rates":      invest.Rates,
		"converted":  invest.ConvertKES(amount),
	})
}
