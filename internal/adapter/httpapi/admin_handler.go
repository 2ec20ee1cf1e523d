package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) AdminListPlots(c *gin.Context) {
	plots, err := h.admin.ListPlots(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	out := make([]plotResponse, 0, len(plots))
	for _, p := range plots {
		out = append(out, toPlotResponse(p))
	}
	c.JSON(http.StatusOK, gin.H{"plots": out, "count": len(out)})
}

func (h *Handler) AdminSetVerified(c *gin.Context) {
	var req struct {
		Verified *bool `json:"verified" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "verified is required"})
		return
	}

	id := c.Param("id")
	if err := h.admin.SetVerified(c.Request.Context(), id, *req.Verified); err != nil {
		h.respondError(c, err)
		return
	}
	h.plots.Invalidate(c.Request.Context(), id)
	c.JSON(http.StatusOK, gin.H{"id": id, "is_verified": *req.Verified})
}

// AdminSetPrice accepts the raw edit-box value; digits are extracted with
// the same rules the seller form uses, so "KSh 1,200,000" and "1200000"
// persist identically.
func (h *Handler) AdminSetPrice(c *gin.Context) {
	var req struct {
		Price string `json:"price" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price is required"})
		return
	}

	id := c.Param("id")
	price, err := h.admin.ParseAndSetPrice(c.Request.Context(), id, req.Price)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.plots.Invalidate(c.Request.Context(), id)
	c.JSON(http.StatusOK, gin.H{"id": id, "price": price})
}

func (h *Handler) AdminDeletePlot(c *gin.Context) {
	id := c.Param("id")
	if err := h.admin.DeletePlot(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	h.plots.Invalidate(c.Request.Context(), id)
	c.JSON(http.StatusOK, gin.H{"id": id, "status": "deleted"})
}
