package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/muthomi-ke/land-platform/internal/geo"
	"github.com/muthomi-ke/land-platform/internal/plot/domain"
	"github.com/muthomi-ke/land-platform/internal/plot/usecase"
)

type plotResponse struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Location          string   `json:"location"`
	Latitude          *float64 `json:"lat,omitempty"`
	Longitude         *float64 `json:"lng,omitempty"`
	Size              string   `json:"size"`
	Price             int64    `json:"price"`
	Category          string   `json:"category,omitempty"`
	Tag               string   `json:"tag,omitempty"`
	Description       string   `json:"description,omitempty"`
	NeighborhoodScore int      `json:"neighborhood_score,omitempty"`
	ImageURL          string   `json:"image_url,omitempty"`
	MediaURLs         []string `json:"media_urls,omitempty"`
	AerialViewURL     string   `json:"aerial_view_url,omitempty"`
	SellerID          string   `json:"seller_id,omitempty"`
	SellerPhone       string   `json:"seller_phone,omitempty"`
	Verified          bool     `json:"is_verified"`
}

func toPlotResponse(p *domain.Plot) plotResponse {
	return plotResponse{
		ID:                p.ID,
		Name:              p.Name,
		Location:          p.Location,
		Latitude:          p.Latitude,
		Longitude:         p.Longitude,
		Size:              p.Size,
		Price:             p.Price,
		Category:          string(p.Category),
		Tag:               p.Tag,
		Description:       p.Description,
		NeighborhoodScore: p.NeighborhoodScore,
		ImageURL:          p.HeroURL(),
		MediaURLs:         p.MediaURLs,
		AerialViewURL:     p.AerialViewURL,
		SellerID:          p.SellerID,
		SellerPhone:       p.OwnerPhone,
		Verified:          p.Verified,
	}
}

// SearchPlots runs a filtered read. Malformed bounds are ignored by the
// query builder, so no input validation happens here.
func (h *Handler) SearchPlots(c *gin.Context) {
	filters := domain.FilterSet{
		Location: c.Query("location"),
		MinPrice: c.Query("min_price"),
		MaxPrice: c.Query("max_price"),
		Category: domain.Category(c.DefaultQuery("category", string(domain.CategoryAll))),
	}

	plots, err := h.search.Search(c.Request.Context(), filters)
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

func (h *Handler) GetPlot(c *gin.Context) {
	plot, err := h.plots.GetPlot(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := gin.H{
		"plot":    toPlotResponse(plot),
		"gallery": usecase.Gallery(plot),
	}
	if link, ok := usecase.WhatsAppLink(plot); ok {
		resp["whatsapp_url"] = link
	}
	if plot.Latitude != nil && plot.Longitude != nil {
		resp["uber_url"] = geo.UberLink(*plot.Latitude, *plot.Longitude, plot.Name)
		resp["bolt_url"] = geo.BoltLink(*plot.Latitude, *plot.Longitude)
	}
	c.JSON(http.StatusOK, resp)
}

// FareEstimate prices a ride from the caller's location to the plot.
func (h *Handler) FareEstimate(c *gin.Context) {
	plot, err := h.plots.GetPlot(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if plot.Latitude == nil || plot.Longitude == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "No coordinates saved for this plot yet."})
		return
	}

	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng query parameters are required"})
		return
	}

	dist, err := h.distance.Driving(c.Request.Context(), lat, lng, *plot.Latitude, *plot.Longitude)
	if err != nil {
		if errors.Is(err, geo.ErrNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Distance estimates are not configured yet."})
			return
		}
		if errors.Is(err, geo.ErrNoRoute) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Distance estimate unavailable for this location."})
			return
		}
		h.respondError(c, err)
		return
	}

	low, high := geo.FareRange(dist.Km, dist.Mins)
	c.JSON(http.StatusOK, gin.H{
		"distance_km":   dist.Km,
		"duration_mins": dist.Mins,
		"fare_kes":      geo.Fare(dist.Km, dist.Mins),
		"fare_low_kes":  low,
		"fare_high_kes": high,
		"uber_url":      geo.UberLink(*plot.Latitude, *plot.Longitude, plot.Name),
		"bolt_url":      geo.BoltLink(*plot.Latitude, *plot.Longitude),
	})
}

// RecordLead logs buyer interest and returns immediately. The contact
// action must never wait on the write, so the response is 202 regardless of
// whether the background insert eventually succeeds.
func (h *Handler) RecordLead(c *gin.Context) {
	plot, err := h.plots.GetPlot(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.leads.Record(plot.ID, plot.SellerID)

	resp := gin.H{"status": "recorded"}
	if link, ok := usecase.WhatsAppLink(plot); ok {
		resp["whatsapp_url"] = link
	}
	c.JSON(http.StatusAccepted, resp)
}
