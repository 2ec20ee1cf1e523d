package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/muthomi-ke/land-platform/internal/adapter/httpapi/middleware"
	"github.com/muthomi-ke/land-platform/internal/auth"
	"github.com/muthomi-ke/land-platform/internal/geo"
	"github.com/muthomi-ke/land-platform/internal/platform/logger"
	"github.com/muthomi-ke/land-platform/internal/plot/domain"
	"github.com/muthomi-ke/land-platform/internal/plot/usecase"
)

type Handler struct {
	search      *usecase.SearchUsecase
	plots       *usecase.PlotUsecase
	submissions *usecase.SubmissionUsecase
	admin       *usecase.AdminUsecase
	leads       *usecase.LeadUsecase
	authSvc     *auth.Service
	distance    *geo.DistanceClient
	logger      *logger.Logger
}

func NewHandler(
	search *usecase.SearchUsecase,
	plots *usecase.PlotUsecase,
	submissions *usecase.SubmissionUsecase,
	admin *usecase.AdminUsecase,
	leads *usecase.LeadUsecase,
	authSvc *auth.Service,
	distance *geo.DistanceClient,
	log *logger.Logger,
) *Handler {
	return &Handler{
		search:      search,
		plots:       plots,
		submissions: submissions,
		admin:       admin,
		leads:       leads,
		authSvc:     authSvc,
		distance:    distance,
		logger:      log,
	}
}

// Router builds the gin engine with the full API surface.
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Tracing())
	r.Use(middleware.Logging(h.logger))
	r.Use(cors.Default())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/signup", h.SignUp)
			authGroup.POST("/login", h.Login)
			authGroup.POST("/logout", middleware.Auth(h.authSvc, h.logger), h.Logout)
			authGroup.GET("/me", middleware.Auth(h.authSvc, h.logger), h.Me)
		}

		api.GET("/plots", h.SearchPlots)
		api.GET("/plots/:id", h.GetPlot)
		api.GET("/plots/:id/fare", h.FareEstimate)
		api.POST("/plots/:id/leads", h.RecordLead)

		api.POST("/submissions", h.SubmitListing)
		api.POST("/submissions/validate", h.ValidateStep)

		api.GET("/invest/projection", h.InvestProjection)
		api.GET("/invest/pool", h.InvestPool)
		api.GET("/invest/convert", h.InvestConvert)

		adminGroup := api.Group("/admin", middleware.Auth(h.authSvc, h.logger))
		{
			adminGroup.GET("/plots", h.AdminListPlots)
			adminGroup.PATCH("/plots/:id/verified", h.AdminSetVerified)
			adminGroup.PATCH("/plots/:id/price", h.AdminSetPrice)
			adminGroup.DELETE("/plots/:id", h.AdminDeletePlot)
		}
	}

	return r
}

// respondError maps domain errors to a status and a generic user-facing
// message; original detail stays in the logs only. An unconfigured gateway
// is deliberately distinct from an empty result or a transient failure.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrGatewayNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Data is not available – backend is not configured yet."})
	case errors.Is(err, domain.ErrMediaNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Media uploads are not configured yet."})
	case errors.Is(err, domain.ErrPlotNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Plot not found."})
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials or login failed."})
	case errors.Is(err, domain.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered."})
	default:
		h.logger.Error("request failed", "path", c.Request.URL.Path, "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
	}
}
