package usecase

import (
	"context"
	"errors"

	"github.com/muthomi-ke/land-platform/internal/platform/logger"
	"github.com/muthomi-ke/land-platform/internal/plot/domain"
)

// Cache is a read-through cache for plot detail views. A nil Cache (Redis
// unconfigured) just means every read hits the gateway.
type Cache interface {
	GetPlot(ctx context.Context, id string) (*domain.Plot, error)
	SetPlot(ctx context.Context, plot *domain.Plot) error
	DeletePlot(ctx context.Context, id string) error
}

// PlotUsecase serves single-plot reads with cache-aside semantics.
type PlotUsecase struct {
	repo   domain.PlotRepository
	cache  Cache
	logger *logger.Logger
}

func NewPlotUsecase(repo domain.PlotRepository, cache Cache, log *logger.Logger) *PlotUsecase {
	return &PlotUsecase{repo: repo, cache: cache, logger: log}
}

func (uc *PlotUsecase) GetPlot(ctx context.Context, id string) (*domain.Plot, error) {
	if uc.repo == nil {
		return nil, domain.ErrGatewayNotConfigured
	}

	if uc.cache != nil {
		cached, err := uc.cache.GetPlot(ctx, id)
		if err != nil {
			uc.logger.Warn("PlotUsecase.GetPlot: cache read failed", "plot_id", id, "error", err.Error())
		} else if cached != nil {
			return cached, nil
		}
	}

	plot, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrPlotNotFound) {
			return nil, domain.ErrPlotNotFound
		}
		uc.logger.Error("PlotUsecase.GetPlot: lookup failed", "plot_id", id, "error", err.Error())
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.SetPlot(ctx, plot); err != nil {
			uc.logger.Warn("PlotUsecase.GetPlot: cache write failed", "plot_id", id, "error", err.Error())
		}
	}
	return plot, nil
}

// Invalidate drops a plot from the cache after an admin mutation.
func (uc *PlotUsecase) Invalidate(ctx context.Context, id string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.DeletePlot(ctx, id); err != nil {
		uc.logger.Warn("PlotUsecase.Invalidate: cache delete failed", "plot_id", id, "error", err.Error())
	}
}

// Gallery is the ordered set of image URLs a detail view shows, falling
// back to nothing when the plot carries no media.
func Gallery(plot *domain.Plot) []string {
	urls := make([]string, 0, len(plot.MediaURLs))
	for _, u := range plot.MediaURLs {
		if u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}
