package usecase

import (
	"context"
	"strings"

	"github.com/muthomi-ke/land-platform/internal/platform/logger"
	"github.com/muthomi-ke/land-platform/internal/plot/domain"
)

// AdminUsecase backs the moderation console: list everything, toggle the
// verified badge, correct prices, hard-delete listings. Verification is a
// display badge only; public search never filters on it.
type AdminUsecase struct {
	repo   domain.PlotRepository
	logger *logger.Logger
}

func NewAdminUsecase(repo domain.PlotRepository, log *logger.Logger) *AdminUsecase {
	return &AdminUsecase{repo: repo, logger: log}
}

func (uc *AdminUsecase) ListPlots(ctx context.Context) ([]*domain.Plot, error) {
	if uc.repo == nil {
		return nil, domain.ErrGatewayNotConfigured
	}
	return uc.repo.FindAll(ctx)
}

func (uc *AdminUsecase) SetVerified(ctx context.Context, id string, verified bool) error {
	if uc.repo == nil {
		return domain.ErrGatewayNotConfigured
	}
	if err := uc.repo.UpdateVerified(ctx, id, verified); err != nil {
		uc.logger.Error("AdminUsecase.SetVerified: update failed", "plot_id", id, "error", err.Error())
		return err
	}
	return nil
}

func (uc *AdminUsecase) SetPrice(ctx context.Context, id string, price int64) error {
	if uc.repo == nil {
		return domain.ErrGatewayNotConfigured
	}
	if err := uc.repo.UpdatePrice(ctx, id, price); err != nil {
		uc.logger.Error("AdminUsecase.SetPrice: update failed", "plot_id", id, "error", err.Error())
		return err
	}
	return nil
}

// ParseAndSetPrice applies the seller-form parsing rules to a raw edit-box
// value before persisting, and reports the price actually stored.
func (uc *AdminUsecase) ParseAndSetPrice(ctx context.Context, id, raw string) (int64, error) {
	price := ParsePrice(raw)
	if err := uc.SetPrice(ctx, id, price); err != nil {
		return 0, err
	}
	return price, nil
}

func (uc *AdminUsecase) DeletePlot(ctx context.Context, id string) error {
	if uc.repo == nil {
		return domain.ErrGatewayNotConfigured
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.Error("AdminUsecase.DeletePlot: delete failed", "plot_id", id, "error", err.Error())
		return err
	}
	uc.logger.Info("AdminUsecase.DeletePlot: plot deleted", "plot_id", id)
	return nil
}

// Console is the console's displayed list. Mutations apply optimistically to
// the local view and are reverted only when the backend write fails, so the
// badge or price a moderator sees snaps back to the pre-action state on
// failure rather than lying about what was persisted.
type Console struct {
	uc    *AdminUsecase
	plots []*domain.Plot
}

func (uc *AdminUsecase) NewConsole() *Console {
	return &Console{uc: uc}
}

func (c *Console) Load(ctx context.Context) error {
	plots, err := c.uc.ListPlots(ctx)
	if err != nil {
		return err
	}
	c.plots = plots
	return nil
}

func (c *Console) Plots() []*domain.Plot { return c.plots }

func (c *Console) find(id string) *domain.Plot {
	for _, p := range c.plots {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// ToggleVerified flips the badge in the view, then persists; on failure the
// view reverts to the original state.
func (c *Console) ToggleVerified(ctx context.Context, id string) error {
	p := c.find(id)
	if p == nil {
		return domain.ErrPlotNotFound
	}
	original := p.Verified
	p.Verified = !original

	if err := c.uc.SetVerified(ctx, id, p.Verified); err != nil {
		p.Verified = original
		return err
	}
	return nil
}

// SavePrice parses the moderator's raw input with the same rules as the
// seller form (digits stripped, "TBD" -> 0). A blank input keeps the
// current price, mirroring the console's edit box behavior.
func (c *Console) SavePrice(ctx context.Context, id, raw string) error {
	p := c.find(id)
	if p == nil {
		return domain.ErrPlotNotFound
	}
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	original := p.Price
	p.Price = ParsePrice(raw)

	if err := c.uc.SetPrice(ctx, id, p.Price); err != nil {
		p.Price = original
		return err
	}
	return nil
}

// Delete removes the plot from the view, then persists; on failure the view
// is restored.
func (c *Console) Delete(ctx context.Context, id string) error {
	idx := -1
	for i, p := range c.plots {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.ErrPlotNotFound
	}
	original := c.plots
	c.plots = append(append([]*domain.Plot{}, c.plots[:idx]...), c.plots[idx+1:]...)

	if err := c.uc.DeletePlot(ctx, id); err != nil {
		c.plots = original
		return err
	}
	return nil
}
