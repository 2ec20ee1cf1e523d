package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muthomi-ke/land-platform/internal/platform/logger"
	"github.com/muthomi-ke/land-platform/internal/plot/domain"
)

// adminRepoStub backs console tests with an in-memory list and switchable
// write failures.
type adminRepoStub struct {
	domain.PlotRepository
	plots   []*domain.Plot
	failAll bool
}

func (r *adminRepoStub) FindAll(_ context.Context) ([]*domain.Plot, error) {
	out := make([]*domain.Plot, len(r.plots))
	for i, p := range r.plots {
		cp := *p
		out[i] = &cp
	}
	return out, nil
}

func (r *adminRepoStub) UpdateVerified(_ context.Context, id string, verified bool) error {
	if r.failAll {
		return errors.New("write failed")
	}
	for _, p := range r.plots {
		if p.ID == id {
			p.Verified = verified
			return nil
		}
	}
	return domain.ErrPlotNotFound
}

func (r *adminRepoStub) UpdatePrice(_ context.Context, id string, price int64) error {
	if r.failAll {
		return errors.New("write failed")
	}
	for _, p := range r.plots {
		if p.ID == id {
			p.Price = price
			return nil
		}
	}
	return domain.ErrPlotNotFound
}

func (r *adminRepoStub) Delete(_ context.Context, id string) error {
	if r.failAll {
		return errors.New("write failed")
	}
	for i, p := range r.plots {
		if p.ID == id {
			r.plots = append(r.plots[:i], r.plots[i+1:]...)
			return nil
		}
	}
	return domain.ErrPlotNotFound
}

func newTestConsole(t *testing.T, repo *adminRepoStub) *Console {
	t.Helper()
	console := NewAdminUsecase(repo, logger.New()).NewConsole()
	require.NoError(t, console.Load(context.Background()))
	return console
}

func seedPlots() []*domain.Plot {
	return []*domain.Plot{
		{ID: "p1", Name: "Kitengela Acre", Price: 1200000, Verified: false},
		{ID: "p2", Name: "Naivasha View", Price: 800000, Verified: true},
	}
}

func TestAdminNotConfigured(t *testing.T) {
	uc := NewAdminUsecase(nil, logger.New())

	_, err := uc.ListPlots(context.Background())
	assert.ErrorIs(t, err, domain.ErrGatewayNotConfigured)
	assert.ErrorIs(t, uc.SetVerified(context.Background(), "p1", true), domain.ErrGatewayNotConfigured)
	assert.ErrorIs(t, uc.DeletePlot(context.Background(), "p1"), domain.ErrGatewayNotConfigured)
}

func TestConsoleToggleVerified(t *testing.T) {
	repo := &adminRepoStub{plots: seedPlots()}
	console := newTestConsole(t, repo)

	require.NoError(t, console.ToggleVerified(context.Background(), "p1"))
	assert.True(t, console.Plots()[0].Verified)
	assert.True(t, repo.plots[0].Verified)
}

func TestConsoleToggleVerifiedRevertsOnFailure(t *testing.T) {
	repo := &adminRepoStub{plots: seedPlots()}
	console := newTestConsole(t, repo)
	repo.failAll = true

	require.Error(t, console.ToggleVerified(context.Background(), "p2"))
	assert.True(t, console.Plots()[1].Verified, "failed toggle must snap back to the original badge")
	assert.True(t, repo.plots[1].Verified)
}

func TestConsoleSavePrice(t *testing.T) {
	repo := &adminRepoStub{plots: seedPlots()}
	console := newTestConsole(t, repo)

	require.NoError(t, console.SavePrice(context.Background(), "p1", "KSh 1,500,000"))
	assert.Equal(t, int64(1500000), console.Plots()[0].Price)
	assert.Equal(t, int64(1500000), repo.plots[0].Price)
}

func TestConsoleSavePriceBlankKeepsCurrent(t *testing.T) {
	repo := &adminRepoStub{plots: seedPlots()}
	console := newTestConsole(t, repo)

	require.NoError(t, console.SavePrice(context.Background(), "p1", "   "))
	assert.Equal(t, int64(1200000), console.Plots()[0].Price)
}

func TestConsoleSavePriceRevertsOnFailure(t *testing.T) {
	repo := &adminRepoStub{plots: seedPlots()}
	console := newTestConsole(t, repo)
	repo.failAll = true

	require.Error(t, console.SavePrice(context.Background(), "p1", "2,000,000"))
	assert.Equal(t, int64(1200000), console.Plots()[0].Price)
}

func TestConsoleDelete(t *testing.T) {
	repo := &adminRepoStub{plots: seedPlots()}
	console := newTestConsole(t, repo)

	require.NoError(t, console.Delete(context.Background(), "p1"))
	require.Len(t, console.Plots(), 1)
	assert.Equal(t, "p2", console.Plots()[0].ID)
	assert.Len(t, repo.plots, 1)
}

func TestConsoleDeleteRevertsOnFailure(t *testing.T) {
	repo := &adminRepoStub{plots: seedPlots()}
	console := newTestConsole(t, repo)
	repo.failAll = true

	require.Error(t, console.Delete(context.Background(), "p1"))
	assert.Len(t, console.Plots(), 2, "failed delete must restore the row")
}

func TestConsoleUnknownPlot(t *testing.T) {
	console := newTestConsole(t, &adminRepoStub{plots: seedPlots()})

	assert.ErrorIs(t, console.ToggleVerified(context.Background(), "missing"), domain.ErrPlotNotFound)
	assert.ErrorIs(t, console.SavePrice(context.Background(), "missing", "100"), domain.ErrPlotNotFound)
	assert.ErrorIs(t, console.Delete(context.Background(), "missing"), domain.ErrPlotNotFound)
}

func TestParseAndSetPrice(t *testing.T) {
	repo := &adminRepoStub{plots: seedPlots()}
	uc := NewAdminUsecase(repo, logger.New())

	price, err := uc.ParseAndSetPrice(context.Background(), "p1", "KSh 950,000")
	require.NoError(t, err)
	assert.Equal(t, int64(950000), price)
	assert.Equal(t, int64(950000), repo.plots[0].Price)
}
