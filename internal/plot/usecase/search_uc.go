package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/muthomi-ke/land-platform/internal/platform/logger"
	"github.com/muthomi-ke/land-platform/internal/plot/domain"
)

const (
	// DebounceDelay coalesces rapid location keystrokes into one query.
	DebounceDelay = 300 * time.Millisecond

	searchTimeout = 10 * time.Second
)

// SearchUsecase executes a single filtered read against the data gateway.
type SearchUsecase struct {
	repo   domain.PlotRepository
	logger *logger.Logger
}

func NewSearchUsecase(repo domain.PlotRepository, log *logger.Logger) *SearchUsecase {
	return &SearchUsecase{repo: repo, logger: log}
}

// Search runs one query for the given filters. An unconfigured gateway is a
// distinct error, not an empty result.
func (uc *SearchUsecase) Search(ctx context.Context, filters domain.FilterSet) ([]*domain.Plot, error) {
	if uc.repo == nil {
		return nil, domain.ErrGatewayNotConfigured
	}
	plots, err := uc.repo.Search(ctx, filters)
	if err != nil {
		uc.logger.Error("SearchUsecase.Search: query failed", "error", err.Error())
		return nil, err
	}
	return plots, nil
}

// Snapshot is what a Composer publishes after each query: the filters that
// produced it, the matching plots, or the error that stopped it.
type Snapshot struct {
	Filters domain.FilterSet
	Plots   []*domain.Plot
	Err     error
}

// Composer keeps a displayed plot collection consistent with a mutable
// FilterSet. Location edits are debounced; numeric and category edits query
// immediately. Only the latest issued query may publish its snapshot: each
// query carries a generation number, and a response whose generation is no
// longer current is dropped, so out-of-order completions can never show
// stale results. Filters themselves are never reverted on query failure.
//
// The publish callback runs with the composer's lock held and must not call
// back into the composer.
type Composer struct {
	search  *SearchUsecase
	logger  *logger.Logger
	publish func(Snapshot)

	mu         sync.Mutex
	filters    domain.FilterSet
	generation uint64
	debounce   *time.Timer
	delay      time.Duration
}

func NewComposer(search *SearchUsecase, log *logger.Logger, publish func(Snapshot)) *Composer {
	return &Composer{
		search:  search,
		logger:  log,
		publish: publish,
		filters: domain.DefaultFilters(),
		delay:   DebounceDelay,
	}
}

// Filters returns the current filter state.
func (c *Composer) Filters() domain.FilterSet {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filters
}

// UpdateFilter merges a partial change and schedules a re-query. No
// validation happens here; malformed bounds are ignored downstream.
func (c *Composer) UpdateFilter(change domain.FilterChange) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.filters.Apply(change)

	// Only free-text location edits coalesce; everything else is a
	// deliberate, discrete action and queries at once.
	locationOnly := change.Location != nil &&
		change.MinPrice == nil && change.MaxPrice == nil && change.Category == nil
	if locationOnly {
		c.scheduleLocked()
		return
	}
	c.requeryLocked()
}

// ResetFilters restores the all-unconstrained default and re-queries.
func (c *Composer) ResetFilters() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filters = domain.DefaultFilters()
	c.requeryLocked()
}

// Refresh re-runs the current filters, e.g. after the gateway comes back.
func (c *Composer) Refresh() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requeryLocked()
}

// Close stops any pending debounced query.
func (c *Composer) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.debounce != nil {
		c.debounce.Stop()
		c.debounce = nil
	}
	// Invalidate in-flight queries so nothing publishes after Close.
	c.generation++
}

func (c *Composer) scheduleLocked() {
	if c.debounce != nil {
		c.debounce.Stop()
	}
	c.debounce = time.AfterFunc(c.delay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.requeryLocked()
	})
}

func (c *Composer) requeryLocked() {
	if c.debounce != nil {
		c.debounce.Stop()
		c.debounce = nil
	}

	c.generation++
	gen := c.generation
	filters := c.filters

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), searchTimeout)
		defer cancel()

		plots, err := c.search.Search(ctx, filters)

		c.mu.Lock()
		defer c.mu.Unlock()
		if gen != c.generation {
			// Superseded while in flight; a newer query owns the display.
			return
		}
		if err != nil {
			c.logger.Warn("Composer: search failed, keeping filters", "error", err.Error())
		}
		c.publish(Snapshot{Filters: filters, Plots: plots, Err: err})
	}()
}
