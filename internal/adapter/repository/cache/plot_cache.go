package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/muthomi-ke/land-platform/internal/plot/domain"
)

const plotTTL = 1 * time.Hour

type PlotCache struct {
	client *redis.Client
}

func NewPlotCache(addr string) (*PlotCache, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, err
	}
	return &PlotCache{client: client}, nil
}

func (c *PlotCache) GetPlot(ctx context.Context, id string) (*domain.Plot, error) {
	data, err := c.client.Get(ctx, "plot:"+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, err
	}
	var plot domain.Plot
	if err := json.Unmarshal(data, &plot); err != nil {
		return nil, err
	}
	return &plot, nil
}

func (c *PlotCache) SetPlot(ctx context.Context, plot *domain.Plot) error {
	data, err := json.Marshal(plot)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "plot:"+plot.ID, data, plotTTL).Err()
}

func (c *PlotCache) DeletePlot(ctx context.Context, id string) error {
	return c.client.Del(ctx, "plot:"+id).Err()
}

func (c *PlotCache) Client() *redis.Client { return c.client }
