// Package cache holds the e-Jagriti reference data (states and their district
// commissions) for the lifetime of the process.
//
// Entries are populated on first demand and never expire; reference data is
// assumed not to change while a process runs. Invalidate lets operators force
// a refetch.
// Concurrent first-time callers for the same entry share a single upstream
// fetch. The mutex only guards the in-memory maps, never a network call.
package cache

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"lexi/internal/jagriti/metrics"
	"lexi/internal/jagriti/models"
	"lexi/internal/jagriti/ports"
	"lexi/internal/jagriti/upstream"
	"lexi/pkg/platform/sentinel"
	"lexi/pkg/requestcontext"
)

// Cache names used for metrics labels and single-flight keys.
const (
	statesCache      = "states"
	commissionsCache = "commissions"
)

// ErrStateNotFound is returned when a state ID has no commissions upstream or is
// absent from an already-loaded state list.
var ErrStateNotFound = fmt.Errorf("no state found with this ID: %w", sentinel.ErrNotFound)

// ReferenceCache lazily loads and retains states and per-state commissions.
type ReferenceCache struct {
	fetcher ports.Fetcher
	logger  *slog.Logger
	metrics *metrics.Metrics

	mu          sync.RWMutex
	states      []models.State
	commissions map[int][]models.Commission
	// generation advances on Invalidate; fetches started under an older
	// generation return their result but do not store it.
	generation uint64

	group singleflight.Group
}

type Option func(*ReferenceCache)

func WithLogger(logger *slog.Logger) Option {
	return func(c *ReferenceCache) {
		c.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *ReferenceCache) {
		c.metrics = m
	}
}

// New creates an empty cache backed by fetcher.
func New(fetcher ports.Fetcher, opts ...Option) (*ReferenceCache, error) {
	if fetcher == nil {
		return nil, errors.New("fetcher is required")
	}
	c := &ReferenceCache{
		fetcher:     fetcher,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		commissions: make(map[int][]models.Commission),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// States returns every state, fetching the list once per process.
// Fetch failures are returned unchanged and leave the cache empty.
func (c *ReferenceCache) States(ctx context.Context) ([]models.State, error) {
	if states := c.loadedStates(); len(states) > 0 {
		c.metrics.RecordCacheHit(statesCache)
		return slices.Clone(states), nil
	}
	c.metrics.RecordCacheMiss(statesCache)

	v, err := c.share(ctx, statesCache, func(ctx context.Context, gen uint64) (any, error) {
		if states := c.loadedStates(); len(states) > 0 {
			return states, nil
		}

		data, err := c.fetcher.Fetch(ctx, http.MethodGet, upstream.StatesPath(), nil)
		if err != nil {
			return nil, err
		}
		records, err := upstream.DecodeList[upstream.CommissionRecord](data)
		if err != nil {
			return nil, err
		}

		states := make([]models.State, 0, len(records))
		for _, r := range records {
			states = append(states, models.State{ID: r.CommissionID, Name: r.CommissionNameEn})
		}

		if !c.store(gen, func() { c.states = states }) {
			return states, nil
		}

		c.logger.InfoContext(ctx, "state list cached",
			"request_id", requestcontext.RequestID(ctx),
			"count", len(states),
		)
		return states, nil
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(v.([]models.State)), nil
}

// Commissions returns the district commissions of stateID.
//
// When the state list is already loaded, an unknown stateID fails with
// ErrStateNotFound without touching the network. An empty upstream result also
// fails with ErrStateNotFound and is not cached, so a later call retries.
func (c *ReferenceCache) Commissions(ctx context.Context, stateID int) ([]models.Commission, error) {
	c.mu.RLock()
	states := c.states
	bucket := c.commissions[stateID]
	c.mu.RUnlock()

	if len(states) > 0 && !slices.ContainsFunc(states, func(s models.State) bool { return s.ID == stateID }) {
		return nil, fmt.Errorf("state %d: %w", stateID, ErrStateNotFound)
	}
	if len(bucket) > 0 {
		c.metrics.RecordCacheHit(commissionsCache)
		return slices.Clone(bucket), nil
	}
	c.metrics.RecordCacheMiss(commissionsCache)

	key := commissionsCache + ":" + strconv.Itoa(stateID)
	v, err := c.share(ctx, key, func(ctx context.Context, gen uint64) (any, error) {
		if bucket := c.loadedCommissions(stateID); len(bucket) > 0 {
			return bucket, nil
		}

		data, err := c.fetcher.Fetch(ctx, http.MethodGet, upstream.CommissionsPath(stateID), nil)
		if err != nil {
			return nil, err
		}
		records, err := upstream.DecodeList[upstream.CommissionRecord](data)
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return nil, fmt.Errorf("state %d: %w", stateID, ErrStateNotFound)
		}

		commissions := make([]models.Commission, 0, len(records))
		for _, r := range records {
			commissions = append(commissions, models.Commission{ID: r.CommissionID, Name: r.CommissionNameEn})
		}

		if !c.store(gen, func() { c.commissions[stateID] = commissions }) {
			return commissions, nil
		}

		c.logger.InfoContext(ctx, "commission list cached",
			"request_id", requestcontext.RequestID(ctx),
			"state_id", stateID,
			"count", len(commissions),
		)
		return commissions, nil
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(v.([]models.Commission)), nil
}

// Invalidate drops every cached entry; the next lookup refetches. A fetch
// already in flight still answers its waiters but is not stored.
func (c *ReferenceCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.states = nil
	c.commissions = make(map[int][]models.Commission)
	c.generation++
}

// store runs write under the lock if no Invalidate happened since gen.
func (c *ReferenceCache) store(gen uint64, write func()) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generation != gen {
		return false
	}
	write()
	return true
}

func (c *ReferenceCache) loadedStates() []models.State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.states
}

func (c *ReferenceCache) loadedCommissions(stateID int) []models.Commission {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.commissions[stateID]
}

// share runs fn at most once per key and generation among concurrent callers.
// The fetch is detached from the first caller's cancellation; each caller
// stops waiting when its own context ends.
func (c *ReferenceCache) share(ctx context.Context, key string, fn func(context.Context, uint64) (any, error)) (any, error) {
	c.mu.RLock()
	gen := c.generation
	c.mu.RUnlock()

	detached := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key+"#"+strconv.FormatUint(gen, 10), func() (any, error) {
		return fn(detached, gen)
	})

	select {
	case res := <-ch:
		return res.Val, res.Err
	case <-ctx.Done():
		category := upstream.ErrorTransport
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			category = upstream.ErrorTimeout
		}
		return nil, &upstream.Error{
			Category:   category,
			Endpoint:   key,
			Message:    "gave up waiting for reference data",
			Underlying: ctx.Err(),
		}
	}
}
