// Package service is the entry point the HTTP layer calls: reference-data
// lookups by name or ID and the multi-criteria case search.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"lexi/internal/jagriti/metrics"
	"lexi/internal/jagriti/models"
	"lexi/internal/jagriti/ports"
	"lexi/internal/jagriti/upstream"
	dErrors "lexi/pkg/domain-errors"
	"lexi/pkg/platform/sentinel"
	"lexi/pkg/requestcontext"
)

// ReferenceData is the cached state and commission listing.
type ReferenceData interface {
	States(ctx context.Context) ([]models.State, error)
	Commissions(ctx context.Context, stateID int) ([]models.Commission, error)
}

// Resolver maps names to reference records. A nil record with a nil error
// means no match.
type Resolver interface {
	StateByName(ctx context.Context, name string) (*models.State, error)
	StateByID(ctx context.Context, id int) (*models.State, error)
	CommissionByName(ctx context.Context, name string, stateID int) (*models.Commission, error)
}

type Service struct {
	fetcher  ports.Fetcher
	data     ReferenceData
	resolver Resolver
	logger   *slog.Logger
	metrics  *metrics.Metrics
	fromDate time.Time
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithFromDate fixes the start of every search's filing-date window.
// The default is January 1 of the year the service was created.
func WithFromDate(t time.Time) Option {
	return func(s *Service) {
		if !t.IsZero() {
			s.fromDate = t
		}
	}
}

func New(fetcher ports.Fetcher, data ReferenceData, resolver Resolver, opts ...Option) (*Service, error) {
	if fetcher == nil {
		return nil, errors.New("fetcher is required")
	}
	if data == nil {
		return nil, errors.New("reference data is required")
	}
	if resolver == nil {
		return nil, errors.New("resolver is required")
	}

	now := time.Now()
	svc := &Service{
		fetcher:  fetcher,
		data:     data,
		resolver: resolver,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		fromDate: time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// States lists every state.
func (s *Service) States(ctx context.Context) ([]models.State, error) {
	states, err := s.data.States(ctx)
	if err != nil {
		return nil, translate(err, "states")
	}
	return states, nil
}

// Commissions lists the district commissions of a state.
func (s *Service) Commissions(ctx context.Context, stateID int) ([]models.Commission, error) {
	commissions, err := s.data.Commissions(ctx, stateID)
	if err != nil {
		return nil, translate(err, "commissions")
	}
	return commissions, nil
}

// StateByName resolves a state by its (case- and whitespace-insensitive) name.
func (s *Service) StateByName(ctx context.Context, name string) (*models.State, error) {
	state, err := s.resolver.StateByName(ctx, name)
	if err != nil {
		return nil, translate(err, "states")
	}
	if state == nil {
		return nil, dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("no state found with name %q", name))
	}
	return state, nil
}

// StateByID resolves a state by its upstream identifier.
func (s *Service) StateByID(ctx context.Context, id int) (*models.State, error) {
	state, err := s.resolver.StateByID(ctx, id)
	if err != nil {
		return nil, translate(err, "states")
	}
	if state == nil {
		return nil, dErrors.New(dErrors.CodeNotFound, "no state found with this ID")
	}
	return state, nil
}

// CommissionByName resolves a commission by name within a state.
func (s *Service) CommissionByName(ctx context.Context, name string, stateID int) (*models.Commission, error) {
	commission, err := s.resolver.CommissionByName(ctx, name, stateID)
	if err != nil {
		return nil, translate(err, "commissions")
	}
	if commission == nil {
		return nil, dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("no commission with name %q found in state %d", name, stateID))
	}
	return commission, nil
}

// translate maps cache and upstream failures onto the domain taxonomy:
// missing reference data is not_found, everything else from upstream is fetch_error.
func translate(err error, what string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.Wrap(err, dErrors.CodeNotFound, "no state found with this ID")
	}
	var de *dErrors.Error
	if errors.As(err, &de) {
		return err
	}
	msg := fmt.Sprintf("error fetching %s from upstream", what)
	var ue *upstream.Error
	if errors.As(err, &ue) && ue.Category == upstream.ErrorEnvelope && ue.Message != "" {
		msg = fmt.Sprintf("%s: %s", msg, ue.Message)
	}
	return dErrors.Wrap(err, dErrors.CodeFetch, msg)
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	return string(dErrors.CodeOf(err))
}

func requestID(ctx context.Context) string {
	return requestcontext.RequestID(ctx)
}
