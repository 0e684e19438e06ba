// Package resolver maps human-readable state and commission names onto the
// identifiers upstream expects. Matching is exact after trimming surrounding
// whitespace and ignoring case.
package resolver

import (
	"context"
	"errors"

	"lexi/internal/jagriti/models"
	pstrings "lexi/pkg/platform/strings"
)

// ReferenceData is the subset of the reference cache the resolver reads.
type ReferenceData interface {
	States(ctx context.Context) ([]models.State, error)
	Commissions(ctx context.Context, stateID int) ([]models.Commission, error)
}

// Resolver resolves names against cached reference data. A nil result with a
// nil error means no match.
type Resolver struct {
	data ReferenceData
}

// New creates a resolver over data.
func New(data ReferenceData) (*Resolver, error) {
	if data == nil {
		return nil, errors.New("reference data is required")
	}
	return &Resolver{data: data}, nil
}

// StateByName returns the first state whose name matches name.
func (r *Resolver) StateByName(ctx context.Context, name string) (*models.State, error) {
	states, err := r.data.States(ctx)
	if err != nil {
		return nil, err
	}
	for _, s := range states {
		if pstrings.EqualNormalized(s.Name, name) {
			return &s, nil
		}
	}
	return nil, nil
}

// StateByID returns the state with the given id.
func (r *Resolver) StateByID(ctx context.Context, id int) (*models.State, error) {
	states, err := r.data.States(ctx)
	if err != nil {
		return nil, err
	}
	for _, s := range states {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, nil
}

// CommissionByName returns the first commission in stateID whose name matches
// name. It returns no match when stateID itself does not resolve.
func (r *Resolver) CommissionByName(ctx context.Context, name string, stateID int) (*models.Commission, error) {
	state, err := r.StateByID(ctx, stateID)
	if err != nil || state == nil {
		return nil, err
	}

	commissions, err := r.data.Commissions(ctx, state.ID)
	if err != nil {
		return nil, err
	}
	for _, c := range commissions {
		if pstrings.EqualNormalized(c.Name, name) {
			return &c, nil
		}
	}
	return nil, nil
}
