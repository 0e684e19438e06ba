package handler

import (
	"strings"

	"lexi/internal/jagriti/models"
	"lexi/internal/jagriti/service"
	dErrors "lexi/pkg/domain-errors"
)

// Maximum accepted field lengths.
const (
	maxNameLength  = 200
	maxQueryLength = 500
)

// SearchRequest is the HTTP request body for POST /cases/search.
type SearchRequest struct {
	State      string `json:"state"`
	Commission string `json:"commission"`
	Query      string `json:"query"`
	SearchType string `json:"search_type"`

	// Parsed values (populated by Validate)
	parsedType models.SearchType
}

// Validate trims, checks, and parses the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *SearchRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	// Size validation (fail fast)
	if len(r.State) > maxNameLength || len(r.Commission) > maxNameLength {
		return dErrors.New(dErrors.CodeValidation, "state and commission must be at most 200 characters")
	}
	if len(r.Query) > maxQueryLength {
		return dErrors.New(dErrors.CodeValidation, "query must be at most 500 characters")
	}

	r.State = strings.TrimSpace(r.State)
	r.Commission = strings.TrimSpace(r.Commission)
	r.Query = strings.TrimSpace(r.Query)

	switch {
	case r.State == "":
		return dErrors.New(dErrors.CodeValidation, "state is required")
	case r.Commission == "":
		return dErrors.New(dErrors.CodeValidation, "commission is required")
	case r.Query == "":
		return dErrors.New(dErrors.CodeValidation, "query is required")
	case strings.TrimSpace(r.SearchType) == "":
		return dErrors.New(dErrors.CodeValidation, "search_type is required")
	}

	t, err := models.ParseSearchType(r.SearchType)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeValidation, err.Error())
	}
	r.parsedType = t
	r.SearchType = t.String()
	return nil
}

// ParsedType returns the validated search type.
func (r *SearchRequest) ParsedType() models.SearchType {
	return r.parsedType
}

// ToService converts the validated request into the service request.
func (r *SearchRequest) ToService() service.SearchRequest {
	return service.SearchRequest{
		StateName:      r.State,
		CommissionName: r.Commission,
		Query:          r.Query,
		Type:           r.parsedType,
	}
}
