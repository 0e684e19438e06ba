package handler

import "lexi/internal/jagriti/models"

// StatesResponse is the HTTP response for GET /states.
type StatesResponse struct {
	States []models.State `json:"states"`
}

// CommissionsResponse is the HTTP response for GET /states/{stateID}/commissions.
type CommissionsResponse struct {
	StateID     int                 `json:"state_id"`
	Commissions []models.Commission `json:"commissions"`
}

// SearchResponse is the HTTP response for POST /cases/search.
type SearchResponse struct {
	Count int           `json:"count"`
	Cases []models.Case `json:"cases"`
}

// SearchTypeResponse describes one supported search type.
type SearchTypeResponse struct {
	Name  string `json:"name"`
	Code  int    `json:"code"`
	Value string `json:"value"`
}

// FromCases wraps search results; an empty search yields "cases": [].
func FromCases(cases []models.Case) *SearchResponse {
	if cases == nil {
		cases = []models.Case{}
	}
	return &SearchResponse{Count: len(cases), Cases: cases}
}

// FromSearchTypes lists search types with how their value is derived.
func FromSearchTypes(types []models.SearchType) []SearchTypeResponse {
	out := make([]SearchTypeResponse, 0, len(types))
	for _, t := range types {
		out = append(out, SearchTypeResponse{
			Name:  t.String(),
			Code:  t.Code(),
			Value: string(t.Semantics()),
		})
	}
	return out
}
