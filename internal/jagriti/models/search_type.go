package models

import (
	"fmt"
	"sort"
	"strings"
)

// SearchType selects the upstream search criterion.
type SearchType int

// Upstream codes for each search criterion.
const (
	SearchCaseNumber          SearchType = 1
	SearchComplainant         SearchType = 2
	SearchRespondent          SearchType = 3
	SearchComplainantAdvocate SearchType = 4
	SearchRespondentAdvocate  SearchType = 5
	SearchIndustryType        SearchType = 6
	SearchJudge               SearchType = 7
)

// ValueSemantics says what goes into searchTypeValue for a search type.
type ValueSemantics string

const (
	// ValueRawQuery sends the caller's query verbatim.
	ValueRawQuery ValueSemantics = "raw_query"
	// ValueSelfCode sends the search type's own numeric code.
	ValueSelfCode ValueSemantics = "self_code"
)

type searchTypeEntry struct {
	name  string
	value ValueSemantics
}

var searchTypes = map[SearchType]searchTypeEntry{
	SearchCaseNumber:          {name: "case_number", value: ValueRawQuery},
	SearchComplainant:         {name: "complainant", value: ValueRawQuery},
	SearchRespondent:          {name: "respondent", value: ValueRawQuery},
	SearchComplainantAdvocate: {name: "complainant_advocate", value: ValueRawQuery},
	SearchRespondentAdvocate:  {name: "respondent_advocate", value: ValueRawQuery},
	// Known limitation: upstream expects its own code here, not the industry
	// name, and in practice returns no cases for this search type.
	SearchIndustryType: {name: "industry_type", value: ValueSelfCode},
	SearchJudge:        {name: "judge", value: ValueSelfCode},
}

// ParseSearchType resolves an API name such as "case_number" (case-insensitive).
func ParseSearchType(s string) (SearchType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for t, e := range searchTypes {
		if e.name == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown search type: %q", s)
}

// SearchTypes returns every supported search type ordered by code.
func SearchTypes() []SearchType {
	out := make([]SearchType, 0, len(searchTypes))
	for t := range searchTypes {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Valid reports whether t is one of the known search types.
func (t SearchType) Valid() bool {
	_, ok := searchTypes[t]
	return ok
}

// Code is the numeric value upstream expects in searchType.
func (t SearchType) Code() int {
	return int(t)
}

func (t SearchType) String() string {
	if e, ok := searchTypes[t]; ok {
		return e.name
	}
	return fmt.Sprintf("search_type(%d)", int(t))
}

// Semantics reports how searchTypeValue is derived for t.
func (t SearchType) Semantics() ValueSemantics {
	return searchTypes[t].value
}

// Value returns the searchTypeValue to send for query: the query itself or
// the type's own code, depending on Semantics.
func (t SearchType) Value(query string) any {
	if t.Semantics() == ValueSelfCode {
		return t.Code()
	}
	return query
}
