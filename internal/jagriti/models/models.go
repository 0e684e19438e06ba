// Package models holds the reference data and case shapes exchanged between the
// e-Jagriti upstream, the resolver, and the HTTP layer.
package models

// State is a state commission (or circuit bench) as listed upstream.
type State struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Commission is a district commission. Its owning state is implied by the
// cache bucket it was fetched into and is not carried on the value.
type Commission struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Case is a single search hit. Every upstream-sourced field is nil when
// upstream returns null or omits it, and serializes as JSON null rather than "".
type Case struct {
	CaseNumber          *string `json:"case_number"`
	Stage               *string `json:"case_stage"`
	FilingDate          *string `json:"filing_date"`
	Complainant         *string `json:"complainant"`
	ComplainantAdvocate *string `json:"complainant_advocate"`
	Respondent          *string `json:"respondent"`
	RespondentAdvocate  *string `json:"respondent_advocate"`
	// DocumentLink is always empty: upstream only embeds document bytes.
	DocumentLink string `json:"document_link"`
}
