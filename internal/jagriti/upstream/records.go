package upstream

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// CommissionRecord is the shape of both the state and district listings.
type CommissionRecord struct {
	CommissionID     int    `json:"commissionId"`
	CommissionNameEn string `json:"commissionNameEn"`
}

// JudgeRecord is one entry of the judge list for hearing.
type JudgeRecord struct {
	JudgeID      ID     `json:"judgeId"`
	JudgesNameEn string `json:"judgesNameEn"`
}

// ID is an identifier that upstream may send as a JSON number or string. It is
// only ever passed back upstream, so it is kept as text.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*id = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("id must be a string or number: %w", err)
		}
		*id = ID(n.String())
	}
	return nil
}

func (id ID) String() string {
	return string(id)
}

// CaseRecord is one search hit. Nullable upstream fields are pointers.
type CaseRecord struct {
	CaseNumber              *string `json:"caseNumber"`
	CaseStageName           *string `json:"caseStageName"`
	CaseFilingDate          *string `json:"caseFilingDate"`
	ComplainantName         *string `json:"complainantName"`
	ComplainantAdvocateName *string `json:"complainantAdvocateName"`
	RespondentName          *string `json:"respondentName"`
	RespondentAdvocateName  *string `json:"respondentAdvocateName"`
}

// SearchPayload is the body of the case search call.
type SearchPayload struct {
	CommissionID    int    `json:"commissionId"`
	OrderType       int    `json:"orderType"`
	DateRequestType int    `json:"dateRequestType"`
	SearchType      int    `json:"searchType"`
	SearchTypeValue any    `json:"searchTypeValue"`
	FromDate        string `json:"fromDate"`
	ToDate          string `json:"toDate"`
	JudgeID         string `json:"judgeId"`
}

// DecodeList decodes an envelope's data into a list of records.
func DecodeList[T any](data json.RawMessage) ([]T, error) {
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, &Error{Category: ErrorBadData, Message: "decode data records", Underlying: err}
	}
	return out, nil
}
