package upstream

import (
	"fmt"
	"strings"
)

// Default upstream base URL and browser user agent.
const (
	DefaultBaseURL   = "https://e-jagriti.gov.in/services"
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/139.0.0.0 Safari/537.36"
)

const (
	statesPath        = "/report/report/getStateCommissionAndCircuitBench"
	commissionsPath   = "/report/report/getDistrictCommissionByCommissionId"
	judgesPath        = "/master/master/v2/getJudgeListForHearing"
	caseSearchPath    = "/case/caseFilingService/v2/getCaseDetailsBySearchType"
	activeJudgeFilter = "true"
)

// StatesPath lists every state commission and circuit bench.
func StatesPath() string {
	return statesPath
}

// CommissionsPath lists the district commissions under a state.
func CommissionsPath(stateID int) string {
	return fmt.Sprintf("%s?commissionId=%d", commissionsPath, stateID)
}

// JudgesPath lists the active judges sitting at a commission.
func JudgesPath(commissionID int) string {
	return fmt.Sprintf("%s?commissionId=%d&activeStatus=%s", judgesPath, commissionID, activeJudgeFilter)
}

// CaseSearchPath runs a case search by search type.
func CaseSearchPath() string {
	return caseSearchPath
}

// endpointLabel strips the query string so metrics and spans stay low-cardinality.
func endpointLabel(path string) string {
	p, _, _ := strings.Cut(path, "?")
	return p
}
