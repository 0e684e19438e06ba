package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"lexi/internal/jagriti/models"
	"lexi/internal/jagriti/upstream"
	dErrors "lexi/pkg/domain-errors"
	pstrings "lexi/pkg/platform/strings"
	"lexi/pkg/requestcontext"
)

// Fixed upstream conventions for the case search body.
const (
	orderType       = 1
	dateRequestType = 1
	dateLayout      = "2006-01-02"
)

// SearchRequest names the state and commission to search in and the criterion.
type SearchRequest struct {
	StateName      string
	CommissionName string
	Query          string
	Type           models.SearchType
}

// Search resolves the state and commission, resolves the judge for judge
// searches, and runs the upstream case search. It returns every case or an
// error; never a partial list.
func (s *Service) Search(ctx context.Context, req SearchRequest) ([]models.Case, error) {
	start := time.Now()
	cases, err := s.search(ctx, req)
	s.metrics.IncrementSearch(req.Type.String(), outcome(err))

	if err != nil {
		s.logger.WarnContext(ctx, "case search failed",
			"request_id", requestID(ctx),
			"search_type", req.Type.String(),
			"state", req.StateName,
			"commission", req.CommissionName,
			"error", err,
		)
		return nil, err
	}
	s.logger.InfoContext(ctx, "case search completed",
		"request_id", requestID(ctx),
		"search_type", req.Type.String(),
		"results", len(cases),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return cases, nil
}

func (s *Service) search(ctx context.Context, req SearchRequest) ([]models.Case, error) {
	if !req.Type.Valid() {
		return nil, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("unknown search type %d", int(req.Type)))
	}

	state, err := s.resolver.StateByName(ctx, req.StateName)
	if err != nil {
		return nil, translate(err, "states")
	}
	if state == nil {
		return nil, dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("no state found with name %q", req.StateName))
	}

	commission, err := s.resolver.CommissionByName(ctx, req.CommissionName, state.ID)
	if err != nil {
		return nil, translate(err, "commissions")
	}
	if commission == nil {
		return nil, dErrors.New(dErrors.CodeNotFound,
			fmt.Sprintf("no commission with name %q found in state %q", req.CommissionName, state.Name))
	}

	judgeID := ""
	if req.Type == models.SearchJudge {
		judgeID, err = s.resolveJudge(ctx, commission.ID, req.Query)
		if err != nil {
			return nil, translate(err, "judges")
		}
	}

	payload := s.payload(ctx, commission.ID, req, judgeID)
	data, err := s.fetcher.Fetch(ctx, http.MethodPost, upstream.CaseSearchPath(), payload)
	if err != nil {
		return nil, translate(err, "cases")
	}
	records, err := upstream.DecodeList[upstream.CaseRecord](data)
	if err != nil {
		return nil, translate(err, "cases")
	}

	cases := make([]models.Case, 0, len(records))
	for _, r := range records {
		cases = append(cases, toCase(r))
	}
	return cases, nil
}

// resolveJudge returns the id of the first active judge whose name contains
// query, ignoring case. No match yields "" so the search still runs.
func (s *Service) resolveJudge(ctx context.Context, commissionID int, query string) (string, error) {
	data, err := s.fetcher.Fetch(ctx, http.MethodPost, upstream.JudgesPath(commissionID), nil)
	if err != nil {
		return "", err
	}
	judges, err := upstream.DecodeList[upstream.JudgeRecord](data)
	if err != nil {
		return "", err
	}
	for _, j := range judges {
		if pstrings.ContainsFold(j.JudgesNameEn, query) {
			return j.JudgeID.String(), nil
		}
	}

	s.logger.InfoContext(ctx, "no judge matched query",
		"request_id", requestID(ctx),
		"commission_id", commissionID,
		"query", query,
	)
	return "", nil
}

func (s *Service) payload(ctx context.Context, commissionID int, req SearchRequest, judgeID string) upstream.SearchPayload {
	return upstream.SearchPayload{
		CommissionID:    commissionID,
		OrderType:       orderType,
		DateRequestType: dateRequestType,
		SearchType:      req.Type.Code(),
		SearchTypeValue: req.Type.Value(req.Query),
		FromDate:        s.fromDate.Format(dateLayout),
		ToDate:          requestcontext.Now(ctx).Format(dateLayout),
		JudgeID:         judgeID,
	}
}

func toCase(r upstream.CaseRecord) models.Case {
	return models.Case{
		CaseNumber:          r.CaseNumber,
		Stage:               r.CaseStageName,
		FilingDate:          r.CaseFilingDate,
		Complainant:         r.ComplainantName,
		ComplainantAdvocate: r.ComplainantAdvocateName,
		Respondent:          r.RespondentName,
		RespondentAdvocate:  r.RespondentAdvocateName,
		DocumentLink:        "",
	}
}
