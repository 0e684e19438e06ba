package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"lexi/internal/jagriti/handler/mocks"
	"lexi/internal/jagriti/models"
	"lexi/internal/jagriti/service"
	dErrors "lexi/pkg/domain-errors"
	"lexi/pkg/testutil"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

// =============================================================================
// Jagriti Handler Test Suite
// =============================================================================
// Justification for unit tests: request parsing and the mapping of service
// errors onto status codes and error envelopes live only in this layer.

type HandlerSuite struct {
	suite.Suite
	service *mocks.MockService
	router  chi.Router
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.T().Cleanup(ctrl.Finish)
	s.service = mocks.NewMockService(ctrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.router = chi.NewRouter()
	New(s.service, logger).Register(s.router)
}

func strPtr(v string) *string { return &v }

// =============================================================================
// Reference data
// =============================================================================

func (s *HandlerSuite) TestListStates() {
	s.service.EXPECT().States(gomock.Any()).
		Return([]models.State{{ID: 7, Name: "Delhi"}}, nil)

	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/states"))

	testutil.AssertStatusOK(s.T(), rr)
	resp := testutil.UnmarshalResponse[StatesResponse](s.T(), rr)
	s.Equal([]models.State{{ID: 7, Name: "Delhi"}}, resp.States)
}

func (s *HandlerSuite) TestListStatesUpstreamFailure() {
	s.service.EXPECT().States(gomock.Any()).
		Return(nil, dErrors.Wrap(errors.New("503"), dErrors.CodeFetch, "error fetching states from upstream"))

	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/states"))

	testutil.AssertStatusAndError(s.T(), rr, http.StatusBadGateway, "fetch_error")
}

func (s *HandlerSuite) TestLookupState() {
	s.Run("found", func() {
		s.service.EXPECT().StateByName(gomock.Any(), "Delhi").
			Return(&models.State{ID: 7, Name: "Delhi"}, nil)

		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/states/lookup?name=Delhi"))

		testutil.AssertStatusOK(s.T(), rr)
		testutil.AssertJSONContains(s.T(), rr, "id", float64(7))
	})

	s.Run("not found", func() {
		s.service.EXPECT().StateByName(gomock.Any(), "Atlantis").
			Return(nil, dErrors.New(dErrors.CodeNotFound, `no state found with name "Atlantis"`))

		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/states/lookup?name=Atlantis"))

		testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, "not_found")
		testutil.AssertErrorDescription(s.T(), rr, `no state found with name "Atlantis"`)
	})

	s.Run("missing name is rejected without a service call", func() {
		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/states/lookup?name=%20"))

		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "validation_error")
	})
}

func (s *HandlerSuite) TestGetState() {
	s.Run("found", func() {
		s.service.EXPECT().StateByID(gomock.Any(), 11).
			Return(&models.State{ID: 11, Name: "Maharashtra"}, nil)

		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/states/11"))

		testutil.AssertStatusOK(s.T(), rr)
		testutil.AssertJSONContains(s.T(), rr, "name", "Maharashtra")
	})

	s.Run("non-numeric id", func() {
		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/states/delhi"))

		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
	})
}

func (s *HandlerSuite) TestListCommissions() {
	s.Run("found", func() {
		s.service.EXPECT().Commissions(gomock.Any(), 7).
			Return([]models.Commission{{ID: 42, Name: "Central Delhi"}}, nil)

		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/states/7/commissions"))

		testutil.AssertStatusOK(s.T(), rr)
		resp := testutil.UnmarshalResponse[CommissionsResponse](s.T(), rr)
		s.Equal(7, resp.StateID)
		s.Equal([]models.Commission{{ID: 42, Name: "Central Delhi"}}, resp.Commissions)
	})

	s.Run("unknown state", func() {
		s.service.EXPECT().Commissions(gomock.Any(), 999).
			Return(nil, dErrors.New(dErrors.CodeNotFound, "no state found with this ID"))

		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/states/999/commissions"))

		testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, "not_found")
	})
}

func (s *HandlerSuite) TestLookupCommission() {
	s.service.EXPECT().CommissionByName(gomock.Any(), "Central Delhi", 7).
		Return(&models.Commission{ID: 42, Name: "Central Delhi"}, nil)

	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/states/7/commissions/lookup?name=Central+Delhi"))

	testutil.AssertStatusOK(s.T(), rr)
	testutil.AssertJSONContains(s.T(), rr, "id", float64(42))
}

// =============================================================================
// Case search
// =============================================================================

func (s *HandlerSuite) TestSearch() {
	s.Run("valid request is forwarded with a parsed type", func() {
		s.service.EXPECT().Search(gomock.Any(), service.SearchRequest{
			StateName:      "Delhi",
			CommissionName: "Central Delhi",
			Query:          "ORD/2024/001",
			Type:           models.SearchCaseNumber,
		}).Return([]models.Case{{
			CaseNumber:  strPtr("ORD/2024/001"),
			Stage:       strPtr("Admission"),
			FilingDate:  strPtr("2024-02-10"),
			Complainant: strPtr("A. Kumar"),
		}}, nil)

		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/cases/search", map[string]string{
			"state":       " Delhi ",
			"commission":  "Central Delhi",
			"query":       "ORD/2024/001",
			"search_type": "CASE_NUMBER",
		})
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatusOK(s.T(), rr)
		resp := testutil.UnmarshalResponse[SearchResponse](s.T(), rr)
		s.Equal(1, resp.Count)
		s.Require().Len(resp.Cases, 1)
		s.Equal("A. Kumar", *resp.Cases[0].Complainant)
		s.Nil(resp.Cases[0].Respondent)
		s.Empty(resp.Cases[0].DocumentLink)
	})

	s.Run("empty result serializes as an empty list", func() {
		s.service.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, nil)

		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/cases/search", map[string]string{
			"state": "Delhi", "commission": "Central Delhi", "query": "sharma", "search_type": "judge",
		})
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatusOK(s.T(), rr)
		s.JSONEq(`{"count":0,"cases":[]}`, rr.Body.String())
	})

	s.Run("service not found maps to 404", func() {
		s.service.EXPECT().Search(gomock.Any(), gomock.Any()).
			Return(nil, dErrors.New(dErrors.CodeNotFound, `no state found with name "Unknown State"`))

		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/cases/search", map[string]string{
			"state": "Unknown State", "commission": "X", "query": "x", "search_type": "complainant",
		})
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, "not_found")
	})

	s.Run("upstream failure maps to 502", func() {
		s.service.EXPECT().Search(gomock.Any(), gomock.Any()).
			Return(nil, dErrors.Wrap(errors.New("timeout"), dErrors.CodeFetch, "error fetching cases from upstream"))

		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/cases/search", map[string]string{
			"state": "Delhi", "commission": "Central Delhi", "query": "x", "search_type": "respondent",
		})
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadGateway, "fetch_error")
		testutil.AssertErrorDescription(s.T(), rr, "error fetching cases from upstream")
	})
}

func (s *HandlerSuite) TestSearchRejectsInvalidBodies() {
	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"malformed json", `{"state":`, http.StatusBadRequest, "bad_request"},
		{"missing state", `{"commission":"C","query":"q","search_type":"judge"}`, http.StatusBadRequest, "validation_error"},
		{"missing query", `{"state":"S","commission":"C","query":"  ","search_type":"judge"}`, http.StatusBadRequest, "validation_error"},
		{"missing search type", `{"state":"S","commission":"C","query":"q"}`, http.StatusBadRequest, "validation_error"},
		{"unknown search type", `{"state":"S","commission":"C","query":"q","search_type":"lawyer"}`, http.StatusBadRequest, "validation_error"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			req := testutil.NewRequestWithBody(s.T(), http.MethodPost, "/cases/search", tt.body)
			rr := testutil.DoRequest(s.router, req)
			testutil.AssertStatusAndError(s.T(), rr, tt.status, tt.code)
		})
	}
}

func (s *HandlerSuite) TestSearchTypes() {
	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/search-types"))

	testutil.AssertStatusOK(s.T(), rr)
	resp := testutil.UnmarshalResponse[[]SearchTypeResponse](s.T(), rr)
	s.Require().Len(*resp, 7)
	s.Equal(SearchTypeResponse{Name: "case_number", Code: 1, Value: "raw_query"}, (*resp)[0])
	s.Equal(SearchTypeResponse{Name: "judge", Code: 7, Value: "self_code"}, (*resp)[6])
}

// =============================================================================
// Request validation
// =============================================================================

func TestSearchRequestValidate(t *testing.T) {
	req := &SearchRequest{State: " Delhi ", Commission: "Central Delhi ", Query: " x ", SearchType: " Industry_Type"}
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := req.ToService()
	want := service.SearchRequest{StateName: "Delhi", CommissionName: "Central Delhi", Query: "x", Type: models.SearchIndustryType}
	if got != want {
		t.Fatalf("ToService() = %+v, want %+v", got, want)
	}
	if req.ParsedType() != models.SearchIndustryType || req.SearchType != "industry_type" {
		t.Fatalf("unexpected parsed type %v / %q", req.ParsedType(), req.SearchType)
	}

	var nilReq *SearchRequest
	if !dErrors.HasCode(nilReq.Validate(), dErrors.CodeBadRequest) {
		t.Fatal("nil request should be a bad request")
	}

	long := &SearchRequest{State: "S", Commission: "C", Query: string(make([]byte, maxQueryLength+1)), SearchType: "judge"}
	if !dErrors.HasCode(long.Validate(), dErrors.CodeValidation) {
		t.Fatal("oversized query should fail validation")
	}
}
