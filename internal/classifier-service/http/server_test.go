package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/radieske/sports-ledger/internal/classifier"
	"github.com/radieske/sports-ledger/internal/classifier-service/cache"
	"github.com/radieske/sports-ledger/internal/classifier-service/dto"
	"github.com/radieske/sports-ledger/internal/classifier/sport"
	"github.com/radieske/sports-ledger/internal/classifier/sportsdb"
)

type mapLookup map[string]sport.Category

func (m mapLookup) LookupTeamSport(_ context.Context, team string) (sport.Category, bool) {
	s, ok := m[team]
	return s, ok
}

// blockingLookup só responde quando o contexto termina
type blockingLookup struct {
	calls int
}

func (b *blockingLookup) LookupTeamSport(ctx context.Context, _ string) (sport.Category, bool) {
	b.calls++
	<-ctx.Done()
	return sport.Other, false
}

type stubSearcher struct {
	calls   int
	teams   []sportsdb.TeamResult
	err     error
	lastArg [2]string
}

func (s *stubSearcher) SearchTeams(_ context.Context, query, sportFilter string) ([]sportsdb.TeamResult, error) {
	s.calls++
	s.lastArg = [2]string{query, sportFilter}
	return s.teams, s.err
}

type APITestSuite struct {
	suite.Suite
	mr       *miniredis.Miniredis
	searcher *stubSearcher
	api      *API
	handler  http.Handler
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}

func (s *APITestSuite) SetupTest() {
	s.mr = miniredis.RunT(s.T())
	s.searcher = &stubSearcher{}
	s.api = &API{
		Classifier: classifier.New(mapLookup{"Lakers": sport.Basketball}, nil),
		Teams:      s.searcher,
		Cache:      cache.New(redis.NewClient(&redis.Options{Addr: s.mr.Addr()}), cache.DefaultTTL),
		Log:        zap.NewNop(),
	}
	s.handler = s.api.Router()
}

func (s *APITestSuite) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *APITestSuite) decode(rec *httptest.ResponseRecorder, dst any) {
	s.Require().Equal("application/json", rec.Header().Get("Content-Type"))
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), dst))
}

func (s *APITestSuite) TestClassify() {
	testCases := []struct {
		target      string
		sport       string
		source      string
		team        string
		pass        string
		description string
	}{
		{"/v1/classify?game=Lakers+-+UnknownTeamXYZ", "Basketball", "remote", "Lakers", "", "remote short circuit"},
		{"/v1/classify?game=Djokovic+v+Alcaraz", "Tennis", "local", "", "entity", "local fallback"},
		{"/v1/classify?game=Smith+v+Jones", "Tennis", "local", "", "tennis_pattern", "tennis heuristic"},
		{"/v1/classify?game=Random+Event+Name", "Other", "local", "", "default", "nothing matches"},
		{"/v1/classify?game=", "Other", "local", "", "empty", "empty description"},
		{"/v1/classify?game=Bruins+-+Canadiens", "Ice Hockey", "local", "", "entity", "display value with space"},
	}
	for _, tc := range testCases {
		s.Run(tc.description, func() {
			rec := s.do(http.MethodGet, tc.target, "")
			s.Equal(http.StatusOK, rec.Code)

			var got dto.Classification
			s.decode(rec, &got)
			s.Equal(tc.sport, got.Sport)
			s.Equal(tc.source, got.Source)
			s.Equal(tc.team, got.Team)
			s.Equal(tc.pass, got.Pass)
		})
	}
}

func (s *APITestSuite) TestClassifyRequiresGame() {
	for _, target := range []string{"/v1/classify", "/v1/classify/local"} {
		rec := s.do(http.MethodGet, target, "")
		s.Equal(http.StatusBadRequest, rec.Code, target)

		var got dto.ErrorResponse
		s.decode(rec, &got)
		s.Equal("game is required", got.Error)
	}
}

func (s *APITestSuite) TestClassifyLocalIgnoresProvider() {
	rec := s.do(http.MethodGet, "/v1/classify/local?game=Lakers+-+Somebody", "")
	s.Equal(http.StatusOK, rec.Code)

	var got dto.Classification
	s.decode(rec, &got)
	s.Equal("local", got.Source)
	s.Equal("Basketball", got.Sport)
	s.Equal("entity", got.Pass)
	s.Equal("lakers", got.Term)
}

func (s *APITestSuite) TestClassifyBatchKeepsOrder() {
	body := `{"games":["Random Event Name","Lakers - UnknownTeamXYZ","NBA Finals Game 7",""]}`
	rec := s.do(http.MethodPost, "/v1/classify/batch", body)
	s.Equal(http.StatusOK, rec.Code)

	var got dto.BatchClassifyResponse
	s.decode(rec, &got)
	s.Require().Len(got.Results, 4)

	sports := make([]string, 0, 4)
	for _, r := range got.Results {
		sports = append(sports, r.Sport)
	}
	s.Equal([]string{"Other", "Basketball", "Basketball", "Other"}, sports)
	s.Equal("remote", got.Results[1].Source)
	s.Equal("NBA Finals Game 7", got.Results[2].Game)
}

func (s *APITestSuite) TestClassifyBatchValidation() {
	rec := s.do(http.MethodPost, "/v1/classify/batch", `{"games":`)
	s.Equal(http.StatusBadRequest, rec.Code)

	games := make([]string, dto.MaxBatchSize+1)
	for i := range games {
		games[i] = fmt.Sprintf("game %d", i)
	}
	b, _ := json.Marshal(dto.BatchClassifyRequest{Games: games})
	rec = s.do(http.MethodPost, "/v1/classify/batch", string(b))
	s.Equal(http.StatusRequestEntityTooLarge, rec.Code)

	rec = s.do(http.MethodPost, "/v1/classify/batch", `{"games":[]}`)
	s.Equal(http.StatusOK, rec.Code)
	var got dto.BatchClassifyResponse
	s.decode(rec, &got)
	s.NotNil(got.Results)
	s.Empty(got.Results)
}

func (s *APITestSuite) TestClassifyBatchBodyLimit() {
	body := `{"games":["` + strings.Repeat("a", dto.MaxBatchBodyBytes) + `"]}`
	rec := s.do(http.MethodPost, "/v1/classify/batch", body)
	s.Equal(http.StatusRequestEntityTooLarge, rec.Code)

	var got dto.ErrorResponse
	s.decode(rec, &got)
	s.Equal("request body too large", got.Error)
}

func (s *APITestSuite) TestClassifyBatchDeadlineFallsBackToLocal() {
	lookup := &blockingLookup{}
	s.api.Classifier = classifier.New(lookup, nil)
	s.api.BatchTimeout = 50 * time.Millisecond
	s.handler = s.api.Router()

	start := time.Now()
	rec := s.do(http.MethodPost, "/v1/classify/batch", `{"games":["Lakers - Somebody","Smith v Jones","Random Event Name"]}`)
	s.Less(time.Since(start), 2*time.Second)
	s.Equal(http.StatusOK, rec.Code)

	var got dto.BatchClassifyResponse
	s.decode(rec, &got)
	s.Require().Len(got.Results, 3)
	for i, want := range []string{"Basketball", "Tennis", "Other"} {
		s.Equal(want, got.Results[i].Sport)
		s.Equal(classifier.SourceLocal, got.Results[i].Source)
	}
	s.Equal(4, lookup.calls, "both teams of each two-team description are tried")
}

func (s *APITestSuite) TestSearchTeamsCachesResults() {
	s.searcher.teams = []sportsdb.TeamResult{
		{TeamID: "1", TeamName: "Arsenal", Sport: "soccer", League: "English Premier League"},
	}

	for i := 0; i < 2; i++ {
		rec := s.do(http.MethodGet, "/v1/teams/search?query=Arsenal&sport=Soccer", "")
		s.Equal(http.StatusOK, rec.Code)

		var got dto.TeamSearchResponse
		s.decode(rec, &got)
		s.Equal("Arsenal", got.Query)
		s.Equal("Soccer", got.Sport)
		s.Require().Len(got.Teams, 1)
		s.Equal("English Premier League", got.Teams[0].League)
	}
	s.Equal(1, s.searcher.calls)
	s.Equal([2]string{"Arsenal", "Soccer"}, s.searcher.lastArg)
	s.True(s.mr.Exists("teams:search:soccer:arsenal"))
}

func (s *APITestSuite) TestSearchTeamsShortQuery() {
	rec := s.do(http.MethodGet, "/v1/teams/search?query=+a+", "")
	s.Equal(http.StatusOK, rec.Code)

	var got dto.TeamSearchResponse
	s.decode(rec, &got)
	s.NotNil(got.Teams)
	s.Empty(got.Teams)
	s.Equal(0, s.searcher.calls)
}

func (s *APITestSuite) TestSearchTeamsProviderFailureIsEmptyAndNotCached() {
	s.searcher.err = errors.New("sportsdb: unexpected http status: 502")

	rec := s.do(http.MethodGet, "/v1/teams/search?query=arsenal", "")
	s.Equal(http.StatusOK, rec.Code)
	var got dto.TeamSearchResponse
	s.decode(rec, &got)
	s.Empty(got.Teams)
	s.False(s.mr.Exists("teams:search:arsenal"))

	s.searcher.err = nil
	s.searcher.teams = []sportsdb.TeamResult{{TeamID: "1", TeamName: "Arsenal", Sport: "soccer"}}
	rec = s.do(http.MethodGet, "/v1/teams/search?query=arsenal", "")
	s.decode(rec, &got)
	s.Len(got.Teams, 1)
	s.Equal(2, s.searcher.calls)
}

func (s *APITestSuite) TestSearchTeamsWithoutCache() {
	s.api.Cache = nil
	s.handler = s.api.Router()
	s.searcher.teams = []sportsdb.TeamResult{{TeamID: "9", TeamName: "Boston Bruins", Sport: "ice hockey"}}

	s.do(http.MethodGet, "/v1/teams/search?query=bruins", "")
	s.do(http.MethodGet, "/v1/teams/search?query=bruins", "")
	s.Equal(2, s.searcher.calls)
}

func (s *APITestSuite) TestSearchTeamsCacheDownStillAnswers() {
	s.mr.Close()
	s.searcher.teams = []sportsdb.TeamResult{{TeamID: "9", TeamName: "Boston Bruins", Sport: "ice hockey"}}

	rec := s.do(http.MethodGet, "/v1/teams/search?query=bruins", "")
	s.Equal(http.StatusOK, rec.Code)
	var got dto.TeamSearchResponse
	s.decode(rec, &got)
	s.Len(got.Teams, 1)
}
