package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"dealscout/internal/config"
	"dealscout/internal/domain"
	"dealscout/internal/service"
	"dealscout/internal/service/mocks"
	"dealscout/internal/valuation"
)

type ServerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	cache    *mocks.MockValuationCache
	listings *mocks.MockListingStore

	router http.Handler
}

func (s *ServerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.cache = mocks.NewMockValuationCache(s.ctrl)
	s.listings = mocks.NewMockListingStore(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	cal, err := valuation.LoadCalibration("")
	s.Require().NoError(err)

	comps := service.NewCompsEngine(s.listings, config.CompsConfig{
		YearBand: 2, MileageBand: 30000, MaxComps: 50, MinComps: 3,
	}, logger)

	// nil pricing and generative clients: the retention model and comps
	// engine answer everything.
	valuations := service.NewValuationService(
		s.cache, nil, nil,
		valuation.NewEstimator(cal), comps,
		7*24*time.Hour, 3, logger,
	)

	s.router = NewServer(valuations, logger).Routes()
}

func (s *ServerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) TestHealthz() {
	rec := s.get("/healthz")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"ok"`)
}

func (s *ServerTestSuite) TestValuationMissingParams() {
	cases := []string{
		"/api/valuations",
		"/api/valuations?make=toyota&model=camry&year=2018&mileage=60000", // no condition
		"/api/valuations?make=toyota&model=camry&condition=good&mileage=60000",
		"/api/valuations?make=toyota&model=camry&condition=good&year=notanumber&mileage=60000",
		"/api/valuations?make=toyota&condition=good&year=2018&mileage=60000",
	}

	for _, path := range cases {
		rec := s.get(path)
		s.Equal(http.StatusBadRequest, rec.Code, path)

		var body response
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.False(body.Success)
		s.NotEmpty(body.Error)
	}
}

func (s *ServerTestSuite) TestValuationHappyPath() {
	s.cache.EXPECT().Get(gomock.Any(), "toyota", "camry", 2018, "").Return(nil, nil)
	s.cache.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

	rec := s.get("/api/valuations?make=Toyota&model=Camry&year=2018&mileage=60000&condition=good")
	s.Equal(http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			EstimatedValue float64 `json:"estimated_value"`
			LowValue       float64 `json:"low_value"`
			HighValue      float64 `json:"high_value"`
			Source         string  `json:"source"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.True(body.Success)
	s.Equal(string(domain.SourceRetentionModel), body.Data.Source)
	s.Greater(body.Data.EstimatedValue, 0.0)
	s.LessOrEqual(body.Data.LowValue, body.Data.EstimatedValue)
	s.LessOrEqual(body.Data.EstimatedValue, body.Data.HighValue)
}

func (s *ServerTestSuite) TestValuationCacheHit() {
	now := time.Now()
	s.cache.EXPECT().Get(gomock.Any(), "honda", "civic", 2020, "").Return(&domain.ValuationEstimate{
		EstimatedValue: 18000,
		LowValue:       14760,
		HighValue:      20700,
		FetchedAt:      now.Add(-time.Hour),
		ExpiresAt:      now.Add(6 * 24 * time.Hour),
	}, nil)

	rec := s.get("/api/valuations?make=honda&model=civic&year=2020&mileage=30000&condition=excellent")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"source":"cache"`)
	s.Contains(rec.Body.String(), `"estimated_value":18000`)
}

func (s *ServerTestSuite) TestResellabilityMissingParams() {
	cases := []string{
		"/api/resellability",
		"/api/resellability?make=toyota&model=camry&year=2018", // no price
		"/api/resellability?make=toyota&model=camry&price=15000",
		"/api/resellability?model=camry&year=2018&price=15000",
	}

	for _, path := range cases {
		rec := s.get(path)
		s.Equal(http.StatusBadRequest, rec.Code, path)
	}
}

func (s *ServerTestSuite) TestResellabilityHappyPath() {
	comps := []domain.Comparable{
		{Price: 14000, Mileage: intPtr(55000), DaysOnMarket: 6, Year: 2018},
		{Price: 15500, Mileage: intPtr(62000), DaysOnMarket: 9, Year: 2018},
		{Price: 16000, Mileage: intPtr(48000), DaysOnMarket: 12, Year: 2019},
	}

	s.listings.EXPECT().
		GetSoldComparables(gomock.Any(), "toyota", "camry", 2016, 2020, 50).
		Return(comps, nil)

	rec := s.get("/api/resellability?make=toyota&model=camry&year=2018&price=15000&mileage=60000")
	s.Equal(http.StatusOK, rec.Code)

	var body struct {
		Success bool                      `json:"success"`
		Data    domain.ResellabilityScore `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.True(body.Success)
	s.Equal(3, body.Data.CompCount)
	s.Equal(domain.ScoreSourceComparables, body.Data.Source)
}

func (s *ServerTestSuite) TestResellabilityDefaultMileage() {
	s.listings.EXPECT().
		GetSoldComparables(gomock.Any(), "ford", "f-150", 2018, 2022, 50).
		Return(nil, nil)

	rec := s.get("/api/resellability?make=ford&model=f-150&year=2020&price=30000")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"comp_count":0`)
}

func intPtr(v int) *int { return &v }
