package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"dealscout/internal/config"
	"dealscout/internal/domain"
	"dealscout/internal/service/mocks"
	"dealscout/internal/valuation"
)

type ValuationServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	cache      *mocks.MockValuationCache
	pricing    *mocks.MockPricingClient
	generative *mocks.MockGenerativeClient
	listings   *mocks.MockListingStore

	service *ValuationService
	logger  *slog.Logger
}

func (s *ValuationServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.cache = mocks.NewMockValuationCache(s.ctrl)
	s.pricing = mocks.NewMockPricingClient(s.ctrl)
	s.generative = mocks.NewMockGenerativeClient(s.ctrl)
	s.listings = mocks.NewMockListingStore(s.ctrl)

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	cal, err := valuation.LoadCalibration("")
	s.Require().NoError(err)

	compsCfg := config.CompsConfig{YearBand: 2, MileageBand: 30000, MaxComps: 50, MinComps: 3}
	comps := NewCompsEngine(s.listings, compsCfg, s.logger)

	s.service = NewValuationService(
		s.cache,
		s.pricing,
		s.generative,
		valuation.NewEstimator(cal),
		comps,
		7*24*time.Hour,
		3,
		s.logger,
	)
}

func (s *ValuationServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestValuationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ValuationServiceTestSuite))
}

func (s *ValuationServiceTestSuite) request() domain.ValuationRequest {
	return domain.ValuationRequest{
		Make:      "toyota",
		Model:     "camry",
		Year:      2018,
		Mileage:   60000,
		Condition: "good",
	}
}

func (s *ValuationServiceTestSuite) TestCacheHitShortCircuits() {
	ctx := context.Background()
	now := time.Now()

	cached := &domain.ValuationEstimate{
		Make:           "toyota",
		Model:          "camry",
		Year:           2018,
		EstimatedValue: 15000,
		LowValue:       12300,
		HighValue:      17250,
		FetchedAt:      now.Add(-time.Hour),
		ExpiresAt:      now.Add(6 * 24 * time.Hour),
	}

	// Neither the pricing API nor the cache write may be touched on a hit.
	s.cache.EXPECT().Get(ctx, "toyota", "camry", 2018, "").Return(cached, nil)

	est := s.service.GetValuation(ctx, s.request())

	s.Equal(cached.EstimatedValue, est.EstimatedValue)
	s.Equal(cached.LowValue, est.LowValue)
	s.Equal(cached.HighValue, est.HighValue)
	s.Equal(domain.SourceCache, est.Source)
}

func (s *ValuationServiceTestSuite) TestCacheMissUsesPricingAPI() {
	ctx := context.Background()
	req := s.request()

	s.cache.EXPECT().Get(ctx, "toyota", "camry", 2018, "").Return(nil, nil)
	s.pricing.EXPECT().FetchValuation(ctx, req).Return(&domain.ValuationEstimate{
		EstimatedValue: 16000,
		LowValue:       14000,
		HighValue:      18000,
	}, nil)
	s.cache.EXPECT().Insert(ctx, gomock.Any()).Return(nil)

	est := s.service.GetValuation(ctx, req)

	s.Equal(16000.0, est.EstimatedValue)
	s.Equal(domain.SourcePricingAPI, est.Source)
	s.Equal("toyota", est.Make)
	s.WithinDuration(est.FetchedAt.Add(7*24*time.Hour), est.ExpiresAt, time.Second)
}

func (s *ValuationServiceTestSuite) TestPricingErrorFallsBackToModel() {
	ctx := context.Background()
	req := s.request()

	s.cache.EXPECT().Get(ctx, "toyota", "camry", 2018, "").Return(nil, nil)
	s.pricing.EXPECT().FetchValuation(ctx, req).Return(nil, errors.New("timeout"))
	s.cache.EXPECT().Insert(ctx, gomock.Any()).Return(nil)

	est := s.service.GetValuation(ctx, req)

	s.Equal(domain.SourceRetentionModel, est.Source)
	s.Greater(est.EstimatedValue, 0.0)
	s.LessOrEqual(est.LowValue, est.EstimatedValue)
	s.LessOrEqual(est.EstimatedValue, est.HighValue)
}

func (s *ValuationServiceTestSuite) TestMalformedAPIRangeFallsBackToModel() {
	ctx := context.Background()
	req := s.request()

	s.cache.EXPECT().Get(ctx, "toyota", "camry", 2018, "").Return(nil, nil)
	s.pricing.EXPECT().FetchValuation(ctx, req).Return(&domain.ValuationEstimate{
		EstimatedValue: 16000,
		LowValue:       17000, // low above point
		HighValue:      18000,
	}, nil)
	s.cache.EXPECT().Insert(ctx, gomock.Any()).Return(nil)

	est := s.service.GetValuation(ctx, req)

	s.Equal(domain.SourceRetentionModel, est.Source)
}

func (s *ValuationServiceTestSuite) TestCacheWriteFailureSwallowed() {
	ctx := context.Background()
	req := s.request()

	s.cache.EXPECT().Get(ctx, "toyota", "camry", 2018, "").Return(nil, nil)
	s.pricing.EXPECT().FetchValuation(ctx, req).Return(nil, errors.New("down"))
	s.cache.EXPECT().Insert(ctx, gomock.Any()).Return(errors.New("insert failed"))

	est := s.service.GetValuation(ctx, req)

	s.NotNil(est)
	s.Equal(domain.SourceRetentionModel, est.Source)
}

func (s *ValuationServiceTestSuite) TestCacheReadFailureSwallowed() {
	ctx := context.Background()
	req := s.request()

	s.cache.EXPECT().Get(ctx, "toyota", "camry", 2018, "").Return(nil, errors.New("read failed"))
	s.pricing.EXPECT().FetchValuation(ctx, req).Return(nil, errors.New("down"))
	s.cache.EXPECT().Insert(ctx, gomock.Any()).Return(nil)

	est := s.service.GetValuation(ctx, req)

	s.NotNil(est)
	s.Equal(domain.SourceRetentionModel, est.Source)
}

func (s *ValuationServiceTestSuite) TestVINScopedCacheLookup() {
	ctx := context.Background()
	req := s.request()
	req.VIN = "1hgcm82633a004352"

	s.cache.EXPECT().Get(ctx, "toyota", "camry", 2018, "1HGCM82633A004352").Return(nil, nil)
	s.pricing.EXPECT().FetchValuation(ctx, gomock.Any()).Return(nil, errors.New("down"))
	s.cache.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, est *domain.ValuationEstimate) error {
			s.Require().NotNil(est.VIN)
			s.Equal("1HGCM82633A004352", *est.VIN)
			return nil
		},
	)

	est := s.service.GetValuation(ctx, req)
	s.NotNil(est)
}

func (s *ValuationServiceTestSuite) TestResellabilityUsesCompsWhenEnough() {
	ctx := context.Background()

	comps := []domain.Comparable{
		{Price: 10000, Mileage: intPtr(60000), DaysOnMarket: 5, Year: 2018},
		{Price: 12000, Mileage: intPtr(62000), DaysOnMarket: 7, Year: 2018},
		{Price: 14000, Mileage: intPtr(58000), DaysOnMarket: 10, Year: 2019},
	}

	s.listings.EXPECT().
		GetSoldComparables(ctx, "toyota", "camry", 2016, 2020, 50).
		Return(comps, nil)

	// No generative call expected.
	score := s.service.GetResellability(ctx, "toyota", "camry", 2018, 15000, 60000)

	s.Equal(domain.ScoreSourceComparables, score.Source)
	s.Equal(3, score.CompCount)
}

func (s *ValuationServiceTestSuite) TestResellabilityGenerativeFallback() {
	ctx := context.Background()

	s.listings.EXPECT().
		GetSoldComparables(ctx, "rivian", "r1t", 2021, 2025, 50).
		Return(nil, nil)

	s.generative.EXPECT().
		EstimateResellability(ctx, "rivian", "r1t", 2023, 55000.0).
		Return(&domain.ResellabilityScore{
			MedianDaysToSell:   90, // out of range, must be clamped
			ResellabilityScore: 12,
			PricePercentile:    140,
		}, nil)

	score := s.service.GetResellability(ctx, "rivian", "r1t", 2023, 55000, 20000)

	s.Equal(domain.ScoreSourceGenerative, score.Source)
	s.Equal(60, score.MedianDaysToSell)
	s.Equal(10, score.ResellabilityScore)
	s.Equal(100, score.PricePercentile)
	s.Equal(0, score.CompCount)
}

func (s *ValuationServiceTestSuite) TestResellabilityGenerativeErrorYieldsNeutral() {
	ctx := context.Background()

	s.listings.EXPECT().
		GetSoldComparables(ctx, "rivian", "r1t", 2021, 2025, 50).
		Return(nil, nil)

	s.generative.EXPECT().
		EstimateResellability(ctx, "rivian", "r1t", 2023, 55000.0).
		Return(nil, errors.New("model unavailable"))

	score := s.service.GetResellability(ctx, "rivian", "r1t", 2023, 55000, 20000)

	s.Equal(domain.ScoreSourceGenerative, score.Source)
	s.Equal(14, score.MedianDaysToSell)
	s.Equal(50, score.PricePercentile)
	s.Equal(5, score.ResellabilityScore)
}
