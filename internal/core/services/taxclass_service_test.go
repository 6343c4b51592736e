package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/zapfwerk/deckelkasse/internal/apperrors"
	portssvc "github.com/zapfwerk/deckelkasse/internal/core/ports/services"
	"github.com/zapfwerk/deckelkasse/internal/core/services"
	"github.com/zapfwerk/deckelkasse/internal/dto"
)

type MockTaxClassRepository struct {
	mock.Mock
}

func (m *MockTaxClassRepository) GetTaxRates(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	var rates map[string]int
	if args.Get(0) != nil {
		rates = args.Get(0).(map[string]int)
	}
	return rates, args.Error(1)
}

func (m *MockTaxClassRepository) SaveTaxRate(ctx context.Context, description string, rate int) error {
	args := m.Called(ctx, description, rate)
	return args.Error(0)
}

type TaxClassServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTaxClassRepository
	service  portssvc.TaxClassSvcFacade
}

func (s *TaxClassServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockTaxClassRepository)
	s.service = services.NewTaxClassService(s.mockRepo)
}

func TestTaxClassServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaxClassServiceTestSuite))
}

func (s *TaxClassServiceTestSuite) TestGetTaxRates_CachesSecondRead() {
	ctx := context.Background()
	rates := map[string]int{"Stubbi": 19, "Brezel": 7}
	s.mockRepo.On("GetTaxRates", ctx).Return(rates, nil).Once()

	first, err := s.service.GetTaxRates(ctx)
	s.Require().NoError(err)
	s.Equal(rates, first)

	// Second read is served from cache; the repository expectation is Once.
	second, err := s.service.GetTaxRates(ctx)
	s.Require().NoError(err)
	s.Equal(rates, second)

	s.mockRepo.AssertExpectations(s.T())
}

func (s *TaxClassServiceTestSuite) TestGetTaxRates_EmptyTableYieldsEmptyMap() {
	ctx := context.Background()
	s.mockRepo.On("GetTaxRates", ctx).Return(nil, nil).Once()

	rates, err := s.service.GetTaxRates(ctx)
	s.Require().NoError(err)
	s.NotNil(rates)
	s.Empty(rates)
}

func (s *TaxClassServiceTestSuite) TestSetTaxRate_InvalidatesCache() {
	ctx := context.Background()
	s.mockRepo.On("GetTaxRates", ctx).Return(map[string]int{"Stubbi": 19}, nil).Twice()
	s.mockRepo.On("SaveTaxRate", ctx, "Brezel", 7).Return(nil).Once()

	_, err := s.service.GetTaxRates(ctx)
	s.Require().NoError(err)

	err = s.service.SetTaxRate(ctx, dto.SetTaxRateRequest{Description: "Brezel", Rate: 7}, "user-1")
	s.Require().NoError(err)

	// The write dropped the cached mapping, so this read hits the repo again.
	_, err = s.service.GetTaxRates(ctx)
	s.Require().NoError(err)

	s.mockRepo.AssertExpectations(s.T())
}

func (s *TaxClassServiceTestSuite) TestSetTaxRate_RejectsUnsupportedRate() {
	ctx := context.Background()

	err := s.service.SetTaxRate(ctx, dto.SetTaxRateRequest{Description: "Brezel", Rate: 16}, "user-1")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRepo.AssertNotCalled(s.T(), "SaveTaxRate", mock.Anything, mock.Anything, mock.Anything)
}
