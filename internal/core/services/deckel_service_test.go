package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/zapfwerk/deckelkasse/internal/apperrors"
	"github.com/zapfwerk/deckelkasse/internal/core/domain"
	portssvc "github.com/zapfwerk/deckelkasse/internal/core/ports/services"
	"github.com/zapfwerk/deckelkasse/internal/core/services"
	"github.com/zapfwerk/deckelkasse/internal/dto"
)

type DeckelServiceTestSuite struct {
	suite.Suite
	mockRepo *MockDeckelRepository
	service  portssvc.DeckelSvcFacade
}

func (s *DeckelServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockDeckelRepository)
	s.service = services.NewDeckelService(s.mockRepo)
}

func TestDeckelServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DeckelServiceTestSuite))
}

func (s *DeckelServiceTestSuite) TestOpenTab() {
	ctx := context.Background()
	s.mockRepo.On("SaveTab", ctx, mock.MatchedBy(func(tab domain.Deckel) bool {
		return tab.GuestName == "Stammtisch 3" && tab.Status == domain.TabOpen && tab.TabID != ""
	})).Return(nil).Once()

	tab, err := s.service.OpenTab(ctx, dto.OpenTabRequest{GuestName: "Stammtisch 3", TableID: "T3"}, "user-1")

	s.Require().NoError(err)
	s.Require().NotNil(tab)
	s.Equal(domain.TabOpen, tab.Status)
	s.Equal("T3", tab.TableID)
	s.NotEmpty(tab.TabID)
	s.Equal("user-1", tab.CreatedBy)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *DeckelServiceTestSuite) TestAppendTransaction() {
	ctx := context.Background()
	tabID := "tab-1"
	s.mockRepo.On("FindTabByID", ctx, tabID).Return(&domain.Deckel{TabID: tabID, Status: domain.TabOpen}, nil).Once()
	s.mockRepo.On("AppendTransaction", ctx, mock.MatchedBy(func(txn domain.LedgerTransaction) bool {
		return txn.TabID == tabID && txn.TransactionID != "" && txn.Description == "Stubbi"
	})).Return(nil).Once()

	txn, err := s.service.AppendTransaction(ctx, tabID, dto.LedgerTransactionRequest{
		Description: "Stubbi",
		Count:       1,
		Sum:         decimal.RequireFromString("-1.00"),
	}, "user-1")

	s.Require().NoError(err)
	s.Require().NotNil(txn)
	s.Equal(tabID, txn.TabID)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *DeckelServiceTestSuite) TestAppendTransaction_SettledTab() {
	ctx := context.Background()
	tabID := "tab-1"
	s.mockRepo.On("FindTabByID", ctx, tabID).Return(&domain.Deckel{TabID: tabID, Status: domain.TabSettled}, nil).Once()

	txn, err := s.service.AppendTransaction(ctx, tabID, dto.LedgerTransactionRequest{
		Description: "Stubbi",
		Sum:         decimal.RequireFromString("-1.00"),
	}, "user-1")

	s.Require().Error(err)
	s.Nil(txn)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRepo.AssertNotCalled(s.T(), "AppendTransaction", mock.Anything, mock.Anything)
}

func (s *DeckelServiceTestSuite) TestListOpenTabs_NilBecomesEmpty() {
	ctx := context.Background()
	s.mockRepo.On("ListOpenTabs", ctx).Return(nil, nil).Once()

	tabs, err := s.service.ListOpenTabs(ctx)

	s.Require().NoError(err)
	s.NotNil(tabs)
	s.Empty(tabs)
}
