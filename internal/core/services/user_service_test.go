package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/zapfwerk/deckelkasse/internal/apperrors"
	"github.com/zapfwerk/deckelkasse/internal/core/domain"
	portssvc "github.com/zapfwerk/deckelkasse/internal/core/ports/services"
	"github.com/zapfwerk/deckelkasse/internal/core/services"
	"github.com/zapfwerk/deckelkasse/internal/dto"
	"github.com/zapfwerk/deckelkasse/internal/utils"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (s *UserServiceTestSuite) SetupTest() {
	s.mockUserRepo = new(MockUserRepository)
	s.service = services.NewUserService(s.mockUserRepo)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Username: "thekla", Password: "correct-horse-battery", Name: "Thekla"}

	s.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Username == "thekla" && user.PasswordHash != req.Password && user.UserID != ""
	})).Return(nil).Once()

	created, err := s.service.CreateUser(ctx, req, "admin-1")

	s.Require().NoError(err)
	s.Require().NotNil(created)
	s.Equal("thekla", created.Username)
	s.Equal("Thekla", created.Name)
	s.NotEmpty(created.UserID)
	s.NotEqual(req.Password, created.PasswordHash)
	s.Equal("admin-1", created.CreatedBy)
	s.mockUserRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestCreateUser_DuplicateUsername() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Username: "thekla", Password: "correct-horse-battery", Name: "Thekla"}

	s.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()

	created, err := s.service.CreateUser(ctx, req, "admin-1")

	s.Require().Error(err)
	s.Nil(created)
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse-battery")
	s.Require().NoError(err)

	stored := &domain.User{UserID: "user-1", Username: "thekla", PasswordHash: hash}
	s.mockUserRepo.On("FindUserByUsername", ctx, "thekla").Return(stored, nil).Once()

	user, err := s.service.Authenticate(ctx, "thekla", "correct-horse-battery")

	s.Require().NoError(err)
	s.Require().NotNil(user)
	s.Equal("user-1", user.UserID)
}

func (s *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse-battery")
	s.Require().NoError(err)

	stored := &domain.User{UserID: "user-1", Username: "thekla", PasswordHash: hash}
	s.mockUserRepo.On("FindUserByUsername", ctx, "thekla").Return(stored, nil).Once()

	user, err := s.service.Authenticate(ctx, "thekla", "wrong")

	s.Require().Error(err)
	s.Nil(user)
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *UserServiceTestSuite) TestAuthenticate_UnknownUserSameError() {
	ctx := context.Background()
	s.mockUserRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	user, err := s.service.Authenticate(ctx, "ghost", "whatever")

	s.Require().Error(err)
	s.Nil(user)
	// Unknown username and wrong password are indistinguishable to callers.
	s.ErrorIs(err, apperrors.ErrUnauthorized)
	s.NotErrorIs(err, apperrors.ErrNotFound)
}
