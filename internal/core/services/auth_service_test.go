package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nairabooks/naira_books_app/internal/apperrors"
	"github.com/nairabooks/naira_books_app/internal/core/domain"
	"github.com/nairabooks/naira_books_app/internal/core/services"
	"github.com/nairabooks/naira_books_app/internal/dto"
	"github.com/nairabooks/naira_books_app/internal/utils"
	"github.com/nairabooks/naira_books_app/pkg/config"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AuthServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      *services.AuthService
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	cfg := &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "naira-books-app",
	}
	suite.service = services.NewAuthService(cfg, suite.mockUserRepo)
}

func (suite *AuthServiceTestSuite) TestRegister_HashesPassword() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "ngozi@example.com").Return(nil, apperrors.ErrNotFound).Once()

	var saved domain.User
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		saved = u
		return true
	})).Return(nil).Once()

	req := dto.RegisterUserRequest{Name: "Ngozi Eze", Email: "ngozi@example.com", Password: "correct horse"}
	user, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.NotEqual("correct horse", saved.PasswordHash)
	suite.True(utils.CheckPasswordHash("correct horse", saved.PasswordHash))
}

func (suite *AuthServiceTestSuite) TestRegister_RejectsDuplicateEmail() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "taken@example.com").Return(&domain.User{
		UserID: uuid.NewString(),
		Email:  "taken@example.com",
	}, nil).Once()

	req := dto.RegisterUserRequest{Name: "Second Claimant", Email: "taken@example.com", Password: "irrelevant1"}
	_, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestLogin_IssuesTokenForValidCredentials() {
	ctx := context.Background()
	hash, err := utils.HashPassword("s3cret-pass")
	suite.Require().NoError(err)

	stored := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "ngozi@example.com",
		PasswordHash: hash,
	}
	suite.mockUserRepo.On("FindUserByEmail", ctx, "ngozi@example.com").Return(stored, nil).Once()

	token, user, err := suite.service.Login(ctx, dto.LoginRequest{Email: "ngozi@example.com", Password: "s3cret-pass"})

	suite.Require().NoError(err)
	suite.NotEmpty(token)
	suite.Equal(stored.UserID, user.UserID)

	claims, err := utils.ParseAndValidateJWT(token, "test-secret")
	suite.Require().NoError(err)
	suite.Equal(stored.UserID, claims.Subject)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPasswordAndUnknownEmailLookAlike() {
	ctx := context.Background()
	hash, err := utils.HashPassword("the-real-one")
	suite.Require().NoError(err)

	suite.mockUserRepo.On("FindUserByEmail", ctx, "ngozi@example.com").Return(&domain.User{
		UserID:       uuid.NewString(),
		Email:        "ngozi@example.com",
		PasswordHash: hash,
	}, nil).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	_, _, badPassErr := suite.service.Login(ctx, dto.LoginRequest{Email: "ngozi@example.com", Password: "a guess"})
	_, _, badEmailErr := suite.service.Login(ctx, dto.LoginRequest{Email: "nobody@example.com", Password: "a guess"})

	suite.ErrorIs(badPassErr, apperrors.ErrForbidden)
	suite.ErrorIs(badEmailErr, apperrors.ErrForbidden)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
