package services

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"expense-tracker/internal/config"
	"expense-tracker/internal/database"
	"expense-tracker/internal/dto"
	"expense-tracker/internal/models"
	"expense-tracker/internal/repositories"

	"github.com/stretchr/testify/suite"
)

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

// AuthServiceTestSuite exercises the auth flows against real repositories
// backed by an in-memory database.
type AuthServiceTestSuite struct {
	suite.Suite
	db           *database.DB
	userRepo     repositories.UserRepositoryInterface
	refreshRepo  repositories.RefreshTokenRepositoryInterface
	blacklist    repositories.BlacklistedTokenRepositoryInterface
	tokenService TokenServiceInterface
	service      AuthServiceInterface
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.userRepo = repositories.NewUserRepository(s.db.DB)
	s.refreshRepo = repositories.NewRefreshTokenRepository(s.db.DB)
	s.blacklist = repositories.NewBlacklistedTokenRepository(s.db.DB)

	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	s.tokenService = NewTokenService(&config.JWTConfig{
		PrivateKey:           privateKey,
		PublicKey:            publicKey,
		Issuer:               "test-issuer",
		AccessTokenDuration:  time.Hour,
		RefreshTokenDuration: 24 * time.Hour,
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.service = NewAuthService(
		s.userRepo,
		s.refreshRepo,
		s.blacklist,
		NewPasswordService(4, 8),
		s.tokenService,
		nil,
		logger,
	)
}

func (s *AuthServiceTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *AuthServiceTestSuite) register(email string) *models.User {
	user, err := s.service.Register(&dto.RegisterRequest{
		Email:    email,
		Password: "password123",
		Name:     "Test User",
	})
	s.Require().NoError(err)
	return user
}

func (s *AuthServiceTestSuite) TestRegister() {
	user := s.register("new@example.com")

	s.Equal("new@example.com", user.Email)
	s.Equal("Test User", user.Name)
	s.NotEqual("password123", user.PasswordHash)

	stored, err := s.userRepo.GetByEmail("new@example.com")
	s.NoError(err)
	s.Equal(user.ID, stored.ID)
}

func (s *AuthServiceTestSuite) TestRegister_NormalizesEmail() {
	user := s.register("  Mixed.Case@Example.COM  ")
	s.Equal("mixed.case@example.com", user.Email)
}

func (s *AuthServiceTestSuite) TestRegister_DuplicateEmail() {
	s.register("dup@example.com")

	_, err := s.service.Register(&dto.RegisterRequest{
		Email:    "DUP@example.com",
		Password: "password123",
		Name:     "Another User",
	})
	s.Equal(ErrUserAlreadyExists, err)
}

func (s *AuthServiceTestSuite) TestLogin() {
	user := s.register("login@example.com")

	tokens, err := s.service.Login(&dto.LoginRequest{
		Email:    "login@example.com",
		Password: "password123",
	})
	s.NoError(err)
	s.NotEmpty(tokens.AccessToken)
	s.NotEmpty(tokens.RefreshToken)
	s.Equal("Bearer", tokens.TokenType)

	claims, err := s.tokenService.ValidateAccessToken(tokens.AccessToken)
	s.NoError(err)
	s.Equal(user.ID.String(), claims.UserID)
}

func (s *AuthServiceTestSuite) TestLogin_UnknownEmail() {
	_, err := s.service.Login(&dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	s.Equal(ErrInvalidCredentials, err)
}

func (s *AuthServiceTestSuite) TestLogin_WrongPassword() {
	s.register("wrongpw@example.com")

	_, err := s.service.Login(&dto.LoginRequest{
		Email:    "wrongpw@example.com",
		Password: "not-the-password",
	})
	s.Equal(ErrInvalidCredentials, err)

	stored, err := s.userRepo.GetByEmail("wrongpw@example.com")
	s.NoError(err)
	s.Equal(1, stored.FailedLoginAttempts)
}

func (s *AuthServiceTestSuite) TestLogin_LockoutAfterRepeatedFailures() {
	s.register("lockout@example.com")

	for i := 0; i < models.MaxFailedLoginAttempts; i++ {
		_, err := s.service.Login(&dto.LoginRequest{
			Email:    "lockout@example.com",
			Password: "not-the-password",
		})
		s.Equal(ErrInvalidCredentials, err)
	}

	// Even the correct password is rejected while the account is locked
	_, err := s.service.Login(&dto.LoginRequest{
		Email:    "lockout@example.com",
		Password: "password123",
	})
	s.Equal(ErrAccountLocked, err)
}

func (s *AuthServiceTestSuite) TestLogin_SuccessResetsFailedAttempts() {
	s.register("reset@example.com")

	_, err := s.service.Login(&dto.LoginRequest{
		Email:    "reset@example.com",
		Password: "not-the-password",
	})
	s.Equal(ErrInvalidCredentials, err)

	_, err = s.service.Login(&dto.LoginRequest{
		Email:    "reset@example.com",
		Password: "password123",
	})
	s.NoError(err)

	stored, err := s.userRepo.GetByEmail("reset@example.com")
	s.NoError(err)
	s.Equal(0, stored.FailedLoginAttempts)
	s.NotNil(stored.LastLoginAt)
}

func (s *AuthServiceTestSuite) TestRefreshTokens_RotatesToken() {
	s.register("refresh@example.com")

	tokens, err := s.service.Login(&dto.LoginRequest{
		Email:    "refresh@example.com",
		Password: "password123",
	})
	s.Require().NoError(err)

	refreshed, err := s.service.RefreshTokens(tokens.RefreshToken)
	s.NoError(err)
	s.NotEmpty(refreshed.AccessToken)
	s.NotEqual(tokens.RefreshToken, refreshed.RefreshToken)

	// The old refresh token was revoked on use
	_, err = s.service.RefreshTokens(tokens.RefreshToken)
	s.Equal(ErrInvalidRefreshToken, err)

	// The rotated token still works
	_, err = s.service.RefreshTokens(refreshed.RefreshToken)
	s.NoError(err)
}

func (s *AuthServiceTestSuite) TestRefreshTokens_InvalidToken() {
	_, err := s.service.RefreshTokens("not-a-jwt")
	s.Equal(ErrInvalidRefreshToken, err)
}

func (s *AuthServiceTestSuite) TestLogout_BlacklistsAccessToken() {
	s.register("logout@example.com")

	tokens, err := s.service.Login(&dto.LoginRequest{
		Email:    "logout@example.com",
		Password: "password123",
	})
	s.Require().NoError(err)

	s.NoError(s.service.Logout(tokens.AccessToken))

	jti, err := s.tokenService.GetJTI(tokens.AccessToken)
	s.Require().NoError(err)

	blacklisted, err := s.blacklist.GetByJTI(jti)
	s.NoError(err)
	s.Equal(jti, blacklisted.JTI)

	// All refresh tokens are revoked as part of logout
	_, err = s.service.RefreshTokens(tokens.RefreshToken)
	s.Equal(ErrInvalidRefreshToken, err)
}

func (s *AuthServiceTestSuite) TestLogout_InvalidTokenStillSucceeds() {
	s.NoError(s.service.Logout("garbage-token"))
}
