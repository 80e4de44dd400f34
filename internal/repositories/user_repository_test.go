package repositories

import (
	"testing"

	"expense-tracker/internal/database"
	"expense-tracker/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestUserRepository(t *testing.T) {
	suite.Run(t, new(UserRepositorySuite))
}

type UserRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo UserRepositoryInterface
}

func (s *UserRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewUserRepository(s.db.DB)
}

func (s *UserRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *UserRepositorySuite) TestUserRepository_Create() {
	user := &models.User{
		Email:        gofakeit.Email(),
		PasswordHash: "hashed_password",
		Name:         gofakeit.Name(),
	}

	err := s.repo.Create(user)
	s.NoError(err)
	s.NotEqual(uuid.Nil, user.ID)
	s.NotZero(user.CreatedAt)
	s.NotZero(user.UpdatedAt)
}

func (s *UserRepositorySuite) TestUserRepository_Create_DuplicateEmail() {
	user := &models.User{
		Email:        "dup@example.com",
		PasswordHash: "hashed_password",
		Name:         "First",
	}
	s.NoError(s.repo.Create(user))

	duplicate := &models.User{
		Email:        "dup@example.com",
		PasswordHash: "other_hash",
		Name:         "Second",
	}
	err := s.repo.Create(duplicate)
	s.Equal(ErrUserAlreadyExists, err)
}

func (s *UserRepositorySuite) TestUserRepository_GetByEmail() {
	user := &models.User{
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Name:         "Test User",
	}
	s.NoError(s.repo.Create(user))

	foundUser, err := s.repo.GetByEmail("test@example.com")
	s.NoError(err)
	s.Equal(user.ID, foundUser.ID)
	s.Equal(user.Email, foundUser.Email)

	_, err = s.repo.GetByEmail("nonexistent@example.com")
	s.Equal(ErrUserNotFound, err)
}

func (s *UserRepositorySuite) TestUserRepository_GetByEmail_CaseInsensitive() {
	user := &models.User{
		Email:        "mixed@example.com",
		PasswordHash: "hashed_password",
		Name:         "Test User",
	}
	s.NoError(s.repo.Create(user))

	foundUser, err := s.repo.GetByEmail("MIXED@Example.COM")
	s.NoError(err)
	s.Equal(user.ID, foundUser.ID)
}

func (s *UserRepositorySuite) TestUserRepository_UpdateFailedLoginAttempts() {
	user := &models.User{
		Email:        "lock@example.com",
		PasswordHash: "hashed_password",
		Name:         "Lock Me",
	}
	s.NoError(s.repo.Create(user))

	for i := 0; i < models.MaxFailedLoginAttempts; i++ {
		user.IncrementFailedAttempts()
	}
	s.True(user.IsLocked())
	s.NoError(s.repo.UpdateFailedLoginAttempts(user))

	stored, err := s.repo.GetByID(user.ID)
	s.NoError(err)
	s.True(stored.IsLocked())
	s.Equal(models.MaxFailedLoginAttempts, stored.FailedLoginAttempts)

	s.NoError(s.repo.ResetFailedLoginAttempts(user.ID))

	stored, err = s.repo.GetByID(user.ID)
	s.NoError(err)
	s.False(stored.IsLocked())
	s.Equal(0, stored.FailedLoginAttempts)
}

func (s *UserRepositorySuite) TestUserRepository_UpdatePasswordHash() {
	user := &models.User{
		Email:        "pw@example.com",
		PasswordHash: "old_hash",
		Name:         "Password User",
	}
	s.NoError(s.repo.Create(user))

	s.NoError(s.repo.UpdatePasswordHash(user.ID, "new_hash"))

	stored, err := s.repo.GetByID(user.ID)
	s.NoError(err)
	s.Equal("new_hash", stored.PasswordHash)

	err = s.repo.UpdatePasswordHash(uuid.New(), "whatever")
	s.Equal(ErrUserNotFound, err)
}

func (s *UserRepositorySuite) TestUserRepository_Count() {
	count, err := s.repo.Count()
	s.NoError(err)
	s.Equal(int64(0), count)

	for i := 0; i < 3; i++ {
		s.NoError(s.repo.Create(&models.User{
			Email:        gofakeit.Email(),
			PasswordHash: "hashed_password",
			Name:         gofakeit.Name(),
		}))
	}

	count, err = s.repo.Count()
	s.NoError(err)
	s.Equal(int64(3), count)
}

func (s *UserRepositorySuite) TestUserRepository_Delete() {
	user := &models.User{
		Email:        "gone@example.com",
		PasswordHash: "hashed_password",
		Name:         "Gone User",
	}
	s.NoError(s.repo.Create(user))

	s.NoError(s.repo.Delete(user.ID))

	_, err := s.repo.GetByID(user.ID)
	s.Equal(ErrUserNotFound, err)

	s.Equal(ErrUserNotFound, s.repo.Delete(uuid.New()))
}
