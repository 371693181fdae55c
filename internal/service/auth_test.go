package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"toolkeeper-backend/internal/domain"
	"toolkeeper-backend/internal/repository"
	"toolkeeper-backend/internal/security"
	"toolkeeper-backend/internal/service"
)

const testJWTSecret = "unit-test-secret-key-0123456789abcdef"

func newAuthFixture() (*MockUserRepo, service.AuthService) {
	userRepo := new(MockUserRepo)
	tokens := security.NewTokenManager(testJWTSecret, 60, 10080)
	svc := service.NewAuthService(userRepo, tokens)
	return userRepo, svc
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("CreatesStaffAccount", func(t *testing.T) {
		userRepo, svc := newAuthFixture()
		userRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == "new@test.com" && u.Role == domain.UserRoleStaff && u.PasswordHash != "hunter2secret"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = 42
		}).Return(nil)

		user, access, refresh, err := svc.Signup(ctx, "New User", "New@Test.com", "hunter2secret")
		assert.NoError(t, err)
		assert.Equal(t, "new@test.com", user.Email)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
	})

	t.Run("EmailTaken", func(t *testing.T) {
		userRepo, svc := newAuthFixture()
		userRepo.On("Create", ctx, mock.Anything).Return(repository.ErrDuplicate)

		_, _, _, err := svc.Signup(ctx, "New User", "dup@test.com", "hunter2secret")
		assert.ErrorIs(t, err, service.ErrEmailTaken)
	})

	t.Run("ShortPassword", func(t *testing.T) {
		userRepo, svc := newAuthFixture()
		_, _, _, err := svc.Signup(ctx, "New User", "new@test.com", "short")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter2secret"), bcrypt.MinCost)
	user := &domain.User{ID: 7, Email: "pat@test.com", PasswordHash: string(hash), Role: domain.UserRoleStaff}

	t.Run("CorrectPassword", func(t *testing.T) {
		userRepo, svc := newAuthFixture()
		userRepo.On("GetByEmail", ctx, "pat@test.com").Return(user, nil)

		got, access, _, err := svc.Login(ctx, "pat@test.com", "hunter2secret")
		assert.NoError(t, err)
		assert.Equal(t, int32(7), got.ID)

		tokens := security.NewTokenManager(testJWTSecret, 60, 10080)
		claims, err := tokens.ValidateToken(access)
		assert.NoError(t, err)
		assert.Equal(t, int32(7), claims.UserID)
		assert.Equal(t, security.TokenTypeAccess, claims.Type)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		userRepo, svc := newAuthFixture()
		userRepo.On("GetByEmail", ctx, "pat@test.com").Return(user, nil)

		_, _, _, err := svc.Login(ctx, "pat@test.com", "wrong")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		userRepo, svc := newAuthFixture()
		userRepo.On("GetByEmail", ctx, "nobody@test.com").Return(nil, repository.ErrNotFound)

		_, _, _, err := svc.Login(ctx, "nobody@test.com", "hunter2secret")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()
	user := &domain.User{ID: 7, Email: "pat@test.com", Role: domain.UserRoleStaff}
	tokens := security.NewTokenManager(testJWTSecret, 60, 10080)

	t.Run("ValidRefreshToken", func(t *testing.T) {
		userRepo, svc := newAuthFixture()
		refresh, err := tokens.GenerateRefreshToken(user)
		assert.NoError(t, err)
		userRepo.On("GetByID", ctx, int32(7)).Return(user, nil)

		access, newRefresh, err := svc.Refresh(ctx, refresh)
		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, newRefresh)
	})

	t.Run("AccessTokenRejected", func(t *testing.T) {
		_, svc := newAuthFixture()
		access, err := tokens.GenerateAccessToken(user)
		assert.NoError(t, err)

		_, _, err = svc.Refresh(ctx, access)
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("GarbageToken", func(t *testing.T) {
		_, svc := newAuthFixture()
		_, _, err := svc.Refresh(ctx, "not-a-token")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}
