package service

import (
	"context"
	"testing"
	"time"

	"github.com/Raghuramreddyu/House-Rental-System/internal/domain"
	"github.com/Raghuramreddyu/House-Rental-System/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func TestAuthService_Register_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewAuthService(repo, testSecret, time.Hour)

	var created *domain.User
	repo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, u *domain.User) { created = u }).
		Return(nil)

	input := domain.RegisterInput{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "secret123",
		Role:     "tenant",
	}

	user, token, err := svc.Register(context.Background(), input)

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, domain.RoleTenant, user.Role)
	assert.NotEmpty(t, user.ID)

	require.NotNil(t, created)
	assert.NotEqual(t, "secret123", created.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret123")))
}

func TestAuthService_Register_UnknownRole(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewAuthService(repo, testSecret, time.Hour)

	input := domain.RegisterInput{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "secret123",
		Role:     "admin",
	}

	_, _, err := svc.Register(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewAuthService(repo, testSecret, time.Hour)

	_, _, err := svc.Register(context.Background(), domain.RegisterInput{Email: "a@b.c", Password: "x", Role: "tenant"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewAuthService(repo, testSecret, time.Hour)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	input := domain.RegisterInput{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "secret123",
		Role:     "tenant",
	}

	_, _, err := svc.Register(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewAuthService(repo, testSecret, time.Hour)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := &domain.User{ID: "u1", Email: "alice@example.com", PasswordHash: string(hash)}
	repo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(stored, nil)

	user, token, err := svc.Login(context.Background(), "alice@example.com", "secret123")

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.NotEmpty(t, token)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewAuthService(repo, testSecret, time.Hour)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := &domain.User{ID: "u1", PasswordHash: string(hash)}
	repo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(stored, nil)

	_, _, err = svc.Login(context.Background(), "alice@example.com", "wrong")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewAuthService(repo, testSecret, time.Hour)

	repo.EXPECT().GetByEmail(mock.Anything, "nobody@example.com").Return(nil, domain.ErrUserNotFound)

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Authenticate_RoundTrip(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewAuthService(repo, testSecret, time.Hour)

	var created *domain.User
	repo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, u *domain.User) { created = u }).
		Return(nil)

	_, token, err := svc.Register(context.Background(), domain.RegisterInput{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "secret123",
		Role:     "owner",
	})
	require.NoError(t, err)

	repo.EXPECT().GetByID(mock.Anything, created.ID).Return(created, nil)

	user, err := svc.Authenticate(context.Background(), token)

	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
}

func TestAuthService_Authenticate_BadToken(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewAuthService(repo, testSecret, time.Hour)

	_, err := svc.Authenticate(context.Background(), "not-a-token")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestAuthService_Authenticate_WrongSecret(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	issuer := NewAuthService(repo, "other-secret", time.Hour)
	verifier := NewAuthService(repo, testSecret, time.Hour)

	var created *domain.User
	repo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, u *domain.User) { created = u }).
		Return(nil)

	_, token, err := issuer.Register(context.Background(), domain.RegisterInput{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "secret123",
		Role:     "tenant",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	_, err = verifier.Authenticate(context.Background(), token)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestAuthService_Authenticate_ExpiredToken(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	issuer := NewAuthService(repo, testSecret, -time.Minute)
	verifier := NewAuthService(repo, testSecret, time.Hour)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	_, token, err := issuer.Register(context.Background(), domain.RegisterInput{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "secret123",
		Role:     "tenant",
	})
	require.NoError(t, err)

	_, err = verifier.Authenticate(context.Background(), token)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}
