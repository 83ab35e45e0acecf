package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/praneeth827/prajju-new-one/internal/config"
	"github.com/praneeth827/prajju-new-one/internal/logger"
	"github.com/praneeth827/prajju-new-one/internal/store"
	"github.com/praneeth827/prajju-new-one/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn      func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFn func(ctx context.Context, email string) (models.User, error)
	findUserByIDFn    func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findUserByEmailFn != nil {
		return m.findUserByEmailFn(ctx, email)
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findUserByIDFn != nil {
		return m.findUserByIDFn(ctx, userID)
	}
	return models.User{}, store.ErrNoUserWasFound
}

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "scholarship-advisor",
		TokenDuration: time.Hour,
		BCryptCost:    bcrypt.MinCost,
	}
}

func newTestAuthService(repo store.UserRepository) AuthService {
	return NewAuthService(repo, testAppConfig(), logger.Nop())
}

func TestRegisterUser_MissingFields(t *testing.T) {
	auth := newTestAuthService(&mockUserRepository{})

	_, err := auth.RegisterUser(context.Background(), models.RegisterRequest{
		Email:    "a@example.com",
		Password: "secret1",
	})

	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Equal(t, "Name, email, and password are required", err.Error())
}

func TestRegisterUser_ShortPassword(t *testing.T) {
	auth := newTestAuthService(&mockUserRepository{})

	_, err := auth.RegisterUser(context.Background(), models.RegisterRequest{
		Name:     "Praneeth",
		Email:    "a@example.com",
		Password: "short",
	})

	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Equal(t, "Password must be at least 6 characters", err.Error())
}

func TestRegisterUser_NormalizesAndHashes(t *testing.T) {
	var created models.User
	repo := &mockUserRepository{
		createUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			created = user
			user.UserID = 1
			return user, nil
		},
	}
	auth := newTestAuthService(repo)

	registered, err := auth.RegisterUser(context.Background(), models.RegisterRequest{
		Name:     "  Praneeth  ",
		Email:    "  Praneeth@Example.COM ",
		Phone:    " 9876543210 ",
		Password: "secret1",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), registered.UserID)
	assert.Equal(t, "Praneeth", created.Name)
	assert.Equal(t, "praneeth@example.com", created.Email)
	assert.Equal(t, "9876543210", created.Phone)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret1")))
}

func TestRegisterUser_EmailConflictPassesThrough(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	auth := newTestAuthService(repo)

	_, err := auth.RegisterUser(context.Background(), models.RegisterRequest{
		Name:     "Praneeth",
		Email:    "dup@example.com",
		Password: "secret1",
	})

	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestLogin_MissingFields(t *testing.T) {
	auth := newTestAuthService(&mockUserRepository{})

	_, err := auth.Login(context.Background(), models.LoginRequest{Email: "a@example.com"})

	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Equal(t, "Email and password are required", err.Error())
}

func TestLogin_UnknownEmailAndWrongPasswordAreIndistinguishable(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &mockUserRepository{
		findUserByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			if email == "known@example.com" {
				return models.User{UserID: 1, Email: email, PasswordHash: string(hash)}, nil
			}
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	auth := newTestAuthService(repo)

	_, unknownErr := auth.Login(context.Background(), models.LoginRequest{
		Email:    "unknown@example.com",
		Password: "whatever",
	})
	_, wrongErr := auth.Login(context.Background(), models.LoginRequest{
		Email:    "known@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestLogin_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &mockUserRepository{
		findUserByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			assert.Equal(t, "praneeth@example.com", email)
			return models.User{UserID: 7, Email: email, PasswordHash: string(hash)}, nil
		},
	}
	auth := newTestAuthService(repo)

	user, err := auth.Login(context.Background(), models.LoginRequest{
		Email:    " Praneeth@Example.com ",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
}

func TestCreateAndParseToken_RoundTrip(t *testing.T) {
	auth := newTestAuthService(&mockUserRepository{})
	ctx := context.Background()

	token, err := auth.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := auth.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestParseToken_Garbage(t *testing.T) {
	auth := newTestAuthService(&mockUserRepository{})

	_, err := auth.ParseToken(context.Background(), "not.a.token")

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestParseToken_WrongIssuer(t *testing.T) {
	cfg := testAppConfig()
	cfg.TokenIssuer = "someone-else"
	other := NewAuthService(&mockUserRepository{}, cfg, logger.Nop())
	auth := newTestAuthService(&mockUserRepository{})
	ctx := context.Background()

	foreign, err := other.CreateToken(ctx, models.User{UserID: 1})
	require.NoError(t, err)

	_, err = auth.ParseToken(ctx, foreign.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestInvalidateToken_RevokesUntilExpiry(t *testing.T) {
	auth := newTestAuthService(&mockUserRepository{})
	ctx := context.Background()

	token, err := auth.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)

	_, err = auth.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)

	auth.InvalidateToken(ctx, token)

	_, err = auth.ParseToken(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	// revoking twice stays a no-op
	auth.InvalidateToken(ctx, token)
	_, err = auth.ParseToken(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestRegisterUser_RepositoryFailureIsWrapped(t *testing.T) {
	repoErr := errors.New("connection refused")
	repo := &mockUserRepository{
		createUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, repoErr
		},
	}
	auth := newTestAuthService(repo)

	_, err := auth.RegisterUser(context.Background(), models.RegisterRequest{
		Name:     "Praneeth",
		Email:    "a@example.com",
		Password: "secret1",
	})

	assert.ErrorIs(t, err, repoErr)
}
