package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/praneeth827/prajju-new-one/internal/config"
	"github.com/praneeth827/prajju-new-one/internal/logger"
	"github.com/praneeth827/prajju-new-one/internal/store"
	"github.com/praneeth827/prajju-new-one/internal/utils"
	"github.com/praneeth827/prajju-new-one/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification and the JWT
// session lifecycle, using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// bcryptCost is the bcrypt cost factor applied when hashing passwords.
	bcryptCost int

	// revokedMu guards revoked. Sessions end client-side, so revocation is
	// an in-process list of signed tokens with their expiry; entries are
	// pruned lazily once the underlying token would have expired anyway.
	revokedMu sync.RWMutex
	revoked   map[string]time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		bcryptCost:     cfg.BCryptCost,
		revoked:        make(map[string]time.Time),
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates the request, normalizes the email (lower-cased, trimmed) and
// phone (trimmed), bcrypt-hashes the password and delegates persistence to
// the UserRepository, which enforces email and phone uniqueness.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - a ValidationError if name, email or password is missing, or the
//     password is shorter than 6 characters.
//   - store.ErrEmailAlreadyExists / store.ErrPhoneAlreadyExists on conflict.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Name == "" || req.Email == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("registration rejected: incomplete request")
		return models.User{}, newValidationError("Name, email, and password are required")
	}
	if len(req.Password) < 6 {
		return models.User{}, newValidationError("Password must be at least 6 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:        strings.TrimSpace(req.Phone),
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// Both an unknown email and a wrong password collapse into the single
// ErrInvalidCredentials so responses never reveal whether the account
// exists.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" {
		return models.User{}, newValidationError("Email and password are required")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(req.Password)); err != nil {
		log.Error().Int64("id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string and rejects revoked
// tokens.
//
// Any validation failure (expired, wrong issuer, malformed, revoked) is
// normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	if a.isRevoked(tokenString) {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// InvalidateToken adds the token to the revocation list. Logout is
// idempotent: revoking an already revoked or expired token is a no-op.
func (a *authService) InvalidateToken(ctx context.Context, token models.Token) {
	if token.SignedString == "" {
		return
	}

	expiresAt := time.Now().Add(a.tokenDuration)
	if token.Token != nil {
		if exp, err := token.Claims.GetExpirationTime(); err == nil && exp != nil {
			expiresAt = exp.Time
		}
	}

	a.revokedMu.Lock()
	defer a.revokedMu.Unlock()

	a.pruneRevokedLocked()
	a.revoked[token.SignedString] = expiresAt
}

func (a *authService) isRevoked(tokenString string) bool {
	a.revokedMu.RLock()
	defer a.revokedMu.RUnlock()

	expiresAt, ok := a.revoked[tokenString]
	return ok && time.Now().Before(expiresAt)
}

// pruneRevokedLocked drops entries whose token has expired on its own.
// Callers must hold revokedMu.
func (a *authService) pruneRevokedLocked() {
	now := time.Now()
	for tokenString, expiresAt := range a.revoked {
		if now.After(expiresAt) {
			delete(a.revoked, tokenString)
		}
	}
}
