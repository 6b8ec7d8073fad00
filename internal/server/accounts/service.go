// Package accounts contains the account service: the Account model, the
// store interface with its Postgres implementation, and the orchestration of
// registration, login, and session verification.
package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amankou/farmauth/internal/common"
	"github.com/amankou/farmauth/internal/server/auth"
	"github.com/amankou/farmauth/internal/server/config"
	"github.com/amankou/farmauth/internal/server/password"
	"github.com/google/uuid"
)

// Service orchestrates account operations:
//   - Register: existence check, policy validation, hashing, persistence
//   - Login: lookup, password verification, session-token issuance
//   - VerifySession: token verification and account resolution
type Service struct {
	repo          Repository
	hasher        *password.Hasher
	jwtSecret     []byte
	tokenValidity time.Duration
}

// NewService constructs a Service from the store and server config.
func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:          repo,
		hasher:        password.NewHasher(cfg.BcryptCost),
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.SessionTokenValidityDuration,
	}
}

// Register creates a new account for the given username and plaintext
// password. It fails with a ValidationError when a field is missing, the
// username is already taken, or a password rule is not satisfied.
//
// Note: the behavior this service replaces rejected registration when the
// username did NOT exist yet, which can never create a usable account. The
// check is implemented the ordinary way around here: an existing username is
// what gets rejected.
func (s *Service) Register(ctx context.Context, username, plaintext string) (*Account, error) {

	username = strings.TrimSpace(username)
	if username == "" || plaintext == "" {
		return nil, common.NewValidationError("please fill in all fields")
	}

	_, err := s.repo.GetByUsername(ctx, username)
	if err == nil {
		return nil, common.NewValidationError("username already taken")
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error checking username: %w", err)
	}

	if failure, found := password.FirstFailure(password.Validate(plaintext)); found {
		return nil, common.NewValidationError(failure.Message)
	}

	hash, err := s.hasher.Hash(plaintext)
	if err != nil {
		return nil, err
	}

	account := &Account{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
	}

	account, err = s.repo.Create(ctx, account)
	if err != nil {
		// Lost a race against a concurrent registration for the same
		// username; the unique constraint is the serialization point.
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.NewValidationError("username already taken")
		}
		return nil, fmt.Errorf("error creating account: %w", err)
	}

	return account, nil
}

// Login verifies the credentials and, on success, returns the sanitized
// account together with a signed session token.
func (s *Service) Login(ctx context.Context, username, plaintext string) (*Account, string, error) {

	if strings.TrimSpace(username) == "" || plaintext == "" {
		return nil, "", common.NewValidationError("please fill in all fields")
	}

	account, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrAccountNotFound
		}
		return nil, "", fmt.Errorf("error looking up account: %w", err)
	}

	if !s.hasher.Verify(plaintext, account.PasswordHash) {
		return nil, "", common.ErrInvalidPassword
	}

	token, err := auth.GenerateToken(account.ID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, "", fmt.Errorf("error signing session token: %w", err)
	}

	return account.Sanitized(), token, nil
}

// VerifySession checks the token's signature and expiry and resolves the
// owning account. A revocation check could be inserted here later without
// changing callers.
func (s *Service) VerifySession(ctx context.Context, token string) (*Account, error) {

	accountID, err := auth.GetAccountIDFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	account, err := s.repo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, fmt.Errorf("error resolving account: %w", err)
	}

	return account.Sanitized(), nil
}
