package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/studio-admin-api/internal/models"
	"github.com/studio-admin-api/internal/repository"
	"github.com/studio-admin-api/internal/validation"
)

// bcryptCost matches the cost the original admin accounts were hashed with.
const bcryptCost = 10

// authService is the concrete implementation of AuthService
type authService struct {
	repo repository.AccountRepository
	log  zerolog.Logger
}

func newAuthService(repo repository.AccountRepository, log zerolog.Logger) *authService {
	return &authService{
		repo: repo,
		log:  log.With().Str("service", "auth").Logger(),
	}
}

// SignUp creates a new admin account with a hashed password. The plaintext
// is never stored.
func (s *authService) SignUp(ctx context.Context, name, email, password string) (*models.Account, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return nil, &models.ValidationError{Field: "name", Message: "name is required"}
	}
	if email == "" {
		return nil, &models.ValidationError{Field: "email", Message: "email is required"}
	}
	if !validation.ValidEmail(email) {
		return nil, &models.ValidationError{Field: "email", Message: "invalid email format"}
	}
	if password == "" {
		return nil, &models.ValidationError{Field: "password", Message: "password is required"}
	}

	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, storeErr(err)
	}
	if exists {
		s.log.Info().Str("email", email).Msg("Signup rejected, email already registered")
		return nil, models.ErrDuplicateAccount
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}
	account := &models.Account{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	if err := s.repo.Create(ctx, account); err != nil {
		return nil, storeErr(err)
	}

	s.log.Info().Int("id", account.ID).Str("email", email).Str("role", account.Role).Msg("Account created")
	return account, nil
}

// Login verifies a credential pair. A missing account and a wrong password
// are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, email, password string) (*models.Account, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, models.ErrInvalidCredentials
	}

	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			s.log.Info().Str("email", email).Msg("Login failed, unknown email")
			return nil, models.ErrInvalidCredentials
		}
		return nil, storeErr(err)
	}

	if err := checkPassword(account.PasswordHash, password); err != nil {
		s.log.Info().Str("email", email).Msg("Login failed, wrong password")
		return nil, models.ErrInvalidCredentials
	}

	s.log.Info().Str("email", email).Str("role", account.Role).Msg("Login succeeded")
	return account, nil
}

// AccountCount returns the total number of accounts
func (s *authService) AccountCount(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, storeErr(err)
	}
	return count, nil
}
