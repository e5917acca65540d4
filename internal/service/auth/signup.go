package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/xploar/xploar-backend/internal/domain"
)

// Signup creates a new user with email + password authentication.
// Returns ErrAlreadyExists if the email is already taken.
func (s *Service) Signup(ctx context.Context, input SignupInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Name = strings.TrimSpace(input.Name)

	if err := input.Validate(s.cfg.MinPasswordLen); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Signup hash password: %w", err)
	}
	hashStr := string(hash)

	// New accounts default their display name to the email local part.
	name := input.Name
	if name == "" {
		name = input.Email[:strings.IndexByte(input.Email, '@')]
	}

	// Create user + auth method in a transaction. Email uniqueness is
	// enforced by the DB constraint.
	var createdUser *domain.User

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := time.Now()
		newUser := &domain.User{
			ID:        uuid.New(),
			Email:     input.Email,
			Name:      name,
			CreatedAt: now,
			UpdatedAt: now,
		}

		user, err := s.users.Create(txCtx, newUser)
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		am := &domain.AuthMethod{
			UserID:       user.ID,
			Method:       domain.AuthMethodPassword,
			PasswordHash: &hashStr,
		}
		if _, err := s.authMethods.Create(txCtx, am); err != nil {
			return fmt.Errorf("create auth method: %w", err)
		}

		createdUser = user
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Signup: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Signup: %w", err)
	}

	result, err := s.issueTokens(ctx, createdUser)
	if err != nil {
		return nil, fmt.Errorf("auth.Signup issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user signed up",
		slog.String("user_id", createdUser.ID.String()))

	return result, nil
}
