package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/xploar/xploar-backend/internal/domain"
)

// RequestPasswordReset starts a password reset for the given email.
// The response is identical whether or not the account exists, so the
// endpoint cannot be used to enumerate registered emails. For existing
// accounts all refresh tokens are revoked, forcing a fresh login once
// the reset completes.
func (s *Service) RequestPasswordReset(ctx context.Context, input ResetPasswordInput) error {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := input.Validate(); err != nil {
		return err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.InfoContext(ctx, "password reset requested for unknown email")
			return nil
		}
		return fmt.Errorf("auth.RequestPasswordReset get user: %w", err)
	}

	if err := s.tokens.RevokeAllByUser(ctx, user.ID); err != nil {
		return fmt.Errorf("auth.RequestPasswordReset revoke tokens: %w", err)
	}

	s.log.InfoContext(ctx, "password reset requested",
		slog.String("user_id", user.ID.String()))

	return nil
}
