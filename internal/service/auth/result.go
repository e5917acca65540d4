package auth

import "github.com/xploar/xploar-backend/internal/domain"

// AuthResult is returned by Signup, LoginWithPassword and Refresh.
type AuthResult struct {
	AccessToken  string
	RefreshToken string // raw token, NOT hash
	User         *domain.User
}
