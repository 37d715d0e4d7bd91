package client

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tresahq/cashbook_cli/internal/core/domain"
	"github.com/tresahq/cashbook_cli/internal/dto"
)

// accessTokenCookie is the cookie the API stores the access token in.
const accessTokenCookie = "accessToken"

// Login authenticates and returns the signed-in user together with the access
// token expiry (zero when the token cookie is absent or unreadable).
func (c *Client) Login(ctx context.Context, req dto.LoginRequest) (*domain.User, time.Time, error) {
	if err := dto.Validate(req); err != nil {
		return nil, time.Time{}, err
	}
	var out dto.AuthResponse
	if err := c.post(ctx, "/auth/login", req, &out); err != nil {
		return nil, time.Time{}, err
	}
	return &out.User, c.tokenExpiry(), nil
}

// Register creates an account and signs it in.
func (c *Client) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, time.Time, error) {
	if err := dto.Validate(req); err != nil {
		return nil, time.Time{}, err
	}
	var out dto.AuthResponse
	if err := c.post(ctx, "/auth/register", req, &out); err != nil {
		return nil, time.Time{}, err
	}
	return &out.User, c.tokenExpiry(), nil
}

// Logout invalidates the server-side session. The local session is the
// caller's to clear; a failed logout call must not strand local state.
func (c *Client) Logout(ctx context.Context) error {
	return c.post(ctx, "/auth/logout", nil, nil)
}

// ForgotPassword starts the password-reset flow for the given email.
func (c *Client) ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) error {
	if err := dto.Validate(req); err != nil {
		return err
	}
	return c.post(ctx, "/auth/forgot-password", req, nil)
}

// ResetPassword completes the password-reset flow.
func (c *Client) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error {
	if err := dto.Validate(req); err != nil {
		return err
	}
	return c.post(ctx, "/auth/reset-password", req, nil)
}

// tokenExpiry inspects the stored access-token cookie for its expiry claim.
// The token is decoded without verification: the server is the sole verifier;
// the client only uses the claim to report session freshness.
func (c *Client) tokenExpiry() time.Time {
	for _, cookie := range c.session.Cookies() {
		if cookie.Name != accessTokenCookie {
			continue
		}
		claims := jwt.RegisteredClaims{}
		if _, _, err := jwt.NewParser().ParseUnverified(cookie.Value, &claims); err != nil {
			return time.Time{}
		}
		if claims.ExpiresAt != nil {
			return claims.ExpiresAt.Time
		}
		return time.Time{}
	}
	return time.Time{}
}
