package soupfinance

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/tasltd/soupfinance-sub004/internal/api"
	"github.com/tasltd/soupfinance-sub004/internal/types"
)

// --------------------------------------------------------------------
// Session lifecycle
// --------------------------------------------------------------------

// Login authenticates with username/password and stores the resulting
// session. rememberMe selects the persistent store (when configured via
// WithPersistentSessions) over the process-scoped one.
func (c *Client) Login(ctx context.Context, username, password string, rememberMe bool) (*Session, error) {
	auth, err := api.Login(ctx, c.rc, types.LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, err
	}
	return c.establishSession(auth, rememberMe)
}

// Logout invalidates the server-side session (best effort) and always
// clears local credentials.
func (c *Client) Logout(ctx context.Context) error {
	if err := api.Logout(ctx, c.rc); err != nil {
		log.Debug().Err(err).Msg("server-side logout failed, clearing local session anyway")
	}
	return c.sessions.Clear()
}

// CurrentSession returns the stored credentials, reporting whether a session
// is present.
func (c *Client) CurrentSession() (*Session, bool) {
	tok, ok := c.sessions.Token()
	if !ok {
		return nil, false
	}
	user, _ := c.sessions.User()
	return &Session{Token: tok, User: user}, true
}

func (c *Client) establishSession(auth *types.AuthResponse, rememberMe bool) (*Session, error) {
	s := Session{Token: auth.AccessToken, User: auth.User}
	c.sessions.Activate(rememberMe)
	if err := c.sessions.SetSession(s); err != nil {
		return nil, err
	}
	return &s, nil
}

// --------------------------------------------------------------------
// Other authentication sub-flows
// --------------------------------------------------------------------

// RequestOTP asks the backend to send a one-time code to the user.
func (c *Client) RequestOTP(ctx context.Context, username string) error {
	return api.RequestOTP(ctx, c.rc, username)
}

// VerifyOTP exchanges a one-time code for a session, establishing it exactly
// like Login.
func (c *Client) VerifyOTP(ctx context.Context, username, code string, rememberMe bool) (*Session, error) {
	auth, err := api.VerifyOTP(ctx, c.rc, types.VerifyOTPRequest{Username: username, Code: code})
	if err != nil {
		return nil, err
	}
	return c.establishSession(auth, rememberMe)
}

// ConfirmEmail redeems the confirmation token from a signup email.
func (c *Client) ConfirmEmail(ctx context.Context, token string) error {
	return api.ConfirmEmail(ctx, c.rc, token)
}

// ForgotPassword starts the password-reset flow.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return api.ForgotPassword(ctx, c.rc, email)
}

// ResetPassword completes the password-reset flow with the emailed token.
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) error {
	return api.ResetPassword(ctx, c.rc, types.ResetPasswordRequest{Token: token, NewPassword: newPassword})
}
