package api

import (
	"context"
	"net/http"

	"github.com/tasltd/soupfinance-sub004/internal/rest"
	"github.com/tasltd/soupfinance-sub004/internal/types"
)

// Authentication sub-flows are plain endpoint calls over the same pipeline;
// they carry no extra protocol beyond call-and-interpret.

// Login exchanges credentials for a session payload.
func Login(ctx context.Context, c *rest.Client, req types.LoginRequest) (*types.AuthResponse, error) {
	var auth types.AuthResponse
	err := c.Do(ctx, rest.Request{
		Method: http.MethodPost,
		Path:   "auth/login.json",
		Body:   req,
		Encode: rest.JSON,
		Op:     "login",
	}, &auth)
	if err != nil {
		return nil, err
	}
	return &auth, nil
}

// Logout invalidates the server-side session. Callers clear local
// credentials regardless of the outcome.
func Logout(ctx context.Context, c *rest.Client) error {
	return c.Do(ctx, rest.Request{
		Method: http.MethodPost,
		Path:   "auth/logout.json",
		Op:     "logout",
	}, nil)
}

// RequestOTP asks the backend to send a one-time code.
func RequestOTP(ctx context.Context, c *rest.Client, username string) error {
	if err := types.ValidateIDPresent(username, "username"); err != nil {
		return err
	}
	return c.Do(ctx, rest.Request{
		Method: http.MethodPost,
		Path:   "auth/otp/request.json",
		Body:   types.OTPRequest{Username: username},
		Encode: rest.JSON,
		Op:     "request otp",
	}, nil)
}

// VerifyOTP exchanges a one-time code for a session payload, like Login.
func VerifyOTP(ctx context.Context, c *rest.Client, req types.VerifyOTPRequest) (*types.AuthResponse, error) {
	var auth types.AuthResponse
	err := c.Do(ctx, rest.Request{
		Method: http.MethodPost,
		Path:   "auth/otp/verify.json",
		Body:   req,
		Encode: rest.JSON,
		Op:     "verify otp",
	}, &auth)
	if err != nil {
		return nil, err
	}
	return &auth, nil
}

// ConfirmEmail redeems the confirmation token from a signup email.
func ConfirmEmail(ctx context.Context, c *rest.Client, token string) error {
	if err := types.ValidateIDPresent(token, "token"); err != nil {
		return err
	}
	return c.Do(ctx, rest.Request{
		Method: http.MethodGet,
		Path:   "auth/confirm/" + token + ".json",
		Op:     "confirm email",
	}, nil)
}

// ForgotPassword starts the reset flow for the given email.
func ForgotPassword(ctx context.Context, c *rest.Client, email string) error {
	if err := types.ValidateIDPresent(email, "email"); err != nil {
		return err
	}
	return c.Do(ctx, rest.Request{
		Method: http.MethodPost,
		Path:   "auth/forgotPassword.json",
		Body:   types.ForgotPasswordRequest{Email: email},
		Encode: rest.JSON,
		Op:     "forgot password",
	}, nil)
}

// ResetPassword completes the reset flow with the emailed token.
func ResetPassword(ctx context.Context, c *rest.Client, req types.ResetPasswordRequest) error {
	if err := types.ValidateIDPresent(req.Token, "token"); err != nil {
		return err
	}
	return c.Do(ctx, rest.Request{
		Method: http.MethodPost,
		Path:   "auth/resetPassword.json",
		Body:   req,
		Encode: rest.JSON,
		Op:     "reset password",
	}, nil)
}
