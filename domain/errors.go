package domain

import "errors"

// Registration and authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrWeakPassword       = errors.New("password does not meet policy")
)

// OTP errors. ErrOTPInvalidOrExpired deliberately covers wrong code,
// expiry and reuse alike so callers cannot enumerate which it was.
var (
	ErrOTPInvalidOrExpired = errors.New("invalid or expired code")
	ErrOTPResendLimit      = errors.New("code resend limit exceeded")
	ErrDeliveryFailed      = errors.New("failed to deliver verification code")
)

// Token errors
var (
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token has expired")
)

// Authorization errors
var (
	ErrAuthRequired   = errors.New("authentication required")
	ErrForbidden      = errors.New("operation not permitted")
	ErrSchoolNotFound = errors.New("school not found")
)

// Validation errors
var (
	ErrInvalidContact = errors.New("contact must be exactly 10 digits")
	ErrInvalidEmail   = errors.New("invalid email address")
)
