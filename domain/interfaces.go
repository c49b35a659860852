package domain

import (
	"context"
	"io"
	"time"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	Update(ctx context.Context, user *User) error
}

// OTPRepository defines access to the one-time-code ledger.
type OTPRepository interface {
	Create(ctx context.Context, code *OTPCode) error
	// FindValid returns the newest row matching email+code that is
	// unexpired and unused at the given instant, or ErrOTPInvalidOrExpired.
	FindValid(ctx context.Context, email, code string, now time.Time) (*OTPCode, error)
	// Consume marks the code used and sets the user's verified flag in
	// a single transaction.
	Consume(ctx context.Context, codeID uint, email string) error
	// DeleteStale removes the email's expired or used rows.
	DeleteStale(ctx context.Context, email string, now time.Time) error
}

// SchoolRepository defines school data access operations
type SchoolRepository interface {
	Create(ctx context.Context, school *School) error
	FindByID(ctx context.Context, id uint) (*School, error)
	List(ctx context.Context, filter SchoolFilter) ([]*School, int64, error)
	Cities(ctx context.Context) ([]string, error)
	Update(ctx context.Context, school *School) error
	Delete(ctx context.Context, id uint) error
}

// AuthService defines registration and authentication business logic
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*User, bool, error)
	VerifyEmail(ctx context.Context, email, code string) error
	ResendOTP(ctx context.Context, email, name string) error
	Login(ctx context.Context, email, password string) (*User, string, error)
	Profile(ctx context.Context, userID uint) (*User, error)
}

// OTPService defines one-time-code operations
type OTPService interface {
	// Issue generates a code, records it in the ledger and delivers it.
	Issue(ctx context.Context, email, name string) error
	// Redeem validates a submitted code and consumes it on match.
	Redeem(ctx context.Context, email, code string) error
	CanResend(ctx context.Context, email string) (bool, int64, error)
}

// SchoolService defines directory business logic
type SchoolService interface {
	List(ctx context.Context, filter SchoolFilter) (*SchoolPage, error)
	Get(ctx context.Context, id uint) (*School, error)
	Create(ctx context.Context, school *School, ownerID uint) error
	Update(ctx context.Context, id uint, school *School, callerID uint) (*School, error)
	Delete(ctx context.Context, id uint, callerID uint) error
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines session token operations
type TokenService interface {
	Generate(user *User) (string, error)
	Validate(token string) (*SessionClaims, error)
}

// NotificationService defines notification delivery operations
type NotificationService interface {
	SendOTP(to, name, code string, validFor time.Duration) error
}

// FileStorage stores uploaded bytes and returns a retrievable reference.
type FileStorage interface {
	Save(ctx context.Context, filename, contentType string, r io.Reader, size int64) (string, error)
}
