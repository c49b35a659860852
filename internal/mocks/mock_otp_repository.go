package mocks

import (
	"context"
	"time"

	"github.com/Jasmitsingh01/school-management/domain"
)

// MockOTPRepository implements domain.OTPRepository interface for testing
type MockOTPRepository struct {
	CreateFunc      func(ctx context.Context, code *domain.OTPCode) error
	FindValidFunc   func(ctx context.Context, email, code string, now time.Time) (*domain.OTPCode, error)
	ConsumeFunc     func(ctx context.Context, codeID uint, email string) error
	DeleteStaleFunc func(ctx context.Context, email string, now time.Time) error
}

// NewMockOTPRepository creates a new MockOTPRepository with default behaviors
func NewMockOTPRepository() *MockOTPRepository {
	return &MockOTPRepository{}
}

// Create records a code in the ledger
func (m *MockOTPRepository) Create(ctx context.Context, code *domain.OTPCode) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, code)
	}
	return nil
}

// FindValid returns the newest valid matching code
func (m *MockOTPRepository) FindValid(ctx context.Context, email, code string, now time.Time) (*domain.OTPCode, error) {
	if m.FindValidFunc != nil {
		return m.FindValidFunc(ctx, email, code, now)
	}
	return nil, domain.ErrOTPInvalidOrExpired
}

// Consume marks a code used and the user verified
func (m *MockOTPRepository) Consume(ctx context.Context, codeID uint, email string) error {
	if m.ConsumeFunc != nil {
		return m.ConsumeFunc(ctx, codeID, email)
	}
	return nil
}

// DeleteStale removes expired or used rows for an email
func (m *MockOTPRepository) DeleteStale(ctx context.Context, email string, now time.Time) error {
	if m.DeleteStaleFunc != nil {
		return m.DeleteStaleFunc(ctx, email, now)
	}
	return nil
}
