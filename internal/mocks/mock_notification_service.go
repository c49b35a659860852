package mocks

import (
	"sync"
	"time"
)

// MockNotificationService implements domain.NotificationService for
// testing, recording every message it was asked to deliver.
type MockNotificationService struct {
	SendOTPFunc func(to, name, code string, validFor time.Duration) error

	mu   sync.Mutex
	Sent []SentOTP
}

// SentOTP records one delivery attempt
type SentOTP struct {
	To   string
	Name string
	Code string
}

// NewMockNotificationService creates a new MockNotificationService with default behaviors
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

// SendOTP records the message and returns the configured result
func (m *MockNotificationService) SendOTP(to, name, code string, validFor time.Duration) error {
	m.mu.Lock()
	m.Sent = append(m.Sent, SentOTP{To: to, Name: name, Code: code})
	m.mu.Unlock()

	if m.SendOTPFunc != nil {
		return m.SendOTPFunc(to, name, code, validFor)
	}
	return nil
}

// LastCode returns the most recently delivered code, or "".
func (m *MockNotificationService) LastCode() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Sent) == 0 {
		return ""
	}
	return m.Sent[len(m.Sent)-1].Code
}
