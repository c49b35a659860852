package mocks

import (
	"context"

	"github.com/Jasmitsingh01/school-management/domain"
)

// MockSchoolService implements domain.SchoolService interface for testing
type MockSchoolService struct {
	ListFunc   func(ctx context.Context, filter domain.SchoolFilter) (*domain.SchoolPage, error)
	GetFunc    func(ctx context.Context, id uint) (*domain.School, error)
	CreateFunc func(ctx context.Context, school *domain.School, ownerID uint) error
	UpdateFunc func(ctx context.Context, id uint, school *domain.School, callerID uint) (*domain.School, error)
	DeleteFunc func(ctx context.Context, id uint, callerID uint) error
}

// NewMockSchoolService creates a new MockSchoolService with default behaviors
func NewMockSchoolService() *MockSchoolService {
	return &MockSchoolService{}
}

// List returns a page of schools
func (m *MockSchoolService) List(ctx context.Context, filter domain.SchoolFilter) (*domain.SchoolPage, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return &domain.SchoolPage{Page: 1, Limit: 10}, nil
}

// Get returns a school by ID
func (m *MockSchoolService) Get(ctx context.Context, id uint) (*domain.School, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, domain.ErrSchoolNotFound
}

// Create creates a school owned by ownerID
func (m *MockSchoolService) Create(ctx context.Context, school *domain.School, ownerID uint) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, school, ownerID)
	}
	return nil
}

// Update updates a school after an ownership check
func (m *MockSchoolService) Update(ctx context.Context, id uint, school *domain.School, callerID uint) (*domain.School, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, school, callerID)
	}
	return school, nil
}

// Delete removes a school after an ownership check
func (m *MockSchoolService) Delete(ctx context.Context, id uint, callerID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, callerID)
	}
	return nil
}
