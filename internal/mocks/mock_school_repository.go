package mocks

import (
	"context"

	"github.com/Jasmitsingh01/school-management/domain"
)

// MockSchoolRepository implements domain.SchoolRepository interface for testing
type MockSchoolRepository struct {
	CreateFunc   func(ctx context.Context, school *domain.School) error
	FindByIDFunc func(ctx context.Context, id uint) (*domain.School, error)
	ListFunc     func(ctx context.Context, filter domain.SchoolFilter) ([]*domain.School, int64, error)
	CitiesFunc   func(ctx context.Context) ([]string, error)
	UpdateFunc   func(ctx context.Context, school *domain.School) error
	DeleteFunc   func(ctx context.Context, id uint) error
}

// NewMockSchoolRepository creates a new MockSchoolRepository with default behaviors
func NewMockSchoolRepository() *MockSchoolRepository {
	return &MockSchoolRepository{}
}

// Create creates a new school
func (m *MockSchoolRepository) Create(ctx context.Context, school *domain.School) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, school)
	}
	return nil
}

// FindByID finds a school by ID
func (m *MockSchoolRepository) FindByID(ctx context.Context, id uint) (*domain.School, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrSchoolNotFound
}

// List returns a page of schools and the total row count
func (m *MockSchoolRepository) List(ctx context.Context, filter domain.SchoolFilter) ([]*domain.School, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

// Cities returns the distinct city list
func (m *MockSchoolRepository) Cities(ctx context.Context) ([]string, error) {
	if m.CitiesFunc != nil {
		return m.CitiesFunc(ctx)
	}
	return nil, nil
}

// Update updates an existing school
func (m *MockSchoolRepository) Update(ctx context.Context, school *domain.School) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, school)
	}
	return nil
}

// Delete removes a school
func (m *MockSchoolRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}
