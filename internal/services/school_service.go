package services

import (
	"context"
	"regexp"

	"github.com/Jasmitsingh01/school-management/domain"
)

var (
	contactPattern = regexp.MustCompile(`^[0-9]{10}$`)
	emailPattern   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// SchoolServiceImpl implements domain.SchoolService
type SchoolServiceImpl struct {
	schoolRepo domain.SchoolRepository
}

// NewSchoolService creates a new school service
func NewSchoolService(schoolRepo domain.SchoolRepository) domain.SchoolService {
	return &SchoolServiceImpl{schoolRepo: schoolRepo}
}

// List implements domain.SchoolService. Listing is public.
func (s *SchoolServiceImpl) List(ctx context.Context, filter domain.SchoolFilter) (*domain.SchoolPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultPageLimit
	}
	if filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}

	schools, total, err := s.schoolRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	cities, err := s.schoolRepo.Cities(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.SchoolPage{
		Schools: schools,
		Cities:  cities,
		Total:   total,
		Page:    filter.Page,
		Limit:   filter.Limit,
	}, nil
}

// Get implements domain.SchoolService
func (s *SchoolServiceImpl) Get(ctx context.Context, id uint) (*domain.School, error) {
	return s.schoolRepo.FindByID(ctx, id)
}

// Create implements domain.SchoolService. The caller becomes the owner.
func (s *SchoolServiceImpl) Create(ctx context.Context, school *domain.School, ownerID uint) error {
	if err := validateSchool(school); err != nil {
		return err
	}

	school.OwnerID = &ownerID
	return s.schoolRepo.Create(ctx, school)
}

// Update implements domain.SchoolService. Ownership is checked before
// payload validation: a non-owner gets ErrForbidden regardless of what
// they sent.
func (s *SchoolServiceImpl) Update(ctx context.Context, id uint, in *domain.School, callerID uint) (*domain.School, error) {
	existing, err := s.schoolRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !existing.OwnedBy(callerID) {
		return nil, domain.ErrForbidden
	}

	if err := validateSchool(in); err != nil {
		return nil, err
	}

	existing.Name = in.Name
	existing.Address = in.Address
	existing.City = in.City
	existing.State = in.State
	existing.Contact = in.Contact
	existing.Email = in.Email
	if in.Image != "" {
		existing.Image = in.Image
	}

	if err := s.schoolRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete implements domain.SchoolService
func (s *SchoolServiceImpl) Delete(ctx context.Context, id uint, callerID uint) error {
	existing, err := s.schoolRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !existing.OwnedBy(callerID) {
		return domain.ErrForbidden
	}

	return s.schoolRepo.Delete(ctx, id)
}

func validateSchool(school *domain.School) error {
	if !contactPattern.MatchString(school.Contact) {
		return domain.ErrInvalidContact
	}
	if !emailPattern.MatchString(school.Email) {
		return domain.ErrInvalidEmail
	}
	return nil
}
