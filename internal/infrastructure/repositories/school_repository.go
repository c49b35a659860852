package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Jasmitsingh01/school-management/domain"
)

// SchoolRepositoryImpl implements domain.SchoolRepository using GORM.
// All queries use parameter binding; nothing here builds SQL from
// strings.
type SchoolRepositoryImpl struct {
	db *gorm.DB
}

// DBSchool represents the database model for School. OwnerID is a
// pointer because legacy rows carry no owner.
type DBSchool struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"index;size:255"`
	Address   string `gorm:"size:512"`
	City      string `gorm:"index;size:128"`
	State     string `gorm:"size:128"`
	Contact   string `gorm:"size:16"`
	Email     string `gorm:"size:255"`
	Image     string `gorm:"size:512"`
	OwnerID   *uint  `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (DBSchool) TableName() string {
	return "schools"
}

// NewSchoolRepository creates a new school repository
func NewSchoolRepository(db *gorm.DB) domain.SchoolRepository {
	return &SchoolRepositoryImpl{db: db}
}

// Create implements domain.SchoolRepository
func (r *SchoolRepositoryImpl) Create(ctx context.Context, school *domain.School) error {
	dbSchool := r.domainToDB(school)
	if err := r.db.WithContext(ctx).Create(dbSchool).Error; err != nil {
		return err
	}
	school.ID = dbSchool.ID
	return nil
}

// FindByID implements domain.SchoolRepository
func (r *SchoolRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.School, error) {
	var dbSchool DBSchool
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbSchool).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrSchoolNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbSchool), nil
}

// List implements domain.SchoolRepository. The count and the page read
// are two statements, not one snapshot; the caller's has-more flag may
// be briefly stale under concurrent writes.
func (r *SchoolRepositoryImpl) List(ctx context.Context, filter domain.SchoolFilter) ([]*domain.School, int64, error) {
	q := r.db.WithContext(ctx).Model(&DBSchool{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("name LIKE ? OR address LIKE ?", pattern, pattern)
	}
	if filter.City != "" {
		q = q.Where("city = ?", filter.City)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var dbSchools []DBSchool
	err := q.Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&dbSchools).Error
	if err != nil {
		return nil, 0, err
	}

	schools := make([]*domain.School, 0, len(dbSchools))
	for i := range dbSchools {
		schools = append(schools, r.dbToDomain(&dbSchools[i]))
	}
	return schools, total, nil
}

// Cities implements domain.SchoolRepository
func (r *SchoolRepositoryImpl) Cities(ctx context.Context) ([]string, error) {
	var cities []string
	err := r.db.WithContext(ctx).Model(&DBSchool{}).
		Distinct("city").
		Where("city <> ?", "").
		Order("city ASC").
		Pluck("city", &cities).Error
	if err != nil {
		return nil, err
	}
	return cities, nil
}

// Update implements domain.SchoolRepository
func (r *SchoolRepositoryImpl) Update(ctx context.Context, school *domain.School) error {
	dbSchool := r.domainToDB(school)
	return r.db.WithContext(ctx).Save(dbSchool).Error
}

// Delete implements domain.SchoolRepository
func (r *SchoolRepositoryImpl) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&DBSchool{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrSchoolNotFound
	}
	return nil
}

// domainToDB converts domain school to database school
func (r *SchoolRepositoryImpl) domainToDB(school *domain.School) *DBSchool {
	return &DBSchool{
		ID:      school.ID,
		Name:    school.Name,
		Address: school.Address,
		City:    school.City,
		State:   school.State,
		Contact: school.Contact,
		Email:   school.Email,
		Image:   school.Image,
		OwnerID: school.OwnerID,
	}
}

// dbToDomain converts database school to domain school
func (r *SchoolRepositoryImpl) dbToDomain(dbSchool *DBSchool) *domain.School {
	return &domain.School{
		ID:        dbSchool.ID,
		Name:      dbSchool.Name,
		Address:   dbSchool.Address,
		City:      dbSchool.City,
		State:     dbSchool.State,
		Contact:   dbSchool.Contact,
		Email:     dbSchool.Email,
		Image:     dbSchool.Image,
		OwnerID:   dbSchool.OwnerID,
		CreatedAt: dbSchool.CreatedAt,
		UpdatedAt: dbSchool.UpdatedAt,
	}
}
