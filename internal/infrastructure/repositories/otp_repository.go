package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Jasmitsingh01/school-management/domain"
)

// OTPRepositoryImpl implements domain.OTPRepository using GORM
type OTPRepositoryImpl struct {
	db *gorm.DB
}

// DBOTPCode represents one row of the one-time-code ledger. Email is
// indexed but not unique: multiple codes per address accumulate over
// time and are pruned opportunistically.
type DBOTPCode struct {
	ID        uint      `gorm:"primaryKey"`
	Email     string    `gorm:"index;size:255"`
	Code      string    `gorm:"size:16"`
	ExpiresAt time.Time `gorm:"index"`
	Used      bool
	CreatedAt time.Time
}

// TableName returns the table name for GORM
func (DBOTPCode) TableName() string {
	return "otp_codes"
}

// NewOTPRepository creates a new OTP ledger repository
func NewOTPRepository(db *gorm.DB) domain.OTPRepository {
	return &OTPRepositoryImpl{db: db}
}

// Create implements domain.OTPRepository
func (r *OTPRepositoryImpl) Create(ctx context.Context, code *domain.OTPCode) error {
	dbCode := &DBOTPCode{
		Email:     code.Email,
		Code:      code.Code,
		ExpiresAt: code.ExpiresAt,
		Used:      code.Used,
	}
	if err := r.db.WithContext(ctx).Create(dbCode).Error; err != nil {
		return err
	}
	code.ID = dbCode.ID
	return nil
}

// FindValid implements domain.OTPRepository. The single
// ErrOTPInvalidOrExpired result hides whether the code was wrong,
// expired or already used.
func (r *OTPRepositoryImpl) FindValid(ctx context.Context, email, code string, now time.Time) (*domain.OTPCode, error) {
	var dbCode DBOTPCode
	err := r.db.WithContext(ctx).
		Where("email = ? AND code = ? AND used = ? AND expires_at > ?", email, code, false, now).
		Order("created_at DESC").
		First(&dbCode).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrOTPInvalidOrExpired
		}
		return nil, err
	}
	return &domain.OTPCode{
		ID:        dbCode.ID,
		Email:     dbCode.Email,
		Code:      dbCode.Code,
		ExpiresAt: dbCode.ExpiresAt,
		Used:      dbCode.Used,
		CreatedAt: dbCode.CreatedAt,
	}, nil
}

// Consume implements domain.OTPRepository. Marking the code used and
// flipping the user's verified flag happen in one transaction so a
// crash cannot leave the code burned with the user still unverified.
func (r *OTPRepositoryImpl) Consume(ctx context.Context, codeID uint, email string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&DBOTPCode{}).
			Where("id = ? AND used = ?", codeID, false).
			Update("used", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrOTPInvalidOrExpired
		}
		res = tx.Model(&DBUser{}).
			Where("email = ?", email).
			Update("email_verified", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Codes can be requested for addresses with no account;
			// redeeming one verifies nothing. Roll back so the code
			// is not burned either.
			return domain.ErrOTPInvalidOrExpired
		}
		return nil
	})
}

// DeleteStale implements domain.OTPRepository
func (r *OTPRepositoryImpl) DeleteStale(ctx context.Context, email string, now time.Time) error {
	return r.db.WithContext(ctx).
		Where("email = ? AND (used = ? OR expires_at <= ?)", email, true, now).
		Delete(&DBOTPCode{}).Error
}
