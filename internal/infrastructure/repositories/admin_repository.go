package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Nakulpanchal-gamer/KubereshwarBackend/domain"
)

// AdminRepositoryImpl implements domain.AdminRepository using GORM.
//
// The OTP fields are only ever mutated through single UPDATE statements so
// that two concurrent requests racing on the one admin row cannot interleave
// a read-modify-write. Clearing on successful verification is conditional on
// the stored hash, which makes consumption of a code exactly-once.
type AdminRepositoryImpl struct {
	db *gorm.DB
}

// DBAdminCredential represents the database model for AdminCredential.
type DBAdminCredential struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `gorm:"not null"`

	OTPCodeHash       *string    `gorm:"column:otp_code_hash"`
	OTPExpiresAt      *time.Time `gorm:"column:otp_expires_at"`
	OTPSentAt         *time.Time `gorm:"column:otp_sent_at"`
	OTPAttemptCounter int        `gorm:"column:otp_attempt_counter;not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (DBAdminCredential) TableName() string {
	return "admin_users"
}

// NewAdminRepository creates a new admin credential repository
func NewAdminRepository(db *gorm.DB) domain.AdminRepository {
	return &AdminRepositoryImpl{db: db}
}

// Create implements domain.AdminRepository
func (r *AdminRepositoryImpl) Create(ctx context.Context, admin *domain.AdminCredential) error {
	dbAdmin := r.domainToDB(admin)
	if err := r.db.WithContext(ctx).Create(dbAdmin).Error; err != nil {
		return err
	}
	admin.ID = dbAdmin.ID
	return nil
}

// FindByUsername implements domain.AdminRepository
func (r *AdminRepositoryImpl) FindByUsername(ctx context.Context, username string) (*domain.AdminCredential, error) {
	var dbAdmin DBAdminCredential
	err := r.db.WithContext(ctx).Where("username = ?", domain.NormalizeUsername(username)).First(&dbAdmin).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrAdminNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbAdmin), nil
}

// FindFirst implements domain.AdminRepository. The seeder uses it to adopt a
// pre-existing admin row regardless of its current username.
func (r *AdminRepositoryImpl) FindFirst(ctx context.Context) (*domain.AdminCredential, error) {
	var dbAdmin DBAdminCredential
	err := r.db.WithContext(ctx).Order("created_at asc").First(&dbAdmin).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrAdminNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbAdmin), nil
}

// UpdateUsername implements domain.AdminRepository
func (r *AdminRepositoryImpl) UpdateUsername(ctx context.Context, id uint, username string) error {
	return r.db.WithContext(ctx).
		Model(&DBAdminCredential{}).
		Where("id = ?", id).
		Update("username", domain.NormalizeUsername(username)).Error
}

// UpdatePasswordHash implements domain.AdminRepository
func (r *AdminRepositoryImpl) UpdatePasswordHash(ctx context.Context, username, passwordHash string) error {
	res := r.db.WithContext(ctx).
		Model(&DBAdminCredential{}).
		Where("username = ?", domain.NormalizeUsername(username)).
		Update("password_hash", passwordHash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrAdminNotFound
	}
	return nil
}

// SetOTPState implements domain.AdminRepository. Hash, expiry, issuance time
// and the attempt counter reset land in one atomic UPDATE.
func (r *AdminRepositoryImpl) SetOTPState(ctx context.Context, username string, state domain.OTPState) error {
	res := r.db.WithContext(ctx).
		Model(&DBAdminCredential{}).
		Where("username = ?", domain.NormalizeUsername(username)).
		Updates(map[string]interface{}{
			"otp_code_hash":       state.CodeHash,
			"otp_expires_at":      state.ExpiresAt,
			"otp_sent_at":         state.SentAt,
			"otp_attempt_counter": 0,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrAdminNotFound
	}
	return nil
}

// IncrementOTPAttempts implements domain.AdminRepository
func (r *AdminRepositoryImpl) IncrementOTPAttempts(ctx context.Context, username string) error {
	res := r.db.WithContext(ctx).
		Model(&DBAdminCredential{}).
		Where("username = ?", domain.NormalizeUsername(username)).
		Update("otp_attempt_counter", gorm.Expr("otp_attempt_counter + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrAdminNotFound
	}
	return nil
}

// ClearOTPState implements domain.AdminRepository. The WHERE clause on the
// current code hash is the compare-and-set: whichever verification clears the
// row first wins, the loser observes zero affected rows.
func (r *AdminRepositoryImpl) ClearOTPState(ctx context.Context, username, expectedCodeHash string) error {
	res := r.db.WithContext(ctx).
		Model(&DBAdminCredential{}).
		Where("username = ? AND otp_code_hash = ?", domain.NormalizeUsername(username), expectedCodeHash).
		Updates(map[string]interface{}{
			"otp_code_hash":       nil,
			"otp_expires_at":      nil,
			"otp_attempt_counter": 0,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrOTPNotFound
	}
	return nil
}

// domainToDB converts a domain credential to the database model
func (r *AdminRepositoryImpl) domainToDB(admin *domain.AdminCredential) *DBAdminCredential {
	return &DBAdminCredential{
		ID:                admin.ID,
		Username:          domain.NormalizeUsername(admin.Username),
		PasswordHash:      admin.PasswordHash,
		OTPCodeHash:       admin.OTPCodeHash,
		OTPExpiresAt:      admin.OTPExpiresAt,
		OTPSentAt:         admin.OTPSentAt,
		OTPAttemptCounter: admin.OTPAttemptCounter,
	}
}

// dbToDomain converts a database credential to the domain model
func (r *AdminRepositoryImpl) dbToDomain(dbAdmin *DBAdminCredential) *domain.AdminCredential {
	return &domain.AdminCredential{
		ID:                dbAdmin.ID,
		Username:          dbAdmin.Username,
		PasswordHash:      dbAdmin.PasswordHash,
		OTPCodeHash:       dbAdmin.OTPCodeHash,
		OTPExpiresAt:      dbAdmin.OTPExpiresAt,
		OTPSentAt:         dbAdmin.OTPSentAt,
		OTPAttemptCounter: dbAdmin.OTPAttemptCounter,
		CreatedAt:         dbAdmin.CreatedAt,
		UpdatedAt:         dbAdmin.UpdatedAt,
	}
}

// Compile-time interface compliance verification
var _ domain.AdminRepository = (*AdminRepositoryImpl)(nil)
