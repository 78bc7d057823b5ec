package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Nakulpanchal-gamer/KubereshwarBackend/domain"
)

// EnquiryRepositoryImpl implements domain.EnquiryRepository using GORM
type EnquiryRepositoryImpl struct {
	db *gorm.DB
}

// DBEnquiry represents the database model for Enquiry
type DBEnquiry struct {
	ID      string `gorm:"primaryKey;size:36"`
	Name    string `gorm:"size:255;not null"`
	Email   string `gorm:"size:255"`
	Phone   string `gorm:"size:64"`
	Topic   string `gorm:"size:255"`
	Message string `gorm:"type:text"`

	ProductID string `gorm:"size:36;index"`

	CategoryID            string `gorm:"size:36"`
	CategoryName          string `gorm:"size:255"`
	ProductIDs            string `gorm:"column:product_ids;type:text"`
	AllProductsOfCategory bool

	Consent *bool

	Status string `gorm:"size:32;index;not null;default:new"`
	IsRead bool   `gorm:"index"`

	IP        string `gorm:"size:64"`
	UserAgent string `gorm:"size:512"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (DBEnquiry) TableName() string {
	return "enquiries"
}

// NewEnquiryRepository creates a new enquiry repository
func NewEnquiryRepository(db *gorm.DB) domain.EnquiryRepository {
	return &EnquiryRepositoryImpl{db: db}
}

// Create implements domain.EnquiryRepository
func (r *EnquiryRepositoryImpl) Create(ctx context.Context, enquiry *domain.Enquiry) error {
	if enquiry.ID == "" {
		enquiry.ID = uuid.NewString()
	}
	if enquiry.Status == "" {
		enquiry.Status = domain.EnquiryStatusNew
	}
	dbEnquiry := r.domainToDB(enquiry)
	if err := r.db.WithContext(ctx).Create(dbEnquiry).Error; err != nil {
		return err
	}
	enquiry.CreatedAt = dbEnquiry.CreatedAt
	enquiry.UpdatedAt = dbEnquiry.UpdatedAt
	return nil
}

// FindByID implements domain.EnquiryRepository
func (r *EnquiryRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Enquiry, error) {
	var dbEnquiry DBEnquiry
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbEnquiry).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrEnquiryNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbEnquiry), nil
}

// FindAll implements domain.EnquiryRepository, newest first.
func (r *EnquiryRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Enquiry, error) {
	var dbEnquiries []DBEnquiry
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&dbEnquiries).Error; err != nil {
		return nil, err
	}
	enquiries := make([]*domain.Enquiry, 0, len(dbEnquiries))
	for i := range dbEnquiries {
		enquiries = append(enquiries, r.dbToDomain(&dbEnquiries[i]))
	}
	return enquiries, nil
}

// Update implements domain.EnquiryRepository
func (r *EnquiryRepositoryImpl) Update(ctx context.Context, id string, update domain.EnquiryUpdate) (*domain.Enquiry, error) {
	fields := map[string]interface{}{}
	if update.Status != nil {
		fields["status"] = *update.Status
	}
	if update.IsRead != nil {
		fields["is_read"] = *update.IsRead
	}
	if len(fields) == 0 {
		return nil, domain.ErrEnquiryNothingToDo
	}

	res := r.db.WithContext(ctx).Model(&DBEnquiry{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrEnquiryNotFound
	}
	return r.FindByID(ctx, id)
}

// Delete implements domain.EnquiryRepository
func (r *EnquiryRepositoryImpl) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&DBEnquiry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrEnquiryNotFound
	}
	return nil
}

// domainToDB converts a domain enquiry to the database model
func (r *EnquiryRepositoryImpl) domainToDB(enquiry *domain.Enquiry) *DBEnquiry {
	return &DBEnquiry{
		ID:                    enquiry.ID,
		Name:                  enquiry.Name,
		Email:                 enquiry.Email,
		Phone:                 enquiry.Phone,
		Topic:                 enquiry.Topic,
		Message:               enquiry.Message,
		ProductID:             enquiry.ProductID,
		CategoryID:            enquiry.CategoryID,
		CategoryName:          enquiry.CategoryName,
		ProductIDs:            strings.Join(enquiry.ProductIDs, ","),
		AllProductsOfCategory: enquiry.AllProductsOfCategory,
		Consent:               enquiry.Consent,
		Status:                enquiry.Status,
		IsRead:                enquiry.IsRead,
		IP:                    enquiry.IP,
		UserAgent:             enquiry.UserAgent,
	}
}

// dbToDomain converts a database enquiry to the domain model
func (r *EnquiryRepositoryImpl) dbToDomain(dbEnquiry *DBEnquiry) *domain.Enquiry {
	var productIDs []string
	if dbEnquiry.ProductIDs != "" {
		productIDs = strings.Split(dbEnquiry.ProductIDs, ",")
	}
	return &domain.Enquiry{
		ID:                    dbEnquiry.ID,
		Name:                  dbEnquiry.Name,
		Email:                 dbEnquiry.Email,
		Phone:                 dbEnquiry.Phone,
		Topic:                 dbEnquiry.Topic,
		Message:               dbEnquiry.Message,
		ProductID:             dbEnquiry.ProductID,
		CategoryID:            dbEnquiry.CategoryID,
		CategoryName:          dbEnquiry.CategoryName,
		ProductIDs:            productIDs,
		AllProductsOfCategory: dbEnquiry.AllProductsOfCategory,
		Consent:               dbEnquiry.Consent,
		Status:                dbEnquiry.Status,
		IsRead:                dbEnquiry.IsRead,
		IP:                    dbEnquiry.IP,
		UserAgent:             dbEnquiry.UserAgent,
		CreatedAt:             dbEnquiry.CreatedAt,
		UpdatedAt:             dbEnquiry.UpdatedAt,
	}
}

// Compile-time interface compliance verification
var _ domain.EnquiryRepository = (*EnquiryRepositoryImpl)(nil)
