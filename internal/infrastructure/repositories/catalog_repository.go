package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Nakulpanchal-gamer/KubereshwarBackend/domain"
)

// DBProduct represents the database model for Product
type DBProduct struct {
	ID         string `gorm:"primaryKey;size:36"`
	Name       string `gorm:"size:255;not null"`
	CategoryID string `gorm:"size:36;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName returns the table name for GORM
func (DBProduct) TableName() string {
	return "products"
}

// DBCategory represents the database model for Category
type DBCategory struct {
	ID        string `gorm:"primaryKey;size:36"`
	Name      string `gorm:"size:255;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (DBCategory) TableName() string {
	return "categories"
}

// ProductRepositoryImpl implements domain.ProductRepository using GORM
type ProductRepositoryImpl struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) domain.ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

// FindByID implements domain.ProductRepository
func (r *ProductRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	var dbProduct DBProduct
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbProduct).Error
	if err != nil {
		return nil, err
	}
	return &domain.Product{
		ID:         dbProduct.ID,
		Name:       dbProduct.Name,
		CategoryID: dbProduct.CategoryID,
		CreatedAt:  dbProduct.CreatedAt,
		UpdatedAt:  dbProduct.UpdatedAt,
	}, nil
}

// FindNamesByIDs implements domain.ProductRepository. Unknown ids are
// silently skipped, matching the soft resolution the enquiry email needs.
func (r *ProductRepositoryImpl) FindNamesByIDs(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var names []string
	err := r.db.WithContext(ctx).
		Model(&DBProduct{}).
		Where("id IN ?", ids).
		Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

// FindAll implements domain.ProductRepository
func (r *ProductRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Product, error) {
	var dbProducts []DBProduct
	if err := r.db.WithContext(ctx).Order("name asc").Find(&dbProducts).Error; err != nil {
		return nil, err
	}
	products := make([]*domain.Product, 0, len(dbProducts))
	for i := range dbProducts {
		p := dbProducts[i]
		products = append(products, &domain.Product{
			ID:         p.ID,
			Name:       p.Name,
			CategoryID: p.CategoryID,
			CreatedAt:  p.CreatedAt,
			UpdatedAt:  p.UpdatedAt,
		})
	}
	return products, nil
}

// CategoryRepositoryImpl implements domain.CategoryRepository using GORM
type CategoryRepositoryImpl struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) domain.CategoryRepository {
	return &CategoryRepositoryImpl{db: db}
}

// FindAll implements domain.CategoryRepository
func (r *CategoryRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Category, error) {
	var dbCategories []DBCategory
	if err := r.db.WithContext(ctx).Order("name asc").Find(&dbCategories).Error; err != nil {
		return nil, err
	}
	categories := make([]*domain.Category, 0, len(dbCategories))
	for i := range dbCategories {
		c := dbCategories[i]
		categories = append(categories, &domain.Category{
			ID:        c.ID,
			Name:      c.Name,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		})
	}
	return categories, nil
}

// Compile-time interface compliance verification
var (
	_ domain.ProductRepository  = (*ProductRepositoryImpl)(nil)
	_ domain.CategoryRepository = (*CategoryRepositoryImpl)(nil)
)
