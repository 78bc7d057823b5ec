package mocks

import (
	"context"

	"github.com/Nakulpanchal-gamer/KubereshwarBackend/domain"
)

// MockEnquiryRepository implements domain.EnquiryRepository for testing
type MockEnquiryRepository struct {
	CreateFunc   func(ctx context.Context, enquiry *domain.Enquiry) error
	FindByIDFunc func(ctx context.Context, id string) (*domain.Enquiry, error)
	FindAllFunc  func(ctx context.Context) ([]*domain.Enquiry, error)
	UpdateFunc   func(ctx context.Context, id string, update domain.EnquiryUpdate) (*domain.Enquiry, error)
	DeleteFunc   func(ctx context.Context, id string) error
}

// NewMockEnquiryRepository creates a new MockEnquiryRepository with default behaviors
func NewMockEnquiryRepository() *MockEnquiryRepository {
	return &MockEnquiryRepository{}
}

// Create persists a new enquiry
func (m *MockEnquiryRepository) Create(ctx context.Context, enquiry *domain.Enquiry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, enquiry)
	}
	if enquiry.ID == "" {
		enquiry.ID = "enquiry-1"
	}
	if enquiry.Status == "" {
		enquiry.Status = domain.EnquiryStatusNew
	}
	return nil
}

// FindByID finds an enquiry
func (m *MockEnquiryRepository) FindByID(ctx context.Context, id string) (*domain.Enquiry, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrEnquiryNotFound
}

// FindAll lists enquiries
func (m *MockEnquiryRepository) FindAll(ctx context.Context) ([]*domain.Enquiry, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

// Update applies admin edits
func (m *MockEnquiryRepository) Update(ctx context.Context, id string, update domain.EnquiryUpdate) (*domain.Enquiry, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, update)
	}
	return nil, domain.ErrEnquiryNotFound
}

// Delete removes an enquiry
func (m *MockEnquiryRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return domain.ErrEnquiryNotFound
}

// MockProductRepository implements domain.ProductRepository for testing
type MockProductRepository struct {
	FindByIDFunc       func(ctx context.Context, id string) (*domain.Product, error)
	FindNamesByIDsFunc func(ctx context.Context, ids []string) ([]string, error)
	FindAllFunc        func(ctx context.Context) ([]*domain.Product, error)
}

// NewMockProductRepository creates a new MockProductRepository with default behaviors
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{}
}

// FindByID looks up a single product
func (m *MockProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return &domain.Product{ID: id, Name: "Product " + id}, nil
}

// FindNamesByIDs resolves product names
func (m *MockProductRepository) FindNamesByIDs(ctx context.Context, ids []string) ([]string, error) {
	if m.FindNamesByIDsFunc != nil {
		return m.FindNamesByIDsFunc(ctx, ids)
	}
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, "Product "+id)
	}
	return names, nil
}

// FindAll lists products
func (m *MockProductRepository) FindAll(ctx context.Context) ([]*domain.Product, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

// MockEnquiryService implements domain.EnquiryService for testing
type MockEnquiryService struct {
	CreateFunc func(ctx context.Context, enquiry *domain.Enquiry) (*domain.Enquiry, bool, error)
	ListFunc   func(ctx context.Context) ([]*domain.Enquiry, error)
	UpdateFunc func(ctx context.Context, id string, update domain.EnquiryUpdate) (*domain.Enquiry, error)
	DeleteFunc func(ctx context.Context, id string) error
}

// NewMockEnquiryService creates a new MockEnquiryService with default behaviors
func NewMockEnquiryService() *MockEnquiryService {
	return &MockEnquiryService{}
}

// Create validates, persists and notifies
func (m *MockEnquiryService) Create(ctx context.Context, enquiry *domain.Enquiry) (*domain.Enquiry, bool, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, enquiry)
	}
	enquiry.ID = "enquiry-1"
	enquiry.Status = domain.EnquiryStatusNew
	return enquiry, true, nil
}

// List returns all enquiries
func (m *MockEnquiryService) List(ctx context.Context) ([]*domain.Enquiry, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

// Update applies admin edits
func (m *MockEnquiryService) Update(ctx context.Context, id string, update domain.EnquiryUpdate) (*domain.Enquiry, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, update)
	}
	return nil, domain.ErrEnquiryNotFound
}

// Delete removes an enquiry
func (m *MockEnquiryService) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return domain.ErrEnquiryNotFound
}

// Compile-time interface compliance verification
var (
	_ domain.EnquiryRepository = (*MockEnquiryRepository)(nil)
	_ domain.ProductRepository = (*MockProductRepository)(nil)
	_ domain.EnquiryService    = (*MockEnquiryService)(nil)
)
