package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Nakulpanchal-gamer/KubereshwarBackend/domain"
)

// EnquiryServiceImpl implements domain.EnquiryService
type EnquiryServiceImpl struct {
	enquiryRepo     domain.EnquiryRepository
	productRepo     domain.ProductRepository
	notificationSvc domain.NotificationService
	adminEmail      string
	log             *logrus.Logger
}

// NewEnquiryService creates a new enquiry service
func NewEnquiryService(
	enquiryRepo domain.EnquiryRepository,
	productRepo domain.ProductRepository,
	notificationSvc domain.NotificationService,
	adminEmail string,
	log *logrus.Logger,
) domain.EnquiryService {
	return &EnquiryServiceImpl{
		enquiryRepo:     enquiryRepo,
		productRepo:     productRepo,
		notificationSvc: notificationSvc,
		adminEmail:      adminEmail,
		log:             log,
	}
}

// Create implements domain.EnquiryService. The enquiry email is awaited
// synchronously; its failure is reported through the returned flag, never as
// a request failure.
func (s *EnquiryServiceImpl) Create(ctx context.Context, enquiry *domain.Enquiry) (*domain.Enquiry, bool, error) {
	enquiry.Name = strings.TrimSpace(enquiry.Name)
	enquiry.Email = strings.TrimSpace(enquiry.Email)
	enquiry.Phone = strings.TrimSpace(enquiry.Phone)
	enquiry.Message = strings.TrimSpace(enquiry.Message)

	if enquiry.Name == "" || enquiry.Message == "" {
		return nil, false, domain.ErrEnquiryMissingFields
	}
	if enquiry.Email == "" && enquiry.Phone == "" {
		return nil, false, domain.ErrEnquiryMissingContact
	}

	if err := s.enquiryRepo.Create(ctx, enquiry); err != nil {
		return nil, false, fmt.Errorf("persist enquiry: %w", err)
	}

	productNames := s.resolveProductNames(ctx, enquiry)

	emailSent := true
	if err := s.notificationSvc.SendEnquiry(s.adminEmail, domain.EnquiryNotification{
		FromName:              enquiry.Name,
		FromEmail:             s.replyAddress(enquiry),
		Phone:                 enquiry.Phone,
		Topic:                 enquiry.Topic,
		Message:               enquiry.Message,
		CategoryID:            enquiry.CategoryID,
		CategoryName:          enquiry.CategoryName,
		ProductNames:          productNames,
		AllProductsOfCategory: enquiry.AllProductsOfCategory,
		Consent:               enquiry.Consent,
		ReceivedAt:            enquiry.CreatedAt,
		IP:                    enquiry.IP,
		UserAgent:             enquiry.UserAgent,
	}); err != nil {
		s.log.WithError(err).WithField("enquiry_id", enquiry.ID).Error("enquiry email dispatch failed")
		emailSent = false
	}

	return enquiry, emailSent, nil
}

// resolveProductNames turns the referenced product ids into display names for
// the notification. Resolution is soft: lookup failures degrade to an empty
// list instead of failing the submission.
func (s *EnquiryServiceImpl) resolveProductNames(ctx context.Context, enquiry *domain.Enquiry) []string {
	if enquiry.AllProductsOfCategory {
		return nil
	}

	if len(enquiry.ProductIDs) > 0 {
		names, err := s.productRepo.FindNamesByIDs(ctx, enquiry.ProductIDs)
		if err != nil {
			s.log.WithError(err).Warn("product name resolution failed")
			return nil
		}
		return names
	}

	if enquiry.ProductID != "" {
		product, err := s.productRepo.FindByID(ctx, enquiry.ProductID)
		if err != nil {
			s.log.WithError(err).WithField("product_id", enquiry.ProductID).Warn("legacy product lookup failed")
			return nil
		}
		return []string{product.Name}
	}

	return nil
}

// replyAddress falls back to a placeholder for phone-only enquiries so the
// admin email always carries a usable Reply-To.
func (s *EnquiryServiceImpl) replyAddress(enquiry *domain.Enquiry) string {
	if enquiry.Email != "" {
		return enquiry.Email
	}
	mailDomain := "enquiry.local"
	if i := strings.Index(s.adminEmail, "@"); i >= 0 && i+1 < len(s.adminEmail) {
		mailDomain = s.adminEmail[i+1:]
	}
	return "noreply+phone@" + mailDomain
}

// List implements domain.EnquiryService
func (s *EnquiryServiceImpl) List(ctx context.Context) ([]*domain.Enquiry, error) {
	return s.enquiryRepo.FindAll(ctx)
}

// Update implements domain.EnquiryService
func (s *EnquiryServiceImpl) Update(ctx context.Context, id string, update domain.EnquiryUpdate) (*domain.Enquiry, error) {
	if update.Empty() {
		return nil, domain.ErrEnquiryNothingToDo
	}
	if update.Status != nil && !domain.ValidEnquiryStatus(*update.Status) {
		return nil, domain.ErrEnquiryInvalidStatus
	}
	return s.enquiryRepo.Update(ctx, id, update)
}

// Delete implements domain.EnquiryService
func (s *EnquiryServiceImpl) Delete(ctx context.Context, id string) error {
	return s.enquiryRepo.Delete(ctx, id)
}

// Compile-time interface compliance verification
var _ domain.EnquiryService = (*EnquiryServiceImpl)(nil)
