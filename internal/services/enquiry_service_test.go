package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Nakulpanchal-gamer/KubereshwarBackend/domain"
	"github.com/Nakulpanchal-gamer/KubereshwarBackend/internal/mocks"
)

func createEnquiryServiceForTest(
	enquiryRepo domain.EnquiryRepository,
	productRepo domain.ProductRepository,
	notificationSvc domain.NotificationService,
) domain.EnquiryService {
	if enquiryRepo == nil {
		enquiryRepo = mocks.NewMockEnquiryRepository()
	}
	if productRepo == nil {
		productRepo = mocks.NewMockProductRepository()
	}
	if notificationSvc == nil {
		notificationSvc = mocks.NewMockNotificationService()
	}
	return NewEnquiryService(enquiryRepo, productRepo, notificationSvc, "owner@example.com", quietLogger())
}

func TestEnquiryService_Create_Validation(t *testing.T) {
	tests := []struct {
		name        string
		enquiry     *domain.Enquiry
		expectedErr error
	}{
		{
			name:        "missing name",
			enquiry:     &domain.Enquiry{Message: "hello", Email: "a@example.com"},
			expectedErr: domain.ErrEnquiryMissingFields,
		},
		{
			name:        "whitespace-only message",
			enquiry:     &domain.Enquiry{Name: "Asha", Message: "   \n", Email: "a@example.com"},
			expectedErr: domain.ErrEnquiryMissingFields,
		},
		{
			name:        "no contact channel",
			enquiry:     &domain.Enquiry{Name: "Asha", Message: "hello"},
			expectedErr: domain.ErrEnquiryMissingContact,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := createEnquiryServiceForTest(nil, nil, nil)
			_, _, err := svc.Create(context.Background(), tt.enquiry)
			if err != tt.expectedErr {
				t.Errorf("expected %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestEnquiryService_Create_PhoneOnly(t *testing.T) {
	notifier := mocks.NewMockNotificationService()
	var captured domain.EnquiryNotification
	notifier.SendEnquiryFunc = func(to string, n domain.EnquiryNotification) error {
		if to != "owner@example.com" {
			t.Errorf("expected admin recipient, got %q", to)
		}
		captured = n
		return nil
	}
	svc := createEnquiryServiceForTest(nil, nil, notifier)

	enquiry := &domain.Enquiry{Name: " Asha ", Message: " hello ", Phone: "+911234567890"}
	created, emailSent, err := svc.Create(context.Background(), enquiry)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !emailSent {
		t.Error("expected emailSent true")
	}
	if created.Name != "Asha" || created.Message != "hello" {
		t.Errorf("fields should be trimmed: %+v", created)
	}
	// Phone-only submissions get a placeholder reply address on the admin
	// email domain.
	if captured.FromEmail != "noreply+phone@example.com" {
		t.Errorf("expected placeholder reply address, got %q", captured.FromEmail)
	}
}

func TestEnquiryService_Create_EmailFailureIsSoft(t *testing.T) {
	notifier := mocks.NewMockNotificationService()
	notifier.SendEnquiryFunc = func(to string, n domain.EnquiryNotification) error {
		return errors.New("smtp: connection refused")
	}
	svc := createEnquiryServiceForTest(nil, nil, notifier)

	created, emailSent, err := svc.Create(context.Background(), &domain.Enquiry{
		Name: "Asha", Message: "hello", Email: "a@example.com",
	})
	if err != nil {
		t.Fatalf("mail failure must not fail the submission: %v", err)
	}
	if emailSent {
		t.Error("expected emailSent false after dispatch failure")
	}
	if created.ID == "" {
		t.Error("enquiry must be persisted before the email attempt")
	}
}

func TestEnquiryService_Create_ProductResolution(t *testing.T) {
	t.Run("multi product ids", func(t *testing.T) {
		productRepo := mocks.NewMockProductRepository()
		productRepo.FindNamesByIDsFunc = func(ctx context.Context, ids []string) ([]string, error) {
			if len(ids) != 2 {
				t.Errorf("expected 2 ids, got %v", ids)
			}
			return []string{"Letterpress Card", "Foil Invite"}, nil
		}
		notifier := mocks.NewMockNotificationService()
		var captured domain.EnquiryNotification
		notifier.SendEnquiryFunc = func(to string, n domain.EnquiryNotification) error {
			captured = n
			return nil
		}
		svc := createEnquiryServiceForTest(nil, productRepo, notifier)

		_, _, err := svc.Create(context.Background(), &domain.Enquiry{
			Name: "Asha", Message: "hello", Email: "a@example.com",
			ProductIDs: []string{"p1", "p2"},
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if len(captured.ProductNames) != 2 {
			t.Errorf("expected resolved names in notification, got %v", captured.ProductNames)
		}
	})

	t.Run("legacy single product", func(t *testing.T) {
		productRepo := mocks.NewMockProductRepository()
		productRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.Product, error) {
			return &domain.Product{ID: id, Name: "Letterpress Card"}, nil
		}
		notifier := mocks.NewMockNotificationService()
		var captured domain.EnquiryNotification
		notifier.SendEnquiryFunc = func(to string, n domain.EnquiryNotification) error {
			captured = n
			return nil
		}
		svc := createEnquiryServiceForTest(nil, productRepo, notifier)

		_, _, err := svc.Create(context.Background(), &domain.Enquiry{
			Name: "Asha", Message: "hello", Email: "a@example.com",
			ProductID: "p1",
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if len(captured.ProductNames) != 1 || captured.ProductNames[0] != "Letterpress Card" {
			t.Errorf("expected legacy product name, got %v", captured.ProductNames)
		}
	})

	t.Run("lookup failure degrades to no names", func(t *testing.T) {
		productRepo := mocks.NewMockProductRepository()
		productRepo.FindNamesByIDsFunc = func(ctx context.Context, ids []string) ([]string, error) {
			return nil, errors.New("db down")
		}
		svc := createEnquiryServiceForTest(nil, productRepo, nil)

		_, emailSent, err := svc.Create(context.Background(), &domain.Enquiry{
			Name: "Asha", Message: "hello", Email: "a@example.com",
			ProductIDs: []string{"p1"},
		})
		if err != nil {
			t.Fatalf("resolution failure must not fail the submission: %v", err)
		}
		if !emailSent {
			t.Error("email should still go out without product names")
		}
	})

	t.Run("entire category skips resolution", func(t *testing.T) {
		productRepo := mocks.NewMockProductRepository()
		productRepo.FindNamesByIDsFunc = func(ctx context.Context, ids []string) ([]string, error) {
			t.Error("no lookup expected when the enquiry covers the whole category")
			return nil, nil
		}
		svc := createEnquiryServiceForTest(nil, productRepo, nil)

		_, _, err := svc.Create(context.Background(), &domain.Enquiry{
			Name: "Asha", Message: "hello", Email: "a@example.com",
			ProductIDs: []string{"p1"}, AllProductsOfCategory: true,
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
	})
}

func TestEnquiryService_Update(t *testing.T) {
	invalid := "resolved"
	valid := domain.EnquiryStatusClosed
	read := true

	tests := []struct {
		name        string
		update      domain.EnquiryUpdate
		repoErr     error
		expectedErr error
	}{
		{name: "empty update", update: domain.EnquiryUpdate{}, expectedErr: domain.ErrEnquiryNothingToDo},
		{name: "invalid status", update: domain.EnquiryUpdate{Status: &invalid}, expectedErr: domain.ErrEnquiryInvalidStatus},
		{name: "missing record", update: domain.EnquiryUpdate{Status: &valid}, repoErr: domain.ErrEnquiryNotFound, expectedErr: domain.ErrEnquiryNotFound},
		{name: "read flag only", update: domain.EnquiryUpdate{IsRead: &read}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockEnquiryRepository()
			repo.UpdateFunc = func(ctx context.Context, id string, update domain.EnquiryUpdate) (*domain.Enquiry, error) {
				if tt.repoErr != nil {
					return nil, tt.repoErr
				}
				return &domain.Enquiry{ID: id, IsRead: update.IsRead != nil && *update.IsRead}, nil
			}
			svc := createEnquiryServiceForTest(repo, nil, nil)

			_, err := svc.Update(context.Background(), "enquiry-1", tt.update)
			if err != tt.expectedErr {
				t.Errorf("expected %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestEnquiryService_Delete_PassesThrough(t *testing.T) {
	repo := mocks.NewMockEnquiryRepository()
	repo.DeleteFunc = func(ctx context.Context, id string) error {
		if id != "enquiry-1" {
			t.Errorf("unexpected id %q", id)
		}
		return nil
	}
	svc := createEnquiryServiceForTest(repo, nil, nil)

	if err := svc.Delete(context.Background(), "enquiry-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}
