package repositories

import (
	"context"
	"testing"

	"github.com/Nakulpanchal-gamer/KubereshwarBackend/domain"
)

func TestEnquiryRepositoryImpl_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEnquiryRepository(db)
	ctx := context.Background()

	consent := true
	enquiry := &domain.Enquiry{
		Name:                  "Asha",
		Email:                 "asha@example.com",
		Phone:                 "+911234567890",
		Message:               "Interested in bulk order",
		CategoryID:            "cat-1",
		CategoryName:          "Books",
		ProductIDs:            []string{"p1", "p2"},
		AllProductsOfCategory: false,
		Consent:               &consent,
		IP:                    "203.0.113.9",
		UserAgent:             "test-agent",
	}

	if err := repo.Create(ctx, enquiry); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if enquiry.ID == "" {
		t.Fatal("Create must assign an id")
	}

	got, err := repo.FindByID(ctx, enquiry.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Status != domain.EnquiryStatusNew {
		t.Errorf("new enquiry should default to status new, got %q", got.Status)
	}
	if got.IsRead {
		t.Error("new enquiry should be unread")
	}
	if len(got.ProductIDs) != 2 || got.ProductIDs[0] != "p1" || got.ProductIDs[1] != "p2" {
		t.Errorf("product ids round-trip failed: %v", got.ProductIDs)
	}
	if got.Consent == nil || !*got.Consent {
		t.Error("consent round-trip failed")
	}
}

func TestEnquiryRepositoryImpl_FindAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEnquiryRepository(db)
	ctx := context.Background()

	for _, name := range []string{"first", "second"} {
		if err := repo.Create(ctx, &domain.Enquiry{Name: name, Message: "m", Email: "e@example.com"}); err != nil {
			t.Fatalf("Create %s: %v", name, err)
		}
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 enquiries, got %d", len(all))
	}
}

func TestEnquiryRepositoryImpl_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEnquiryRepository(db)
	ctx := context.Background()

	enquiry := &domain.Enquiry{Name: "Asha", Message: "m", Email: "a@example.com"}
	if err := repo.Create(ctx, enquiry); err != nil {
		t.Fatalf("Create: %v", err)
	}

	t.Run("status and read flag", func(t *testing.T) {
		status := domain.EnquiryStatusClosed
		read := true
		got, err := repo.Update(ctx, enquiry.ID, domain.EnquiryUpdate{Status: &status, IsRead: &read})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if got.Status != domain.EnquiryStatusClosed || !got.IsRead {
			t.Errorf("update not applied: status=%q isRead=%v", got.Status, got.IsRead)
		}
	})

	t.Run("empty update", func(t *testing.T) {
		if _, err := repo.Update(ctx, enquiry.ID, domain.EnquiryUpdate{}); err != domain.ErrEnquiryNothingToDo {
			t.Errorf("expected ErrEnquiryNothingToDo, got %v", err)
		}
	})

	t.Run("missing record", func(t *testing.T) {
		status := domain.EnquiryStatusNew
		if _, err := repo.Update(ctx, "no-such-id", domain.EnquiryUpdate{Status: &status}); err != domain.ErrEnquiryNotFound {
			t.Errorf("expected ErrEnquiryNotFound, got %v", err)
		}
	})
}

func TestEnquiryRepositoryImpl_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEnquiryRepository(db)
	ctx := context.Background()

	enquiry := &domain.Enquiry{Name: "Asha", Message: "m", Email: "a@example.com"}
	if err := repo.Create(ctx, enquiry); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Delete(ctx, enquiry.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.FindByID(ctx, enquiry.ID); err != domain.ErrEnquiryNotFound {
		t.Errorf("expected ErrEnquiryNotFound after delete, got %v", err)
	}
	if err := repo.Delete(ctx, enquiry.ID); err != domain.ErrEnquiryNotFound {
		t.Errorf("expected ErrEnquiryNotFound on double delete, got %v", err)
	}
}

func TestProductRepositoryImpl_FindNamesByIDs(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	products := []DBProduct{
		{ID: "p1", Name: "Letterpress Cards"},
		{ID: "p2", Name: "Wedding Invites"},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			t.Fatalf("seed product: %v", err)
		}
	}

	repo := NewProductRepository(db)

	names, err := repo.FindNamesByIDs(ctx, []string{"p1", "p2", "missing"})
	if err != nil {
		t.Fatalf("FindNamesByIDs: %v", err)
	}
	if len(names) != 2 {
		t.Fatalf("expected 2 names, unresolved ids skipped, got %v", names)
	}

	names, err = repo.FindNamesByIDs(ctx, nil)
	if err != nil {
		t.Fatalf("FindNamesByIDs(nil): %v", err)
	}
	if names != nil {
		t.Errorf("expected nil names for empty input, got %v", names)
	}
}
