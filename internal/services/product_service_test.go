package services

import (
	"context"
	"testing"

	apperrors "github.com/pratik-mahalle/cloudsentry/internal/pkg/errors"
	"github.com/pratik-mahalle/cloudsentry/internal/testutil"
)

func TestProductService_Create(t *testing.T) {
	repo := testutil.NewMockProductRepository()
	svc := NewProductService(repo, testLog())
	ctx := context.Background()

	p, err := svc.Create(ctx, "payments", "payment processing stack")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if p.ID == "" {
		t.Error("Create() returned empty id")
	}
	if p.Name != "payments" {
		t.Errorf("name = %s, want payments", p.Name)
	}
}

func TestProductService_CreateDuplicateNameConflicts(t *testing.T) {
	repo := testutil.NewMockProductRepository()
	svc := NewProductService(repo, testLog())
	ctx := context.Background()

	if _, err := svc.Create(ctx, "payments", ""); err != nil {
		t.Fatalf("first Create() error = %v", err)
	}

	_, err := svc.Create(ctx, "payments", "second attempt")
	if !apperrors.IsConflict(err) {
		t.Fatalf("duplicate Create() error = %v, want CONFLICT", err)
	}
	if len(repo.Products) != 1 {
		t.Errorf("expected 1 stored product, got %d", len(repo.Products))
	}
}

func TestProductService_CreateEmptyName(t *testing.T) {
	svc := NewProductService(testutil.NewMockProductRepository(), testLog())

	if _, err := svc.Create(context.Background(), "", "no name"); err == nil {
		t.Fatal("Create() accepted an empty name")
	}
}

func TestProductService_Update(t *testing.T) {
	repo := testutil.NewMockProductRepository()
	svc := NewProductService(repo, testLog())
	ctx := context.Background()

	p, _ := svc.Create(ctx, "payments", "old description")

	newDesc := "new description"
	updated, err := svc.Update(ctx, p.ID, nil, &newDesc)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Name != "payments" {
		t.Errorf("nil name should leave name unchanged, got %s", updated.Name)
	}
	if updated.Description != newDesc {
		t.Errorf("description = %s, want %s", updated.Description, newDesc)
	}
}

func TestProductService_DeleteNotFound(t *testing.T) {
	svc := NewProductService(testutil.NewMockProductRepository(), testLog())

	err := svc.Delete(context.Background(), "missing")
	if !apperrors.IsNotFound(err) {
		t.Fatalf("Delete() error = %v, want NOT_FOUND", err)
	}
}
