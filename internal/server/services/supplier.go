package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/printflow/printflow/internal/common"
	"github.com/printflow/printflow/internal/server/models"
	"github.com/printflow/printflow/internal/server/repositories/suppliers"
)

// SupplierService manages vendor records.
type SupplierService struct {
	suppliers suppliers.Repository
}

func NewSupplierService(repo suppliers.Repository) *SupplierService {
	return &SupplierService{suppliers: repo}
}

func (s *SupplierService) Create(ctx context.Context, sup *models.Supplier) (*models.Supplier, error) {
	if err := validateSupplier(sup); err != nil {
		return nil, err
	}
	created, err := s.suppliers.Create(ctx, sup)
	if err != nil {
		return nil, fmt.Errorf("error creating supplier: %w", err)
	}
	return created, nil
}

func (s *SupplierService) Update(ctx context.Context, sup *models.Supplier) error {
	if sup.ID == "" {
		return fmt.Errorf("%w: id is required", common.ErrValidation)
	}
	if err := validateSupplier(sup); err != nil {
		return err
	}
	return s.suppliers.Update(ctx, sup)
}

func (s *SupplierService) Delete(ctx context.Context, id string) error {
	return s.suppliers.Delete(ctx, id)
}

func (s *SupplierService) Get(ctx context.Context, id string) (*models.Supplier, error) {
	return s.suppliers.GetByID(ctx, id)
}

func (s *SupplierService) List(ctx context.Context) ([]models.Supplier, error) {
	return s.suppliers.List(ctx)
}

func validateSupplier(sup *models.Supplier) error {
	switch {
	case strings.TrimSpace(sup.Name) == "":
		return fmt.Errorf("%w: name is required", common.ErrValidation)
	case strings.TrimSpace(sup.ContactPerson) == "":
		return fmt.Errorf("%w: contact person is required", common.ErrValidation)
	case strings.TrimSpace(sup.Email) == "":
		return fmt.Errorf("%w: email is required", common.ErrValidation)
	case strings.TrimSpace(sup.Phone) == "":
		return fmt.Errorf("%w: phone is required", common.ErrValidation)
	}
	return nil
}
