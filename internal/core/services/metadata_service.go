package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tresahq/cashbook_cli/internal/apperrors"
	"github.com/tresahq/cashbook_cli/internal/cache"
	"github.com/tresahq/cashbook_cli/internal/core/domain"
	portsapi "github.com/tresahq/cashbook_cli/internal/core/ports/api"
	portssvc "github.com/tresahq/cashbook_cli/internal/core/ports/services"
	"github.com/tresahq/cashbook_cli/internal/dto"
)

const (
	categoriesResource   = "categories"
	paymentModesResource = "payment-modes"
	contactsResource     = "contacts"
)

// metadataService implements the MetadataSvcFacade interface for the
// workspace-scoped lookup entities.
type metadataService struct {
	BaseService
	api   portsapi.MetadataAPI
	cache *cache.Cache
}

// NewMetadataService creates a new metadata service with the provided dependencies.
func NewMetadataService(api portsapi.MetadataAPI, c *cache.Cache) portssvc.MetadataSvcFacade {
	return &metadataService{api: api, cache: c}
}

// Ensure metadataService implements the MetadataSvcFacade interface
var _ portssvc.MetadataSvcFacade = (*metadataService)(nil)

// ListCategories retrieves a workspace's categories; disabled on a missing id.
func (s *metadataService) ListCategories(ctx context.Context, workspaceID string) ([]domain.Category, error) {
	if missingParentID(workspaceID) {
		return []domain.Category{}, nil
	}
	key := cache.ListKey(categoriesResource, workspaceID)
	if cached, ok := cache.GetList[domain.Category](s.cache, key); ok {
		return cached, nil
	}
	categories, err := s.api.ListCategories(ctx, workspaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories",
			slog.String("workspace_id", workspaceID))
		return nil, err
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	cache.SetList(s.cache, key, categories)
	return categories, nil
}

// CreateCategory creates a category and invalidates the workspace's list.
func (s *metadataService) CreateCategory(ctx context.Context, workspaceID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	if missingParentID(workspaceID) {
		return nil, fmt.Errorf("cannot create category: %w", apperrors.ErrMissingParent)
	}
	category, err := s.api.CreateCategory(ctx, workspaceID, req)
	if err != nil {
		s.LogError(ctx, err, "Failed to create category",
			slog.String("workspace_id", workspaceID))
		return nil, err
	}
	s.cache.Invalidate(cache.ListKey(categoriesResource, workspaceID))
	return category, nil
}

// DeleteCategory removes a category and invalidates the workspace's list.
func (s *metadataService) DeleteCategory(ctx context.Context, workspaceID, categoryID string) error {
	if err := s.api.DeleteCategory(ctx, workspaceID, categoryID); err != nil {
		s.LogError(ctx, err, "Failed to delete category",
			slog.String("workspace_id", workspaceID),
			slog.String("category_id", categoryID))
		return err
	}
	s.cache.Invalidate(cache.ListKey(categoriesResource, workspaceID))
	return nil
}

// ListPaymentModes retrieves a workspace's payment modes; disabled on a
// missing id.
func (s *metadataService) ListPaymentModes(ctx context.Context, workspaceID string) ([]domain.PaymentMode, error) {
	if missingParentID(workspaceID) {
		return []domain.PaymentMode{}, nil
	}
	key := cache.ListKey(paymentModesResource, workspaceID)
	if cached, ok := cache.GetList[domain.PaymentMode](s.cache, key); ok {
		return cached, nil
	}
	modes, err := s.api.ListPaymentModes(ctx, workspaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payment modes",
			slog.String("workspace_id", workspaceID))
		return nil, err
	}
	if modes == nil {
		modes = []domain.PaymentMode{}
	}
	cache.SetList(s.cache, key, modes)
	return modes, nil
}

// CreatePaymentMode creates a payment mode and invalidates the workspace's list.
func (s *metadataService) CreatePaymentMode(ctx context.Context, workspaceID string, req dto.CreatePaymentModeRequest) (*domain.PaymentMode, error) {
	if missingParentID(workspaceID) {
		return nil, fmt.Errorf("cannot create payment mode: %w", apperrors.ErrMissingParent)
	}
	mode, err := s.api.CreatePaymentMode(ctx, workspaceID, req)
	if err != nil {
		s.LogError(ctx, err, "Failed to create payment mode",
			slog.String("workspace_id", workspaceID))
		return nil, err
	}
	s.cache.Invalidate(cache.ListKey(paymentModesResource, workspaceID))
	return mode, nil
}

// DeletePaymentMode removes a payment mode and invalidates the workspace's list.
func (s *metadataService) DeletePaymentMode(ctx context.Context, workspaceID, modeID string) error {
	if err := s.api.DeletePaymentMode(ctx, workspaceID, modeID); err != nil {
		s.LogError(ctx, err, "Failed to delete payment mode",
			slog.String("workspace_id", workspaceID),
			slog.String("mode_id", modeID))
		return err
	}
	s.cache.Invalidate(cache.ListKey(paymentModesResource, workspaceID))
	return nil
}

// ListContacts retrieves a workspace's contacts; disabled on a missing id.
func (s *metadataService) ListContacts(ctx context.Context, workspaceID string) ([]domain.Contact, error) {
	if missingParentID(workspaceID) {
		return []domain.Contact{}, nil
	}
	key := cache.ListKey(contactsResource, workspaceID)
	if cached, ok := cache.GetList[domain.Contact](s.cache, key); ok {
		return cached, nil
	}
	contacts, err := s.api.ListContacts(ctx, workspaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list contacts",
			slog.String("workspace_id", workspaceID))
		return nil, err
	}
	if contacts == nil {
		contacts = []domain.Contact{}
	}
	cache.SetList(s.cache, key, contacts)
	return contacts, nil
}

// CreateContact creates a contact and invalidates the workspace's list.
func (s *metadataService) CreateContact(ctx context.Context, workspaceID string, req dto.CreateContactRequest) (*domain.Contact, error) {
	if missingParentID(workspaceID) {
		return nil, fmt.Errorf("cannot create contact: %w", apperrors.ErrMissingParent)
	}
	contact, err := s.api.CreateContact(ctx, workspaceID, req)
	if err != nil {
		s.LogError(ctx, err, "Failed to create contact",
			slog.String("workspace_id", workspaceID))
		return nil, err
	}
	s.cache.Invalidate(cache.ListKey(contactsResource, workspaceID))
	return contact, nil
}

// DeleteContact removes a contact and invalidates the workspace's list.
func (s *metadataService) DeleteContact(ctx context.Context, workspaceID, contactID string) error {
	if err := s.api.DeleteContact(ctx, workspaceID, contactID); err != nil {
		s.LogError(ctx, err, "Failed to delete contact",
			slog.String("workspace_id", workspaceID),
			slog.String("contact_id", contactID))
		return err
	}
	s.cache.Invalidate(cache.ListKey(contactsResource, workspaceID))
	return nil
}
