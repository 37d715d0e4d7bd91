package client

import (
	"context"
	"fmt"

	"github.com/tresahq/cashbook_cli/internal/core/domain"
	"github.com/tresahq/cashbook_cli/internal/dto"
)

// --- Categories ---

// ListCategories fetches a workspace's entry categories.
func (c *Client) ListCategories(ctx context.Context, workspaceID string) ([]domain.Category, error) {
	var out []domain.Category
	if err := c.get(ctx, "/categories/"+workspaceID, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateCategory creates an entry category in a workspace.
func (c *Client) CreateCategory(ctx context.Context, workspaceID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	var out domain.Category
	if err := c.post(ctx, "/categories/"+workspaceID, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCategory removes an entry category.
func (c *Client) DeleteCategory(ctx context.Context, workspaceID, categoryID string) error {
	return c.del(ctx, fmt.Sprintf("/categories/%s/%s", workspaceID, categoryID), nil, nil)
}

// --- Payment modes ---

// ListPaymentModes fetches a workspace's payment modes.
func (c *Client) ListPaymentModes(ctx context.Context, workspaceID string) ([]domain.PaymentMode, error) {
	var out []domain.PaymentMode
	if err := c.get(ctx, "/payment-modes/"+workspaceID, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreatePaymentMode creates a payment mode in a workspace.
func (c *Client) CreatePaymentMode(ctx context.Context, workspaceID string, req dto.CreatePaymentModeRequest) (*domain.PaymentMode, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	var out domain.PaymentMode
	if err := c.post(ctx, "/payment-modes/"+workspaceID, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePaymentMode removes a payment mode.
func (c *Client) DeletePaymentMode(ctx context.Context, workspaceID, modeID string) error {
	return c.del(ctx, fmt.Sprintf("/payment-modes/%s/%s", workspaceID, modeID), nil, nil)
}

// --- Contacts ---

// ListContacts fetches a workspace's contacts.
func (c *Client) ListContacts(ctx context.Context, workspaceID string) ([]domain.Contact, error) {
	var out []domain.Contact
	if err := c.get(ctx, "/contacts/"+workspaceID, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateContact creates a contact in a workspace.
func (c *Client) CreateContact(ctx context.Context, workspaceID string, req dto.CreateContactRequest) (*domain.Contact, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	var out domain.Contact
	if err := c.post(ctx, "/contacts/"+workspaceID, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteContact removes a contact.
func (c *Client) DeleteContact(ctx context.Context, workspaceID, contactID string) error {
	return c.del(ctx, fmt.Sprintf("/contacts/%s/%s", workspaceID, contactID), nil, nil)
}
