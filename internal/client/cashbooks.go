package client

import (
	"context"
	"fmt"

	"github.com/tresahq/cashbook_cli/internal/core/domain"
	"github.com/tresahq/cashbook_cli/internal/dto"
)

// ListCashbooks fetches the cashbooks of a workspace.
func (c *Client) ListCashbooks(ctx context.Context, workspaceID string) ([]domain.Cashbook, error) {
	var out []domain.Cashbook
	if err := c.get(ctx, "/cashbooks/workspace/"+workspaceID, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCashbook fetches one cashbook with its server-maintained totals.
func (c *Client) GetCashbook(ctx context.Context, cashbookID string) (*domain.Cashbook, error) {
	var out domain.Cashbook
	if err := c.get(ctx, "/cashbooks/"+cashbookID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCashbook creates a cashbook under a workspace.
func (c *Client) CreateCashbook(ctx context.Context, workspaceID string, req dto.CreateCashbookRequest) (*domain.Cashbook, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	var out domain.Cashbook
	if err := c.post(ctx, "/cashbooks/workspace/"+workspaceID, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCashbook applies a partial update to a cashbook.
func (c *Client) UpdateCashbook(ctx context.Context, cashbookID string, req dto.UpdateCashbookRequest) (*domain.Cashbook, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	var out domain.Cashbook
	if err := c.patch(ctx, "/cashbooks/"+cashbookID, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCashbook deletes a cashbook.
func (c *Client) DeleteCashbook(ctx context.Context, cashbookID string) error {
	return c.del(ctx, "/cashbooks/"+cashbookID, nil, nil)
}

// ListCashbookMembers fetches a cashbook's members with their book-level
// roles.
func (c *Client) ListCashbookMembers(ctx context.Context, cashbookID string) ([]domain.CashbookMember, error) {
	var out []domain.CashbookMember
	if err := c.get(ctx, fmt.Sprintf("/cashbooks/%s/members", cashbookID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateCashbookMember changes a member's role within a cashbook.
func (c *Client) UpdateCashbookMember(ctx context.Context, cashbookID, userID string, req dto.UpdateCashbookMemberRequest) (*domain.CashbookMember, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	var out domain.CashbookMember
	if err := c.patch(ctx, fmt.Sprintf("/cashbooks/%s/members/%s", cashbookID, userID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveCashbookMember removes a member from a cashbook.
func (c *Client) RemoveCashbookMember(ctx context.Context, cashbookID, userID string) error {
	return c.del(ctx, fmt.Sprintf("/cashbooks/%s/members/%s", cashbookID, userID), nil, nil)
}
