package client

import (
	"context"
	"fmt"

	"github.com/tresahq/cashbook_cli/internal/core/domain"
	"github.com/tresahq/cashbook_cli/internal/dto"
)

// ListEntries fetches a cashbook's entries in server order (newest first).
func (c *Client) ListEntries(ctx context.Context, cashbookID string) ([]domain.Entry, error) {
	var out []domain.Entry
	if err := c.get(ctx, "/entries/cashbook/"+cashbookID, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateEntry records a new entry in a cashbook and returns the authoritative
// row, including the server-assigned id.
func (c *Client) CreateEntry(ctx context.Context, cashbookID string, req dto.CreateEntryRequest) (*domain.Entry, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	var out domain.Entry
	if err := c.post(ctx, "/entries/cashbook/"+cashbookID, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteEntry deletes an entry, forwarding the mandatory reason in the body.
func (c *Client) DeleteEntry(ctx context.Context, entryID, cashbookID string, req dto.DeleteEntryRequest) error {
	if err := dto.Validate(req); err != nil {
		return err
	}
	return c.del(ctx, fmt.Sprintf("/entries/%s/cashbook/%s", entryID, cashbookID), req, nil)
}
