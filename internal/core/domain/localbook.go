package domain

import "time"

// LocalBook is a cashbook held in the offline local store. It has no server
// identity; ids are generated locally and scoped to this store.
type LocalBook struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LocalEntry is a ledger entry in an offline book. Entry ids are scoped to
// their book: transfer operations always mint a fresh id for the destination
// copy and never carry the source id across book boundaries.
type LocalEntry struct {
	ID          string    `json:"id"`
	BookID      string    `json:"bookId"`
	Type        EntryType `json:"type"`
	Amount      string    `json:"amount"`
	Description string    `json:"description"`
	Category    string    `json:"category,omitempty"`
	PaymentMode string    `json:"paymentMode,omitempty"`
	ContactName string    `json:"contactName,omitempty"`
	EntryDate   string    `json:"entryDate"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AsEntry converts a local entry to the shared Entry shape so balance
// computation works on both.
func (e LocalEntry) AsEntry() Entry {
	entry := Entry{
		ID:          e.ID,
		Type:        e.Type,
		Amount:      e.Amount,
		Description: e.Description,
		EntryDate:   e.EntryDate,
		CreatedAt:   e.CreatedAt,
		CreatedBy:   EntryAuthor{FirstName: e.CreatedBy},
	}
	if e.Category != "" {
		entry.Category = &NamedRef{Name: e.Category}
	}
	if e.PaymentMode != "" {
		entry.PaymentMode = &NamedRef{Name: e.PaymentMode}
	}
	if e.ContactName != "" {
		entry.Contact = &NamedRef{Name: e.ContactName}
	}
	return entry
}
