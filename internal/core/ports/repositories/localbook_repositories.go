package repositories

import (
	"context"

	"github.com/tresahq/cashbook_cli/internal/core/domain"
)

// LocalBookReader defines read operations on the offline store.
type LocalBookReader interface {
	// ListBooks retrieves all offline books, oldest first.
	ListBooks(ctx context.Context) ([]domain.LocalBook, error)

	// FindBookByID retrieves one offline book.
	FindBookByID(ctx context.Context, bookID string) (*domain.LocalBook, error)

	// ListEntries retrieves a book's entries in insertion order.
	ListEntries(ctx context.Context, bookID string) ([]domain.LocalEntry, error)

	// FindEntryByID retrieves one entry of a book.
	FindEntryByID(ctx context.Context, bookID, entryID string) (*domain.LocalEntry, error)
}

// LocalBookWriter defines write operations on the offline store.
type LocalBookWriter interface {
	// SaveBook persists a new offline book.
	SaveBook(ctx context.Context, book domain.LocalBook) error

	// RenameBook updates a book's name.
	RenameBook(ctx context.Context, bookID, name string) error

	// DeleteBook removes a book and its entries.
	DeleteBook(ctx context.Context, bookID string) error

	// SaveEntry persists a new entry.
	SaveEntry(ctx context.Context, entry domain.LocalEntry) error

	// DeleteEntry removes one entry of a book.
	DeleteEntry(ctx context.Context, bookID, entryID string) error

	// TransferEntry inserts the destination copy and, when removeSourceID is
	// non-empty, deletes that entry from the source book in the same
	// transaction.
	TransferEntry(ctx context.Context, copy domain.LocalEntry, sourceBookID, removeSourceID string) error
}

// LocalBookRepositoryFacade combines the offline store interfaces.
type LocalBookRepositoryFacade interface {
	LocalBookReader
	LocalBookWriter
}
