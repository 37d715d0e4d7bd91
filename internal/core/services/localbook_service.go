package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tresahq/cashbook_cli/internal/apperrors"
	"github.com/tresahq/cashbook_cli/internal/core/domain"
	"github.com/tresahq/cashbook_cli/internal/core/ledger"
	portsrepo "github.com/tresahq/cashbook_cli/internal/core/ports/repositories"
	portssvc "github.com/tresahq/cashbook_cli/internal/core/ports/services"
)

// localBookService implements the LocalBookSvcFacade interface against the
// offline store. It carries the legacy store semantics, including the
// transfer operations that have no server-backed equivalent.
type localBookService struct {
	BaseService
	repo portsrepo.LocalBookRepositoryFacade
}

// NewLocalBookService creates a new offline book service with the provided repository.
func NewLocalBookService(repo portsrepo.LocalBookRepositoryFacade) portssvc.LocalBookSvcFacade {
	return &localBookService{repo: repo}
}

// Ensure localBookService implements the LocalBookSvcFacade interface
var _ portssvc.LocalBookSvcFacade = (*localBookService)(nil)

// ListBooks retrieves all offline books.
func (s *localBookService) ListBooks(ctx context.Context) ([]domain.LocalBook, error) {
	books, err := s.repo.ListBooks(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list offline books")
		return nil, err
	}
	if books == nil {
		return []domain.LocalBook{}, nil
	}
	return books, nil
}

// CreateBook creates a new offline book.
func (s *localBookService) CreateBook(ctx context.Context, name string) (*domain.LocalBook, error) {
	if name == "" {
		return nil, fmt.Errorf("book name is required: %w", apperrors.ErrValidation)
	}
	now := time.Now()
	book := domain.LocalBook{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.SaveBook(ctx, book); err != nil {
		s.LogError(ctx, err, "Failed to save offline book",
			slog.String("name", name))
		return nil, err
	}
	return &book, nil
}

// RenameBook updates a book's name.
func (s *localBookService) RenameBook(ctx context.Context, bookID, name string) error {
	if name == "" {
		return fmt.Errorf("book name is required: %w", apperrors.ErrValidation)
	}
	if err := s.repo.RenameBook(ctx, bookID, name); err != nil {
		s.LogError(ctx, err, "Failed to rename offline book",
			slog.String("book_id", bookID))
		return err
	}
	return nil
}

// DeleteBook removes a book and its entries.
func (s *localBookService) DeleteBook(ctx context.Context, bookID string) error {
	if err := s.repo.DeleteBook(ctx, bookID); err != nil {
		s.LogError(ctx, err, "Failed to delete offline book",
			slog.String("book_id", bookID))
		return err
	}
	return nil
}

// DuplicateBook copies a book and its entries. Every copied entry gets a
// fresh id; entry ids never recur across books.
func (s *localBookService) DuplicateBook(ctx context.Context, bookID string) (*domain.LocalBook, error) {
	source, err := s.repo.FindBookByID(ctx, bookID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find offline book",
				slog.String("book_id", bookID))
		}
		return nil, err
	}
	entries, err := s.repo.ListEntries(ctx, bookID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	copyBook := domain.LocalBook{
		ID:        uuid.NewString(),
		Name:      source.Name + " (Copy)",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.SaveBook(ctx, copyBook); err != nil {
		return nil, err
	}
	for _, entry := range entries {
		entry.ID = uuid.NewString()
		entry.BookID = copyBook.ID
		if err := s.repo.SaveEntry(ctx, entry); err != nil {
			return nil, err
		}
	}

	s.LogDebug(ctx, "Offline book duplicated",
		slog.String("source_id", bookID),
		slog.String("copy_id", copyBook.ID),
		slog.Int("entries", len(entries)))
	return &copyBook, nil
}

// ListEntries retrieves a book's entries in insertion order.
func (s *localBookService) ListEntries(ctx context.Context, bookID string) ([]domain.LocalEntry, error) {
	entries, err := s.repo.ListEntries(ctx, bookID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list offline entries",
			slog.String("book_id", bookID))
		return nil, err
	}
	if entries == nil {
		return []domain.LocalEntry{}, nil
	}
	return entries, nil
}

// AddEntry records a new entry in an offline book.
func (s *localBookService) AddEntry(ctx context.Context, bookID string, entry domain.LocalEntry) (*domain.LocalEntry, error) {
	if !entry.Type.Valid() {
		return nil, fmt.Errorf("entry type must be INCOME or EXPENSE: %w", apperrors.ErrValidation)
	}
	if _, err := decimal.NewFromString(entry.Amount); err != nil {
		return nil, fmt.Errorf("entry amount %q is not a decimal: %w", entry.Amount, apperrors.ErrValidation)
	}
	if _, err := s.repo.FindBookByID(ctx, bookID); err != nil {
		return nil, err
	}

	entry.ID = uuid.NewString()
	entry.BookID = bookID
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	if err := s.repo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save offline entry",
			slog.String("book_id", bookID))
		return nil, err
	}
	return &entry, nil
}

// DeleteEntry removes one entry of a book.
func (s *localBookService) DeleteEntry(ctx context.Context, bookID, entryID string) error {
	if err := s.repo.DeleteEntry(ctx, bookID, entryID); err != nil {
		s.LogError(ctx, err, "Failed to delete offline entry",
			slog.String("book_id", bookID),
			slog.String("entry_id", entryID))
		return err
	}
	return nil
}

// MoveEntry removes an entry from the source book and inserts it into the
// destination under a fresh id, atomically, with field values unchanged.
func (s *localBookService) MoveEntry(ctx context.Context, fromBookID, toBookID, entryID string) (*domain.LocalEntry, error) {
	return s.transfer(ctx, fromBookID, toBookID, entryID, true, false)
}

// CopyEntry inserts a copy of the entry into the destination under a fresh
// id; the source book is unchanged.
func (s *localBookService) CopyEntry(ctx context.Context, fromBookID, toBookID, entryID string) (*domain.LocalEntry, error) {
	return s.transfer(ctx, fromBookID, toBookID, entryID, false, false)
}

// CopyOppositeEntry copies the entry into the destination with the type
// flipped INCOME↔EXPENSE; the source book is unchanged.
func (s *localBookService) CopyOppositeEntry(ctx context.Context, fromBookID, toBookID, entryID string) (*domain.LocalEntry, error) {
	return s.transfer(ctx, fromBookID, toBookID, entryID, false, true)
}

func (s *localBookService) transfer(ctx context.Context, fromBookID, toBookID, entryID string, removeSource, flipType bool) (*domain.LocalEntry, error) {
	if _, err := s.repo.FindBookByID(ctx, toBookID); err != nil {
		return nil, fmt.Errorf("destination book %s: %w", toBookID, err)
	}
	source, err := s.repo.FindEntryByID(ctx, fromBookID, entryID)
	if err != nil {
		return nil, err
	}

	copied := *source
	copied.ID = uuid.NewString()
	copied.BookID = toBookID
	if flipType {
		copied.Type = copied.Type.Opposite()
	}

	removeID := ""
	if removeSource {
		removeID = entryID
	}
	if err := s.repo.TransferEntry(ctx, copied, fromBookID, removeID); err != nil {
		s.LogError(ctx, err, "Failed to transfer offline entry",
			slog.String("from_book_id", fromBookID),
			slog.String("to_book_id", toBookID),
			slog.String("entry_id", entryID))
		return nil, err
	}

	s.LogDebug(ctx, "Offline entry transferred",
		slog.String("from_book_id", fromBookID),
		slog.String("to_book_id", toBookID),
		slog.Bool("moved", removeSource),
		slog.Bool("flipped", flipType))
	return &copied, nil
}

// BookBalance folds the book's entries into its net balance.
func (s *localBookService) BookBalance(ctx context.Context, bookID string) (decimal.Decimal, error) {
	entries, err := s.repo.ListEntries(ctx, bookID)
	if err != nil {
		return decimal.Decimal{}, err
	}
	converted := make([]domain.Entry, 0, len(entries))
	for _, e := range entries {
		converted = append(converted, e.AsEntry())
	}
	totals, err := ledger.Totalize(converted)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return totals.Net, nil
}
