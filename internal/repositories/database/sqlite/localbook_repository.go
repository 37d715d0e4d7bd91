package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tresahq/cashbook_cli/internal/apperrors"
	"github.com/tresahq/cashbook_cli/internal/core/domain"
)

// timeLayout is how timestamps are stored; RFC 3339 keeps them sortable.
const timeLayout = time.RFC3339Nano

// ListBooks retrieves all offline books, oldest first.
func (r *LocalBookRepository) ListBooks(ctx context.Context) ([]domain.LocalBook, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, created_at, updated_at FROM books ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	var books []domain.LocalBook
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	return books, rows.Err()
}

// FindBookByID retrieves one offline book.
func (r *LocalBookRepository) FindBookByID(ctx context.Context, bookID string) (*domain.LocalBook, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, created_at, updated_at FROM books WHERE id = ?`, bookID)
	book, err := scanBook(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &book, nil
}

// SaveBook persists a new offline book.
func (r *LocalBookRepository) SaveBook(ctx context.Context, book domain.LocalBook) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO books (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		book.ID, book.Name, book.CreatedAt.Format(timeLayout), book.UpdatedAt.Format(timeLayout))
	if err != nil {
		return fmt.Errorf("failed to insert book: %w", err)
	}
	return nil
}

// RenameBook updates a book's name and touch time.
func (r *LocalBookRepository) RenameBook(ctx context.Context, bookID, name string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE books SET name = ?, updated_at = ? WHERE id = ?`,
		name, time.Now().Format(timeLayout), bookID)
	if err != nil {
		return fmt.Errorf("failed to rename book: %w", err)
	}
	return requireAffected(res)
}

// DeleteBook removes a book; its entries go with it via the cascade.
func (r *LocalBookRepository) DeleteBook(ctx context.Context, bookID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM books WHERE id = ?`, bookID)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	return requireAffected(res)
}

// ListEntries retrieves a book's entries in insertion order.
func (r *LocalBookRepository) ListEntries(ctx context.Context, bookID string) ([]domain.LocalEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, book_id, type, amount, description, category, payment_mode, contact_name, entry_date, created_by, created_at
		 FROM entries WHERE book_id = ? ORDER BY created_at, id`, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.LocalEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// FindEntryByID retrieves one entry of a book.
func (r *LocalBookRepository) FindEntryByID(ctx context.Context, bookID, entryID string) (*domain.LocalEntry, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, book_id, type, amount, description, category, payment_mode, contact_name, entry_date, created_by, created_at
		 FROM entries WHERE book_id = ? AND id = ?`, bookID, entryID)
	entry, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// SaveEntry persists a new entry.
func (r *LocalBookRepository) SaveEntry(ctx context.Context, entry domain.LocalEntry) error {
	return insertEntry(ctx, r.db, entry)
}

// DeleteEntry removes one entry of a book.
func (r *LocalBookRepository) DeleteEntry(ctx context.Context, bookID, entryID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM entries WHERE book_id = ? AND id = ?`, bookID, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	return requireAffected(res)
}

// TransferEntry inserts the destination copy and, for a move, deletes the
// source entry in the same transaction so a failure leaves both books
// untouched.
func (r *LocalBookRepository) TransferEntry(ctx context.Context, copy domain.LocalEntry, sourceBookID, removeSourceID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertEntry(ctx, tx, copy); err != nil {
		return err
	}
	if removeSourceID != "" {
		res, err := tx.ExecContext(ctx, `DELETE FROM entries WHERE book_id = ? AND id = ?`, sourceBookID, removeSourceID)
		if err != nil {
			return fmt.Errorf("failed to remove source entry: %w", err)
		}
		if err := requireAffected(res); err != nil {
			return err
		}
	}
	return tx.Commit()
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertEntry(ctx context.Context, db execer, entry domain.LocalEntry) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO entries (id, book_id, type, amount, description, category, payment_mode, contact_name, entry_date, created_by, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.BookID, string(entry.Type), entry.Amount, entry.Description,
		entry.Category, entry.PaymentMode, entry.ContactName, entry.EntryDate,
		entry.CreatedBy, entry.CreatedAt.Format(timeLayout))
	if err != nil {
		return fmt.Errorf("failed to insert entry: %w", err)
	}
	return nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBook(row rowScanner) (domain.LocalBook, error) {
	var book domain.LocalBook
	var createdAt, updatedAt string
	if err := row.Scan(&book.ID, &book.Name, &createdAt, &updatedAt); err != nil {
		return domain.LocalBook{}, err
	}
	var err error
	if book.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return domain.LocalBook{}, fmt.Errorf("invalid created_at for book %s: %w", book.ID, err)
	}
	if book.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
		return domain.LocalBook{}, fmt.Errorf("invalid updated_at for book %s: %w", book.ID, err)
	}
	return book, nil
}

func scanEntry(row rowScanner) (domain.LocalEntry, error) {
	var entry domain.LocalEntry
	var entryType, createdAt string
	if err := row.Scan(&entry.ID, &entry.BookID, &entryType, &entry.Amount, &entry.Description,
		&entry.Category, &entry.PaymentMode, &entry.ContactName, &entry.EntryDate,
		&entry.CreatedBy, &createdAt); err != nil {
		return domain.LocalEntry{}, err
	}
	entry.Type = domain.EntryType(entryType)
	var err error
	if entry.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return domain.LocalEntry{}, fmt.Errorf("invalid created_at for entry %s: %w", entry.ID, err)
	}
	return entry, nil
}
