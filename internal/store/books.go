// ABOUTME: Book catalog persistence operations for the SQLite store
// ABOUTME: Covers create, get, update, delete, and paginated listing

package store

import (
	"context"
	"database/sql"
	"fmt"
)

// CreateBook inserts a new book and returns it with its generated id.
func (s *SQLiteStore) CreateBook(ctx context.Context, title, author string) (*Book, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO books (title, author) VALUES (?, ?)`,
		title, author,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting book: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting book id: %w", err)
	}

	s.logger.Debug("created book", "id", id, "title", title)
	return &Book{ID: id, Title: title, Author: author}, nil
}

// GetBook retrieves a book by id.
// Returns ErrNotFound if the book doesn't exist.
func (s *SQLiteStore) GetBook(ctx context.Context, id int64) (*Book, error) {
	var book Book
	err := s.db.QueryRowContext(ctx,
		`SELECT id, title, author FROM books WHERE id = ?`, id,
	).Scan(&book.ID, &book.Title, &book.Author)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying book: %w", err)
	}

	return &book, nil
}

// UpdateBook updates a book's title and author.
// Returns ErrNotFound if the book doesn't exist.
func (s *SQLiteStore) UpdateBook(ctx context.Context, id int64, title, author string) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE books SET title = ?, author = ? WHERE id = ?`,
		title, author, id,
	)
	if err != nil {
		return fmt.Errorf("updating book: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	s.logger.Debug("updated book", "id", id)
	return nil
}

// DeleteBook removes a book row. Transactions referencing it are left in
// place; the transaction list renders them with an "Unknown" title.
// Returns ErrNotFound if the book doesn't exist.
func (s *SQLiteStore) DeleteBook(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM books WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting book: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	s.logger.Debug("deleted book", "id", id)
	return nil
}

// ListBooks retrieves a page of books in insertion order.
func (s *SQLiteStore) ListBooks(ctx context.Context, limit, offset int) ([]*Book, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, author FROM books ORDER BY id LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("querying books: %w", err)
	}
	defer rows.Close()

	return scanBooks(rows)
}

// ListAllBooks retrieves every book, for populating the transaction form.
func (s *SQLiteStore) ListAllBooks(ctx context.Context) ([]*Book, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, author FROM books ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("querying all books: %w", err)
	}
	defer rows.Close()

	return scanBooks(rows)
}

func scanBooks(rows *sql.Rows) ([]*Book, error) {
	var books []*Book
	for rows.Next() {
		var book Book
		if err := rows.Scan(&book.ID, &book.Title, &book.Author); err != nil {
			return nil, fmt.Errorf("scanning book row: %w", err)
		}
		books = append(books, &book)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating book rows: %w", err)
	}

	return books, nil
}

// CountBooks returns the total number of books.
func (s *SQLiteStore) CountBooks(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM books`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting books: %w", err)
	}
	return count, nil
}
