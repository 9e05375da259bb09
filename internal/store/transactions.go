// ABOUTME: Transaction ledger persistence for the SQLite store
// ABOUTME: Checkout inserts, active-checkout lookups, denormalized listing, and the check-in unit of work

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// CreateTransaction inserts a transaction row.
// Returns ErrAlreadyCheckedOut if the partial unique index on active
// checkouts rejects the insert (two concurrent checkouts of the same pair).
func (s *SQLiteStore) CreateTransaction(ctx context.Context, tx *Transaction) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO book_transactions (book_id, user_id, checkout_date, status)
		VALUES (?, ?, ?, ?)
	`,
		tx.BookID,
		tx.UserID,
		tx.CheckoutDate.UTC().Format(time.RFC3339),
		tx.Status,
	)
	if err != nil {
		if isConstraintViolation(err) {
			return ErrAlreadyCheckedOut
		}
		return fmt.Errorf("inserting transaction: %w", err)
	}

	tx.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting transaction id: %w", err)
	}

	s.logger.Debug("created transaction", "id", tx.ID, "user_id", tx.UserID, "book_id", tx.BookID, "status", tx.Status)
	return nil
}

// HasActiveCheckout reports whether the user currently has the book checked out.
func (s *SQLiteStore) HasActiveCheckout(ctx context.Context, userID, bookID int64) (bool, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, `
		SELECT 1 FROM book_transactions
		WHERE user_id = ? AND book_id = ? AND status = ?
		LIMIT 1
	`, userID, bookID, StatusCheckedOut).Scan(&exists)

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("querying active checkout: %w", err)
	}
	return true, nil
}

// ListTransactions retrieves a page of transactions in insertion order,
// each joined with the referenced book title and username. Dangling
// references fall back to "Unknown".
func (s *SQLiteStore) ListTransactions(ctx context.Context, limit, offset int) ([]*TransactionView, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT t.id,
		       COALESCE(b.title, 'Unknown'),
		       COALESCE(u.username, 'Unknown'),
		       t.checkout_date,
		       t.status
		FROM book_transactions t
		LEFT JOIN books b ON b.id = t.book_id
		LEFT JOIN users u ON u.id = t.user_id
		ORDER BY t.id
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("querying transactions: %w", err)
	}
	defer rows.Close()

	var views []*TransactionView
	for rows.Next() {
		var v TransactionView
		var checkoutDateStr string

		if err := rows.Scan(&v.ID, &v.BookTitle, &v.Username, &checkoutDateStr, &v.Status); err != nil {
			return nil, fmt.Errorf("scanning transaction row: %w", err)
		}

		v.CheckoutDate, err = time.Parse(time.RFC3339, checkoutDateStr)
		if err != nil {
			return nil, fmt.Errorf("parsing checkout_date: %w", err)
		}

		views = append(views, &v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction rows: %w", err)
	}

	return views, nil
}

// CountTransactions returns the total number of transactions.
func (s *SQLiteStore) CountTransactions(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM book_transactions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting transactions: %w", err)
	}
	return count, nil
}

// CheckinNewBook records a returned copy: a brand-new book row and a
// checked_in transaction referencing it, inside one database transaction
// so a failed insert leaves neither row behind.
func (s *SQLiteStore) CheckinNewBook(ctx context.Context, userID int64, title, author string, when time.Time) (*Book, *Transaction, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("beginning checkin transaction: %w", err)
	}
	defer dbTx.Rollback()

	res, err := dbTx.ExecContext(ctx,
		`INSERT INTO books (title, author) VALUES (?, ?)`, title, author,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("inserting checkin book: %w", err)
	}
	bookID, err := res.LastInsertId()
	if err != nil {
		return nil, nil, fmt.Errorf("getting checkin book id: %w", err)
	}

	res, err = dbTx.ExecContext(ctx, `
		INSERT INTO book_transactions (book_id, user_id, checkout_date, status)
		VALUES (?, ?, ?, ?)
	`, bookID, userID, when.UTC().Format(time.RFC3339), StatusCheckedIn)
	if err != nil {
		return nil, nil, fmt.Errorf("inserting checkin transaction: %w", err)
	}
	txID, err := res.LastInsertId()
	if err != nil {
		return nil, nil, fmt.Errorf("getting checkin transaction id: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("committing checkin: %w", err)
	}

	book := &Book{ID: bookID, Title: title, Author: author}
	tx := &Transaction{
		ID:           txID,
		BookID:       bookID,
		UserID:       userID,
		CheckoutDate: when.UTC(),
		Status:       StatusCheckedIn,
	}

	s.logger.Debug("recorded checkin", "user_id", userID, "book_id", bookID, "transaction_id", txID)
	return book, tx, nil
}
