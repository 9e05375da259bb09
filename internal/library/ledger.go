// ABOUTME: Transaction ledger manager for checkouts and check-ins
// ABOUTME: Enforces the one-active-checkout rule and the check-in-creates-a-book behavior

package library

import (
	"context"
	"log/slog"
	"time"

	"github.com/bookdesk/bookdesk/internal/store"
)

// Ledger manages checkout and check-in transactions.
type Ledger struct {
	store   store.Store
	perPage int
	logger  *slog.Logger
	now     func() time.Time
}

// LedgerPage is one page of transactions plus the full user and book sets
// the creation form is populated from.
type LedgerPage struct {
	Transactions Page[*store.TransactionView]
	Users        []*store.User
	Books        []*store.Book
}

// List returns one page of denormalized transactions plus all users and books.
func (l *Ledger) List(ctx context.Context, page, perPage int) (*LedgerPage, error) {
	page, perPage = clampPaging(page, perPage, l.perPage)

	total, err := l.store.CountTransactions(ctx)
	if err != nil {
		return nil, err
	}

	views, err := l.store.ListTransactions(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}

	users, err := l.store.ListAllUsers(ctx)
	if err != nil {
		return nil, err
	}

	books, err := l.store.ListAllBooks(ctx)
	if err != nil {
		return nil, err
	}

	l.logger.Info("listed transactions", "page", page, "count", len(views))
	return &LedgerPage{
		Transactions: Page[*store.TransactionView]{
			Items:      views,
			Page:       page,
			PerPage:    perPage,
			TotalPages: totalPages(total, perPage),
		},
		Users: users,
		Books: books,
	}, nil
}

// Checkout records a user borrowing an existing book. Fails with
// store.ErrAlreadyCheckedOut when the pair already has an active checkout
// and store.ErrNotFound when the user or book is absent.
func (l *Ledger) Checkout(ctx context.Context, userID, bookID int64) (*store.Transaction, error) {
	active, err := l.store.HasActiveCheckout(ctx, userID, bookID)
	if err != nil {
		return nil, err
	}
	if active {
		l.logger.Warn("rejected duplicate checkout", "user_id", userID, "book_id", bookID)
		return nil, store.ErrAlreadyCheckedOut
	}

	if _, err := l.store.GetUser(ctx, userID); err != nil {
		l.logger.Warn("checkout user lookup failed", "user_id", userID, "error", err)
		return nil, err
	}
	if _, err := l.store.GetBook(ctx, bookID); err != nil {
		l.logger.Warn("checkout book lookup failed", "book_id", bookID, "error", err)
		return nil, err
	}

	tx := &store.Transaction{
		BookID:       bookID,
		UserID:       userID,
		CheckoutDate: l.now().UTC(),
		Status:       store.StatusCheckedOut,
	}
	if err := l.store.CreateTransaction(ctx, tx); err != nil {
		l.logger.Error("failed to record checkout", "user_id", userID, "book_id", bookID, "error", err)
		return nil, err
	}

	l.logger.Info("checked out book", "user_id", userID, "book_id", bookID, "transaction_id", tx.ID)
	return tx, nil
}

// Checkin records a returned copy as a brand-new book plus a checked_in
// transaction referencing it. It never reuses an existing catalog entry,
// even when title and author match one.
func (l *Ledger) Checkin(ctx context.Context, userID int64, title, author string) (*store.Book, *store.Transaction, error) {
	title, err := requireField("title", title)
	if err != nil {
		return nil, nil, err
	}
	author, err = requireField("author", author)
	if err != nil {
		return nil, nil, err
	}

	if _, err := l.store.GetUser(ctx, userID); err != nil {
		l.logger.Warn("checkin user lookup failed", "user_id", userID, "error", err)
		return nil, nil, err
	}

	book, tx, err := l.store.CheckinNewBook(ctx, userID, title, author, l.now())
	if err != nil {
		l.logger.Error("failed to record checkin", "user_id", userID, "title", title, "error", err)
		return nil, nil, err
	}

	l.logger.Info("checked in book", "user_id", userID, "book_id", book.ID, "transaction_id", tx.ID)
	return book, tx, nil
}
