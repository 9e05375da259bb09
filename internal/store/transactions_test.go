package store

import (
	"context"
	"testing"
	"time"

	"github.com/qawatake/fixify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixture connectors wire transaction rows to their user and book parents
// so tests can describe the graph and let fixify order the inserts.

func bookFixture(title, author string) *fixify.Model[Book] {
	return fixify.NewModel(&Book{Title: title, Author: author})
}

func userFixture(username string) *fixify.Model[User] {
	return fixify.NewModel(&User{Username: username})
}

func transactionFixture(status string) *fixify.Model[Transaction] {
	return fixify.NewModel(
		&Transaction{Status: status, CheckoutDate: time.Now().UTC().Truncate(time.Second)},
		fixify.ConnectorFunc(func(t testing.TB, tx *Transaction, user *User) {
			tx.UserID = user.ID
		}),
		fixify.ConnectorFunc(func(t testing.TB, tx *Transaction, book *Book) {
			tx.BookID = book.ID
		}),
	)
}

// applyFixtures inserts the fixture graph through the store in topological order.
func applyFixtures(t *testing.T, s *SQLiteStore, f *fixify.Fixture) {
	t.Helper()
	ctx := context.Background()
	f.Apply(func(model any) error {
		switch m := model.(type) {
		case *Book:
			created, err := s.CreateBook(ctx, m.Title, m.Author)
			if err != nil {
				return err
			}
			m.ID = created.ID
		case *User:
			created, err := s.CreateUser(ctx, m.Username)
			if err != nil {
				return err
			}
			m.ID = created.ID
		case *Transaction:
			return s.CreateTransaction(ctx, m)
		}
		return nil
	})
}

func TestStore_CreateTransaction(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	tx := transactionFixture(StatusCheckedOut)
	applyFixtures(t, store, fixify.New(t,
		userFixture("alice").With(tx),
		bookFixture("Dune", "Herbert").With(tx),
	))

	assert.NotZero(t, tx.Value().ID)

	active, err := store.HasActiveCheckout(ctx, tx.Value().UserID, tx.Value().BookID)
	require.NoError(t, err)
	assert.True(t, active)
}

func TestStore_CreateTransaction_DoubleCheckoutRejected(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	tx := transactionFixture(StatusCheckedOut)
	applyFixtures(t, store, fixify.New(t,
		userFixture("alice").With(tx),
		bookFixture("Dune", "Herbert").With(tx),
	))

	// Same (user, book) pair again: the partial unique index rejects it
	// even though no pre-check ran.
	dup := &Transaction{
		BookID:       tx.Value().BookID,
		UserID:       tx.Value().UserID,
		CheckoutDate: time.Now(),
		Status:       StatusCheckedOut,
	}
	err := store.CreateTransaction(ctx, dup)
	assert.ErrorIs(t, err, ErrAlreadyCheckedOut)

	count, err := store.CountTransactions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestStore_CreateTransaction_CheckinNotBlocked(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	out := transactionFixture(StatusCheckedOut)
	in := transactionFixture(StatusCheckedIn)
	applyFixtures(t, store, fixify.New(t,
		userFixture("alice").With(out, in),
		bookFixture("Dune", "Herbert").With(out, in),
	))

	// The active-checkout index only covers checked_out rows, so a
	// checked_in record for the same pair coexists.
	count, err := store.CountTransactions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestStore_HasActiveCheckout_NoRows(t *testing.T) {
	store := setupTestStore(t)

	active, err := store.HasActiveCheckout(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.False(t, active)
}

func TestStore_ListTransactions_Denormalized(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	tx := transactionFixture(StatusCheckedOut)
	applyFixtures(t, store, fixify.New(t,
		userFixture("alice").With(tx),
		bookFixture("Dune", "Herbert").With(tx),
	))

	views, err := store.ListTransactions(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Dune", views[0].BookTitle)
	assert.Equal(t, "alice", views[0].Username)
	assert.Equal(t, StatusCheckedOut, views[0].Status)
	assert.False(t, views[0].CheckoutDate.IsZero())
}

func TestStore_ListTransactions_DanglingBookRendersUnknown(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	tx := transactionFixture(StatusCheckedOut)
	applyFixtures(t, store, fixify.New(t,
		userFixture("alice").With(tx),
		bookFixture("Dune", "Herbert").With(tx),
	))

	// Delete the book out from under the transaction.
	require.NoError(t, store.DeleteBook(ctx, tx.Value().BookID))

	views, err := store.ListTransactions(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Unknown", views[0].BookTitle)
	assert.Equal(t, "alice", views[0].Username)
}

func TestStore_CheckinNewBook(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	user, err := store.CreateUser(ctx, "alice")
	require.NoError(t, err)

	now := time.Now().UTC().Truncate(time.Second)
	book, tx, err := store.CheckinNewBook(ctx, user.ID, "Returned Copy", "Someone", now)
	require.NoError(t, err)

	// The returned copy is a brand-new catalog row.
	retrieved, err := store.GetBook(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Returned Copy", retrieved.Title)

	assert.Equal(t, StatusCheckedIn, tx.Status)
	assert.Equal(t, book.ID, tx.BookID)
	assert.True(t, tx.CheckoutDate.Equal(now))

	views, err := store.ListTransactions(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, StatusCheckedIn, views[0].Status)
}

func TestStore_CheckinNewBook_AlwaysInsertsNewRow(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	existing, err := store.CreateBook(ctx, "Dune", "Herbert")
	require.NoError(t, err)
	user, err := store.CreateUser(ctx, "alice")
	require.NoError(t, err)

	// Check-in with the same title/author still creates a new row.
	book, _, err := store.CheckinNewBook(ctx, user.ID, "Dune", "Herbert", time.Now())
	require.NoError(t, err)
	assert.NotEqual(t, existing.ID, book.ID)

	count, err := store.CountBooks(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
