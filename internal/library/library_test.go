package library

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookdesk/bookdesk/internal/store"
)

// setupService creates a Service backed by a temporary SQLite store.
func setupService(t *testing.T) *Service {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	st, err := store.NewSQLiteStore(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		st.Close()
	})

	return New(st, DefaultPerPage)
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total   int
		perPage int
		want    int
	}{
		{0, 5, 0},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{12, 5, 3},
	}

	for _, tt := range tests {
		got := totalPages(tt.total, tt.perPage)
		assert.Equal(t, tt.want, got, "totalPages(%d, %d)", tt.total, tt.perPage)
	}
}

func TestClampPaging(t *testing.T) {
	page, perPage := clampPaging(0, 0, 5)
	assert.Equal(t, 1, page)
	assert.Equal(t, 5, perPage)

	page, perPage = clampPaging(-3, -1, 5)
	assert.Equal(t, 1, page)
	assert.Equal(t, 5, perPage)

	page, perPage = clampPaging(2, 10, 5)
	assert.Equal(t, 2, page)
	assert.Equal(t, 10, perPage)
}

func TestCatalog_CreateAndList(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	book, err := svc.Catalog.Create(ctx, "Dune", "Herbert")
	require.NoError(t, err)
	assert.NotZero(t, book.ID)

	page, err := svc.Catalog.List(ctx, 1, 5)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Dune", page.Items[0].Title)
	assert.Equal(t, 1, page.TotalPages)
}

func TestCatalog_Create_Validation(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.Catalog.Create(ctx, "", "Herbert")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Catalog.Create(ctx, "Dune", "   ")
	assert.ErrorIs(t, err, ErrValidation)

	// Nothing was written
	page, err := svc.Catalog.List(ctx, 1, 5)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
}

func TestCatalog_Create_TrimsFields(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	book, err := svc.Catalog.Create(ctx, "  Dune  ", " Herbert ")
	require.NoError(t, err)
	assert.Equal(t, "Dune", book.Title)
	assert.Equal(t, "Herbert", book.Author)
}

func TestCatalog_List_Pagination(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	for i := 1; i <= 12; i++ {
		_, err := svc.Catalog.Create(ctx, fmt.Sprintf("Book %02d", i), "Author")
		require.NoError(t, err)
	}

	page1, err := svc.Catalog.List(ctx, 1, 5)
	require.NoError(t, err)
	assert.Len(t, page1.Items, 5)
	assert.Equal(t, 3, page1.TotalPages)
	assert.False(t, page1.HasPrev())
	assert.True(t, page1.HasNext())

	page3, err := svc.Catalog.List(ctx, 3, 5)
	require.NoError(t, err)
	assert.Len(t, page3.Items, 2)
	assert.Equal(t, 3, page3.TotalPages)
	assert.True(t, page3.HasPrev())
	assert.False(t, page3.HasNext())
}

func TestCatalog_List_CrossingPageBoundary(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		_, err := svc.Catalog.Create(ctx, fmt.Sprintf("Book %d", i), "Author")
		require.NoError(t, err)
	}

	page, err := svc.Catalog.List(ctx, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalPages)

	// One more book crosses the per_page boundary
	_, err = svc.Catalog.Create(ctx, "Book 6", "Author")
	require.NoError(t, err)

	page, err = svc.Catalog.List(ctx, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, page.TotalPages)
}

func TestCatalog_UpdateAndDelete(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	book, err := svc.Catalog.Create(ctx, "Dune", "Herbert")
	require.NoError(t, err)

	require.NoError(t, svc.Catalog.Update(ctx, book.ID, "Dune Messiah", "Frank Herbert"))

	updated, err := svc.Catalog.GetForEdit(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dune Messiah", updated.Title)

	require.NoError(t, svc.Catalog.Delete(ctx, book.ID))

	_, err = svc.Catalog.GetForEdit(ctx, book.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCatalog_Update_NotFound(t *testing.T) {
	svc := setupService(t)

	err := svc.Catalog.Update(context.Background(), 9999, "Title", "Author")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDirectory_Create_Duplicate(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.Directory.Create(ctx, "alice")
	require.NoError(t, err)

	_, err = svc.Directory.Create(ctx, "alice")
	assert.ErrorIs(t, err, store.ErrDuplicateUsername)

	// User count unchanged
	page, err := svc.Directory.List(ctx, 1, 10)
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
}

func TestDirectory_Update_DuplicateOtherUser(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	alice, err := svc.Directory.Create(ctx, "alice")
	require.NoError(t, err)
	_, err = svc.Directory.Create(ctx, "bob")
	require.NoError(t, err)

	// Renaming alice to bob's name is rejected
	err = svc.Directory.Update(ctx, alice.ID, "bob")
	assert.ErrorIs(t, err, store.ErrDuplicateUsername)

	// Keeping her own name is fine
	require.NoError(t, svc.Directory.Update(ctx, alice.ID, "alice"))

	// Renaming a missing user reports not found
	err = svc.Directory.Update(ctx, 9999, "carol")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDirectory_Create_Validation(t *testing.T) {
	svc := setupService(t)

	_, err := svc.Directory.Create(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLedger_CheckoutScenario(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	book, err := svc.Catalog.Create(ctx, "Dune", "Herbert")
	require.NoError(t, err)
	alice, err := svc.Directory.Create(ctx, "alice")
	require.NoError(t, err)

	tx, err := svc.Ledger.Checkout(ctx, alice.ID, book.ID)
	require.NoError(t, err)
	assert.Equal(t, store.StatusCheckedOut, tx.Status)

	// Second checkout of the same pair is rejected
	_, err = svc.Ledger.Checkout(ctx, alice.ID, book.ID)
	assert.ErrorIs(t, err, store.ErrAlreadyCheckedOut)

	page, err := svc.Ledger.List(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Transactions.Items, 1)
	assert.Equal(t, "Dune", page.Transactions.Items[0].BookTitle)
	assert.Equal(t, "alice", page.Transactions.Items[0].Username)

	// Check-in creates a brand-new book and a checked_in transaction
	returned, inTx, err := svc.Ledger.Checkin(ctx, alice.ID, "Returned Copy", "Someone")
	require.NoError(t, err)
	assert.NotEqual(t, book.ID, returned.ID)
	assert.Equal(t, store.StatusCheckedIn, inTx.Status)

	page, err = svc.Ledger.List(ctx, 1, 10)
	require.NoError(t, err)
	assert.Len(t, page.Transactions.Items, 2)
}

func TestLedger_Checkout_NotFound(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	book, err := svc.Catalog.Create(ctx, "Dune", "Herbert")
	require.NoError(t, err)
	alice, err := svc.Directory.Create(ctx, "alice")
	require.NoError(t, err)

	_, err = svc.Ledger.Checkout(ctx, 9999, book.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = svc.Ledger.Checkout(ctx, alice.ID, 9999)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestLedger_List_IncludesFormData(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.Catalog.Create(ctx, "Dune", "Herbert")
	require.NoError(t, err)
	_, err = svc.Directory.Create(ctx, "alice")
	require.NoError(t, err)

	page, err := svc.Ledger.List(ctx, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Transactions.Items)
	assert.Len(t, page.Users, 1)
	assert.Len(t, page.Books, 1)
}

func TestLedger_Checkin_Validation(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	alice, err := svc.Directory.Create(ctx, "alice")
	require.NoError(t, err)

	_, _, err = svc.Ledger.Checkin(ctx, alice.ID, "", "Someone")
	assert.ErrorIs(t, err, ErrValidation)
}
