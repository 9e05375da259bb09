// Package store provides persistent storage for bookdesk using SQLite.
//
// # Architecture
//
// The Store interface covers all catalog, user, and transaction operations;
// SQLiteStore implements it in a single struct backed by database/sql and
// the modernc.org/sqlite driver. The schema is created on open and the
// store holds no in-memory authoritative state: every read re-queries.
//
// # Data Models
//
//   - Book: catalog entry (id, title, author)
//   - User: library member with a unique username
//   - Transaction: checkout or check-in event referencing a book and a user
//   - TransactionView: transaction denormalized with book title and username
//     for display; dangling references render as "Unknown"
//
// # Invariants
//
// Username uniqueness is enforced by a UNIQUE column constraint; at most one
// active (checked_out) transaction may exist per (user, book) pair, enforced
// by a partial unique index. Both violations surface as sentinel errors
// (ErrDuplicateUsername, ErrAlreadyCheckedOut) so callers that raced past
// their pre-checks still get a well-typed failure.
//
// # Error Handling
//
// Lookups for absent rows return ErrNotFound. All timestamps are stored as
// RFC3339 UTC text.
package store
