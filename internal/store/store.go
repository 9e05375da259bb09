// ABOUTME: Store interface and data types for bookdesk persistence
// ABOUTME: Defines Book, User, Transaction structs and the Store interface for database operations

package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// ErrDuplicateUsername is returned when trying to create or rename a user
// to a username that is already taken
var ErrDuplicateUsername = errors.New("username already exists")

// ErrAlreadyCheckedOut is returned when a user already holds an active
// checkout for the same book
var ErrAlreadyCheckedOut = errors.New("book already checked out by this user")

// Transaction status values
const (
	StatusCheckedOut = "checked_out"
	StatusCheckedIn  = "checked_in"
)

// Book represents a catalog entry
type Book struct {
	ID     int64
	Title  string
	Author string
}

// User represents a library member
type User struct {
	ID       int64
	Username string
}

// Transaction represents a checkout or check-in event
type Transaction struct {
	ID           int64
	BookID       int64
	UserID       int64
	CheckoutDate time.Time
	Status       string // "checked_out" or "checked_in"
}

// TransactionView is a transaction denormalized with the referenced book
// title and username for display. Dangling references render as "Unknown".
type TransactionView struct {
	ID           int64
	BookTitle    string
	Username     string
	CheckoutDate time.Time
	Status       string
}

// Store defines the interface for catalog, user, and transaction persistence
type Store interface {
	// Books
	CreateBook(ctx context.Context, title, author string) (*Book, error)
	GetBook(ctx context.Context, id int64) (*Book, error)
	UpdateBook(ctx context.Context, id int64, title, author string) error
	DeleteBook(ctx context.Context, id int64) error
	ListBooks(ctx context.Context, limit, offset int) ([]*Book, error)
	ListAllBooks(ctx context.Context) ([]*Book, error)
	CountBooks(ctx context.Context) (int, error)

	// Users
	CreateUser(ctx context.Context, username string) (*User, error)
	GetUser(ctx context.Context, id int64) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	UpdateUser(ctx context.Context, id int64, username string) error
	DeleteUser(ctx context.Context, id int64) error
	ListUsers(ctx context.Context, limit, offset int) ([]*User, error)
	ListAllUsers(ctx context.Context) ([]*User, error)
	CountUsers(ctx context.Context) (int, error)

	// Transactions
	CreateTransaction(ctx context.Context, tx *Transaction) error
	HasActiveCheckout(ctx context.Context, userID, bookID int64) (bool, error)
	ListTransactions(ctx context.Context, limit, offset int) ([]*TransactionView, error)
	CountTransactions(ctx context.Context) (int, error)
	CheckinNewBook(ctx context.Context, userID int64, title, author string, when time.Time) (*Book, *Transaction, error)

	// Close releases any resources held by the store
	Close() error
}
