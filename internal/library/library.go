// ABOUTME: Business rules for the catalog, user directory, and transaction ledger
// ABOUTME: Validation, duplicate checks, and pagination arithmetic over the store

package library

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bookdesk/bookdesk/internal/store"
)

// ErrValidation is returned when a required field is empty
var ErrValidation = errors.New("validation failed")

// DefaultPerPage is the page size used when a request doesn't specify one
const DefaultPerPage = 5

// Page holds one page of items plus the pagination state the list views need.
type Page[T any] struct {
	Items      []T
	Page       int
	PerPage    int
	TotalPages int
}

// HasPrev reports whether a previous page exists.
func (p Page[T]) HasPrev() bool { return p.Page > 1 }

// HasNext reports whether a next page exists.
func (p Page[T]) HasNext() bool { return p.Page < p.TotalPages }

// PrevPage returns the previous page number.
func (p Page[T]) PrevPage() int { return p.Page - 1 }

// NextPage returns the next page number.
func (p Page[T]) NextPage() int { return p.Page + 1 }

// totalPages computes ceil(total/perPage).
func totalPages(total, perPage int) int {
	return (total + perPage - 1) / perPage
}

// clampPaging normalizes page and perPage, falling back to defaultPerPage
// when perPage is missing or nonsense.
func clampPaging(page, perPage, defaultPerPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	return page, perPage
}

// Service bundles the three resource managers over one store.
type Service struct {
	Catalog   *Catalog
	Directory *Directory
	Ledger    *Ledger
}

// New creates a Service with the given default page size.
// If defaultPerPage is not positive, DefaultPerPage is used.
func New(st store.Store, defaultPerPage int) *Service {
	if defaultPerPage < 1 {
		defaultPerPage = DefaultPerPage
	}
	logger := slog.Default().With("component", "library")
	return &Service{
		Catalog:   &Catalog{store: st, perPage: defaultPerPage, logger: logger},
		Directory: &Directory{store: st, perPage: defaultPerPage, logger: logger},
		Ledger:    &Ledger{store: st, perPage: defaultPerPage, logger: logger, now: time.Now},
	}
}

// requireField trims the value and returns ErrValidation naming the field
// when nothing is left.
func requireField(name, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("%w: %s is required", ErrValidation, name)
	}
	return trimmed, nil
}
