// ABOUTME: Catalog manager for book CRUD with pagination
// ABOUTME: Validates titles/authors before touching the store

package library

import (
	"context"
	"log/slog"

	"github.com/bookdesk/bookdesk/internal/store"
)

// Catalog manages the book collection.
type Catalog struct {
	store   store.Store
	perPage int
	logger  *slog.Logger
}

// List returns one page of books in insertion order plus the total page count.
func (c *Catalog) List(ctx context.Context, page, perPage int) (*Page[*store.Book], error) {
	page, perPage = clampPaging(page, perPage, c.perPage)

	total, err := c.store.CountBooks(ctx)
	if err != nil {
		return nil, err
	}

	books, err := c.store.ListBooks(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}

	c.logger.Info("listed books", "page", page, "count", len(books))
	return &Page[*store.Book]{
		Items:      books,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages(total, perPage),
	}, nil
}

// Create adds a book. Empty title or author fails with ErrValidation.
func (c *Catalog) Create(ctx context.Context, title, author string) (*store.Book, error) {
	title, err := requireField("title", title)
	if err != nil {
		return nil, err
	}
	author, err = requireField("author", author)
	if err != nil {
		return nil, err
	}

	book, err := c.store.CreateBook(ctx, title, author)
	if err != nil {
		c.logger.Error("failed to add book", "title", title, "error", err)
		return nil, err
	}

	c.logger.Info("added book", "id", book.ID, "title", title, "author", author)
	return book, nil
}

// GetForEdit fetches a book for the edit form.
func (c *Catalog) GetForEdit(ctx context.Context, id int64) (*store.Book, error) {
	book, err := c.store.GetBook(ctx, id)
	if err != nil {
		c.logger.Warn("book lookup failed", "id", id, "error", err)
		return nil, err
	}
	return book, nil
}

// Update mutates a book in place. Absent ids fail with store.ErrNotFound.
func (c *Catalog) Update(ctx context.Context, id int64, title, author string) error {
	title, err := requireField("title", title)
	if err != nil {
		return err
	}
	author, err = requireField("author", author)
	if err != nil {
		return err
	}

	if err := c.store.UpdateBook(ctx, id, title, author); err != nil {
		c.logger.Warn("failed to update book", "id", id, "error", err)
		return err
	}

	c.logger.Info("updated book", "id", id, "title", title, "author", author)
	return nil
}

// Delete removes a book. Absent ids fail with store.ErrNotFound.
func (c *Catalog) Delete(ctx context.Context, id int64) error {
	if err := c.store.DeleteBook(ctx, id); err != nil {
		c.logger.Warn("failed to delete book", "id", id, "error", err)
		return err
	}

	c.logger.Info("deleted book", "id", id)
	return nil
}
