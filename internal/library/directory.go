// ABOUTME: Directory manager for user CRUD with pagination
// ABOUTME: Rejects duplicate usernames before insert, with the UNIQUE column as backstop

package library

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bookdesk/bookdesk/internal/store"
)

// Directory manages the user roster.
type Directory struct {
	store   store.Store
	perPage int
	logger  *slog.Logger
}

// List returns one page of users ordered by id plus the total page count.
func (d *Directory) List(ctx context.Context, page, perPage int) (*Page[*store.User], error) {
	page, perPage = clampPaging(page, perPage, d.perPage)

	total, err := d.store.CountUsers(ctx)
	if err != nil {
		return nil, err
	}

	users, err := d.store.ListUsers(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}

	d.logger.Info("listed users", "page", page, "count", len(users))
	return &Page[*store.User]{
		Items:      users,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages(total, perPage),
	}, nil
}

// Create adds a user. An already-used username fails with
// store.ErrDuplicateUsername; the lookup runs first so the common case
// gets a clean error without relying on the constraint.
func (d *Directory) Create(ctx context.Context, username string) (*store.User, error) {
	username, err := requireField("username", username)
	if err != nil {
		return nil, err
	}

	if _, err := d.store.GetUserByUsername(ctx, username); err == nil {
		d.logger.Warn("rejected duplicate username", "username", username)
		return nil, store.ErrDuplicateUsername
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	user, err := d.store.CreateUser(ctx, username)
	if err != nil {
		d.logger.Error("failed to add user", "username", username, "error", err)
		return nil, err
	}

	d.logger.Info("added user", "id", user.ID, "username", username)
	return user, nil
}

// GetForEdit fetches a user for the edit form.
func (d *Directory) GetForEdit(ctx context.Context, id int64) (*store.User, error) {
	user, err := d.store.GetUser(ctx, id)
	if err != nil {
		d.logger.Warn("user lookup failed", "id", id, "error", err)
		return nil, err
	}
	return user, nil
}

// Update renames a user. Fails with store.ErrDuplicateUsername when a
// different user already holds the username, store.ErrNotFound when the
// target id is absent.
func (d *Directory) Update(ctx context.Context, id int64, username string) error {
	username, err := requireField("username", username)
	if err != nil {
		return err
	}

	if existing, err := d.store.GetUserByUsername(ctx, username); err == nil {
		if existing.ID != id {
			d.logger.Warn("rejected duplicate username on update", "id", id, "username", username)
			return store.ErrDuplicateUsername
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	if err := d.store.UpdateUser(ctx, id, username); err != nil {
		d.logger.Warn("failed to update user", "id", id, "error", err)
		return err
	}

	d.logger.Info("updated user", "id", id, "username", username)
	return nil
}

// Delete removes a user. Absent ids fail with store.ErrNotFound.
func (d *Directory) Delete(ctx context.Context, id int64) error {
	if err := d.store.DeleteUser(ctx, id); err != nil {
		d.logger.Warn("failed to delete user", "id", id, "error", err)
		return err
	}

	d.logger.Info("deleted user", "id", id)
	return nil
}
