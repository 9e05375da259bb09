// ABOUTME: User directory page handlers: list, add, edit, update, delete
// ABOUTME: Duplicate usernames surface as 409 responses

package web

import (
	"net/http"
)

// handleUsersList renders the paginated user list.
func (h *Handlers) handleUsersList(w http.ResponseWriter, r *http.Request) {
	page, perPage := pagingParams(r)

	users, err := h.service.Directory.List(r.Context(), page, perPage)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.renderUsersPage(w, users)
}

// handleUserAdd creates a user from the add form.
func (h *Handlers) handleUserAdd(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.badRequest(w, "invalid form data")
		return
	}

	_, err := h.service.Directory.Create(r.Context(), r.FormValue("username"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	http.Redirect(w, r, "/users", http.StatusSeeOther)
}

// handleUserDelete removes a user and returns to the list.
func (h *Handlers) handleUserDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.badRequest(w, "invalid user id")
		return
	}

	if err := h.service.Directory.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	http.Redirect(w, r, "/users", http.StatusSeeOther)
}

// handleUserEdit renders the edit form for one user.
func (h *Handlers) handleUserEdit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.badRequest(w, "invalid user id")
		return
	}

	user, err := h.service.Directory.GetForEdit(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.renderEditUserPage(w, user)
}

// handleUserUpdate applies the edit form.
func (h *Handlers) handleUserUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.badRequest(w, "invalid user id")
		return
	}

	if err := r.ParseForm(); err != nil {
		h.badRequest(w, "invalid form data")
		return
	}

	if err := h.service.Directory.Update(r.Context(), id, r.FormValue("username")); err != nil {
		h.writeError(w, r, err)
		return
	}

	http.Redirect(w, r, "/users", http.StatusSeeOther)
}
