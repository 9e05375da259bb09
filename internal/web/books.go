// ABOUTME: Catalog page handlers: list, add, edit, update, delete
// ABOUTME: Mutations redirect 303 back to the book list

package web

import (
	"net/http"
)

// handleBooksList renders the paginated book list.
func (h *Handlers) handleBooksList(w http.ResponseWriter, r *http.Request) {
	page, perPage := pagingParams(r)

	books, err := h.service.Catalog.List(r.Context(), page, perPage)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.renderBooksPage(w, books)
}

// handleBookAdd creates a book from the add form.
func (h *Handlers) handleBookAdd(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.badRequest(w, "invalid form data")
		return
	}

	_, err := h.service.Catalog.Create(r.Context(), r.FormValue("title"), r.FormValue("author"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	http.Redirect(w, r, "/books", http.StatusSeeOther)
}

// handleBookDelete removes a book and returns to the list.
func (h *Handlers) handleBookDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.badRequest(w, "invalid book id")
		return
	}

	if err := h.service.Catalog.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	http.Redirect(w, r, "/books", http.StatusSeeOther)
}

// handleBookEdit renders the edit form for one book.
func (h *Handlers) handleBookEdit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.badRequest(w, "invalid book id")
		return
	}

	book, err := h.service.Catalog.GetForEdit(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.renderEditBookPage(w, book)
}

// handleBookUpdate applies the edit form.
func (h *Handlers) handleBookUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.badRequest(w, "invalid book id")
		return
	}

	if err := r.ParseForm(); err != nil {
		h.badRequest(w, "invalid form data")
		return
	}

	if err := h.service.Catalog.Update(r.Context(), id, r.FormValue("title"), r.FormValue("author")); err != nil {
		h.writeError(w, r, err)
		return
	}

	http.Redirect(w, r, "/books", http.StatusSeeOther)
}
