// ABOUTME: Transaction ledger page handlers: list plus the combined checkout/check-in form
// ABOUTME: The status form field picks the path; checkout needs book_id, check-in needs title+author

package web

import (
	"net/http"
	"strconv"

	"github.com/bookdesk/bookdesk/internal/store"
)

// handleTransactionsList renders the paginated ledger plus the form data.
func (h *Handlers) handleTransactionsList(w http.ResponseWriter, r *http.Request) {
	page, perPage := pagingParams(r)

	ledger, err := h.service.Ledger.List(r.Context(), page, perPage)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.renderTransactionsPage(w, ledger)
}

// handleTransactionAdd records a checkout or a check-in depending on the
// submitted status field.
func (h *Handlers) handleTransactionAdd(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.badRequest(w, "invalid form data")
		return
	}

	userID, err := strconv.ParseInt(r.FormValue("user_id"), 10, 64)
	if err != nil {
		h.badRequest(w, "invalid user id")
		return
	}

	switch status := r.FormValue("status"); status {
	case store.StatusCheckedOut:
		bookID, err := strconv.ParseInt(r.FormValue("book_id"), 10, 64)
		if err != nil {
			h.badRequest(w, "invalid book id")
			return
		}
		if _, err := h.service.Ledger.Checkout(r.Context(), userID, bookID); err != nil {
			h.writeError(w, r, err)
			return
		}

	case store.StatusCheckedIn:
		if _, _, err := h.service.Ledger.Checkin(r.Context(), userID, r.FormValue("title"), r.FormValue("author")); err != nil {
			h.writeError(w, r, err)
			return
		}

	default:
		h.badRequest(w, "invalid transaction status")
		return
	}

	http.Redirect(w, r, "/transactions", http.StatusSeeOther)
}
