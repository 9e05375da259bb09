// ABOUTME: Template rendering functions for the web UI
// ABOUTME: Loads templates from embedded filesystem and renders them

package web

import (
	"html/template"
	"net/http"

	"github.com/bookdesk/bookdesk/internal/library"
	"github.com/bookdesk/bookdesk/internal/store"
)

// Template data types
type homeData struct {
	Title string
}

type booksPageData struct {
	Title string
	Books *library.Page[*store.Book]
}

type editBookData struct {
	Title string
	Book  *store.Book
}

type usersPageData struct {
	Title string
	Users *library.Page[*store.User]
}

type editUserData struct {
	Title string
	User  *store.User
}

type transactionsPageData struct {
	Title  string
	Ledger *library.LedgerPage
}

// renderHome renders the landing page
func (h *Handlers) renderHome(w http.ResponseWriter) {
	tmpl := template.Must(template.ParseFS(templateFS, "templates/base.html", "templates/home.html"))

	data := homeData{
		Title: "Library",
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		h.logger.Error("failed to render home page", "error", err)
	}
}

// renderBooksPage renders the book list with its add form and pagination
func (h *Handlers) renderBooksPage(w http.ResponseWriter, books *library.Page[*store.Book]) {
	tmpl := template.Must(template.ParseFS(templateFS, "templates/base.html", "templates/books.html"))

	data := booksPageData{
		Title: "Books",
		Books: books,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		h.logger.Error("failed to render books page", "error", err)
	}
}

// renderEditBookPage renders the edit form for a book
func (h *Handlers) renderEditBookPage(w http.ResponseWriter, book *store.Book) {
	tmpl := template.Must(template.ParseFS(templateFS, "templates/base.html", "templates/edit_book.html"))

	data := editBookData{
		Title: "Edit Book",
		Book:  book,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		h.logger.Error("failed to render edit book page", "error", err)
	}
}

// renderUsersPage renders the user list with its add form and pagination
func (h *Handlers) renderUsersPage(w http.ResponseWriter, users *library.Page[*store.User]) {
	tmpl := template.Must(template.ParseFS(templateFS, "templates/base.html", "templates/users.html"))

	data := usersPageData{
		Title: "Users",
		Users: users,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		h.logger.Error("failed to render users page", "error", err)
	}
}

// renderEditUserPage renders the edit form for a user
func (h *Handlers) renderEditUserPage(w http.ResponseWriter, user *store.User) {
	tmpl := template.Must(template.ParseFS(templateFS, "templates/base.html", "templates/edit_user.html"))

	data := editUserData{
		Title: "Edit User",
		User:  user,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		h.logger.Error("failed to render edit user page", "error", err)
	}
}

// renderTransactionsPage renders the ledger with the checkout/check-in form
func (h *Handlers) renderTransactionsPage(w http.ResponseWriter, ledger *library.LedgerPage) {
	tmpl := template.Must(template.ParseFS(templateFS, "templates/base.html", "templates/transactions.html"))

	data := transactionsPageData{
		Title:  "Transactions",
		Ledger: ledger,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		h.logger.Error("failed to render transactions page", "error", err)
	}
}
