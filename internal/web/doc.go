// Package web serves the bookdesk HTML UI.
//
// # Routes
//
// Each resource gets a list page plus form endpoints:
//
//	GET  /books                           list (page, per_page query params)
//	POST /books/add                       create from form fields
//	GET  /books/delete/{id}               delete, redirect to list
//	GET  /books/edit/{id}                 edit form
//	POST /books/update/{id}               apply edit, redirect to list
//
// Users mirror books with a single username field. Transactions have the
// list page and POST /transactions/add_transaction, which records a
// checkout (status=checked_out, book_id) or a check-in (status=checked_in,
// title+author).
//
// # Responses
//
// Successful mutations redirect 303 to the resource's list page. Failures
// return a JSON error body with a real status: 404 for missing ids, 409
// for duplicate usernames and double checkouts, 400 for validation and
// malformed input, 500 for store failures.
//
// Templates are embedded via go:embed and rendered with html/template.
package web
