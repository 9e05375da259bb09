// Package library implements the business rules between the HTTP handlers
// and the store: field validation, duplicate-username and duplicate-checkout
// rejection, and pagination arithmetic. Handlers call a manager; managers
// call the store; nothing here holds state beyond the store handle.
package library
