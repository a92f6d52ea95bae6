// Package handler is the HTTP layer: the first entry point for business
// logic after the router.
//
// It binds and validates requests via the validation package, calls the
// appropriate service, and writes JSON responses. Errors are returned to the
// global error handler rather than written here.
package handler
