// Package errs defines the error type the API exposes to clients.
//
// Every failure leaving the service is an HTTPError rendered as a flat
// {"Error": "<message>"} JSON body; the status code travels alongside but is
// never part of the body.
package errs
