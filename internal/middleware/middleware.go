// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns: request IDs,
// request-scoped logging, CORS, rate limiting, panic recovery, and the
// global error handler that renders every failure as {"Error": "..."}.
package middleware
