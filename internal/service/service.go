// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives validated
// data from the handler, classifies and resolves identifiers, and calls
// repository methods to run the aggregation.
package service
