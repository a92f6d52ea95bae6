// Package repository handles all interactions with the database.
//
// It contains the raw SQL queries and methods to read ports, regions, and
// prices, abstracting SQL away from the service layer. Every method bounds
// its round trip with the configured query timeout.
package repository
