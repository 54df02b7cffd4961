// Package queries contains the read side of the service. Handlers run plain SQL
// through GORM and return flat views; they never load aggregates.
package queries
