// Package model holds the types shared between the repository, service, and
// handler layers.
package model

// DailyRate is one entry of the rates response: a calendar day and the
// rounded average price across all matching price records, or null when
// fewer than three records matched that day.
type DailyRate struct {
	Day          string `json:"day"`
	AveragePrice *int   `json:"average_price"`
}
