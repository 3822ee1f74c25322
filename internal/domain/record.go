package domain

import "time"

// WorkoutRecord is the stored result of one processed reading package.
type WorkoutRecord struct {
	ID        string
	TenantID  string
	UserID    string
	Tag       string
	Readings  []float64
	Summary   Summary
	CreatedAt time.Time
}

// Cursor models the keyset pagination token for workout listings.
type Cursor struct {
	CreatedAt time.Time
	ID        string
}
