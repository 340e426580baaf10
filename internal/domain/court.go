package domain

import "time"

// Court represents a bookable tennis court
type Court struct {
	ID        int64
	Name      string
	Available bool // false while the court is under maintenance
	CreatedAt time.Time
	UpdatedAt time.Time
}
