package model

import "time"

// BlockedDate — дата или диапазон дат, в которые занятия не проводятся
// (праздники, каникулы). Либо Date, либо пара RangeStart/RangeEnd.
// Границы диапазона включительные.
type BlockedDate struct {
	ID         int64      `json:"id"`
	Date       *time.Time `json:"date"`
	RangeStart *time.Time `json:"range_start"`
	RangeEnd   *time.Time `json:"range_end"`
	Reason     string     `json:"reason"`
	CreatedAt  time.Time  `json:"created_at"`
}
