package ingest

import "time"

// AssignPublishDate spreads rows over consecutive days, perDay rows per day,
// starting at start. perDay below 1 is treated as 1.
func AssignPublishDate(ordinal int, start time.Time, perDay int) time.Time {
	if perDay < 1 {
		perDay = 1
	}
	if ordinal < 0 {
		ordinal = 0
	}
	return start.AddDate(0, 0, ordinal/perDay)
}
