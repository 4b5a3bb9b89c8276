package models

import "time"

// Status labels used by the campus backend for entry/exit records.
const (
	HistoryStatusActive    = "Đang gửi"
	HistoryStatusCompleted = "Đã ra"
)

// HistoryRecord is a single entry/exit event. ExitTime is nil while the
// vehicle is still inside, which implies the active status. Records are
// read-only from the client's perspective.
type HistoryRecord struct {
	ID        int64
	StudentID string
	Plate     string
	EntryTime time.Time
	ExitTime  *time.Time
	Status    string
}

// Completed reports whether the vehicle has left the parking lot.
func (r HistoryRecord) Completed() bool {
	return r.ExitTime != nil
}
