// Package fallback bundles the deterministic demo dataset that substitutes
// for live backend responses when the server is unreachable. It keeps the
// app usable during outages; it is not a database and nothing here survives
// a process restart.
package fallback

import (
	"sync"
	"time"

	"github.com/levietphu/campuspark/internal/common"
	"github.com/levietphu/campuspark/internal/models"
	"github.com/shopspring/decimal"
)

// Dataset is an in-memory demo account repository. Reads return copies;
// Append is the only mutation and is guarded so a demo registration racing
// a lookup cannot corrupt the slice.
type Dataset struct {
	mu       sync.RWMutex
	accounts []models.DemoAccount
}

// NewDataset seeds the dataset with the bundled demo accounts.
func NewDataset() *Dataset {
	return &Dataset{
		accounts: []models.DemoAccount{
			{
				StudentID:   "102220120",
				Password:    "vinhphu123",
				DisplayName: "Lê Viết Vĩnh Phú",
				RFIDTag:     "33aaf20c",
				Balance:     decimal.NewFromFloat(180000.0),
			},
			{
				StudentID:   "102220068",
				Password:    "cntt123",
				DisplayName: "Trần Quang Khải",
				RFIDTag:     "930f8b91",
				Balance:     decimal.NewFromFloat(18000000.0),
			},
			{
				StudentID:   "102220141",
				Password:    "cntt123",
				DisplayName: "Trần Đăng Minh Đức",
				RFIDTag:     "632ae3a7",
				Balance:     decimal.NewFromFloat(247000.0),
			},
			{
				StudentID:   "102220349",
				Password:    "cntt123",
				DisplayName: "Siphanthong Xanakone",
				RFIDTag:     "83f3982a",
				Balance:     decimal.NewFromFloat(100000.0),
			},
		},
	}
}

// FindByStudentID returns a copy of the matching account, or nil.
func (d *Dataset) FindByStudentID(id string) *models.DemoAccount {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, acc := range d.accounts {
		if acc.StudentID == id {
			copied := acc
			return &copied
		}
	}
	return nil
}

// Exists reports whether an account with the given student id is present.
func (d *Dataset) Exists(id string) bool {
	return d.FindByStudentID(id) != nil
}

// Append adds a new demo account. Student ids are unique within the
// dataset; a collision leaves it unchanged.
func (d *Dataset) Append(acc models.DemoAccount) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, existing := range d.accounts {
		if existing.StudentID == acc.StudentID {
			return common.NewError(common.KindDuplicateStudentID, "student id %s already registered", acc.StudentID)
		}
	}

	d.accounts = append(d.accounts, acc)
	return nil
}

// SampleHistoryFor returns the canned entry/exit history for the given
// student: a single completed visit, identical on every call.
func (d *Dataset) SampleHistoryFor(studentID string) []models.HistoryRecord {
	entry := time.Date(2025, 5, 8, 2, 49, 2, 0, time.UTC)
	exit := time.Date(2025, 5, 8, 2, 50, 9, 0, time.UTC)

	return []models.HistoryRecord{
		{
			ID:        1,
			StudentID: studentID,
			Plate:     "43GHX",
			EntryTime: entry,
			ExitTime:  &exit,
			Status:    models.HistoryStatusCompleted,
		},
	}
}
