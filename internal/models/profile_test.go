package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestUserProfile_ApplyMergesOnlySetFields(t *testing.T) {
	p := UserProfile{
		StudentID:   "102220120",
		DisplayName: "Lê Viết Vĩnh Phú",
		Balance:     decimal.NewFromInt(180000),
		RFIDTag:     "33aaf20c",
	}

	merged := p.Apply(ProfileUpdate{BankLinked: boolPtr(true)})
	require.True(t, merged.BankLinked)
	require.Equal(t, p.StudentID, merged.StudentID)
	require.Equal(t, p.DisplayName, merged.DisplayName)
	require.True(t, p.Balance.Equal(merged.Balance))

	newBalance := decimal.NewFromInt(200000)
	merged = merged.Apply(ProfileUpdate{Balance: &newBalance, DisplayName: strPtr("Phú")})
	require.True(t, newBalance.Equal(merged.Balance))
	require.Equal(t, "Phú", merged.DisplayName)
	require.True(t, merged.BankLinked, "earlier merge must survive")
}

func TestUserProfile_JSONRoundTrip(t *testing.T) {
	p := UserProfile{
		StudentID:   "102220068",
		DisplayName: "Trần Quang Khải",
		Balance:     decimal.NewFromFloat(18000000.0),
		RFIDTag:     "930f8b91",
	}

	data, err := json.Marshal(p)
	require.NoError(t, err)
	require.Contains(t, string(data), `"mssv":"102220068"`)

	var got UserProfile
	require.NoError(t, json.Unmarshal(data, &got))
	require.Equal(t, p.StudentID, got.StudentID)
	require.True(t, p.Balance.Equal(got.Balance))
}

func TestHistoryRecord_Completed(t *testing.T) {
	entry := time.Date(2025, 5, 8, 2, 49, 2, 0, time.UTC)
	exit := entry.Add(time.Minute)

	active := HistoryRecord{EntryTime: entry, Status: HistoryStatusActive}
	require.False(t, active.Completed())

	done := HistoryRecord{EntryTime: entry, ExitTime: &exit, Status: HistoryStatusCompleted}
	require.True(t, done.Completed())
}

func TestDemoAccount_Profile(t *testing.T) {
	a := DemoAccount{
		StudentID:   "102220349",
		Password:    "cntt123",
		DisplayName: "Siphanthong Xanakone",
		RFIDTag:     "83f3982a",
		Balance:     decimal.NewFromInt(100000),
	}

	p := a.Profile()
	require.Equal(t, a.StudentID, p.StudentID)
	require.Equal(t, a.DisplayName, p.DisplayName)
	require.True(t, a.Balance.Equal(p.Balance))
	require.False(t, p.BankLinked)
}
