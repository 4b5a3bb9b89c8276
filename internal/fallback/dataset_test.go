package fallback

import (
	"testing"

	"github.com/levietphu/campuspark/internal/common"
	"github.com/levietphu/campuspark/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestDataset_FindByStudentID(t *testing.T) {
	d := NewDataset()

	acc := d.FindByStudentID("102220068")
	require.NotNil(t, acc)
	require.Equal(t, "Trần Quang Khải", acc.DisplayName)
	require.Equal(t, "930f8b91", acc.RFIDTag)
	require.True(t, decimal.NewFromFloat(18000000.0).Equal(acc.Balance))

	require.Nil(t, d.FindByStudentID("000000000"))
}

func TestDataset_FindReturnsCopy(t *testing.T) {
	d := NewDataset()

	acc := d.FindByStudentID("102220120")
	require.NotNil(t, acc)
	acc.DisplayName = "mutated"

	again := d.FindByStudentID("102220120")
	require.Equal(t, "Lê Viết Vĩnh Phú", again.DisplayName)
}

func TestDataset_AppendRejectsDuplicate(t *testing.T) {
	d := NewDataset()

	err := d.Append(models.DemoAccount{StudentID: "102220120", DisplayName: "Impostor"})
	require.Error(t, err)
	require.True(t, common.IsKind(err, common.KindDuplicateStudentID))

	// Dataset unchanged after the rejected insert.
	acc := d.FindByStudentID("102220120")
	require.Equal(t, "Lê Viết Vĩnh Phú", acc.DisplayName)
}

func TestDataset_AppendThenFind(t *testing.T) {
	d := NewDataset()

	require.False(t, d.Exists("102229999"))
	require.NoError(t, d.Append(models.DemoAccount{
		StudentID:   "102229999",
		Password:    "secret",
		DisplayName: "New Student",
		RFIDTag:     "demo_ab12cd34",
	}))
	require.True(t, d.Exists("102229999"))

	acc := d.FindByStudentID("102229999")
	require.Equal(t, "New Student", acc.DisplayName)
	require.True(t, acc.Balance.IsZero())
}

func TestDataset_SampleHistoryDeterministic(t *testing.T) {
	d := NewDataset()

	first := d.SampleHistoryFor("102220068")
	second := d.SampleHistoryFor("102220068")
	require.NotEmpty(t, first)
	require.Equal(t, first, second, "sample history must be stable")

	rec := first[0]
	require.Equal(t, "102220068", rec.StudentID)
	require.Equal(t, "43GHX", rec.Plate)
	require.True(t, rec.Completed())
	require.Equal(t, models.HistoryStatusCompleted, rec.Status)
}
