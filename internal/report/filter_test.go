package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"poppys-backend/internal/storage"
)

func TestFilterValidate(t *testing.T) {
	assert.NoError(t, Filter{}.Validate())
	assert.NoError(t, Filter{From: "2024-01-01", To: "2024-01-31"}.Validate())
	assert.NoError(t, Filter{From: "2024-01-01", To: "2024-01-01"}.Validate())

	err := Filter{From: "2024-02-01", To: "2024-01-01"}.Validate()
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	assert.Error(t, Filter{From: "01/02/2024"}.Validate())
	assert.Error(t, Filter{To: "not-a-date"}.Validate())
}

func TestFilterApplySingleDay(t *testing.T) {
	rows := []storage.LogRow{
		{Date: "2023-12-31", MachineID: "M1"},
		{Date: "2024-01-01", MachineID: "M1"},
		{Date: "2024-01-01", MachineID: "M2"},
		{Date: "2024-01-02", MachineID: "M1"},
	}

	f := Filter{From: "2024-01-01", To: "2024-01-01"}
	got := f.Apply(rows)

	assert.Len(t, got, 2)
	for _, r := range got {
		assert.Equal(t, "2024-01-01", r.Date)
	}
}

func TestFilterApplyEntityDimensions(t *testing.T) {
	rows := []storage.LogRow{
		{Date: "2024-01-01", MachineID: "M1", LineNumber: "L1", OperatorID: "R1"},
		{Date: "2024-01-01", MachineID: "M2", LineNumber: "L1", OperatorID: "R2"},
		{Date: "2024-01-01", MachineID: "M3", LineNumber: "L2", OperatorID: "R1"},
	}

	// empty slice leaves a dimension unconstrained
	assert.Len(t, Filter{}.Apply(rows), 3)

	got := Filter{MachineIDs: []string{"M1", "M3"}}.Apply(rows)
	assert.Len(t, got, 2)

	got = Filter{LineNumbers: []string{"L1"}, OperatorIDs: []string{"R2"}}.Apply(rows)
	assert.Len(t, got, 1)
	assert.Equal(t, "M2", got[0].MachineID)
}
