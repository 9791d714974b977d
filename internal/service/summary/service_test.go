package summary

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"poppys-backend/internal/report"
	"poppys-backend/internal/storage"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Logs(ctx context.Context, f report.Filter) ([]storage.LogRow, error) {
	args := m.Called(ctx, f)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	rows, ok := args.Get(0).([]storage.LogRow)
	if !ok {
		return nil, fmt.Errorf("expected []storage.LogRow, got %T", args.Get(0))
	}

	return rows, args.Error(1)
}

func (m *MockStorage) Operators(ctx context.Context) ([]storage.Operator, error) {
	args := m.Called(ctx)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	operators, ok := args.Get(0).([]storage.Operator)
	if !ok {
		return nil, fmt.Errorf("expected []storage.Operator, got %T", args.Get(0))
	}

	return operators, args.Error(1)
}

func machineRows() []storage.LogRow {
	return []storage.LogRow{
		{MachineID: "M1", Date: "2024-01-01", Mode: 1, DurationHours: 4, Reserve: 20, StitchCount: 300},
		{MachineID: "M1", Date: "2024-01-01", Mode: 1, DurationHours: 4, Reserve: 30, StitchCount: 500},
		{MachineID: "M1", Date: "2024-01-01", Mode: 2, DurationHours: 2},
		{MachineID: "M2", Date: "2024-01-01", Mode: 1, DurationHours: 5},
	}
}

func TestMachineReportGroupsByMachineAndDate(t *testing.T) {
	mockStorage := new(MockStorage)
	mockStorage.On("Logs", mock.Anything, mock.Anything).Return(machineRows(), nil)

	service := NewService(mockStorage, 10)

	rep, err := service.MachineReport(context.Background(), report.Filter{})

	assert.NoError(t, err)
	assert.Len(t, rep.Summary, 2)

	m1 := rep.Summary[0]
	assert.Equal(t, "M1", m1.MachineID)
	assert.Equal(t, "2024-01-01", m1.Date)
	assert.Equal(t, "8h 0m", m1.SewingHours)
	assert.Equal(t, "2h 0m", m1.IdleHours)
	assert.Equal(t, "10h 0m", m1.TotalHours)
	assert.Equal(t, "80.00", m1.ProductiveTime)
	assert.Equal(t, "20.00", m1.NPT)
	assert.Equal(t, "25.00", m1.SewingSpeed)
	assert.Equal(t, int64(800), m1.StitchCount)

	m2 := rep.Summary[1]
	assert.Equal(t, "M2", m2.MachineID)
	assert.Equal(t, "100.00", m2.ProductiveTime)

	// tiles aggregate across all machines: 13h sewing of 15h total
	assert.Equal(t, "86.67", rep.Tile1ProductiveTime)
	assert.Equal(t, "15h 0m", rep.Tile4TotalHours)

	mockStorage.AssertExpectations(t)
}

func TestMachineReportPropagatesStorageError(t *testing.T) {
	mockStorage := new(MockStorage)
	mockStorage.On("Logs", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	service := NewService(mockStorage, 10)

	rep, err := service.MachineReport(context.Background(), report.Filter{})

	assert.Error(t, err)
	assert.Nil(t, rep)
}

func TestOperatorReportBackfillsStandardDay(t *testing.T) {
	rows := []storage.LogRow{
		{OperatorID: "R1", OperatorName: "Lata", Date: "2024-01-01", Mode: 1, DurationHours: 6},
		{OperatorID: "R1", OperatorName: "Lata", Date: "2024-01-01", Mode: 5, DurationHours: 1},
	}

	mockStorage := new(MockStorage)
	mockStorage.On("Logs", mock.Anything, mock.Anything).Return(rows, nil)

	service := NewService(mockStorage, 10)

	rep, err := service.OperatorReport(context.Background(), report.Filter{})

	assert.NoError(t, err)
	assert.Len(t, rep.Summary, 1)

	sr := rep.Summary[0]
	assert.Equal(t, "R1", sr.OperatorID)
	assert.Equal(t, "Lata", sr.OperatorName)
	assert.Equal(t, "3h 0m", sr.IdleHours)
	assert.Equal(t, "10h 0m", sr.TotalHours)
	assert.Equal(t, "60.00", sr.ProductiveTime)
	assert.Equal(t, "10h 0m", rep.Tile4TotalHours)
}

func TestOperatorReportByNameIncludesRawData(t *testing.T) {
	rows := []storage.LogRow{
		{OperatorID: "R1", OperatorName: "Lata", Date: "2024-01-01", Mode: 1, DurationHours: 4},
	}

	mockStorage := new(MockStorage)
	mockStorage.On("Logs", mock.Anything, mock.MatchedBy(func(f report.Filter) bool {
		return len(f.OperatorNames) == 1 && f.OperatorNames[0] == "Lata"
	})).Return(rows, nil)

	service := NewService(mockStorage, 10)

	rep, err := service.OperatorReportByName(context.Background(), "Lata", true, report.Filter{})

	assert.NoError(t, err)
	assert.Len(t, rep.RawData, 1)

	rep, err = service.OperatorReportByName(context.Background(), "Lata", false, report.Filter{})
	assert.NoError(t, err)
	assert.Empty(t, rep.RawData)
}

func TestConsolidatedReportResolvesNamesFromDirectory(t *testing.T) {
	rows := []storage.LogRow{
		{MachineID: "M1", LineNumber: "L1", OperatorID: "R1", Date: "2024-01-01", Mode: 1, DurationHours: 3},
	}
	operators := []storage.Operator{
		{ID: 1, RFID: "R1", Name: "Asha", IsActive: true},
	}

	mockStorage := new(MockStorage)
	mockStorage.On("Logs", mock.Anything, mock.Anything).Return(rows, nil)
	mockStorage.On("Operators", mock.Anything).Return(operators, nil)

	service := NewService(mockStorage, 10)

	rep, err := service.ConsolidatedReport(context.Background(), report.Filter{})

	assert.NoError(t, err)
	assert.Len(t, rep.Summary, 1)
	assert.Equal(t, "Asha", rep.Summary[0].OperatorName)
	assert.Equal(t, "M1", rep.Summary[0].MachineID)
	assert.Equal(t, "L1", rep.Summary[0].LineNumber)

	mockStorage.AssertExpectations(t)
}

func TestConsolidatedReportFailsWhenDirectoryFails(t *testing.T) {
	mockStorage := new(MockStorage)
	mockStorage.On("Logs", mock.Anything, mock.Anything).Return([]storage.LogRow{}, nil)
	mockStorage.On("Operators", mock.Anything).Return(nil, assert.AnError)

	service := NewService(mockStorage, 10)

	rep, err := service.ConsolidatedReport(context.Background(), report.Filter{})

	assert.Error(t, err)
	assert.Nil(t, rep)
}

func TestByEntityRejectsUnknownEntity(t *testing.T) {
	service := NewService(new(MockStorage), 10)

	_, err := service.ByEntity(context.Background(), "warehouse", report.Filter{})

	assert.Error(t, err)
}
