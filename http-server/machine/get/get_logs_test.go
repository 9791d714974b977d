package get

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"poppys-backend/internal/report"
	"poppys-backend/internal/storage"
)

type MockMachineReports struct {
	mock.Mock
}

func (m *MockMachineReports) MachineReport(ctx context.Context, f report.Filter) (*storage.Report, error) {
	args := m.Called(ctx, f)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*storage.Report), args.Error(1)
}

type MockRawLogs struct {
	mock.Mock
}

func (m *MockRawLogs) RawLogs(ctx context.Context, f report.Filter) ([]storage.LogRow, error) {
	args := m.Called(ctx, f)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]storage.LogRow), args.Error(1)
}

func TestGetMachineLogs_Success(t *testing.T) {
	mockReports := new(MockMachineReports)

	rep := &storage.Report{
		Summary: []storage.SummaryRow{
			{Date: "2024-01-01", MachineID: "M1", TotalHours: "10h 0m", ProductiveTime: "80.00"},
		},
		Tile1ProductiveTime: "80.00",
		Tile4TotalHours:     "10h 0m",
	}

	mockReports.On("MachineReport", mock.Anything, mock.MatchedBy(func(f report.Filter) bool {
		return f.From == "2024-01-01" && f.To == "2024-01-31" &&
			len(f.MachineIDs) == 1 && f.MachineIDs[0] == "M1"
	})).Return(rep, nil)

	handler := GetMachineLogs(slog.Default(), mockReports)

	req := httptest.NewRequest(http.MethodGet,
		"/api/poppys-machine-logs/?from=2024-01-01&to=2024-01-31&machine_id=M1", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var got storage.Report
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &got)
	assert.NoError(t, err)
	assert.Len(t, got.Summary, 1)
	assert.Equal(t, "M1", got.Summary[0].MachineID)
	assert.Equal(t, "80.00", got.Tile1ProductiveTime)

	mockReports.AssertExpectations(t)
}

func TestGetMachineLogs_InvertedDateRange(t *testing.T) {
	mockReports := new(MockMachineReports)
	handler := GetMachineLogs(slog.Default(), mockReports)

	req := httptest.NewRequest(http.MethodGet,
		"/api/poppys-machine-logs/?from=2024-02-01&to=2024-01-01", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockReports.AssertNotCalled(t, "MachineReport")
}

func TestGetMachineLogs_MalformedDate(t *testing.T) {
	mockReports := new(MockMachineReports)
	handler := GetMachineLogs(slog.Default(), mockReports)

	req := httptest.NewRequest(http.MethodGet,
		"/api/poppys-machine-logs/?from=01/02/2024", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockReports.AssertNotCalled(t, "MachineReport")
}

func TestGetMachineLogs_ServiceError(t *testing.T) {
	mockReports := new(MockMachineReports)
	mockReports.On("MachineReport", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	handler := GetMachineLogs(slog.Default(), mockReports)

	req := httptest.NewRequest(http.MethodGet, "/api/poppys-machine-logs/", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "No data found")

	mockReports.AssertExpectations(t)
}

func TestGetMachineRawLogs_Success(t *testing.T) {
	mockLogs := new(MockRawLogs)

	rows := []storage.LogRow{
		{MachineID: "M1", Date: "2024-01-01", Mode: 1, StitchCount: 500},
	}
	mockLogs.On("RawLogs", mock.Anything, mock.Anything).Return(rows, nil)

	handler := GetMachineRawLogs(slog.Default(), mockLogs)

	req := httptest.NewRequest(http.MethodGet, "/api/poppys-machine-logs/raw/?machine_id=M1", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var got RawResponse
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &got)
	assert.NoError(t, err)
	assert.Len(t, got.RawData, 1)
	assert.Equal(t, int64(500), got.RawData[0].StitchCount)

	mockLogs.AssertExpectations(t)
}
