package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/syrilster/payroll-scenario-simulator/internal/model"
	"github.com/syrilster/payroll-scenario-simulator/internal/report"
	"github.com/syrilster/payroll-scenario-simulator/internal/util"
)

type MockSimulationHandler struct {
	mock.Mock
}

func (m *MockSimulationHandler) Employees(ctx context.Context) []model.Employee {
	args := m.Called(ctx)
	return args.Get(0).([]model.Employee)
}

func (m *MockSimulationHandler) Employee(ctx context.Context, id string) (model.Employee, bool) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Employee), args.Bool(1)
}

func (m *MockSimulationHandler) Simulate(ctx context.Context, req SimulationRequest) SimulationResponse {
	args := m.Called(ctx, req)
	return args.Get(0).(SimulationResponse)
}

func (m *MockSimulationHandler) Report(ctx context.Context, req SimulationRequest) (string, *bytes.Buffer, error) {
	args := m.Called(ctx, req)
	buf, _ := args.Get(1).(*bytes.Buffer)
	return args.String(0), buf, args.Error(2)
}

func (m *MockSimulationHandler) Share(ctx context.Context, req SimulationRequest) (ShareResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(ShareResponse), args.Error(1)
}

func serve(h SimulationAPIHandler, method, path, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	for _, route := range Routes(h) {
		router.HandleFunc(route.Path, route.Handler).Methods(route.Method)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) util.ErrorResponse {
	t.Helper()
	var resp util.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestEmployeeHandler(t *testing.T) {
	h := new(MockSimulationHandler)
	h.On("Employee", mock.Anything, "2").Return(model.Employee{ID: "2", Name: "Jean Martin"}, true)
	h.On("Employee", mock.Anything, "9").Return(model.Employee{}, false)

	t.Run("Known employee", func(t *testing.T) {
		rec := serve(h, http.MethodGet, "/employees/2", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":"Jean Martin"`)
	})

	t.Run("Unknown employee", func(t *testing.T) {
		rec := serve(h, http.MethodGet, "/employees/9", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Employee 9 not found", decodeError(t, rec).Message)
	})
}

func TestSimulationHandler(t *testing.T) {
	t.Run("Invalid body", func(t *testing.T) {
		h := new(MockSimulationHandler)
		rec := serve(h, http.MethodPost, "/simulations", "{not json")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid request body", decodeError(t, rec).Message)
		h.AssertNotCalled(t, "Simulate", mock.Anything, mock.Anything)
	})

	t.Run("Oversized body", func(t *testing.T) {
		h := new(MockSimulationHandler)
		body := `{"employee_id":"` + strings.Repeat("1", util.MaxRequestBytes) + `"}`
		rec := serve(h, http.MethodPost, "/simulations", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		h.AssertNotCalled(t, "Simulate", mock.Anything, mock.Anything)
	})

	t.Run("Empty body is the default simulation", func(t *testing.T) {
		h := new(MockSimulationHandler)
		h.On("Simulate", mock.Anything, SimulationRequest{}).Return(SimulationResponse{Metadata: Metadata{EmployeeID: "1"}})

		rec := serve(h, http.MethodPost, "/simulations", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		h.AssertExpectations(t)
	})

	t.Run("Numbers and strings are both accepted as inputs", func(t *testing.T) {
		h := new(MockSimulationHandler)
		expected := SimulationRequest{
			EmployeeID: "2",
			Action:     "exit",
			Inputs:     &model.Inputs{NoticePeriod: "2", SeverancePay: "5000"},
		}
		h.On("Simulate", mock.Anything, expected).Return(SimulationResponse{})

		rec := serve(h, http.MethodPost, "/simulations",
			`{"employee_id":"2","action":"exit","inputs":{"notice_period":2,"severance_pay":"5000"}}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		h.AssertExpectations(t)
	})
}

func TestReportHandler(t *testing.T) {
	t.Run("Workbook attachment", func(t *testing.T) {
		h := new(MockSimulationHandler)
		h.On("Report", mock.Anything, mock.Anything).Return("simulation-1-salary.xlsx", bytes.NewBufferString("xlsx"), nil)

		rec := serve(h, http.MethodPost, "/simulations/report", `{}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, report.ContentType, rec.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="simulation-1-salary.xlsx"`, rec.Header().Get("Content-Disposition"))
		assert.Equal(t, "xlsx", rec.Body.String())
	})

	t.Run("Workbook failure", func(t *testing.T) {
		h := new(MockSimulationHandler)
		h.On("Report", mock.Anything, mock.Anything).Return("", nil, errors.New("disk full"))

		rec := serve(h, http.MethodPost, "/simulations/report", `{}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestShareHandler(t *testing.T) {
	tests := []struct {
		name     string
		resp     ShareResponse
		err      error
		expected int
	}{
		{name: "Accepted", resp: ShareResponse{Status: "accepted", Recipients: []string{"rh@example.com"}}, expected: http.StatusAccepted},
		{name: "No recipient", err: ErrNoRecipient, expected: http.StatusBadRequest},
		{name: "Workbook failure", err: errors.New("boom"), expected: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := new(MockSimulationHandler)
			h.On("Share", mock.Anything, mock.Anything).Return(tt.resp, tt.err)

			rec := serve(h, http.MethodPost, "/simulations/share", `{"email_to":"rh@example.com"}`)
			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}
