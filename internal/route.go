package internal

import (
	"bytes"
	"context"
	"net/http"

	"github.com/syrilster/payroll-scenario-simulator/internal/config"
	"github.com/syrilster/payroll-scenario-simulator/internal/model"
)

type SimulationAPIHandler interface {
	Employees(ctx context.Context) []model.Employee
	Employee(ctx context.Context, id string) (model.Employee, bool)
	Simulate(ctx context.Context, req SimulationRequest) SimulationResponse
	Report(ctx context.Context, req SimulationRequest) (string, *bytes.Buffer, error)
	Share(ctx context.Context, req SimulationRequest) (ShareResponse, error)
}

func Routes(h SimulationAPIHandler) []config.Route {
	return []config.Route{
		{
			Path:    "/employees",
			Method:  http.MethodGet,
			Handler: EmployeesHandler(h),
		},
		{
			Path:    "/employees/{id}",
			Method:  http.MethodGet,
			Handler: EmployeeHandler(h),
		},
		{
			Path:    "/simulations",
			Method:  http.MethodPost,
			Handler: SimulationHandler(h),
		},
		{
			Path:    "/simulations/report",
			Method:  http.MethodPost,
			Handler: ReportHandler(h),
		},
		{
			Path:    "/simulations/share",
			Method:  http.MethodPost,
			Handler: ShareHandler(h),
		},
	}
}
