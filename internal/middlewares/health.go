package middlewares

import (
	"net/http"

	"github.com/syrilster/payroll-scenario-simulator/internal/directory"
	"github.com/syrilster/payroll-scenario-simulator/internal/util"
)

type healthResponse struct {
	Status    string `json:"status"`
	Employees int    `json:"employees"`
}

//RuntimeHealthCheck reports the service as up along with the size of the loaded directory
func RuntimeHealthCheck(dir directory.Directory) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		util.WithBodyAndStatus(healthResponse{Status: "All OK", Employees: len(dir.List())}, http.StatusOK, w)
	}
}
