package internal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/syrilster/payroll-scenario-simulator/internal/report"
	"github.com/syrilster/payroll-scenario-simulator/internal/util"
)

func EmployeesHandler(h SimulationAPIHandler) func(res http.ResponseWriter, req *http.Request) {
	return func(res http.ResponseWriter, req *http.Request) {
		util.WithBodyAndStatus(h.Employees(req.Context()), http.StatusOK, res)
	}
}

func EmployeeHandler(h SimulationAPIHandler) func(res http.ResponseWriter, req *http.Request) {
	return func(res http.ResponseWriter, req *http.Request) {
		id := mux.Vars(req)["id"]
		employee, ok := h.Employee(req.Context(), id)
		if !ok {
			util.WithError(fmt.Sprintf("Employee %s not found", id), http.StatusNotFound, res)
			return
		}
		util.WithBodyAndStatus(employee, http.StatusOK, res)
	}
}

//SimulationHandler evaluates one scenario and returns the result with its preview
func SimulationHandler(h SimulationAPIHandler) func(res http.ResponseWriter, req *http.Request) {
	return func(res http.ResponseWriter, req *http.Request) {
		simReq, ok := decodeSimulationRequest(res, req)
		if !ok {
			return
		}
		util.WithBodyAndStatus(h.Simulate(req.Context(), simReq), http.StatusOK, res)
	}
}

func ReportHandler(h SimulationAPIHandler) func(res http.ResponseWriter, req *http.Request) {
	return func(res http.ResponseWriter, req *http.Request) {
		simReq, ok := decodeSimulationRequest(res, req)
		if !ok {
			return
		}

		name, buf, err := h.Report(req.Context(), simReq)
		if err != nil {
			util.WithError("Failed to build the report", http.StatusInternalServerError, res)
			return
		}

		res.Header().Set("Content-Type", report.ContentType)
		res.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
		res.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		res.WriteHeader(http.StatusOK)
		if _, err := buf.WriteTo(res); err != nil {
			log.WithContext(req.Context()).WithError(err).Error("Failed to write the report")
		}
	}
}

func ShareHandler(h SimulationAPIHandler) func(res http.ResponseWriter, req *http.Request) {
	return func(res http.ResponseWriter, req *http.Request) {
		simReq, ok := decodeSimulationRequest(res, req)
		if !ok {
			return
		}

		accepted, err := h.Share(req.Context(), simReq)
		switch {
		case errors.Is(err, ErrNoRecipient):
			util.WithError(err.Error(), http.StatusBadRequest, res)
		case err != nil:
			util.WithError("Failed to share the simulation", http.StatusInternalServerError, res)
		default:
			util.WithBodyAndStatus(accepted, http.StatusAccepted, res)
		}
	}
}

// decodeSimulationRequest writes a 400 and returns false when the body is not a valid request.
// An empty body is the default simulation.
func decodeSimulationRequest(res http.ResponseWriter, req *http.Request) (SimulationRequest, bool) {
	var simReq SimulationRequest
	util.LimitBody(res, req)
	err := json.NewDecoder(req.Body).Decode(&simReq)
	if err != nil && !errors.Is(err, io.EOF) {
		log.WithContext(req.Context()).WithError(err).Error("Failed to parse simulation request")
		util.WithError("Invalid request body", http.StatusBadRequest, res)
		return SimulationRequest{}, false
	}
	return simReq, true
}
