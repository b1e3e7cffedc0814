package internal

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/syrilster/payroll-scenario-simulator/internal/detach"
	"github.com/syrilster/payroll-scenario-simulator/internal/directory"
	"github.com/syrilster/payroll-scenario-simulator/internal/format"
	"github.com/syrilster/payroll-scenario-simulator/internal/model"
	"github.com/syrilster/payroll-scenario-simulator/internal/report"
	"github.com/syrilster/payroll-scenario-simulator/internal/scenario"
)

const shareTimeout = 30 * time.Second

// ErrNoRecipient is returned by Share when neither the request nor the configuration names a recipient.
var ErrNoRecipient = errors.New("no email recipient configured")

type ReportMailer interface {
	Send(ctx context.Context, msg report.Message) error
}

type Service struct {
	directory  directory.Directory
	calculator scenario.Calculator
	mailer     ReportMailer
	emailTo    string
	now        func() time.Time
}

type SimulationRequest struct {
	EmployeeID string        `json:"employee_id"`
	Action     string        `json:"action"`
	Inputs     *model.Inputs `json:"inputs,omitempty"`
	Reset      bool          `json:"reset"`
	EmailTo    string        `json:"email_to,omitempty"`
}

type Metadata struct {
	CalculationID string `json:"calculation_id"`
	EmployeeID    string `json:"employee_id"`
	Action        string `json:"action"`
	ChargeRate    string `json:"charge_rate"`
	ComputedAt    string `json:"computed_at"`
}

type SimulationResponse struct {
	Metadata Metadata       `json:"metadata"`
	State    scenario.State `json:"state"`
	Result   model.Result   `json:"result"`
	Preview  format.Preview `json:"preview"`
}

type ShareResponse struct {
	Status     string   `json:"status"`
	Recipients []string `json:"recipients"`
}

func NewService(dir directory.Directory, calculator scenario.Calculator, mailer ReportMailer, emailTo string) *Service {
	return &Service{
		directory:  dir,
		calculator: calculator,
		mailer:     mailer,
		emailTo:    emailTo,
		now:        time.Now,
	}
}

func (service Service) Employees(ctx context.Context) []model.Employee {
	return service.directory.List()
}

func (service Service) Employee(ctx context.Context, id string) (model.Employee, bool) {
	return service.directory.Get(id)
}

//Simulate replays the request on a fresh state and evaluates the active action
func (service Service) Simulate(ctx context.Context, req SimulationRequest) SimulationResponse {
	contextLogger := log.WithContext(ctx)

	state := service.state(ctx, req)
	result := state.Evaluate(service.calculator)

	response := SimulationResponse{
		Metadata: Metadata{
			CalculationID: uuid.New().String(),
			EmployeeID:    state.Employee.ID,
			Action:        string(state.Action),
			ChargeRate:    service.calculator.ChargeRate().String(),
			ComputedAt:    service.now().UTC().Format(time.RFC3339),
		},
		State:   state,
		Result:  result,
		Preview: format.Render(result),
	}

	contextLogger.WithFields(log.Fields{
		"calculation_id": response.Metadata.CalculationID,
		"employee":       state.Employee.ID,
		"action":         state.Action,
		"warnings":       len(result.Warnings),
	}).Info("Simulation computed")
	return response
}

//Report renders the simulation as a workbook and returns it with a file name
func (service Service) Report(ctx context.Context, req SimulationRequest) (string, *bytes.Buffer, error) {
	sim := service.Simulate(ctx, req)
	buf, err := report.Workbook(sim.State.Employee, sim.Result, sim.Preview)
	if err != nil {
		log.WithContext(ctx).WithError(err).Error("Failed to build the simulation workbook")
		return "", nil, err
	}
	return reportFileName(sim), buf, nil
}

//Share builds the report and emails it in the background
func (service Service) Share(ctx context.Context, req SimulationRequest) (ShareResponse, error) {
	contextLogger := log.WithContext(ctx)

	recipients := report.Recipients(req.EmailTo)
	if len(recipients) == 0 {
		recipients = report.Recipients(service.emailTo)
	}
	if len(recipients) == 0 {
		return ShareResponse{}, ErrNoRecipient
	}

	sim := service.Simulate(ctx, req)
	buf, err := report.Workbook(sim.State.Employee, sim.Result, sim.Preview)
	if err != nil {
		contextLogger.WithError(err).Error("Failed to build the simulation workbook")
		return ShareResponse{}, err
	}

	msg := report.Message{
		To:             recipients,
		Subject:        fmt.Sprintf("Simulation %s - %s", sim.Preview.Title, sim.State.Employee.Name),
		Body:           shareBody(sim),
		AttachmentName: reportFileName(sim),
		Attachment:     buf.Bytes(),
	}

	go func() {
		sendCtx, cancel := detach.WithTimeout(ctx, shareTimeout)
		defer cancel()
		if err := service.mailer.Send(sendCtx, msg); err != nil {
			log.WithContext(sendCtx).WithError(err).Errorf("Failed to share simulation %s", sim.Metadata.CalculationID)
			return
		}
		log.WithContext(sendCtx).Infof("Simulation %s shared with %v", sim.Metadata.CalculationID, recipients)
	}()

	return ShareResponse{Status: "accepted", Recipients: recipients}, nil
}

func (service Service) state(ctx context.Context, req SimulationRequest) scenario.State {
	state := scenario.NewState(service.defaultEmployee())
	if req.EmployeeID != "" {
		next := state.SelectEmployee(service.directory, req.EmployeeID)
		if next.Employee.ID != req.EmployeeID {
			log.WithContext(ctx).Warnf("Unknown employee %q, keeping %s", req.EmployeeID, next.Employee.ID)
		}
		state = next
	}

	state = state.SelectAction(model.ParseAction(req.Action))
	if req.Inputs != nil {
		state = state.SetInputs(withDefaults(*req.Inputs, state.Inputs))
	}
	if req.Reset {
		state = state.Reset()
	}
	return state
}

func (service Service) defaultEmployee() model.Employee {
	if e, ok := service.directory.Get(directory.DefaultEmployeeID); ok {
		return e
	}
	return service.directory.List()[0]
}

// withDefaults keeps the state's method and FTE when the request leaves them out.
func withDefaults(in, defaults model.Inputs) model.Inputs {
	if in.AdjustmentMethod == "" {
		in.AdjustmentMethod = defaults.AdjustmentMethod
	}
	if in.NewEtp == "" {
		in.NewEtp = defaults.NewEtp
	}
	return in
}

func reportFileName(sim SimulationResponse) string {
	return fmt.Sprintf("simulation-%s-%s.xlsx", sim.State.Employee.ID, sim.State.Action)
}

func shareBody(sim SimulationResponse) string {
	var body bytes.Buffer
	fmt.Fprintf(&body, "%s (%s)\n%s\n\n", sim.State.Employee.Name, sim.State.Employee.Department, sim.Preview.Title)
	for _, f := range sim.Preview.Figures {
		fmt.Fprintf(&body, "%s : %s\n", f.Label, f.Value)
	}
	for _, w := range sim.Result.Warnings {
		fmt.Fprintf(&body, "\n%s: %s", w.Code, w.Message)
	}
	return body.String()
}
