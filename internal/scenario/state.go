package scenario

import (
	"github.com/syrilster/payroll-scenario-simulator/internal/model"
)

// Lookup resolves employees by identifier.
type Lookup interface {
	Get(id string) (model.Employee, bool)
}

// State is the selection a user is working on: one employee, one active action and
// the raw values of every action form. It is a plain value; each transition
// returns a new State and no result is kept between evaluations.
type State struct {
	Employee model.Employee `json:"employee"`
	Action   model.Action   `json:"action"`
	Inputs   model.Inputs   `json:"inputs"`
}

func NewState(e model.Employee) State {
	return State{
		Employee: e,
		Action:   model.ActionSalary,
		Inputs:   DefaultInputs(e),
	}
}

// DefaultInputs returns the form values shown for a freshly selected employee. The
// FTE form starts at the employee's current FTE.
func DefaultInputs(e model.Employee) model.Inputs {
	return model.Inputs{
		AdjustmentMethod: string(model.MethodPercent),
		NewEtp:           model.FormValue(e.Etp.String()),
	}
}

// SelectEmployee switches to the employee with the given id and resets the forms.
// Unknown ids leave the state untouched.
func (s State) SelectEmployee(dir Lookup, id string) State {
	if id == s.Employee.ID {
		return s
	}
	e, ok := dir.Get(id)
	if !ok {
		return s
	}
	s.Employee = e
	s.Inputs = DefaultInputs(e)
	return s
}

func (s State) SelectAction(a model.Action) State {
	s.Action = a
	return s
}

func (s State) SetInputs(in model.Inputs) State {
	s.Inputs = in
	return s
}

// Reset restores the default form values while keeping the employee and action.
func (s State) Reset() State {
	s.Inputs = DefaultInputs(s.Employee)
	return s
}

// Evaluate runs the calculation of the active action against the current inputs.
func (s State) Evaluate(c Calculator) model.Result {
	in := s.Inputs
	switch s.Action {
	case model.ActionExit:
		return c.ExitImpact(s.Employee, ParseInt(string(in.NoticePeriod)), ParseDecimal(string(in.SeverancePay)))
	case model.ActionReplace:
		return c.ReplacementVariance(s.Employee, ParseDecimal(string(in.NewSalary)), ParseDecimal(string(in.RecruitmentCost)))
	case model.ActionEtp:
		return c.EtpChange(s.Employee, ParseDecimal(string(in.NewEtp)))
	default:
		return c.SalaryAdjustment(s.Employee, model.ParseMethod(in.AdjustmentMethod), ParseDecimal(string(in.AdjustmentValue)))
	}
}
