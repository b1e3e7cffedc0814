package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type ContractType string

const (
	ContractPermanent ContractType = "CDI"
	ContractFixedTerm ContractType = "CDD"
)

// Valid reports whether c is one of the supported contract types.
func (c ContractType) Valid() bool {
	return c == ContractPermanent || c == ContractFixedTerm
}

type Employee struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Initials   string          `json:"initials"`
	Department string          `json:"department"`
	Contract   ContractType    `json:"contract"`
	Etp        decimal.Decimal `json:"etp"`
	Salary     decimal.Decimal `json:"salary"`
	TotalCost  decimal.Decimal `json:"total_cost"`
	StartDate  string          `json:"start_date,omitempty"`
}

type Action string

const (
	ActionSalary  Action = "salary"
	ActionExit    Action = "exit"
	ActionReplace Action = "replace"
	ActionEtp     Action = "etp"
)

// ParseAction maps a form value to an Action. Anything unknown selects the salary form,
// which is the form shown when the page opens.
func ParseAction(s string) Action {
	switch a := Action(s); a {
	case ActionSalary, ActionExit, ActionReplace, ActionEtp:
		return a
	}
	return ActionSalary
}

type Method string

const (
	MethodPercent Method = "percent"
	MethodAmount  Method = "amount"
)

func ParseMethod(s string) Method {
	if Method(s) == MethodAmount {
		return MethodAmount
	}
	return MethodPercent
}

// FormValue is a raw form field. It accepts JSON strings and numbers; any other
// JSON value decodes to the empty string instead of failing the request.
type FormValue string

func (v *FormValue) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*v = FormValue(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*v = FormValue(n.String())
		return nil
	}

	*v = ""
	return nil
}

// Inputs holds the raw values of every action form. Only the fields of the active
// action are read when a result is computed.
type Inputs struct {
	AdjustmentMethod string    `json:"adjustment_method"`
	AdjustmentValue  FormValue `json:"adjustment_value"`
	NoticePeriod     FormValue `json:"notice_period"`
	SeverancePay     FormValue `json:"severance_pay"`
	NewSalary        FormValue `json:"new_salary"`
	RecruitmentCost  FormValue `json:"recruitment_cost"`
	NewEtp           FormValue `json:"new_etp"`
}

const LevelWarning = "WARNING"

type Warning struct {
	Level   string `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type SalaryAdjustmentResult struct {
	CurrentSalary decimal.Decimal `json:"current_salary"`
	Adjustment    decimal.Decimal `json:"adjustment"`
	NewSalary     decimal.Decimal `json:"new_salary"`
}

type ExitResult struct {
	NoticeCost    decimal.Decimal `json:"notice_cost"`
	SeverancePay  decimal.Decimal `json:"severance_pay"`
	AnnualSavings decimal.Decimal `json:"annual_savings"`
}

type ReplacementResult struct {
	CurrentAnnualCost decimal.Decimal `json:"current_annual_cost"`
	NewAnnualCost     decimal.Decimal `json:"new_annual_cost"`
	Variance          decimal.Decimal `json:"variance"`
}

type EtpChangeResult struct {
	CurrentMonthlyCost decimal.Decimal `json:"current_monthly_cost"`
	NewMonthlyCost     decimal.Decimal `json:"new_monthly_cost"`
	AnnualSavings      decimal.Decimal `json:"annual_savings"`
}

// Result is the outcome of one calculation. Exactly one of the action fields is set,
// matching Action.
type Result struct {
	Action      Action                  `json:"action"`
	Salary      *SalaryAdjustmentResult `json:"salary,omitempty"`
	Exit        *ExitResult             `json:"exit,omitempty"`
	Replacement *ReplacementResult      `json:"replacement,omitempty"`
	Etp         *EtpChangeResult        `json:"etp,omitempty"`
	Warnings    []Warning               `json:"warnings"`
}
