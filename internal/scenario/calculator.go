// Package scenario computes payroll what-if figures for a single employee.
//
// Every operation is total: bad user input never produces an error. Inputs that
// cannot be parsed are treated as zero, and suspicious values are reported as
// warnings on the result.
package scenario

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/syrilster/payroll-scenario-simulator/internal/model"
)

const (
	codeNegativeNewSalary    = "NEGATIVE_NEW_SALARY"
	codeNegativeNoticePeriod = "NEGATIVE_NOTICE_PERIOD"
	codeNegativeAmount       = "NEGATIVE_AMOUNT"
	codeEtpOutOfRange        = "ETP_OUT_OF_RANGE"
	codeZeroCurrentEtp       = "ZERO_CURRENT_ETP"
)

var (
	// DefaultChargeRate is the employer charge rate applied on top of a replacement's
	// gross salary.
	DefaultChargeRate = decimal.NewFromFloat(0.4)

	hundred       = decimal.NewFromInt(100)
	monthsPerYear = decimal.NewFromInt(12)
)

type Calculator struct {
	chargeRate decimal.Decimal
}

type Option func(*Calculator)

// WithChargeRate overrides the employer charge rate. Negative rates are ignored.
func WithChargeRate(rate decimal.Decimal) Option {
	return func(c *Calculator) {
		if !rate.IsNegative() {
			c.chargeRate = rate
		}
	}
}

func NewCalculator(options ...Option) Calculator {
	c := Calculator{chargeRate: DefaultChargeRate}
	for _, opt := range options {
		opt(&c)
	}
	return c
}

// ChargeRate returns the employer charge rate used for replacements.
func (c Calculator) ChargeRate() decimal.Decimal {
	return c.chargeRate
}

func (c Calculator) SalaryAdjustment(e model.Employee, method model.Method, value decimal.Decimal) model.Result {
	var adjustment decimal.Decimal
	if method == model.MethodAmount {
		adjustment = value
	} else {
		adjustment = e.Salary.Mul(value).Div(hundred)
	}
	newSalary := e.Salary.Add(adjustment)

	var warnings []model.Warning
	if newSalary.IsNegative() {
		warnings = append(warnings, warning(codeNegativeNewSalary,
			fmt.Sprintf("Adjusted salary for employee %s is negative", e.ID)))
	}

	return model.Result{
		Action: model.ActionSalary,
		Salary: &model.SalaryAdjustmentResult{
			CurrentSalary: e.Salary,
			Adjustment:    adjustment,
			NewSalary:     newSalary,
		},
		Warnings: warnings,
	}
}

// ExitImpact prices the notice period and the yearly cost removed by an exit. The
// severance pay is a user estimate and is returned unchanged.
func (c Calculator) ExitImpact(e model.Employee, noticePeriodMonths int64, severancePay decimal.Decimal) model.Result {
	var warnings []model.Warning
	if noticePeriodMonths < 0 {
		warnings = append(warnings, warning(codeNegativeNoticePeriod, "Notice period must not be negative"))
	}
	if severancePay.IsNegative() {
		warnings = append(warnings, warning(codeNegativeAmount, "Severance pay must not be negative"))
	}

	return model.Result{
		Action: model.ActionExit,
		Exit: &model.ExitResult{
			NoticeCost:    e.TotalCost.Mul(decimal.NewFromInt(noticePeriodMonths)),
			SeverancePay:  severancePay,
			AnnualSavings: e.TotalCost.Mul(monthsPerYear),
		},
		Warnings: warnings,
	}
}

// ReplacementVariance compares the yearly cost of the current employee with a
// replacement hired at newSalary. A variance at or below zero is a saving.
func (c Calculator) ReplacementVariance(e model.Employee, newSalary, recruitmentCost decimal.Decimal) model.Result {
	currentAnnualCost := e.TotalCost.Mul(monthsPerYear)
	newAnnualCost := newSalary.Mul(decimal.NewFromInt(1).Add(c.chargeRate)).Mul(monthsPerYear)

	var warnings []model.Warning
	if newSalary.IsNegative() {
		warnings = append(warnings, warning(codeNegativeAmount, "New salary must not be negative"))
	}
	if recruitmentCost.IsNegative() {
		warnings = append(warnings, warning(codeNegativeAmount, "Recruitment cost must not be negative"))
	}

	return model.Result{
		Action: model.ActionReplace,
		Replacement: &model.ReplacementResult{
			CurrentAnnualCost: currentAnnualCost,
			NewAnnualCost:     newAnnualCost,
			Variance:          newAnnualCost.Sub(currentAnnualCost).Add(recruitmentCost),
		},
		Warnings: warnings,
	}
}

// EtpChange rescales the monthly cost to a new full-time-equivalent fraction.
func (c Calculator) EtpChange(e model.Employee, newEtp decimal.Decimal) model.Result {
	var warnings []model.Warning
	if !newEtp.IsPositive() || newEtp.GreaterThan(decimal.NewFromInt(1)) {
		warnings = append(warnings, warning(codeEtpOutOfRange,
			fmt.Sprintf("New FTE %s is outside (0, 1]", newEtp.String())))
	}

	newMonthlyCost := decimal.Zero
	if e.Etp.IsZero() {
		warnings = append(warnings, warning(codeZeroCurrentEtp,
			fmt.Sprintf("Employee %s has no current FTE, new cost cannot be derived", e.ID)))
	} else {
		newMonthlyCost = e.TotalCost.Div(e.Etp).Mul(newEtp)
	}

	return model.Result{
		Action: model.ActionEtp,
		Etp: &model.EtpChangeResult{
			CurrentMonthlyCost: e.TotalCost,
			NewMonthlyCost:     newMonthlyCost,
			AnnualSavings:      e.TotalCost.Sub(newMonthlyCost).Mul(monthsPerYear),
		},
		Warnings: warnings,
	}
}

func warning(code, msg string) model.Warning {
	return model.Warning{Level: model.LevelWarning, Code: code, Message: msg}
}
