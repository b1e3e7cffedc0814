package format

import (
	"github.com/shopspring/decimal"

	"github.com/syrilster/payroll-scenario-simulator/internal/model"
)

type Tone string

const (
	ToneNeutral  Tone = "neutral"
	TonePrimary  Tone = "primary"
	TonePositive Tone = "positive"
	ToneNegative Tone = "negative"
)

type Figure struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
	Tone  Tone   `json:"tone"`
}

type Preview struct {
	Title   string   `json:"title"`
	Figures []Figure `json:"figures"`
}

var hundred = decimal.NewFromInt(100)

// Render turns a result into the preview shown next to the action form.
func Render(r model.Result) Preview {
	switch {
	case r.Salary != nil:
		return salaryPreview(r.Salary)
	case r.Exit != nil:
		return exitPreview(r.Exit)
	case r.Replacement != nil:
		return replacementPreview(r.Replacement)
	case r.Etp != nil:
		return etpPreview(r.Etp)
	}
	return Preview{}
}

func salaryPreview(s *model.SalaryAdjustmentResult) Preview {
	tone := TonePositive
	if s.Adjustment.IsNegative() {
		tone = ToneNegative
	}
	rate := decimal.Zero
	if !s.CurrentSalary.IsZero() {
		rate = s.Adjustment.Mul(hundred).Div(s.CurrentSalary)
	}
	return Preview{
		Title: "Aperçu du calcul",
		Figures: []Figure{
			{Key: "current_salary", Label: "Salaire Actuel", Value: Currency(s.CurrentSalary), Tone: ToneNeutral},
			{Key: "adjustment", Label: "Ajustement", Value: SignedCurrency(s.Adjustment), Tone: tone},
			{Key: "adjustment_rate", Label: "Taux d'ajustement", Value: Percent(rate), Tone: tone},
			{Key: "new_salary", Label: "Nouveau Salaire", Value: Currency(s.NewSalary), Tone: TonePrimary},
		},
	}
}

func exitPreview(e *model.ExitResult) Preview {
	return Preview{
		Title: "Impact Financier",
		Figures: []Figure{
			{Key: "notice_cost", Label: "Coût Préavis", Value: Currency(e.NoticeCost), Tone: ToneNeutral},
			{Key: "severance_pay", Label: "Indemnités", Value: Currency(e.SeverancePay), Tone: ToneNeutral},
			{Key: "annual_savings", Label: "Économie Annuelle", Value: "-" + Currency(e.AnnualSavings), Tone: TonePositive},
		},
	}
}

func replacementPreview(r *model.ReplacementResult) Preview {
	variance := Figure{Key: "variance", Label: "Variance", Value: Currency(r.Variance), Tone: TonePositive}
	if r.Variance.IsPositive() {
		variance.Value = "+" + variance.Value
		variance.Tone = ToneNegative
	}
	return Preview{
		Title: "Comparaison des Coûts",
		Figures: []Figure{
			{Key: "current_annual_cost", Label: "Coût Sortant", Value: Currency(r.CurrentAnnualCost) + "/an", Tone: ToneNeutral},
			{Key: "new_annual_cost", Label: "Coût Entrant", Value: Currency(r.NewAnnualCost) + "/an", Tone: ToneNeutral},
			variance,
		},
	}
}

func etpPreview(e *model.EtpChangeResult) Preview {
	savings := Figure{Key: "annual_savings", Label: "Économie Annuelle", Value: "-" + Currency(e.AnnualSavings.Abs()), Tone: TonePositive}
	if e.AnnualSavings.IsNegative() {
		savings.Value = "+" + Currency(e.AnnualSavings.Abs())
		savings.Tone = ToneNegative
	}
	return Preview{
		Title: "Impact sur le Coût",
		Figures: []Figure{
			{Key: "current_monthly_cost", Label: "Coût Actuel", Value: Currency(e.CurrentMonthlyCost) + "/mois", Tone: ToneNeutral},
			{Key: "new_monthly_cost", Label: "Nouveau Coût", Value: Currency(e.NewMonthlyCost) + "/mois", Tone: ToneNeutral},
			savings,
		},
	}
}
