// Package directory holds the employees a simulation can be run against. The
// table is built once at startup and never changes afterwards.
package directory

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/syrilster/payroll-scenario-simulator/internal/model"
)

//go:embed seed.yaml
var seedYAML []byte

// DefaultEmployeeID is selected when a simulation names no known employee.
const DefaultEmployeeID = "1"

type Directory interface {
	Get(id string) (model.Employee, bool)
	List() []model.Employee
}

// Table is an immutable, ordered lookup table of employees keyed by id.
type Table struct {
	order     []string
	employees map[string]model.Employee
}

// NewTable validates the employees and indexes them by id.
func NewTable(employees []model.Employee) (*Table, error) {
	t := &Table{
		employees: make(map[string]model.Employee, len(employees)),
	}
	var errs []string
	for i, e := range employees {
		if err := Validate(e); err != nil {
			errs = append(errs, fmt.Sprintf("employee #%d: %v", i+1, err))
			continue
		}
		if _, ok := t.employees[e.ID]; ok {
			errs = append(errs, fmt.Sprintf("employee #%d: duplicate id %q", i+1, e.ID))
			continue
		}
		t.employees[e.ID] = e
		t.order = append(t.order, e.ID)
	}
	if len(errs) > 0 {
		return nil, errors.New(strings.Join(errs, "; "))
	}
	if len(t.order) == 0 {
		return nil, errors.New("directory is empty")
	}
	return t, nil
}

// Seed returns the built-in fixture employees.
func Seed() (*Table, error) {
	return parseYAML(seedYAML)
}

func (t *Table) Get(id string) (model.Employee, bool) {
	e, ok := t.employees[id]
	return e, ok
}

func (t *Table) List() []model.Employee {
	list := make([]model.Employee, 0, len(t.order))
	for _, id := range t.order {
		list = append(list, t.employees[id])
	}
	return list
}

func (t *Table) Len() int {
	return len(t.order)
}

// Validate checks the invariants of an employee record:
// totalCost >= salary >= 0 and 0 < etp <= 1.
func Validate(e model.Employee) error {
	switch {
	case strings.TrimSpace(e.ID) == "":
		return errors.New("missing id")
	case !e.Contract.Valid():
		return fmt.Errorf("unknown contract type %q", e.Contract)
	case !e.Etp.IsPositive() || e.Etp.GreaterThan(decimal.NewFromInt(1)):
		return fmt.Errorf("etp %s outside (0, 1]", e.Etp)
	case e.Salary.IsNegative():
		return fmt.Errorf("negative salary %s", e.Salary)
	case e.TotalCost.LessThan(e.Salary):
		return fmt.Errorf("total cost %s below salary %s", e.TotalCost, e.Salary)
	}
	return nil
}

type record struct {
	ID         string  `yaml:"id"`
	Name       string  `yaml:"name"`
	Initials   string  `yaml:"initials"`
	Department string  `yaml:"department"`
	Contract   string  `yaml:"contract"`
	Etp        float64 `yaml:"etp"`
	Salary     float64 `yaml:"salary"`
	TotalCost  float64 `yaml:"total_cost"`
	StartDate  string  `yaml:"start_date"`
}

func (r record) employee() model.Employee {
	return model.Employee{
		ID:         strings.TrimSpace(r.ID),
		Name:       r.Name,
		Initials:   r.Initials,
		Department: r.Department,
		Contract:   model.ContractType(strings.ToUpper(strings.TrimSpace(r.Contract))),
		Etp:        decimal.NewFromFloat(r.Etp),
		Salary:     decimal.NewFromFloat(r.Salary),
		TotalCost:  decimal.NewFromFloat(r.TotalCost),
		StartDate:  r.StartDate,
	}
}
