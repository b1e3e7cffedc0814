package directory

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tealeg/xlsx"
	"gopkg.in/yaml.v3"

	"github.com/syrilster/payroll-scenario-simulator/internal/model"
)

// xlsx column order, after a header row
const (
	colID = iota
	colName
	colInitials
	colDepartment
	colContract
	colEtp
	colSalary
	colTotalCost
	colStartDate
)

// Load builds a directory from a file. An empty path returns the built-in seed.
// Supported formats are YAML (.yaml, .yml) and Excel workbooks (.xlsx).
func Load(path string) (*Table, error) {
	if path == "" {
		return Seed()
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read employees file: %w", err)
		}
		return parseYAML(data)
	case ".xlsx":
		return loadXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported employees file format %q", ext)
	}
}

func parseYAML(data []byte) (*Table, error) {
	var doc struct {
		Employees []record `yaml:"employees"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse employees yaml: %w", err)
	}

	employees := make([]model.Employee, 0, len(doc.Employees))
	for _, r := range doc.Employees {
		employees = append(employees, r.employee())
	}
	return NewTable(employees)
}

func loadXLSX(path string) (*Table, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open employees workbook: %w", err)
	}
	if len(f.Sheets) == 0 {
		return nil, fmt.Errorf("employees workbook %s has no sheet", path)
	}

	var employees []model.Employee
	for index, row := range f.Sheets[0].Rows {
		// header
		if index == 0 || row == nil || isBlank(row) {
			continue
		}
		r, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("employees workbook row %d: %w", index+1, err)
		}
		employees = append(employees, r.employee())
	}
	return NewTable(employees)
}

func parseRow(row *xlsx.Row) (record, error) {
	cell := func(i int) string {
		if i >= len(row.Cells) {
			return ""
		}
		return strings.TrimSpace(row.Cells[i].String())
	}
	number := func(i int, name string) (float64, error) {
		v, err := strconv.ParseFloat(strings.Replace(cell(i), ",", ".", 1), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s %q", name, cell(i))
		}
		return v, nil
	}

	r := record{
		ID:         cell(colID),
		Name:       cell(colName),
		Initials:   cell(colInitials),
		Department: cell(colDepartment),
		Contract:   cell(colContract),
		StartDate:  cell(colStartDate),
	}
	var err error
	if r.Etp, err = number(colEtp, "etp"); err != nil {
		return record{}, err
	}
	if r.Salary, err = number(colSalary, "salary"); err != nil {
		return record{}, err
	}
	if r.TotalCost, err = number(colTotalCost, "total cost"); err != nil {
		return record{}, err
	}
	if r.Initials == "" {
		r.Initials = initials(r.Name)
	}
	return r, nil
}

func isBlank(row *xlsx.Row) bool {
	for _, c := range row.Cells {
		if strings.TrimSpace(c.String()) != "" {
			return false
		}
	}
	return true
}

func initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		b.WriteString(strings.ToUpper(string([]rune(part)[:1])))
	}
	return b.String()
}
