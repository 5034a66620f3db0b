package InputParameters

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/ghodss/yaml"

	"github.com/notargets/gaussfit/gaussseidel"
	"github.com/notargets/gaussfit/types"
	"github.com/notargets/gaussfit/utils"
)

// Number accepts a YAML number or a string holding a number or a fraction like "1/3"
type Number float64

func (n *Number) UnmarshalJSON(data []byte) (err error) {
	var (
		f float64
		s string
	)
	if err = json.Unmarshal(data, &f); err == nil {
		*n = Number(f)
		return
	}
	if err = json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("expected a number or a fraction, got %s", string(data))
	}
	if f, err = ParseFraction(s); err != nil {
		return
	}
	*n = Number(f)
	return
}

// ParseFraction parses "a/b" with a non zero denominator, or a plain number
func ParseFraction(input string) (f float64, err error) {
	var (
		trimmed = strings.TrimSpace(input)
	)
	if num, den, found := strings.Cut(trimmed, "/"); found {
		var n, d float64
		if n, err = strconv.ParseFloat(strings.TrimSpace(num), 64); err != nil {
			return 0, fmt.Errorf("bad numerator in %q: %w", input, err)
		}
		if d, err = strconv.ParseFloat(strings.TrimSpace(den), 64); err != nil {
			return 0, fmt.Errorf("bad denominator in %q: %w", input, err)
		}
		if d == 0 {
			return 0, fmt.Errorf("zero denominator in %q", input)
		}
		return n / d, nil
	}
	if f, err = strconv.ParseFloat(trimmed, 64); err != nil {
		err = fmt.Errorf("bad number %q: %w", input, err)
	}
	return
}

// Parameters obtained from the YAML input file describing A·x = b
type SystemParameters struct {
	Title         string     `yaml:"Title" json:"Title"`
	A             [][]Number `yaml:"A" json:"A"`
	B             []Number   `yaml:"B" json:"B"`
	X0            []Number   `yaml:"X0" json:"X0"`
	Tolerance     float64    `yaml:"Tolerance" json:"Tolerance"`
	ErrorType     string     `yaml:"ErrorType" json:"ErrorType"`
	MaxIterations int        `yaml:"MaxIterations" json:"MaxIterations"`
}

func (sp *SystemParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, sp)
}

// System converts the parsed coefficients, A must be square and match B in length. A is returned read only.
func (sp *SystemParameters) System() (A utils.Matrix, b utils.Vector, err error) {
	var (
		rows = make([][]float64, len(sp.A))
	)
	for i, row := range sp.A {
		rows[i] = numbers(row)
	}
	if A, err = utils.NewMatrixFromRows(rows); err != nil {
		err = fmt.Errorf("matrix A: %w", err)
		return
	}
	if !A.IsSquare() {
		nr, nc := A.Dims()
		err = fmt.Errorf("matrix A is %dx%d, need a square matrix", nr, nc)
		return
	}
	if len(sp.B) != len(rows) {
		err = fmt.Errorf("vector B has %d entries, matrix A has %d rows", len(sp.B), len(rows))
		return
	}
	b = utils.NewVector(len(sp.B), numbers(sp.B))
	A.SetReadOnly("A")
	return
}

// Options starts from the solver defaults, zero values in the file leave a default in place
func (sp *SystemParameters) Options() (o gaussseidel.Options, err error) {
	o = gaussseidel.DefaultOptions()
	if sp.Tolerance > 0 {
		o.Tolerance = sp.Tolerance
	}
	if sp.MaxIterations > 0 {
		o.MaxIterations = sp.MaxIterations
	}
	if o.ErrorType, err = types.NewErrorType(sp.ErrorType); err != nil {
		return
	}
	if len(sp.X0) != 0 {
		o.InitialGuess = numbers(sp.X0)
	}
	return
}

func (sp *SystemParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", sp.Title)
	fmt.Printf("[%d]\t\t\t\t= Order\n", len(sp.A))
	for i, row := range sp.A {
		fmt.Printf("A[%d] = %v\tB[%d] = %v\n", i, numbers(row), i, bAt(sp.B, i))
	}
	if len(sp.X0) != 0 {
		fmt.Printf("%v\t= X0\n", numbers(sp.X0))
	}
	fmt.Printf("%8.2e\t\t= Tolerance\n", sp.Tolerance)
	fmt.Printf("[%s]\t\t= Error Type\n", sp.ErrorType)
	fmt.Printf("[%d]\t\t\t= Max Iterations\n", sp.MaxIterations)
}

func bAt(B []Number, i int) any {
	if i < len(B) {
		return float64(B[i])
	}
	return "missing"
}

func numbers(nums []Number) (f []float64) {
	f = make([]float64, len(nums))
	for i, n := range nums {
		f[i] = float64(n)
	}
	return
}

// ExampleFile is shown when no input file is given
const ExampleFile = `
########################################
Title: "Diagonally dominant 3x3"
A:
  - [4, 1, 1]
  - [2, 5, 1]
  - [1, 1, 3]
B: [7, -8, 6]
X0: [0, 0, 0]        # optional, zero vector otherwise
Tolerance: 1.e-6
ErrorType: absolute  # or relative
MaxIterations: 100
########################################
`
