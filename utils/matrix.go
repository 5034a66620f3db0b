package utils

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix wraps a gonum row-major dense matrix
type Matrix struct {
	M        *mat.Dense
	readOnly bool
	name     string
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v\n", nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{
		m,
		false,
		"unnamed - hint: pass a variable name to SetReadOnly()",
	}
	return
}

// NewMatrixFromRows copies rows, all rows must have the same length
func NewMatrixFromRows(rows [][]float64) (R Matrix, err error) {
	var (
		nr = len(rows)
		nc int
	)
	if nr == 0 {
		err = fmt.Errorf("empty matrix")
		return
	}
	nc = len(rows[0])
	if nc == 0 {
		err = fmt.Errorf("empty matrix row 0")
		return
	}
	data := make([]float64, 0, nr*nc)
	for i, row := range rows {
		if len(row) != nc {
			err = fmt.Errorf("ragged matrix: row %d has %d entries, row 0 has %d", i, len(row), nc)
			return
		}
		data = append(data, row...)
	}
	R = NewMatrix(nr, nc, data)
	return
}

func NewIdentity(n int) (R Matrix) {
	R = NewMatrix(n, n)
	for i := 0; i < n; i++ {
		R.M.Set(i, i, 1)
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)    { return m.M.Dims() }
func (m Matrix) At(i, j int) float64 { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix       { return m.M.T() }

func (m Matrix) Data() []float64 { return m.M.RawMatrix().Data }

// Chainable methods (extended)
func (m *Matrix) SetReadOnly(name ...string) Matrix {
	if len(name) != 0 {
		m.name = name[0]
	}
	m.readOnly = true
	return *m
}

func (m Matrix) IsSquare() bool {
	var (
		nr, nc = m.Dims()
	)
	return nr == nc
}

func (m Matrix) Copy() (R Matrix) { // Does not change receiver
	var (
		data   = m.Data()
		nr, nc = m.Dims()
		dataR  = make([]float64, nr*nc)
	)
	copy(dataR, data)
	R = NewMatrix(nr, nc, dataR)
	return
}

// Row is a view into the receiver's storage
func (m Matrix) Row(i int) []float64 {
	return m.M.RawRowView(i)
}

func (m Matrix) SwapRows(i, k int) Matrix { // Changes receiver
	if i == k {
		return m
	}
	m.checkWritable()
	var (
		ri, rk = m.Row(i), m.Row(k)
	)
	for j := range ri {
		ri[j], rk[j] = rk[j], ri[j]
	}
	return m
}

func (m Matrix) Set(i, j int, val float64) Matrix { // Changes receiver
	m.checkWritable()
	m.M.Set(i, j, val)
	return m
}

func (m Matrix) Mul(A mat.Matrix) (R Matrix) { // Does not change receiver
	var (
		nrM, _ = m.Dims()
		_, ncA = A.Dims()
	)
	R = NewMatrix(nrM, ncA)
	R.M.Mul(m.M, A)
	return R
}

func (m Matrix) MulVec(v mat.Vector) (R Vector) { // Does not change receiver
	var (
		nrM, _ = m.Dims()
	)
	R = NewVector(nrM)
	R.V.MulVec(m.M, v)
	return
}

func (m Matrix) Subtract(a mat.Matrix) Matrix { // Changes receiver
	m.checkWritable()
	m.M.Sub(m.M, a)
	return m
}

// Inverse returns an error when the receiver is singular
func (m Matrix) Inverse() (R Matrix, err error) { // Does not change receiver
	var (
		nr, _ = m.Dims()
	)
	R = NewMatrix(nr, nr)
	if err = R.M.Inverse(m.M); err != nil {
		err = fmt.Errorf("unable to invert matrix %q: %w", m.name, err)
	}
	return
}

func (m Matrix) Print(msgI ...string) (o string) {
	var (
		name = ""
	)
	if len(msgI) != 0 {
		name = msgI[0]
	}
	o = fmt.Sprintf("%s = \n%v\n", name, mat.Formatted(m.M, mat.Squeeze()))
	return
}

func (m Matrix) checkWritable() {
	if m.readOnly {
		err := fmt.Errorf("attempt to write to a read only matrix named: \"%v\"", m.name)
		panic(err)
	}
}
