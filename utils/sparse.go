package utils

import (
	"fmt"
	"sort"

	"github.com/james-bowman/sparse"
	"github.com/james-bowman/sparse/blas"
	"gonum.org/v1/gonum/mat"
)

// DOK is a sparse matrix under assembly, convert with ToCSR before solving
type DOK struct {
	M        *sparse.DOK
	readOnly bool
	name     string
}

func NewDOK(nr, nc int) (R DOK) {
	R = DOK{
		sparse.NewDOK(nr, nc),
		false,
		"unnamed - hint: pass a variable name to SetReadOnly()",
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m DOK) Dims() (r, c int)    { return m.M.Dims() }
func (m DOK) At(i, j int) float64 { return m.M.At(i, j) }
func (m DOK) T() mat.Matrix       { return m.M.T() }

func (m *DOK) SetReadOnly(name ...string) DOK {
	if len(name) != 0 {
		m.name = name[0]
	}
	m.readOnly = true
	return *m
}

func (m DOK) Set(i, j int, val float64) DOK { // Changes receiver
	m.checkWritable()
	m.M.Set(i, j, val)
	return m
}

func (m DOK) checkWritable() {
	if m.readOnly {
		err := fmt.Errorf("attempt to write to a read only matrix named: \"%v\"", m.name)
		panic(err)
	}
}

// ToCSR compresses the receiver, each row of the result is ordered by column
func (m DOK) ToCSR() CSR {
	var (
		M   = m.M.ToCSR()
		raw = M.RawMatrix()
	)
	for i := 0; i < raw.I; i++ {
		sort.Sort(rowEntries{
			ind:  raw.Ind[raw.Indptr[i]:raw.Indptr[i+1]],
			data: raw.Data[raw.Indptr[i]:raw.Indptr[i+1]],
		})
	}
	return CSR{M: M}
}

// rowEntries sorts one CSR row's column indices together with its values
type rowEntries struct {
	ind  []int
	data []float64
}

func (r rowEntries) Len() int           { return len(r.ind) }
func (r rowEntries) Less(a, b int) bool { return r.ind[a] < r.ind[b] }
func (r rowEntries) Swap(a, b int) {
	r.ind[a], r.ind[b] = r.ind[b], r.ind[a]
	r.data[a], r.data[b] = r.data[b], r.data[a]
}

type CSR struct {
	M *sparse.CSR
}

// NewCSRFrom assembles the non-zero entries of A in a DOK and compresses them
func NewCSRFrom(A mat.Matrix) CSR {
	var (
		nr, nc = A.Dims()
		D      = NewDOK(nr, nc)
	)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			if val := A.At(i, j); val != 0 {
				D.Set(i, j, val)
			}
		}
	}
	return D.SetReadOnly("CSR assembly").ToCSR()
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m CSR) Dims() (r, c int)              { return m.M.Dims() }
func (m CSR) At(i, j int) float64           { return m.M.At(i, j) }
func (m CSR) T() mat.Matrix                 { return m.M.T() }
func (m CSR) RawMatrix() *blas.SparseMatrix { return m.M.RawMatrix() }

// NNZ is the count of stored entries
func (m CSR) NNZ() int {
	return len(m.RawMatrix().Data)
}

// DoRowNonZero calls fn for each stored entry of row i
func (m CSR) DoRowNonZero(i int, fn func(i, j int, v float64)) {
	DoRowNonZero(m.M, i, fn)
}

// DoRowNonZero walks the raw CSR storage of row i
func DoRowNonZero(M *sparse.CSR, i int, fn func(i, j int, v float64)) {
	var (
		raw = M.RawMatrix()
	)
	for k := raw.Indptr[i]; k < raw.Indptr[i+1]; k++ {
		fn(i, raw.Ind[k], raw.Data[k])
	}
}
