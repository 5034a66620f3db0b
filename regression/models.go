package regression

import (
	"fmt"
	"math"
	"strings"

	"github.com/notargets/gaussfit/types"
)

// Model is one fitted functional family, each implementation carries its own coefficients
type Model interface {
	Kind() types.ModelKind
	Predict(x float64) float64
	Equation() string
	// Predictors is the number of fitted terms besides the constant, used by the adjusted R2
	Predictors() int
}

// LinearModel is y = M·x + B
type LinearModel struct {
	M, B float64
}

func (lm LinearModel) Kind() types.ModelKind     { return types.Linear }
func (lm LinearModel) Predict(x float64) float64 { return lm.M*x + lm.B }
func (lm LinearModel) Predictors() int           { return 1 }
func (lm LinearModel) Equation() string {
	return fmt.Sprintf("y = %.4fx %s", lm.M, signed(lm.B))
}

// QuadraticModel is y = A·x² + B·x + C
type QuadraticModel struct {
	A, B, C float64
}

func (qm QuadraticModel) Kind() types.ModelKind     { return types.Quadratic }
func (qm QuadraticModel) Predict(x float64) float64 { return qm.A*x*x + qm.B*x + qm.C }
func (qm QuadraticModel) Predictors() int           { return 2 }
func (qm QuadraticModel) Equation() string {
	return fmt.Sprintf("y = %.4fx² %sx %s", qm.A, signed(qm.B), signed(qm.C))
}

// ExponentialModel is y = A·e^(B·x)
type ExponentialModel struct {
	A, B float64
}

func (em ExponentialModel) Kind() types.ModelKind     { return types.Exponential }
func (em ExponentialModel) Predict(x float64) float64 { return em.A * math.Exp(em.B*x) }
func (em ExponentialModel) Predictors() int           { return 1 }
func (em ExponentialModel) Equation() string {
	return fmt.Sprintf("y = %.4f * e^(%.4fx)", em.A, em.B)
}

// PowerModel is y = A·x^B
type PowerModel struct {
	A, B float64
}

func (pm PowerModel) Kind() types.ModelKind     { return types.Power }
func (pm PowerModel) Predict(x float64) float64 { return pm.A * math.Pow(x, pm.B) }
func (pm PowerModel) Predictors() int           { return 1 }
func (pm PowerModel) Equation() string {
	return fmt.Sprintf("y = %.4f * x^%.4f", pm.A, pm.B)
}

func signed(val float64) string {
	s := fmt.Sprintf("%.4f", math.Abs(val))
	if math.Signbit(val) && strings.Trim(s, "0.") != "" {
		return "- " + s
	}
	return "+ " + s
}

// ModelFit is a fitted model with its goodness of fit over the full dataset
type ModelFit struct {
	Model      Model
	R2         float64
	AdjustedR2 float64
}

func (mf ModelFit) Kind() types.ModelKind { return mf.Model.Kind() }

func (mf ModelFit) String() string {
	return fmt.Sprintf("%-12s %-40s R2 = %.6f  adjR2 = %.6f",
		mf.Model.Kind(), mf.Model.Equation(), mf.R2, mf.AdjustedR2)
}

// newModelFit scores m over data, ok is false when m is undefined at some sample (R2 NaN or -Inf)
func newModelFit(m Model, data types.Dataset) (fit *ModelFit, ok bool) {
	r2 := RSquared(data, m.Predict)
	if math.IsNaN(r2) || math.IsInf(r2, 0) {
		return nil, false
	}
	return &ModelFit{
		Model:      m,
		R2:         r2,
		AdjustedR2: AdjustedRSquared(r2, len(data), m.Predictors()),
	}, true
}
