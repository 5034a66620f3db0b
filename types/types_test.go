package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypes(t *testing.T) {
	{ // Model names in both languages resolve to the same kind
		tokens := []string{"linear", "Lineal", " CUADRATICA ", "quadratic", "exponencial", "Power", "potencial"}
		kinds := []ModelKind{Linear, Linear, Quadratic, Quadratic, Exponential, Power, Power}
		for i, token := range tokens {
			mk, err := NewModelKind(token)
			require.NoError(t, err)
			assert.Equal(t, kinds[i], mk)
		}
		_, err := NewModelKind("cubic")
		assert.Error(t, err)
		assert.Equal(t, "exponential", Exponential.String())
		assert.Equal(t, "ModelKind(9)", ModelKind(9).String())
	}
	{
		et, err := NewErrorType("")
		require.NoError(t, err)
		assert.Equal(t, Absolute, et)
		et, err = NewErrorType("Relativo")
		require.NoError(t, err)
		assert.Equal(t, Relative, et)
		_, err = NewErrorType("squared")
		assert.Error(t, err)
		for label := range ErrorTypeNameMap {
			assert.Contains(t, []string{"absolute", "absoluto", "relative", "relativo"}, label)
		}
		_, err = NewErrorType("abs")
		assert.Error(t, err)
		assert.Equal(t, "relative", Relative.String())
	}
	{
		assert.Equal(t, Dry, NewCondition("Seco"))
		assert.Equal(t, Wet, NewCondition(" wet"))
		assert.Equal(t, UnknownCondition, NewCondition("icy"))
	}
}

func TestDataset(t *testing.T) {
	ds := Dataset{
		{1, 2},
		{math.NaN(), 3},
		{2, math.Inf(1)},
		{-1, 5},
	}
	fin := ds.Finite()
	assert.Equal(t, Dataset{{1, 2}, {-1, 5}}, fin)
	assert.Len(t, ds, 4, "Finite must not modify the receiver")

	x, y := fin.XY()
	assert.Equal(t, []float64{1, -1}, x)
	assert.Equal(t, []float64{2, 5}, y)

	min, max := fin.XRange()
	assert.Equal(t, -1., min)
	assert.Equal(t, 1., max)

	pos := fin.Filter(func(s Sample) bool { return s.X > 0 })
	assert.Equal(t, Dataset{{1, 2}}, pos)
}
