package readfiles

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gaussfit/types"
)

func TestReadSamplesCSV(t *testing.T) {
	{ // Spanish headers with a surface column
		input := `Velocidad (km/h),Distancia de frenado (m),Condicion
20,6.5,Seco
40,17.2,seco
60,35.1,Mojado
80,abc,mojado
100,80.3,nieve

120,150.2,WET
`
		sf, err := ReadSamplesCSV(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, "Velocidad (km/h)", sf.XColumn)
		assert.Equal(t, "Distancia de frenado (m)", sf.YColumn)
		assert.True(t, sf.HasConditions())
		assert.Len(t, sf.All, 5)
		assert.Equal(t, types.Dataset{{X: 20, Y: 6.5}, {X: 40, Y: 17.2}}, sf.ByCondition[types.Dry])
		assert.Equal(t, types.Dataset{{X: 60, Y: 35.1}, {X: 120, Y: 150.2}}, sf.ByCondition[types.Wet])
		// One unparsable distance, one unknown surface
		assert.Equal(t, 2, sf.Skipped)
	}
	{ // English headers, no condition column
		input := "speed,braking_distance\n1,2\n2,4\n3,NaN\n"
		sf, err := ReadSamplesCSV(strings.NewReader(input))
		require.NoError(t, err)
		assert.False(t, sf.HasConditions())
		assert.Equal(t, types.Dataset{{X: 1, Y: 2}, {X: 2, Y: 4}}, sf.All)
		assert.Empty(t, sf.ByCondition)
		assert.Equal(t, 1, sf.Skipped)
	}
	{
		_, err := ReadSamplesCSV(strings.NewReader(""))
		assert.Error(t, err)
		_, err = ReadSamplesCSV(strings.NewReader("time,distance\n1,2\n"))
		assert.Error(t, err)
		_, err = ReadSamplesCSV(strings.NewReader("speed,time\n1,2\n"))
		assert.Error(t, err)
	}
}

func TestReadSamplesFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "brakes.csv")
	require.NoError(t, os.WriteFile(fileName, []byte("speed,distance,surface\n10,2,dry\n20,8,wet\n"), 0644))
	sf, err := ReadSamplesFile(fileName, true)
	require.NoError(t, err)
	assert.Len(t, sf.All, 2)
	assert.Len(t, sf.ByCondition[types.Wet], 1)
	_, err = ReadSamplesFile(filepath.Join(t.TempDir(), "missing.csv"), false)
	assert.Error(t, err)
}
