package readfiles

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/notargets/gaussfit/types"
)

// Header keywords, a column matches when its lower cased name contains one of them
var (
	XKeywords         = []string{"velocidad", "speed"}
	YKeywords         = []string{"distancia", "frenado", "distance"}
	ConditionKeywords = []string{"condicion", "condición", "condition", "estado", "surface"}
)

type SampleFile struct {
	XColumn, YColumn, ConditionColumn string
	// All holds every row with a valid x and y, regardless of its condition
	All types.Dataset
	// ByCondition holds the dry and wet rows, it stays empty without a condition column
	ByCondition map[types.Condition]types.Dataset
	Skipped     int
}

func (sf *SampleFile) HasConditions() bool { return len(sf.ConditionColumn) != 0 }

func ReadSamplesFile(fileName string, verbose bool) (sf *SampleFile, err error) {
	var (
		file *os.File
	)
	if file, err = os.Open(fileName); err != nil {
		return
	}
	defer file.Close()
	if sf, err = ReadSamplesCSV(file); err != nil {
		err = fmt.Errorf("reading %s: %w", fileName, err)
		return
	}
	if verbose {
		fmt.Printf("Read %d samples from %s (x = %q, y = %q), skipped %d rows\n",
			len(sf.All), fileName, sf.XColumn, sf.YColumn, sf.Skipped)
		if sf.HasConditions() {
			fmt.Printf("DRY: %d | WET: %d\n", len(sf.ByCondition[types.Dry]), len(sf.ByCondition[types.Wet]))
		}
	}
	return
}

// ReadSamplesCSV reads a headed CSV, finding the x, y and optional condition columns by name
func ReadSamplesCSV(r io.Reader) (sf *SampleFile, err error) {
	var (
		reader           = csv.NewReader(r)
		header, record   []string
		xInd, yInd, cInd int
	)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	if header, err = reader.Read(); err != nil {
		if err == io.EOF {
			err = fmt.Errorf("empty csv, a header row is required")
		}
		return
	}
	if xInd = findColumn(header, XKeywords); xInd < 0 {
		err = fmt.Errorf("no speed column in header %v, want a name containing one of %v", header, XKeywords)
		return
	}
	if yInd = findColumn(header, YKeywords); yInd < 0 {
		err = fmt.Errorf("no distance column in header %v, want a name containing one of %v", header, YKeywords)
		return
	}
	cInd = findColumn(header, ConditionKeywords)
	sf = &SampleFile{
		XColumn:     header[xInd],
		YColumn:     header[yInd],
		ByCondition: make(map[types.Condition]types.Dataset),
	}
	if cInd >= 0 {
		sf.ConditionColumn = header[cInd]
	}
	for {
		if record, err = reader.Read(); err == io.EOF {
			err = nil
			break
		} else if err != nil {
			return nil, err
		}
		if isBlank(record) {
			continue
		}
		s, ok := parseSample(record, xInd, yInd)
		if !ok {
			sf.Skipped++
			continue
		}
		sf.All = append(sf.All, s)
		if cInd < 0 {
			continue
		}
		var cond types.Condition
		if cInd < len(record) {
			cond = types.NewCondition(record[cInd])
		}
		if cond == types.UnknownCondition {
			sf.Skipped++
			continue
		}
		sf.ByCondition[cond] = append(sf.ByCondition[cond], s)
	}
	return
}

func findColumn(header []string, keywords []string) int {
	for i, name := range header {
		lower := strings.ToLower(name)
		for _, key := range keywords {
			if strings.Contains(lower, key) {
				return i
			}
		}
	}
	return -1
}

func parseSample(record []string, xInd, yInd int) (s types.Sample, ok bool) {
	var (
		err error
	)
	if xInd >= len(record) || yInd >= len(record) {
		return
	}
	if s.X, err = strconv.ParseFloat(strings.TrimSpace(record[xInd]), 64); err != nil {
		return
	}
	if s.Y, err = strconv.ParseFloat(strings.TrimSpace(record[yInd]), 64); err != nil {
		return
	}
	return s, s.IsFinite()
}

func isBlank(record []string) bool {
	for _, field := range record {
		if len(strings.TrimSpace(field)) != 0 {
			return false
		}
	}
	return true
}
