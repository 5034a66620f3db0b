package types

import (
	"fmt"
	"strings"
)

type ModelKind uint8

const (
	Linear ModelKind = iota
	Quadratic
	Exponential
	Power
)

// AllModels is the reporting order used everywhere a set of fits is listed
var AllModels = []ModelKind{Linear, Quadratic, Exponential, Power}

var ModelNameMap = map[string]ModelKind{
	"linear":      Linear,
	"lineal":      Linear,
	"quadratic":   Quadratic,
	"cuadratica":  Quadratic,
	"exponential": Exponential,
	"exponencial": Exponential,
	"power":       Power,
	"potencial":   Power,
}

var modelNames = [...]string{"linear", "quadratic", "exponential", "power"}

func (mk ModelKind) String() string {
	if int(mk) < len(modelNames) {
		return modelNames[mk]
	}
	return fmt.Sprintf("ModelKind(%d)", mk)
}

func NewModelKind(label string) (mk ModelKind, err error) {
	var (
		ok bool
	)
	if mk, ok = ModelNameMap[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("unknown model name: %q", label)
	}
	return
}

// ErrorType selects the convergence metric between successive iterates
type ErrorType uint8

const (
	Absolute ErrorType = iota
	Relative
)

var ErrorTypeNameMap = map[string]ErrorType{
	"absolute": Absolute,
	"absoluto": Absolute,
	"relative": Relative,
	"relativo": Relative,
}

func (et ErrorType) String() string {
	switch et {
	case Absolute:
		return "absolute"
	case Relative:
		return "relative"
	}
	return fmt.Sprintf("ErrorType(%d)", et)
}

// NewErrorType maps an empty label to Absolute
func NewErrorType(label string) (et ErrorType, err error) {
	var (
		ok  bool
		key = strings.ToLower(strings.TrimSpace(label))
	)
	if len(key) == 0 {
		return Absolute, nil
	}
	if et, ok = ErrorTypeNameMap[key]; !ok {
		err = fmt.Errorf("unknown error type: %q, use absolute or relative", label)
	}
	return
}

// Condition is the road surface a braking sample was measured on
type Condition uint8

const (
	UnknownCondition Condition = iota
	Dry
	Wet
)

var ConditionNameMap = map[string]Condition{
	"dry":    Dry,
	"seco":   Dry,
	"wet":    Wet,
	"mojado": Wet,
}

func (c Condition) String() string {
	switch c {
	case Dry:
		return "dry"
	case Wet:
		return "wet"
	}
	return "unknown"
}

func NewCondition(label string) Condition {
	return ConditionNameMap[strings.ToLower(strings.TrimSpace(label))]
}
