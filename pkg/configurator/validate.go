package configurator

import (
	"fmt"
	"strconv"
)

// FieldError is a per-field validation result. It is a value attached
// to the field, never raised as an error: the shopper corrects the
// input in place and the entered value is retained.
type FieldError struct {
	Field   string `json:"field"`
	Value   int    `json:"value"`
	Min     int    `json:"min"`
	Max     int    `json:"max"`
	Message string `json:"message"`
}

// ValidateMeasurementField checks a single entered measurement against
// its step range. It returns nil when the value is in range. A zero
// value counts as "not yet answered" and produces no error, which is
// distinct from "answered but out of range".
func ValidateMeasurementField(step *Step, field string, value int) *FieldError {
	if value == 0 {
		return nil
	}

	var r Range
	var label string
	switch field {
	case FieldWidth:
		r, label = step.Width, "Breite"
	case FieldHeight:
		r, label = step.Height, "Höhe"
	default:
		return nil
	}

	if value >= r.Min && value <= r.Max {
		return nil
	}

	msg := fmt.Sprintf(
		"Du hast %d mm (= %s cm) eingegeben. Die %s muss zwischen %d und %d mm liegen (= %s–%s cm).",
		value, mmToCm(value), label, r.Min, r.Max, mmToCm(r.Min), mmToCm(r.Max),
	)

	return &FieldError{
		Field:   field,
		Value:   value,
		Min:     r.Min,
		Max:     r.Max,
		Message: msg,
	}
}

// StepErrors returns the field errors of a step for the given session,
// in field order. Only out-of-range answers produce errors.
func StepErrors(step *Step, s Session) []FieldError {
	if step == nil || step.Type != StepTypeMeasurement {
		return nil
	}
	var errs []FieldError
	for _, field := range []string{FieldWidth, FieldHeight} {
		if fe := ValidateMeasurementField(step, field, s.Measurements[field]); fe != nil {
			errs = append(errs, *fe)
		}
	}
	return errs
}

// StepValid reports whether a step may be advanced from. All steps in
// the active flow are mandatory: an options step needs a selection, a
// measurement step needs both values present and in range.
func StepValid(step *Step, s Session) bool {
	if step == nil {
		return false
	}
	switch step.Type {
	case StepTypeOptions:
		_, ok := s.Selections[step.Key]
		return ok
	case StepTypeMeasurement:
		for _, field := range []string{FieldWidth, FieldHeight} {
			v, ok := s.Measurements[field]
			if !ok || v == 0 {
				return false
			}
			if ValidateMeasurementField(step, field, v) != nil {
				return false
			}
		}
		return true
	}
	return false
}

// mmToCm renders a millimeter value in centimeters without a trailing
// zero fraction (200 -> "20", 205 -> "20.5").
func mmToCm(mm int) string {
	return strconv.FormatFloat(float64(mm)/10, 'f', -1, 64)
}
