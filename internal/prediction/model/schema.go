package model

import (
	"math"
	"strconv"
	"strings"
)

// Validation messages, kept byte-identical to the upstream schema library so
// existing clients can match on them.
const (
	msgNotAValidString  = "Not a valid string."
	msgNotAValidNumber  = "Not a valid number."
	msgNotAValidInteger = "Not a valid integer."
	msgFieldNotNull     = "Field may not be null."
)

type fieldKind int

const (
	kindString fieldKind = iota
	kindNumber
	kindInteger
)

// fieldSpec describes one feature the model understands. Fields absent from
// a record are accepted at validation time; rows missing features the model
// cannot score without are filtered later instead.
type fieldSpec struct {
	name     string
	kind     fieldKind
	nullable bool
}

type schema []fieldSpec

// validate checks every record against the schema and returns the violation
// map keyed by submitted record index. Unknown fields are ignored. A nil
// return means the whole batch passed.
func (s schema) validate(batch Batch) ValidationErrors {
	var errs ValidationErrors
	for idx, record := range batch {
		fieldErrs := s.validateRecord(record)
		if len(fieldErrs) == 0 {
			continue
		}
		if errs == nil {
			errs = make(ValidationErrors)
		}
		errs[strconv.Itoa(idx)] = fieldErrs
	}
	return errs
}

func (s schema) validateRecord(record Record) map[string][]string {
	var fieldErrs map[string][]string
	addErr := func(field, msg string) {
		if fieldErrs == nil {
			fieldErrs = make(map[string][]string)
		}
		fieldErrs[field] = append(fieldErrs[field], msg)
	}

	for _, spec := range s {
		value, present := record[spec.name]
		if !present {
			continue
		}
		if value == nil || isNaN(value) {
			if !spec.nullable {
				addErr(spec.name, msgFieldNotNull)
			}
			continue
		}
		switch spec.kind {
		case kindString:
			if _, ok := value.(string); !ok {
				addErr(spec.name, msgNotAValidString)
			}
		case kindNumber:
			if _, ok := asNumber(value); !ok {
				addErr(spec.name, msgNotAValidNumber)
			}
		case kindInteger:
			if _, ok := asInteger(value); !ok {
				addErr(spec.name, msgNotAValidInteger)
			}
		}
	}
	return fieldErrs
}

// isNaN treats a float NaN the same as an explicit null, matching how the
// original pipeline serialized missing pandas values.
func isNaN(value interface{}) bool {
	f, ok := value.(float64)
	return ok && math.IsNaN(f)
}

// asNumber coerces the JSON value to a float. Numeric strings are accepted,
// mirroring the upstream schema's coercion rules.
func asNumber(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// asInteger accepts whole numbers only; floats with a fractional part and
// non-integral strings fail.
func asInteger(value interface{}) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		if v == math.Trunc(v) && !math.IsInf(v, 0) {
			return int64(v), true
		}
		return 0, false
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, false
		}
		i, err := strconv.ParseInt(trimmed, 10, 64)
		return i, err == nil
	default:
		return 0, false
	}
}
