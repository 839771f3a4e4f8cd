package schema

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Domain is a value-domain predicate for a single attribute. Contains is
// evaluated against JSON-decoded values (string, bool, float64,
// map[string]any, []any), Describe feeds validation messages.
type Domain interface {
	Describe() string
	Contains(value any) bool
}

type enumDomain struct {
	values []string
}

// Enum restricts an attribute to a fixed set of strings.
func Enum(values ...string) Domain {
	cloned := append([]string(nil), values...)
	sort.Strings(cloned)
	return enumDomain{values: cloned}
}

func (d enumDomain) Describe() string {
	return "one of " + strings.Join(d.values, ", ")
}

func (d enumDomain) Contains(value any) bool {
	str, ok := value.(string)
	if !ok {
		return false
	}
	for _, candidate := range d.values {
		if candidate == str {
			return true
		}
	}
	return false
}

type boolLikeDomain struct{}

// BoolLike accepts booleans plus the 0/1 integers ACF writes interchangeably.
func BoolLike() Domain {
	return boolLikeDomain{}
}

func (boolLikeDomain) Describe() string {
	return "a boolean or 0/1"
}

func (boolLikeDomain) Contains(value any) bool {
	switch v := value.(type) {
	case bool:
		return true
	case float64:
		return v == 0 || v == 1
	case int:
		return v == 0 || v == 1
	default:
		return false
	}
}

type intLikeDomain struct {
	min *int
	max *int
}

// IntLike accepts whole numbers. JSON decoding yields float64, so integral
// floats qualify.
func IntLike() Domain {
	return intLikeDomain{}
}

// IntRange accepts whole numbers inside [min, max].
func IntRange(min, max int) Domain {
	return intLikeDomain{min: &min, max: &max}
}

func (d intLikeDomain) Describe() string {
	if d.min != nil && d.max != nil {
		return fmt.Sprintf("an integer between %d and %d", *d.min, *d.max)
	}
	return "an integer"
}

func (d intLikeDomain) Contains(value any) bool {
	var n float64
	switch v := value.(type) {
	case float64:
		n = v
	case int:
		n = float64(v)
	case string:
		// ACF exports sometimes quote numeric settings; an empty string means
		// unset rather than zero.
		if v == "" {
			return true
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return false
		}
		n = parsed
	default:
		return false
	}
	if n != math.Trunc(n) {
		return false
	}
	if d.min != nil && n < float64(*d.min) {
		return false
	}
	if d.max != nil && n > float64(*d.max) {
		return false
	}
	return true
}

type numberLikeDomain struct{}

// NumberLike accepts any numeric value, quoted or not.
func NumberLike() Domain {
	return numberLikeDomain{}
}

func (numberLikeDomain) Describe() string {
	return "a number"
}

func (numberLikeDomain) Contains(value any) bool {
	switch v := value.(type) {
	case float64, int:
		return true
	case string:
		if v == "" {
			return true
		}
		_, err := strconv.ParseFloat(v, 64)
		return err == nil
	default:
		return false
	}
}

type stringDomain struct{}

// StringValue accepts any string.
func StringValue() Domain {
	return stringDomain{}
}

func (stringDomain) Describe() string {
	return "a string"
}

func (stringDomain) Contains(value any) bool {
	_, ok := value.(string)
	return ok
}

type stringListDomain struct{}

// StringList accepts a list of strings. A bare string is tolerated because
// ACF collapses single-element lists.
func StringList() Domain {
	return stringListDomain{}
}

func (stringListDomain) Describe() string {
	return "a list of strings"
}

func (stringListDomain) Contains(value any) bool {
	switch v := value.(type) {
	case string:
		return true
	case []any:
		for _, item := range v {
			if _, ok := item.(string); !ok {
				return false
			}
		}
		return true
	default:
		return false
	}
}

type choicesDomain struct{}

// Choices accepts the two JSON shapes ACF allows for select choices: a
// value→label map or a bare list of values.
func Choices() Domain {
	return choicesDomain{}
}

func (choicesDomain) Describe() string {
	return "a value/label map or a list of values"
}

func (choicesDomain) Contains(value any) bool {
	switch value.(type) {
	case map[string]any, []any:
		return true
	default:
		return false
	}
}

type mapDomain struct{}

// MapValue accepts any JSON object, used for structural attributes such as
// wrapper settings and conditional logic.
func MapValue() Domain {
	return mapDomain{}
}

func (mapDomain) Describe() string {
	return "an object"
}

func (mapDomain) Contains(value any) bool {
	_, ok := value.(map[string]any)
	return ok
}

type anyDomain struct{}

// AnyValue accepts everything; used where ACF imposes no constraint.
func AnyValue() Domain {
	return anyDomain{}
}

func (anyDomain) Describe() string {
	return "any value"
}

func (anyDomain) Contains(any) bool {
	return true
}
