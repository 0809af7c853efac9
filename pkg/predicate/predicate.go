package predicate

import (
	"fmt"
	"reflect"
	"strings"
)

// Predicate evaluates a single property value. Predicates are immutable
// value objects; MoreGeneralThan reports whether this predicate matches at
// least every value the other one matches.
type Predicate interface {
	Evaluate(value any) bool
	MoreGeneralThan(other Predicate) bool
	fmt.Stringer
}

// Any matches every value.
func Any() Predicate {
	return anyValue{}
}

type anyValue struct{}

func (anyValue) Evaluate(any) bool                { return true }
func (anyValue) MoreGeneralThan(o Predicate) bool { return true }
func (anyValue) String() string                   { return "any" }

// Undefined matches only the absence of a value, represented as nil.
func Undefined() Predicate {
	return undefined{}
}

type undefined struct{}

func (undefined) Evaluate(v any) bool { return v == nil }

func (undefined) MoreGeneralThan(other Predicate) bool {
	_, ok := other.(undefined)
	return ok
}

func (undefined) String() string { return "undefined" }

// valuePredicate is the shared base of all predicates defined by a
// reference value.
type valuePredicate struct {
	value any
}

func (p valuePredicate) Value() any {
	return p.value
}

// EqualTo matches values equal to the given one.
func EqualTo(value any) Predicate {
	return equalTo{valuePredicate{value}}
}

type equalTo struct{ valuePredicate }

func (p equalTo) Evaluate(beta any) bool {
	if c, ok := compare(beta, p.value); ok {
		return c == 0
	}
	return reflect.DeepEqual(beta, p.value)
}

func (p equalTo) MoreGeneralThan(other Predicate) bool {
	if o, ok := other.(equalTo); ok {
		return p.Evaluate(o.value)
	}
	return false
}

func (p equalTo) String() string {
	return fmt.Sprintf("= %v", p.value)
}

// GreaterThan matches values strictly greater than the given one.
func GreaterThan(value any) Predicate {
	return greaterThan{valuePredicate{value}}
}

type greaterThan struct{ valuePredicate }

func (p greaterThan) Evaluate(beta any) bool {
	c, ok := compare(beta, p.value)
	return ok && c > 0
}

func (p greaterThan) MoreGeneralThan(other Predicate) bool {
	switch o := other.(type) {
	case equalTo:
		return p.Evaluate(o.value)
	case greaterThan:
		c, ok := compare(o.value, p.value)
		return ok && c >= 0
	case greaterThanOrEqualTo:
		c, ok := compare(o.value, p.value)
		return ok && c > 0
	default:
		return false
	}
}

func (p greaterThan) String() string {
	return fmt.Sprintf("> %v", p.value)
}

// GreaterThanOrEqualTo matches values greater than or equal to the given one.
func GreaterThanOrEqualTo(value any) Predicate {
	return greaterThanOrEqualTo{valuePredicate{value}}
}

type greaterThanOrEqualTo struct{ valuePredicate }

func (p greaterThanOrEqualTo) Evaluate(beta any) bool {
	c, ok := compare(beta, p.value)
	return ok && c >= 0
}

func (p greaterThanOrEqualTo) MoreGeneralThan(other Predicate) bool {
	switch o := other.(type) {
	case equalTo:
		return p.Evaluate(o.value)
	case greaterThan, greaterThanOrEqualTo:
		c, ok := compare(value(o), p.value)
		return ok && c >= 0
	default:
		return false
	}
}

func (p greaterThanOrEqualTo) String() string {
	return fmt.Sprintf(">= %v", p.value)
}

// LessThan matches values strictly less than the given one.
func LessThan(value any) Predicate {
	return lessThan{valuePredicate{value}}
}

type lessThan struct{ valuePredicate }

func (p lessThan) Evaluate(beta any) bool {
	c, ok := compare(beta, p.value)
	return ok && c < 0
}

func (p lessThan) MoreGeneralThan(other Predicate) bool {
	switch o := other.(type) {
	case equalTo:
		return p.Evaluate(o.value)
	case lessThan:
		c, ok := compare(o.value, p.value)
		return ok && c <= 0
	case lessThanOrEqualTo:
		c, ok := compare(o.value, p.value)
		return ok && c < 0
	default:
		return false
	}
}

func (p lessThan) String() string {
	return fmt.Sprintf("< %v", p.value)
}

// LessThanOrEqualTo matches values less than or equal to the given one.
func LessThanOrEqualTo(value any) Predicate {
	return lessThanOrEqualTo{valuePredicate{value}}
}

type lessThanOrEqualTo struct{ valuePredicate }

func (p lessThanOrEqualTo) Evaluate(beta any) bool {
	c, ok := compare(beta, p.value)
	return ok && c <= 0
}

func (p lessThanOrEqualTo) MoreGeneralThan(other Predicate) bool {
	switch o := other.(type) {
	case equalTo:
		return p.Evaluate(o.value)
	case lessThan, lessThanOrEqualTo:
		c, ok := compare(value(o), p.value)
		return ok && c <= 0
	default:
		return false
	}
}

func (p lessThanOrEqualTo) String() string {
	return fmt.Sprintf("<= %v", p.value)
}

func value(p Predicate) any {
	type valuer interface{ Value() any }
	if v, ok := p.(valuer); ok {
		return v.Value()
	}
	return nil
}

// compare orders two property values. Numbers compare across numeric
// types, strings lexicographically. Unordered or mixed kinds report
// ok == false.
func compare(a, b any) (int, bool) {
	if as, ok := a.(string); ok {
		bs, ok := b.(string)
		if !ok {
			return 0, false
		}
		return strings.Compare(as, bs), true
	}

	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if !aok || !bok {
		return 0, false
	}
	switch {
	case af < bf:
		return -1, true
	case af > bf:
		return 1, true
	default:
		return 0, true
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
