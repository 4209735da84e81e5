package mdq

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ValueKind identifies the type of an attribute value.
type ValueKind int

const (
	// ValueAbsent means the index holds no value for the attribute.
	ValueAbsent ValueKind = iota
	ValueString
	ValueNumber
	ValueDate
	ValueBool
	ValueList
)

func (k ValueKind) String() string {
	switch k {
	case ValueString:
		return "string"
	case ValueNumber:
		return "number"
	case ValueDate:
		return "date"
	case ValueBool:
		return "bool"
	case ValueList:
		return "list"
	default:
		return "absent"
	}
}

// Value is a dynamically typed attribute value crossing the backend
// boundary. Accessors are kind-checked: reading a Value under the wrong
// kind returns an AttributeTypeMismatchError rather than a zero value.
type Value struct {
	kind ValueKind
	str  string
	num  float64
	date time.Time
	b    bool
	list []Value
}

// Absent returns the value representing "no value for this attribute".
func Absent() Value { return Value{} }

// StringValue wraps s as an attribute value.
func StringValue(s string) Value { return Value{kind: ValueString, str: s} }

// NumberValue wraps n as an attribute value.
func NumberValue(n float64) Value { return Value{kind: ValueNumber, num: n} }

// DateValue wraps t as an attribute value.
func DateValue(t time.Time) Value { return Value{kind: ValueDate, date: t} }

// BoolValue wraps b as an attribute value.
func BoolValue(b bool) Value { return Value{kind: ValueBool, b: b} }

// ListValue wraps vs as a list attribute value.
func ListValue(vs ...Value) Value { return Value{kind: ValueList, list: vs} }

// Kind reports the value's type tag.
func (v Value) Kind() ValueKind { return v.kind }

// IsAbsent reports whether the index held no value for the attribute.
func (v Value) IsAbsent() bool { return v.kind == ValueAbsent }

// String returns the string payload.
func (v Value) String() (string, error) {
	if v.kind != ValueString {
		return "", &AttributeTypeMismatchError{Requested: ValueString, Actual: v.kind}
	}
	return v.str, nil
}

// Number returns the numeric payload.
func (v Value) Number() (float64, error) {
	if v.kind != ValueNumber {
		return 0, &AttributeTypeMismatchError{Requested: ValueNumber, Actual: v.kind}
	}
	return v.num, nil
}

// Date returns the date payload.
func (v Value) Date() (time.Time, error) {
	if v.kind != ValueDate {
		return time.Time{}, &AttributeTypeMismatchError{Requested: ValueDate, Actual: v.kind}
	}
	return v.date, nil
}

// Bool returns the boolean payload.
func (v Value) Bool() (bool, error) {
	if v.kind != ValueBool {
		return false, &AttributeTypeMismatchError{Requested: ValueBool, Actual: v.kind}
	}
	return v.b, nil
}

// List returns the list payload.
func (v Value) List() ([]Value, error) {
	if v.kind != ValueList {
		return nil, &AttributeTypeMismatchError{Requested: ValueList, Actual: v.kind}
	}
	return v.list, nil
}

// Display renders the value for human-readable output.
func (v Value) Display() string {
	switch v.kind {
	case ValueString:
		return v.str
	case ValueNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case ValueDate:
		return v.date.Format(time.RFC3339)
	case ValueBool:
		return strconv.FormatBool(v.b)
	case ValueList:
		parts := make([]string, len(v.list))
		for i, e := range v.list {
			parts[i] = e.Display()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return "(absent)"
	}
}

// valueFromRaw converts a backend-provided dynamically typed value into a
// Value. Unknown types are stringified rather than dropped.
func valueFromRaw(raw any) Value {
	switch t := raw.(type) {
	case nil:
		return Absent()
	case Value:
		return t
	case string:
		return StringValue(t)
	case bool:
		return BoolValue(t)
	case time.Time:
		return DateValue(t)
	case float64:
		return NumberValue(t)
	case float32:
		return NumberValue(float64(t))
	case int:
		return NumberValue(float64(t))
	case int64:
		return NumberValue(float64(t))
	case uint64:
		return NumberValue(float64(t))
	case []string:
		vs := make([]Value, len(t))
		for i, s := range t {
			vs[i] = StringValue(s)
		}
		return ListValue(vs...)
	case []any:
		vs := make([]Value, len(t))
		for i, e := range t {
			vs[i] = valueFromRaw(e)
		}
		return ListValue(vs...)
	default:
		return StringValue(fmt.Sprint(raw))
	}
}
