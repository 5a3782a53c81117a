package query

// Bind type tags. One character per bound variable, telling the driver
// how to serialize it. Booleans ride the integer tag.
const (
	TagInt   = 'i'
	TagFloat = 'd'
	TagText  = 's'
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindInvalid Kind = iota
	KindInt
	KindBool
	KindFloat
	KindText
)

// Value is a bind variable: a closed sum over exactly the four kinds
// the binder supports. The zero Value is invalid and is rejected at
// bind time with a *BindTypeError; use the constructors.
type Value struct {
	kind Kind
	i    int64
	b    bool
	f    float64
	s    string
}

// Int creates an integer bind variable.
func Int(v int64) Value {
	return Value{kind: KindInt, i: v}
}

// Bool creates a boolean bind variable. It binds with the integer tag.
func Bool(v bool) Value {
	return Value{kind: KindBool, b: v}
}

// Float creates a floating-point bind variable.
func Float(v float64) Value {
	return Value{kind: KindFloat, f: v}
}

// Text creates a text bind variable.
func Text(v string) Value {
	return Value{kind: KindText, s: v}
}

// Kind returns the variant held by the value.
func (v Value) Kind() Kind {
	return v.kind
}

// Tag returns the one-character bind type tag for the value, and false
// for the invalid zero Value.
func (v Value) Tag() (byte, bool) {
	switch v.kind {
	case KindInt, KindBool:
		return TagInt, true
	case KindFloat:
		return TagFloat, true
	case KindText:
		return TagText, true
	default:
		return 0, false
	}
}

// arg returns the value in the shape handed to the driver.
func (v Value) arg() interface{} {
	switch v.kind {
	case KindInt:
		return v.i
	case KindBool:
		return v.b
	case KindFloat:
		return v.f
	case KindText:
		return v.s
	default:
		return nil
	}
}
