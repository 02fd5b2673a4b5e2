package value

import (
	"encoding"
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrCoercion is matched by every [CoercionError].
var ErrCoercion = errors.New("value: cannot convert to string")

// CoercionError reports a value with no string form.
type CoercionError struct {
	Kind Kind
	Type string
	Err  error
}

func (e *CoercionError) Error() string {
	msg := fmt.Sprintf("value: cannot convert %s (%s) to string", e.Kind, e.Type)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *CoercionError) Is(target error) bool { return target == ErrCoercion }

func (e *CoercionError) Unwrap() error { return e.Err }

// ToScalarString reduces v to its concatenation-safe string form.
//
//	null  → ""
//	true  → "1", false → ""
//	int   → decimal
//	float → shortest round-trip decimal ("1.5", "0.1", "1e+21")
//	string unchanged
//
// Objects convert through fmt.Stringer, error or encoding.TextMarshaler.
// Containers and other objects fail with a *CoercionError.
func ToScalarString(v Value) (string, error) {
	switch v.kind {
	case KindNull:
		return "", nil
	case KindBool:
		if v.b {
			return "1", nil
		}
		return "", nil
	case KindInt:
		return strconv.Itoa(v.n), nil
	case KindFloat:
		return FormatFloat(v.f), nil
	case KindString:
		return v.s, nil
	case KindObject:
		switch o := v.o.(type) {
		case fmt.Stringer:
			return o.String(), nil
		case error:
			return o.Error(), nil
		case encoding.TextMarshaler:
			b, err := o.MarshalText()
			if err != nil {
				return "", &CoercionError{Kind: KindObject, Type: fmt.Sprintf("%T", v.o), Err: err}
			}
			return string(b), nil
		}
		return "", &CoercionError{Kind: KindObject, Type: fmt.Sprintf("%T", v.o)}
	}
	return "", &CoercionError{Kind: v.Kind(), Type: "container"}
}

// FormatFloat renders f in its shortest round-trip form. Very large and
// very small magnitudes use exponent notation.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NAN"
	case math.IsInf(f, 1):
		return "INF"
	case math.IsInf(f, -1):
		return "-INF"
	}
	if a := math.Abs(f); a != 0 && (a < 1e-6 || a >= 1e21) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
