package lisp

import "strconv"

// CastNumber coerces a scalar value to a number.  Booleans become 0 or 1 and
// strings must parse as a float; lists, maps, functions, and null never
// coerce.
func CastNumber(v *Value) (float64, error) {
	switch v.Type {
	case VNumber:
		return v.Num, nil
	case VBool:
		if v.Bool {
			return 1, nil
		}
		return 0, nil
	case VString:
		x, err := strconv.ParseFloat(v.Str, 64)
		if err != nil {
			return 0, Errorf(ErrCast, "failed to cast %q to number", v.Str)
		}
		return x, nil
	default:
		return 0, Errorf(ErrCast, "cannot cast %s to number", v.Type)
	}
}

// CastBool coerces a scalar value to a boolean.  Numbers are true when
// nonzero and strings must be exactly a boolean textual form.
func CastBool(v *Value) (bool, error) {
	switch v.Type {
	case VNumber:
		return v.Num != 0, nil
	case VBool:
		return v.Bool, nil
	case VString:
		b, err := strconv.ParseBool(v.Str)
		if err != nil {
			return false, Errorf(ErrCast, "failed to cast %q to bool", v.Str)
		}
		return b, nil
	default:
		return false, Errorf(ErrCast, "cannot cast %s to bool", v.Type)
	}
}

// CastString coerces a scalar value to its standard textual form.
func CastString(v *Value) (string, error) {
	switch v.Type {
	case VNumber:
		return strconv.FormatFloat(v.Num, 'g', -1, 64), nil
	case VBool:
		return strconv.FormatBool(v.Bool), nil
	case VString:
		return v.Str, nil
	default:
		return "", Errorf(ErrCast, "cannot cast %s to string", v.Type)
	}
}
