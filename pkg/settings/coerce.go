package settings

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Bool coerces loosely typed input to a boolean. Strings "", "0", "false",
// "off" and "no" (any case) are false; other strings are true. Numbers are
// true when non-zero; nil is false.
func Bool(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "", "0", "false", "off", "no":
			return false
		}
		return true
	case int:
		return x != 0
	case int64:
		return x != 0
	case float64:
		return x != 0
	case json.Number:
		f, err := x.Float64()
		return err == nil && f != 0
	default:
		return true
	}
}

// Int coerces loosely typed input to an int. Integral floats and numeric
// strings are accepted; anything else is an error.
func Int(v any) (int, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case int32:
		return int(x), nil
	case int64:
		return int(x), nil
	case float32:
		return floatToInt(float64(x))
	case float64:
		return floatToInt(x)
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return int(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", x.String())
		}
		return floatToInt(f)
	case string:
		s := strings.TrimSpace(x)
		if i, err := strconv.Atoi(s); err == nil {
			return i, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", x)
		}
		return floatToInt(f)
	case bool:
		if x {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("not a number: %T", v)
	}
}

func floatToInt(f float64) (int, error) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("not an integer: %v", f)
	}
	return int(f), nil
}

// String coerces scalar input to a string.
func String(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case nil:
		return "", nil
	case bool, int, int64, float64, json.Number:
		return fmt.Sprint(x), nil
	default:
		return "", fmt.Errorf("not a string: %T", v)
	}
}

// normalize converts v to the canonical Go type for key: int, bool or
// string. The disable key is a bool or a device name; "" means false.
func normalize(key string, v any) (any, error) {
	def, ok := keyIndex[key]
	if !ok {
		return nil, fmt.Errorf("unknown setting %q", key)
	}
	switch def.kind {
	case kindInt:
		return Int(v)
	case kindBool:
		return Bool(v), nil
	case kindDisable:
		switch x := v.(type) {
		case nil:
			return false, nil
		case bool:
			return x, nil
		case string:
			if x == "" || !Bool(x) {
				return false, nil
			}
			return x, nil
		default:
			return nil, fmt.Errorf("disable must be a device name or false, got %T", v)
		}
	default:
		return String(v)
	}
}

// Equal reports whether a and b are the same value once normalised for key.
// Unknown keys and values that do not normalise fall back to direct
// comparison of their string forms.
func Equal(key string, a, b any) bool {
	na, errA := normalize(key, a)
	nb, errB := normalize(key, b)
	if errA != nil || errB != nil {
		return fmt.Sprint(a) == fmt.Sprint(b)
	}
	return na == nb
}
