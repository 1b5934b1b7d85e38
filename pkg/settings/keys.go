package settings

// Setting keys understood by the client library.
const (
	KeyAnimation               = "animation"
	KeyOffset                  = "offset"
	KeyDelay                   = "delay"
	KeyDuration                = "duration"
	KeyEasing                  = "easing"
	KeyOnce                    = "once"
	KeyMirror                  = "mirror"
	KeyAnchorPlacement         = "anchorPlacement"
	KeyDisable                 = "disable"
	KeyInitClassName           = "initClassName"
	KeyAnimatedClassName       = "animatedClassName"
	KeyUseClassNames           = "useClassNames"
	KeyDisableMutationObserver = "disableMutationObserver"
	KeyDebounceDelay           = "debounceDelay"
	KeyThrottleDelay           = "throttleDelay"
)

type kind uint8

const (
	kindString kind = iota
	kindInt
	kindBool
	kindDisable
)

type keyDef struct {
	key  string
	kind kind
	def  any
}

// keyDefs lists every key in payload order with the library default.
var keyDefs = []keyDef{
	{KeyAnimation, kindString, "fade"},
	{KeyDisable, kindDisable, false},
	{KeyInitClassName, kindString, "aos-init"},
	{KeyAnimatedClassName, kindString, "aos-animate"},
	{KeyUseClassNames, kindBool, false},
	{KeyDisableMutationObserver, kindBool, false},
	{KeyDebounceDelay, kindInt, 50},
	{KeyThrottleDelay, kindInt, 99},
	{KeyOffset, kindInt, 120},
	{KeyDelay, kindInt, 0},
	{KeyDuration, kindInt, 400},
	{KeyEasing, kindString, "ease"},
	{KeyOnce, kindBool, false},
	{KeyMirror, kindBool, false},
	{KeyAnchorPlacement, kindString, "top-bottom"},
}

var keyIndex = func() map[string]keyDef {
	m := make(map[string]keyDef, len(keyDefs))
	for _, d := range keyDefs {
		m[d.key] = d
	}
	return m
}()

// Keys returns all known setting keys in payload order.
func Keys() []string {
	out := make([]string, len(keyDefs))
	for i, d := range keyDefs {
		out[i] = d.key
	}
	return out
}

// IsKey reports whether key is a known setting.
func IsKey(key string) bool {
	_, ok := keyIndex[key]
	return ok
}

// Defaults returns the client library's built-in defaults.
func Defaults() Values {
	v := make(Values, len(keyDefs))
	for _, d := range keyDefs {
		v[d.key] = d.def
	}
	return v
}

// Option is a selectable value with a human readable label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// DisableOptions lists the values accepted for the disable setting. The
// empty value keeps animations enabled everywhere.
func DisableOptions() []Option {
	return []Option{
		{Value: "", Label: "None"},
		{Value: "phone", Label: "Phone"},
		{Value: "tablet", Label: "Tablet"},
		{Value: "mobile", Label: "Mobile"},
	}
}
