package animate

import (
	"sort"

	"github.com/vango-dev/animate/pkg/settings"
)

type setter func(d *Descriptor, v any) error

// setters maps option keys to typed setters. Flags are coerced to bool and
// numbers to int before the call.
var setters = map[string]setter{
	settings.KeyAnimation:       stringSetter(settings.KeyAnimation, (*Descriptor).SetAnimation),
	settings.KeyEasing:          stringSetter(settings.KeyEasing, (*Descriptor).SetEasing),
	settings.KeyAnchorPlacement: stringSetter(settings.KeyAnchorPlacement, (*Descriptor).SetPlacement),
	settings.KeyOffset:          intSetter(settings.KeyOffset, (*Descriptor).SetOffset),
	settings.KeyDelay:           intSetter(settings.KeyDelay, (*Descriptor).SetDelay),
	settings.KeyDuration:        intSetter(settings.KeyDuration, (*Descriptor).SetDuration),
	settings.KeyOnce: func(d *Descriptor, v any) error {
		d.SetOnce(settings.Bool(v))
		return nil
	},
	settings.KeyMirror: func(d *Descriptor, v any) error {
		d.SetMirror(settings.Bool(v))
		return nil
	},
	"anchor": func(d *Descriptor, v any) error {
		s, err := settings.String(v)
		if err != nil {
			return invalidValue("E004", "anchor", v, "")
		}
		d.SetAnchor(s)
		return nil
	},
}

func stringSetter(key string, set func(*Descriptor, string) error) setter {
	return func(d *Descriptor, v any) error {
		s, err := settings.String(v)
		if err != nil {
			return invalidValue("E004", key, v, "")
		}
		return set(d, s)
	}
}

func intSetter(key string, set func(*Descriptor, int)) setter {
	return func(d *Descriptor, v any) error {
		n, err := settings.Int(v)
		if err != nil {
			return invalidValue("E004", key, v, "Use a whole number of pixels or milliseconds.")
		}
		set(d, n)
		return nil
	}
}

// OptionKeys returns the keys New understands, sorted.
func OptionKeys() []string {
	keys := make([]string, 0, len(setters))
	for k := range setters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// apply runs the setter for each known key in sorted key order.
func (d *Descriptor) apply(options map[string]any) error {
	keys := make([]string, 0, len(options))
	for k := range options {
		if _, ok := setters[k]; ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := setters[k](d, options[k]); err != nil {
			return err
		}
	}
	return nil
}
