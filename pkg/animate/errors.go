package animate

import (
	stderrors "errors"
	"fmt"

	"github.com/vango-dev/animate/internal/errors"
)

// ErrInvalidArgument is wrapped by every validation failure.
var ErrInvalidArgument = stderrors.New("invalid argument")

func invalidValue(code, field string, value any, hint string) error {
	err := errors.New(code).WithField(field, value).Wrap(ErrInvalidArgument)
	if hint != "" {
		err = err.WithSuggestion(hint)
	}
	return err
}

func invalidAnimation(v string) error {
	return invalidValue("E001", "animation", v, closest(v, animations))
}

func invalidPlacement(v string) error {
	return invalidValue("E002", "anchorPlacement", v, closest(v, placements))
}

func invalidEasing(v string) error {
	return invalidValue("E003", "easing", v, closest(v, easings))
}

// closest suggests the vocabulary entry sharing the longest prefix with v.
func closest[T ~string](v string, entries []entry[T]) string {
	best, bestLen := "", 0
	for _, e := range entries {
		s := string(e.value)
		n := 0
		for n < len(s) && n < len(v) && s[n] == v[n] {
			n++
		}
		if n > bestLen {
			best, bestLen = s, n
		}
	}
	if bestLen < 3 {
		return ""
	}
	return fmt.Sprintf("Did you mean %q?", best)
}
