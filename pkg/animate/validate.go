package animate

import (
	"context"

	"github.com/vango-dev/animate/pkg/settings"
)

// ValidateSettings checks the global animation, anchorPlacement and easing
// against the vocabulary, so a bad settings document is rejected when it is
// loaded rather than by every New that inherits it.
func ValidateSettings(gs GlobalSettings) error {
	if gs == nil {
		return nil
	}
	if v, _ := settings.String(gs.CurrentValue(settings.KeyAnimation)); !IsAnimation(v) {
		return invalidAnimation(v)
	}
	if v, _ := settings.String(gs.CurrentValue(settings.KeyAnchorPlacement)); !IsPlacement(v) {
		return invalidPlacement(v)
	}
	if v, _ := settings.String(gs.CurrentValue(settings.KeyEasing)); !IsEasing(v) {
		return invalidEasing(v)
	}
	return nil
}

// LoadSettings is settings.LoadStore followed by ValidateSettings.
func LoadSettings(ctx context.Context, src settings.Source) (*settings.Store, error) {
	store, err := settings.LoadStore(ctx, src)
	if err != nil {
		return nil, err
	}
	if err := ValidateSettings(store); err != nil {
		return nil, err
	}
	return store, nil
}
