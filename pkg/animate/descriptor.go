package animate

import (
	"strconv"

	"github.com/vango-dev/animate/pkg/settings"
)

// ClassName marks every animated element.
const ClassName = "use-neo-animation"

// GlobalSettings is the read-only view of the global configuration a
// Descriptor resolves against. *settings.Store implements it.
type GlobalSettings interface {
	// CurrentValue returns the active value for key.
	CurrentValue(key string) any

	// DiffFromDefault returns the keys configured away from the library
	// defaults.
	DiffFromDefault() map[string]any
}

// Descriptor holds one element's animation options. Unset fields inherit
// the global settings.
//
// A Descriptor is not safe for concurrent use. Build one per element.
type Descriptor struct {
	gs GlobalSettings

	animation       *string
	offset          *int
	delay           *int
	duration        *int
	easing          *string
	once            *bool
	mirror          *bool
	anchor          *string
	anchorPlacement *string
}

// New builds a Descriptor from the global diff-from-default values with
// overrides layered on top. Keys without a setter are ignored. A nil gs
// resolves against the library defaults.
func New(gs GlobalSettings, overrides map[string]any) (*Descriptor, error) {
	if gs == nil {
		gs = settings.Default()
	}
	d := &Descriptor{gs: gs}

	diff := gs.DiffFromDefault()
	options := make(map[string]any, len(diff)+len(overrides))
	for k, v := range diff {
		options[k] = v
	}
	for k, v := range overrides {
		options[k] = v
	}
	if err := d.apply(options); err != nil {
		return nil, err
	}
	return d, nil
}

// WithAnimation builds a Descriptor from the global settings and sets the
// animation.
func WithAnimation(gs GlobalSettings, a Animation) (*Descriptor, error) {
	d, err := New(gs, nil)
	if err != nil {
		return nil, err
	}
	if err := d.SetAnimation(string(a)); err != nil {
		return nil, err
	}
	return d, nil
}

// Settings returns the global settings the descriptor resolves against.
func (d *Descriptor) Settings() GlobalSettings { return d.gs }

// SetAnimation sets the animation name.
func (d *Descriptor) SetAnimation(v string) error {
	if !IsAnimation(v) {
		return invalidAnimation(v)
	}
	d.animation = &v
	return nil
}

// SetPlacement sets which edges of element and window trigger the animation.
func (d *Descriptor) SetPlacement(v string) error {
	if !IsPlacement(v) {
		return invalidPlacement(v)
	}
	d.anchorPlacement = &v
	return nil
}

// SetEasing sets the timing function.
func (d *Descriptor) SetEasing(v string) error {
	if !IsEasing(v) {
		return invalidEasing(v)
	}
	d.easing = &v
	return nil
}

// SetOffset sets the trigger offset in pixels. Values are not range checked;
// the client library documents 0 to 3000 in steps of 50.
func (d *Descriptor) SetOffset(px int) { d.offset = &px }

// SetDelay sets the delay in milliseconds. Values are not range checked.
func (d *Descriptor) SetDelay(ms int) { d.delay = &ms }

// SetDuration sets the duration in milliseconds. Values are not range
// checked.
func (d *Descriptor) SetDuration(ms int) { d.duration = &ms }

// SetOnce sets whether the animation runs only once. Without an argument
// it sets true.
func (d *Descriptor) SetOnce(flag ...bool) { d.once = boolArg(flag) }

// SetMirror sets whether the element animates out when scrolled past.
// Without an argument it sets true.
func (d *Descriptor) SetMirror(flag ...bool) { d.mirror = boolArg(flag) }

// SetAnchor sets the selector of the element whose position triggers the
// animation. An empty selector clears it.
func (d *Descriptor) SetAnchor(selector string) {
	if selector == "" {
		d.anchor = nil
		return
	}
	d.anchor = &selector
}

func boolArg(flag []bool) *bool {
	v := true
	if len(flag) > 0 {
		v = flag[0]
	}
	return &v
}

// Animation returns the animation and whether it is set.
func (d *Descriptor) Animation() (string, bool) { return deref(d.animation) }

// Placement returns the anchor placement and whether it is set.
func (d *Descriptor) Placement() (string, bool) { return deref(d.anchorPlacement) }

// Easing returns the easing and whether it is set.
func (d *Descriptor) Easing() (string, bool) { return deref(d.easing) }

// Anchor returns the anchor selector and whether it is set.
func (d *Descriptor) Anchor() (string, bool) { return deref(d.anchor) }

// Offset returns the offset and whether it is set.
func (d *Descriptor) Offset() (int, bool) { return deref(d.offset) }

// Delay returns the delay and whether it is set.
func (d *Descriptor) Delay() (int, bool) { return deref(d.delay) }

// Duration returns the duration and whether it is set.
func (d *Descriptor) Duration() (int, bool) { return deref(d.duration) }

// Once returns the once flag and whether it is set.
func (d *Descriptor) Once() (bool, bool) { return deref(d.once) }

// Mirror returns the mirror flag and whether it is set.
func (d *Descriptor) Mirror() (bool, bool) { return deref(d.mirror) }

func deref[T any](p *T) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}

// ResolvedAnimation returns the descriptor's animation, or the global one
// when unset.
func (d *Descriptor) ResolvedAnimation() string {
	if d.animation != nil {
		return *d.animation
	}
	s, _ := settings.String(d.gs.CurrentValue(settings.KeyAnimation))
	return s
}

// Attributes computes the element attributes. The class and data-aos are
// always present; the other data attributes only when they differ from the
// active global value. data-aos-anchor is present whenever an anchor is set.
func (d *Descriptor) Attributes() AttributeSet {
	var set AttributeSet
	set.AddClass(ClassName)
	set.Set("data-aos", d.ResolvedAnimation())

	d.diffInt(&set, "data-offset", settings.KeyOffset, d.offset)
	d.diffInt(&set, "data-aos-delay", settings.KeyDelay, d.delay)
	d.diffInt(&set, "data-aos-duration", settings.KeyDuration, d.duration)
	d.diffString(&set, "data-aos-easing", settings.KeyEasing, d.easing)
	d.diffBool(&set, "data-aos-once", settings.KeyOnce, d.once)
	d.diffBool(&set, "data-aos-mirror", settings.KeyMirror, d.mirror)
	if d.anchor != nil {
		set.Set("data-aos-anchor", *d.anchor)
	}
	d.diffString(&set, "data-aos-anchor-placement", settings.KeyAnchorPlacement, d.anchorPlacement)
	return set
}

func (d *Descriptor) diffInt(set *AttributeSet, attr, key string, v *int) {
	if v != nil && !settings.Equal(key, *v, d.gs.CurrentValue(key)) {
		set.Set(attr, strconv.Itoa(*v))
	}
}

func (d *Descriptor) diffString(set *AttributeSet, attr, key string, v *string) {
	if v != nil && !settings.Equal(key, *v, d.gs.CurrentValue(key)) {
		set.Set(attr, *v)
	}
}

func (d *Descriptor) diffBool(set *AttributeSet, attr, key string, v *bool) {
	if v != nil && *v != settings.Bool(d.gs.CurrentValue(key)) {
		set.Set(attr, strconv.FormatBool(*v))
	}
}
