package animate

// Animation names a transition effect known to the client library.
type Animation string

// Placement names which edge of the element meets which edge of the window
// to trigger the animation, e.g. "top-bottom".
type Placement string

// Easing names a timing function.
type Easing string

// Animations.
const (
	Fade          Animation = "fade"
	FadeUp        Animation = "fade-up"
	FadeDown      Animation = "fade-down"
	FadeLeft      Animation = "fade-left"
	FadeRight     Animation = "fade-right"
	FadeUpRight   Animation = "fade-up-right"
	FadeUpLeft    Animation = "fade-up-left"
	FadeDownRight Animation = "fade-down-right"
	FadeDownLeft  Animation = "fade-down-left"
	FlipUp        Animation = "flip-up"
	FlipDown      Animation = "flip-down"
	FlipLeft      Animation = "flip-left"
	FlipRight     Animation = "flip-right"
	SlideUp       Animation = "slide-up"
	SlideDown     Animation = "slide-down"
	SlideLeft     Animation = "slide-left"
	SlideRight    Animation = "slide-right"
	ZoomIn        Animation = "zoom-in"
	ZoomInUp      Animation = "zoom-in-up"
	ZoomInDown    Animation = "zoom-in-down"
	ZoomInLeft    Animation = "zoom-in-left"
	ZoomInRight   Animation = "zoom-in-right"
	ZoomOut       Animation = "zoom-out"
	ZoomOutUp     Animation = "zoom-out-up"
	ZoomOutDown   Animation = "zoom-out-down"
	ZoomOutLeft   Animation = "zoom-out-left"
	ZoomOutRight  Animation = "zoom-out-right"
)

// Anchor placements.
const (
	PlacementTopCenter    Placement = "top-center"
	PlacementTopBottom    Placement = "top-bottom"
	PlacementTopTop       Placement = "top-top"
	PlacementCenterCenter Placement = "center-center"
	PlacementCenterBottom Placement = "center-bottom"
	PlacementCenterTop    Placement = "center-top"
	PlacementBottomCenter Placement = "bottom-center"
	PlacementBottomBottom Placement = "bottom-bottom"
	PlacementBottomTop    Placement = "bottom-top"
)

// Easings.
const (
	EasingLinear         Easing = "linear"
	EasingEase           Easing = "ease"
	EasingEaseIn         Easing = "ease-in"
	EasingEaseOut        Easing = "ease-out"
	EasingEaseInOut      Easing = "ease-in-out"
	EasingEaseInBack     Easing = "ease-in-back"
	EasingEaseOutBack    Easing = "ease-out-back"
	EasingEaseInOutBack  Easing = "ease-in-out-back"
	EasingEaseInSine     Easing = "ease-in-sine"
	EasingEaseOutSine    Easing = "ease-out-sine"
	EasingEaseInOutSine  Easing = "ease-in-out-sine"
	EasingEaseInQuad     Easing = "ease-in-quad"
	EasingEaseOutQuad    Easing = "ease-out-quad"
	EasingEaseInOutQuad  Easing = "ease-in-out-quad"
	EasingEaseInCubic    Easing = "ease-in-cubic"
	EasingEaseOutCubic   Easing = "ease-out-cubic"
	EasingEaseInOutCubic Easing = "ease-in-out-cubic"
	EasingEaseInQuart    Easing = "ease-in-quart"
	EasingEaseOutQuart   Easing = "ease-out-quart"
	EasingEaseInOutQuart Easing = "ease-in-out-quart"
)

// Option is a vocabulary value with its display label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type entry[T ~string] struct {
	value T
	label string
}

// animations mirrors the client library's list: 27 entries.
var animations = []entry[Animation]{
	{Fade, "Fade"},
	{FadeUp, "Fade Up"},
	{FadeDown, "Fade Down"},
	{FadeLeft, "Fade Left"},
	{FadeRight, "Fade Right"},
	{FadeUpRight, "Fade Up Right"},
	{FadeUpLeft, "Fade Up Left"},
	{FadeDownRight, "Fade Down Right"},
	{FadeDownLeft, "Fade Down Left"},
	{FlipUp, "Flip Up"},
	{FlipDown, "Flip Down"},
	{FlipLeft, "Flip Left"},
	{FlipRight, "Flip Right"},
	{SlideUp, "Slide Up"},
	{SlideDown, "Slide Down"},
	{SlideLeft, "Slide Left"},
	{SlideRight, "Slide Right"},
	{ZoomIn, "Zoom In"},
	{ZoomInUp, "Zoom In Up"},
	{ZoomInDown, "Zoom In Down"},
	{ZoomInLeft, "Zoom In Left"},
	{ZoomInRight, "Zoom In Right"},
	{ZoomOut, "Zoom Out"},
	{ZoomOutUp, "Zoom Out Up"},
	{ZoomOutDown, "Zoom Out Down"},
	{ZoomOutLeft, "Zoom Out Left"},
	{ZoomOutRight, "Zoom Out Right"},
}

var placements = []entry[Placement]{
	{PlacementTopCenter, "Top Center"},
	{PlacementTopBottom, "Top Bottom"},
	{PlacementTopTop, "Top Top"},
	{PlacementCenterCenter, "Center Center"},
	{PlacementCenterBottom, "Center Bottom"},
	{PlacementCenterTop, "Center Top"},
	{PlacementBottomCenter, "Bottom Center"},
	{PlacementBottomBottom, "Bottom Bottom"},
	{PlacementBottomTop, "Bottom Top"},
}

// easings mirrors the client library's list: 20 entries.
var easings = []entry[Easing]{
	{EasingLinear, "Linear"},
	{EasingEase, "Ease"},
	{EasingEaseIn, "Ease In"},
	{EasingEaseOut, "Ease Out"},
	{EasingEaseInOut, "Ease In Out"},
	{EasingEaseInBack, "Ease In Back"},
	{EasingEaseOutBack, "Ease Out Back"},
	{EasingEaseInOutBack, "Ease In Out Back"},
	{EasingEaseInSine, "Ease In Sine"},
	{EasingEaseOutSine, "Ease Out Sine"},
	{EasingEaseInOutSine, "Ease In Out Sine"},
	{EasingEaseInQuad, "Ease In Quad"},
	{EasingEaseOutQuad, "Ease Out Quad"},
	{EasingEaseInOutQuad, "Ease In Out Quad"},
	{EasingEaseInCubic, "Ease In Cubic"},
	{EasingEaseOutCubic, "Ease Out Cubic"},
	{EasingEaseInOutCubic, "Ease In Out Cubic"},
	{EasingEaseInQuart, "Ease In Quart"},
	{EasingEaseOutQuart, "Ease Out Quart"},
	{EasingEaseInOutQuart, "Ease In Out Quart"},
}

var (
	animationSet = valueSet(animations)
	placementSet = valueSet(placements)
	easingSet    = valueSet(easings)
)

func valueSet[T ~string](entries []entry[T]) map[string]struct{} {
	m := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		m[string(e.value)] = struct{}{}
	}
	return m
}

func options[T ~string](entries []entry[T]) []Option {
	out := make([]Option, len(entries))
	for i, e := range entries {
		out[i] = Option{Value: string(e.value), Label: e.label}
	}
	return out
}

// Animations lists every animation in display order.
func Animations() []Option { return options(animations) }

// Placements lists every anchor placement in display order.
func Placements() []Option { return options(placements) }

// Easings lists every easing in display order.
func Easings() []Option { return options(easings) }

// IsAnimation reports whether v is a known animation.
func IsAnimation(v string) bool {
	_, ok := animationSet[v]
	return ok
}

// IsPlacement reports whether v is a known anchor placement.
func IsPlacement(v string) bool {
	_, ok := placementSet[v]
	return ok
}

// IsEasing reports whether v is a known easing.
func IsEasing(v string) bool {
	_, ok := easingSet[v]
	return ok
}

// Labels maps each option value to its label, the shape select widgets
// expect.
func Labels(opts []Option) map[string]string {
	m := make(map[string]string, len(opts))
	for _, o := range opts {
		m[o.Value] = o.Label
	}
	return m
}
