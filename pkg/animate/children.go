package animate

import (
	"fmt"

	"github.com/vango-dev/animate/pkg/settings"
	"github.com/vango-dev/animate/pkg/vdom"
)

// DefaultDelayStep is the stagger step in milliseconds.
const DefaultDelayStep = 200

// BatchOptions configures ApplyBatch.
type BatchOptions struct {
	// Animation overrides the animation of every child when not empty.
	Animation string

	// DelayByDelta is the number of stagger buckets. Child n gets a delay
	// of (n mod DelayByDelta) * DelayStep. Zero disables staggering.
	DelayByDelta int

	// DelayStep is the stagger step in milliseconds, used as given: zero
	// gives every item a delay of 0 and negative steps are not rejected.
	DelayStep int

	// Overrides are passed to New for every child.
	Overrides map[string]any
}

// ApplyToChildren animates every renderable child of node, staggering
// delays across delayByDelta buckets of delayStep milliseconds.
func ApplyToChildren(node *vdom.VNode, gs GlobalSettings, animation string, delayByDelta, delayStep int, overrides map[string]any) error {
	return ApplyBatch(node, gs, BatchOptions{
		Animation:    animation,
		DelayByDelta: delayByDelta,
		DelayStep:    delayStep,
		Overrides:    overrides,
	})
}

// ApplyBatch animates every renderable child of node in order. Children are
// replaced in place when they need wrapping. It stops at the first child
// whose options are invalid.
func ApplyBatch(node *vdom.VNode, gs GlobalSettings, opts BatchOptions) error {
	children := node.RenderableChildren()
	if len(children) == 0 {
		return nil
	}
	stagger := NewStagger(opts.DelayByDelta, opts.DelayStep)
	for _, i := range children {
		d, err := opts.Descriptor(gs, stagger)
		if err != nil {
			return fmt.Errorf("child %d: %w", i, err)
		}
		node.Children[i] = ApplyTo(node.Children[i], d)
	}
	return nil
}

// Descriptor builds the descriptor for the next item of a batch: the
// overrides, the next stagger delay when stagger is active, then the
// animation.
func (opts BatchOptions) Descriptor(gs GlobalSettings, stagger *Stagger) (*Descriptor, error) {
	config := make(map[string]any, len(opts.Overrides)+1)
	for k, v := range opts.Overrides {
		config[k] = v
	}
	if delay, ok := stagger.Next(); ok {
		config[settings.KeyDelay] = delay
	}

	d, err := New(gs, config)
	if err != nil {
		return nil, err
	}
	if opts.Animation != "" {
		if err := d.SetAnimation(opts.Animation); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Stagger hands out cyclic delays: 0, step, 2*step, ... up to buckets-1
// steps, then starts over.
type Stagger struct {
	buckets int
	step    int
	current int
}

// NewStagger returns a Stagger over buckets buckets of step milliseconds.
// With buckets <= 0 the Stagger is inactive and Next reports false.
func NewStagger(buckets, step int) *Stagger {
	return &Stagger{buckets: buckets, step: step}
}

// Next returns the next delay and whether staggering is active.
func (s *Stagger) Next() (int, bool) {
	if s == nil || s.buckets <= 0 {
		return 0, false
	}
	delay := s.current * s.step
	s.current++
	if s.current == s.buckets {
		s.current = 0
	}
	return delay, true
}
