// Package animation drives control attributes over time through the
// animation-target protocol. Channels that hit the same property of the
// same target in one frame are blended together before a single write.
package animation

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/agiangrant/skinned/control"
)

// Target is anything whose properties can be animated. *control.Control
// implements it.
type Target interface {
	AnimationPropertyComponentCount(p control.AnimationProperty) (int, error)
	AnimationPropertyValue(p control.AnimationProperty, value []float32) error
	SetAnimationPropertyValue(p control.AnimationProperty, value []float32, blendWeight float32) error
}

// ChannelID uniquely identifies a channel.
type ChannelID uint64

var nextChannelID atomic.Uint64

func newChannelID() ChannelID {
	return ChannelID(nextChannelID.Add(1))
}

// Channel interpolates one property of one target from a start value to an
// end value.
type Channel struct {
	id       ChannelID
	target   Target
	property control.AnimationProperty
	from, to []float32

	startTime  time.Time
	duration   time.Duration
	easing     EasingFunc
	loop       bool
	weight     float32
	onComplete func()
	cancelled  atomic.Bool
}

func (c *Channel) ID() ChannelID                       { return c.id }
func (c *Channel) Target() Target                      { return c.target }
func (c *Channel) Property() control.AnimationProperty { return c.property }

// Weight returns the blend weight applied when the channel is accumulated.
func (c *Channel) Weight() float32 { return c.weight }

// Cancel stops the channel. It is removed on the next tick without its
// completion callback.
func (c *Channel) Cancel() {
	c.cancelled.Store(true)
}

func (c *Channel) IsCancelled() bool {
	return c.cancelled.Load()
}

// sample writes the eased value at progress into out.
func (c *Channel) sample(progress float64, out []float32) {
	p := float32(progress)
	for i := range out {
		out[i] = lerp(c.from[i], c.to[i], p)
	}
}

// progress returns eased progress at now and whether the channel finished.
// Looping channels restart instead of finishing.
func (c *Channel) progress(now time.Time) (float64, bool) {
	elapsed := now.Sub(c.startTime)
	if elapsed >= c.duration {
		if !c.loop {
			return c.easing(1), true
		}
		if c.duration > 0 {
			elapsed %= c.duration
			c.startTime = now.Add(-elapsed)
		} else {
			elapsed = 0
		}
	}
	if c.duration <= 0 {
		return c.easing(1), false
	}
	t := float64(elapsed) / float64(c.duration)
	if t < 0 {
		t = 0
	}
	return c.easing(t), false
}

// ============================================================================
// Builder API
// ============================================================================

// Builder provides a fluent API for creating channels.
type Builder struct {
	target     Target
	registry   *Registry
	start      time.Time
	duration   time.Duration
	easing     EasingFunc
	loop       bool
	weight     float32
	onComplete func()
}

// Animate starts building a channel on target, registered in registry.
func Animate(target Target, registry *Registry) *Builder {
	return &Builder{
		target:   target,
		registry: registry,
		duration: 300 * time.Millisecond,
		easing:   EaseOutCubic,
		weight:   1,
	}
}

// Duration sets how long the channel runs.
func (b *Builder) Duration(d time.Duration) *Builder {
	b.duration = d
	return b
}

// Easing sets the easing function. nil keeps the current one.
func (b *Builder) Easing(fn EasingFunc) *Builder {
	if fn != nil {
		b.easing = fn
	}
	return b
}

// StartAt sets the start time. The default is the time Build is called.
func (b *Builder) StartAt(t time.Time) *Builder {
	b.start = t
	return b
}

// Loop makes the channel repeat until cancelled.
func (b *Builder) Loop() *Builder {
	b.loop = true
	return b
}

// Weight sets the blend weight, clamped to [0,1].
func (b *Builder) Weight(w float32) *Builder {
	b.weight = min(max(w, 0), 1)
	return b
}

// OnComplete sets a callback for when a non-looping channel finishes.
func (b *Builder) OnComplete(fn func()) *Builder {
	b.onComplete = fn
	return b
}

// To animates p from the target's current value to to.
func (b *Builder) To(p control.AnimationProperty, to ...float32) (*Channel, error) {
	n, err := b.target.AnimationPropertyComponentCount(p)
	if err != nil {
		return nil, err
	}
	from := make([]float32, n)
	if err := b.target.AnimationPropertyValue(p, from); err != nil {
		return nil, err
	}
	return b.FromTo(p, from, to)
}

// FromTo animates p between two values, each holding the property's
// component count.
func (b *Builder) FromTo(p control.AnimationProperty, from, to []float32) (*Channel, error) {
	n, err := b.target.AnimationPropertyComponentCount(p)
	if err != nil {
		return nil, err
	}
	if len(from) != n || len(to) != n {
		return nil, fmt.Errorf("%s: %w: need %d components", p, control.ErrValueSize, n)
	}

	start := b.start
	if start.IsZero() {
		start = time.Now()
	}
	c := &Channel{
		id:         newChannelID(),
		target:     b.target,
		property:   p,
		from:       append([]float32(nil), from...),
		to:         append([]float32(nil), to...),
		startTime:  start,
		duration:   b.duration,
		easing:     b.easing,
		loop:       b.loop,
		weight:     b.weight,
		onComplete: b.onComplete,
	}
	b.registry.Add(c)
	return c, nil
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}
