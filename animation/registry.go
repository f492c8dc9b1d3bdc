package animation

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/agiangrant/skinned/control"
)

var log = logrus.WithField("component", "animation")

// Registry holds the running channels and applies them once per frame.
type Registry struct {
	mu       sync.Mutex
	channels []*Channel // Insertion order is blend order.

	onActiveChange func(hasActive bool)
}

func NewRegistry() *Registry {
	return &Registry{}
}

// OnActiveChange sets the callback for when channels become active or
// inactive, so a frame loop knows when to keep ticking.
func (r *Registry) OnActiveChange(fn func(hasActive bool)) {
	r.mu.Lock()
	r.onActiveChange = fn
	r.mu.Unlock()
}

// Add registers a channel.
func (r *Registry) Add(c *Channel) {
	r.mu.Lock()
	wasEmpty := len(r.channels) == 0
	r.channels = append(r.channels, c)
	callback := r.onActiveChange
	r.mu.Unlock()

	if wasEmpty && callback != nil {
		callback(true)
	}
}

// Remove unregisters a channel without completing it.
func (r *Registry) Remove(id ChannelID) {
	r.mu.Lock()
	removed := false
	for i, c := range r.channels {
		if c.id == id {
			r.channels = append(r.channels[:i], r.channels[i+1:]...)
			removed = true
			break
		}
	}
	isEmpty := len(r.channels) == 0
	callback := r.onActiveChange
	r.mu.Unlock()

	if removed && isEmpty && callback != nil {
		callback(false)
	}
}

// HasActive reports whether any channel is running.
func (r *Registry) HasActive() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.channels) > 0
}

func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.channels)
}

// groupKey selects the channels that blend into one write.
type groupKey struct {
	target   Target
	property control.AnimationProperty
}

type group struct {
	key      groupKey
	channels []*Channel
	progress []float64
}

// Tick advances every channel to now and applies them. Channels sharing a
// target and property are accumulated in insertion order into a temporary
// seeded with the current value, each blended by its weight, and the
// result is written once with weight 1. Finished channels are applied at
// their end value, removed, and their completion callbacks run after all
// writes. Tick reports whether channels remain.
func (r *Registry) Tick(now time.Time) bool {
	r.mu.Lock()

	var (
		order    []*group
		byKey    = make(map[groupKey]*group)
		finished []*Channel
		removed  int
	)
	live := r.channels[:0]
	for _, c := range r.channels {
		if c.IsCancelled() {
			removed++
			continue
		}
		p, done := c.progress(now)
		key := groupKey{c.target, c.property}
		g, ok := byKey[key]
		if !ok {
			g = &group{key: key}
			byKey[key] = g
			order = append(order, g)
		}
		g.channels = append(g.channels, c)
		g.progress = append(g.progress, p)

		if done {
			finished = append(finished, c)
			removed++
			continue
		}
		live = append(live, c)
	}
	clear(r.channels[len(live):])
	r.channels = live
	hasActive := len(live) > 0
	callback := r.onActiveChange
	r.mu.Unlock()

	for _, g := range order {
		g.apply()
	}
	for _, c := range finished {
		if c.onComplete != nil {
			c.onComplete()
		}
	}
	if removed > 0 && !hasActive && callback != nil {
		callback(false)
	}
	return hasActive
}

func (g *group) apply() {
	fields := logrus.Fields{"property": g.key.property.String()}

	n, err := g.key.target.AnimationPropertyComponentCount(g.key.property)
	if err != nil {
		log.WithFields(fields).WithError(err).Warn("failed to apply animation")
		return
	}
	acc := make([]float32, n)
	if err := g.key.target.AnimationPropertyValue(g.key.property, acc); err != nil {
		log.WithFields(fields).WithError(err).Warn("failed to read animated value")
		return
	}

	v := make([]float32, n)
	for i, c := range g.channels {
		c.sample(g.progress[i], v)
		w := c.weight
		for j := range acc {
			acc[j] = acc[j]*(1-w) + v[j]*w
		}
	}
	if err := g.key.target.SetAnimationPropertyValue(g.key.property, acc, 1); err != nil {
		log.WithFields(fields).WithError(err).Warn("failed to write animated value")
	}
}
