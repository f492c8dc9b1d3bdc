package animation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/skinned/control"
	"github.com/agiangrant/skinned/geom"
	"github.com/agiangrant/skinned/theme"
)

// fakeTarget stores one scalar per property and counts writes.
type fakeTarget struct {
	values map[control.AnimationProperty][]float32
	writes int
}

func newFakeTarget() *fakeTarget {
	return &fakeTarget{values: map[control.AnimationProperty][]float32{
		control.AnimateOpacity:  {0},
		control.AnimatePosition: {0, 0},
	}}
}

func (f *fakeTarget) AnimationPropertyComponentCount(p control.AnimationProperty) (int, error) {
	v, ok := f.values[p]
	if !ok {
		return 0, control.ErrUnknownProperty
	}
	return len(v), nil
}

func (f *fakeTarget) AnimationPropertyValue(p control.AnimationProperty, value []float32) error {
	copy(value, f.values[p])
	return nil
}

func (f *fakeTarget) SetAnimationPropertyValue(p control.AnimationProperty, value []float32, w float32) error {
	f.writes++
	cur := f.values[p]
	for i := range cur {
		cur[i] = cur[i]*(1-w) + value[i]*w
	}
	return nil
}

var t0 = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestEasingEndpoints(t *testing.T) {
	easings := map[string]EasingFunc{
		"linear":      EaseLinear,
		"in-quad":     EaseInQuad,
		"out-quad":    EaseOutQuad,
		"in-out-quad": EaseInOutQuad,
		"out-cubic":   EaseOutCubic,
		"in-out-cub":  EaseInOutCubic,
		"back":        EaseOutBack,
		"elastic":     EaseOutElastic,
		"bounce":      EaseOutBounce,
	}
	for name, fn := range easings {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, 0, fn(0), 1e-9)
			assert.InDelta(t, 1, fn(1), 1e-9)
		})
	}
}

func TestEasingByName(t *testing.T) {
	fn, err := EasingByName("")
	require.NoError(t, err)
	assert.InDelta(t, EaseOutCubic(0.5), fn(0.5), 1e-12)

	fn, err = EasingByName("ease-in")
	require.NoError(t, err)
	assert.InDelta(t, 0.25, fn(0.5), 1e-12)

	_, err = EasingByName("wobble")
	assert.ErrorIs(t, err, ErrUnknownEasing)
}

func TestEasingShapes(t *testing.T) {
	assert.InDelta(t, 0.75, EaseOutQuad(0.5), 1e-12)
	assert.InDelta(t, 0.875, EaseOutCubic(0.5), 1e-12)
	assert.InDelta(t, 0.5, EaseInOutQuad(0.5), 1e-12)
	assert.InDelta(t, 0.125, EaseInOutQuad(0.25), 1e-12)
	assert.InDelta(t, 0.5, EaseInOutCubic(0.5), 1e-12)
	assert.Greater(t, EaseOutBack(0.8), 1.0, "back overshoots")
	assert.Less(t, EaseInQuad(0.5), EaseLinear(0.5))
}

func TestSingleChannel(t *testing.T) {
	target := newFakeTarget()
	r := NewRegistry()
	_, err := Animate(target, r).StartAt(t0).Duration(time.Second).Easing(EaseLinear).
		To(control.AnimatePosition, 100, 50)
	require.NoError(t, err)

	assert.True(t, r.Tick(t0.Add(500*time.Millisecond)))
	assert.Equal(t, []float32{50, 25}, target.values[control.AnimatePosition])
	assert.Equal(t, 1, target.writes)
}

func TestChannelsAccumulateBeforeWrite(t *testing.T) {
	target := newFakeTarget()
	r := NewRegistry()
	build := func(to float32, w float32) {
		_, err := Animate(target, r).StartAt(t0).Duration(time.Second).Easing(EaseLinear).
			Weight(w).FromTo(control.AnimateOpacity, []float32{to}, []float32{to})
		require.NoError(t, err)
	}
	build(10, 0.5)
	build(20, 0.5)

	r.Tick(t0.Add(100 * time.Millisecond))
	// 0*(0.5)+10*0.5 = 5, then 5*0.5+20*0.5 = 12.5, written once.
	assert.Equal(t, []float32{12.5}, target.values[control.AnimateOpacity])
	assert.Equal(t, 1, target.writes)
}

func TestCompletion(t *testing.T) {
	target := newFakeTarget()
	r := NewRegistry()

	var active []bool
	r.OnActiveChange(func(v bool) { active = append(active, v) })

	completed := 0
	ch, err := Animate(target, r).StartAt(t0).Duration(time.Second).Easing(EaseOutBounce).
		OnComplete(func() { completed++ }).
		To(control.AnimateOpacity, 0.75)
	require.NoError(t, err)
	assert.Equal(t, control.AnimateOpacity, ch.Property())
	assert.Equal(t, 1, r.Count())

	assert.False(t, r.Tick(t0.Add(2*time.Second)))
	assert.Equal(t, []float32{0.75}, target.values[control.AnimateOpacity])
	assert.Equal(t, 1, completed)
	assert.False(t, r.HasActive())
	assert.Equal(t, []bool{true, false}, active)

	r.Tick(t0.Add(3 * time.Second))
	assert.Equal(t, 1, completed)
}

func TestCancel(t *testing.T) {
	target := newFakeTarget()
	r := NewRegistry()
	completed := false
	ch, err := Animate(target, r).StartAt(t0).OnComplete(func() { completed = true }).
		To(control.AnimateOpacity, 1)
	require.NoError(t, err)

	ch.Cancel()
	assert.True(t, ch.IsCancelled())
	assert.False(t, r.Tick(t0.Add(time.Hour)))
	assert.Zero(t, target.writes)
	assert.False(t, completed)
}

func TestRemove(t *testing.T) {
	r := NewRegistry()
	ch, err := Animate(newFakeTarget(), r).StartAt(t0).To(control.AnimateOpacity, 1)
	require.NoError(t, err)
	r.Remove(ch.ID())
	assert.Zero(t, r.Count())
}

func TestLoop(t *testing.T) {
	target := newFakeTarget()
	r := NewRegistry()
	_, err := Animate(target, r).StartAt(t0).Duration(time.Second).Easing(EaseLinear).Loop().
		FromTo(control.AnimateOpacity, []float32{0}, []float32{1})
	require.NoError(t, err)

	assert.True(t, r.Tick(t0.Add(2500*time.Millisecond)))
	assert.InDelta(t, 0.5, target.values[control.AnimateOpacity][0], 1e-6)
	assert.True(t, r.HasActive())
}

func TestBuilderErrors(t *testing.T) {
	r := NewRegistry()
	_, err := Animate(newFakeTarget(), r).To(control.AnimateSize, 1, 2)
	assert.ErrorIs(t, err, control.ErrUnknownProperty)

	_, err = Animate(newFakeTarget(), r).FromTo(control.AnimatePosition, []float32{1}, []float32{1, 2})
	assert.ErrorIs(t, err, control.ErrValueSize)
	assert.Zero(t, r.Count())
}

func TestDrivesControl(t *testing.T) {
	c, err := control.New("c", theme.Default(), control.WithBounds(geom.R(0, 0, 100, 20)))
	require.NoError(t, err)
	require.NoError(t, c.SetOpacity(0.2, control.StateAll))

	r := NewRegistry()
	_, err = Animate(c, r).StartAt(t0).Duration(time.Second).Easing(EaseLinear).
		FromTo(control.AnimateSizeWidth, []float32{100}, []float32{200})
	require.NoError(t, err)
	_, err = Animate(c, r).StartAt(t0).Duration(time.Second).Weight(0.5).
		FromTo(control.AnimateOpacity, []float32{1}, []float32{1})
	require.NoError(t, err)

	c.Update(geom.R(0, 0, 800, 600))
	r.Tick(t0.Add(250 * time.Millisecond))
	assert.Equal(t, float32(125), c.Width())
	assert.InDelta(t, 0.6, c.Opacity(control.Disabled), 1e-6)
	assert.True(t, c.IsDirty())
}
