package control

import "github.com/agiangrant/skinned/theme"

// styleRef is a handle to either a shared style or a style owned by one
// control. The first write through the handle splits a shared style into
// a private deep copy.
type styleRef struct {
	s     *theme.Style
	owned bool
}

func (r *styleRef) read() *theme.Style {
	return r.s
}

// write returns a style that is safe to mutate, cloning it on first use.
// split reports whether a clone was made by this call.
func (r *styleRef) write() (s *theme.Style, split bool) {
	if r.s == nil {
		return nil, false
	}
	if !r.owned {
		shared := r.s
		r.s = shared.Clone()
		r.owned = true
		shared.Release()
		return r.s, true
	}
	return r.s, false
}

// set replaces the referenced style with a shared reference to s.
func (r *styleRef) set(s *theme.Style) {
	if s != nil {
		s.Acquire()
	}
	r.release()
	r.s = s
}

func (r *styleRef) release() {
	if r.s != nil {
		r.s.Release()
	}
	r.s = nil
	r.owned = false
}
