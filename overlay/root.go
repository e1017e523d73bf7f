package overlay

import (
	"slices"
	"time"
)

// Option configures a surface at attach time
type Option func(*Surface)

// WithGrace overrides the post-animation grace period
func WithGrace(d time.Duration) Option {
	return func(s *Surface) {
		s.grace = d
	}
}

// WithDetachWhenEmpty removes the surface once its last particle leaves
// Used by one-shot burst containers
func WithDetachWhenEmpty() Option {
	return func(s *Surface) {
		s.detachWhenEmpty = true
	}
}

// Root is the document root that full-viewport surfaces attach to
type Root struct {
	timers   Timers
	surfaces []*Surface
}

// NewRoot creates an empty root scheduling expiries on timers
func NewRoot(timers Timers) *Root {
	return &Root{timers: timers}
}

// Ensure returns the attached surface named name, creating it on first use
func (r *Root) Ensure(name string, opts ...Option) *Surface {
	if s, ok := r.Get(name); ok {
		return s
	}
	return r.Attach(name, opts...)
}

// Attach always creates and attaches a new surface
func (r *Root) Attach(name string, opts ...Option) *Surface {
	s := &Surface{
		name:     name,
		root:     r,
		grace:    DefaultGrace,
		attached: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	r.surfaces = append(r.surfaces, s)
	return s
}

// Get returns the first attached surface named name
func (r *Root) Get(name string) (*Surface, bool) {
	for _, s := range r.surfaces {
		if s.name == name {
			return s, true
		}
	}
	return nil, false
}

// Surfaces returns attached surfaces in attach order, which is paint order
func (r *Root) Surfaces() []*Surface {
	return slices.Clone(r.surfaces)
}

// TeardownAll detaches every surface
func (r *Root) TeardownAll() {
	for _, s := range r.Surfaces() {
		s.Teardown()
	}
}

func (r *Root) detach(s *Surface) {
	r.surfaces = slices.DeleteFunc(r.surfaces, func(o *Surface) bool { return o == s })
}
