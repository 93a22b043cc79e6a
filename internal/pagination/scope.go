package pagination

import "errors"

// ErrOutsideProvider is returned when a navigation handle is requested
// from a scope that has no carousel bound to it.
var ErrOutsideProvider = errors.New("navigation handle used outside a carousel")

// Scope passes an engine down to descendant content explicitly.
// The zero value and a nil *Scope are both unbound.
type Scope struct {
	engine *Engine
}

// NewScope binds engine to a new scope
func NewScope(engine *Engine) *Scope {
	return &Scope{engine: engine}
}

// Engine returns the bound engine or ErrOutsideProvider
func (s *Scope) Engine() (*Engine, error) {
	if s == nil || s.engine == nil {
		return nil, ErrOutsideProvider
	}
	return s.engine, nil
}

// Handle returns the current navigation handle or ErrOutsideProvider
func (s *Scope) Handle() (Handle, error) {
	engine, err := s.Engine()
	if err != nil {
		return Handle{}, err
	}
	return engine.Handle(), nil
}

// MustHandle is like Handle but panics when the scope is unbound
func (s *Scope) MustHandle() Handle {
	h, err := s.Handle()
	if err != nil {
		panic(err)
	}
	return h
}
