// Package session holds the variable bindings of one prompt while a reader
// edits it. A session starts unbound, collects values through Set, and drops
// them on Close.
package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/goliatone/go-promptcat/pkg/model"
	"github.com/goliatone/go-promptcat/pkg/render"
)

// Session is one editing pass over a single form.
type Session struct {
	ID   string
	Form model.FormModel

	mu       sync.RWMutex
	bindings render.Bindings
	closed   bool
}

// Open starts an unbound session for form.
func Open(form model.FormModel) *Session {
	return &Session{
		ID:   uuid.NewString(),
		Form: form,
	}
}

// Set records value for name. Repeated calls overwrite. Calls after Close
// are ignored.
func (s *Session) Set(name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if s.bindings == nil {
		s.bindings = make(render.Bindings)
	}
	s.bindings[name] = value
}

// Value returns the raw value set for name.
func (s *Session) Value(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.bindings[name]
	return value, ok
}

// Bound reports whether any value has been set.
func (s *Session) Bound() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bindings != nil
}

// Bindings returns a snapshot of the current bindings, nil while unbound.
func (s *Session) Bindings() render.Bindings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bindings.Clone()
}

// Preview renders the form's prompt with the current bindings.
func (s *Session) Preview(options ...render.PreviewOption) string {
	return render.Preview(s.Form.Prompt, s.Bindings(), options...)
}

// Final renders the exportable text with the current bindings.
func (s *Session) Final(directives render.Directives) string {
	return render.Final(s.Form.Prompt, s.Bindings(), directives)
}

// Close discards the bindings. The session renders as unbound afterwards.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bindings = nil
	s.closed = true
}
