package routes

import "net/http"

// Registration is a route recorded by a Recorder.
type Registration struct {
	Method  string
	Pattern string
	Handler http.Handler
}

// Recorder is a Router that records registrations without serving them.
// It backs route listings and binder tests.
type Recorder struct {
	registrations []Registration
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Handle records the registration.
func (r *Recorder) Handle(method, pattern string, handler http.Handler) {
	r.registrations = append(r.registrations, Registration{
		Method:  method,
		Pattern: pattern,
		Handler: handler,
	})
}

// Registrations returns every recorded registration in order.
func (r *Recorder) Registrations() []Registration {
	return r.registrations
}
