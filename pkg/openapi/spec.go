package openapi

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Version is the OpenAPI document version emitted by NewSpec.
const Version = "3.1.0"

// NewSpec creates an empty document described by cfg.
func NewSpec(cfg *Config, version string) *Spec {
	spec := &Spec{
		OpenAPI: Version,
		Info: &Info{
			Title:       cfg.Title,
			Version:     version,
			Description: cfg.Description,
		},
		Paths: make(map[string]*PathItem),
	}
	for _, url := range cfg.Servers {
		spec.Servers = append(spec.Servers, &Server{URL: url})
	}
	return spec
}

// Path converts a router pattern with ":name" segments into an
// OpenAPI path template with "{name}" segments.
func Path(pattern string) string {
	if pattern == "" {
		return "/"
	}

	segments := strings.Split(pattern, "/")
	for i, seg := range segments {
		if strings.HasPrefix(seg, ":") {
			segments[i] = "{" + seg[1:] + "}"
		}
	}
	return strings.Join(segments, "/")
}

// AddOperation attaches op to the path and method.
// Unsupported methods are ignored.
func (s *Spec) AddOperation(pattern, method string, op *Operation) {
	path := Path(pattern)
	if s.Paths[path] == nil {
		s.Paths[path] = &PathItem{}
	}

	switch method {
	case http.MethodGet:
		s.Paths[path].Get = op
	case http.MethodPost:
		s.Paths[path].Post = op
	case http.MethodPut:
		s.Paths[path].Put = op
	case http.MethodDelete:
		s.Paths[path].Delete = op
	}
}

// MarshalJSON renders the document with two-space indentation.
func MarshalJSON(spec *Spec) ([]byte, error) {
	return json.MarshalIndent(spec, "", "  ")
}

// ServeSpec returns a handler that writes a pre-rendered document.
func ServeSpec(spec []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(spec)
	}
}
