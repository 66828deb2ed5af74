// Package decode converts request bodies and loosely typed maps into typed values.
package decode

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"
)

// ErrUnsupportedMediaType is returned when a request body is neither JSON nor a form.
var ErrUnsupportedMediaType = errors.New("unsupported media type")

// FromMap round-trips data through JSON into T.
func FromMap[T any](data map[string]any) (T, error) {
	var result T
	b, err := json.Marshal(data)
	if err != nil {
		return result, err
	}
	err = json.Unmarshal(b, &result)
	return result, err
}

// Form flattens url.Values into a map. Single values become strings and
// repeated keys keep every value. The method override field is dropped.
func Form(values url.Values) map[string]any {
	data := make(map[string]any, len(values))
	for key, vals := range values {
		if key == MethodField {
			continue
		}
		switch len(vals) {
		case 0:
		case 1:
			data[key] = vals[0]
		default:
			data[key] = vals
		}
	}
	return data
}

// MethodField is the form field browsers use to tunnel PUT and DELETE through POST.
const MethodField = "_method"

// Map decodes the request body into a loosely typed map.
// JSON bodies and urlencoded or multipart forms are supported.
func Map(r *http.Request) (map[string]any, error) {
	mediaType := r.Header.Get("Content-Type")
	if mediaType != "" {
		mt, _, err := mime.ParseMediaType(mediaType)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mediaType)
		}
		mediaType = mt
	}

	switch mediaType {
	case "application/json":
		data := make(map[string]any)
		if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
			return nil, fmt.Errorf("decode json body: %w", err)
		}
		return data, nil
	case "multipart/form-data":
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			return nil, fmt.Errorf("parse multipart form: %w", err)
		}
		return Form(r.PostForm), nil
	case "application/x-www-form-urlencoded", "":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("parse form: %w", err)
		}
		return Form(r.PostForm), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mediaType)
	}
}

// Request decodes the request body into T.
func Request[T any](r *http.Request) (T, error) {
	data, err := Map(r)
	if err != nil {
		var zero T
		return zero, err
	}
	return FromMap[T](data)
}
