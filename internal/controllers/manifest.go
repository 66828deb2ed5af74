package controllers

import (
	"bytes"
	"path"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ManifestSuffix is the file name suffix of controller manifests.
const ManifestSuffix = ".controller.toml"

// Manifest holds the optional overrides a controller file may declare.
// An empty file is a valid manifest.
type Manifest struct {
	Name         *string `toml:"name"`
	SingularName *string `toml:"singular_name"`
	Default      *bool   `toml:"default"`
	Factory      *string `toml:"factory"`
}

// ParseManifest decodes a manifest. Unknown keys are rejected.
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

// Stem returns the file base name without ManifestSuffix.
func Stem(file string) string {
	return strings.TrimSuffix(path.Base(file), ManifestSuffix)
}

// FactoryName returns the catalog key for a manifest found at file.
func (m Manifest) FactoryName(file string) string {
	if m.Factory != nil && *m.Factory != "" {
		return *m.Factory
	}
	return Stem(file)
}
