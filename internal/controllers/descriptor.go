package controllers

import (
	"slices"
	"strings"
)

// Tier is a discovery group. Resource-tier controllers are bound by
// convention; basic-tier controllers are bound through explicit routes.
type Tier string

const (
	TierResource Tier = "resource"
	TierBasic    Tier = "basic"
)

// Tiers lists the discovery tiers in processing order.
var Tiers = []Tier{TierResource, TierBasic}

// Descriptor is the immutable record of a discovered controller.
type Descriptor struct {
	Name         string
	SingularName string
	Methods      []Action
	Resource     bool
	Default      bool
	Tier         Tier
	Source       string
}

// Has reports whether the controller implements action.
func (d Descriptor) Has(action Action) bool {
	return slices.Contains(d.Methods, action)
}

// Entry pairs a descriptor with the controller it describes.
type Entry struct {
	Descriptor
	Controller *Controller
}

// Singular strips one trailing "s" from name. Names not ending in "s" and
// the bare name "s" are returned unchanged.
func Singular(name string) string {
	if len(name) > 1 && strings.HasSuffix(name, "s") {
		return name[:len(name)-1]
	}
	return name
}
