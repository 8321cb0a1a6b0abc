package geometry

import (
	"fmt"

	"github.com/calluna-lt3/raytrace/pkg/core"
)

// PointLight is a single point light without distance attenuation
type PointLight struct {
	Location  core.Vec3
	Color     core.Vec3 // RGB in [0, 1]
	Intensity float64
}

// NewPointLight creates a new point light
func NewPointLight(location, color core.Vec3, intensity float64) PointLight {
	return PointLight{
		Location:  location,
		Color:     color,
		Intensity: intensity,
	}
}

// Validate reports whether the light parameters are usable
func (l PointLight) Validate() error {
	if !(l.Intensity >= 0) {
		return fmt.Errorf("light intensity must be non-negative, got %g", l.Intensity)
	}
	if !inUnitRange(l.Color) {
		return fmt.Errorf("light color %v outside [0, 1]", l.Color)
	}
	return nil
}

// Emission returns the light color scaled by its intensity
func (l PointLight) Emission() core.Vec3 {
	return l.Color.Multiply(l.Intensity)
}
